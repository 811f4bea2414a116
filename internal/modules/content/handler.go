package content

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"secondbrain/internal/domain"
	"secondbrain/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contents", h.CreateContent)
	rg.GET("/contents/:id", h.ListContentsByUser)
	rg.DELETE("/contents/:id", h.DeleteContent)
}

// CreateContent stores a new link for the authenticated user.
// @Summary		Create content
// @Tags		Content
// @Security	BearerAuth
// @Param		request	body	CreateContentRequest	true	"Content payload (title, link, content_type)"
// @Success		201	{object}	map[string]interface{}	"Created content"
// @Failure		400	{object}	map[string]interface{}	"Missing field or unknown content_type"
// @Router		/contents [POST]
func (h *Handler) CreateContent(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "title, link and content_type are required")
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrInvalidContentType) {
			response.Error(c, http.StatusBadRequest, "INVALID_CONTENT_TYPE", invalidTypeMessage(req.Type))
			return
		}
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "title and link must be non-empty")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create content")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"content": toContentResponse(created),
	})
}

// ListContentsByUser lists the contents owned by the user id in the
// path. The id is a user id, not a content id.
// @Summary		List contents by user
// @Tags		Content
// @Security	BearerAuth
// @Param		id	path	int	true	"User ID"
// @Success		200	{object}	map[string]interface{}	"Contents"
// @Failure		500	{object}	map[string]interface{}	"Store error"
// @Router		/contents/{id} [GET]
func (h *Handler) ListContentsByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	contents, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list contents")
		return
	}

	out := make([]ContentResponse, 0, len(contents))
	for i := range contents {
		out = append(out, toContentResponse(&contents[i]))
	}

	response.Success(c, http.StatusOK, gin.H{"contents": out})
}

// DeleteContent removes a content row and its share links.
// @Summary		Delete content
// @Tags		Content
// @Security	BearerAuth
// @Param		id	path	int	true	"Content ID"
// @Success		200	{object}	map[string]interface{}	"Deleted id and title"
// @Failure		404	{object}	map[string]interface{}	"No such content"
// @Router		/contents/{id} [DELETE]
func (h *Handler) DeleteContent(c *gin.Context) {
	contentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid content ID")
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), contentID)
	if err != nil {
		if errors.Is(err, ErrContentNotFound) {
			response.Error(c, http.StatusNotFound, "CONTENT_NOT_FOUND", "No such content")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete content")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"id":    deleted.ID,
		"title": deleted.Title,
	})
}

func invalidTypeMessage(got string) string {
	valid := make([]string, 0, len(domain.ValidContentTypes))
	for _, t := range domain.ValidContentTypes {
		valid = append(valid, string(t))
	}
	return fmt.Sprintf("content_type %q is not supported, must be one of: %s", got, strings.Join(valid, ", "))
}
