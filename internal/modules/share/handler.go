package share

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"secondbrain/internal/domain"
	"secondbrain/internal/pkg/response"
	"secondbrain/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	baseURL string
}

// NewHandler wires the share service. baseURL is the public frontend
// prefix the token is appended to, e.g. https://brain.example.com/shared.
func NewHandler(service *Service, baseURL string) *Handler {
	return &Handler{
		service: service,
		baseURL: baseURL,
	}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/brain/share", h.CreateShare)
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/brain/shared/:shareToken", h.ResolveShare)
}

// CreateShare issues a time-limited public token for one content record.
// @Summary		Create share link
// @Tags		Share
// @Security	BearerAuth
// @Param		request	body	CreateShareRequest	true	"Content to share"
// @Success		201	{object}	map[string]interface{}	"shareUrl and expiresAt"
// @Failure		400	{object}	map[string]interface{}	"Missing contentId"
// @Failure		404	{object}	map[string]interface{}	"Content not found"
// @Router		/brain/share [POST]
func (h *Handler) CreateShare(c *gin.Context) {
	var req CreateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "contentId is required")
		return
	}

	link, err := h.service.Create(c.Request.Context(), req.ContentID)
	if err != nil {
		if errors.Is(err, ErrContentNotFound) {
			response.Error(c, http.StatusNotFound, "CONTENT_NOT_FOUND", "No such content")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create share link")
		return
	}

	response.Success(c, http.StatusCreated, ShareResponse{
		ShareURL:  fmt.Sprintf("%s/%s", h.baseURL, link.Token),
		ExpiresAt: link.ExpiresAt.Format(time.RFC3339),
	})
}

// ResolveShare is the only unauthenticated read path: whoever holds the
// token sees the content.
// @Summary		Resolve share link
// @Tags		Share
// @Param		shareToken	path	string	true	"Share token"
// @Success		200	{object}	map[string]interface{}	"Content and share metadata"
// @Failure		404	{object}	map[string]interface{}	"Unknown or expired token"
// @Router		/brain/shared/{shareToken} [GET]
func (h *Handler) ResolveShare(c *gin.Context) {
	token := c.Param("shareToken")

	content, link, err := h.service.Resolve(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, ErrShareNotFound) {
			response.Error(c, http.StatusNotFound, "SHARE_NOT_FOUND", "Share link not found or expired")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve share link")
		return
	}

	var expiresAt string
	if link.ExpiresAt != nil {
		expiresAt = link.ExpiresAt.Format(time.RFC3339)
	}

	contentOut := gin.H{
		"id":           content.ID,
		"title":        content.Title,
		"link":         content.Link,
		"content_type": content.Type,
		"created_at":   content.CreatedAt.Format(time.RFC3339),
	}
	// Embed ids let the public share page render the media inline
	// instead of showing a bare link.
	switch content.Type {
	case domain.TypeVideo:
		if id := utils.YouTubeVideoID(content.Link); id != "" {
			contentOut["youtube_video_id"] = id
		}
	case domain.TypeTwitter:
		if id := utils.TwitterTweetID(content.Link); id != "" {
			contentOut["tweet_id"] = id
		}
	}

	response.Success(c, http.StatusOK, gin.H{
		"content": contentOut,
		"share": gin.H{
			"token":      link.Token,
			"created_at": link.CreatedAt.Format(time.RFC3339),
			"expires_at": expiresAt,
		},
	})
}
