package auth

import (
	"errors"
	"net/http"

	"secondbrain/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

// NewHandler creates a new auth handler with injected service
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.Signup)
	rg.POST("/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/users", h.ListUsers)
}

// Signup registers a new user account.
// @Summary		Sign up
// @Description	Creates a new user account from a unique username and a password. The password is stored only as a bcrypt hash.
// @Tags		Auth
// @Param		request	body	SignupRequest	true	"Signup payload (username, password)"
// @Success		201	{object}	map[string]interface{}	"Account created"
// @Failure		400	{object}	map[string]interface{}	"Missing or malformed fields"
// @Failure		409	{object}	map[string]interface{}	"Username already registered"
// @Router		/signup [POST]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "username and password are required")
		return
	}

	user, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			response.Error(c, http.StatusConflict, "USERNAME_EXISTS", "This username is already taken")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SIGNUP_FAILED", "Failed to create account")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

// Login authenticates a user and issues a session token.
// @Summary		Log in
// @Description	Verifies username and password and returns a signed bearer token valid for 24 hours.
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"Credentials (username, password)"
// @Success		200	{object}	map[string]interface{}	"Token and user"
// @Failure		400	{object}	map[string]interface{}	"Missing or malformed fields"
// @Failure		401	{object}	map[string]interface{}	"Unknown user or wrong password"
// @Router		/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "username and password are required")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Username or password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": result.Token,
		"user": gin.H{
			"id":       result.User.ID,
			"username": result.User.Username,
		},
	})
}

// ListUsers returns every registered account.
// @Summary		List users
// @Tags		Auth
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}	"Users"
// @Failure		401	{object}	map[string]interface{}	"Missing bearer token"
// @Failure		403	{object}	map[string]interface{}	"Invalid or expired token"
// @Router		/users [GET]
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list users")
		return
	}

	out := make([]UserPublic, 0, len(users))
	for _, u := range users {
		out = append(out, UserPublic{
			ID:        u.ID,
			Username:  u.Username,
			CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	response.Success(c, http.StatusOK, gin.H{"users": out})
}
