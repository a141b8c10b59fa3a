package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"systemfit/leveling-app/internal/domain"
	"systemfit/leveling-app/internal/service"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Username string        `json:"username" binding:"required,min=3"`
	Password string        `json:"password" binding:"required,min=6"`
	Gender   domain.Gender `json:"gender" binding:"omitempty,oneof=male female"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AccountResponse excludes sensitive info like the password hash.
type AccountResponse struct {
	Username  string         `json:"username"`
	Player    *domain.Player `json:"player"`
	CreatedAt time.Time      `json:"createdAt"`
}

type AuthResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// --- Handler Methods ---

// Register creates a new account seeded with the starting player state.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, account, err := h.authService.Register(c.Request.Context(), req.Username, req.Password, req.Gender)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else if errors.Is(err, service.ErrHashingFailed) {
			abortWithError(c, http.StatusInternalServerError, "Could not process registration")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Token:   token,
		Account: mapAccountToResponse(account),
	})
}

// Login authenticates an existing account and returns a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, account, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else if errors.Is(err, service.ErrTokenGeneration) {
			abortWithError(c, http.StatusInternalServerError, "Could not process login")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token:   token,
		Account: mapAccountToResponse(account),
	})
}

func mapAccountToResponse(account *domain.Account) AccountResponse {
	if account == nil {
		return AccountResponse{}
	}
	return AccountResponse{
		Username:  account.Username,
		Player:    &account.Player,
		CreatedAt: account.CreatedAt,
	}
}
