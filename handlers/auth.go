package handlers

import (
	"net/http"

	"slotswapper/services/user"
	"slotswapper/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the identity endpoints.
type AuthHandler struct {
	Service user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// SignupHandler registers a new user and returns a token.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// LoginHandler verifies credentials and returns a token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// LogoutHandler revokes the caller's cached token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	userID := authUserID(c)
	if err := h.Service.RevokeToken(c.Request.Context(), userID); err != nil {
		getLogger(c).Warn("failed to revoke token", zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MeHandler returns the caller's own profile.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	usr, err := h.Service.GetProfile(c.Request.Context(), authUserID(c))
	if err != nil {
		h.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

func (h *AuthHandler) writeAuthError(c *gin.Context, err error) {
	switch user.ErrorCode(err) {
	case user.CodeInvalidArgument:
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case user.CodeDuplicateEmail:
		utils.JSONError(c, http.StatusConflict, "email already registered", "")
	case user.CodeInvalidCredentials:
		utils.JSONError(c, http.StatusUnauthorized, "invalid email or password", "")
	case user.CodeNotFound:
		utils.JSONError(c, http.StatusNotFound, "user not found", "")
	default:
		getLogger(c).Error("auth operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal server error", "")
	}
}
