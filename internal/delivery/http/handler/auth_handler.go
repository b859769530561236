package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainUser "reservation-api/internal/domain/user"
	"reservation-api/internal/usecase/auth"
	appErrors "reservation-api/pkg/errors"
	"reservation-api/pkg/utils"
)

type AuthHandler struct {
	service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *AuthHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/protected-route", h.ProtectedProbe)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email, password, name and phone are required")
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		var appErr *appErrors.AppError
		switch {
		case errors.Is(err, domainUser.ErrEmailTaken), errors.Is(err, domainUser.ErrPhoneTaken):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		case errors.As(err, &appErr):
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		var appErr *appErrors.AppError
		switch {
		case errors.Is(err, appErrors.ErrInvalidCredentials):
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		case errors.As(err, &appErr):
			utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": result.Token, "expiresAt": result.ExpiresAt})
}

// ProtectedProbe returns the identity the token gate attached to the
// context. It exists to exercise the gate end to end.
func (h *AuthHandler) ProtectedProbe(c *gin.Context) {
	userID, _ := c.Get("userID")
	role := c.GetString("role")
	email := c.GetString("email")

	id, _ := userID.(uuid.UUID)
	c.JSON(http.StatusOK, gin.H{
		"userId": id.String(),
		"email":  email,
		"role":   role,
	})
}
