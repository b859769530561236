package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainUser "reservation-api/internal/domain/user"
	"reservation-api/internal/usecase/user"
	"reservation-api/pkg/utils"
)

// UserHandler serves the relational user listing plus the legacy
// file-backed user CRUD. The legacy routes operate on a flat JSON file and
// stay independent of the relational store.
type UserHandler struct {
	service *user.Service
}

func NewUserHandler(service *user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterProtectedRoutes mounts the relational user listing behind the
// token gate.
func (h *UserHandler) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/db-users", h.ListDBUsers)
}

// RegisterLegacyRoutes mounts the file-backed user CRUD. Kept unguarded,
// as the historical surface was.
func (h *UserHandler) RegisterLegacyRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.ListFileUsers)
		users.POST("", h.CreateFileUser)
		users.GET("/:id", h.GetFileUser)
		users.PUT("/:id", h.UpdateFileUser)
		users.DELETE("/:id", h.DeleteFileUser)
	}
}

func (h *UserHandler) ListDBUsers(c *gin.Context) {
	users, err := h.service.ListDBUsers(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error communicating with the database")
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) ListFileUsers(c *gin.Context) {
	users, err := h.service.ListFileUsers()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error reading the user file")
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetFileUser(c *gin.Context) {
	id, ok := parseNumericID(c)
	if !ok {
		return
	}

	u, err := h.service.GetFileUser(id)
	if err != nil {
		h.writeFileError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) CreateFileUser(c *gin.Context) {
	var req user.FileUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.CreateFileUser(&req)
	if err != nil {
		h.writeFileError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": created})
}

func (h *UserHandler) UpdateFileUser(c *gin.Context) {
	id, ok := parseNumericID(c)
	if !ok {
		return
	}

	var req user.FileUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateFileUser(id, &req)
	if err != nil {
		h.writeFileError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": updated})
}

func (h *UserHandler) DeleteFileUser(c *gin.Context) {
	id, ok := parseNumericID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteFileUser(id); err != nil {
		h.writeFileError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func parseNumericID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "User ID must be a valid number")
		return 0, false
	}
	return id, true
}

func (h *UserHandler) writeFileError(c *gin.Context, err error) {
	var iss *user.ValidationIssue
	switch {
	case errors.As(err, &iss):
		utils.ErrorResponse(c, http.StatusBadRequest, iss.Message)
	case errors.Is(err, domainUser.ErrUserNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "User not found")
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error accessing the user file")
	}
}
