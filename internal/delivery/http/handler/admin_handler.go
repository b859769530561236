package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainTimeblock "reservation-api/internal/domain/timeblock"
	"reservation-api/internal/usecase/reservation"
	"reservation-api/internal/usecase/timeblock"
	"reservation-api/pkg/utils"
)

// AdminHandler exposes the admin-only surface: time block creation and the
// full reservation listing.
type AdminHandler struct {
	timeblockService   *timeblock.Service
	reservationService *reservation.Service
}

func NewAdminHandler(timeblockService *timeblock.Service, reservationService *reservation.Service) *AdminHandler {
	return &AdminHandler{
		timeblockService:   timeblockService,
		reservationService: reservationService,
	}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/timeblocks", h.CreateTimeBlock)
	router.GET("/timeblocks", h.ListTimeBlocks)
	router.GET("/reservations", h.ListReservations)
}

func (h *AdminHandler) CreateTimeBlock(c *gin.Context) {
	var req timeblock.CreateTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "startTime and endTime are required")
		return
	}

	block, err := h.timeblockService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domainTimeblock.ErrInvalidTime) || errors.Is(err, domainTimeblock.ErrInvalidInterval) {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error creating time block")
		return
	}

	c.JSON(http.StatusCreated, block)
}

func (h *AdminHandler) ListTimeBlocks(c *gin.Context) {
	blocks, err := h.timeblockService.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error listing time blocks")
		return
	}

	c.JSON(http.StatusOK, blocks)
}

func (h *AdminHandler) ListReservations(c *gin.Context) {
	reservations, err := h.reservationService.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error consulting reservations")
		return
	}

	c.JSON(http.StatusOK, reservations)
}
