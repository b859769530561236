package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainReservation "reservation-api/internal/domain/reservation"
	"reservation-api/internal/usecase/reservation"
	"reservation-api/pkg/utils"
)

type ReservationHandler struct {
	service *reservation.Service
}

func NewReservationHandler(service *reservation.Service) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) RegisterRoutes(router *gin.RouterGroup) {
	reservations := router.Group("/reservations")
	{
		reservations.POST("", h.Create)
		reservations.GET("/:id", h.Get)
		reservations.PUT("/:id", h.Update)
		reservations.DELETE("/:id", h.Delete)
	}
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req reservation.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseReservationID(c)
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseReservationID(c)
	if !ok {
		return
	}

	var req reservation.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseReservationID(c)
	if !ok {
		return
	}

	result, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "Reservation deleted successfully",
		"deletedReservation": result,
	})
}

func parseReservationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Reservation ID must be a valid number")
		return 0, false
	}
	return id, true
}

func (h *ReservationHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainReservation.ErrMissingFields),
		errors.Is(err, domainReservation.ErrInvalidDateTime),
		errors.Is(err, domainReservation.ErrSlotTaken):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domainReservation.ErrReservationNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal reservation error")
	}
}
