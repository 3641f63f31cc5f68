package handlers

import (
	"net/http"

	"klinik/middleware"
	"klinik/models"
	"klinik/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the patient reservation endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// ReserveGeneral books a general-practice slot.
func (h *BookingHandler) ReserveGeneral(c *gin.Context) {
	logger := getLogger(h.Logger, c)
	var req models.GeneralReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Info("Invalid reservation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	id, _ := middleware.IdentityFrom(c)
	res, err := h.Service.ReserveGeneral(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, "General reservation", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ReserveSpecialization books a slot with a specialist service.
func (h *BookingHandler) ReserveSpecialization(c *gin.Context) {
	logger := getLogger(h.Logger, c)
	var req models.SpecializationReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Info("Invalid reservation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	id, _ := middleware.IdentityFrom(c)
	res, err := h.Service.ReserveSpecialization(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, logger, "Specialization reservation", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// History lists the caller's queue entries.
func (h *BookingHandler) History(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	entries, err := h.Service.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, getLogger(h.Logger, c), "Reservation history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": entries})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	if err := h.Service.Cancel(c.Request.Context(), id, c.Param("id")); err != nil {
		respondError(c, getLogger(h.Logger, c), "Cancel reservation", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled"})
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	if err := h.Service.Delete(c.Request.Context(), id, c.Param("id")); err != nil {
		respondError(c, getLogger(h.Logger, c), "Delete reservation", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted"})
}
