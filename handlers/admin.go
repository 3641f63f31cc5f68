package handlers

import (
	"net/http"

	"klinik/middleware"
	"klinik/models"
	"klinik/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates the admin queue operations.
type AdminHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc booking.BookingService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Service: svc, Logger: logger}
}

// Queue lists one page of the clinic queue.
func (h *AdminHandler) Queue(c *gin.Context) {
	var q models.QueueQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}
	id, _ := middleware.IdentityFrom(c)
	page, err := h.Service.AdminQueue(c.Request.Context(), id, q)
	if err != nil {
		respondError(c, getLogger(h.Logger, c), "Admin queue", err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Complete marks a queue entry as served.
func (h *AdminHandler) Complete(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	if err := h.Service.CompleteQueue(c.Request.Context(), id, c.Param("id")); err != nil {
		respondError(c, getLogger(h.Logger, c), "Complete queue entry", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Queue entry completed"})
}

func (h *AdminHandler) Delete(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	if err := h.Service.DeleteQueue(c.Request.Context(), id, c.Param("id")); err != nil {
		respondError(c, getLogger(h.Logger, c), "Delete queue entry", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Queue entry deleted"})
}
