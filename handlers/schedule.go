package handlers

import (
	"net/http"
	"strconv"

	"klinik/middleware"
	"klinik/services/booking"
	"klinik/services/schedule"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the clinic's schedules and the bookable slots derived
// from them.
type ScheduleHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewScheduleHandler(svc booking.BookingService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Service: svc, Logger: logger}
}

// GeneralSchedule returns the merged general-practice opening hours.
func (h *ScheduleHandler) GeneralSchedule(c *gin.Context) {
	overview, err := h.Service.GeneralSchedule(c.Request.Context())
	if err != nil {
		respondError(c, getLogger(h.Logger, c), "General schedule", err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *ScheduleHandler) Specializations(c *gin.Context) {
	specs, err := h.Service.Specializations(c.Request.Context())
	if err != nil {
		respondError(c, getLogger(h.Logger, c), "Specializations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"specializations": specs})
}

func (h *ScheduleHandler) SpecializationSchedules(c *gin.Context) {
	schedules, err := h.Service.SpecializationSchedules(c.Request.Context())
	if err != nil {
		respondError(c, getLogger(h.Logger, c), "Specialization schedules", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

// GeneralSlots lists the bookable general-practice times for the caller.
func (h *ScheduleHandler) GeneralSlots(c *gin.Context) {
	interval, ok := intervalParam(c)
	if !ok {
		return
	}
	id, _ := middleware.IdentityFrom(c)
	slots, err := h.Service.GeneralSlots(c.Request.Context(), id, interval)
	if err != nil {
		respondError(c, getLogger(h.Logger, c), "General slots", err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// SpecializationSlots lists the bookable times and weekdays of one specialization.
func (h *ScheduleHandler) SpecializationSlots(c *gin.Context) {
	interval, ok := intervalParam(c)
	if !ok {
		return
	}
	id, _ := middleware.IdentityFrom(c)
	slots, err := h.Service.SpecializationSlots(c.Request.Context(), id, c.Param("id"), interval)
	if err != nil {
		respondError(c, getLogger(h.Logger, c), "Specialization slots", err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// AdminGeneralCoverage previews the merged coverage of the admin schedule list.
func (h *ScheduleHandler) AdminGeneralCoverage(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)
	overview, err := h.Service.AdminGeneralCoverage(c.Request.Context(), id)
	if err != nil {
		respondError(c, getLogger(h.Logger, c), "Admin coverage", err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// intervalParam reads ?interval=; absent means the configured default.
func intervalParam(c *gin.Context) (int, bool) {
	raw := c.Query("interval")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || !schedule.ValidInterval(n) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "interval must be between 1 and 1440 minutes", "code": booking.CodeInvalidInterval})
		return 0, false
	}
	return n, true
}
