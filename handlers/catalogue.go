package handlers

import (
	"net/http"

	"klinik/middleware"
	"klinik/models"
	"klinik/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const specializationPhotoField = "foto_layanan_spesialisasi"

// CatalogueHandler lets clinic staff manage doctors, specializations and
// their schedules.
type CatalogueHandler struct {
	Service booking.CatalogueService
	Logger  *zap.Logger
}

func NewCatalogueHandler(svc booking.CatalogueService, logger *zap.Logger) *CatalogueHandler {
	return &CatalogueHandler{Service: svc, Logger: logger}
}

// List serves one page of resource r.
func (h *CatalogueHandler) List(r models.CatalogueResource) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q models.CatalogueQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
			return
		}
		id, _ := middleware.IdentityFrom(c)
		page, err := h.Service.List(c.Request.Context(), id, r, q)
		if err != nil {
			respondError(c, getLogger(h.Logger, c), "List "+string(r), err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// Get serves one record of resource r.
func (h *CatalogueHandler) Get(r models.CatalogueResource) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := middleware.IdentityFrom(c)
		record, err := h.Service.Get(c.Request.Context(), id, r, c.Param("id"))
		if err != nil {
			respondError(c, getLogger(h.Logger, c), "Get "+string(r), err)
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", record)
	}
}

func (h *CatalogueHandler) SaveDoctor(c *gin.Context) {
	var in models.DoctorInput
	if !h.bindJSON(c, &in) {
		return
	}
	id, _ := middleware.IdentityFrom(c)
	msg, err := h.Service.SaveDoctor(c.Request.Context(), id, c.Param("id"), in)
	h.respondSaved(c, "Save doctor", msg, err)
}

func (h *CatalogueHandler) SaveGeneralDoctor(c *gin.Context) {
	var in models.GeneralDoctorInput
	if !h.bindJSON(c, &in) {
		return
	}
	id, _ := middleware.IdentityFrom(c)
	msg, err := h.Service.SaveGeneralDoctor(c.Request.Context(), id, c.Param("id"), in)
	h.respondSaved(c, "Save general doctor", msg, err)
}

func (h *CatalogueHandler) SaveGeneralSchedule(c *gin.Context) {
	var in models.GeneralScheduleInput
	if !h.bindJSON(c, &in) {
		return
	}
	id, _ := middleware.IdentityFrom(c)
	msg, err := h.Service.SaveGeneralSchedule(c.Request.Context(), id, c.Param("id"), in)
	h.respondSaved(c, "Save general schedule", msg, err)
}

func (h *CatalogueHandler) SaveSpecializationSchedule(c *gin.Context) {
	var in models.SpecializationScheduleInput
	if !h.bindJSON(c, &in) {
		return
	}
	id, _ := middleware.IdentityFrom(c)
	msg, err := h.Service.SaveSpecializationSchedule(c.Request.Context(), id, c.Param("id"), in)
	h.respondSaved(c, "Save specialization schedule", msg, err)
}

// SaveSpecialization accepts a form with an optional photo file.
func (h *CatalogueHandler) SaveSpecialization(c *gin.Context) {
	logger := getLogger(h.Logger, c)
	var in models.SpecializationInput
	if err := c.ShouldBind(&in); err != nil {
		logger.Info("Invalid specialization form", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	var photo *models.Upload
	if fh, err := c.FormFile(specializationPhotoField); err == nil {
		f, err := fh.Open()
		if err != nil {
			logger.Error("Failed to open specialization photo", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable photo"})
			return
		}
		defer f.Close()
		photo = &models.Upload{Filename: fh.Filename, Body: f}
	}

	id, _ := middleware.IdentityFrom(c)
	msg, err := h.Service.SaveSpecialization(c.Request.Context(), id, c.Param("id"), in, photo)
	h.respondSaved(c, "Save specialization", msg, err)
}

func (h *CatalogueHandler) bindJSON(c *gin.Context, in interface{}) bool {
	if err := c.ShouldBindJSON(in); err != nil {
		getLogger(h.Logger, c).Info("Invalid catalogue request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return false
	}
	return true
}

// respondSaved answers 201 for a created record and 200 for an update.
func (h *CatalogueHandler) respondSaved(c *gin.Context, action, msg string, err error) {
	if err != nil {
		respondError(c, getLogger(h.Logger, c), action, err)
		return
	}
	status := http.StatusOK
	if c.Param("id") == "" {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"message": msg})
}
