package handlers

import (
	"errors"
	"net/http"
	"strconv"

	recordsRepo "klinik/database/repository/records"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultAuditLimit = 50

// AuditHandler exposes the reservation audit trail to clinic staff.
type AuditHandler struct {
	Repo   recordsRepo.AuditRepository
	Logger *zap.Logger
}

func NewAuditHandler(repo recordsRepo.AuditRepository, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{Repo: repo, Logger: logger}
}

// ByPatient lists the most recent reservation attempts of one patient.
func (h *AuditHandler) ByPatient(c *gin.Context) {
	limit := int64(defaultAuditLimit)
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 || n > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 500"})
			return
		}
		limit = n
	}

	entries, err := h.Repo.ListByPatient(c.Request.Context(), c.Param("patientId"), limit)
	if err != nil {
		getLogger(h.Logger, c).Error("Failed to list audit entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// Delete removes one audit entry.
func (h *AuditHandler) Delete(c *gin.Context) {
	logger := getLogger(h.Logger, c)
	id := c.Param("id")
	if err := h.Repo.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, recordsRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Audit entry not found"})
			return
		}
		logger.Error("Failed to delete audit entry", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete audit entry"})
		return
	}
	logger.Info("Audit entry deleted", zap.String("id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Audit entry deleted"})
}
