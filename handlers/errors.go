package handlers

import (
	"errors"
	"net/http"

	"klinik/clients/clinicapi"
	"klinik/services/booking"
	"klinik/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var bookingStatus = map[string]int{
	booking.CodeInvalidDate:        http.StatusBadRequest,
	booking.CodeInvalidTime:        http.StatusBadRequest,
	booking.CodeInvalidInterval:    http.StatusBadRequest,
	booking.CodeSlotNotOffered:     http.StatusUnprocessableEntity,
	booking.CodeDayNotAllowed:      http.StatusUnprocessableEntity,
	booking.CodeNoMatchingSchedule: http.StatusUnprocessableEntity,
	booking.CodeDuplicate:          http.StatusConflict,
	booking.CodeNotCancellable:     http.StatusConflict,
	booking.CodeNotDeletable:       http.StatusConflict,
	booking.CodeQueueNotFound:      http.StatusNotFound,
	booking.CodeForbidden:          http.StatusForbidden,
	booking.CodeInvalidSchedule:    http.StatusBadRequest,
	booking.CodeUnknownResource:    http.StatusNotFound,
}

// respondError writes err as a JSON error. Refusals by the gateway keep their
// code, clinic API rejections keep their status and message, and anything else
// from upstream becomes 502.
func respondError(c *gin.Context, logger *zap.Logger, action string, err error) {
	var be *booking.BookingError
	if errors.As(err, &be) {
		status, ok := bookingStatus[be.Code]
		if !ok {
			status = http.StatusBadRequest
		}
		utils.JSONErrorCode(c, status, be.Code, be.Message, "")
		return
	}

	var apiErr *clinicapi.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden,
			http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity:
			utils.JSONErrorCode(c, apiErr.Status, "upstream_rejected", apiErr.Message, "")
			return
		}
	}

	logger.Error(action+" failed", zap.Error(err))
	utils.JSONErrorCode(c, http.StatusBadGateway, "upstream_unavailable", "Clinic service unavailable", "")
}
