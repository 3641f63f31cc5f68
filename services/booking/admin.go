package booking

import (
	"context"

	"klinik/models"
)

const defaultQueuePageSize = 5

// AdminQueue lists the clinic queue, today's entries by default.
func (s *DefaultBookingService) AdminQueue(ctx context.Context, id models.Identity, q models.QueueQuery) (*models.QueuePage, error) {
	if !id.IsAdmin() {
		return nil, newBookingError(CodeForbidden, "admin role required", nil)
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = defaultQueuePageSize
	}
	return s.API.AdminQueue(ctx, id.Token, q)
}

// CompleteQueue marks a queue entry as served.
func (s *DefaultBookingService) CompleteQueue(ctx context.Context, id models.Identity, queueID string) error {
	if !id.IsAdmin() {
		return newBookingError(CodeForbidden, "admin role required", nil)
	}
	if err := s.API.UpdateAdminQueueStatus(ctx, id.Token, queueID, models.QueueStatusDone); err != nil {
		return err
	}
	s.recordChange(ctx, models.AuditKindComplete, id, &models.QueueEntry{ID: models.FlexID(queueID)})
	return nil
}

func (s *DefaultBookingService) DeleteQueue(ctx context.Context, id models.Identity, queueID string) error {
	if !id.IsAdmin() {
		return newBookingError(CodeForbidden, "admin role required", nil)
	}
	if err := s.API.DeleteAdminQueue(ctx, id.Token, queueID); err != nil {
		return err
	}
	s.recordChange(ctx, models.AuditKindDelete, id, &models.QueueEntry{ID: models.FlexID(queueID)})
	return nil
}
