package booking

import (
	"context"

	"klinik/models"

	"go.uber.org/zap"
)

// History lists the patient's reservations as the clinic API reports them.
func (s *DefaultBookingService) History(ctx context.Context, id models.Identity) ([]models.QueueEntry, error) {
	entries, err := s.API.PatientQueue(ctx, id.Token)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.QueueEntry{}
	}
	return entries, nil
}

// Cancel marks one of the patient's own reservations as "Batal".
func (s *DefaultBookingService) Cancel(ctx context.Context, id models.Identity, queueID string) error {
	entry, err := s.ownEntry(ctx, id, queueID)
	if err != nil {
		return err
	}
	if !entry.Cancellable() {
		return newBookingError(CodeNotCancellable, "reservation is already "+entry.Status, nil)
	}
	if err := s.API.UpdatePatientQueueStatus(ctx, id.Token, queueID, models.QueueStatusCancelled); err != nil {
		return err
	}
	s.recordChange(ctx, models.AuditKindCancel, id, entry)
	return nil
}

// Delete removes a finished or cancelled reservation from the patient's history.
func (s *DefaultBookingService) Delete(ctx context.Context, id models.Identity, queueID string) error {
	entry, err := s.ownEntry(ctx, id, queueID)
	if err != nil {
		return err
	}
	if entry.Cancellable() {
		return newBookingError(CodeNotDeletable, "cancel the reservation before deleting it", nil)
	}
	if err := s.API.DeletePatientQueue(ctx, id.Token, queueID); err != nil {
		return err
	}
	s.recordChange(ctx, models.AuditKindDelete, id, entry)
	return nil
}

func (s *DefaultBookingService) ownEntry(ctx context.Context, id models.Identity, queueID string) (*models.QueueEntry, error) {
	entries, err := s.API.PatientQueue(ctx, id.Token)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].ID.String() == queueID {
			return &entries[i], nil
		}
	}
	return nil, newBookingError(CodeQueueNotFound, "reservation "+queueID+" not found", nil)
}

func (s *DefaultBookingService) recordChange(ctx context.Context, kind string, id models.Identity, entry *models.QueueEntry) {
	audit := s.newAudit(ctx, kind, id, entry.Tanggal, entry.Waktu)
	audit.QueueID = entry.ID.String()
	audit.Status = models.AuditAccepted
	s.audit(ctx, audit)
	s.logger().Info("Reservation updated",
		zap.String("kind", kind),
		zap.String("queueId", audit.QueueID),
		zap.String("by", id.ID),
	)
}
