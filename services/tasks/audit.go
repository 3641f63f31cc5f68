package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	recordsRepo "klinik/database/repository/records"
	"klinik/models"

	"github.com/hibiken/asynq"
)

const (
	TypeAuditRecord = "audit:record"
	AuditQueue      = "audit"
)

// NewAuditTask wraps an audit entry. The entry id doubles as the task id so a
// retried enqueue cannot store the entry twice.
func NewAuditTask(entry models.ReservationAudit) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(entry)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAuditRecord, b)
	opts := []asynq.Option{
		asynq.Queue(AuditQueue),
		asynq.MaxRetry(5),
	}
	if entry.ID != "" {
		opts = append(opts, asynq.TaskID(entry.ID))
	}
	return task, opts, nil
}

// ParseAuditTask decodes the entry carried by an audit task.
func ParseAuditTask(task *asynq.Task) (models.ReservationAudit, error) {
	var entry models.ReservationAudit
	if err := json.Unmarshal(task.Payload(), &entry); err != nil {
		return entry, fmt.Errorf("invalid audit payload: %v: %w", err, asynq.SkipRetry)
	}
	return entry, nil
}

// Enqueuer is an audit sink that hands entries to the background worker.
type Enqueuer struct {
	Client *asynq.Client
}

func (e *Enqueuer) Record(ctx context.Context, entry models.ReservationAudit) error {
	task, opts, err := NewAuditTask(entry)
	if err != nil {
		return err
	}
	_, err = e.Client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

// RepositorySink writes audit entries synchronously, used when no queue runs.
type RepositorySink struct {
	Repo recordsRepo.AuditRepository
}

func (s *RepositorySink) Record(ctx context.Context, entry models.ReservationAudit) error {
	_, err := s.Repo.Create(ctx, entry)
	return err
}
