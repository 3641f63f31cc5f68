package recordsRepo

import (
	"context"
	"errors"

	"klinik/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("audit record not found")

// AuditRepository stores the reservation audit trail.
type AuditRepository interface {
	Create(ctx context.Context, record models.ReservationAudit) (string, error)
	GetByID(ctx context.Context, id string) (*models.ReservationAudit, error)
	ListByPatient(ctx context.Context, patientID string, limit int64) ([]models.ReservationAudit, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo returns an AuditRepository backed by the "reservation_audits" collection.
func NewMongoAuditRepo(db *mongo.Database) (AuditRepository, error) {
	r := &mongoAuditRepo{coll: db.Collection("reservation_audits")}
	if err := r.ensureIndexes(); err != nil {
		return nil, err
	}
	return r, nil
}
