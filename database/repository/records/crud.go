package recordsRepo

import (
	"context"
	"errors"
	"time"

	"klinik/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts an audit record and returns its ID.
func (r *mongoAuditRepo) Create(ctx context.Context, record models.ReservationAudit) (string, error) {
	prepare(&record)
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		// a redelivered task carries the same id
		if mongo.IsDuplicateKeyError(err) {
			return record.ID, nil
		}
		return "", err
	}
	return record.ID, nil
}

// GetByID returns an audit record by its ID.
func (r *mongoAuditRepo) GetByID(ctx context.Context, id string) (*models.ReservationAudit, error) {
	var record models.ReservationAudit
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByPatient returns the newest records of one patient first.
func (r *mongoAuditRepo) ListByPatient(ctx context.Context, patientID string, limit int64) ([]models.ReservationAudit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{"patientId": patientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.ReservationAudit{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteByID removes an audit record by ID.
func (r *mongoAuditRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func prepare(record *models.ReservationAudit) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
}
