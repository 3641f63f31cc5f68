package recordsRepo

import (
	"context"
	"sort"
	"sync"

	"klinik/models"
)

// MemoryAuditRepo keeps audit records in process. It backs the gateway when
// MongoDB is disabled and serves as the repository in tests.
type MemoryAuditRepo struct {
	mu      sync.RWMutex
	records map[string]models.ReservationAudit
}

func NewMemoryAuditRepo() *MemoryAuditRepo {
	return &MemoryAuditRepo{records: map[string]models.ReservationAudit{}}
}

func (r *MemoryAuditRepo) Create(ctx context.Context, record models.ReservationAudit) (string, error) {
	prepare(&record)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[record.ID]; !exists {
		r.records[record.ID] = record
	}
	return record.ID, nil
}

func (r *MemoryAuditRepo) GetByID(ctx context.Context, id string) (*models.ReservationAudit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (r *MemoryAuditRepo) ListByPatient(ctx context.Context, patientID string, limit int64) ([]models.ReservationAudit, error) {
	r.mu.RLock()
	out := []models.ReservationAudit{}
	for _, record := range r.records {
		if record.PatientID == patientID {
			out = append(out, record)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryAuditRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return ErrNotFound
	}
	delete(r.records, id)
	return nil
}
