// File: models/records.go
package models

import "time"

// Audit kinds.
const (
	AuditKindGeneral        = "general"
	AuditKindSpecialization = "specialization"
	AuditKindCancel         = "cancel"
	AuditKindDelete         = "delete"
	AuditKindComplete       = "complete"
)

// Audit outcomes.
const (
	AuditAccepted = "accepted"
	AuditRejected = "rejected"
	AuditFailed   = "failed"
)

// ReservationAudit records one reservation attempt made through the gateway.
type ReservationAudit struct {
	ID         string    `bson:"id" json:"id"`                                   // Unique audit id (UUID)
	RequestID  string    `bson:"requestId,omitempty" json:"requestId,omitempty"` // Correlates with the HTTP request
	Kind       string    `bson:"kind" json:"kind"`                               // general, specialization, cancel...
	PatientID  string    `bson:"patientId" json:"patientId"`                     // Identity that made the call
	ScheduleID string    `bson:"scheduleId,omitempty" json:"scheduleId,omitempty"`
	QueueID    string    `bson:"queueId,omitempty" json:"queueId,omitempty"`
	Date       string    `bson:"date,omitempty" json:"date,omitempty"` // YYYY-MM-DD
	Time       string    `bson:"time,omitempty" json:"time,omitempty"` // HH:MM:SS
	Status     string    `bson:"status" json:"status"`                 // accepted, rejected or failed
	Error      string    `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
