package booking

import (
	"context"
	"encoding/json"

	"klinik/models"
)

// ClinicAPI is the part of the clinic REST API the booking service needs.
type ClinicAPI interface {
	PublicGeneralSchedules(ctx context.Context) ([]models.GeneralSchedule, error)
	PatientGeneralSchedules(ctx context.Context, token string) ([]models.GeneralSchedule, error)
	AdminGeneralSchedules(ctx context.Context, token string) ([]models.GeneralSchedule, error)
	PublicSpecializations(ctx context.Context) ([]models.Specialization, error)
	PublicSpecializationSchedules(ctx context.Context) ([]models.SpecializationSchedule, error)
	PatientSpecialization(ctx context.Context, token, id string) (*models.Specialization, error)
	CreateQueue(ctx context.Context, token string, payload models.QueuePayload) (string, error)
	PatientQueue(ctx context.Context, token string) ([]models.QueueEntry, error)
	UpdatePatientQueueStatus(ctx context.Context, token, id, status string) error
	DeletePatientQueue(ctx context.Context, token, id string) error
	AdminQueue(ctx context.Context, token string, q models.QueueQuery) (*models.QueuePage, error)
	UpdateAdminQueueStatus(ctx context.Context, token, id, status string) error
	DeleteAdminQueue(ctx context.Context, token, id string) error
}

// CatalogueAPI is the admin data part of the clinic REST API.
type CatalogueAPI interface {
	AdminList(ctx context.Context, token string, r models.CatalogueResource, q models.CatalogueQuery) (*models.CataloguePage, error)
	AdminGet(ctx context.Context, token string, r models.CatalogueResource, id string) (json.RawMessage, error)
	AdminSave(ctx context.Context, token string, r models.CatalogueResource, id string, body interface{}) (string, error)
	SaveSpecialization(ctx context.Context, token, id string, in models.SpecializationInput, photo *models.Upload) (string, error)
}

// AuditSink receives one entry per reservation attempt. Failures are logged by
// the caller and never change the outcome of the reservation.
type AuditSink interface {
	Record(ctx context.Context, entry models.ReservationAudit) error
}

// BookingService is the reservation flow offered to the HTTP layer.
type BookingService interface {
	GeneralSchedule(ctx context.Context) (*models.ScheduleOverview, error)
	GeneralSlots(ctx context.Context, id models.Identity, intervalMinutes int) (*models.SlotList, error)
	ReserveGeneral(ctx context.Context, id models.Identity, req models.GeneralReservationRequest) (*models.Reservation, error)

	Specializations(ctx context.Context) ([]models.Specialization, error)
	SpecializationSchedules(ctx context.Context) ([]models.SpecializationSchedule, error)
	SpecializationSlots(ctx context.Context, id models.Identity, specializationID string, intervalMinutes int) (*models.SlotList, error)
	ReserveSpecialization(ctx context.Context, id models.Identity, req models.SpecializationReservationRequest) (*models.Reservation, error)

	History(ctx context.Context, id models.Identity) ([]models.QueueEntry, error)
	Cancel(ctx context.Context, id models.Identity, queueID string) error
	Delete(ctx context.Context, id models.Identity, queueID string) error

	AdminQueue(ctx context.Context, id models.Identity, q models.QueueQuery) (*models.QueuePage, error)
	CompleteQueue(ctx context.Context, id models.Identity, queueID string) error
	DeleteQueue(ctx context.Context, id models.Identity, queueID string) error
	AdminGeneralCoverage(ctx context.Context, id models.Identity) (*models.ScheduleOverview, error)
}

// CatalogueService lets clinic staff manage doctors, specializations and their
// schedules. Save operations create a record when recordID is empty.
type CatalogueService interface {
	List(ctx context.Context, id models.Identity, r models.CatalogueResource, q models.CatalogueQuery) (*models.CataloguePage, error)
	Get(ctx context.Context, id models.Identity, r models.CatalogueResource, recordID string) (json.RawMessage, error)
	SaveDoctor(ctx context.Context, id models.Identity, recordID string, in models.DoctorInput) (string, error)
	SaveGeneralDoctor(ctx context.Context, id models.Identity, recordID string, in models.GeneralDoctorInput) (string, error)
	SaveGeneralSchedule(ctx context.Context, id models.Identity, recordID string, in models.GeneralScheduleInput) (string, error)
	SaveSpecializationSchedule(ctx context.Context, id models.Identity, recordID string, in models.SpecializationScheduleInput) (string, error)
	SaveSpecialization(ctx context.Context, id models.Identity, recordID string, in models.SpecializationInput, photo *models.Upload) (string, error)
}
