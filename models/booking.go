package models

import "time"

// Queue statuses as written by the clinic API.
const (
	QueueStatusWaiting   = "Menunggu"
	QueueStatusCancelled = "Batal"
	QueueStatusDone      = "Selesai"
)

// Registrant is the person the reservation is made for. A patient may book on
// behalf of someone else, so these fields are not taken from the identity.
type Registrant struct {
	Name        string `json:"name" binding:"required"`
	Age         int    `json:"age" binding:"required,min=0,max=150"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
}

// GeneralReservationRequest books a general-practice slot.
type GeneralReservationRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // one of the offered slots

	// IntervalMinutes must match the interval the slots were listed with; zero
	// means the configured default.
	IntervalMinutes int `json:"intervalMinutes" binding:"min=0,max=1440"`
	Registrant
}

// SpecializationReservationRequest books a slot of a specialist service.
type SpecializationReservationRequest struct {
	SpecializationID string `json:"specializationId" binding:"required"`
	Date             string `json:"date" binding:"required"`
	Time             string `json:"time" binding:"required"`
	IntervalMinutes  int    `json:"intervalMinutes" binding:"min=0,max=1440"`
	Registrant
}

// QueuePayload is the body POSTed to the clinic API to create a queue entry.
// Exactly one of GeneralScheduleID or SpecializationID is set.
type QueuePayload struct {
	Tanggal           string `json:"tanggal"`
	Waktu             string `json:"waktu"`
	PatientID         FlexID `json:"fk_dt_pasien"`
	GeneralScheduleID FlexID `json:"fk_dt_jadwal_dokter_umum,omitempty"`
	SpecializationID  FlexID `json:"fk_dt_layanan_spesialisasi,omitempty"`
	NamaPendaftar     string `json:"nama_pendaftar"`
	Umur              int    `json:"umur"`
	NoHandphone       string `json:"no_handphone"`
	Address           string `json:"address"`
	Gender            string `json:"gender"`
}

// NewQueuePayload fills the registrant part of a queue payload.
func NewQueuePayload(patientID, date, clock string, r Registrant) QueuePayload {
	return QueuePayload{
		Tanggal:       date,
		Waktu:         clock,
		PatientID:     FlexID(patientID),
		NamaPendaftar: r.Name,
		Umur:          r.Age,
		NoHandphone:   r.PhoneNumber,
		Address:       r.Address,
		Gender:        r.Gender,
	}
}

// QueueEntry is one reservation as listed by the clinic API.
type QueueEntry struct {
	ID                      FlexID `json:"id"`
	Tanggal                 string `json:"tanggal"`
	Waktu                   string `json:"waktu"`
	NamaPendaftar           string `json:"nama_pendaftar"`
	NamaSpesialisasi        string `json:"nama_spesialisasi,omitempty"`
	NamaLayananSpesialisasi string `json:"nama_layanan_spesialisasi,omitempty"`
	Status                  string `json:"status"`
}

// Cancellable reports whether the patient may still cancel the entry.
func (q QueueEntry) Cancellable() bool {
	return q.Status != QueueStatusCancelled && q.Status != QueueStatusDone
}

// StatusUpdate is the body of a queue status change.
type StatusUpdate struct {
	ID      FlexID            `json:"id"`
	Payload StatusUpdateValue `json:"payload"`
}

type StatusUpdateValue struct {
	Status string `json:"status"`
}

// QueueQuery filters the admin queue listing.
type QueueQuery struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Name      string `form:"name"`
	TodayOnly bool   `form:"is_today"`
}

// QueuePage is a page of the admin queue.
type QueuePage struct {
	Entries []QueueEntry `json:"entries"`
	Next    bool         `json:"next"`
	Last    int          `json:"last,omitempty"`
}

// Reservation is what the gateway returns after a successful booking.
type Reservation struct {
	Kind       string    `json:"kind"` // "general" or "specialization"
	ScheduleID string    `json:"scheduleId"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
