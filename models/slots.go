package models

import "klinik/services/schedule"

// GeneralSchedule is one general-practice doctor schedule as published by the clinic API.
type GeneralSchedule struct {
	ID         FlexID `json:"id"`
	Waktu      string `json:"waktu"` // "HH:MM:SS - HH:MM:SS", may wrap midnight
	DoctorID   FlexID `json:"fk_dt_dokter_umum,omitempty"`
	DoctorName string `json:"nama_dokter,omitempty"`
	Status     string `json:"status,omitempty"`
}

// Specialization is a specialist service with its single practice window.
type Specialization struct {
	ID         FlexID `json:"id"`
	Nama       string `json:"nama"`
	Hari       string `json:"hari"`                  // e.g. "Senin - Kamis"
	Waktu      string `json:"waktu"`                 // display range
	JamMulai   string `json:"jam_mulai,omitempty"`   // "HH:MM:SS"
	JamSelesai string `json:"jam_selesai,omitempty"` // empty means open until end of day
	Status     string `json:"status,omitempty"`
	Deskripsi  string `json:"deskripsi,omitempty"`
}

// SpecializationSchedule is a row of the public specialist timetable.
type SpecializationSchedule struct {
	ID               FlexID `json:"id"`
	Nama             string `json:"nama"`
	Hari             string `json:"hari"`
	Waktu            string `json:"waktu"`
	SpecializationID FlexID `json:"fk_dt_layanan_spesialisasi,omitempty"`
	Specialization   string `json:"nama_spesialisasi,omitempty"`
}

// ScheduleRecords converts general schedules into core records.
func ScheduleRecords(schedules []GeneralSchedule) []schedule.Record {
	records := make([]schedule.Record, len(schedules))
	for i, s := range schedules {
		records[i] = schedule.Record{ID: s.ID.String(), Window: s.Waktu}
	}
	return records
}

// ScheduleOverview is the merged view of the general-practice schedules.
type ScheduleOverview struct {
	Windows []schedule.Window `json:"windows"`
	Display string            `json:"display"`
	Label   string            `json:"label"` // "24 Jam" when the clinic never closes
	FullDay bool              `json:"fullDay"`
	Records []GeneralSchedule `json:"records"`
	Skipped int               `json:"skipped,omitempty"`
}

// SlotList is the set of bookable times offered to a patient.
type SlotList struct {
	IntervalMinutes int      `json:"intervalMinutes"`
	Display         string   `json:"display,omitempty"`
	Days            []string `json:"days,omitempty"`
	Slots           []string `json:"slots"`
}
