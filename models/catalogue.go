package models

import (
	"encoding/json"
	"io"
)

// CatalogueResource is an admin-managed collection of the clinic API.
type CatalogueResource string

const (
	ResourceDoctors                 CatalogueResource = "dokter"
	ResourceGeneralDoctors          CatalogueResource = "dokter-umum"
	ResourceSpecializations         CatalogueResource = "layanan-spesialisasi"
	ResourceGeneralSchedules        CatalogueResource = "jadwal-dokter-umum"
	ResourceSpecializationSchedules CatalogueResource = "jadwal-dokter-spesialis"
)

func (r CatalogueResource) Valid() bool {
	switch r {
	case ResourceDoctors, ResourceGeneralDoctors, ResourceSpecializations,
		ResourceGeneralSchedules, ResourceSpecializationSchedules:
		return true
	}
	return false
}

// SearchParam is the query parameter the clinic API filters a list by.
func (r CatalogueResource) SearchParam() string {
	switch r {
	case ResourceGeneralSchedules, ResourceSpecializationSchedules:
		return "waktu"
	}
	return "name"
}

// CatalogueQuery selects one page of a catalogue list.
type CatalogueQuery struct {
	Page    int    `form:"page" binding:"min=0"`
	PerPage int    `form:"per_page" binding:"min=0,max=100"`
	Search  string `form:"search"`
}

// CataloguePage is one page of a catalogue list. Items are passed through as
// the clinic API sent them.
type CataloguePage struct {
	Items []json.RawMessage `json:"items"`
	Next  bool              `json:"next"`
	Last  int               `json:"last"`
}

// DoctorInput creates or updates a specialist doctor.
type DoctorInput struct {
	Name             string `json:"nama" binding:"required"`
	SpecializationID FlexID `json:"fk_dt_layanan_spesialisasi" binding:"required"`
	Active           bool   `json:"aktif"`
}

// GeneralDoctorInput creates or updates a general-practice doctor.
type GeneralDoctorInput struct {
	Name   string `json:"nama" binding:"required"`
	Active bool   `json:"aktif"`
}

// GeneralScheduleInput creates or updates a general-practice schedule. The
// window is given either as Waktu ("HH:MM:SS - HH:MM:SS") or as JamMulai with
// an optional JamSelesai; a nil JamSelesai keeps the schedule open until the
// end of the day. Each weekday names the general doctor on duty.
type GeneralScheduleInput struct {
	Waktu      string  `json:"waktu,omitempty"`
	JamMulai   string  `json:"jam_mulai"`
	JamSelesai *string `json:"jam_selesai"`
	Senin      FlexID  `json:"senin_by_fk_dt_dokter_umum"`
	Selasa     FlexID  `json:"selasa_by_fk_dt_dokter_umum"`
	Rabu       FlexID  `json:"rabu_by_fk_dt_dokter_umum"`
	Kamis      FlexID  `json:"kamis_by_fk_dt_dokter_umum"`
	Jumat      FlexID  `json:"jumat_by_fk_dt_dokter_umum"`
	Sabtu      FlexID  `json:"sabtu_by_fk_dt_dokter_umum"`
	Minggu     FlexID  `json:"minggu_by_fk_dt_dokter_umum"`
}

// SpecializationScheduleInput creates or updates a row of the specialist timetable.
type SpecializationScheduleInput struct {
	Name             string `json:"nama" binding:"required"`
	SpecializationID FlexID `json:"fk_dt_layanan_spesialisasi" binding:"required"`
}

// SpecializationInput creates or updates a specialist service. It travels as a
// multipart form because the service carries a photo.
type SpecializationInput struct {
	Name        string `form:"nama" binding:"required"`
	Waktu       string `form:"waktu"`
	JamMulai    string `form:"jam_mulai"`
	JamSelesai  string `form:"jam_selesai"`
	HariMulai   string `form:"hari_mulai" binding:"required"`
	HariSelesai string `form:"hari_selesai"`
	Active      bool   `form:"aktif"`
}

// Upload is a file forwarded to the clinic API.
type Upload struct {
	Filename string
	Body     io.Reader
}
