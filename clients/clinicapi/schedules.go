package clinicapi

import (
	"context"
	"net/http"
	"net/url"

	"klinik/models"
)

// PublicGeneralSchedules lists the general-practice schedules shown to visitors.
func (c *Client) PublicGeneralSchedules(ctx context.Context) ([]models.GeneralSchedule, error) {
	var out []models.GeneralSchedule
	_, err := c.do(ctx, http.MethodGet, "/v1/public/data/jadwal-dokter-umum", "", nil, nil, &out)
	return out, err
}

// PatientGeneralSchedules lists the general-practice schedules bookable by the patient.
func (c *Client) PatientGeneralSchedules(ctx context.Context, token string) ([]models.GeneralSchedule, error) {
	var out []models.GeneralSchedule
	_, err := c.do(ctx, http.MethodGet, "/v1/pasien/data/jadwal-dokter-umum", token, nil, nil, &out)
	return out, err
}

// AdminGeneralSchedules lists the general-practice schedules as managed by admins.
func (c *Client) AdminGeneralSchedules(ctx context.Context, token string) ([]models.GeneralSchedule, error) {
	var out []models.GeneralSchedule
	_, err := c.do(ctx, http.MethodGet, "/v1/admin/data/jadwal-dokter-umum", token, nil, nil, &out)
	return out, err
}

func (c *Client) PublicSpecializations(ctx context.Context) ([]models.Specialization, error) {
	var out []models.Specialization
	_, err := c.do(ctx, http.MethodGet, "/v1/public/data/layanan-spesialisasi", "", nil, nil, &out)
	return out, err
}

func (c *Client) PublicSpecializationSchedules(ctx context.Context) ([]models.SpecializationSchedule, error) {
	var out []models.SpecializationSchedule
	_, err := c.do(ctx, http.MethodGet, "/v1/public/data/jadwal-dokter-spesialis", "", nil, nil, &out)
	return out, err
}

// PatientSpecialization fetches one specialist service with its practice window.
func (c *Client) PatientSpecialization(ctx context.Context, token, id string) (*models.Specialization, error) {
	var out models.Specialization
	_, err := c.do(ctx, http.MethodGet, "/v1/pasien/data/layanan-spesialisasi/"+url.PathEscape(id), token, nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
