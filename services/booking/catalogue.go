package booking

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"klinik/models"
	"klinik/services/schedule"

	"go.uber.org/zap"
)

// DefaultCatalogueService implements CatalogueService. Records are passed
// through to the clinic API once their times and days are readable by the
// slot computation.
type DefaultCatalogueService struct {
	API    CatalogueAPI
	Logger *zap.Logger
}

func NewCatalogueService(api CatalogueAPI, logger *zap.Logger) *DefaultCatalogueService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultCatalogueService{API: api, Logger: logger}
}

func (s *DefaultCatalogueService) List(ctx context.Context, id models.Identity, r models.CatalogueResource, q models.CatalogueQuery) (*models.CataloguePage, error) {
	if err := checkCatalogue(id, r); err != nil {
		return nil, err
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = defaultQueuePageSize
	}
	return s.API.AdminList(ctx, id.Token, r, q)
}

func (s *DefaultCatalogueService) Get(ctx context.Context, id models.Identity, r models.CatalogueResource, recordID string) (json.RawMessage, error) {
	if err := checkCatalogue(id, r); err != nil {
		return nil, err
	}
	return s.API.AdminGet(ctx, id.Token, r, recordID)
}

func (s *DefaultCatalogueService) SaveDoctor(ctx context.Context, id models.Identity, recordID string, in models.DoctorInput) (string, error) {
	return s.save(ctx, id, models.ResourceDoctors, recordID, in)
}

func (s *DefaultCatalogueService) SaveGeneralDoctor(ctx context.Context, id models.Identity, recordID string, in models.GeneralDoctorInput) (string, error) {
	return s.save(ctx, id, models.ResourceGeneralDoctors, recordID, in)
}

func (s *DefaultCatalogueService) SaveSpecializationSchedule(ctx context.Context, id models.Identity, recordID string, in models.SpecializationScheduleInput) (string, error) {
	return s.save(ctx, id, models.ResourceSpecializationSchedules, recordID, in)
}

// SaveGeneralSchedule stores a general-practice schedule. The window must parse
// the same way the slot computation will later read it.
func (s *DefaultCatalogueService) SaveGeneralSchedule(ctx context.Context, id models.Identity, recordID string, in models.GeneralScheduleInput) (string, error) {
	if err := checkCatalogue(id, models.ResourceGeneralSchedules); err != nil {
		return "", err
	}
	end := ""
	if in.JamSelesai != nil {
		end = *in.JamSelesai
	}
	start, end, err := normalizeHours(in.Waktu, in.JamMulai, end)
	if err != nil {
		return "", err
	}
	in.Waktu = ""
	in.JamMulai = start
	in.JamSelesai = nil
	if end != "" {
		in.JamSelesai = &end
	}
	return s.save(ctx, id, models.ResourceGeneralSchedules, recordID, in)
}

// SaveSpecialization stores a specialist service with its optional photo.
func (s *DefaultCatalogueService) SaveSpecialization(ctx context.Context, id models.Identity, recordID string, in models.SpecializationInput, photo *models.Upload) (string, error) {
	if err := checkCatalogue(id, models.ResourceSpecializations); err != nil {
		return "", err
	}
	start, end, err := normalizeHours(in.Waktu, in.JamMulai, in.JamSelesai)
	if err != nil {
		return "", err
	}
	in.Waktu, in.JamMulai, in.JamSelesai = "", start, end

	if in.HariMulai, err = normalizeDay(in.HariMulai); err != nil {
		return "", err
	}
	if strings.TrimSpace(in.HariSelesai) != "" {
		if in.HariSelesai, err = normalizeDay(in.HariSelesai); err != nil {
			return "", err
		}
	}

	msg, err := s.API.SaveSpecialization(ctx, id.Token, recordID, in, photo)
	if err != nil {
		return "", err
	}
	s.logSaved(id, models.ResourceSpecializations, recordID)
	return msg, nil
}

func (s *DefaultCatalogueService) save(ctx context.Context, id models.Identity, r models.CatalogueResource, recordID string, body interface{}) (string, error) {
	if err := checkCatalogue(id, r); err != nil {
		return "", err
	}
	msg, err := s.API.AdminSave(ctx, id.Token, r, recordID, body)
	if err != nil {
		return "", err
	}
	s.logSaved(id, r, recordID)
	return msg, nil
}

func (s *DefaultCatalogueService) logSaved(id models.Identity, r models.CatalogueResource, recordID string) {
	action := "updated"
	if recordID == "" {
		action = "created"
	}
	s.Logger.Info("Catalogue record "+action,
		zap.String("resource", string(r)),
		zap.String("recordID", recordID),
		zap.String("adminID", id.ID),
	)
}

func checkCatalogue(id models.Identity, r models.CatalogueResource) error {
	if !id.IsAdmin() {
		return newBookingError(CodeForbidden, "admin role required", nil)
	}
	if !r.Valid() {
		return newBookingError(CodeUnknownResource, "unknown catalogue resource "+string(r), nil)
	}
	return nil
}

// normalizeHours reads practice hours given either as a "start - end" range
// or as separate start and optional end times, and returns them as
// "HH:MM:SS". An empty end means open until the end of the day.
func normalizeHours(waktu, start, end string) (string, string, error) {
	if waktu = strings.TrimSpace(waktu); waktu != "" {
		if strings.TrimSpace(start) != "" || strings.TrimSpace(end) != "" {
			return "", "", newBookingError(CodeInvalidSchedule, "give either waktu or jam_mulai/jam_selesai", nil)
		}
		if !strings.Contains(waktu, "-") {
			start = waktu
		} else {
			w, err := schedule.ParseWindow(waktu)
			if err != nil {
				return "", "", newBookingError(CodeInvalidSchedule, "waktu must be HH:MM:SS - HH:MM:SS", err)
			}
			return w.Start.String(), w.End.String(), nil
		}
	}

	s, err := schedule.ParseTimeOfDay(start)
	if err != nil {
		return "", "", newBookingError(CodeInvalidSchedule, "jam_mulai must be HH:MM:SS", err)
	}
	if strings.TrimSpace(end) == "" {
		return s.String(), "", nil
	}
	e, err := schedule.ParseTimeOfDay(end)
	if err != nil {
		return "", "", newBookingError(CodeInvalidSchedule, "jam_selesai must be HH:MM:SS", err)
	}
	return s.String(), e.String(), nil
}

func normalizeDay(name string) (string, error) {
	d, err := schedule.ParseDay(name)
	if err != nil {
		return "", newBookingError(CodeInvalidSchedule, "unknown day "+name, err)
	}
	return schedule.DayNames([]time.Weekday{d})[0], nil
}
