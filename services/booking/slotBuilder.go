package booking

import (
	"context"
	"fmt"
	"time"

	"klinik/models"
	"klinik/services/schedule"

	"go.uber.org/zap"
)

// GeneralSchedule returns the merged opening hours of general practice.
func (s *DefaultBookingService) GeneralSchedule(ctx context.Context) (*models.ScheduleOverview, error) {
	schedules, err := s.API.PublicGeneralSchedules(ctx)
	if err != nil {
		return nil, err
	}
	_, merged := s.merge("public", schedules)
	return overview(schedules, merged), nil
}

// AdminGeneralCoverage previews how the admin's schedule list merges.
func (s *DefaultBookingService) AdminGeneralCoverage(ctx context.Context, id models.Identity) (*models.ScheduleOverview, error) {
	if !id.IsAdmin() {
		return nil, newBookingError(CodeForbidden, "admin role required", nil)
	}
	schedules, err := s.API.AdminGeneralSchedules(ctx, id.Token)
	if err != nil {
		return nil, err
	}
	_, merged := s.merge("admin", schedules)
	return overview(schedules, merged), nil
}

// GeneralSlots lists every bookable general-practice time.
func (s *DefaultBookingService) GeneralSlots(ctx context.Context, id models.Identity, intervalMinutes int) (*models.SlotList, error) {
	interval := s.interval(intervalMinutes)
	if !schedule.ValidInterval(interval) {
		return nil, newBookingError(CodeInvalidInterval, "interval must be between 1 and 1440 minutes", schedule.ErrInvalidInterval)
	}
	schedules, err := s.API.PatientGeneralSchedules(ctx, id.Token)
	if err != nil {
		return nil, err
	}
	_, merged := s.merge("patient", schedules)
	slots, err := schedule.Expand(merged.Windows, interval)
	if err != nil {
		return nil, newBookingError(CodeInvalidInterval, "interval must be between 1 and 1440 minutes", err)
	}
	return &models.SlotList{
		IntervalMinutes: interval,
		Display:         schedule.Label(merged.Display()),
		Slots:           schedule.Strings(slots),
	}, nil
}

func (s *DefaultBookingService) Specializations(ctx context.Context) ([]models.Specialization, error) {
	return s.API.PublicSpecializations(ctx)
}

func (s *DefaultBookingService) SpecializationSchedules(ctx context.Context) ([]models.SpecializationSchedule, error) {
	return s.API.PublicSpecializationSchedules(ctx)
}

// SpecializationSlots expands the single practice window of a specialist service.
func (s *DefaultBookingService) SpecializationSlots(ctx context.Context, id models.Identity, specializationID string, intervalMinutes int) (*models.SlotList, error) {
	interval := s.interval(intervalMinutes)
	if !schedule.ValidInterval(interval) {
		return nil, newBookingError(CodeInvalidInterval, "interval must be between 1 and 1440 minutes", schedule.ErrInvalidInterval)
	}
	spec, err := s.API.PatientSpecialization(ctx, id.Token, specializationID)
	if err != nil {
		return nil, err
	}
	slots, days, err := s.specializationOffer(spec, interval)
	if err != nil {
		return nil, err
	}
	return &models.SlotList{
		IntervalMinutes: interval,
		Display:         specializationDisplay(spec),
		Days:            schedule.DayNames(days),
		Slots:           schedule.Strings(slots),
	}, nil
}

// specializationOffer returns the slots and weekdays a specialist service offers.
// An unreadable "hari" offers no day at all.
func (s *DefaultBookingService) specializationOffer(spec *models.Specialization, interval int) ([]schedule.TimeOfDay, []time.Weekday, error) {
	slots, err := schedule.ExpandRange(spec.JamMulai, spec.JamSelesai, interval)
	if err != nil {
		return nil, nil, newBookingError(CodeSlotNotOffered,
			fmt.Sprintf("specialization %s has no readable practice hours", spec.ID), err)
	}
	days, err := schedule.ParseDays(spec.Hari)
	if err != nil {
		s.logger().Warn("Unreadable specialization days",
			zap.String("id", spec.ID.String()),
			zap.String("hari", spec.Hari),
			zap.Error(err),
		)
		days = nil
	}
	return slots, days, nil
}

func specializationDisplay(spec *models.Specialization) string {
	if spec.Waktu != "" {
		return spec.Waktu
	}
	end := spec.JamSelesai
	if end == "" {
		end = schedule.EndOfDay.String()
	}
	return spec.JamMulai + " - " + end
}

func overview(schedules []models.GeneralSchedule, merged schedule.MergeResult) *models.ScheduleOverview {
	display := merged.Display()
	if schedules == nil {
		schedules = []models.GeneralSchedule{}
	}
	return &models.ScheduleOverview{
		Windows: merged.Windows,
		Display: display,
		Label:   schedule.Label(display),
		FullDay: merged.FullDay(),
		Records: schedules,
		Skipped: len(merged.Skipped),
	}
}
