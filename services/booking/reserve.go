package booking

import (
	"context"
	"time"

	"klinik/models"
	"klinik/services/schedule"
	"klinik/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// ReserveGeneral books a general-practice slot. The schedule is fetched fresh,
// the chosen time must be one of the offered slots and is mapped back to the
// first raw schedule record that contains it. Nothing is sent upstream when no
// record matches.
func (s *DefaultBookingService) ReserveGeneral(ctx context.Context, id models.Identity, req models.GeneralReservationRequest) (*models.Reservation, error) {
	entry := s.newAudit(ctx, models.AuditKindGeneral, id, req.Date, req.Time)

	date, chosen, err := s.validateDateTime(req.Date, req.Time)
	if err != nil {
		return nil, s.reject(ctx, entry, err)
	}
	interval := s.interval(req.IntervalMinutes)

	schedules, err := s.API.PatientGeneralSchedules(ctx, id.Token)
	if err != nil {
		return nil, s.fail(ctx, entry, err)
	}
	records, merged := s.merge("patient", schedules)

	slots, err := schedule.Expand(merged.Windows, interval)
	if err != nil {
		return nil, s.reject(ctx, entry, newBookingError(CodeInvalidInterval, "interval must be between 1 and 1440 minutes", err))
	}
	if !offered(slots, chosen) {
		return nil, s.reject(ctx, entry, newBookingError(CodeSlotNotOffered, "the chosen time is not an offered slot", nil))
	}

	scheduleID, ok := schedule.Resolve(records, chosen)
	s.Metrics.ObserveResolve(ok)
	if !ok {
		return nil, s.reject(ctx, entry, newBookingError(CodeNoMatchingSchedule,
			"no doctor schedule covers the chosen time", schedule.ErrNoMatchingSchedule))
	}
	entry.ScheduleID = scheduleID

	payload := models.NewQueuePayload(id.ID, date.Format(dateLayout), chosen.String(), req.Registrant)
	payload.GeneralScheduleID = models.FlexID(scheduleID)
	return s.submit(ctx, entry, id, payload)
}

// ReserveSpecialization books a slot of a specialist service. The date must fall
// on one of the service's practice days.
func (s *DefaultBookingService) ReserveSpecialization(ctx context.Context, id models.Identity, req models.SpecializationReservationRequest) (*models.Reservation, error) {
	entry := s.newAudit(ctx, models.AuditKindSpecialization, id, req.Date, req.Time)
	entry.ScheduleID = req.SpecializationID

	date, chosen, err := s.validateDateTime(req.Date, req.Time)
	if err != nil {
		return nil, s.reject(ctx, entry, err)
	}

	spec, err := s.API.PatientSpecialization(ctx, id.Token, req.SpecializationID)
	if err != nil {
		return nil, s.fail(ctx, entry, err)
	}
	slots, days, err := s.specializationOffer(spec, s.interval(req.IntervalMinutes))
	if err != nil {
		return nil, s.reject(ctx, entry, err)
	}
	if !schedule.AllowsDate(days, date) {
		return nil, s.reject(ctx, entry, newBookingError(CodeDayNotAllowed,
			"the specialization is not practised on "+date.Weekday().String(), nil))
	}
	if !offered(slots, chosen) {
		return nil, s.reject(ctx, entry, newBookingError(CodeSlotNotOffered, "the chosen time is not an offered slot", nil))
	}

	payload := models.NewQueuePayload(id.ID, date.Format(dateLayout), chosen.String(), req.Registrant)
	payload.SpecializationID = spec.ID
	return s.submit(ctx, entry, id, payload)
}

// submit guards against duplicates and sends the queue entry upstream.
func (s *DefaultBookingService) submit(ctx context.Context, entry models.ReservationAudit, id models.Identity, payload models.QueuePayload) (*models.Reservation, error) {
	key := guardKey(id.ID, payload.Tanggal, payload.Waktu)
	acquired, err := s.Guard.Acquire(ctx, key)
	if err != nil {
		// guard errors do not block bookings
		s.logger().Warn("Submission guard unavailable", zap.Error(err))
		acquired = true
	}
	if !acquired {
		return nil, s.reject(ctx, entry, newBookingError(CodeDuplicate, "this reservation was already submitted", nil))
	}

	msg, err := s.API.CreateQueue(ctx, id.Token, payload)
	if err != nil {
		if relErr := s.Guard.Release(ctx, key); relErr != nil {
			s.logger().Warn("Failed to release submission guard", zap.String("key", key), zap.Error(relErr))
		}
		return nil, s.fail(ctx, entry, err)
	}

	entry.Status = models.AuditAccepted
	s.audit(ctx, entry)
	s.Metrics.ObserveReservation(entry.Kind, models.AuditAccepted)
	s.logger().Info("Reservation submitted",
		zap.String("kind", entry.Kind),
		zap.String("patientId", id.ID),
		zap.String("scheduleId", entry.ScheduleID),
		zap.String("date", payload.Tanggal),
		zap.String("time", payload.Waktu),
	)

	return &models.Reservation{
		Kind:       entry.Kind,
		ScheduleID: entry.ScheduleID,
		Date:       payload.Tanggal,
		Time:       payload.Waktu,
		Message:    msg,
		CreatedAt:  entry.CreatedAt,
	}, nil
}

// validateDateTime parses the requested date and time; the date may not lie
// before today in the clinic's time zone.
func (s *DefaultBookingService) validateDateTime(rawDate, rawTime string) (time.Time, schedule.TimeOfDay, error) {
	now := s.now()
	date, err := time.ParseInLocation(dateLayout, rawDate, now.Location())
	if err != nil {
		return time.Time{}, 0, newBookingError(CodeInvalidDate, "date must be formatted YYYY-MM-DD", err)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return time.Time{}, 0, newBookingError(CodeInvalidDate, "date lies in the past", nil)
	}
	chosen, err := schedule.ParseTimeOfDay(rawTime)
	if err != nil {
		return time.Time{}, 0, newBookingError(CodeInvalidTime, "time must be formatted HH:MM:SS", err)
	}
	return date, chosen, nil
}

func offered(slots []schedule.TimeOfDay, chosen schedule.TimeOfDay) bool {
	for _, slot := range slots {
		if slot == chosen {
			return true
		}
	}
	return false
}

func (s *DefaultBookingService) newAudit(ctx context.Context, kind string, id models.Identity, date, clock string) models.ReservationAudit {
	return models.ReservationAudit{
		ID:        uuid.New().String(),
		RequestID: utils.RequestIDFrom(ctx),
		Kind:      kind,
		PatientID: id.ID,
		Date:      date,
		Time:      clock,
		CreatedAt: s.now(),
	}
}

func (s *DefaultBookingService) reject(ctx context.Context, entry models.ReservationAudit, err error) error {
	entry.Status = models.AuditRejected
	entry.Error = err.Error()
	s.audit(ctx, entry)
	s.Metrics.ObserveReservation(entry.Kind, models.AuditRejected)
	return err
}

func (s *DefaultBookingService) fail(ctx context.Context, entry models.ReservationAudit, err error) error {
	entry.Status = models.AuditFailed
	entry.Error = err.Error()
	s.audit(ctx, entry)
	s.Metrics.ObserveReservation(entry.Kind, models.AuditFailed)
	s.logger().Error("Reservation failed upstream", zap.String("kind", entry.Kind), zap.Error(err))
	return err
}
