package booking

import (
	"context"
	"time"

	"klinik/models"
	"klinik/services/schedule"
	"klinik/utils"

	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService on top of the clinic API.
// It keeps no state between calls: schedules are fetched and recomputed on
// every request.
type DefaultBookingService struct {
	API             ClinicAPI
	Guard           *SubmissionGuard
	Audit           AuditSink
	Metrics         *utils.BookingMetrics
	Logger          *zap.Logger
	Location        *time.Location
	IntervalMinutes int
	Now             func() time.Time
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultBookingService) now() time.Time {
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	if s.Now != nil {
		return s.Now().In(loc)
	}
	return time.Now().In(loc)
}

// interval picks the requested interval or the configured default.
func (s *DefaultBookingService) interval(requested int) int {
	if requested != 0 {
		return requested
	}
	if s.IntervalMinutes > 0 {
		return s.IntervalMinutes
	}
	return schedule.DefaultIntervalMinutes
}

// merge merges general schedules and reports the records it had to skip.
func (s *DefaultBookingService) merge(source string, schedules []models.GeneralSchedule) ([]schedule.Record, schedule.MergeResult) {
	records := models.ScheduleRecords(schedules)
	merged := schedule.Merge(records)
	for _, skipped := range merged.Skipped {
		s.logger().Warn("Skipping schedule record",
			zap.String("source", source),
			zap.String("id", skipped.ID),
			zap.String("waktu", skipped.Raw),
			zap.Error(skipped.Err),
		)
	}
	s.Metrics.ObserveSkipped(source, len(merged.Skipped))
	return records, merged
}

func (s *DefaultBookingService) audit(ctx context.Context, entry models.ReservationAudit) {
	if s.Audit == nil {
		return
	}
	if err := s.Audit.Record(ctx, entry); err != nil {
		s.logger().Error("Failed to record reservation audit",
			zap.String("kind", entry.Kind),
			zap.String("patientId", entry.PatientID),
			zap.Error(err),
		)
	}
}
