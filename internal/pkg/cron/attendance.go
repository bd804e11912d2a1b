package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cashbookhq/cashbook-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository) *AttendanceJobs {
	return &AttendanceJobs{attendanceRepo: attendanceRepo}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills an absent record for every active employee who
// was never marked the previous day, so payroll ranges see a complete ledger.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	yesterday := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)

	slog.Info("Cron: Starting mark-absent job", "date", yesterday.Format("2006-01-02"))

	missing, err := j.attendanceRepo.ListMissingForDate(ctx, yesterday)
	if err != nil {
		return err
	}

	marked := 0
	for _, m := range missing {
		_, err := j.attendanceRepo.Upsert(ctx, attendance.Attendance{
			EmployeeID: m.EmployeeID,
			CompanyID:  m.CompanyID,
			Date:       yesterday,
			Status:     attendance.StatusAbsent,
		})
		if err != nil {
			slog.Error("Cron: Failed to mark employee absent",
				"employee_id", m.EmployeeID,
				"date", yesterday.Format("2006-01-02"),
				"error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: Mark-absent job finished", "marked", marked, "missing", len(missing))
	return nil
}
