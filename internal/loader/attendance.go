package loader

import (
	"context"
	"time"

	"github.com/campusbase/sheetloader/internal/store"
)

const (
	attendanceDayCount = 20
	presentProbability = 0.85

	statusPresent = "Present"
	statusAbsent  = "Absent"
)

// synthesizeAttendance generates one record per student per business day for
// 20 business days starting the 1st of the current month. Each record is
// Present with probability 0.85, drawn from the injected random source.
func (l *Loader) synthesizeAttendance(ctx context.Context, tx store.DBTx) (int, error) {
	students, err := store.StudentIDs(ctx, tx)
	if err != nil {
		return 0, err
	}

	dates := businessDays(l.now(), attendanceDayCount)
	var rows [][]any
	for _, studentID := range students {
		for _, d := range dates {
			status := statusAbsent
			if l.rnd.Float64() <= presentProbability {
				status = statusPresent
			}
			rows = append(rows, []any{studentID, d, status, nil})
		}
	}

	return store.InsertRowsStamped(ctx, tx, tableAttendance,
		[]string{"student_id", "attendance_date", "status", "remarks"}, rows)
}

// businessDays returns the first n weekdays starting from the 1st of the
// month containing ref.
func businessDays(ref time.Time, n int) []time.Time {
	d := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := make([]time.Time, 0, n)
	for len(days) < n {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days = append(days, d)
		}
		d = d.AddDate(0, 0, 1)
	}
	return days
}
