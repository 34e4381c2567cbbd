package loader

import (
	"context"

	"github.com/campusbase/sheetloader/internal/store"
)

// Placeholder foreign-key targets preserved from the legacy loader: several
// synthesizers pin everything to grade/section/subject 1. Kept as named
// constants so the policy is easy to revisit.
const (
	placeholderSchoolID  = 1
	placeholderGradeID   = 1
	placeholderSectionID = 1
	placeholderSubjectID = 1
	placeholderTeacherID = 1
)

// synthesizeClassDiary creates exactly two fixed diary entries per teacher,
// dated today.
func (l *Loader) synthesizeClassDiary(ctx context.Context, tx store.DBTx) (int, error) {
	teachers, err := store.Teachers(ctx, tx)
	if err != nil {
		return 0, err
	}

	today := l.now()
	var rows [][]any
	for _, t := range teachers {
		for _, activity := range []string{"Activity 1", "Activity 2"} {
			rows = append(rows, []any{
				placeholderGradeID, placeholderSectionID, placeholderSubjectID, t.ID, today, activity,
			})
		}
	}

	return store.InsertRowsStamped(ctx, tx, tableClassDiary,
		[]string{"grade_id", "section_id", "subject_id", "teacher_id", "diary_date", "activity"}, rows)
}

// synthesizeHomework creates three entries per teacher, one in each status.
func (l *Loader) synthesizeHomework(ctx context.Context, tx store.DBTx) (int, error) {
	teachers, err := store.Teachers(ctx, tx)
	if err != nil {
		return 0, err
	}

	today := l.now()
	var rows [][]any
	for _, t := range teachers {
		for _, status := range []string{"Pending", "Submitted", "Completed"} {
			rows = append(rows, []any{
				placeholderSchoolID, placeholderGradeID, placeholderSectionID, placeholderSubjectID,
				t.ID, today, status, "HW " + status,
			})
		}
	}

	return store.InsertRowsStamped(ctx, tx, tableHomework,
		[]string{"school_id", "grade_id", "section_id", "subject_id", "teacher_id", "homework_date", "status", "description"}, rows)
}

// synthesizeTimetable creates a single demonstration period regardless of how
// many teachers or sections exist.
func (l *Loader) synthesizeTimetable(ctx context.Context, tx store.DBTx) (int, error) {
	rows := [][]any{{
		placeholderSchoolID, placeholderGradeID, placeholderSectionID, placeholderSubjectID,
		placeholderTeacherID, "Monday", 1, "Class",
	}}

	return store.InsertRowsStamped(ctx, tx, tableTimetable,
		[]string{"school_id", "grade_id", "section_id", "subject_id", "teacher_id", "day_of_week", "period_number", "period_type"}, rows)
}
