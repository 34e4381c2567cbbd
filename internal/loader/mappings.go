package loader

import (
	"context"

	"github.com/campusbase/sheetloader/internal/store"
)

const (
	defaultAcademicYear = "2024-25"

	sectionsPerTeacher = 2
	studentsPerSection = 10
)

// synthesizeTeacherSections round-robin-assigns each teacher to two sections,
// cycling through all sections in ascending id order. The grade comes from the
// picked section; the subject is an arbitrary one belonging to the teacher's
// school (NULL when the school has none).
func (l *Loader) synthesizeTeacherSections(ctx context.Context, tx store.DBTx) (int, error) {
	sections, err := store.Sections(ctx, tx)
	if err != nil {
		return 0, err
	}
	if len(sections) == 0 {
		l.logger.Warn("No sections available; teacher-section auto-assignment produced nothing")
		return 0, nil
	}
	teachers, err := store.Teachers(ctx, tx)
	if err != nil {
		return 0, err
	}

	subjectBySchool := make(map[int64]any)
	var rows [][]any
	idx := 0
	for _, t := range teachers {
		subject, ok := subjectBySchool[t.SchoolID]
		if !ok {
			id, found, err := store.SubjectForSchool(ctx, tx, t.SchoolID)
			if err != nil {
				return 0, err
			}
			if found {
				subject = id
			}
			subjectBySchool[t.SchoolID] = subject
		}
		for n := 0; n < sectionsPerTeacher; n++ {
			sec := sections[idx%len(sections)]
			rows = append(rows, []any{t.ID, sec.GradeID, sec.ID, subject})
			idx++
		}
	}

	return store.InsertRowsStamped(ctx, tx, tableTeacherSectionMap,
		[]string{"teacher_id", "grade_id", "section_id", "subject_id"}, rows)
}

// synthesizeStudentAcademicMap packs students into sections in ascending
// student-id order, ten per section before advancing, cycling sections if they
// run out. The academic year is a fixed constant.
func (l *Loader) synthesizeStudentAcademicMap(ctx context.Context, tx store.DBTx) (int, error) {
	students, err := store.StudentIDs(ctx, tx)
	if err != nil {
		return 0, err
	}
	sections, err := store.Sections(ctx, tx)
	if err != nil {
		return 0, err
	}
	if len(students) > 0 && len(sections) == 0 {
		l.logger.Warn("No sections available; student academic auto-mapping produced nothing")
		return 0, nil
	}

	var rows [][]any
	secIdx := 0
	for i, studentID := range students {
		sec := sections[secIdx%len(sections)]
		rows = append(rows, []any{studentID, sec.GradeID, sec.ID, l.academicYear})
		if (i+1)%studentsPerSection == 0 {
			secIdx++
		}
	}

	return store.InsertRowsStamped(ctx, tx, tableStudentAcademicMap,
		[]string{"student_id", "grade_id", "section_id", "academic_year"}, rows)
}
