package loader

import (
	"context"

	"github.com/campusbase/sheetloader/internal/store"
)

// Target tables of the legacy school schema.
const (
	tableSchools            = "ss_t_schools"
	tableGrades             = "ss_t_grade"
	tableSections           = "ss_t_section"
	tableSubjects           = "ss_t_subject"
	tableTeachers           = "ss_t_teacher"
	tableTeacherSectionMap  = "ss_t_teacher_section_map"
	tableStudents           = "ss_t_student"
	tableStudentAcademicMap = "ss_t_student_academic_map"
	tableAttendance         = "ss_t_attendance_register"
	tableClassDiary         = "ss_t_class_diary"
	tableHomework           = "ss_t_homework_details"
	tableTimetable          = "ss_t_class_timetable"
	tableFeeStructure       = "ss_t_student_fee_structure"
	tableFeePayments        = "ss_t_fee_payment_installment"
	tableSchoolIncome       = "ss_t_school_income"
	tableSalaryStructure    = "ss_t_teacher_salary_structure"
	tablePayslips           = "ss_t_teacher_salary_payslip"
)

const datasetFeePayments = "fee_payments"

type dataset struct {
	name     string
	table    string
	required []string

	// synthesize produces placeholder rows when no source file exists.
	// Datasets without one are skipped with a warning.
	synthesize func(ctx context.Context, tx store.DBTx) (int, error)
}

// datasets returns every dataset in foreign-key-safe insertion order. Parents
// always precede children so synthesizers can read committed parent rows from
// the same transaction.
func (l *Loader) datasets() []dataset {
	return []dataset{
		{name: "schools", table: tableSchools, required: []string{"name"}},
		{name: "grades", table: tableGrades, required: []string{"school_id", "grade_name"}},
		{name: "sections", table: tableSections, required: []string{"grade_id", "section_name"}},
		{name: "subjects", table: tableSubjects, required: []string{"school_id", "subject_name"}},
		{name: "teachers", table: tableTeachers, required: []string{"school_id", "name"}},
		{
			name:       "teacher_section_map",
			table:      tableTeacherSectionMap,
			synthesize: l.synthesizeTeacherSections,
		},
		{name: "students", table: tableStudents, required: []string{"school_id", "name"}},
		{
			name:       "student_academic_map",
			table:      tableStudentAcademicMap,
			synthesize: l.synthesizeStudentAcademicMap,
		},
		{
			name:       "attendance",
			table:      tableAttendance,
			required:   []string{"student_id", "attendance_date", "status"},
			synthesize: l.synthesizeAttendance,
		},
		{
			name:       "class_diary",
			table:      tableClassDiary,
			required:   []string{"grade_id", "section_id", "subject_id", "teacher_id", "diary_date"},
			synthesize: l.synthesizeClassDiary,
		},
		{
			name:       "homework",
			table:      tableHomework,
			required:   []string{"school_id", "grade_id", "section_id", "subject_id", "teacher_id", "homework_date", "status"},
			synthesize: l.synthesizeHomework,
		},
		{
			name:       "timetable",
			table:      tableTimetable,
			required:   []string{"school_id", "grade_id", "section_id", "subject_id", "teacher_id", "day_of_week", "period_number", "period_type"},
			synthesize: l.synthesizeTimetable,
		},
		{name: "fees", table: tableFeeStructure, required: []string{"student_id", "fee_amount"}},
		{
			name:       datasetFeePayments,
			table:      tableFeePayments,
			required:   []string{"student_id", "fee_structure_id", "amount_paid", "payment_date"},
			synthesize: l.synthesizeFeePayments,
		},
		{name: "teacher_salary_structure", table: tableSalaryStructure, required: []string{"teacher_id", "basic_pay"}},
		{
			name:       "teacher_payslips",
			table:      tablePayslips,
			required:   []string{"teacher_id", "month_year", "gross_salary"},
			synthesize: l.synthesizePayslips,
		},
	}
}
