package sheet

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

const dateLayout = "2006-01-02"

type template struct {
	dataset string
	fields  []string
	rows    [][]any
}

// templates returns minimal sample workbooks, one per dataset, so the user can
// see the expected format and fill in real data.
func templates(now time.Time) []template {
	today := now.Format(dateLayout)
	return []template{
		{
			dataset: "schools",
			fields:  []string{"name", "type", "contact_details", "location"},
			rows:    [][]any{{"Demo School", "Private", "9999999999", "Mumbai"}},
		},
		{
			dataset: "grades",
			fields:  []string{"school_id", "grade_name", "display_order"},
			rows: [][]any{
				{1, "Grade 6", 1},
				{1, "Grade 7", 2},
				{1, "Grade 8", 3},
			},
		},
		{
			dataset: "sections",
			fields:  []string{"grade_id", "section_name"},
			rows:    [][]any{{1, "A"}, {1, "B"}},
		},
		{
			dataset: "subjects",
			fields:  []string{"school_id", "subject_name"},
			rows:    [][]any{{1, "Math"}, {1, "Science"}},
		},
		{
			dataset: "teachers",
			fields:  []string{"school_id", "name", "contact_info", "gender", "qualification"},
			rows: [][]any{
				{1, "Teacher A", "111", "M", "BEd"},
				{1, "Teacher B", "222", "F", "MEd"},
			},
		},
		{
			dataset: "teacher_section_map",
			fields:  []string{"teacher_id", "grade_id", "section_id", "subject_id"},
			rows:    [][]any{{1, 1, 1, 1}},
		},
		{
			dataset: "students",
			fields:  []string{"school_id", "name", "dob", "gender"},
			rows:    [][]any{{1, "Student 1", "2012-01-01", "M"}},
		},
		{
			dataset: "student_academic_map",
			fields:  []string{"student_id", "grade_id", "section_id", "academic_year"},
			rows:    [][]any{{1, 1, 1, "2024-25"}},
		},
		{
			dataset: "attendance",
			fields:  []string{"student_id", "attendance_date", "status"},
			rows:    [][]any{{1, today, "Present"}},
		},
		{
			dataset: "class_diary",
			fields:  []string{"grade_id", "section_id", "subject_id", "teacher_id", "diary_date", "activity"},
			rows:    [][]any{{1, 1, 1, 1, today, "Intro"}},
		},
		{
			dataset: "homework",
			fields:  []string{"school_id", "grade_id", "section_id", "subject_id", "teacher_id", "homework_date", "status", "description"},
			rows:    [][]any{{1, 1, 1, 1, 1, today, "Pending", "Solve Q1"}},
		},
		{
			dataset: "timetable",
			fields:  []string{"school_id", "grade_id", "section_id", "subject_id", "teacher_id", "day_of_week", "period_number", "period_type"},
			rows:    [][]any{{1, 1, 1, 1, 1, "Monday", 1, "Class"}},
		},
		{
			dataset: "fees",
			fields:  []string{"student_id", "fee_amount"},
			rows:    [][]any{{1, 1000.0}},
		},
		{
			dataset: "fee_payments",
			fields:  []string{"student_id", "fee_structure_id", "amount_paid", "payment_date", "payment_method"},
			rows:    [][]any{{1, 1, 500.0, today, "Online"}},
		},
		{
			dataset: "teacher_salary_structure",
			fields:  []string{"teacher_id", "basic_pay", "hra", "other_allowances"},
			rows:    [][]any{{1, 30000.0, 5000.0, 2000.0}},
		},
		{
			dataset: "teacher_payslips",
			fields:  []string{"teacher_id", "month_year", "gross_salary", "deductions", "net_salary"},
			rows:    [][]any{{1, "2025-06", 37000.0, 2000.0, 35000.0}},
		},
	}
}

// WriteTemplates writes one sample .xlsx per dataset into dir, creating it if
// needed, and returns the paths written.
func WriteTemplates(dir string, now time.Time) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create %s", dir)
	}

	var paths []string
	for _, tpl := range templates(now) {
		path := filepath.Join(dir, tpl.dataset+".xlsx")
		if err := writeTemplate(path, tpl); err != nil {
			return nil, errors.Wrapf(err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeTemplate(path string, tpl template) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	header := make([]any, len(tpl.fields))
	for i, field := range tpl.fields {
		header[i] = field
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	for i, row := range tpl.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
