package store

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
)

// Parent-key reads used by the fallback synthesizers. They run on the same
// transaction as the inserts so rows committed earlier in the run are visible.

type SectionRef struct {
	ID      int64
	GradeID int64
}

type TeacherRef struct {
	ID       int64
	SchoolID int64
}

func Sections(ctx context.Context, tx DBTx) ([]SectionRef, error) {
	rows, err := tx.Query(ctx, `SELECT section_id, grade_id FROM ss_t_section ORDER BY section_id`)
	if err != nil {
		return nil, errors.Wrap(err, "query sections")
	}
	defer rows.Close()

	var sections []SectionRef
	for rows.Next() {
		var s SectionRef
		if err := rows.Scan(&s.ID, &s.GradeID); err != nil {
			return nil, errors.Wrap(err, "scan section")
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func Teachers(ctx context.Context, tx DBTx) ([]TeacherRef, error) {
	rows, err := tx.Query(ctx, `SELECT teacher_id, school_id FROM ss_t_teacher ORDER BY teacher_id`)
	if err != nil {
		return nil, errors.Wrap(err, "query teachers")
	}
	defer rows.Close()

	var teachers []TeacherRef
	for rows.Next() {
		var t TeacherRef
		if err := rows.Scan(&t.ID, &t.SchoolID); err != nil {
			return nil, errors.Wrap(err, "scan teacher")
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

func StudentIDs(ctx context.Context, tx DBTx) ([]int64, error) {
	return queryIDs(ctx, tx, `SELECT student_id FROM ss_t_student ORDER BY student_id`)
}

// SubjectForSchool picks one subject belonging to the school. Which one is
// implementation-defined; the first by ascending id keeps it stable.
func SubjectForSchool(ctx context.Context, tx DBTx, schoolID int64) (int64, bool, error) {
	var id int64
	err := tx.QueryRow(ctx,
		`SELECT subject_id FROM ss_t_subject WHERE school_id = $1 ORDER BY subject_id LIMIT 1`,
		schoolID,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "query subject")
	}
	return id, true, nil
}

// PaymentIDs returns every fee payment id in ascending order.
func PaymentIDs(ctx context.Context, tx DBTx) ([]int64, error) {
	return queryIDs(ctx, tx, `SELECT fee_payment_id FROM ss_t_fee_payment_installment ORDER BY fee_payment_id`)
}

// LatestPaymentIDs returns the n most recently assigned payment ids in
// ascending order.
func LatestPaymentIDs(ctx context.Context, tx DBTx, n int) ([]int64, error) {
	ids, err := queryIDs(ctx, tx,
		`SELECT fee_payment_id FROM ss_t_fee_payment_installment ORDER BY fee_payment_id DESC LIMIT $1`, int64(n))
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids, nil
}

func queryIDs(ctx context.Context, tx DBTx, sql string, args ...any) ([]int64, error) {
	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query ids")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "scan id")
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
