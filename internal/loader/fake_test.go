package loader_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeTx is an in-memory stand-in for the run transaction. Parent-key queries
// are answered from the fixture fields; every insert is recorded.
type fakeTx struct {
	sections [][2]int64       // section_id, grade_id
	teachers [][2]int64       // teacher_id, school_id
	students []int64          // student ids ascending
	subjects map[int64]int64  // school_id -> first subject_id
	payments []int64          // fee_payment ids ascending

	execs      []execCall
	failOn     string // substring of an insert statement that should fail
	failErr    error
	committed  bool
	rolledBack bool
}

type execCall struct {
	sql  string
	args []any
}

func (f *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.failOn != "" && strings.Contains(sql, f.failOn) {
		return pgconn.CommandTag{}, f.failErr
	}
	f.execs = append(f.execs, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	switch {
	case strings.Contains(sql, "FROM ss_t_section"):
		data := make([][]int64, 0, len(f.sections))
		for _, s := range f.sections {
			data = append(data, []int64{s[0], s[1]})
		}
		return &fakeRows{data: data}, nil
	case strings.Contains(sql, "FROM ss_t_teacher ORDER"):
		data := make([][]int64, 0, len(f.teachers))
		for _, t := range f.teachers {
			data = append(data, []int64{t[0], t[1]})
		}
		return &fakeRows{data: data}, nil
	case strings.Contains(sql, "FROM ss_t_student ORDER"):
		data := make([][]int64, 0, len(f.students))
		for _, id := range f.students {
			data = append(data, []int64{id})
		}
		return &fakeRows{data: data}, nil
	case strings.Contains(sql, "ORDER BY fee_payment_id DESC"):
		n := int(args[0].(int64))
		if n > len(f.payments) {
			n = len(f.payments)
		}
		data := make([][]int64, 0, n)
		for i := 0; i < n; i++ {
			data = append(data, []int64{f.payments[len(f.payments)-1-i]})
		}
		return &fakeRows{data: data}, nil
	case strings.Contains(sql, "ORDER BY fee_payment_id"):
		data := make([][]int64, 0, len(f.payments))
		for _, id := range f.payments {
			data = append(data, []int64{id})
		}
		return &fakeRows{data: data}, nil
	}
	return nil, fmt.Errorf("unexpected query: %s", sql)
}

func (f *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if strings.Contains(sql, "FROM ss_t_subject") {
		schoolID := args[0].(int64)
		subjectID, ok := f.subjects[schoolID]
		return fakeRow{scan: func(dest ...any) error {
			if !ok {
				return pgx.ErrNoRows
			}
			*dest[0].(*int64) = subjectID
			return nil
		}}
	}
	return fakeRow{scan: func(dest ...any) error {
		return fmt.Errorf("unexpected query row: %s", sql)
	}}
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	f.rolledBack = true
	return nil
}

// insertsInto returns the recorded insert statements targeting the table.
func (f *fakeTx) insertsInto(table string) []execCall {
	var calls []execCall
	for _, c := range f.execs {
		if strings.HasPrefix(c.sql, "INSERT INTO "+table+" ") {
			calls = append(calls, c)
		}
	}
	return calls
}

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error {
	return r.scan(dest...)
}

type fakeRows struct {
	data [][]int64
	idx  int
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.data) {
		return errors.New("no current row to scan")
	}
	row := r.data[r.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("destination length %d does not match row length %d", len(dest), len(row))
	}
	for i, target := range dest {
		p, ok := target.(*int64)
		if !ok {
			return fmt.Errorf("unsupported scan target %T", target)
		}
		*p = row[i]
	}
	return nil
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, errors.New("not implemented") }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
