package store

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// InsertRows executes one multi-row parameterized INSERT for all rows in the
// given field order. Empty input returns 0 without touching the store. Store
// failures propagate to the caller untouched.
func InsertRows(ctx context.Context, tx DBTx, table string, fields []string, rows [][]any) (int, error) {
	return insertRows(ctx, tx, table, fields, rows, false)
}

// InsertRowsStamped is InsertRows with created_at and updated_at appended as
// now() on every row. Synthesized rows go through here; file-sourced rows rely
// on column defaults.
func InsertRowsStamped(ctx context.Context, tx DBTx, table string, fields []string, rows [][]any) (int, error) {
	return insertRows(ctx, tx, table, fields, rows, true)
}

func insertRows(ctx context.Context, tx DBTx, table string, fields []string, rows [][]any, stamped bool) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(fields, ", "))
	if stamped {
		sb.WriteString(", created_at, updated_at")
	}
	sb.WriteString(") VALUES ")

	args := make([]any, 0, len(rows)*len(fields))
	for i, row := range rows {
		if len(row) != len(fields) {
			return 0, errors.Errorf("%s: row %d has %d values, want %d", table, i, len(row), len(fields))
		}
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for j := range fields {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(i*len(fields) + j + 1))
			args = append(args, row[j])
		}
		if stamped {
			sb.WriteString(", now(), now()")
		}
		sb.WriteByte(')')
	}

	if _, err := tx.Exec(ctx, sb.String(), args...); err != nil {
		return 0, err
	}
	return len(rows), nil
}
