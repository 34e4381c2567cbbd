package loader

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/campusbase/sheetloader/internal/store"
)

const placeholderFeeStructureID = 1

// Fixed amounts preserved from the legacy loader. Decimals are sent to the
// store as numeric text.
var (
	feePaymentAmount  = decimal.NewFromInt(500)
	payslipGross      = decimal.NewFromInt(35000)
	payslipDeductions = decimal.NewFromInt(2000)
	payslipNet        = decimal.NewFromInt(33000)

	payslipMonths = []string{"2025-06", "2025-07"}
)

// synthesizeFeePayments creates one offline payment of 500 per student against
// fee-structure 1. The school-income mirror runs afterwards in the
// orchestrator, covering both this path and sheet-provided payments.
func (l *Loader) synthesizeFeePayments(ctx context.Context, tx store.DBTx) (int, error) {
	students, err := store.StudentIDs(ctx, tx)
	if err != nil {
		return 0, err
	}

	today := l.now()
	var rows [][]any
	for _, studentID := range students {
		rows = append(rows, []any{
			studentID, placeholderFeeStructureID, feePaymentAmount.String(), today, "Offline",
		})
	}

	return store.InsertRowsStamped(ctx, tx, tableFeePayments,
		[]string{"student_id", "fee_structure_id", "amount_paid", "payment_date", "payment_method"}, rows)
}

// mirrorSchoolIncome inserts one income record per payment. When the payments
// came from a sheet every payment id is mirrored; when they were synthesized
// only the n ids assigned by that insert are.
func (l *Loader) mirrorSchoolIncome(ctx context.Context, tx store.DBTx, provided bool, n int) (DatasetOutcome, error) {
	var (
		ids []int64
		err error
	)
	if provided {
		ids, err = store.PaymentIDs(ctx, tx)
	} else {
		ids, err = store.LatestPaymentIDs(ctx, tx, n)
	}
	if err != nil {
		return DatasetOutcome{}, err
	}

	rows := make([][]any, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, []any{id})
	}

	count, err := store.InsertRowsStamped(ctx, tx, tableSchoolIncome, []string{"fee_payment_id"}, rows)
	if err != nil {
		return DatasetOutcome{}, err
	}
	if count > 0 {
		l.logger.Infof("Inserted %d school income rows", count)
	}
	return DatasetOutcome{Dataset: "school_income", Action: ActionSynthesized, Rows: count}, nil
}

// synthesizePayslips creates two fixed payslips per teacher, one for each of
// the two hard-coded month labels.
func (l *Loader) synthesizePayslips(ctx context.Context, tx store.DBTx) (int, error) {
	teachers, err := store.Teachers(ctx, tx)
	if err != nil {
		return 0, err
	}

	var rows [][]any
	for _, t := range teachers {
		for _, month := range payslipMonths {
			rows = append(rows, []any{
				t.ID, month, payslipGross.String(), payslipDeductions.String(), payslipNet.String(),
			})
		}
	}

	return store.InsertRowsStamped(ctx, tx, tablePayslips,
		[]string{"teacher_id", "month_year", "gross_salary", "deductions", "net_salary"}, rows)
}
