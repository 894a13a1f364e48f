package sqlite

import (
	"context"
	"database/sql"

	"library-circulation/internal/model"

	repo "library-circulation/internal/loan/repository"
)

const selectColumns = `id, book_id, user_id, checkout_date, due_date, actual_return_date, renewal_count, returned`

// CreateLoan opens a loan inside a transaction so the availability check and
// the insert are atomic. The partial unique index would also reject a second
// open record, but checking first yields the proper outcome error.
func (r *Ledger) CreateLoan(ctx context.Context, opt repo.CreateLoanOptions) (model.LoanRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateLoan"), err)
		return model.LoanRecord{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	var openCount int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM loan_records WHERE book_id = ? AND returned = 0`,
		opt.BookID,
	).Scan(&openCount); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("CreateLoan"), err)
		return model.LoanRecord{}, repo.ErrFailedToInsert
	}
	if openCount > 0 {
		return model.LoanRecord{}, repo.ErrOpenLoanExists
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO loan_records (book_id, user_id, checkout_date, due_date, renewal_count, returned)
		 VALUES (?, ?, ?, ?, 0, 0)`,
		opt.BookID, opt.UserID, opt.CheckoutDate, opt.DueDate,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("CreateLoan"), err)
		return model.LoanRecord{}, repo.ErrFailedToInsert
	}
	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s last id: %v", r.dsn("CreateLoan"), err)
		return model.LoanRecord{}, repo.ErrFailedToInsert
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateLoan"), err)
		return model.LoanRecord{}, repo.ErrFailedToInsert
	}

	return model.LoanRecord{
		ID:           id,
		BookID:       opt.BookID,
		UserID:       opt.UserID,
		CheckoutDate: opt.CheckoutDate,
		DueDate:      opt.DueDate,
	}, nil
}

// CloseLoan marks the open (book, user) record returned.
func (r *Ledger) CloseLoan(ctx context.Context, opt repo.CloseLoanOptions) (model.LoanRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CloseLoan"), err)
		return model.LoanRecord{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	record, err := scanRecord(tx.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM loan_records WHERE book_id = ? AND user_id = ? AND returned = 0`,
		opt.BookID, opt.UserID,
	))
	if err == sql.ErrNoRows {
		return model.LoanRecord{}, repo.ErrNoOpenLoan
	}
	if err != nil {
		r.l.Errorf(ctx, "%s select: %v", r.dsn("CloseLoan"), err)
		return model.LoanRecord{}, repo.ErrFailedToUpdate
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE loan_records SET returned = 1, actual_return_date = ? WHERE id = ?`,
		opt.ReturnedAt, record.ID,
	); err != nil {
		r.l.Errorf(ctx, "%s update: %v", r.dsn("CloseLoan"), err)
		return model.LoanRecord{}, repo.ErrFailedToUpdate
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CloseLoan"), err)
		return model.LoanRecord{}, repo.ErrFailedToUpdate
	}

	returnedAt := opt.ReturnedAt
	record.Returned = true
	record.ActualReturnDate = &returnedAt
	return record, nil
}

// RenewLoan advances the open (book, user) record's due date relative to its
// current value, honoring the renewal cap.
func (r *Ledger) RenewLoan(ctx context.Context, opt repo.RenewLoanOptions) (model.LoanRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("RenewLoan"), err)
		return model.LoanRecord{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	record, err := scanRecord(tx.QueryRowContext(ctx,
		`SELECT `+selectColumns+` FROM loan_records WHERE book_id = ? AND user_id = ? AND returned = 0`,
		opt.BookID, opt.UserID,
	))
	if err == sql.ErrNoRows {
		return model.LoanRecord{}, repo.ErrNoOpenLoan
	}
	if err != nil {
		r.l.Errorf(ctx, "%s select: %v", r.dsn("RenewLoan"), err)
		return model.LoanRecord{}, repo.ErrFailedToUpdate
	}

	if record.RenewalCount >= opt.MaxRenewals {
		return model.LoanRecord{}, repo.ErrRenewalLimit
	}

	newDue := record.DueDate.Add(opt.ExtendBy)
	if _, err := tx.ExecContext(ctx,
		`UPDATE loan_records SET renewal_count = renewal_count + 1, due_date = ? WHERE id = ?`,
		newDue, record.ID,
	); err != nil {
		r.l.Errorf(ctx, "%s update: %v", r.dsn("RenewLoan"), err)
		return model.LoanRecord{}, repo.ErrFailedToUpdate
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("RenewLoan"), err)
		return model.LoanRecord{}, repo.ErrFailedToUpdate
	}

	record.RenewalCount++
	record.DueDate = newDue
	return record, nil
}

// ListLoans returns records in insertion order.
func (r *Ledger) ListLoans(ctx context.Context, opt repo.ListLoansOptions) ([]model.LoanRecord, error) {
	query := `SELECT ` + selectColumns + ` FROM loan_records ORDER BY id`
	args := []any{}
	if opt.BookID != 0 {
		query = `SELECT ` + selectColumns + ` FROM loan_records WHERE book_id = ? ORDER BY id`
		args = append(args, opt.BookID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLoans"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	records := []model.LoanRecord{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListLoans"), err)
			return nil, repo.ErrFailedToList
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListLoans"), err)
		return nil, repo.ErrFailedToList
	}
	return records, nil
}

// GetOpenLoan returns the open record for a book, if any.
func (r *Ledger) GetOpenLoan(ctx context.Context, bookID int) (model.LoanRecord, bool, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectColumns+` FROM loan_records WHERE book_id = ? AND returned = 0`,
		bookID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOpenLoan"), err)
		return model.LoanRecord{}, false, repo.ErrFailedToGet
	}
	defer rows.Close()

	var found []model.LoanRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("GetOpenLoan"), err)
			return model.LoanRecord{}, false, repo.ErrFailedToGet
		}
		found = append(found, record)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("GetOpenLoan"), err)
		return model.LoanRecord{}, false, repo.ErrFailedToGet
	}

	switch len(found) {
	case 0:
		return model.LoanRecord{}, false, nil
	case 1:
		return found[0], true, nil
	default:
		r.l.Errorf(ctx, "%s: %d open loans for book %d", r.dsn("GetOpenLoan"), len(found), bookID)
		return model.LoanRecord{}, false, repo.ErrCorrupted
	}
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (model.LoanRecord, error) {
	var record model.LoanRecord
	var returnedAt sql.NullTime
	var returned int
	if err := s.Scan(
		&record.ID, &record.BookID, &record.UserID,
		&record.CheckoutDate, &record.DueDate, &returnedAt,
		&record.RenewalCount, &returned,
	); err != nil {
		return model.LoanRecord{}, err
	}
	record.Returned = returned != 0
	if returnedAt.Valid {
		t := returnedAt.Time
		record.ActualReturnDate = &t
	}
	return record, nil
}
