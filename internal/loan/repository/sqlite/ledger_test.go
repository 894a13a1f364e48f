package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	repo "library-circulation/internal/loan/repository"
	"library-circulation/internal/loan/repository/sqlite"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func openTestLedger(t *testing.T) *sqlite.Ledger {
	t.Helper()
	ledger, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "ledger.db"), &mockLogger{})
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	t.Cleanup(func() { ledger.Close() })
	return ledger
}

func createOpt(bookID, userID int) repo.CreateLoanOptions {
	now := time.Now().UTC().Truncate(time.Second)
	return repo.CreateLoanOptions{
		BookID:       bookID,
		UserID:       userID,
		CheckoutDate: now,
		DueDate:      now.AddDate(0, 0, 20),
	}
}

func TestLoanLifecycle(t *testing.T) {
	ctx := context.Background()
	ledger := openTestLedger(t)

	created, err := ledger.CreateLoan(ctx, createOpt(1, 42))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.Returned {
		t.Errorf("unexpected record: %+v", created)
	}

	// Second open loan for the same book is rejected.
	if _, err := ledger.CreateLoan(ctx, createOpt(1, 7)); !errors.Is(err, repo.ErrOpenLoanExists) {
		t.Errorf("expected ErrOpenLoanExists, got %v", err)
	}

	// Renew advances the due date relative to the prior due date.
	extend := 20 * 24 * time.Hour
	renewed, err := ledger.RenewLoan(ctx, repo.RenewLoanOptions{BookID: 1, UserID: 42, ExtendBy: extend, MaxRenewals: 5})
	if err != nil {
		t.Fatalf("renew: %v", err)
	}
	if want := created.DueDate.Add(extend); !renewed.DueDate.Equal(want) {
		t.Errorf("due date %v, want %v", renewed.DueDate, want)
	}
	if renewed.RenewalCount != 1 {
		t.Errorf("renewal count %d, want 1", renewed.RenewalCount)
	}

	// Return closes the record in place.
	closed, err := ledger.CloseLoan(ctx, repo.CloseLoanOptions{BookID: 1, UserID: 42, ReturnedAt: time.Now().UTC().Truncate(time.Second)})
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if !closed.Returned || closed.ActualReturnDate == nil {
		t.Errorf("record should be closed: %+v", closed)
	}

	// Double return.
	if _, err := ledger.CloseLoan(ctx, repo.CloseLoanOptions{BookID: 1, UserID: 42, ReturnedAt: time.Now()}); !errors.Is(err, repo.ErrNoOpenLoan) {
		t.Errorf("expected ErrNoOpenLoan, got %v", err)
	}

	// History survives across loan episodes and stays in insertion order.
	if _, err := ledger.CreateLoan(ctx, createOpt(1, 7)); err != nil {
		t.Fatalf("second episode: %v", err)
	}
	records, err := ledger.ListLoans(ctx, repo.ListLoansOptions{BookID: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 || records[0].ID >= records[1].ID {
		t.Errorf("expected 2 ordered episodes, got %+v", records)
	}
}

func TestRenewalCap(t *testing.T) {
	ctx := context.Background()
	ledger := openTestLedger(t)

	if _, err := ledger.CreateLoan(ctx, createOpt(3, 42)); err != nil {
		t.Fatalf("create: %v", err)
	}

	extend := 20 * 24 * time.Hour
	for i := 0; i < 5; i++ {
		if _, err := ledger.RenewLoan(ctx, repo.RenewLoanOptions{BookID: 3, UserID: 42, ExtendBy: extend, MaxRenewals: 5}); err != nil {
			t.Fatalf("renewal %d: %v", i+1, err)
		}
	}
	if _, err := ledger.RenewLoan(ctx, repo.RenewLoanOptions{BookID: 3, UserID: 42, ExtendBy: extend, MaxRenewals: 5}); !errors.Is(err, repo.ErrRenewalLimit) {
		t.Errorf("expected ErrRenewalLimit, got %v", err)
	}
}

func TestGetOpenLoan(t *testing.T) {
	ctx := context.Background()
	ledger := openTestLedger(t)

	if _, ok, err := ledger.GetOpenLoan(ctx, 1); err != nil || ok {
		t.Fatalf("empty ledger: ok=%v err=%v", ok, err)
	}

	if _, err := ledger.CreateLoan(ctx, createOpt(1, 42)); err != nil {
		t.Fatalf("create: %v", err)
	}
	record, ok, err := ledger.GetOpenLoan(ctx, 1)
	if err != nil || !ok {
		t.Fatalf("expected open loan: ok=%v err=%v", ok, err)
	}
	if record.UserID != 42 {
		t.Errorf("unexpected holder: %+v", record)
	}
}
