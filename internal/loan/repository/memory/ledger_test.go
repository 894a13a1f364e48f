package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	repo "library-circulation/internal/loan/repository"
	"library-circulation/internal/loan/repository/memory"
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

func newCreateOpt(bookID, userID int) repo.CreateLoanOptions {
	now := time.Now().UTC()
	return repo.CreateLoanOptions{
		BookID:       bookID,
		UserID:       userID,
		CheckoutDate: now,
		DueDate:      now.AddDate(0, 0, 20),
	}
}

func TestCreateLoan(t *testing.T) {
	ctx := context.Background()
	ledger := memory.New(&mockLogger{})

	first, err := ledger.CreateLoan(ctx, newCreateOpt(1, 42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("expected first id 1, got %d", first.ID)
	}
	if first.Returned || first.RenewalCount != 0 {
		t.Errorf("fresh record should be open with zero renewals: %+v", first)
	}

	// Same book, different user: invariant must hold.
	if _, err := ledger.CreateLoan(ctx, newCreateOpt(1, 7)); !errors.Is(err, repo.ErrOpenLoanExists) {
		t.Errorf("expected ErrOpenLoanExists, got %v", err)
	}

	// Different book is fine, ids are monotonic.
	second, err := ledger.CreateLoan(ctx, newCreateOpt(2, 42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("ids must be monotonically increasing: %d then %d", first.ID, second.ID)
	}
}

func TestCloseLoan(t *testing.T) {
	ctx := context.Background()
	ledger := memory.New(&mockLogger{})

	if _, err := ledger.CreateLoan(ctx, newCreateOpt(1, 42)); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("wrong user", func(t *testing.T) {
		_, err := ledger.CloseLoan(ctx, repo.CloseLoanOptions{BookID: 1, UserID: 7, ReturnedAt: time.Now()})
		if !errors.Is(err, repo.ErrNoOpenLoan) {
			t.Errorf("expected ErrNoOpenLoan, got %v", err)
		}
	})

	t.Run("happy path", func(t *testing.T) {
		record, err := ledger.CloseLoan(ctx, repo.CloseLoanOptions{BookID: 1, UserID: 42, ReturnedAt: time.Now()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !record.Returned || record.ActualReturnDate == nil {
			t.Errorf("record should be closed with a return date: %+v", record)
		}
	})

	t.Run("already returned", func(t *testing.T) {
		_, err := ledger.CloseLoan(ctx, repo.CloseLoanOptions{BookID: 1, UserID: 42, ReturnedAt: time.Now()})
		if !errors.Is(err, repo.ErrNoOpenLoan) {
			t.Errorf("expected ErrNoOpenLoan on double return, got %v", err)
		}
	})

	t.Run("book can go out again", func(t *testing.T) {
		record, err := ledger.CreateLoan(ctx, newCreateOpt(1, 7))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.UserID != 7 {
			t.Errorf("new loan should belong to user 7: %+v", record)
		}

		history, _ := ledger.ListLoans(ctx, repo.ListLoansOptions{BookID: 1})
		if len(history) != 2 {
			t.Errorf("return must not create records; expected 2 episodes, got %d", len(history))
		}
	})
}

func TestRenewLoan(t *testing.T) {
	ctx := context.Background()
	ledger := memory.New(&mockLogger{})

	created, err := ledger.CreateLoan(ctx, newCreateOpt(1, 42))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	extend := 20 * 24 * time.Hour
	due := created.DueDate
	for i := 1; i <= 5; i++ {
		record, err := ledger.RenewLoan(ctx, repo.RenewLoanOptions{BookID: 1, UserID: 42, ExtendBy: extend, MaxRenewals: 5})
		if err != nil {
			t.Fatalf("renewal %d: %v", i, err)
		}
		if record.RenewalCount != i {
			t.Errorf("renewal %d: count = %d", i, record.RenewalCount)
		}
		if want := due.Add(extend); !record.DueDate.Equal(want) {
			t.Errorf("renewal %d: due date %v, want %v", i, record.DueDate, want)
		}
		due = record.DueDate
	}

	// 6th attempt rejected, state untouched.
	if _, err := ledger.RenewLoan(ctx, repo.RenewLoanOptions{BookID: 1, UserID: 42, ExtendBy: extend, MaxRenewals: 5}); !errors.Is(err, repo.ErrRenewalLimit) {
		t.Fatalf("expected ErrRenewalLimit, got %v", err)
	}
	records, _ := ledger.ListLoans(ctx, repo.ListLoansOptions{BookID: 1})
	if records[0].RenewalCount != 5 || !records[0].DueDate.Equal(due) {
		t.Errorf("rejected renewal must not mutate the record: %+v", records[0])
	}

	// No open loan at all.
	if _, err := ledger.RenewLoan(ctx, repo.RenewLoanOptions{BookID: 9, UserID: 42, ExtendBy: extend, MaxRenewals: 5}); !errors.Is(err, repo.ErrNoOpenLoan) {
		t.Errorf("expected ErrNoOpenLoan, got %v", err)
	}
}

func TestListLoansSnapshot(t *testing.T) {
	ctx := context.Background()
	ledger := memory.New(&mockLogger{})

	if _, err := ledger.CreateLoan(ctx, newCreateOpt(1, 42)); err != nil {
		t.Fatalf("create: %v", err)
	}

	snapshot, err := ledger.ListLoans(ctx, repo.ListLoansOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if _, err := ledger.CloseLoan(ctx, repo.CloseLoanOptions{BookID: 1, UserID: 42, ReturnedAt: time.Now()}); err != nil {
		t.Fatalf("close: %v", err)
	}

	if snapshot[0].Returned {
		t.Error("earlier snapshot must not observe later mutations")
	}
}

func TestGetOpenLoan(t *testing.T) {
	ctx := context.Background()
	ledger := memory.New(&mockLogger{})

	if _, ok, err := ledger.GetOpenLoan(ctx, 1); err != nil || ok {
		t.Fatalf("empty ledger: ok=%v err=%v", ok, err)
	}

	if _, err := ledger.CreateLoan(ctx, newCreateOpt(1, 42)); err != nil {
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

func TestConcurrentCheckout(t *testing.T) {
	ctx := context.Background()
	ledger := memory.New(&mockLogger{})

	const attempts = 50
	var wg sync.WaitGroup
	successes := make(chan int64, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			if record, err := ledger.CreateLoan(ctx, newCreateOpt(1, userID)); err == nil {
				successes <- record.ID
			}
		}(i + 1)
	}
	wg.Wait()
	close(successes)

	var won int
	for range successes {
		won++
	}
	if won != 1 {
		t.Fatalf("exactly one concurrent checkout must win, got %d", won)
	}

	records, _ := ledger.ListLoans(ctx, repo.ListLoansOptions{BookID: 1})
	if len(records) != 1 {
		t.Fatalf("expected a single record, got %d", len(records))
	}
}
