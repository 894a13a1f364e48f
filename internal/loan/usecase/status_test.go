package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"library-circulation/internal/identity"
	"library-circulation/internal/loan"
	"library-circulation/internal/loan/repository/memory"
	"library-circulation/internal/model"

	repo "library-circulation/internal/loan/repository"
)

// stubRepo serves canned histories, for exercising aggregation edge cases
// the real ledger cannot produce.
type stubRepo struct {
	byBook map[int][]model.LoanRecord
}

func (s *stubRepo) CreateLoan(ctx context.Context, opt repo.CreateLoanOptions) (model.LoanRecord, error) {
	return model.LoanRecord{}, errors.New("not implemented")
}

func (s *stubRepo) CloseLoan(ctx context.Context, opt repo.CloseLoanOptions) (model.LoanRecord, error) {
	return model.LoanRecord{}, errors.New("not implemented")
}

func (s *stubRepo) RenewLoan(ctx context.Context, opt repo.RenewLoanOptions) (model.LoanRecord, error) {
	return model.LoanRecord{}, errors.New("not implemented")
}

func (s *stubRepo) ListLoans(ctx context.Context, opt repo.ListLoansOptions) ([]model.LoanRecord, error) {
	if opt.BookID == 0 {
		var all []model.LoanRecord
		for _, records := range s.byBook {
			all = append(all, records...)
		}
		return all, nil
	}
	return s.byBook[opt.BookID], nil
}

func (s *stubRepo) GetOpenLoan(ctx context.Context, bookID int) (model.LoanRecord, bool, error) {
	return model.LoanRecord{}, false, nil
}

func TestAllWithStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("one book out, one on the shelf", func(t *testing.T) {
		uc := New(&mockLogger{}, memory.New(&mockLogger{}), testCatalog(), testIdentity())

		if _, err := uc.Checkout(ctx, loan.TransactionInput{BookISBN: "ISBN-1", UserID: 42}); err != nil {
			t.Fatalf("checkout: %v", err)
		}

		statuses, err := uc.AllWithStatus(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(statuses) != 2 {
			t.Fatalf("expected one status per catalog book, got %d", len(statuses))
		}

		out := statuses[0]
		if out.Book.ISBN != "ISBN-1" {
			t.Fatalf("catalog order not preserved: %+v", out.Book)
		}
		if out.Holder == nil || out.Holder.UserID != 42 || out.Holder.Name != "Ada Lovelace" || !out.Holder.Resolved {
			t.Errorf("unexpected holder: %+v", out.Holder)
		}
		if len(out.History) != 1 {
			t.Errorf("expected 1 history entry, got %d", len(out.History))
		}

		shelf := statuses[1]
		if shelf.Holder != nil {
			t.Errorf("book on the shelf must have no holder: %+v", shelf.Holder)
		}
		if len(shelf.History) != 0 {
			t.Errorf("untouched book must have empty history, got %d entries", len(shelf.History))
		}
	})

	t.Run("returned book has history but no holder", func(t *testing.T) {
		uc := New(&mockLogger{}, memory.New(&mockLogger{}), testCatalog(), testIdentity())

		if _, err := uc.Checkout(ctx, loan.TransactionInput{BookISBN: "ISBN-1", UserID: 42}); err != nil {
			t.Fatalf("checkout: %v", err)
		}
		if _, err := uc.Return(ctx, loan.TransactionInput{BookISBN: "ISBN-1", UserID: 42}); err != nil {
			t.Fatalf("return: %v", err)
		}

		statuses, err := uc.AllWithStatus(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if statuses[0].Holder != nil {
			t.Errorf("returned book must have no holder: %+v", statuses[0].Holder)
		}
		if len(statuses[0].History) != 1 {
			t.Errorf("history must survive the return, got %d entries", len(statuses[0].History))
		}
	})

	t.Run("holder unknown to the directory is reported unresolved", func(t *testing.T) {
		ident := &mockIdentity{users: map[int]model.User{}} // empty directory
		uc := New(&mockLogger{}, memory.New(&mockLogger{}), testCatalog(), ident)

		if _, err := uc.Checkout(ctx, loan.TransactionInput{BookISBN: "ISBN-1", UserID: 99}); err != nil {
			t.Fatalf("checkout: %v", err)
		}

		statuses, err := uc.AllWithStatus(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		holder := statuses[0].Holder
		if holder == nil {
			t.Fatal("loan must not be dropped when the holder is unknown")
		}
		if holder.Resolved || holder.UserID != 99 || holder.Name != "" {
			t.Errorf("expected unresolved holder 99, got %+v", holder)
		}
	})

	t.Run("two open records for one book is surfaced as corruption", func(t *testing.T) {
		now := time.Now().UTC()
		corrupt := &stubRepo{byBook: map[int][]model.LoanRecord{
			1: {
				{ID: 1, BookID: 1, UserID: 42, CheckoutDate: now, DueDate: now.AddDate(0, 0, 20)},
				{ID: 2, BookID: 1, UserID: 7, CheckoutDate: now, DueDate: now.AddDate(0, 0, 20)},
			},
		}}
		uc := New(&mockLogger{}, corrupt, testCatalog(), testIdentity())

		_, err := uc.AllWithStatus(ctx)
		if !errors.Is(err, loan.ErrLedgerCorrupted) {
			t.Errorf("expected ErrLedgerCorrupted, got %v", err)
		}
	})

	t.Run("identity source failure propagates", func(t *testing.T) {
		ident := testIdentity()
		ident.err = identity.ErrSourceUnavailable
		uc := New(&mockLogger{}, memory.New(&mockLogger{}), testCatalog(), ident)

		if _, err := uc.Checkout(ctx, loan.TransactionInput{BookISBN: "ISBN-1", UserID: 42}); err != nil {
			t.Fatalf("checkout: %v", err)
		}
		_, err := uc.AllWithStatus(ctx)
		if !errors.Is(err, identity.ErrSourceUnavailable) {
			t.Errorf("expected ErrSourceUnavailable, got %v", err)
		}
	})
}
