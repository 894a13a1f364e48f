package memory

import (
	"context"
	"sync"

	"library-circulation/internal/model"

	repo "library-circulation/internal/loan/repository"
	pkgLog "library-circulation/pkg/log"
)

// Ledger is the in-memory circulation ledger. It starts empty at process
// start and is discarded at shutdown; volatility is deliberate, durable
// storage is a separate driver behind the same Repository interface.
//
// One RWMutex guards both the record list and the open-loan index, so the
// availability check and the insert of CreateLoan are a single atomic unit.
type Ledger struct {
	l pkgLog.Logger

	mu      sync.RWMutex
	records []model.LoanRecord
	open    map[int]int // book id -> index of its open record
	nextID  int64
}

// New creates an empty in-memory Ledger.
func New(l pkgLog.Logger) *Ledger {
	return &Ledger{
		l:    l,
		open: make(map[int]int),
	}
}

// CreateLoan opens a loan, enforcing at most one open record per book.
func (g *Ledger) CreateLoan(ctx context.Context, opt repo.CreateLoanOptions) (model.LoanRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.open[opt.BookID]; exists {
		return model.LoanRecord{}, repo.ErrOpenLoanExists
	}

	g.nextID++
	record := model.LoanRecord{
		ID:           g.nextID,
		BookID:       opt.BookID,
		UserID:       opt.UserID,
		CheckoutDate: opt.CheckoutDate,
		DueDate:      opt.DueDate,
	}

	g.records = append(g.records, record)
	g.open[opt.BookID] = len(g.records) - 1
	return record, nil
}

// CloseLoan marks the open (book, user) record returned.
func (g *Ledger) CloseLoan(ctx context.Context, opt repo.CloseLoanOptions) (model.LoanRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx, ok := g.open[opt.BookID]
	if !ok || g.records[idx].UserID != opt.UserID {
		return model.LoanRecord{}, repo.ErrNoOpenLoan
	}

	returnedAt := opt.ReturnedAt
	g.records[idx].Returned = true
	g.records[idx].ActualReturnDate = &returnedAt
	delete(g.open, opt.BookID)
	return g.records[idx], nil
}

// RenewLoan advances the open (book, user) record's due date.
func (g *Ledger) RenewLoan(ctx context.Context, opt repo.RenewLoanOptions) (model.LoanRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx, ok := g.open[opt.BookID]
	if !ok || g.records[idx].UserID != opt.UserID {
		return model.LoanRecord{}, repo.ErrNoOpenLoan
	}
	if g.records[idx].RenewalCount >= opt.MaxRenewals {
		return model.LoanRecord{}, repo.ErrRenewalLimit
	}

	g.records[idx].RenewalCount++
	g.records[idx].DueDate = g.records[idx].DueDate.Add(opt.ExtendBy)
	return g.records[idx], nil
}

// ListLoans returns a snapshot of the ledger in insertion order.
func (g *Ledger) ListLoans(ctx context.Context, opt repo.ListLoansOptions) ([]model.LoanRecord, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]model.LoanRecord, 0, len(g.records))
	for _, r := range g.records {
		if opt.BookID != 0 && r.BookID != opt.BookID {
			continue
		}
		if r.ActualReturnDate != nil {
			t := *r.ActualReturnDate
			r.ActualReturnDate = &t
		}
		out = append(out, r)
	}
	return out, nil
}

// GetOpenLoan returns the open record for a book, if any.
func (g *Ledger) GetOpenLoan(ctx context.Context, bookID int) (model.LoanRecord, bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	// The open index can hold at most one entry per book, so the invariant
	// cannot break here; verify against the raw records anyway so a defect
	// in this store is loud instead of silently resolved.
	var found []model.LoanRecord
	for _, r := range g.records {
		if r.BookID == bookID && !r.Returned {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 0:
		return model.LoanRecord{}, false, nil
	case 1:
		return found[0], true, nil
	default:
		g.l.Errorf(ctx, "loan/repository/memory: %d open loans for book %d", len(found), bookID)
		return model.LoanRecord{}, false, repo.ErrCorrupted
	}
}
