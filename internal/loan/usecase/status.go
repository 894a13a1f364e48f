package usecase

import (
	"context"
	"errors"

	"library-circulation/internal/identity"
	"library-circulation/internal/loan"
	"library-circulation/internal/model"

	repo "library-circulation/internal/loan/repository"
)

// AllWithStatus joins catalog, ledger history and holder identity into one
// BookStatus per catalog book. It is assembled fresh on every call — the
// ledger is the single source of truth and may change between queries.
func (uc *implUseCase) AllWithStatus(ctx context.Context) ([]loan.BookStatus, error) {
	books, err := uc.catalog.GetAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AllWithStatus GetAll: %v", err)
		return nil, err
	}

	statuses := make([]loan.BookStatus, 0, len(books))
	for _, book := range books {
		history, err := uc.repo.ListLoans(ctx, repo.ListLoansOptions{BookID: book.ID})
		if err != nil {
			uc.l.Errorf(ctx, "uc.AllWithStatus ListLoans(book %d): %v", book.ID, err)
			return nil, err
		}

		holder, err := uc.resolveHolder(ctx, book.ID, history)
		if err != nil {
			return nil, err
		}

		statuses = append(statuses, loan.BookStatus{
			Book:    book,
			History: history,
			Holder:  holder,
		})
	}
	return statuses, nil
}

// resolveHolder finds the open record in a book's history and resolves the
// borrower's identity. More than one open record is a ledger defect and is
// surfaced, never resolved by picking one. A holder the directory does not
// know is reported as present but unresolved rather than dropped.
func (uc *implUseCase) resolveHolder(ctx context.Context, bookID int, history []model.LoanRecord) (*loan.Holder, error) {
	var open *model.LoanRecord
	for i := range history {
		if !history[i].Open() {
			continue
		}
		if open != nil {
			uc.l.Errorf(ctx, "uc.AllWithStatus: multiple open loans for book %d", bookID)
			return nil, loan.ErrLedgerCorrupted
		}
		open = &history[i]
	}
	if open == nil {
		return nil, nil
	}

	user, err := uc.identity.GetByID(ctx, open.UserID)
	if err != nil {
		if errors.Is(err, identity.ErrUserNotFound) {
			uc.l.Warnf(ctx, "uc.AllWithStatus: holder %d of book %d not in directory", open.UserID, bookID)
			return &loan.Holder{UserID: open.UserID}, nil
		}
		uc.l.Errorf(ctx, "uc.AllWithStatus GetByID(%d): %v", open.UserID, err)
		return nil, err
	}

	return &loan.Holder{UserID: user.ID, Name: user.Name, Resolved: true}, nil
}
