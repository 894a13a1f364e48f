package usecase

import (
	"context"

	"library-circulation/internal/model"

	repo "library-circulation/internal/loan/repository"
)

// ListBooks returns the full catalog.
func (uc *implUseCase) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := uc.catalog.GetAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListBooks GetAll: %v", err)
		return nil, err
	}
	return books, nil
}

// History returns the complete ledger in insertion order.
func (uc *implUseCase) History(ctx context.Context) ([]model.LoanRecord, error) {
	records, err := uc.repo.ListLoans(ctx, repo.ListLoansOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListLoans: %v", err)
		return nil, err
	}
	return records, nil
}
