package usecase

import (
	"context"
	"errors"
	"time"

	"library-circulation/internal/catalog"
	"library-circulation/internal/loan"
	repo "library-circulation/internal/loan/repository"
)

// Return closes the user's open loan on the book. The existing record is
// mutated in place; a loan episode never produces a second record.
func (uc *implUseCase) Return(ctx context.Context, input loan.TransactionInput) (loan.TransactionOutput, error) {
	book, err := uc.catalog.GetByISBN(ctx, input.BookISBN)
	if err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			return loan.TransactionOutput{}, loan.ErrBookNotFound
		}
		uc.l.Errorf(ctx, "uc.Return GetByISBN: %v", err)
		return loan.TransactionOutput{}, err
	}

	record, err := uc.repo.CloseLoan(ctx, repo.CloseLoanOptions{
		BookID:     book.ID,
		UserID:     input.UserID,
		ReturnedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repo.ErrNoOpenLoan) {
			return loan.TransactionOutput{}, loan.ErrNoActiveLoan
		}
		uc.l.Errorf(ctx, "uc.Return CloseLoan: %v", err)
		return loan.TransactionOutput{}, err
	}

	uc.l.Infof(ctx, "returned book %d (%s) from user %d", book.ID, book.ISBN, input.UserID)
	return loan.TransactionOutput{Record: record}, nil
}
