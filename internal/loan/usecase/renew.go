package usecase

import (
	"context"
	"errors"
	"time"

	"library-circulation/internal/catalog"
	"library-circulation/internal/loan"
	repo "library-circulation/internal/loan/repository"
)

// Renew extends the user's open loan by one renewal period, counted from the
// current due date so an early renewal keeps the full extension.
func (uc *implUseCase) Renew(ctx context.Context, input loan.TransactionInput) (loan.TransactionOutput, error) {
	book, err := uc.catalog.GetByISBN(ctx, input.BookISBN)
	if err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			return loan.TransactionOutput{}, loan.ErrBookNotFound
		}
		uc.l.Errorf(ctx, "uc.Renew GetByISBN: %v", err)
		return loan.TransactionOutput{}, err
	}

	record, err := uc.repo.RenewLoan(ctx, repo.RenewLoanOptions{
		BookID:      book.ID,
		UserID:      input.UserID,
		ExtendBy:    loan.RenewalExtensionDays * 24 * time.Hour,
		MaxRenewals: loan.MaxRenewals,
	})
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNoOpenLoan):
			return loan.TransactionOutput{}, loan.ErrNoActiveLoan
		case errors.Is(err, repo.ErrRenewalLimit):
			return loan.TransactionOutput{}, loan.ErrRenewalLimitExceeded
		}
		uc.l.Errorf(ctx, "uc.Renew RenewLoan: %v", err)
		return loan.TransactionOutput{}, err
	}

	uc.l.Infof(ctx, "renewed book %d (%s) for user %d (%d/%d), due %s",
		book.ID, book.ISBN, input.UserID, record.RenewalCount, loan.MaxRenewals,
		record.DueDate.Format("2006-01-02"))
	return loan.TransactionOutput{Record: record}, nil
}
