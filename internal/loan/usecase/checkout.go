package usecase

import (
	"context"
	"errors"
	"time"

	"library-circulation/internal/catalog"
	"library-circulation/internal/loan"
	repo "library-circulation/internal/loan/repository"
)

// Checkout resolves the ISBN and opens a loan. The availability check and
// the record insertion are atomic inside the repository, so two concurrent
// checkouts of one book cannot both succeed.
func (uc *implUseCase) Checkout(ctx context.Context, input loan.TransactionInput) (loan.TransactionOutput, error) {
	book, err := uc.catalog.GetByISBN(ctx, input.BookISBN)
	if err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			return loan.TransactionOutput{}, loan.ErrBookNotFound
		}
		uc.l.Errorf(ctx, "uc.Checkout GetByISBN: %v", err)
		return loan.TransactionOutput{}, err
	}

	now := time.Now().UTC()
	record, err := uc.repo.CreateLoan(ctx, repo.CreateLoanOptions{
		BookID:       book.ID,
		UserID:       input.UserID,
		CheckoutDate: now,
		DueDate:      now.AddDate(0, 0, loan.LoanPeriodDays),
	})
	if err != nil {
		if errors.Is(err, repo.ErrOpenLoanExists) {
			return loan.TransactionOutput{}, loan.ErrAlreadyCheckedOut
		}
		uc.l.Errorf(ctx, "uc.Checkout CreateLoan: %v", err)
		return loan.TransactionOutput{}, err
	}

	uc.l.Infof(ctx, "checked out book %d (%s) to user %d, due %s",
		book.ID, book.ISBN, input.UserID, record.DueDate.Format("2006-01-02"))
	return loan.TransactionOutput{Record: record}, nil
}
