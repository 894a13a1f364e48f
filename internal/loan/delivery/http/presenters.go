package http

import (
	"strings"
	"time"

	"library-circulation/internal/loan"
	"library-circulation/internal/model"
)

// --- Request DTOs ---

// transactionReq is the body of checkout, return and renew requests.
// Field names are the wire contract consumed by existing clients.
type transactionReq struct {
	BookISBN string `json:"bookISBN"`
	UserID   int    `json:"userId"`
}

func (r transactionReq) validate() error {
	if strings.TrimSpace(r.BookISBN) == "" || r.UserID < 1 {
		return loan.ErrInvalidRequest
	}
	return nil
}

func (r transactionReq) toInput() loan.TransactionInput {
	return loan.TransactionInput{
		BookISBN: r.BookISBN,
		UserID:   r.UserID,
	}
}

// --- Response DTOs ---

type bookResp struct {
	ID                 int     `json:"id"`
	ISBN               string  `json:"isbn"`
	Title              string  `json:"title"`
	Author             string  `json:"author"`
	PublicationYear    int     `json:"publicationYear"`
	Price              float64 `json:"price"`
	TotalCopies        int     `json:"totalCopies"`
	AvailabilityStatus string  `json:"availabilityStatus"`
}

func newBookResp(book model.Book) bookResp {
	return bookResp{
		ID:                 book.ID,
		ISBN:               book.ISBN,
		Title:              book.Title,
		Author:             book.Author,
		PublicationYear:    book.PublicationYear,
		Price:              book.Price,
		TotalCopies:        book.TotalCopies,
		AvailabilityStatus: book.AvailabilityStatus,
	}
}

func newBookListResp(books []model.Book) []bookResp {
	out := make([]bookResp, len(books))
	for i, b := range books {
		out[i] = newBookResp(b)
	}
	return out
}

type loanResp struct {
	ID                   int64      `json:"id"`
	BookID               int        `json:"bookId"`
	UserID               int        `json:"userId"`
	BookCheckoutDate     time.Time  `json:"bookCheckoutDate"`
	BookReturnDueDate    time.Time  `json:"bookReturnDueDate"`
	BookActualReturnDate *time.Time `json:"bookActualReturnDate"`
	NumberOfTimesRenewed int        `json:"numberOfTimesRenewed"`
	IsReturned           bool       `json:"isReturned"`
}

func newLoanResp(record model.LoanRecord) loanResp {
	return loanResp{
		ID:                   record.ID,
		BookID:               record.BookID,
		UserID:               record.UserID,
		BookCheckoutDate:     record.CheckoutDate,
		BookReturnDueDate:    record.DueDate,
		BookActualReturnDate: record.ActualReturnDate,
		NumberOfTimesRenewed: record.RenewalCount,
		IsReturned:           record.Returned,
	}
}

func newLoanListResp(records []model.LoanRecord) []loanResp {
	out := make([]loanResp, len(records))
	for i, r := range records {
		out[i] = newLoanResp(r)
	}
	return out
}

type holderResp struct {
	UserID   int    `json:"userId"`
	UserName string `json:"userName"`
	Resolved bool   `json:"resolved"`
}

// statusResp composes the book's catalog fields with its loan history and
// current holder, rather than extending the book entity.
type statusResp struct {
	bookResp
	BookStatus []loanResp  `json:"bookStatus"`
	User       *holderResp `json:"user,omitempty"`
}

func newStatusResp(status loan.BookStatus) statusResp {
	resp := statusResp{
		bookResp:   newBookResp(status.Book),
		BookStatus: newLoanListResp(status.History),
	}
	if status.Holder != nil {
		resp.User = &holderResp{
			UserID:   status.Holder.UserID,
			UserName: status.Holder.Name,
			Resolved: status.Holder.Resolved,
		}
	}
	return resp
}

func newStatusListResp(statuses []loan.BookStatus) []statusResp {
	out := make([]statusResp, len(statuses))
	for i, s := range statuses {
		out[i] = newStatusResp(s)
	}
	return out
}

type transactionResp struct {
	Record loanResp `json:"record"`
}

func (h *handler) newTransactionResp(out loan.TransactionOutput) transactionResp {
	return transactionResp{Record: newLoanResp(out.Record)}
}
