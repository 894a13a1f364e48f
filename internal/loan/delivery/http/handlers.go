package http

import (
	"github.com/gin-gonic/gin"

	"library-circulation/pkg/response"
)

// ListBooks godoc
// @Summary     List all books
// @Description Returns every book known to the catalog.
// @Tags        Books
// @Produce     json
// @Success     200 {array}  bookResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/books/all [GET]
func (h *handler) ListBooks(c *gin.Context) {
	ctx := c.Request.Context()

	books, err := h.uc.ListBooks(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListBooks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newBookListResp(books))
}

// Status godoc
// @Summary     List books with circulation status
// @Description Returns every book together with its loan history and, when a
// @Description copy is out, the holding user.
// @Tags        Books
// @Produce     json
// @Success     200 {array}  statusResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/books/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	statuses, err := h.uc.AllWithStatus(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.AllWithStatus: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newStatusListResp(statuses))
}

// Transactions godoc
// @Summary     List loan history
// @Description Returns every loan record ever written, open and closed.
// @Tags        Books
// @Produce     json
// @Success     200 {array}  loanResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/books/transactions [GET]
func (h *handler) Transactions(c *gin.Context) {
	ctx := c.Request.Context()

	records, err := h.uc.History(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newLoanListResp(records))
}

// Checkout godoc
// @Summary     Check out a book
// @Description Opens a loan for the given book and user. Fails when the book
// @Description already has an open loan.
// @Tags        Books
// @Accept      json
// @Produce     json
// @Param       body body transactionReq true "Book and borrower"
// @Success     200 {object} transactionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Book not found"
// @Failure     409 {object} response.Resp "Already checked out"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/books/checkout [POST]
func (h *handler) Checkout(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTransactionReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.Checkout(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Checkout: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTransactionResp(output))
}

// Return godoc
// @Summary     Return a book
// @Description Closes the open loan held by the given user on the given book.
// @Tags        Books
// @Accept      json
// @Produce     json
// @Param       body body transactionReq true "Book and borrower"
// @Success     200 {object} transactionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Book not found"
// @Failure     409 {object} response.Resp "No active loan"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/books/return [PATCH]
func (h *handler) Return(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTransactionReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.Return(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Return: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTransactionResp(output))
}

// Renew godoc
// @Summary     Renew a loan
// @Description Extends the due date of the open loan held by the given user.
// @Description A loan can be renewed at most five times.
// @Tags        Books
// @Accept      json
// @Produce     json
// @Param       body body transactionReq true "Book and borrower"
// @Success     200 {object} transactionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Book not found"
// @Failure     409 {object} response.Resp "No active loan or renewal limit reached"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/books/renew [PATCH]
func (h *handler) Renew(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTransactionReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.Renew(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Renew: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newTransactionResp(output))
}
