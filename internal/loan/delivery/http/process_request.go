package http

import (
	"github.com/gin-gonic/gin"

	"library-circulation/internal/loan"
)

// processTransactionReq binds and validates the shared body of checkout,
// return and renew. Malformed JSON is reported the same way as missing
// fields: the client sent an unusable request.
func (h *handler) processTransactionReq(c *gin.Context) (transactionReq, error) {
	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, loan.ErrInvalidRequest
	}
	return req, req.validate()
}
