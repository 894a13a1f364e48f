package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-circulation/internal/loan"
	pkgErrors "library-circulation/pkg/errors"
	"library-circulation/pkg/response"
)

// mapError translates domain errors into HTTP errors. A nil result means the
// error is not a business outcome and must be answered as a server failure.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, loan.ErrInvalidRequest):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, loan.ErrBookNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, loan.ErrAlreadyCheckedOut),
		errors.Is(err, loan.ErrNoActiveLoan),
		errors.Is(err, loan.ErrRenewalLimitExceeded):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		// Provider unavailability and ledger corruption land here.
		return nil
	}
}

// respondError writes the mapped error, or a 500 when there is no mapping.
func (h *handler) respondError(c *gin.Context, err error) {
	if httpErr := h.mapError(err); httpErr != nil {
		response.Error(c, httpErr, nil)
		return
	}
	response.InternalError(c, err)
}
