package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	loanHTTP "library-circulation/internal/loan/delivery/http"
	"library-circulation/internal/middleware"
)

// setupLoanDomain wires the circulation domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupLoanDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := loanHTTP.New(srv.l, srv.loanUC)

	// Registers /api/v1/books/...
	loanHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Circulation domain registered")
	return nil
}
