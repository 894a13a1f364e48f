package http

import (
	"github.com/gin-gonic/gin"

	"library-circulation/internal/loan"
	pkgLog "library-circulation/pkg/log"
)

// Handler is the public interface for the circulation HTTP delivery layer.
type Handler interface {
	ListBooks(c *gin.Context)
	Status(c *gin.Context)
	Transactions(c *gin.Context)
	Checkout(c *gin.Context)
	Return(c *gin.Context)
	Renew(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc loan.UseCase
}

// New creates a new HTTP handler for the circulation domain.
func New(l pkgLog.Logger, uc loan.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
