package http

import (
	"github.com/gin-gonic/gin"

	"library-circulation/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Reads are
// unthrottled; ledger mutations go through the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	books := rg.Group("/books")
	{
		books.GET("/all", h.ListBooks)
		books.GET("/status", h.Status)
		books.GET("/transactions", h.Transactions)

		books.POST("/checkout", mw.RateLimit(), h.Checkout)
		books.PATCH("/return", mw.RateLimit(), h.Return)
		books.PATCH("/renew", mw.RateLimit(), h.Renew)
	}
}
