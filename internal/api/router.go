package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Adikun01000/StockporfolliatrackingSimulator/internal/middleware"
)

// RouterOptions tunes the middleware stack.
type RouterOptions struct {
	RequestTimeout time.Duration
	// RateLimit is requests per minute per client IP; 0 disables limiting.
	RateLimit int
}

// NewRouter builds the gin engine with middlewares, Swagger UI and the
// /api/v1 routes. Health probes are mounted separately by the app package.
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(opts.RateLimit, time.Minute),
	)

	if opts.RequestTimeout > 0 {
		router.Use(func(c *gin.Context) {
			if c.IsWebsocket() {
				c.Next()
				return
			}
			ctx, cancel := context.WithTimeout(c.Request.Context(), opts.RequestTimeout)
			defer cancel()
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/market", handler.GetMarket)
		v1.GET("/portfolio", handler.GetPortfolio)
		v1.GET("/trades", handler.ListTrades)
		v1.POST("/trades/buy", handler.Buy)
		v1.POST("/trades/sell", handler.Sell)
		v1.GET("/journal", handler.ListJournal)
		v1.GET("/stream", handler.StreamMarket)
	}

	return router
}
