package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mazraa/farmbook/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(h *handlers.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")

	records := map[string]struct {
		list, create, update, remove gin.HandlerFunc
	}{
		"animals":          {h.ListAnimals, h.CreateAnimal, h.UpdateAnimal, h.DeleteAnimal},
		"milk-entries":     {h.ListMilkEntries, h.CreateMilkEntry, h.UpdateMilkEntry, h.DeleteMilkEntry},
		"feed-purchases":   {h.ListFeedPurchases, h.CreateFeedPurchase, h.UpdateFeedPurchase, h.DeleteFeedPurchase},
		"feed-consumption": {h.ListFeedConsumption, h.CreateFeedConsumption, h.UpdateFeedConsumption, h.DeleteFeedConsumption},
		"health-events":    {h.ListHealthEvents, h.CreateHealthEvent, h.UpdateHealthEvent, h.DeleteHealthEvent},
		"customers":        {h.ListCustomers, h.CreateCustomer, h.UpdateCustomer, h.DeleteCustomer},
		"sales":            {h.ListSales, h.CreateSale, h.UpdateSale, h.DeleteSale},
	}
	for path, hs := range records {
		api.GET("/"+path, hs.list)
		api.POST("/"+path, hs.create)
		api.PUT("/"+path+"/:id", hs.update)
		api.DELETE("/"+path+"/:id", hs.remove)
	}

	api.GET("/stock", h.Stock)
	api.GET("/finance/summary", h.FinanceSummary)
	api.GET("/finance/debts", h.FinanceDebts)
	api.GET("/animals/:id/reproduction", h.Reproduction)
	api.GET("/animals/:id/withdrawal", h.Withdrawal)
	api.GET("/alerts", h.Alerts)
	api.GET("/production", h.Production)
	api.GET("/dashboard", h.Dashboard)
	api.GET("/export", h.Export)
	api.POST("/import", h.Import)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
