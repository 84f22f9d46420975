package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mazraa/farmbook/internal/domain/models"
	"github.com/mazraa/farmbook/internal/service/alerts"
	"github.com/mazraa/farmbook/internal/service/finance"
	"github.com/mazraa/farmbook/internal/service/herd"
	"github.com/mazraa/farmbook/internal/service/production"
	"github.com/mazraa/farmbook/internal/service/stock"
)

const defaultProductionWindow = 7

// Stock returns the on-hand balance per feed type.
func (h *Handler) Stock(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, stock.Levels(snap.FeedPurchases, snap.FeedConsumption))
}

// FinanceSummary returns revenue, expenses and net profit.
func (h *Handler) FinanceSummary(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, finance.Totals(snap.Sales, snap.FeedPurchases, snap.HealthEvents))
}

// FinanceDebts returns customers with a positive outstanding balance.
func (h *Handler) FinanceDebts(c *gin.Context) {
	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, finance.Debtors(snap.Sales, snap.Customers))
}

// Reproduction returns the pregnancy status of one animal.
func (h *Handler) Reproduction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	asOf, ok := h.asOf(c)
	if !ok {
		return
	}

	snap := h.store.Snapshot()
	animal, found := findAnimal(snap.Animals, id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "animal not found"})
		return
	}
	c.JSON(http.StatusOK, herd.Reproduction(animal, asOf))
}

// Withdrawal returns the milk-withdrawal safety status of one animal.
func (h *Handler) Withdrawal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	asOf, ok := h.asOf(c)
	if !ok {
		return
	}

	snap := h.store.Snapshot()
	if _, found := findAnimal(snap.Animals, id); !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "animal not found"})
		return
	}
	c.JSON(http.StatusOK, herd.Withdrawal(id, snap.HealthEvents, asOf))
}

// Alerts returns the aggregated alert list for the current state.
func (h *Handler) Alerts(c *gin.Context) {
	asOf, ok := h.asOf(c)
	if !ok {
		return
	}

	snap := h.store.Snapshot()
	levels := stock.Levels(snap.FeedPurchases, snap.FeedConsumption)
	found := alerts.Scan(snap.Animals, snap.HealthEvents, levels, asOf)
	if found == nil {
		found = []models.Alert{}
	}
	c.JSON(http.StatusOK, found)
}

// Production returns daily milk totals for the trailing window, zero-filled
// and in ascending date order.
func (h *Handler) Production(c *gin.Context) {
	asOf, ok := h.asOf(c)
	if !ok {
		return
	}

	windowDays := defaultProductionWindow
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		windowDays = parsed
	}

	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, production.Daily(snap.MilkEntries, windowDays, asOf))
}

// Dashboard bundles the landing-page tiles into one query: herd counts,
// recent milk, money totals and the alert count.
func (h *Handler) Dashboard(c *gin.Context) {
	asOf, ok := h.asOf(c)
	if !ok {
		return
	}

	snap := h.store.Snapshot()

	var milking, offProduction int
	for _, a := range snap.Animals {
		if a.Status == models.StatusMilking {
			milking++
		} else {
			offProduction++
		}
	}

	recentMilk := decimal.Zero
	for _, day := range production.Daily(snap.MilkEntries, defaultProductionWindow, asOf) {
		recentMilk = recentMilk.Add(day.Total)
	}

	levels := stock.Levels(snap.FeedPurchases, snap.FeedConsumption)

	c.JSON(http.StatusOK, gin.H{
		"herdSize":      len(snap.Animals),
		"milking":       milking,
		"offProduction": offProduction,
		"weekMilk":      recentMilk,
		"finance":       finance.Totals(snap.Sales, snap.FeedPurchases, snap.HealthEvents),
		"alertCount":    len(alerts.Scan(snap.Animals, snap.HealthEvents, levels, asOf)),
	})
}

func findAnimal(animals []models.Animal, id int64) (models.Animal, bool) {
	for _, a := range animals {
		if a.ID == id {
			return a, true
		}
	}
	return models.Animal{}, false
}
