package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mazraa/farmbook/internal/domain/models"
)

// Animals

// ListAnimals returns the herd in insertion order.
func (h *Handler) ListAnimals(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().Animals)
}

// CreateAnimal registers a new animal.
func (h *Handler) CreateAnimal(c *gin.Context) {
	var a models.Animal
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid animal payload"})
		return
	}
	stored, err := h.store.AddAnimal(c.Request.Context(), a)
	h.respondMutation(c, http.StatusCreated, stored, err)
}

// UpdateAnimal replaces the animal with the path id.
func (h *Handler) UpdateAnimal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var a models.Animal
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid animal payload"})
		return
	}
	a.ID = id
	stored, err := h.store.UpdateAnimal(c.Request.Context(), a)
	h.respondMutation(c, http.StatusOK, stored, err)
}

// DeleteAnimal removes the animal with the path id; absent ids are a no-op.
func (h *Handler) DeleteAnimal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondRemoval(c, h.store.RemoveAnimal(c.Request.Context(), id))
}

// Milk entries

// ListMilkEntries returns all logged milkings in insertion order.
func (h *Handler) ListMilkEntries(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().MilkEntries)
}

// CreateMilkEntry logs one milking session.
func (h *Handler) CreateMilkEntry(c *gin.Context) {
	var m models.MilkEntry
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid milk entry payload"})
		return
	}
	stored, err := h.store.AddMilkEntry(c.Request.Context(), m)
	h.respondMutation(c, http.StatusCreated, stored, err)
}

// UpdateMilkEntry replaces the entry with the path id.
func (h *Handler) UpdateMilkEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var m models.MilkEntry
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid milk entry payload"})
		return
	}
	m.ID = id
	stored, err := h.store.UpdateMilkEntry(c.Request.Context(), m)
	h.respondMutation(c, http.StatusOK, stored, err)
}

// DeleteMilkEntry removes the entry with the path id.
func (h *Handler) DeleteMilkEntry(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondRemoval(c, h.store.RemoveMilkEntry(c.Request.Context(), id))
}

// Feed purchases

// ListFeedPurchases returns the purchase log in insertion order.
func (h *Handler) ListFeedPurchases(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().FeedPurchases)
}

// CreateFeedPurchase logs feed bought into stock; the total cost is derived
// by the store at write time.
func (h *Handler) CreateFeedPurchase(c *gin.Context) {
	var p models.FeedPurchase
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feed purchase payload"})
		return
	}
	stored, err := h.store.AddFeedPurchase(c.Request.Context(), p)
	h.respondMutation(c, http.StatusCreated, stored, err)
}

// UpdateFeedPurchase replaces the purchase with the path id.
func (h *Handler) UpdateFeedPurchase(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var p models.FeedPurchase
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feed purchase payload"})
		return
	}
	p.ID = id
	stored, err := h.store.UpdateFeedPurchase(c.Request.Context(), p)
	h.respondMutation(c, http.StatusOK, stored, err)
}

// DeleteFeedPurchase removes the purchase with the path id.
func (h *Handler) DeleteFeedPurchase(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondRemoval(c, h.store.RemoveFeedPurchase(c.Request.Context(), id))
}

// Feed consumption

// ListFeedConsumption returns the consumption log in insertion order.
func (h *Handler) ListFeedConsumption(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().FeedConsumption)
}

// CreateFeedConsumption logs feed taken out of stock.
func (h *Handler) CreateFeedConsumption(c *gin.Context) {
	var fc models.FeedConsumption
	if err := c.ShouldBindJSON(&fc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feed consumption payload"})
		return
	}
	stored, err := h.store.AddFeedConsumption(c.Request.Context(), fc)
	h.respondMutation(c, http.StatusCreated, stored, err)
}

// UpdateFeedConsumption replaces the record with the path id.
func (h *Handler) UpdateFeedConsumption(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var fc models.FeedConsumption
	if err := c.ShouldBindJSON(&fc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feed consumption payload"})
		return
	}
	fc.ID = id
	stored, err := h.store.UpdateFeedConsumption(c.Request.Context(), fc)
	h.respondMutation(c, http.StatusOK, stored, err)
}

// DeleteFeedConsumption removes the record with the path id.
func (h *Handler) DeleteFeedConsumption(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondRemoval(c, h.store.RemoveFeedConsumption(c.Request.Context(), id))
}

// Health events

// ListHealthEvents returns the health log in insertion order.
func (h *Handler) ListHealthEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().HealthEvents)
}

// CreateHealthEvent logs a treatment or vaccine.
func (h *Handler) CreateHealthEvent(c *gin.Context) {
	var e models.HealthEvent
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid health event payload"})
		return
	}
	stored, err := h.store.AddHealthEvent(c.Request.Context(), e)
	h.respondMutation(c, http.StatusCreated, stored, err)
}

// UpdateHealthEvent replaces the event with the path id.
func (h *Handler) UpdateHealthEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var e models.HealthEvent
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid health event payload"})
		return
	}
	e.ID = id
	stored, err := h.store.UpdateHealthEvent(c.Request.Context(), e)
	h.respondMutation(c, http.StatusOK, stored, err)
}

// DeleteHealthEvent removes the event with the path id.
func (h *Handler) DeleteHealthEvent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondRemoval(c, h.store.RemoveHealthEvent(c.Request.Context(), id))
}

// Customers

// ListCustomers returns the customer book in insertion order.
func (h *Handler) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().Customers)
}

// CreateCustomer registers a new customer.
func (h *Handler) CreateCustomer(c *gin.Context) {
	var cust models.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer payload"})
		return
	}
	stored, err := h.store.AddCustomer(c.Request.Context(), cust)
	h.respondMutation(c, http.StatusCreated, stored, err)
}

// UpdateCustomer replaces the customer with the path id.
func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var cust models.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer payload"})
		return
	}
	cust.ID = id
	stored, err := h.store.UpdateCustomer(c.Request.Context(), cust)
	h.respondMutation(c, http.StatusOK, stored, err)
}

// DeleteCustomer removes the customer with the path id. Their sales stay;
// debt views show the unknown-customer placeholder from then on.
func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondRemoval(c, h.store.RemoveCustomer(c.Request.Context(), id))
}

// Sales

// saleInput is the entry form for a sale. AmountPaid is a pointer on
// purpose: leaving it blank means the sale was settled in full, an explicit
// zero means the whole total is owed.
type saleInput struct {
	CustomerID int64            `json:"customerId"`
	Quantity   decimal.Decimal  `json:"quantity"`
	UnitPrice  decimal.Decimal  `json:"unitPrice"`
	AmountPaid *decimal.Decimal `json:"amountPaid"`
	Date       models.Date      `json:"date"`
}

// ListSales returns the sales log in insertion order.
func (h *Handler) ListSales(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot().Sales)
}

// CreateSale derives total, paid and debt from the entry form and stores the
// result.
func (h *Handler) CreateSale(c *gin.Context) {
	var in saleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale payload"})
		return
	}
	sale := models.NewSale(in.CustomerID, in.Quantity, in.UnitPrice, in.AmountPaid, in.Date)
	stored, err := h.store.AddSale(c.Request.Context(), sale)
	h.respondMutation(c, http.StatusCreated, stored, err)
}

// UpdateSale replaces the sale with the path id verbatim. The blank-payment
// default is a creation-time rule and is not re-applied here; the submitted
// record carries its own derived figures.
func (h *Handler) UpdateSale(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var sale models.Sale
	if err := c.ShouldBindJSON(&sale); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale payload"})
		return
	}
	sale.ID = id
	stored, err := h.store.UpdateSale(c.Request.Context(), sale)
	h.respondMutation(c, http.StatusOK, stored, err)
}

// DeleteSale removes the sale with the path id.
func (h *Handler) DeleteSale(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondRemoval(c, h.store.RemoveSale(c.Request.Context(), id))
}
