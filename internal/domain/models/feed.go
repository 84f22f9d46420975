package models

import "github.com/shopspring/decimal"

// FeedPurchase logs feed bought into stock. FeedType is free text and acts
// as the grouping key for the stock ledger; TotalCost is derived once at
// write time and stored, never recomputed later.
type FeedPurchase struct {
	ID        int64           `json:"id"`
	FeedType  string          `json:"feedType"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	TotalCost decimal.Decimal `json:"totalCost"`
	Merchant  string          `json:"merchant,omitempty"`
	Location  string          `json:"location,omitempty"`
	Date      Date            `json:"date"`
}

// RecordID implements the store record contract.
func (p FeedPurchase) RecordID() int64 { return p.ID }

// Validate enforces the purchase invariants of the stock ledger.
func (p FeedPurchase) Validate() error {
	if p.FeedType == "" {
		return ValidationError{Field: "feedType", Reason: "feed type is required"}
	}
	if !p.Quantity.IsPositive() {
		return ValidationError{Field: "quantity", Reason: "purchased quantity must be positive"}
	}
	if p.UnitPrice.IsNegative() {
		return ValidationError{Field: "unitPrice", Reason: "unit price must not be negative"}
	}
	if p.Date.IsZero() {
		return ValidationError{Field: "date", Reason: "purchase date is required"}
	}
	return nil
}

// WithDerivedCost returns a copy with TotalCost set to quantity times unit
// price.
func (p FeedPurchase) WithDerivedCost() FeedPurchase {
	p.TotalCost = p.Quantity.Mul(p.UnitPrice)
	return p
}

// FeedConsumption logs feed taken out of stock. Consumption may exceed the
// remaining balance; the ledger reports the negative level instead of
// blocking the entry.
type FeedConsumption struct {
	ID       int64           `json:"id"`
	FeedType string          `json:"feedType"`
	Quantity decimal.Decimal `json:"quantity"`
	Date     Date            `json:"date"`
}

// RecordID implements the store record contract.
func (c FeedConsumption) RecordID() int64 { return c.ID }

// Validate enforces the consumption invariants of the stock ledger.
func (c FeedConsumption) Validate() error {
	if c.FeedType == "" {
		return ValidationError{Field: "feedType", Reason: "feed type is required"}
	}
	if !c.Quantity.IsPositive() {
		return ValidationError{Field: "quantity", Reason: "consumed quantity must be positive"}
	}
	if c.Date.IsZero() {
		return ValidationError{Field: "date", Reason: "consumption date is required"}
	}
	return nil
}
