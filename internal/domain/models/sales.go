package models

import "github.com/shopspring/decimal"

// Customer is a milk buyer. Only the name is required.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// RecordID implements the store record contract.
func (c Customer) RecordID() int64 { return c.ID }

// Validate rejects customers without a name.
func (c Customer) Validate() error {
	if c.Name == "" {
		return ValidationError{Field: "name", Reason: "customer name is required"}
	}
	return nil
}

// Sale logs one transaction with a customer. Total and Debt are derived once
// at creation and stored; Debt may go negative when the customer overpays.
// CustomerID is a weak reference, resolved to a placeholder when dangling.
type Sale struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customerId"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Total      decimal.Decimal `json:"total"`
	AmountPaid decimal.Decimal `json:"amountPaid"`
	Debt       decimal.Decimal `json:"debt"`
	Date       Date            `json:"date"`
}

// RecordID implements the store record contract.
func (s Sale) RecordID() int64 { return s.ID }

// Validate enforces the sale invariants.
func (s Sale) Validate() error {
	if s.CustomerID == 0 {
		return ValidationError{Field: "customerId", Reason: "sale must name a customer"}
	}
	if s.Quantity.IsNegative() {
		return ValidationError{Field: "quantity", Reason: "quantity must not be negative"}
	}
	if s.UnitPrice.IsNegative() {
		return ValidationError{Field: "unitPrice", Reason: "unit price must not be negative"}
	}
	if s.Date.IsZero() {
		return ValidationError{Field: "date", Reason: "sale date is required"}
	}
	return nil
}

// NewSale derives Total, AmountPaid and Debt from the raw entry. A nil paid
// amount means the sale was settled in full at entry time; an explicit zero
// means the whole total is owed. The defaulting is applied here once and the
// stored figures are never re-derived.
func NewSale(customerID int64, quantity, unitPrice decimal.Decimal, paid *decimal.Decimal, date Date) Sale {
	total := quantity.Mul(unitPrice)
	amountPaid := paidOrFullTotal(paid, total)
	return Sale{
		CustomerID: customerID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Total:      total,
		AmountPaid: amountPaid,
		Debt:       total.Sub(amountPaid),
		Date:       date,
	}
}

// paidOrFullTotal is the single place the "blank payment means paid in full"
// policy lives. Change it here, not at call sites.
func paidOrFullTotal(paid *decimal.Decimal, total decimal.Decimal) decimal.Decimal {
	if paid == nil {
		return total
	}
	return *paid
}
