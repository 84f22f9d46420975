// Package finance derives revenue, expense and debt figures from the sale,
// purchase and health-event logs.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/mazraa/farmbook/internal/domain/models"
)

// UnknownCustomerLabel is shown when a sale points at a customer that no
// longer exists. Customer deletion does not cascade, so dangling references
// are expected and must never fail a view.
const UnknownCustomerLabel = "Unknown customer"

// Summary holds the whole-farm money picture.
type Summary struct {
	Revenue       decimal.Decimal `json:"revenue"`
	FeedExpense   decimal.Decimal `json:"feedExpense"`
	HealthExpense decimal.Decimal `json:"healthExpense"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// Debtor is one customer with a positive outstanding balance.
type Debtor struct {
	CustomerID int64           `json:"customerId"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone,omitempty"`
	Owed       decimal.Decimal `json:"owed"`
}

// Totals sums revenue across sales and expense across feed purchases and
// health events; net profit is revenue minus both expense buckets.
func Totals(sales []models.Sale, purchases []models.FeedPurchase, events []models.HealthEvent) Summary {
	var sum Summary
	for _, s := range sales {
		sum.Revenue = sum.Revenue.Add(s.Total)
	}
	for _, p := range purchases {
		sum.FeedExpense = sum.FeedExpense.Add(p.TotalCost)
	}
	for _, e := range events {
		sum.HealthExpense = sum.HealthExpense.Add(e.Cost)
	}
	sum.NetProfit = sum.Revenue.Sub(sum.FeedExpense.Add(sum.HealthExpense))
	return sum
}

// DebtByCustomer sums the stored debt of every sale per customer, overpaid
// sales included. Customers with no sales do not appear.
func DebtByCustomer(sales []models.Sale) map[int64]decimal.Decimal {
	debts := make(map[int64]decimal.Decimal)
	for _, s := range sales {
		debts[s.CustomerID] = debts[s.CustomerID].Add(s.Debt)
	}
	return debts
}

// Debtors resolves the debt aggregate into a display list: only customers
// whose aggregate is positive are owed; settled or overpaid customers are
// excluded. A dangling customer id resolves to the unknown-customer label.
// Order follows the customer collection, unknown customers last in first-sale
// order.
func Debtors(sales []models.Sale, customers []models.Customer) []Debtor {
	debts := DebtByCustomer(sales)

	debtors := make([]Debtor, 0, len(debts))
	seen := make(map[int64]bool, len(debts))

	for _, c := range customers {
		owed, ok := debts[c.ID]
		seen[c.ID] = true
		if !ok || !owed.IsPositive() {
			continue
		}
		debtors = append(debtors, Debtor{CustomerID: c.ID, Name: c.Name, Phone: c.Phone, Owed: owed})
	}

	for _, s := range sales {
		if seen[s.CustomerID] {
			continue
		}
		seen[s.CustomerID] = true
		if owed := debts[s.CustomerID]; owed.IsPositive() {
			debtors = append(debtors, Debtor{CustomerID: s.CustomerID, Name: UnknownCustomerLabel, Owed: owed})
		}
	}

	return debtors
}
