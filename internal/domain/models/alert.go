package models

import "github.com/shopspring/decimal"

// AlertSeverity ranks how urgently an alert needs attention.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is one actionable finding from the aggregator scan. Metric carries
// the number the message is about: days to a due date, days of withdrawal
// remaining, or a stock level.
type Alert struct {
	Message  string          `json:"message"`
	Severity AlertSeverity   `json:"severity"`
	Metric   decimal.Decimal `json:"metric"`
}
