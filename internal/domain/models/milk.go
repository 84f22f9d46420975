package models

import "github.com/shopspring/decimal"

// MilkSession distinguishes the two daily milkings.
type MilkSession string

const (
	SessionMorning MilkSession = "morning"
	SessionEvening MilkSession = "evening"
)

// MilkEntry logs the yield of one milking session. AnimalRef is optional:
// herd-level entries that do not name an animal are valid. Duplicate entries
// for the same date and session are summed, never merged.
type MilkEntry struct {
	ID        int64           `json:"id"`
	AnimalRef int64           `json:"animalRef,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Session   MilkSession     `json:"session"`
	Date      Date            `json:"date"`
}

// RecordID implements the store record contract.
func (m MilkEntry) RecordID() int64 { return m.ID }

// Validate rejects negative yields and unknown sessions.
func (m MilkEntry) Validate() error {
	if m.Amount.IsNegative() {
		return ValidationError{Field: "amount", Reason: "milk amount must not be negative"}
	}
	if m.Session != SessionMorning && m.Session != SessionEvening {
		return ValidationError{Field: "session", Reason: "session must be morning or evening"}
	}
	if m.Date.IsZero() {
		return ValidationError{Field: "date", Reason: "entry date is required"}
	}
	return nil
}
