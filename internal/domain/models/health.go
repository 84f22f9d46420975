package models

import "github.com/shopspring/decimal"

// HealthEventKind separates curative treatments from preventive vaccines.
type HealthEventKind string

const (
	EventTreatment HealthEventKind = "treatment"
	EventVaccine   HealthEventKind = "vaccine"
)

// HealthEvent logs a veterinary intervention on an animal. AnimalID is a
// weak reference: deleting the animal does not delete its events, and
// display code must resolve a dangling id to an explicit placeholder.
// WithdrawalDays > 0 opens a milk-unsafe window starting at Date.
type HealthEvent struct {
	ID             int64           `json:"id"`
	AnimalID       int64           `json:"animalId"`
	Kind           HealthEventKind `json:"kind"`
	Description    string          `json:"description"`
	Cost           decimal.Decimal `json:"cost"`
	WithdrawalDays int             `json:"withdrawalDays"`
	Date           Date            `json:"date"`
}

// RecordID implements the store record contract.
func (e HealthEvent) RecordID() int64 { return e.ID }

// Validate enforces the health-event invariants.
func (e HealthEvent) Validate() error {
	if e.AnimalID == 0 {
		return ValidationError{Field: "animalId", Reason: "health event must name an animal"}
	}
	if e.Kind != EventTreatment && e.Kind != EventVaccine {
		return ValidationError{Field: "kind", Reason: "kind must be treatment or vaccine"}
	}
	if e.Cost.IsNegative() {
		return ValidationError{Field: "cost", Reason: "cost must not be negative"}
	}
	if e.WithdrawalDays < 0 {
		return ValidationError{Field: "withdrawalDays", Reason: "withdrawal days must not be negative"}
	}
	if e.Date.IsZero() {
		return ValidationError{Field: "date", Reason: "event date is required"}
	}
	return nil
}
