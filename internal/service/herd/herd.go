// Package herd derives reproduction timelines and milk-withdrawal safety
// from animal and health-event dates. Everything takes an explicit asOf date
// so results stay deterministic.
package herd

import "github.com/mazraa/farmbook/internal/domain/models"

const (
	// GestationDays is the bovine gestation length used to project due dates.
	GestationDays = 283
	// PregnancyCheckDay is the day after insemination a pregnancy check is due.
	PregnancyCheckDay = 45
	// CheckWindowSpread widens the check day into a window on both sides.
	CheckWindowSpread = 5
	// BirthAlertDays is how far ahead of the due date the birth alert fires.
	BirthAlertDays = 14
)

// ReproductionStatus is the derived pregnancy picture of one animal.
type ReproductionStatus struct {
	IsPregnant      bool         `json:"isPregnant"`
	DueDate         *models.Date `json:"dueDate,omitempty"`
	CheckWindowOpen bool         `json:"checkWindowOpen"`
	DaysToDue       int          `json:"daysToDue"`
	BirthDue        bool         `json:"birthDue"`
}

// WithdrawalStatus reports whether an animal's milk is currently unsafe and
// for how many more days.
type WithdrawalStatus struct {
	Unsafe        bool `json:"unsafe"`
	DaysRemaining int  `json:"daysRemaining"`
}

// Reproduction derives the pregnancy status of an animal as of the given
// date. An animal with a set insemination date is pregnant; the due date is
// insemination plus the gestation constant; the check window opens around
// day 45 and the birth alert inside the final two weeks.
func Reproduction(animal models.Animal, asOf models.Date) ReproductionStatus {
	if !animal.Pregnant() {
		return ReproductionStatus{}
	}

	insemination := *animal.InseminationDate
	due := insemination.AddDays(GestationDays)
	daysSince := insemination.DaysUntil(asOf)
	daysToDue := asOf.DaysUntil(due)

	return ReproductionStatus{
		IsPregnant:      true,
		DueDate:         &due,
		CheckWindowOpen: daysSince >= PregnancyCheckDay-CheckWindowSpread && daysSince <= PregnancyCheckDay+CheckWindowSpread,
		DaysToDue:       daysToDue,
		BirthDue:        daysToDue >= 0 && daysToDue <= BirthAlertDays,
	}
}

// Withdrawal scans the animal's health events for an active withdrawal
// window. The first qualifying event in log order decides the remaining
// days, even when a later treatment holds the window open longer; taking
// the maximum across active events would be the safer reading.
func Withdrawal(animalID int64, events []models.HealthEvent, asOf models.Date) WithdrawalStatus {
	for _, e := range events {
		if e.AnimalID != animalID || e.WithdrawalDays <= 0 {
			continue
		}
		end := e.Date.AddDays(e.WithdrawalDays)
		if end.After(asOf) {
			return WithdrawalStatus{Unsafe: true, DaysRemaining: asOf.DaysUntil(end)}
		}
	}
	return WithdrawalStatus{}
}
