package models

// AnimalStatus enumerates the production states an animal can be in.
type AnimalStatus string

const (
	StatusMilking AnimalStatus = "milking"
	StatusDry     AnimalStatus = "dry"
	StatusSick    AnimalStatus = "sick"
)

// Animal is a single head of livestock. Tag is the farmer-facing identifier
// and must be non-empty; a set InseminationDate marks the animal as pregnant
// until it is cleared or replaced.
type Animal struct {
	ID               int64        `json:"id"`
	Tag              string       `json:"tag"`
	Name             string       `json:"name"`
	Status           AnimalStatus `json:"status"`
	BirthDate        *Date        `json:"birthDate,omitempty"`
	CalvingCount     int          `json:"calvingCount"`
	InseminationDate *Date        `json:"inseminationDate,omitempty"`
}

// RecordID implements the store record contract.
func (a Animal) RecordID() int64 { return a.ID }

// Validate rejects animals without a tag.
func (a Animal) Validate() error {
	if a.Tag == "" {
		return ValidationError{Field: "tag", Reason: "animal tag is required"}
	}
	if a.CalvingCount < 0 {
		return ValidationError{Field: "calvingCount", Reason: "calving count must not be negative"}
	}
	return nil
}

// Pregnant reports whether the animal currently carries an insemination date.
func (a Animal) Pregnant() bool {
	return a.InseminationDate != nil && !a.InseminationDate.IsZero()
}
