package attendance

import (
	"github.com/zenflowhq/zenflow/core"
)

// PersonType selects which repository the person_id refers to.
type PersonType string

const (
	PersonTeacher  PersonType = "teacher"
	PersonClient   PersonType = "client"
	PersonEmployee PersonType = "employee"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

type Record struct {
	ID         string     `json:"id"`
	PersonID   string     `json:"person_id"`
	PersonType PersonType `json:"person_type"`
	// PersonName is snapshotted at creation time and never re-synced.
	PersonName string    `json:"person_name"`
	ClassID    string    `json:"class_id,omitempty"`
	ClassName  string    `json:"class_name,omitempty"`
	Date       core.Date `json:"date"`
	Status     Status    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
}

// NewRecord contains information needed to create a new attendance Record.
type NewRecord struct {
	PersonID   string     `json:"person_id" validate:"required"`
	PersonType PersonType `json:"person_type" validate:"required,oneof=teacher client employee"`
	ClassID    string     `json:"class_id"`
	Date       core.Date  `json:"date"`
	Status     Status     `json:"status" validate:"required,oneof=present absent late"`
	Notes      string     `json:"notes"`
}

func (nr *NewRecord) Validate() error {
	nr.PersonID = core.CleanString(nr.PersonID)
	nr.ClassID = core.CleanString(nr.ClassID)
	if err := core.Validate.Struct(nr); err != nil {
		return err
	}
	// a `required` tag recurses into the date struct instead of checking
	// presence; enforce it directly
	if nr.Date.IsZero() {
		return core.NewValidationError(nil,
			core.FieldError{Field: "date", Error: "date is required"})
	}
	return nil
}

// UpdateRecord defines what information may be provided to modify an existing
// Record. Nil fields are left unchanged. The person reference and date are
// immutable once recorded; only the observation itself may change.
type UpdateRecord struct {
	Status *Status `json:"status" validate:"omitempty,oneof=present absent late"`
	Notes  *string `json:"notes"`
}

func (ur *UpdateRecord) Validate() error {
	return core.Validate.Struct(ur)
}
