package class

import (
	"github.com/zenflowhq/zenflow/core"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

type Class struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TeacherID string `json:"teacher_id"`
	// TeacherName is a denormalized copy of the teacher's name, kept in sync
	// on every teacher rename (see teacher.Service.Update).
	TeacherName       string   `json:"teacher_name"`
	Day               string   `json:"day"`
	StartTime         string   `json:"start_time"`
	EndTime           string   `json:"end_time"`
	MaxCapacity       int      `json:"max_capacity"`
	CurrentEnrollment int      `json:"current_enrollment"`
	Description       string   `json:"description"`
	Type              string   `json:"type"`
	Price             float64  `json:"price"`
	Status            Status   `json:"status"`
	EnrolledClients   []string `json:"enrolled_clients"`
}

// NewClass contains information needed to create a new Class.
type NewClass struct {
	Name              string   `json:"name" validate:"required"`
	TeacherID         string   `json:"teacher_id" validate:"required"`
	Day               string   `json:"day" validate:"required,weekday"`
	StartTime         string   `json:"start_time" validate:"required,timestr"`
	EndTime           string   `json:"end_time" validate:"required,timestr"`
	MaxCapacity       int      `json:"max_capacity" validate:"required,gt=0"`
	CurrentEnrollment int      `json:"current_enrollment" validate:"gte=0"`
	Description       string   `json:"description"`
	Type              string   `json:"type"`
	Price             float64  `json:"price" validate:"gte=0"`
	Status            Status   `json:"status" validate:"omitempty,oneof=active cancelled"`
	EnrolledClients   []string `json:"enrolled_clients"`
}

func (nc *NewClass) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	if err := core.Validate.Struct(nc); err != nil {
		return err
	}
	return validateTimes(nc.StartTime, nc.EndTime)
}

// UpdateClass defines what information may be provided to modify an existing
// Class. Nil fields are left unchanged.
type UpdateClass struct {
	Name      *string `json:"name"`
	TeacherID *string `json:"teacher_id"`
	// TeacherName is not settable through the API; the service fills it in
	// whenever TeacherID changes so the snapshot follows the reference.
	TeacherName       *string  `json:"-"`
	Day               *string  `json:"day" validate:"omitempty,weekday"`
	StartTime         *string  `json:"start_time" validate:"omitempty,timestr"`
	EndTime           *string  `json:"end_time" validate:"omitempty,timestr"`
	MaxCapacity       *int     `json:"max_capacity" validate:"omitempty,gt=0"`
	CurrentEnrollment *int     `json:"current_enrollment" validate:"omitempty,gte=0"`
	Description       *string  `json:"description"`
	Type              *string  `json:"type"`
	Price             *float64 `json:"price" validate:"omitempty,gte=0"`
	Status            *Status  `json:"status" validate:"omitempty,oneof=active cancelled"`
	EnrolledClients   []string `json:"enrolled_clients"`
}

func (uc *UpdateClass) Validate() error {
	if uc.Name != nil {
		name := core.CleanString(*uc.Name)
		uc.Name = &name
	}
	return core.Validate.Struct(uc)
}

func validateTimes(start, end string) error {
	// both are "HH:MM"; lexicographic order is chronological order
	if start != "" && end != "" && end <= start {
		return core.NewValidationError(nil,
			core.FieldError{Field: "end_time", Error: "end_time must be after start_time"})
	}
	return nil
}
