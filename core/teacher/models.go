package teacher

import (
	"github.com/zenflowhq/zenflow/core"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Teacher struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Specialties     []string `json:"specialties"`
	ExperienceLevel string   `json:"experience_level"`
	Status          Status   `json:"status"`
	HourlyRate      float64  `json:"hourly_rate"`
	// Color is a stable visual key across schedule views.
	Color string `json:"color"`
	Bio   string `json:"bio"`
}

// NewTeacher contains information needed to create a new Teacher.
type NewTeacher struct {
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone"`
	Specialties     []string `json:"specialties"`
	ExperienceLevel string   `json:"experience_level"`
	Status          Status   `json:"status" validate:"omitempty,oneof=active inactive"`
	HourlyRate      float64  `json:"hourly_rate" validate:"gte=0"`
	Color           string   `json:"color" validate:"omitempty,hexcolor"`
	Bio             string   `json:"bio"`
}

func (nt *NewTeacher) Validate() error {
	nt.Name = core.CleanString(nt.Name)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	nt.Phone = core.CleanString(nt.Phone)
	return core.Validate.Struct(nt)
}

// UpdateTeacher defines what information may be provided to modify an
// existing Teacher. Nil fields are left unchanged.
type UpdateTeacher struct {
	Name            *string  `json:"name"`
	Email           *string  `json:"email" validate:"omitempty,email"`
	Phone           *string  `json:"phone"`
	Specialties     []string `json:"specialties"`
	ExperienceLevel *string  `json:"experience_level"`
	Status          *Status  `json:"status" validate:"omitempty,oneof=active inactive"`
	HourlyRate      *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
	Color           *string  `json:"color" validate:"omitempty,hexcolor"`
	Bio             *string  `json:"bio"`
}

func (ut *UpdateTeacher) Validate() error {
	if ut.Name != nil {
		name := core.CleanString(*ut.Name)
		ut.Name = &name
	}
	if ut.Email != nil {
		email := core.CleanString(*ut.Email, true /* lower */)
		ut.Email = &email
	}
	return core.Validate.Struct(ut)
}
