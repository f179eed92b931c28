package client

import (
	"time"

	"github.com/zenflowhq/zenflow/core"
)

// Membership statuses
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// Payment plans
type PaymentPlan string

const (
	PlanMonthly   PaymentPlan = "monthly"
	PlanQuarterly PaymentPlan = "quarterly"
	PlanSemester  PaymentPlan = "semester"
	PlanAnnual    PaymentPlan = "annual"
)

// Payment statuses. The stored value is advisory; see IsOverdue.
type PaymentStatus string

const (
	PaymentActive    PaymentStatus = "active"
	PaymentOverdue   PaymentStatus = "overdue"
	PaymentSuspended PaymentStatus = "suspended"
)

type Client struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	MembershipType  string        `json:"membership_type"`
	Status          Status        `json:"status"`
	JoinDate        core.Date     `json:"join_date"`
	PaymentPlan     PaymentPlan   `json:"payment_plan"`
	PaymentAmount   float64       `json:"payment_amount"`
	NextPaymentDate core.Date     `json:"next_payment_date"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	Notes           string        `json:"notes"`
}

// IsOverdue reports whether the client's payment is overdue as of `now`.
// The stored PaymentStatus and the date comparison can disagree; a client is
// overdue when either signal says so. A stale "active" status never hides a
// past-due NextPaymentDate.
func IsOverdue(c Client, now time.Time) bool {
	if c.PaymentStatus == PaymentOverdue {
		return true
	}
	return !c.NextPaymentDate.IsZero() && c.NextPaymentDate.Before(core.DateOf(now))
}

// NewClient contains information needed to create a new Client.
type NewClient struct {
	Name            string        `json:"name" validate:"required"`
	Email           string        `json:"email" validate:"required,email"`
	Phone           string        `json:"phone"`
	MembershipType  string        `json:"membership_type"`
	Status          Status        `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	JoinDate        core.Date     `json:"join_date"`
	PaymentPlan     PaymentPlan   `json:"payment_plan" validate:"required,oneof=monthly quarterly semester annual"`
	PaymentAmount   float64       `json:"payment_amount" validate:"gte=0"`
	NextPaymentDate core.Date     `json:"next_payment_date"`
	PaymentStatus   PaymentStatus `json:"payment_status" validate:"omitempty,oneof=active overdue suspended"`
	Notes           string        `json:"notes"`
}

func (nc *NewClient) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	nc.Email = core.CleanString(nc.Email, true /* lower */)
	nc.Phone = core.CleanString(nc.Phone)
	return core.Validate.Struct(nc)
}

// UpdateClient defines what information may be provided to modify an existing
// Client. Nil fields are left unchanged.
type UpdateClient struct {
	Name            *string        `json:"name"`
	Email           *string        `json:"email" validate:"omitempty,email"`
	Phone           *string        `json:"phone"`
	MembershipType  *string        `json:"membership_type"`
	Status          *Status        `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	JoinDate        *core.Date     `json:"join_date"`
	PaymentPlan     *PaymentPlan   `json:"payment_plan" validate:"omitempty,oneof=monthly quarterly semester annual"`
	PaymentAmount   *float64       `json:"payment_amount" validate:"omitempty,gte=0"`
	NextPaymentDate *core.Date     `json:"next_payment_date"`
	PaymentStatus   *PaymentStatus `json:"payment_status" validate:"omitempty,oneof=active overdue suspended"`
	Notes           *string        `json:"notes"`
}

func (uc *UpdateClient) Validate() error {
	if uc.Name != nil {
		name := core.CleanString(*uc.Name)
		uc.Name = &name
	}
	if uc.Email != nil {
		email := core.CleanString(*uc.Email, true /* lower */)
		uc.Email = &email
	}
	return core.Validate.Struct(uc)
}
