package employee

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/zenflowhq/zenflow/core"
)

type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Permission tokens, one per resource group.
type Permission string

const (
	PermClients    Permission = "clients"
	PermTeachers   Permission = "teachers"
	PermClasses    Permission = "classes"
	PermEmployees  Permission = "employees"
	PermAttendance Permission = "attendance"
	PermPayments   Permission = "payments"
	PermSettings   Permission = "settings"

	// PermAll grants everything, employee management included.
	PermAll Permission = "all"
)

var AllPermissions = []Permission{
	PermClients, PermTeachers, PermClasses, PermEmployees, PermAttendance, PermPayments, PermSettings,
}

type Employee struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Role         Role         `json:"role"`
	Permissions  []Permission `json:"permissions"`
	Status       Status       `json:"status"`
	HireDate     core.Date    `json:"hire_date"`
	PasswordHash []byte       `json:"-"`
}

func (e *Employee) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.PasswordHash = hash
	return nil
}

func (e *Employee) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(e.PasswordHash, []byte(pwd))
}

// HasPermission reports whether the employee may act on the given resource.
// A manager implicitly holds every permission except employee management,
// which always requires an explicit "employees" or "all" grant.
func (e Employee) HasPermission(p Permission) bool {
	for _, granted := range e.Permissions {
		if granted == p || granted == PermAll {
			return true
		}
	}
	if e.Role == RoleManager {
		return p != PermEmployees
	}
	return false
}

// NewEmployee contains information needed to create a new Employee.
type NewEmployee struct {
	Name        string       `json:"name" validate:"required"`
	Email       string       `json:"email" validate:"required,email"`
	Role        Role         `json:"role" validate:"required,oneof=manager employee"`
	Permissions []Permission `json:"permissions" validate:"omitempty,dive,oneof=clients teachers classes employees attendance payments settings all"`
	Status      Status       `json:"status" validate:"omitempty,oneof=active inactive"`
	HireDate    core.Date    `json:"hire_date"`
	Password    string       `json:"password" validate:"omitempty,min=8"`
}

func (ne *NewEmployee) Validate() error {
	ne.Name = core.CleanString(ne.Name)
	ne.Email = core.CleanString(ne.Email, true /* lower */)
	return core.Validate.Struct(ne)
}

// UpdateEmployee defines what information may be provided to modify an
// existing Employee. Nil fields are left unchanged.
type UpdateEmployee struct {
	Name        *string      `json:"name"`
	Email       *string      `json:"email" validate:"omitempty,email"`
	Role        *Role        `json:"role" validate:"omitempty,oneof=manager employee"`
	Permissions []Permission `json:"permissions" validate:"omitempty,dive,oneof=clients teachers classes employees attendance payments settings all"`
	Status      *Status      `json:"status" validate:"omitempty,oneof=active inactive"`
	HireDate    *core.Date   `json:"hire_date"`
	Password    string       `json:"password" validate:"omitempty,min=8"`
}

func (ue *UpdateEmployee) Validate() error {
	if ue.Name != nil {
		name := core.CleanString(*ue.Name)
		ue.Name = &name
	}
	if ue.Email != nil {
		email := core.CleanString(*ue.Email, true /* lower */)
		ue.Email = &email
	}
	return core.Validate.Struct(ue)
}
