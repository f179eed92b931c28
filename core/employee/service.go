package employee

import (
	"context"

	"github.com/zenflowhq/zenflow/core"
)

type (
	Repository interface {
		QueryAllEmployees(ctx context.Context) ([]Employee, error)
		GetEmployeeByID(ctx context.Context, id string) (Employee, error)
		GetEmployeeByEmail(ctx context.Context, email string) (Employee, error)
		CreateEmployee(ctx context.Context, e Employee) (Employee, error)
		UpdateEmployee(ctx context.Context, id string, ue UpdateEmployee, pwdHash []byte) (Employee, error)
		DeleteEmployeeByID(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, ne NewEmployee) (Employee, error) {
	if err := ne.Validate(); err != nil {
		return Employee{}, err
	}

	status := ne.Status
	if status == "" {
		status = StatusActive
	}
	hireDate := ne.HireDate
	if hireDate.IsZero() {
		hireDate = core.Today()
	}
	perms := ne.Permissions
	if perms == nil {
		perms = []Permission{}
	}
	e := Employee{
		Name:        ne.Name,
		Email:       ne.Email,
		Role:        ne.Role,
		Permissions: perms,
		Status:      status,
		HireDate:    hireDate,
	}
	if ne.Password != "" {
		if err := e.SetPassword(ne.Password); err != nil {
			return Employee{}, err
		}
	}
	return svc.repo.CreateEmployee(ctx, e)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Employee, error) {
	return svc.repo.QueryAllEmployees(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Employee, error) {
	return svc.repo.GetEmployeeByID(ctx, id)
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (Employee, error) {
	return svc.repo.GetEmployeeByEmail(ctx, core.CleanString(email, true /* lower */))
}

func (svc *Service) Update(ctx context.Context, id string, ue UpdateEmployee) (Employee, error) {
	if err := ue.Validate(); err != nil {
		return Employee{}, err
	}
	var pwdHash []byte
	if ue.Password != "" {
		var e Employee
		if err := e.SetPassword(ue.Password); err != nil {
			return Employee{}, err
		}
		pwdHash = e.PasswordHash
	}
	return svc.repo.UpdateEmployee(ctx, id, ue, pwdHash)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	if _, err := svc.repo.GetEmployeeByID(ctx, id); err != nil {
		return err
	}
	return svc.repo.DeleteEmployeeByID(ctx, id)
}
