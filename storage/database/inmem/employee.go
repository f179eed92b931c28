package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/employee"
)

type employeeRepository struct {
	db *employeeTable
}

var _ employee.Repository = (*employeeRepository)(nil) // interface compliance check

func NewEmployeeRepository(db *DB) employee.Repository {
	return &employeeRepository{db: db.employees}
}

func (repo *employeeRepository) query() []employee.Employee {
	employees := make([]employee.Employee, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		employees = append(employees, *repo.db.table[id])
	}
	return employees
}

func (repo *employeeRepository) QueryAllEmployees(_ context.Context) ([]employee.Employee, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *employeeRepository) GetEmployeeByID(_ context.Context, id string) (employee.Employee, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if e, ok := repo.db.table[id]; ok {
		return *e, nil
	}
	return employee.Employee{}, core.NewNotFoundError("employee", id)
}

func (repo *employeeRepository) GetEmployeeByEmail(_ context.Context, email string) (employee.Employee, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, e := range repo.query() {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, core.NewNotFoundError("employee", email)
}

func (repo *employeeRepository) CreateEmployee(_ context.Context, e employee.Employee) (employee.Employee, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	e.ID = uuid.NewString()
	repo.db.table[e.ID] = &e
	repo.db.order = append(repo.db.order, e.ID)
	return e, nil
}

func (repo *employeeRepository) UpdateEmployee(_ context.Context, id string, ue employee.UpdateEmployee, pwdHash []byte) (employee.Employee, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	orig, ok := repo.db.table[id]
	if !ok {
		return employee.Employee{}, core.NewNotFoundError("employee", id)
	}
	// only save set fields
	if ue.Name != nil {
		orig.Name = *ue.Name
	}
	if ue.Email != nil {
		orig.Email = *ue.Email
	}
	if ue.Role != nil {
		orig.Role = *ue.Role
	}
	if ue.Permissions != nil {
		orig.Permissions = ue.Permissions
	}
	if ue.Status != nil {
		orig.Status = *ue.Status
	}
	if ue.HireDate != nil {
		orig.HireDate = *ue.HireDate
	}
	if pwdHash != nil {
		orig.PasswordHash = pwdHash
	}
	return *orig, nil
}

func (repo *employeeRepository) DeleteEmployeeByID(_ context.Context, id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return core.NewNotFoundError("employee", id)
	}
	delete(repo.db.table, id)
	repo.db.order = removeID(repo.db.order, id)
	return nil
}
