package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/employee"
)

type employeeRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	Role         string         `db:"role"`
	Permissions  pq.StringArray `db:"permissions"`
	Status       string         `db:"status"`
	HireDate     core.Date      `db:"hire_date"`
	PasswordHash []byte         `db:"password_hash"`
	CreatedAt    time.Time      `db:"created_at"`
}

func (r employeeRow) toEmployee() employee.Employee {
	perms := make([]employee.Permission, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		perms = append(perms, employee.Permission(p))
	}
	return employee.Employee{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Role:         employee.Role(r.Role),
		Permissions:  perms,
		Status:       employee.Status(r.Status),
		HireDate:     r.HireDate,
		PasswordHash: r.PasswordHash,
	}
}

func newEmployeeRow(e employee.Employee) employeeRow {
	perms := make(pq.StringArray, 0, len(e.Permissions))
	for _, p := range e.Permissions {
		perms = append(perms, string(p))
	}
	return employeeRow{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Role:         string(e.Role),
		Permissions:  perms,
		Status:       string(e.Status),
		HireDate:     e.HireDate,
		PasswordHash: e.PasswordHash,
	}
}

type employeeRepository struct {
	db *sqlx.DB
}

var _ employee.Repository = (*employeeRepository)(nil) // interface compliance check

func NewEmployeeRepository(db *sqlx.DB) employee.Repository {
	return &employeeRepository{db: db}
}

func (repo *employeeRepository) QueryAllEmployees(ctx context.Context) ([]employee.Employee, error) {
	var rows []employeeRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM employees ORDER BY created_at`); err != nil {
		return nil, errors.Wrap(err, "querying employees")
	}
	employees := make([]employee.Employee, 0, len(rows))
	for _, r := range rows {
		employees = append(employees, r.toEmployee())
	}
	return employees, nil
}

func (repo *employeeRepository) GetEmployeeByID(ctx context.Context, id string) (employee.Employee, error) {
	var row employeeRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM employees WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return employee.Employee{}, core.NewNotFoundError("employee", id)
	}
	if err != nil {
		return employee.Employee{}, errors.Wrap(err, "getting employee")
	}
	return row.toEmployee(), nil
}

func (repo *employeeRepository) GetEmployeeByEmail(ctx context.Context, email string) (employee.Employee, error) {
	var row employeeRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM employees WHERE email = $1`, email)
	if err == sql.ErrNoRows {
		return employee.Employee{}, core.NewNotFoundError("employee", email)
	}
	if err != nil {
		return employee.Employee{}, errors.Wrap(err, "getting employee by email")
	}
	return row.toEmployee(), nil
}

func (repo *employeeRepository) CreateEmployee(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = uuid.NewString()
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO employees (id, name, email, role, permissions, status, hire_date, password_hash)
		VALUES (:id, :name, :email, :role, :permissions, :status, :hire_date, :password_hash)`,
		newEmployeeRow(e))
	if err != nil {
		return employee.Employee{}, errors.Wrap(err, "creating employee")
	}
	return e, nil
}

func (repo *employeeRepository) UpdateEmployee(ctx context.Context, id string, ue employee.UpdateEmployee, pwdHash []byte) (employee.Employee, error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return employee.Employee{}, errors.Wrap(err, "beginning tx")
	}
	defer func() { _ = tx.Rollback() }()

	var row employeeRow
	err = tx.GetContext(ctx, &row, `SELECT * FROM employees WHERE id = $1 FOR UPDATE`, id)
	if err == sql.ErrNoRows {
		return employee.Employee{}, core.NewNotFoundError("employee", id)
	}
	if err != nil {
		return employee.Employee{}, errors.Wrap(err, "getting employee")
	}

	e := row.toEmployee()
	if ue.Name != nil {
		e.Name = *ue.Name
	}
	if ue.Email != nil {
		e.Email = *ue.Email
	}
	if ue.Role != nil {
		e.Role = *ue.Role
	}
	if ue.Permissions != nil {
		e.Permissions = ue.Permissions
	}
	if ue.Status != nil {
		e.Status = *ue.Status
	}
	if ue.HireDate != nil {
		e.HireDate = *ue.HireDate
	}
	if pwdHash != nil {
		e.PasswordHash = pwdHash
	}

	_, err = tx.NamedExecContext(ctx, `
		UPDATE employees SET name = :name, email = :email, role = :role,
			permissions = :permissions, status = :status, hire_date = :hire_date,
			password_hash = :password_hash
		WHERE id = :id`,
		newEmployeeRow(e))
	if err != nil {
		return employee.Employee{}, errors.Wrap(err, "updating employee")
	}
	if err = tx.Commit(); err != nil {
		return employee.Employee{}, errors.Wrap(err, "committing tx")
	}
	return e, nil
}

func (repo *employeeRepository) DeleteEmployeeByID(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting employee")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return core.NewNotFoundError("employee", id)
	}
	return nil
}
