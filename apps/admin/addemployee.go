package main

import (
	"context"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/employee"
)

// addEmployee creates a manager account with the "all" grant, or reactivates
// an existing account under the same email and resets its password.
func (cli *commandLine) addEmployee(name, email, pwd string) error {
	ctx := context.Background()
	name = core.CleanString(name)
	email = core.CleanString(email, true /* lower */)

	emp, err := cli.empRepo.GetEmployeeByEmail(ctx, email)
	if err != nil {
		if !core.IsNotFound(err) {
			return err
		}
		emp = employee.Employee{
			Name:        name,
			Email:       email,
			Role:        employee.RoleManager,
			Permissions: []employee.Permission{employee.PermAll},
			Status:      employee.StatusActive,
			HireDate:    core.Today(),
		}
		if err = emp.SetPassword(pwd); err != nil {
			return err
		}
		_, err = cli.empRepo.CreateEmployee(ctx, emp)
		return err
	}

	if err = emp.SetPassword(pwd); err != nil {
		return err
	}
	status := employee.StatusActive
	_, err = cli.empRepo.UpdateEmployee(ctx, emp.ID, employee.UpdateEmployee{
		Name:   &name,
		Status: &status,
	}, emp.PasswordHash)
	return err
}
