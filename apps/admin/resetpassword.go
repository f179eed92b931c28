package main

import (
	"context"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/employee"
)

func (cli *commandLine) resetPassword(email, pwd string) error {
	ctx := context.Background()
	emp, err := cli.empRepo.GetEmployeeByEmail(ctx, core.CleanString(email, true /* lower */))
	if err != nil {
		return err
	}
	if err = emp.SetPassword(pwd); err != nil {
		return err
	}
	_, err = cli.empRepo.UpdateEmployee(ctx, emp.ID, employee.UpdateEmployee{}, emp.PasswordHash)
	return err
}
