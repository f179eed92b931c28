package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/zenflowhq/zenflow/core"
	"github.com/zenflowhq/zenflow/core/employee"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db      *sqlx.DB
	conf    *core.Config
	empRepo employee.Repository
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  addemployee -name NAME -email EMAIL - create (or reactivate) a manager account")
	fmt.Println("  resetpassword -email EMAIL - reset an employee's password")
	fmt.Println("  migrate COMMAND [args] - run a goose migration command")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addEmployeeCmd := flag.NewFlagSet("addemployee", flag.ExitOnError)
	addEmployeeName := addEmployeeCmd.String("name", "", "The employee's full name.")
	addEmployeeEmail := addEmployeeCmd.String("email", "", "The employee's email. The password will be prompted next.")

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ExitOnError)
	resetPasswordEmail := resetPasswordCmd.String("email", "", "The employee's email. The password will be prompted next.")

	switch args[1] {
	case "addemployee":
		if err := addEmployeeCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addEmployeeName == "" || *addEmployeeEmail == "" {
			addEmployeeCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addEmployeeCmd.Usage()
			return errHelp
		}
		return cli.addEmployee(*addEmployeeName, *addEmployeeEmail, string(pwd))
	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordEmail == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordEmail, string(pwd))
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword() ([]byte, error) {
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	return pwd, err
}
