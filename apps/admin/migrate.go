package main

import (
	"path/filepath"

	"github.com/pressly/goose/v3"
)

var gooseRunFunc = goose.Run // mockable

func (cli *commandLine) migrate(args []string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	dir := filepath.Join(cli.conf.WorkDir, "migrations")
	return gooseRunFunc(args[0], cli.db.DB, dir, arguments...)
}
