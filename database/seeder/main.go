package main

import (
	"github.com/inkwell/database/seeder/seeds"
	"github.com/inkwell/metal/env"
	"github.com/inkwell/metal/kernel"
	"github.com/inkwell/pkg/cli"
	"github.com/inkwell/pkg/portal"
)

var environment *env.Environment

func init() {
	secrets, err := kernel.Ignite("./.env", portal.GetDefaultValidator())
	if err != nil {
		panic(err)
	}

	environment = secrets
}

func main() {
	cli.ClearScreen()

	dbConnection := kernel.MakeDbConnection(environment)
	logs := kernel.MakeLogs(environment)

	defer logs.Close()
	defer dbConnection.Close()

	if err := dbConnection.Migrate(); err != nil {
		panic(err)
	}

	if err := seeds.MakeSeeder(dbConnection, environment).Run(); err != nil {
		cli.Errorln(err.Error())
		panic(err)
	}
}
