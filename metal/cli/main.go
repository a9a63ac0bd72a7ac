package main

import (
	"github.com/inkwell/database"
	"github.com/inkwell/database/seeder/seeds"
	"github.com/inkwell/metal/cli/accounts"
	"github.com/inkwell/metal/cli/panel"
	"github.com/inkwell/metal/env"
	"github.com/inkwell/metal/kernel"
	"github.com/inkwell/pkg/cli"
	"github.com/inkwell/pkg/portal"
)

var environment *env.Environment
var dbConn *database.Connection

func init() {
	secrets, err := kernel.Ignite("./.env", portal.GetDefaultValidator())
	if err != nil {
		panic(err)
	}

	environment = secrets
	dbConn = kernel.MakeDbConnection(environment)
}

func main() {
	defer dbConn.Close()

	cli.ClearScreen()

	menu := panel.MakeMenu()

	for {
		err := menu.CaptureInput()

		if err != nil {
			cli.Errorln(err.Error())
			continue
		}

		switch menu.GetChoice() {
		case 1:
			if err = createAuthor(menu); err != nil {
				cli.Errorln(err.Error())
				continue
			}

			return
		case 2:
			if err = showAuthor(menu); err != nil {
				cli.Errorln(err.Error())
				continue
			}

			return
		case 3:
			if err = issueAuthorToken(menu); err != nil {
				cli.Errorln(err.Error())
				continue
			}

			return
		case 4:
			if err = dbConn.Migrate(); err != nil {
				cli.Errorln(err.Error())
				continue
			}

			cli.Successln("Migrations ran successfully.")

			return
		case 5:
			if err = seeds.MakeSeeder(dbConn, environment).Run(); err != nil {
				cli.Errorln(err.Error())
				continue
			}

			return
		case 0:
			cli.Successln("Goodbye!")
			return
		default:
			cli.Errorln("Unknown option. Try again.")
		}

		cli.Blueln("Press Enter to continue...")

		menu.PrintLine()
	}
}

func createAuthor(menu panel.Menu) error {
	var err error
	var name string
	var handler *accounts.Handler

	if name, err = menu.CaptureAuthorName(); err != nil {
		return err
	}

	if handler, err = accounts.NewHandler(dbConn, environment); err != nil {
		return err
	}

	return handler.CreateAccount(name)
}

func showAuthor(menu panel.Menu) error {
	var err error
	var slug string
	var handler *accounts.Handler

	if slug, err = menu.CaptureAuthorSlug(); err != nil {
		return err
	}

	if handler, err = accounts.NewHandler(dbConn, environment); err != nil {
		return err
	}

	return handler.ShowAccount(slug)
}

func issueAuthorToken(menu panel.Menu) error {
	var err error
	var slug string
	var handler *accounts.Handler

	if slug, err = menu.CaptureAuthorSlug(); err != nil {
		return err
	}

	if handler, err = accounts.NewHandler(dbConn, environment); err != nil {
		return err
	}

	_, err = handler.IssueToken(slug)

	return err
}
