package main

import (
	"log/slog"
	baseHttp "net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/inkwell/metal/kernel"
	"github.com/inkwell/pkg/endpoint"
	"github.com/inkwell/pkg/portal"
)

var app *kernel.App

func init() {
	validate := portal.GetDefaultValidator()

	secrets, err := kernel.Ignite("./.env", validate)
	if err != nil {
		panic("failed to read the .env file/values: " + err.Error())
	}

	if app, err = kernel.MakeApp(secrets, validate); err != nil {
		panic(err.Error())
	}
}

func main() {
	defer sentry.Flush(2 * time.Second)
	defer app.CloseDB()
	defer app.CloseLogs()
	defer app.CloseTracer()

	app.Boot()

	if err := app.GetDB().Ping(); err != nil {
		slog.Error("database is not reachable", "error", err)
	}

	addr := app.GetEnv().Network.GetHostURL()

	server := &baseHttp.Server{
		Addr:              addr,
		Handler:           app.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if err := endpoint.RunServer(addr, server); err != nil {
		slog.Error("Error starting server", "error", err)
		panic("Error starting server." + err.Error())
	}
}
