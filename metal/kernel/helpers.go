package kernel

import (
	"log/slog"
	baseHttp "net/http"

	"github.com/inkwell/database"
	"github.com/inkwell/metal/env"
	"github.com/inkwell/pkg/endpoint"
)

func (a *App) SetRouter(router Router) {
	a.router = &router
}

func (a *App) CloseLogs() {
	if a.logs == nil {
		return
	}

	a.logs.Close()
}

func (a *App) CloseDB() {
	if a.db == nil {
		return
	}

	a.db.Close()
}

func (a *App) CloseTracer() {
	if a.tracer == nil {
		return
	}

	if err := a.tracer.Shutdown(); err != nil {
		slog.Error("could not shut down the tracer", "error", err)
	}
}

func (a *App) IsLocal() bool {
	return a.env.App.IsLocal()
}

func (a *App) IsProduction() bool {
	return a.env.App.IsProduction()
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetDB() *database.Connection {
	return a.db
}

func (a *App) GetMux() *baseHttp.ServeMux {
	if a.router == nil {
		return nil
	}

	return a.router.Mux
}

// Handler wraps the mux with CORS, sentry and a tracing span per request.
func (a *App) Handler() baseHttp.Handler {
	mux := a.GetMux()
	if mux == nil {
		return baseHttp.NotFoundHandler()
	}

	handler := endpoint.NewServerHandler(endpoint.ServerHandlerConfig{
		Mux:            mux,
		IsProduction:   a.IsProduction(),
		AllowedOrigins: a.env.Network.AllowedOrigins,
		Wrap:           a.sentry.Wrap,
	})

	return a.tracer.Wrap(handler, a.env.App.Name)
}
