package kernel

import (
	"fmt"
	baseHttp "net/http"

	"github.com/inkwell/database"
	"github.com/inkwell/metal/env"
	"github.com/inkwell/pkg/llogs"
	"github.com/inkwell/pkg/middleware"
	"github.com/inkwell/pkg/portal"
)

type App struct {
	router    *Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	tracer    *portal.TracerProvider
	validator *portal.Validator
	env       *env.Environment
	db        *database.Connection
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	jwtHandler, err := MakeJWTHandler(env)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create jwt handler: %w", err)
	}

	tracer, err := portal.NewTracerProvider(env)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not start tracing: %w", err)
	}

	db := MakeDbConnection(env)

	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
		tracer:    tracer,
		db:        db,
	}

	router := Router{
		Env:       env,
		Db:        db,
		Mux:       baseHttp.NewServeMux(),
		Validator: validator,
		Slugger:   MakeSlugger(env),
		Pipeline: middleware.Pipeline{
			Env: env,
			JWT: middleware.MakeJWTMiddleware(jwtHandler),
		},
	}

	app.SetRouter(router)

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := *a.router

	router.KeepAlive()
	router.KeepAliveDB()
	router.Metrics()
	router.Posts()
	router.Categories()
	router.Tags()
	router.Authors()
}
