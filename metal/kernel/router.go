package kernel

import (
	baseHttp "net/http"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository"
	"github.com/inkwell/handler"
	"github.com/inkwell/metal/env"
	"github.com/inkwell/pkg/endpoint"
	"github.com/inkwell/pkg/middleware"
	"github.com/inkwell/pkg/portal"
)

type Router struct {
	Env       *env.Environment
	Mux       *baseHttp.ServeMux
	Pipeline  middleware.Pipeline
	Db        *database.Connection
	Validator *portal.Validator
	Slugger   portal.Slugger
}

func (r *Router) PublicPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Public(apiHandler),
	)
}

func (r *Router) PipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Protected(apiHandler),
	)
}

// route registers the pattern with and without a trailing slash.
func (r *Router) route(method, path string, h baseHttp.HandlerFunc) {
	r.Mux.HandleFunc(method+" "+path, h)
	r.Mux.HandleFunc(method+" "+path+"/{$}", h)
}

func (r *Router) categoriesRepository() *repository.Categories {
	return &repository.Categories{DB: r.Db, Slugger: r.Slugger}
}

func (r *Router) Posts() {
	repo := repository.Posts{DB: r.Db, Slugger: r.Slugger, Categories: r.categoriesRepository()}
	authors := repository.Authors{DB: r.Db, Slugger: r.Slugger}
	attachments := repository.Attachments{DB: r.Db}

	abstract := handler.NewPostsHandler(&repo, &authors, &attachments, r.Validator)

	r.route("GET", "/posts", r.PublicPipelineFor(abstract.Index))
	r.route("GET", "/posts/{slug}", r.PublicPipelineFor(abstract.Show))

	r.route("POST", "/posts", r.PipelineFor(abstract.Store))
	r.route("PUT", "/posts/{slug}", r.PipelineFor(abstract.Update))
	r.route("PATCH", "/posts/{slug}", r.PipelineFor(abstract.Patch))
	r.route("DELETE", "/posts/{slug}", r.PipelineFor(abstract.Destroy))

	r.route("POST", "/posts/{slug}/attachments", r.PipelineFor(abstract.StoreAttachment))
	r.route("DELETE", "/posts/{slug}/attachments/{id}", r.PipelineFor(abstract.DestroyAttachment))
}

// Categories are writable without a token, like tags.
func (r *Router) Categories() {
	abstract := handler.NewCategoriesHandler(r.categoriesRepository(), r.Validator)

	r.route("GET", "/categories", r.PublicPipelineFor(abstract.Index))
	r.route("POST", "/categories", r.PublicPipelineFor(abstract.Store))
	r.route("GET", "/categories/{id}", r.PublicPipelineFor(abstract.Show))
	r.route("PUT", "/categories/{id}", r.PublicPipelineFor(abstract.Update))
	r.route("PATCH", "/categories/{id}", r.PublicPipelineFor(abstract.Patch))
	r.route("DELETE", "/categories/{id}", r.PublicPipelineFor(abstract.Destroy))
}

func (r *Router) Tags() {
	repo := repository.Tags{DB: r.Db, Slugger: r.Slugger}
	abstract := handler.NewTagsHandler(&repo, r.Validator)

	r.route("GET", "/tags", r.PublicPipelineFor(abstract.Index))
	r.route("POST", "/tags", r.PublicPipelineFor(abstract.Store))
	r.route("GET", "/tags/{id}", r.PublicPipelineFor(abstract.Show))
	r.route("PUT", "/tags/{id}", r.PublicPipelineFor(abstract.Update))
	r.route("PATCH", "/tags/{id}", r.PublicPipelineFor(abstract.Patch))
	r.route("DELETE", "/tags/{id}", r.PublicPipelineFor(abstract.Destroy))
}

func (r *Router) Authors() {
	repo := repository.Authors{DB: r.Db, Slugger: r.Slugger}
	abstract := handler.NewAuthorsHandler(&repo)

	r.route("GET", "/authors", r.PublicPipelineFor(abstract.Index))
	r.route("GET", "/authors/{id}", r.PublicPipelineFor(abstract.Show))
}

func (r *Router) KeepAlive() {
	abstract := handler.MakeKeepAliveHandler(&r.Env.Ping)

	apiHandler := endpoint.NewApiHandler(
		r.Pipeline.Chain(abstract.Handle, middleware.RequestID),
	)

	r.Mux.HandleFunc("GET /ping", apiHandler)
}

func (r *Router) KeepAliveDB() {
	abstract := handler.MakeKeepAliveDBHandler(&r.Env.Ping, r.Db)

	apiHandler := endpoint.NewApiHandler(
		r.Pipeline.Chain(abstract.Handle, middleware.RequestID),
	)

	r.Mux.HandleFunc("GET /ping-db", apiHandler)
}

func (r *Router) Metrics() {
	r.Mux.Handle("GET /metrics", handler.NewMetricsHandler())
}
