package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/inkwell/database"
	"github.com/inkwell/handler/payload"
	"github.com/inkwell/metal/env"
	"github.com/inkwell/pkg/endpoint"
	"github.com/inkwell/pkg/portal"
)

// KeepAliveHandler answers operator probes guarded by basic auth. When probe
// is set it must succeed before the pong goes out.
type KeepAliveHandler struct {
	env   *env.PingEnvironment
	probe func() error
}

func MakeKeepAliveHandler(e *env.PingEnvironment) KeepAliveHandler {
	return KeepAliveHandler{env: e}
}

// MakeKeepAliveDBHandler also round-trips to the database.
func MakeKeepAliveDBHandler(e *env.PingEnvironment, db *database.Connection) KeepAliveHandler {
	return KeepAliveHandler{env: e, probe: db.Ping}
}

func (h KeepAliveHandler) Handle(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	user, pass, ok := r.BasicAuth()

	if !ok || h.env.HasInvalidCreds(user, pass) {
		return endpoint.LogUnauthorisedError(
			"invalid credentials",
			errors.New("keep-alive probe with invalid credentials"),
		)
	}

	if h.probe != nil {
		if err := h.probe(); err != nil {
			return endpoint.LogInternalError("database ping failed", err)
		}
	}

	data := payload.KeepAliveResponse{
		Message:  "pong",
		DateTime: time.Now().UTC().Format(portal.DatesLayout),
	}

	if err := endpoint.MakeNoCacheResponse(w, r).RespondOk(data); err != nil {
		return endpoint.LogInternalError("could not encode keep-alive response", err)
	}

	return nil
}
