package portal

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/inkwell/metal/env"
)

// Sentry bundles the sentry http middleware with the options it was built from.
type Sentry struct {
	Handler *sentryhttp.Handler
	Options *sentryhttp.Options
	Env     *env.Environment
}

// Wrap returns h unchanged when no sentry handler was configured.
func (s *Sentry) Wrap(h http.Handler) http.Handler {
	if s == nil || s.Handler == nil {
		return h
	}

	return s.Handler.Handle(h)
}
