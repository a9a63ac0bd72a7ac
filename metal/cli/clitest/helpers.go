package clitest

import (
	"strings"
	"testing"
	"time"

	"github.com/inkwell/database"
	handlertests "github.com/inkwell/handler/tests"
	"github.com/inkwell/metal/env"
	"github.com/inkwell/pkg/auth"
)

// NewTestConnection returns a migrated in-memory sqlite connection.
func NewTestConnection(t *testing.T) *database.Connection {
	t.Helper()

	return handlertests.NewTestDB(t)
}

// MakeTestConnection starts a PostgreSQL container; it skips when docker is absent.
func MakeTestConnection(t *testing.T) *database.Connection {
	t.Helper()

	return handlertests.MakeTestDB(t)
}

func NewTestEnv() *env.Environment {
	return &env.Environment{
		App: env.AppEnvironment{
			Name:      "inkwell",
			Type:      "local",
			JWTSecret: strings.Repeat("s", auth.MinSecretLength),
			JWTTTL:    time.Hour,
		},
		Slug: env.SlugEnvironment{Lang: "en"},
	}
}
