package accounts

import (
	"fmt"

	"github.com/inkwell/database"
	"github.com/inkwell/database/repository"
	"github.com/inkwell/metal/env"
	"github.com/inkwell/pkg/auth"
	"github.com/inkwell/pkg/portal"
)

type Handler struct {
	Env     *env.Environment
	Authors *repository.Authors
	JWT     auth.JWTHandler
}

func NewHandler(db *database.Connection, env *env.Environment) (*Handler, error) {
	jwtHandler, err := auth.MakeJWTHandler(
		[]byte(env.App.JWTSecret),
		env.App.JWTTTL,
		env.App.Name,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to make jwt handler: %v", err)
	}

	return &Handler{
		Env: env,
		Authors: &repository.Authors{
			DB:      db,
			Slugger: portal.NewSlugger(env.Slug.Lang, env.Slug.Transliterate),
		},
		JWT: jwtHandler,
	}, nil
}
