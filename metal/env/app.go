package env

import "time"

const local = "local"
const staging = "staging"
const production = "production"

const DefaultJWTTTL = 24 * time.Hour

type AppEnvironment struct {
	Name      string        `validate:"required,min=4"`
	URL       string        `validate:"required,url"`
	Type      string        `validate:"required,lowercase,oneof=local production staging"`
	JWTSecret string        `validate:"required,min=32"`
	JWTTTL    time.Duration `validate:"required,gt=0"`
}

func (e AppEnvironment) IsProduction() bool {
	return e.Type == production
}

func (e AppEnvironment) IsStaging() bool {
	return e.Type == staging
}

func (e AppEnvironment) IsLocal() bool {
	return e.Type == local
}
