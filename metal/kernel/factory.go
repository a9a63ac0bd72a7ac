package kernel

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/inkwell/database"
	"github.com/inkwell/metal/env"
	"github.com/inkwell/pkg/auth"
	"github.com/inkwell/pkg/llogs"
	"github.com/inkwell/pkg/portal"
)

func MakeSentry(env *env.Environment) *portal.Sentry {
	cOptions := sentry.ClientOptions{
		Dsn:         env.Sentry.DSN,
		Debug:       !env.App.IsProduction(),
		Environment: env.App.Type,
	}

	if err := sentry.Init(cOptions); err != nil {
		slog.Warn("sentry is disabled", "error", err)

		return &portal.Sentry{Env: env}
	}

	options := sentryhttp.Options{Repanic: true}
	handler := sentryhttp.New(options)

	return &portal.Sentry{
		Handler: handler,
		Options: &options,
		Env:     env,
	}
}

func MakeDbConnection(env *env.Environment) *database.Connection {
	dbConn, err := database.MakeConnection(env)

	if err != nil {
		panic("Sql: error connecting to the database: " + err.Error())
	}

	return dbConn
}

func MakeLogs(env *env.Environment) llogs.Driver {
	lDriver, err := llogs.MakeFilesLogs(env)

	if err != nil {
		panic("logs: error opening logs file: " + err.Error())
	}

	return lDriver
}

func MakeJWTHandler(env *env.Environment) (auth.JWTHandler, error) {
	return auth.MakeJWTHandler([]byte(env.App.JWTSecret), env.App.JWTTTL, env.App.Name)
}

func MakeSlugger(env *env.Environment) portal.Slugger {
	return portal.NewSlugger(env.Slug.Lang, env.Slug.Transliterate)
}

// NewEnv reads every ENV_* variable into typed sections and panics on the
// first section that fails validation.
func NewEnv(validate *portal.Validator) *env.Environment {
	errorSuffix := "Environment: "

	driver := env.GetEnvVarOr("ENV_DB_DRIVER", env.PostgresDriver)

	port := 0
	if raw := env.GetEnvVar("ENV_DB_PORT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			panic(errorSuffix + "invalid value for ENV_DB_PORT: " + err.Error())
		}

		port = parsed
	}

	ttl := env.DefaultJWTTTL
	if raw := env.GetEnvVar("ENV_APP_JWT_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			panic(errorSuffix + "invalid value for ENV_APP_JWT_TTL: " + err.Error())
		}

		ttl = parsed
	}

	transliterate := false
	if raw := env.GetEnvVar("ENV_SLUG_TRANSLITERATE"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			panic(errorSuffix + "invalid value for ENV_SLUG_TRANSLITERATE: " + err.Error())
		}

		transliterate = parsed
	}

	app := env.AppEnvironment{
		Name:      env.GetEnvVar("ENV_APP_NAME"),
		URL:       env.GetEnvVar("ENV_APP_URL"),
		Type:      env.GetEnvVar("ENV_APP_ENV_TYPE"),
		JWTSecret: env.GetSecretOrEnv("jwt_secret", "ENV_APP_JWT_SECRET"),
		JWTTTL:    ttl,
	}

	db := env.DBEnvironment{
		DriverName:   driver,
		UserName:     env.GetSecretOrEnv("pg_username", "ENV_DB_USER_NAME"),
		UserPassword: env.GetSecretOrEnv("pg_password", "ENV_DB_USER_PASSWORD"),
		DatabaseName: env.GetSecretOrEnv("pg_dbname", "ENV_DB_DATABASE_NAME"),
		Port:         port,
		Host:         env.GetEnvVar("ENV_DB_HOST"),
		SSLMode:      env.GetEnvVar("ENV_DB_SSL_MODE"),
		TimeZone:     env.GetEnvVar("ENV_DB_TIMEZONE"),
		SQLitePath:   env.GetEnvVar("ENV_DB_SQLITE_PATH"),
	}

	logsEnv := env.LogsEnvironment{
		Level:      env.GetEnvVar("ENV_APP_LOG_LEVEL"),
		Dir:        env.GetEnvVar("ENV_APP_LOGS_DIR"),
		DateFormat: env.GetEnvVar("ENV_APP_LOGS_DATE_FORMAT"),
	}

	netEnv := env.NetEnvironment{
		HttpHost:       env.GetEnvVar("ENV_HTTP_HOST"),
		HttpPort:       env.GetEnvVar("ENV_HTTP_PORT"),
		AllowedOrigins: env.ParseOrigins(env.GetEnvVar("ENV_CORS_ALLOWED_ORIGINS")),
	}

	sentryEnv := env.SentryEnvironment{
		DSN: env.GetEnvVar("ENV_SENTRY_DSN"),
		CSP: env.GetEnvVar("ENV_SENTRY_CSP"),
	}

	pingEnv := env.PingEnvironment{
		Username: env.GetSecretOrEnv("ping_username", "ENV_PING_USERNAME"),
		Password: env.GetSecretOrEnv("ping_password", "ENV_PING_PASSWORD"),
	}

	tracingEnv := env.NewTracingEnvironment()

	slugEnv := env.SlugEnvironment{
		Lang:          env.GetEnvVarOr("ENV_SLUG_LANG", "en"),
		Transliterate: transliterate,
	}

	sections := []struct {
		name  string
		value any
	}{
		{"APP", app},
		{"Sql", db},
		{"logs Credentials", logsEnv},
		{"NETWORK", netEnv},
		{"SENTRY", sentryEnv},
		{"ping", pingEnv},
		{"tracing", tracingEnv},
		{"slug", slugEnv},
	}

	for _, section := range sections {
		if _, err := validate.Rejects(section.value); err != nil {
			panic(fmt.Sprintf("%sinvalid [%s] model: %s", errorSuffix, section.name, validate.GetErrorsAsJson()))
		}
	}

	blog := &env.Environment{
		App:     app,
		DB:      db,
		Logs:    logsEnv,
		Network: netEnv,
		Sentry:  sentryEnv,
		Ping:    pingEnv,
		Tracing: tracingEnv,
		Slug:    slugEnv,
	}

	if _, err := validate.Rejects(blog); err != nil {
		panic(errorSuffix + "invalid [inkwell] model: " + validate.GetErrorsAsJson())
	}

	return blog
}
