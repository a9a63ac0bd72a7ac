package kernel

import (
	"fmt"
	"os"

	"github.com/inkwell/metal/env"
	"github.com/inkwell/pkg/portal"
	"github.com/joho/godotenv"
)

// Ignite loads the .env file when present; variables already exported in the
// process win over the file.
func Ignite(envPath string, validate *portal.Validator) (*env.Environment, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load environment from %s: %w", envPath, err)
		}
	}

	return NewEnv(validate), nil
}
