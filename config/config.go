package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var loadOnce sync.Once

func loadDotenv() {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Debug().Err(err).Msg("no .env file loaded")
		}
	})
}

// Config returns the value of a required environment variable. A .env file
// is loaded on first use when present; real environment variables win.
func Config(envVar string) string {
	loadDotenv()

	envVarValue := os.Getenv(envVar)
	if envVarValue == "" {
		log.Fatal().Str("var", envVar).Msg("required environment variable not set")
	}

	return envVarValue
}

// ConfigDefault returns the value of an environment variable, falling back
// to def when unset.
func ConfigDefault(envVar, def string) string {
	loadDotenv()

	if v := os.Getenv(envVar); v != "" {
		return v
	}

	return def
}
