package env

import (
	"errors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"io/fs"
	"os"
)

// Load reads the given dotenv files (".env" when none is given) into the process environment.
// Variables already set are kept. Missing files are not an error.
func Load(log *zap.SugaredLogger, files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Warn("error loading env file ", f, ": ", err)
		}
	}
}

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	log.Debug("env ", env, " not set, using default")
	return def
}

// Must return the result of searching an env var, terminating the process if it is empty
func Must(log *zap.SugaredLogger, env string) string {
	v := os.Getenv(env)
	if v == "" {
		log.Fatal("required env var ", env, " is not set")
	}
	return v
}
