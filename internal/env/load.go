// Package env loads .env files into the process environment.
package env

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads the given .env files, or ./.env when none are given.
// Variables already set in the environment win. Missing files are skipped;
// it returns the files that were loaded.
func LoadEnv(files ...string) ([]string, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var loaded []string
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return loaded, err
		}
		loaded = append(loaded, f)
	}
	return loaded, nil
}
