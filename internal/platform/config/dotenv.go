package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadDotenv loads each env file that exists, in order
// values already in the environment win, and so do earlier files over later ones
// returns the files that were applied
func LoadDotenv(paths ...string) ([]string, error) {
	var loaded []string
	for _, p := range paths {
		err := godotenv.Load(p)
		switch {
		case err == nil:
			loaded = append(loaded, p)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return loaded, err
		}
	}
	return loaded, nil
}
