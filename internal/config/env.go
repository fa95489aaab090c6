package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables providing CLI defaults.
const (
	EnvCurrency = "COMPOUND_CURRENCY"
	EnvFormat   = "COMPOUND_FORMAT"
	EnvYears    = "COMPOUND_YEARS"
)

// Defaults are the CLI settings that can come from the environment.
type Defaults struct {
	Currency string
	Format   string
	Years    int
}

// LoadEnv loads variables from the given .env files into the process
// environment. Missing files are ignored; variables already set win.
func LoadEnv(filenames ...string) error {
	for _, f := range filenames {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// DefaultsFromEnv reads the CLI defaults, falling back to USD, console and 10 years.
func DefaultsFromEnv() Defaults {
	d := Defaults{Currency: "USD", Format: "console", Years: 10}
	if v := os.Getenv(EnvCurrency); v != "" {
		d.Currency = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		d.Format = v
	}
	if v, err := strconv.Atoi(os.Getenv(EnvYears)); err == nil && v > 0 {
		d.Years = v
	}
	return d
}
