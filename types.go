package storefront

import (
	"fmt"
	"time"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Config holds the process wide settings. It is built once at startup
// and never mutated; rotating the signing key requires a restart and
// invalidates every previously issued token.
type Config struct {
	HTTPAddr    string
	DSN         string
	SigningKey  string
	TokenTTL    time.Duration
	TokenIssuer string
}

// Validate checks the settings the core cannot run without.
func (c Config) Validate() error {
	if c.SigningKey == "" {
		return ErrMissingSigningKey
	}
	if c.TokenTTL <= 0 {
		return ErrInvalidTokenTTL
	}
	return nil
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] STORE "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] STORE "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] STORE "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] STORE "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
