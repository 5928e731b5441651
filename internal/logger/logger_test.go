package logger

import (
	"testing"

	"github.com/drpriyams/neetpg-mcq-bot/internal/config"
)

// TestNewByEnv verifies both prod spellings select the production logger
// and anything else falls back to development output.
func TestNewByEnv(t *testing.T) {
	for _, env := range []string{"local", "dev", "prod", "production"} {
		l, err := New(&config.Config{Env: env})
		if err != nil {
			t.Fatalf("env %q: unexpected error: %v", env, err)
		}
		if l == nil {
			t.Fatalf("env %q: expected a logger", env)
		}
		_ = l.Sync()
	}
}
