package configs

import (
	"strings"
	"time"
)

// Storage selects and configures the ledger backend. Driver is "badger"
// (embedded, default) or "postgres". BadgerDir is the badger data
// directory; when empty badger runs in-memory and all state is lost on
// exit. A transaction that lost a write conflict is rerun with backoff
// until it commits, MaxRetries reruns have failed or RetryBudget has
// elapsed.
type Storage struct {
	Driver      string        `env:"DRIVER" envDefault:"badger"`
	BadgerDir   string        `env:"BADGER_DIR"`
	MaxRetries  int           `env:"MAX_RETRIES" envDefault:"32"`
	RetryBudget time.Duration `env:"RETRY_BUDGET" envDefault:"5s"`
}

// Backend normalises Driver. Unknown values fall back to "badger".
func (c Storage) Backend() string {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql", "psql":
		return "postgres"
	default:
		return "badger"
	}
}
