package db

import (
	"errors"
	"fmt"

	"affiliate-escrow/db/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ErrDirtySchema reports a ledger schema left half-applied by an earlier
// failed migration. It has to be repaired by hand with the migrate CLI.
var ErrDirtySchema = errors.New("ledger schema is dirty")

// Migrate applies the embedded ledger schema (campaigns, affiliate links,
// vaults, holdings, accounts and the event log) to the database at addr,
// stepping it up or down to migrations.Version. A dirty schema is reported
// with ErrDirtySchema and never forced.
func Migrate(addr string) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, addr)
	if err != nil {
		return err
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return err
	case dirty:
		return fmt.Errorf("%w at version %d", ErrDirtySchema, current)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate ledger schema to version %d: %w", migrations.Version, err)
	}
	return nil
}
