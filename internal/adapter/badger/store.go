package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"affiliate-escrow/internal/core/port"

	badger "github.com/dgraph-io/badger/v4"
)

// Store implements port.LedgerRepository on badger. Badger transactions are
// serializable with optimistic conflict detection: a read-write transaction
// whose reads were overwritten by a concurrent commit fails to commit, which
// Store reports as port.ErrConflict. That is what makes two concurrent
// settlements of one campaign mutually exclusive.
type Store struct {
	db      *badger.DB
	logger  *slog.Logger
	dataDir string
}

// StoreOptionFunc configures a Store.
type StoreOptionFunc func(*Store)

// WithDataDir persists data under dir. Without it the store is in-memory.
func WithDataDir(dir string) StoreOptionFunc {
	return func(s *Store) { s.dataDir = dir }
}

// WithLogger sets the logger used for badger's own messages.
func WithLogger(logger *slog.Logger) StoreOptionFunc {
	return func(s *Store) { s.logger = logger }
}

// New opens a store.
func New(opts ...StoreOptionFunc) (*Store, error) {
	s := &Store{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	var badgerOpts badger.Options
	if s.dataDir == "" {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
		badgerOpts = badger.DefaultOptions(s.dataDir)
	}
	badgerOpts = badgerOpts.
		WithLogger(newLogger(s.logger)).
		// The default INFO logging is a bit verbose
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	s.db = db
	return s, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

var _ port.LedgerRepository = (*Store)(nil)

// Update runs fn in a read-write transaction and commits it if fn succeeds.
func (s *Store) Update(ctx context.Context, fn func(tx port.LedgerTx) error) error {
	return s.run(ctx, true, fn)
}

// View runs fn in a read-only transaction.
func (s *Store) View(ctx context.Context, fn func(tx port.LedgerTx) error) error {
	return s.run(ctx, false, fn)
}

func (s *Store) run(ctx context.Context, readWrite bool, fn func(tx port.LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	txn := s.db.NewTransaction(readWrite)
	defer txn.Discard()
	if err := fn(&ledgerTx{txn: txn, readWrite: readWrite}); err != nil {
		return mapError(err)
	}
	if !readWrite {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := txn.Commit(); err != nil {
		return fmt.Errorf("commit failed: %w", mapError(err))
	}
	return nil
}

func mapError(err error) error {
	if errors.Is(err, badger.ErrConflict) {
		return fmt.Errorf("%w: %v", port.ErrConflict, err)
	}
	return err
}
