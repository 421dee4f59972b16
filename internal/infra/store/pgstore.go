package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"holiday-booker/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PGPool is the subset of pgxpool.Pool the store uses.
type PGPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// PGStore is the relational variant. Each collection is a table of jsonb
// documents with a monotonic seq preserving insertion order, so the
// snapshot round-trips exactly like the file variant.
//
// Serialization point: Update runs in a SERIALIZABLE transaction and
// retries on serialization failures, so concurrent read-modify-write
// cycles are linearized by the database instead of a process-local mutex.
type PGStore struct {
	pool     PGPool
	initMu   sync.Mutex
	initDone bool
}

const pgSchema = `
CREATE TABLE IF NOT EXISTS users (
	seq  bigserial PRIMARY KEY,
	id   text NOT NULL UNIQUE,
	data jsonb NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS users_email_idx ON users ((data->>'email'));
CREATE TABLE IF NOT EXISTS packages (
	seq  bigserial PRIMARY KEY,
	id   text NOT NULL UNIQUE,
	data jsonb NOT NULL
);
CREATE TABLE IF NOT EXISTS bookings (
	seq  bigserial PRIMARY KEY,
	id   text NOT NULL UNIQUE,
	data jsonb NOT NULL
);
`

const maxUpdateRetries = 3

func NewPGStore(pool PGPool) *PGStore {
	return &PGStore{pool: pool}
}

// ensureInitialized creates the schema on first use. A failed attempt is
// reported to the caller and retried on the next operation rather than
// latched for the lifetime of the store.
func (s *PGStore) ensureInitialized(ctx context.Context) error {
	s.initMu.Lock()
	defer s.initMu.Unlock()
	if s.initDone {
		return nil
	}
	if _, err := s.pool.Exec(ctx, pgSchema); err != nil {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	s.initDone = true
	return nil
}

func (s *PGStore) ReadSnapshot(ctx context.Context) (*Snapshot, error) {
	if err := s.ensureInitialized(ctx); err != nil {
		return nil, err
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}
	defer rollback(ctx, tx)

	snap, err := readSnapshotTx(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return snap, nil
}

func (s *PGStore) WriteSnapshot(ctx context.Context, snap *Snapshot) error {
	if err := s.ensureInitialized(ctx); err != nil {
		return err
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	defer rollback(ctx, tx)

	if err := writeSnapshotTx(ctx, tx, snap); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return nil
}

func (s *PGStore) Update(ctx context.Context, mutate func(*Snapshot) error) error {
	if err := s.ensureInitialized(ctx); err != nil {
		return err
	}

	for attempt := 0; ; attempt++ {
		err := s.updateOnce(ctx, mutate)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) || attempt >= maxUpdateRetries {
			return err
		}

		waitTime := time.Duration(attempt+1) * 100 * time.Millisecond
		slog.Warn("retrying snapshot update after serialization failure",
			"attempt", attempt+1,
			"wait_time", waitTime)

		select {
		case <-ctx.Done():
			return errs.Mark(ctx.Err(), errs.ErrStorageUnavailable)
		case <-time.After(waitTime):
		}
	}
}

func (s *PGStore) updateOnce(ctx context.Context, mutate func(*Snapshot) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	defer rollback(ctx, tx)

	snap, err := readSnapshotTx(ctx, tx)
	if err != nil {
		return err
	}
	if err := mutate(snap); err != nil {
		return err
	}
	if err := writeSnapshotTx(ctx, tx, snap); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isRetryableError(err) {
			return err
		}
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return nil
}

func readSnapshotTx(ctx context.Context, tx pgx.Tx) (*Snapshot, error) {
	snap := NewEmptySnapshot()

	if err := readCollection(ctx, tx, "users", func(data []byte) error {
		var rec UserRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		snap.Users = append(snap.Users, rec)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readCollection(ctx, tx, "packages", func(data []byte) error {
		var rec PackageRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		snap.Packages = append(snap.Packages, rec)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := readCollection(ctx, tx, "bookings", func(data []byte) error {
		var rec BookingRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return err
		}
		snap.Bookings = append(snap.Bookings, rec)
		return nil
	}); err != nil {
		return nil, err
	}

	return snap, nil
}

func readCollection(ctx context.Context, tx pgx.Tx, table string, decode func([]byte) error) error {
	rows, err := tx.Query(ctx, "SELECT data FROM "+table+" ORDER BY seq")
	if err != nil {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	defer rows.Close()

	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return errs.Mark(err, errs.ErrStorageUnavailable)
		}
		if err := decode(data); err != nil {
			return errs.Mark(errs.Wrapf(err, "decode %s record", table), errs.ErrCorruptState)
		}
	}
	if err := rows.Err(); err != nil {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return nil
}

func writeSnapshotTx(ctx context.Context, tx pgx.Tx, snap *Snapshot) error {
	if _, err := tx.Exec(ctx, "TRUNCATE users, packages, bookings RESTART IDENTITY"); err != nil {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}

	if err := writeCollection(ctx, tx, "users", len(snap.Users), func(i int) (string, any) {
		return snap.Users[i].ID, snap.Users[i]
	}); err != nil {
		return err
	}
	if err := writeCollection(ctx, tx, "packages", len(snap.Packages), func(i int) (string, any) {
		return snap.Packages[i].ID, snap.Packages[i]
	}); err != nil {
		return err
	}
	return writeCollection(ctx, tx, "bookings", len(snap.Bookings), func(i int) (string, any) {
		return snap.Bookings[i].ID, snap.Bookings[i]
	})
}

func writeCollection(ctx context.Context, tx pgx.Tx, table string, n int, record func(int) (string, any)) error {
	for i := 0; i < n; i++ {
		id, rec := record(i)
		data, err := json.Marshal(rec)
		if err != nil {
			return errs.Mark(err, errs.ErrStorageUnavailable)
		}
		if _, err := tx.Exec(ctx, "INSERT INTO "+table+" (id, data) VALUES ($1, $2)", id, data); err != nil {
			return errs.Mark(err, errs.ErrStorageUnavailable)
		}
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}

// PostgreSQL error codes for retryable conditions:
// 40001: serialization_failure
// 40P01: deadlock_detected
func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", "40P01":
		return true
	default:
		return false
	}
}

var _ Store = (*PGStore)(nil)
