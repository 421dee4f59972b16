package store

import (
	"context"
)

// Store is the durable backend for the three collections. Implementations
// must make WriteSnapshot atomic from a reader's perspective (either the
// whole snapshot lands or the previous one remains readable) and must
// linearize Update calls: Update is the single serialization point through
// which every read-modify-write cycle goes, so no concurrent mutation is
// ever lost.
//
// Failure modes are marked with errs.ErrStorageUnavailable (I/O failure)
// and errs.ErrCorruptState (persisted data that no longer decodes); the
// latter is never papered over by returning empty collections.
type Store interface {
	ReadSnapshot(ctx context.Context) (*Snapshot, error)
	WriteSnapshot(ctx context.Context, snap *Snapshot) error
	Update(ctx context.Context, mutate func(*Snapshot) error) error
}
