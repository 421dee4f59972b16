package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"holiday-booker/internal/pkg/errs"
)

// FileStore keeps the whole snapshot in a single JSON document.
//
// A single mutex serializes every operation against the file: reads never
// observe a half-written document and concurrent Updates are linearized.
// Writes go to a temp file in the same directory followed by a rename, so
// a crash mid-write leaves the previous snapshot intact.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) ReadSnapshot(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readLocked()
}

func (s *FileStore) WriteSnapshot(ctx context.Context, snap *Snapshot) error {
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeLocked(snap)
}

// Update runs one exclusive read-modify-write cycle. The mutex is held for
// the whole cycle and released on every exit path; a mutation error aborts
// without touching the file.
func (s *FileStore) Update(ctx context.Context, mutate func(*Snapshot) error) error {
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.readLocked()
	if err != nil {
		return err
	}
	if err := mutate(snap); err != nil {
		return err
	}
	return s.writeLocked(snap)
}

// ensureInitializedLocked creates the backing file with empty collections
// on first use. Idempotent and cheap: a stat per operation.
func (s *FileStore) ensureInitializedLocked() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return s.writeLocked(NewEmptySnapshot())
}

func (s *FileStore) readLocked() (*Snapshot, error) {
	if err := s.ensureInitializedLocked(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageUnavailable)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode snapshot"), errs.ErrCorruptState)
	}
	return &snap, nil
}

func (s *FileStore) writeLocked(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
