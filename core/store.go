package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/0xRadioAc7iv/go-akv/internal"
	"github.com/0xRadioAc7iv/go-akv/internal/lock"
	"github.com/0xRadioAc7iv/go-akv/internal/logfile"
	"github.com/0xRadioAc7iv/go-akv/internal/record"
)

// Store is a single-file log-structured key-value store.
//
// It owns the log file handle and the KeyDir. A Store is not safe for
// concurrent use; callers must serialize access themselves.
type Store struct {
	log    *logfile.Log
	keyDir *KeyDir
	logger *slog.Logger
	path   string
	locked bool
	closed bool
}

// Stats is a point-in-time summary of a store.
type Stats struct {
	Path    string `json:"path"`
	Keys    int    `json:"keys"`
	LogSize int64  `json:"log_size"`
}

// Open attaches a store to the log at path, creating the file if needed,
// and rebuilds the KeyDir by replaying the log before returning.
//
// Errors from creating, opening or locking the file match ErrFile. A log
// whose records cannot all be replayed, such as one ending in a record cut
// short by a crash, is not opened: Open returns an error matching
// ErrProcessRecord and releases the file. The log is never repaired.
func Open(path string, opts ...Option) (*Store, error) {
	cfg := internal.DefaultConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	s, err := attach(path, cfg)
	if err != nil {
		return nil, err
	}

	if err := s.Load(); err != nil {
		s.Close()
		return nil, err
	}

	s.logger.Info("store opened", "path", path, "keys", s.keyDir.Len())
	return s, nil
}

// attach opens and locks the log without replaying it.
func attach(path string, cfg *internal.Config) (*Store, error) {
	l, err := logfile.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFile, err)
	}
	l.SyncWrites = cfg.SyncWrites

	s := &Store{
		log:    l,
		keyDir: newKeyDir(),
		logger: cfg.Logger,
		path:   path,
	}

	if cfg.Lock {
		if err := lock.LockFile(l.File()); err != nil {
			l.Close()
			if errors.Is(err, lock.ErrLocked) {
				return nil, fmt.Errorf("%w: %w: %s", ErrFile, ErrLocked, path)
			}
			return nil, fmt.Errorf("%w: lock %s: %w", ErrFile, path, err)
		}
		s.locked = true
	}

	return s, nil
}

// Load rebuilds the KeyDir from scratch with one linear scan of the log.
//
// Replay stops normally at the end of the log. A record that cannot be
// decoded aborts the replay with ErrProcessRecord; keys replayed before it
// stay in the KeyDir.
func (s *Store) Load() error {
	if s.closed {
		return ErrClosed
	}

	r, err := s.log.ReadFrom(0)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPosition, err)
	}

	s.keyDir = newKeyDir()

	var position int64
	var replayed int

	for {
		rec, outcome, err := record.Decode(r)

		switch outcome {
		case record.EndOfStream:
			s.logger.Debug("replay complete", "records", replayed, "bytes", position, "keys", s.keyDir.Len())
			return nil
		case record.Corrupt:
			s.logger.Warn("replay stopped at unreadable record", "offset", position, "records", replayed, "error", err)
			return fmt.Errorf("%w: offset %d: %w", ErrProcessRecord, position, err)
		}

		s.keyDir.Set(rec.Key, position)
		position += rec.Size()
		replayed++
	}
}

// Get returns the value most recently written for key. A deleted key
// yields an empty value, not an error.
func (s *Store) Get(key []byte) ([]byte, error) {
	if s.closed {
		return nil, ErrClosed
	}

	offset, ok := s.keyDir.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrIndex, key)
	}

	r, err := s.log.ReadFrom(offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPosition, err)
	}

	rec, outcome, err := record.Decode(r)
	switch outcome {
	case record.Decoded:
	case record.EndOfStream:
		return nil, fmt.Errorf("%w: offset %d is past the end of the log", ErrProcessRecord, offset)
	default:
		return nil, fmt.Errorf("%w: offset %d: %w", ErrProcessRecord, offset, err)
	}

	if !bytes.Equal(rec.Key, key) {
		return nil, fmt.Errorf("%w: offset %d holds key %q, want %q", ErrProcessRecord, offset, rec.Key, key)
	}

	return rec.Value, nil
}

// Insert appends a record for key and points the KeyDir at it. The KeyDir
// is only updated once the append has succeeded.
func (s *Store) Insert(key, value []byte) error {
	if s.closed {
		return ErrClosed
	}

	encoded, err := record.Encode(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	offset, err := s.log.Append(encoded)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	s.keyDir.Set(key, offset)
	return nil
}

// Delete writes a tombstone, which is an insert with an empty value. The
// key stays in the KeyDir and no space is reclaimed.
func (s *Store) Delete(key []byte) error {
	return s.Insert(key, nil)
}

func (s *Store) Exists(key []byte) bool {
	if s.closed {
		return false
	}
	_, ok := s.keyDir.Get(key)
	return ok
}

func (s *Store) Len() int {
	if s.closed {
		return 0
	}
	return s.keyDir.Len()
}

func (s *Store) Keys() []string {
	if s.closed {
		return nil
	}
	return s.keyDir.Keys()
}

// Index returns a copy of the KeyDir.
func (s *Store) Index() map[string]int64 {
	if s.closed {
		return nil
	}
	return s.keyDir.Snapshot()
}

func (s *Store) Stats() (Stats, error) {
	if s.closed {
		return Stats{}, ErrClosed
	}

	size, err := s.log.Size()
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Path:    s.log.Name(),
		Keys:    s.keyDir.Len(),
		LogSize: size,
	}, nil
}

// WriteTo copies the raw log into w.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	if s.closed {
		return 0, ErrClosed
	}
	return s.log.WriteTo(w)
}

// Close releases the lock and the log file. Calling it again is a no-op.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.log.Sync(); err != nil {
		s.logger.Warn("failed to sync log file", "path", s.path, "error", err)
	}

	if s.locked && s.log.File() != nil {
		if err := lock.UnlockFile(s.log.File()); err != nil {
			s.logger.Warn("failed to unlock log file", "path", s.path, "error", err)
		}
		s.locked = false
	}

	if err := s.log.Close(); err != nil {
		return err
	}

	s.logger.Info("store closed", "path", s.path)
	return nil
}
