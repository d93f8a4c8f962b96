package core

import "errors"

var (
	// ErrFile is returned when the log file cannot be created or opened.
	ErrFile = errors.New("cannot open log file")

	// ErrLocked is returned by Open when another store holds the log.
	// It is always wrapped together with ErrFile.
	ErrLocked = errors.New("log file is locked")

	// ErrPosition is returned when seeking within the log fails.
	ErrPosition = errors.New("cannot seek in log file")

	// ErrProcessRecord is returned when no well-formed record exists at an
	// offset expected to hold one.
	ErrProcessRecord = errors.New("cannot process record")

	// ErrIndex is returned by Get for a key that was never inserted.
	ErrIndex = errors.New("key not found in index")

	// ErrWrite is returned when a record cannot be encoded or appended.
	ErrWrite = errors.New("cannot write record")

	// ErrClosed is returned by every operation on a closed store.
	ErrClosed = errors.New("store is closed")
)

// ErrKeyNotFound is an alias of ErrIndex.
var ErrKeyNotFound = ErrIndex
