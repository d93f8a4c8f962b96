// Package logfile implements the append-only file that backs the store.
//
// A Log never truncates or rewrites bytes: Append always lands at the true
// end of the file and returns the offset at which the bytes begin. Reads are
// served by seeking the same handle to an absolute offset.
package logfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrSeek is returned when the log cannot be positioned at an offset.
var ErrSeek = errors.New("seek failed")

// Log is a single append-only file opened for reading and writing.
type Log struct {
	name   string
	file   *os.File
	writer *bufio.Writer

	// if true, Append calls file.Sync() after every flush
	SyncWrites bool
}

// Open opens the log at path for reading and writing, creating it if needed.
// Existing contents are preserved.
func Open(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}

	return &Log{
		name:   f.Name(),
		file:   f,
		writer: bufio.NewWriter(f),
	}, nil
}

// Name returns the path the log was opened with. It stays valid after Close.
func (l *Log) Name() string {
	return l.name
}

// File returns the underlying handle, or nil once closed. It is meant for
// locking only.
func (l *Log) File() *os.File {
	return l.file
}

// Append writes data at the end of the file and returns the offset at which
// it begins.
func (l *Log) Append(data []byte) (int64, error) {
	if l.file == nil {
		return 0, os.ErrClosed
	}

	offset, err := l.file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("%w: end of %s: %w", ErrSeek, l.name, err)
	}

	l.writer.Reset(l.file)
	if _, err := l.writer.Write(data); err != nil {
		return 0, err
	}
	if err := l.writer.Flush(); err != nil {
		return 0, err
	}

	if l.SyncWrites {
		if err := l.file.Sync(); err != nil {
			return 0, err
		}
	}

	return offset, nil
}

// ReadFrom positions the log at offset and returns a reader that consumes it
// sequentially. The reader is only valid until the next Append or ReadFrom.
func (l *Log) ReadFrom(offset int64) (io.Reader, error) {
	if l.file == nil {
		return nil, os.ErrClosed
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: negative offset %d", ErrSeek, offset)
	}
	if _, err := l.file.Seek(offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: offset %d of %s: %w", ErrSeek, offset, l.name, err)
	}
	return bufio.NewReader(l.file), nil
}

// Size returns the current length of the log in bytes.
func (l *Log) Size() (int64, error) {
	if l.file == nil {
		return 0, os.ErrClosed
	}
	info, err := l.file.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// WriteTo copies the whole log, from offset 0, into w.
func (l *Log) WriteTo(w io.Writer) (int64, error) {
	size, err := l.Size()
	if err != nil {
		return 0, err
	}
	return io.Copy(w, io.NewSectionReader(l.file, 0, size))
}

// Sync commits the log's contents to stable storage.
func (l *Log) Sync() error {
	if l.file == nil {
		return os.ErrClosed
	}
	return l.file.Sync()
}

// Close closes the file. Calling it again is a no-op.
func (l *Log) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
