package logfile

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func openTestLog(t *testing.T) (*Log, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.log")
	l, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open log: %v", err)
	}
	t.Cleanup(func() {
		l.Close()
	})

	return l, path
}

func TestOpenCreatesFile(t *testing.T) {
	_, path := openTestLog(t)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected empty log, got %d bytes", info.Size())
	}
}

func TestOpenDoesNotTruncate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.log")
	if err := os.WriteFile(path, []byte("abcd"), 0644); err != nil {
		t.Fatal(err)
	}

	l, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer l.Close()

	size, err := l.Size()
	if err != nil {
		t.Fatal(err)
	}
	if size != 4 {
		t.Fatalf("expected existing 4 bytes to survive open, got %d", size)
	}
}

func TestOpenInvalidPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "test.log")

	if _, err := Open(path); err == nil {
		t.Fatal("expected error opening log inside a missing directory")
	}
}

func TestAppendReturnsStartOffsets(t *testing.T) {
	l, _ := openTestLog(t)

	chunks := [][]byte{[]byte("hello"), []byte(""), []byte("world!")}
	want := []int64{0, 5, 5}

	for i, chunk := range chunks {
		offset, err := l.Append(chunk)
		if err != nil {
			t.Fatalf("append %d failed: %v", i, err)
		}
		if offset != want[i] {
			t.Errorf("append %d: offset %d, want %d", i, offset, want[i])
		}
	}

	size, _ := l.Size()
	if size != 11 {
		t.Fatalf("expected size 11, got %d", size)
	}
}

func TestAppendAfterReadStillAppendsAtEnd(t *testing.T) {
	l, _ := openTestLog(t)

	if _, err := l.Append([]byte("0123456789")); err != nil {
		t.Fatal(err)
	}

	r, err := l.ReadFrom(2)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 3)
	if _, err := io.ReadFull(r, buf); err != nil {
		t.Fatal(err)
	}
	if string(buf) != "234" {
		t.Fatalf("expected %q, got %q", "234", buf)
	}

	offset, err := l.Append([]byte("xyz"))
	if err != nil {
		t.Fatal(err)
	}
	if offset != 10 {
		t.Fatalf("expected append at 10, got %d", offset)
	}
}

func TestReadFromNegativeOffset(t *testing.T) {
	l, _ := openTestLog(t)

	if _, err := l.ReadFrom(-1); !errors.Is(err, ErrSeek) {
		t.Fatalf("expected ErrSeek, got %v", err)
	}
}

func TestWriteTo(t *testing.T) {
	l, _ := openTestLog(t)
	l.SyncWrites = true

	if _, err := l.Append([]byte("first ")); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Append([]byte("second")); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n, err := l.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 12 || buf.String() != "first second" {
		t.Fatalf("unexpected copy: %d bytes %q", n, buf.String())
	}
}

func TestCloseTwice(t *testing.T) {
	l, _ := openTestLog(t)

	if err := l.Close(); err != nil {
		t.Fatalf("first close failed: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
}

func TestAppendWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readonly.log")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}

	ro, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	l := &Log{name: path, file: ro, writer: bufio.NewWriter(ro)}
	defer l.Close()

	if _, err := l.Append([]byte("more")); err == nil {
		t.Fatal("expected append on a read-only handle to fail")
	}

	size, _ := l.Size()
	if size != 3 {
		t.Fatalf("expected log to stay at 3 bytes, got %d", size)
	}
}

func TestClosedLog(t *testing.T) {
	l, path := openTestLog(t)

	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	if l.Name() != path {
		t.Errorf("Name() after close = %q, want %q", l.Name(), path)
	}
	if l.File() != nil {
		t.Error("File() after close should be nil")
	}

	if _, err := l.Append([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Append: expected os.ErrClosed, got %v", err)
	}
	if _, err := l.ReadFrom(0); !errors.Is(err, os.ErrClosed) {
		t.Errorf("ReadFrom: expected os.ErrClosed, got %v", err)
	}
	if _, err := l.Size(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Size: expected os.ErrClosed, got %v", err)
	}
	if _, err := l.WriteTo(io.Discard); !errors.Is(err, os.ErrClosed) {
		t.Errorf("WriteTo: expected os.ErrClosed, got %v", err)
	}
	if err := l.Sync(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("Sync: expected os.ErrClosed, got %v", err)
	}
}
