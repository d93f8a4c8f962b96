//go:build unix

package lock

import (
	"os"

	"golang.org/x/sys/unix"
)

// LockFile places an exclusive, non-blocking advisory lock on f.
//
// On Unix systems, this uses flock(2) on the log file's own descriptor, so
// no extra file is created next to the log. If the lock is already held,
// ErrLocked is returned.
//
// The lock lives as long as f stays open.
func LockFile(f *os.File) error {
	err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
	if err != nil {
		if err == unix.EWOULDBLOCK {
			return ErrLocked
		}
		return err
	}
	return nil
}

// UnlockFile releases a lock acquired via LockFile. It does not close f.
func UnlockFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}
