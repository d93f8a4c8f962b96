//go:build windows

package lock

import (
	"os"

	"golang.org/x/sys/windows"
)

// LockFile places an exclusive, non-blocking lock on f.
//
// On Windows, this uses LockFileEx over the whole byte range of the file.
// If another handle holds the lock, ErrLocked is returned.
func LockFile(f *os.File) error {
	ol := new(windows.Overlapped)
	err := windows.LockFileEx(
		windows.Handle(f.Fd()),
		windows.LOCKFILE_EXCLUSIVE_LOCK|windows.LOCKFILE_FAIL_IMMEDIATELY,
		0, ^uint32(0), ^uint32(0), ol,
	)
	if err != nil {
		if err == windows.ERROR_LOCK_VIOLATION {
			return ErrLocked
		}
		return err
	}
	return nil
}

// UnlockFile releases a lock acquired via LockFile. It does not close f.
func UnlockFile(f *os.File) error {
	ol := new(windows.Overlapped)
	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0, ^uint32(0), ^uint32(0), ol)
}
