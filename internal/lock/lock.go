// Package lock guards a log file against being opened by two stores at once.
package lock

import "errors"

// ErrLocked is returned when the file is already locked by another handle.
var ErrLocked = errors.New("log file already in use by another akv instance")
