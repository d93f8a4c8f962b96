package core

import (
	"log/slog"

	"github.com/0xRadioAc7iv/go-akv/internal"
)

type Option func(*internal.Config)

// WithSyncWrites makes every append fsync the log before returning.
func WithSyncWrites(sync bool) Option {
	return func(c *internal.Config) {
		c.SyncWrites = sync
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *internal.Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithoutLock skips the exclusive file lock. Only use it when the caller
// already guarantees a single owner.
func WithoutLock() Option {
	return func(c *internal.Config) {
		c.Lock = false
	}
}
