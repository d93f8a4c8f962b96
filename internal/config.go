package internal

import (
	"io"
	"log/slog"
)

type Config struct {
	// fsync the log after every append
	SyncWrites bool
	// take an exclusive lock on the log file while the store is open
	Lock   bool
	Logger *slog.Logger
}

const DEFAULT_LOG_PATH = "./akv.log"

func DefaultConfig() *Config {
	return &Config{
		SyncWrites: false,
		Lock:       true,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
