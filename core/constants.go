package core

import "github.com/0xRadioAc7iv/go-akv/internal"

const (
	OneKilobyte = 1024
	OneMegabyte = 1024 * OneKilobyte

	DefaultLogPath = internal.DEFAULT_LOG_PATH
)
