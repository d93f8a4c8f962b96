package utils

import (
	"flag"

	"github.com/0xRadioAc7iv/go-akv/core"
)

func HandleCLIInputs() (*string, *bool, *bool) {
	logPath := flag.String("file", core.DefaultLogPath, "Path of the log file to open (created if missing)")
	syncWrites := flag.Bool("sync", false, "fsync the log after every write")
	verbose := flag.Bool("v", false, "Enable debug logging on stderr")
	flag.Parse()

	return logPath, syncWrites, verbose
}
