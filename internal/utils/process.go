package utils

import (
	"os"
	"os/signal"
	"syscall"
)

// NotifyOnInterruptOrKill returns a channel that receives an interrupt
// (Ctrl+C) or termination signal (SIGTERM), and a function that stops the
// notification. The caller decides what to do with the signal, typically
// closing the store before exiting.
func NotifyOnInterruptOrKill() (<-chan os.Signal, func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	return sigChan, func() {
		signal.Stop(sigChan)
	}
}
