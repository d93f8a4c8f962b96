package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/0xRadioAc7iv/go-akv/core"
	"github.com/0xRadioAc7iv/go-akv/internal/protocol"
	"github.com/0xRadioAc7iv/go-akv/internal/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	logPath, syncWrites, verbose := utils.HandleCLIInputs()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if !utils.PathExists(*logPath) {
		fmt.Println("Log file does not exist! Creating one...")
	}

	store, err := core.Open(*logPath, core.WithSyncWrites(*syncWrites), core.WithLogger(logger))
	if err != nil {
		fmt.Println("Error while opening store:", err)
		return 1
	}
	defer store.Close()

	fmt.Printf("Opened %v (%d keys)\n", *logPath, store.Len())
	fmt.Println("Type commands. 'help' for information or 'exit' to quit.")

	signals, stop := utils.NotifyOnInterruptOrKill()
	defer stop()

	lines := readLines(os.Stdin)

	for {
		fmt.Print("> ")

		select {
		case <-signals:
			fmt.Println()
			return 0

		case line, ok := <-lines:
			if !ok {
				fmt.Println()
				return 0
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			command, err := protocol.ParseCommand(line)
			if err != nil {
				fmt.Println("parse error:", err)
				continue
			}

			if command.Cmd == "exit" {
				return 0
			}

			reply, err := protocol.Execute(store, command)
			if err != nil {
				fmt.Println(protocol.FormatError(err))
				continue
			}

			fmt.Println(reply)
		}
	}
}

// readLines feeds lines from r into the returned channel until r is
// exhausted. Only the main goroutine touches the store.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		reader := bufio.NewReader(r)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				lines <- line
			}
			if err != nil {
				if err != io.EOF {
					fmt.Println("input error:", err)
				}
				return
			}
		}
	}()

	return lines
}
