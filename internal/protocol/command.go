package protocol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Command represents a parsed shell command.
//
// A Command consists of a command name (Cmd), an optional key, and an optional
// value. The meaning of Key and Val depends on the command type (e.g. GET,
// SET, DEL).
type Command struct {
	Cmd string // Command name, lower-cased (e.g. "get", "set", "del")
	Key string // Key argument (may be empty)
	Val string // Value argument (may be empty)
}

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrArguments      = errors.New("wrong number of arguments")
)

// number of arguments each command takes after its name
var arity = map[string]int{
	"get":    1,
	"set":    2,
	"del":    1,
	"delete": 1,
	"exists": 1,
	"export": 1,
	"count":  0,
	"list":   0,
	"index":  0,
	"stats":  0,
	"help":   0,
	"exit":   0,
}

var usage = map[string]string{
	"get":    "get <key>",
	"set":    "set <key> <value>",
	"del":    "del <key>",
	"delete": "delete <key>",
	"exists": "exists <key>",
	"export": "export <path>",
}

// ParseCommand splits line into shell-like words and validates them.
//
// Quoting follows POSIX shell rules, so values may contain spaces:
//
//	set city "new york"
//	set greeting 'hello world'
//
// The command name is case-insensitive. "delete" is normalized to "del".
func ParseCommand(line string) (*Command, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}

	if len(words) == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := strings.ToLower(words[0])
	args := words[1:]

	want, ok := arity[cmd]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, words[0])
	}

	if len(args) != want {
		if u, ok := usage[cmd]; ok {
			return nil, fmt.Errorf("%w: usage: %s", ErrArguments, u)
		}
		return nil, fmt.Errorf("%w: %s takes no arguments", ErrArguments, cmd)
	}

	if cmd == "delete" {
		cmd = "del"
	}

	command := &Command{Cmd: cmd}
	if want > 0 {
		command.Key = args[0]
	}
	if want > 1 {
		command.Val = args[1]
	}

	return command, nil
}
