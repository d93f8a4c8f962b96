package protocol

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/0xRadioAc7iv/go-akv/core"
	"github.com/0xRadioAc7iv/go-akv/internal/utils"
)

// Engine is the part of the store the shell drives.
type Engine interface {
	Get(key []byte) ([]byte, error)
	Insert(key, value []byte) error
	Delete(key []byte) error
	Exists(key []byte) bool
	Len() int
	Keys() []string
	Index() map[string]int64
	Stats() (core.Stats, error)
	WriteTo(w io.Writer) (int64, error)
}

// Execute runs command against e and returns the text to print.
// "exit" is left to the caller.
func Execute(e Engine, command *Command) (string, error) {
	switch command.Cmd {
	case "get":
		value, err := e.Get([]byte(command.Key))
		if err != nil {
			return "", err
		}
		return FormatValue(value), nil
	case "set":
		if err := e.Insert([]byte(command.Key), []byte(command.Val)); err != nil {
			return "", err
		}
		return "ok", nil
	case "del":
		if err := e.Delete([]byte(command.Key)); err != nil {
			return "", err
		}
		return "ok", nil
	case "exists":
		return FormatBool(e.Exists([]byte(command.Key))), nil
	case "count":
		return strconv.Itoa(e.Len()), nil
	case "list":
		return FormatList(e.Keys()), nil
	case "index":
		return FormatIndex(e.Index()), nil
	case "stats":
		stats, err := e.Stats()
		if err != nil {
			return "", err
		}
		return FormatStats(stats)
	case "export":
		n, err := utils.ExportLog(command.Key, e)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("exported %d bytes to %s", n, command.Key), nil
	case "help":
		return strings.TrimSpace(HelpText), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, command.Cmd)
	}
}
