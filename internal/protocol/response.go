package protocol

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"github.com/tidwall/pretty"

	"github.com/0xRadioAc7iv/go-akv/core"
)

var indexDumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// FormatValue renders a stored value for the terminal. Printable UTF-8 is
// shown as-is, anything else as hex. A zero-length value (including a
// tombstone) is shown as "".
func FormatValue(value []byte) string {
	if len(value) == 0 {
		return `""`
	}
	if isPrintable(value) {
		return string(value)
	}
	return fmt.Sprintf("0x%x", value)
}

func isPrintable(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func FormatError(err error) string {
	return "error: " + err.Error()
}

func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func FormatList(keys []string) string {
	if len(keys) == 0 {
		return "nil"
	}
	return "----- KEYS START -----\n" + strings.Join(keys, "\n") + "\n----- KEYS END -----"
}

// FormatIndex dumps the key to offset mapping, sorted by key.
func FormatIndex(index map[string]int64) string {
	if len(index) == 0 {
		return "nil"
	}
	return strings.TrimSpace(indexDumper.Sdump(index))
}

// FormatStats renders stats as indented JSON.
func FormatStats(stats core.Stats) (string, error) {
	data, err := json.Marshal(stats)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(pretty.Pretty(data))), nil
}

const HelpText = `
Available Commands:

SET <key> <value>
  Store a value for the given key.
  Overwrites the value if the key already exists.
  Quote arguments that contain spaces: set city "new york"
  Response: ok

GET <key>
  Retrieve the value associated with the key.
  A deleted key returns "".
  Response: value | error

DEL <key> (alias: DELETE)
  Delete the key by writing an empty value.
  The key keeps existing with an empty value.
  Response: ok

EXISTS <key>
  Check if a key is present in the index.
  Response: true | false

COUNT
  Return the total number of keys in the index.
  Response: integer

LIST
  List all indexed keys.
  Response: list of keys | nil

INDEX
  Dump the index (key -> log offset).

STATS
  Show the log path, key count and log size.

EXPORT <path>
  Write a zstd-compressed copy of the log to path.

HELP
  Show this help message.

EXIT
  Close the store and quit.
`
