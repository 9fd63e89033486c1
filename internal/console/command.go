// Package console turns operator actions on the recommendation form into REST
// calls and folds the responses back into the operator's view.
package console

import (
	"errors"
	"fmt"
	"strings"
)

// Command is a user-triggered action on the form.
type Command string

const (
	CommandCreate   Command = "create"
	CommandUpdate   Command = "update"
	CommandRetrieve Command = "retrieve"
	CommandDelete   Command = "delete"
	CommandClear    Command = "clear"
	CommandSearch   Command = "search"
)

var ErrUnknownCommand = errors.New("unknown command")

// Commands lists every command in button order.
var Commands = []Command{CommandCreate, CommandRetrieve, CommandUpdate, CommandDelete, CommandClear, CommandSearch}

// ParseCommand resolves a case-insensitive command name.
func ParseCommand(name string) (Command, error) {
	cmd := Command(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Commands {
		if cmd == known {
			return cmd, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}
