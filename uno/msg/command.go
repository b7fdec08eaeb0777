package msg

import (
	"strconv"
	"strings"

	"github.com/ratel-online/duel/consts"
)

type CommandKind int

const (
	CommandPlay CommandKind = iota
	CommandDraw
	CommandState
	CommandJSON
	CommandReset
	CommandHelp
	CommandExit
)

type Command struct {
	Kind  CommandKind
	Index int
}

var keywords = map[string]CommandKind{
	"d":     CommandDraw,
	"draw":  CommandDraw,
	"s":     CommandState,
	"state": CommandState,
	"j":     CommandJSON,
	"json":  CommandJSON,
	"r":     CommandReset,
	"reset": CommandReset,
	"h":     CommandHelp,
	"help":  CommandHelp,
	"e":     CommandExit,
	"exit":  CommandExit,
	"q":     CommandExit,
	"quit":  CommandExit,
}

// ParseCommand reads one line of player input. A bare number is a play.
func ParseCommand(input string) (Command, error) {
	fields := strings.Fields(strings.ToLower(input))
	switch len(fields) {
	case 1:
		if kind, ok := keywords[fields[0]]; ok {
			return Command{Kind: kind}, nil
		}
		return parsePlay(fields[0])
	case 2:
		if fields[0] == "p" || fields[0] == "play" {
			return parsePlay(fields[1])
		}
	}
	return Command{}, consts.ErrorsInputInvalid
}

func parsePlay(field string) (Command, error) {
	index, err := strconv.Atoi(field)
	if err != nil || index < 0 {
		return Command{}, consts.ErrorsInputInvalid
	}
	return Command{Kind: CommandPlay, Index: index}, nil
}
