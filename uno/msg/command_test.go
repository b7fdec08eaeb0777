package msg_test

import (
	"testing"

	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/msg"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	scenarios := []struct {
		description string
		input       string
		expected    msg.Command
	}{
		{description: "bare_index", input: "3", expected: msg.Command{Kind: msg.CommandPlay, Index: 3}},
		{description: "index_with_spaces", input: "  0 \n", expected: msg.Command{Kind: msg.CommandPlay, Index: 0}},
		{description: "play_keyword", input: "play 2", expected: msg.Command{Kind: msg.CommandPlay, Index: 2}},
		{description: "short_play_keyword", input: "P 5", expected: msg.Command{Kind: msg.CommandPlay, Index: 5}},
		{description: "draw", input: "d", expected: msg.Command{Kind: msg.CommandDraw}},
		{description: "draw_uppercase", input: "DRAW", expected: msg.Command{Kind: msg.CommandDraw}},
		{description: "state", input: "s", expected: msg.Command{Kind: msg.CommandState}},
		{description: "json", input: "json", expected: msg.Command{Kind: msg.CommandJSON}},
		{description: "reset", input: "r", expected: msg.Command{Kind: msg.CommandReset}},
		{description: "help", input: "help", expected: msg.Command{Kind: msg.CommandHelp}},
		{description: "exit", input: "exit", expected: msg.Command{Kind: msg.CommandExit}},
		{description: "quit", input: "q", expected: msg.Command{Kind: msg.CommandExit}},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			command, err := msg.ParseCommand(scenario.input)
			require.NoError(t, err)
			require.Equal(t, scenario.expected, command)
		})
	}
}

func TestParseCommandRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "-1", "x", "play", "play x", "d 1", "1 2 3"} {
		_, err := msg.ParseCommand(input)
		require.Equal(t, consts.ErrorsInputInvalid, err, input)
	}
}
