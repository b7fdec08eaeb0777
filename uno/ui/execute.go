package ui

import (
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/duel/uno/game"
	"github.com/ratel-online/duel/uno/match"
	"github.com/ratel-online/duel/uno/msg"
)

// Snapshot is the JSON view of a match state.
type Snapshot struct {
	game.State
	ActiveCard string   `json:"activeCard"`
	HumanHand  []string `json:"humanHand"`
	Playable   []string `json:"playable"`
}

func NewSnapshot(state game.State) Snapshot {
	return Snapshot{
		State:      state,
		ActiveCard: state.ActiveCardName(),
		HumanHand:  state.HumanHandNames(),
		Playable:   state.PlayableNames(),
	}
}

// Execute runs one line of player input against m. It returns the direct reply,
// if any, and whether the player asked to leave. Everything else the player
// sees arrives through match events.
func Execute(m *match.Match, input string) (string, bool) {
	command, err := msg.ParseCommand(input)
	if err != nil {
		return msg.Message.Rejected(err) + msg.Message.Help(), false
	}
	switch command.Kind {
	case msg.CommandPlay:
		if err := m.Play(command.Index); err != nil {
			return msg.Message.Rejected(err), false
		}
	case msg.CommandDraw:
		if err := m.Draw(); err != nil {
			return msg.Message.Rejected(err), false
		}
	case msg.CommandState:
		return msg.Message.State(m.State()), false
	case msg.CommandJSON:
		return string(json.Marshal(NewSnapshot(m.State()))) + "\n", false
	case msg.CommandReset:
		m.Reset()
	case msg.CommandHelp:
		return msg.Message.Help(), false
	case msg.CommandExit:
		return msg.Message.Goodbye(), true
	}
	return "", false
}
