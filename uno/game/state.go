package game

import (
	"fmt"

	"github.com/ratel-online/duel/uno/card"
)

type Phase int

const (
	AwaitingHumanMove Phase = iota
	ResolvingBotMove
	Finished
)

func (p Phase) String() string {
	switch p {
	case AwaitingHumanMove:
		return "awaiting_human_move"
	case ResolvingBotMove:
		return "resolving_bot_move"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// State is a read-only snapshot of a match, as seen from the human's seat.
type State struct {
	MatchID        string      `json:"matchId"`
	Phase          Phase       `json:"phase"`
	Turn           Participant `json:"turn"`
	Winner         Participant `json:"winner"`
	HasWinner      bool        `json:"hasWinner"`
	ActiveCard     card.Card   `json:"-"`
	HumanHand      []card.Card `json:"-"`
	// Playable lists the human's legal cards while it is their move.
	Playable       []card.Card `json:"-"`
	BotName        string      `json:"botName"`
	BotHandCount   int         `json:"botHandCount"`
	DiscardedCards int         `json:"discardedCards"`
}

// ActiveCardName, HumanHandNames and PlayableNames give the plain-text view used by JSON clients.
func (s State) ActiveCardName() string {
	return s.ActiveCard.Name()
}

func (s State) HumanHandNames() []string {
	return cardNames(s.HumanHand)
}

func (s State) PlayableNames() []string {
	return cardNames(s.Playable)
}

func cardNames(cards []card.Card) []string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.Name())
	}
	return names
}
