package game

import "fmt"

type Participant int

const (
	Human Participant = iota
	Bot
)

func (p Participant) Opponent() Participant {
	if p == Human {
		return Bot
	}
	return Human
}

func (p Participant) String() string {
	switch p {
	case Human:
		return "Human"
	case Bot:
		return "Bot"
	default:
		return fmt.Sprintf("Participant(%d)", int(p))
	}
}

func (p Participant) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
