package card

import (
	"fmt"

	"github.com/ratel-online/duel/uno/card/action"
	"github.com/ratel-online/duel/uno/card/color"
)

type Kind int

const (
	Number Kind = iota
	Skip
	Reverse
	DrawTwo
	Wild
	WildDrawFour
)

var kindNames = map[Kind]string{
	Number:       "Number",
	Skip:         "Skip",
	Reverse:      "Reverse",
	DrawTwo:      "DrawTwo",
	Wild:         "Wild",
	WildDrawFour: "WildDrawFour",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Card is a value; two cards with the same color, kind and number are the same card.
type Card struct {
	color  color.Color
	kind   Kind
	number int
}

func NewNumberCard(cardColor color.Color, number int) Card {
	return Card{color: cardColor, kind: Number, number: number}
}

func NewSkipCard(cardColor color.Color) Card {
	return Card{color: cardColor, kind: Skip}
}

func NewReverseCard(cardColor color.Color) Card {
	return Card{color: cardColor, kind: Reverse}
}

func NewDrawTwoCard(cardColor color.Color) Card {
	return Card{color: cardColor, kind: DrawTwo}
}

func NewWildCard() Card {
	return Card{color: color.Black, kind: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{color: color.Black, kind: WildDrawFour}
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Kind() Kind {
	return c.kind
}

// Number is only meaningful for Number cards.
func (c Card) Number() int {
	return c.number
}

func (c Card) IsWild() bool {
	return c.kind == Wild || c.kind == WildDrawFour
}

func (c Card) Equal(other Card) bool {
	return c == other
}

func (c Card) Actions() []action.Action {
	switch c.kind {
	case Skip:
		return []action.Action{action.NewSkipTurnAction()}
	case Reverse:
		return []action.Action{action.NewReverseTurnsAction()}
	case DrawTwo:
		return []action.Action{action.NewDrawCardsAction(2)}
	case WildDrawFour:
		return []action.Action{action.NewDrawCardsAction(4)}
	default:
		return []action.Action{}
	}
}

// Name renders the card without terminal colors.
func (c Card) Name() string {
	if c.kind == Number {
		return fmt.Sprintf("%s %d", c.color.Name(), c.number)
	}
	return fmt.Sprintf("%s %s", c.color.Name(), c.kind)
}

func (c Card) String() string {
	switch c.kind {
	case Number:
		return c.color.Paintf("[%d]", c.number)
	case Skip:
		return c.color.Paint("(/)")
	case Reverse:
		return c.color.Paint("<=>")
	case DrawTwo:
		return c.color.Paint("+2!")
	case Wild:
		return c.color.Paint("(*)")
	case WildDrawFour:
		return c.color.Paint("+4!")
	default:
		return c.Name()
	}
}
