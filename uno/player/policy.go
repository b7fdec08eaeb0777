package player

import (
	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/game"
)

// Move is either a card to play, identified by its position in the hand, or a draw.
type Move struct {
	Index int
	Card  card.Card
}

var DrawMove = Move{Index: -1}

func (m Move) Draw() bool {
	return m.Index < 0
}

type Policy interface {
	ChooseMove(hand []card.Card, activeCard card.Card) Move
}

type naivePolicy struct{}

// NewNaivePolicy plays the first legal card in hand order, or draws when there is none.
func NewNaivePolicy() Policy {
	return naivePolicy{}
}

func (naivePolicy) ChooseMove(hand []card.Card, activeCard card.Card) Move {
	cards := game.NewHand()
	cards.AddCards(hand)
	if index, candidateCard, ok := cards.FirstPlayable(activeCard); ok {
		return Move{Index: index, Card: candidateCard}
	}
	return DrawMove
}

// PolicyFunc adapts a plain function into a Policy.
type PolicyFunc func(hand []card.Card, activeCard card.Card) Move

func (f PolicyFunc) ChooseMove(hand []card.Card, activeCard card.Card) Move {
	return f(hand, activeCard)
}
