package match

import (
	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/game"
)

// Opening is what a fresh match starts from.
type Opening struct {
	Human  []card.Card
	Bot    []card.Card
	Active card.Card
}

type Dealer interface {
	Deal(deck *game.Deck, handSize int) Opening
}

type deckDealer struct{}

// NewDeckDealer deals handSize cards to the human, then to the bot, then turns
// one card over as the first active card.
func NewDeckDealer() Dealer {
	return deckDealer{}
}

func (deckDealer) Deal(deck *game.Deck, handSize int) Opening {
	return Opening{
		Human:  deck.Draw(handSize),
		Bot:    deck.Draw(handSize),
		Active: deck.DrawOne(),
	}
}

type DealerFunc func(deck *game.Deck, handSize int) Opening

func (f DealerFunc) Deal(deck *game.Deck, handSize int) Opening {
	return f(deck, handSize)
}

// FixedDealer always deals the same opening.
func FixedDealer(opening Opening) Dealer {
	return DealerFunc(func(*game.Deck, int) Opening {
		human := make([]card.Card, len(opening.Human))
		copy(human, opening.Human)
		bot := make([]card.Card, len(opening.Bot))
		copy(bot, opening.Bot)
		return Opening{Human: human, Bot: bot, Active: opening.Active}
	})
}
