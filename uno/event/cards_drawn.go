package event

import (
	"sync"

	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/game"
)

type CardsDrawnPayload struct {
	MatchID     string
	Participant game.Participant
	Cards       []card.Card
	// Penalty is set when the cards were forced by a DrawTwo or WildDrawFour.
	Penalty bool
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type cardsDrawnEmitter struct {
	sync.Mutex
	listeners []CardsDrawnListener
}

func (e *cardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *cardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	e.Lock()
	listeners := e.listeners
	e.Unlock()
	for _, listener := range listeners {
		listener.OnCardsDrawn(payload)
	}
}
