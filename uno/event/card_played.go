package event

import (
	"sync"

	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/game"
)

type CardPlayedPayload struct {
	MatchID     string
	Participant game.Participant
	Card        card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type cardPlayedEmitter struct {
	sync.Mutex
	listeners []CardPlayedListener
}

func (e *cardPlayedEmitter) AddListener(listener CardPlayedListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *cardPlayedEmitter) Emit(payload CardPlayedPayload) {
	e.Lock()
	listeners := e.listeners
	e.Unlock()
	for _, listener := range listeners {
		listener.OnCardPlayed(payload)
	}
}
