package event

import (
	"sync"

	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/game"
)

// HandChangedPayload carries a copy of the participant's whole hand after the change.
type HandChangedPayload struct {
	MatchID     string
	Participant game.Participant
	Hand        []card.Card
}

type HandChangedListener interface {
	OnHandChanged(HandChangedPayload)
}

type handChangedEmitter struct {
	sync.Mutex
	listeners []HandChangedListener
}

func (e *handChangedEmitter) AddListener(listener HandChangedListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *handChangedEmitter) Emit(payload HandChangedPayload) {
	e.Lock()
	listeners := e.listeners
	e.Unlock()
	for _, listener := range listeners {
		listener.OnHandChanged(payload)
	}
}
