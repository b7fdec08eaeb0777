package event

import (
	"sync"

	"github.com/ratel-online/duel/uno/card"
)

type ActiveCardChangedPayload struct {
	MatchID string
	Card    card.Card
}

type ActiveCardChangedListener interface {
	OnActiveCardChanged(ActiveCardChangedPayload)
}

type activeCardChangedEmitter struct {
	sync.Mutex
	listeners []ActiveCardChangedListener
}

func (e *activeCardChangedEmitter) AddListener(listener ActiveCardChangedListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *activeCardChangedEmitter) Emit(payload ActiveCardChangedPayload) {
	e.Lock()
	listeners := e.listeners
	e.Unlock()
	for _, listener := range listeners {
		listener.OnActiveCardChanged(payload)
	}
}
