package event

import (
	"sync"

	"github.com/ratel-online/duel/uno/game"
)

type MatchStartedPayload struct {
	MatchID string
	State   game.State
}

type MatchStartedListener interface {
	OnMatchStarted(MatchStartedPayload)
}

type matchStartedEmitter struct {
	sync.Mutex
	listeners []MatchStartedListener
}

func (e *matchStartedEmitter) AddListener(listener MatchStartedListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *matchStartedEmitter) Emit(payload MatchStartedPayload) {
	e.Lock()
	listeners := e.listeners
	e.Unlock()
	for _, listener := range listeners {
		listener.OnMatchStarted(payload)
	}
}
