package event

import (
	"sync"

	"github.com/ratel-online/duel/uno/game"
)

type MatchFinishedPayload struct {
	MatchID string
	Winner  game.Participant
}

type MatchFinishedListener interface {
	OnMatchFinished(MatchFinishedPayload)
}

type matchFinishedEmitter struct {
	sync.Mutex
	listeners []MatchFinishedListener
}

func (e *matchFinishedEmitter) AddListener(listener MatchFinishedListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *matchFinishedEmitter) Emit(payload MatchFinishedPayload) {
	e.Lock()
	listeners := e.listeners
	e.Unlock()
	for _, listener := range listeners {
		listener.OnMatchFinished(payload)
	}
}
