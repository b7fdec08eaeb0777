package event

import (
	"sync"

	"github.com/ratel-online/duel/uno/game"
)

// TurnForfeitedPayload is emitted when a participant's cycle passes without a play.
type TurnForfeitedPayload struct {
	MatchID     string
	Participant game.Participant
}

type TurnForfeitedListener interface {
	OnTurnForfeited(TurnForfeitedPayload)
}

type turnForfeitedEmitter struct {
	sync.Mutex
	listeners []TurnForfeitedListener
}

func (e *turnForfeitedEmitter) AddListener(listener TurnForfeitedListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *turnForfeitedEmitter) Emit(payload TurnForfeitedPayload) {
	e.Lock()
	listeners := e.listeners
	e.Unlock()
	for _, listener := range listeners {
		listener.OnTurnForfeited(payload)
	}
}
