package event

import "sync"

type DummyListener struct {
	sync.Mutex
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	l.Lock()
	defer l.Unlock()
	payloads := make([]interface{}, len(l.receivedPayloads))
	copy(payloads, l.receivedPayloads)
	return payloads
}

func (l *DummyListener) record(payload interface{}) {
	l.Lock()
	defer l.Unlock()
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnActiveCardChanged(payload ActiveCardChangedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnHandChanged(payload HandChangedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnCardsDrawn(payload CardsDrawnPayload) {
	l.record(payload)
}

func (l *DummyListener) OnTurnChanged(payload TurnChangedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnTurnForfeited(payload TurnForfeitedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnMatchStarted(payload MatchStartedPayload) {
	l.record(payload)
}

func (l *DummyListener) OnMatchFinished(payload MatchFinishedPayload) {
	l.record(payload)
}
