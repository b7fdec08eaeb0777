package event

// Bus holds one emitter per event kind. Every match owns its own Bus.
type Bus struct {
	ActiveCardChanged *activeCardChangedEmitter
	HandChanged       *handChangedEmitter
	CardPlayed        *cardPlayedEmitter
	CardsDrawn        *cardsDrawnEmitter
	TurnChanged       *turnChangedEmitter
	TurnForfeited     *turnForfeitedEmitter
	MatchStarted      *matchStartedEmitter
	MatchFinished     *matchFinishedEmitter
}

func NewBus() *Bus {
	return &Bus{
		ActiveCardChanged: &activeCardChangedEmitter{},
		HandChanged:       &handChangedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		CardsDrawn:        &cardsDrawnEmitter{},
		TurnChanged:       &turnChangedEmitter{},
		TurnForfeited:     &turnForfeitedEmitter{},
		MatchStarted:      &matchStartedEmitter{},
		MatchFinished:     &matchFinishedEmitter{},
	}
}

// Subscribe registers listener with every emitter whose listener interface it implements.
func (b *Bus) Subscribe(listener interface{}) {
	if l, ok := listener.(ActiveCardChangedListener); ok {
		b.ActiveCardChanged.AddListener(l)
	}
	if l, ok := listener.(HandChangedListener); ok {
		b.HandChanged.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(TurnChangedListener); ok {
		b.TurnChanged.AddListener(l)
	}
	if l, ok := listener.(TurnForfeitedListener); ok {
		b.TurnForfeited.AddListener(l)
	}
	if l, ok := listener.(MatchStartedListener); ok {
		b.MatchStarted.AddListener(l)
	}
	if l, ok := listener.(MatchFinishedListener); ok {
		b.MatchFinished.AddListener(l)
	}
}
