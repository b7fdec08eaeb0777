package match

import (
	"fmt"
	"sync"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/action"
	"github.com/ratel-online/duel/uno/event"
	"github.com/ratel-online/duel/uno/game"
)

// Match is one human-versus-bot game. The human always moves first; after every
// human card the bot answers on the scheduler, never on the caller's goroutine.
// Listeners are notified after the match lock is released, so they may call
// back into the match.
type Match struct {
	mu   sync.Mutex
	opts options
	bus  *event.Bus
	deck *game.Deck
	pile *game.Pile

	hands map[game.Participant]*game.Hand

	started   bool
	closed    bool
	phase     game.Phase
	turn      game.Participant
	winner    game.Participant
	hasWinner bool

	// botCycles counts the bot decision cycles still owed before the turn
	// returns to the human, the running one included.
	botCycles int
	// forfeit marks the next bot cycle as consumed by a draw penalty.
	forfeit bool

	// generation invalidates callbacks scheduled before a reset or a finish.
	generation uint64
	timer      Timer

	outbox   []func()
	flushing bool
}

func New(opts ...Option) *Match {
	o := newOptions(opts)
	return &Match{
		opts: o,
		bus:  event.NewBus(),
		pile: game.NewPile(),
		hands: map[game.Participant]*game.Hand{
			game.Human: game.NewHand(),
			game.Bot:   game.NewHand(),
		},
	}
}

func (m *Match) ID() string {
	return m.opts.id
}

func (m *Match) BotName() string {
	return m.opts.botName
}

// Subscribe registers listener for every event kind it implements. It may be
// called at any time, even from a listener; events already being delivered do
// not reach the new listener.
func (m *Match) Subscribe(listener interface{}) {
	m.bus.Subscribe(listener)
}

// Start deals a fresh match. Calling it again behaves like Reset.
func (m *Match) Start() game.State {
	defer m.flush()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return m.snapshot()
	}
	m.deal()
	log.Infof("[match %s] started against %s, hand size %d, %s draws\n", m.opts.id, m.opts.botName, m.opts.handSize, m.deck.Mode())
	return m.snapshot()
}

// Reset abandons whatever is in progress, including a pending bot move, and deals again.
func (m *Match) Reset() game.State {
	defer m.flush()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return m.snapshot()
	}
	m.deal()
	log.Infof("[match %s] reset\n", m.opts.id)
	return m.snapshot()
}

// Close cancels any pending bot move. A closed match rejects every move.
func (m *Match) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.cancelPending()
	m.closed = true
	log.Infof("[match %s] closed\n", m.opts.id)
}

func (m *Match) State() game.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

func (m *Match) Phase() game.Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

func (m *Match) Winner() (game.Participant, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.winner, m.hasWinner
}

// Play submits the human's card at index. Rejected moves leave the match untouched.
func (m *Match) Play(index int) error {
	defer m.flush()
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkHumanTurn(); err != nil {
		return err
	}
	candidate, ok := m.hands[game.Human].At(index)
	if !ok {
		return consts.ErrorsCardIndexInvalid
	}
	if !game.Playable(candidate, m.activeCard()) {
		return consts.ErrorsIllegalMove
	}
	played := m.place(game.Human, index)
	if m.phase == game.Finished {
		return nil
	}
	m.resolve(game.Human, played)
	return nil
}

// PlayCard submits the first copy of c in the human's hand.
func (m *Match) PlayCard(c card.Card) error {
	m.mu.Lock()
	index := -1
	for i, handCard := range m.hands[game.Human].Cards() {
		if handCard.Equal(c) {
			index = i
			break
		}
	}
	m.mu.Unlock()
	if index < 0 {
		return consts.ErrorsCardIndexInvalid
	}
	return m.Play(index)
}

// SubmitHumanPlay is Play reporting only whether the move was accepted.
func (m *Match) SubmitHumanPlay(index int) bool {
	return m.Play(index) == nil
}

// Draw gives the human one card. The turn stays with the human.
func (m *Match) Draw() error {
	defer m.flush()
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkHumanTurn(); err != nil {
		return err
	}
	m.give(game.Human, 1, false)
	return nil
}

func (m *Match) SubmitHumanDraw() bool {
	return m.Draw() == nil
}

func (m *Match) checkHumanTurn() error {
	switch {
	case m.closed:
		return consts.ErrorsMatchClosed
	case !m.started:
		return consts.ErrorsMatchNotStarted
	case m.phase == game.Finished:
		return consts.ErrorsMatchFinished
	case m.phase != game.AwaitingHumanMove:
		return consts.ErrorsNotYourTurn
	}
	return nil
}

func (m *Match) deal() {
	m.cancelPending()
	m.deck = m.opts.newDeck()
	m.pile.Reset()
	m.started = true
	m.phase = game.AwaitingHumanMove
	m.turn = game.Human
	m.winner = game.Human
	m.hasWinner = false
	m.botCycles = 0
	m.forfeit = false

	opening := m.opts.dealer.Deal(m.deck, m.opts.handSize)
	m.hands[game.Human].Clear()
	m.hands[game.Human].AddCards(opening.Human)
	m.hands[game.Bot].Clear()
	m.hands[game.Bot].AddCards(opening.Bot)
	// The first active card never takes effect.
	m.pile.Add(opening.Active)

	m.emitMatchStarted()
	m.emitHandChanged(game.Human)
	m.emitHandChanged(game.Bot)
	m.emitActiveCardChanged()
	m.emitTurnChanged(game.Human)
}

func (m *Match) cancelPending() {
	m.generation++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *Match) activeCard() card.Card {
	top, ok := m.pile.Top()
	if !ok {
		panic(fmt.Sprintf("match %s: no active card", m.opts.id))
	}
	return top
}

// place moves the card at index from the participant's hand onto the pile and
// finishes the match if that emptied the hand.
func (m *Match) place(participant game.Participant, index int) card.Card {
	hand := m.hands[participant]
	played := hand.RemoveAt(index)
	m.pile.Add(played)
	log.Infof("[match %s] %s played %s\n", m.opts.id, m.nameOf(participant), played.Name())

	m.emitCardPlayed(participant, played)
	m.emitHandChanged(participant)
	m.emitActiveCardChanged()

	if hand.Empty() {
		m.finish(participant)
	}
	return played
}

// resolve applies the effects of a card just played by actor.
func (m *Match) resolve(actor game.Participant, played card.Card) {
	extraTurn := false
	for _, cardAction := range played.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			m.give(actor.Opponent(), cardAction.Amount(), true)
			if actor == game.Human {
				m.forfeit = true
			} else {
				extraTurn = true
			}
		case action.SkipTurnAction, action.ReverseTurnsAction:
			extraTurn = true
		}
	}

	if actor == game.Human {
		cycles := 1
		if extraTurn {
			cycles = 2
		}
		m.handOverToBot(cycles)
		return
	}
	if extraTurn {
		m.botCycles++
	}
}

func (m *Match) give(participant game.Participant, amount int, penalty bool) {
	cards := m.deck.Draw(amount)
	m.hands[participant].AddCards(cards)
	log.Infof("[match %s] %s drew %d card(s)\n", m.opts.id, m.nameOf(participant), amount)

	m.emitCardsDrawn(participant, cards, penalty)
	m.emitHandChanged(participant)
}

func (m *Match) handOverToBot(cycles int) {
	m.phase = game.ResolvingBotMove
	m.turn = game.Bot
	m.botCycles = cycles
	m.emitTurnChanged(game.Bot)
	m.schedule(m.opts.botDelay, m.runBotCycle)
}

func (m *Match) handOverToHuman() {
	m.phase = game.AwaitingHumanMove
	m.turn = game.Human
	m.botCycles = 0
	m.emitTurnChanged(game.Human)
}

func (m *Match) finish(winner game.Participant) {
	m.cancelPending()
	m.phase = game.Finished
	m.winner = winner
	m.hasWinner = true
	m.botCycles = 0
	m.forfeit = false
	log.Infof("[match %s] finished, %s won\n", m.opts.id, m.nameOf(winner))
	m.emitMatchFinished(winner)
}

func (m *Match) nameOf(participant game.Participant) string {
	if participant == game.Bot {
		return m.opts.botName
	}
	return participant.String()
}

func (m *Match) snapshot() game.State {
	state := game.State{
		MatchID:        m.opts.id,
		Phase:          m.phase,
		Turn:           m.turn,
		Winner:         m.winner,
		HasWinner:      m.hasWinner,
		HumanHand:      m.hands[game.Human].Cards(),
		BotName:        m.opts.botName,
		BotHandCount:   m.hands[game.Bot].Size(),
		DiscardedCards: m.pile.Size(),
	}
	if top, ok := m.pile.Top(); ok {
		state.ActiveCard = top
		if m.started && m.phase == game.AwaitingHumanMove {
			state.Playable = m.hands[game.Human].PlayableCards(top)
		}
	}
	return state
}

func (m *Match) emit(f func()) {
	m.outbox = append(m.outbox, f)
}

// flush delivers queued events in order. It is deferred ahead of the lock, so
// it runs after the unlock; a listener that re-enters the match only queues
// more events for the outer flush to deliver.
func (m *Match) flush() {
	m.mu.Lock()
	if m.flushing {
		m.mu.Unlock()
		return
	}
	m.flushing = true
	for len(m.outbox) > 0 {
		next := m.outbox[0]
		m.outbox = m.outbox[1:]
		m.mu.Unlock()
		next()
		m.mu.Lock()
	}
	m.flushing = false
	m.mu.Unlock()
}

func (m *Match) emitMatchStarted() {
	payload := event.MatchStartedPayload{MatchID: m.opts.id, State: m.snapshot()}
	m.emit(func() { m.bus.MatchStarted.Emit(payload) })
}

func (m *Match) emitHandChanged(participant game.Participant) {
	payload := event.HandChangedPayload{MatchID: m.opts.id, Participant: participant, Hand: m.hands[participant].Cards()}
	m.emit(func() { m.bus.HandChanged.Emit(payload) })
}

func (m *Match) emitActiveCardChanged() {
	payload := event.ActiveCardChangedPayload{MatchID: m.opts.id, Card: m.activeCard()}
	m.emit(func() { m.bus.ActiveCardChanged.Emit(payload) })
}

func (m *Match) emitCardPlayed(participant game.Participant, played card.Card) {
	payload := event.CardPlayedPayload{MatchID: m.opts.id, Participant: participant, Card: played}
	m.emit(func() { m.bus.CardPlayed.Emit(payload) })
}

func (m *Match) emitCardsDrawn(participant game.Participant, cards []card.Card, penalty bool) {
	payload := event.CardsDrawnPayload{MatchID: m.opts.id, Participant: participant, Cards: cards, Penalty: penalty}
	m.emit(func() { m.bus.CardsDrawn.Emit(payload) })
}

func (m *Match) emitTurnChanged(participant game.Participant) {
	payload := event.TurnChangedPayload{MatchID: m.opts.id, Participant: participant}
	m.emit(func() { m.bus.TurnChanged.Emit(payload) })
}

func (m *Match) emitTurnForfeited(participant game.Participant) {
	payload := event.TurnForfeitedPayload{MatchID: m.opts.id, Participant: participant}
	m.emit(func() { m.bus.TurnForfeited.Emit(payload) })
}

func (m *Match) emitMatchFinished(winner game.Participant) {
	payload := event.MatchFinishedPayload{MatchID: m.opts.id, Winner: winner}
	m.emit(func() { m.bus.MatchFinished.Emit(payload) })
}
