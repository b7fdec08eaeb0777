package match

import (
	"fmt"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/duel/uno/game"
)

// schedule arms step for later. The callback is dropped if the match was reset,
// finished or closed in the meantime.
func (m *Match) schedule(delay time.Duration, step func()) {
	generation := m.generation
	m.timer = m.opts.scheduler.AfterFunc(delay, func() {
		m.continueBot(generation, step)
	})
}

func (m *Match) continueBot(generation uint64, step func()) {
	defer m.flush()
	m.mu.Lock()
	defer m.mu.Unlock()
	if generation != m.generation || m.closed || m.phase != game.ResolvingBotMove {
		return
	}
	m.timer = nil
	step()
}

// runBotCycle is one bot decision: either a forfeit after a draw penalty, or
// a play that may be preceded by any number of single-card draws.
func (m *Match) runBotCycle() {
	if m.forfeit {
		m.forfeit = false
		log.Infof("[match %s] %s loses the turn to the penalty\n", m.opts.id, m.opts.botName)
		m.emitTurnForfeited(game.Bot)
		m.endBotCycle()
		return
	}
	m.botStep()
}

func (m *Match) botStep() {
	hand := m.hands[game.Bot]
	active := m.activeCard()
	move := m.opts.policy.ChooseMove(hand.Cards(), active)
	if move.Draw() {
		m.give(game.Bot, 1, false)
		m.schedule(m.opts.botDrawDelay, m.botStep)
		return
	}

	chosen, ok := hand.At(move.Index)
	if !ok || !chosen.Equal(move.Card) {
		panic(fmt.Sprintf("match %s: bot chose %s at %d, not in its hand", m.opts.id, move.Card.Name(), move.Index))
	}
	if !game.Playable(chosen, active) {
		panic(fmt.Sprintf("match %s: bot chose %s, illegal on %s", m.opts.id, chosen.Name(), active.Name()))
	}

	played := m.place(game.Bot, move.Index)
	if m.phase == game.Finished {
		return
	}
	m.resolve(game.Bot, played)
	m.endBotCycle()
}

func (m *Match) endBotCycle() {
	m.botCycles--
	if m.botCycles > 0 {
		m.schedule(m.opts.botDelay, m.runBotCycle)
		return
	}
	m.handOverToHuman()
}
