package ui

import (
	"github.com/ratel-online/duel/uno/event"
	"github.com/ratel-online/duel/uno/game"
	"github.com/ratel-online/duel/uno/match"
	"github.com/ratel-online/duel/uno/msg"
)

// Console narrates a match to one player. It implements every event listener.
type Console struct {
	display *Display
	match   *match.Match
}

func NewConsole(m *match.Match, display *Display) *Console {
	c := &Console{display: display, match: m}
	m.Subscribe(c)
	return c
}

func (c *Console) OnMatchStarted(payload event.MatchStartedPayload) {
	c.display.Print(msg.Message.MatchStarted(payload.State.BotName))
}

func (c *Console) OnActiveCardChanged(payload event.ActiveCardChangedPayload) {
	c.display.Print(msg.Message.ActiveCard(payload.Card))
}

func (c *Console) OnHandChanged(payload event.HandChangedPayload) {
	if payload.Participant == game.Bot {
		c.display.Print(msg.Message.OpponentHand(c.match.BotName(), len(payload.Hand)))
		return
	}
	c.display.Print(msg.Message.Hand(payload.Hand))
}

func (c *Console) OnCardPlayed(payload event.CardPlayedPayload) {
	if payload.Participant == game.Bot {
		c.display.Print(msg.Message.PlayerPlayedCard(c.match.BotName(), payload.Card))
		return
	}
	c.display.Print(msg.Message.PlayerPlayedCard("You", payload.Card))
}

func (c *Console) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.Participant == game.Human {
		c.display.Print(msg.Message.HumanPlayerDrewCards(payload.Cards, payload.Penalty))
		return
	}
	c.display.Print(msg.Message.PlayerDrewCards(c.match.BotName(), payload.Cards, payload.Penalty))
}

func (c *Console) OnTurnChanged(payload event.TurnChangedPayload) {
	if payload.Participant == game.Human {
		c.display.Print(msg.Message.HumanPlayerTurnStarted())
		return
	}
	c.display.Print(msg.Message.BotTurnStarted(c.match.BotName()))
}

func (c *Console) OnTurnForfeited(payload event.TurnForfeitedPayload) {
	c.display.Print(msg.Message.PlayerTurnSkipped(c.match.BotName()))
}

func (c *Console) OnMatchFinished(payload event.MatchFinishedPayload) {
	c.display.Print(msg.Message.WinnerFound(payload.Winner, c.match.BotName()))
}
