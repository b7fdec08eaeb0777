package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/ratel-online/duel/uno/game"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome(playerName string) string {
	return line(
		"WELCOME TO %s%s%s, %s!",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
		playerName,
	)
}

func (m MessageWriter) MatchStarted(botName string) string {
	return line("New match against %s, you go first!", botName)
}

func (m MessageWriter) ActiveCard(active card.Card) string {
	return line("Last played card is %s", active)
}

func (m MessageWriter) Hand(hand []card.Card) string {
	labeled := make([]string, 0, len(hand))
	for index, handCard := range hand {
		labeled = append(labeled, fmt.Sprintf("%d:%s", index, handCard))
	}
	return line("Your hand: %s", strings.Join(labeled, " "))
}

func (m MessageWriter) OpponentHand(botName string, size int) string {
	if size == 1 {
		return line("%s has a single card left!", botName)
	}
	return line("%s has %d cards", botName, size)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, played card.Card) string {
	return line("%s played %s!", playerName, played)
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card, penalty bool) string {
	if penalty {
		return line("You were forced to draw %s!", cards)
	}
	return line("You drew %s!", cards)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card, penalty bool) string {
	switch {
	case penalty:
		return line("%s was forced to draw %d cards!", playerName, len(cards))
	case len(cards) == 1:
		return line("%s drew a card!", playerName)
	default:
		return line("%s drew %d cards!", playerName, len(cards))
	}
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return line("%s's turn skipped!", playerName)
}

func (m MessageWriter) HumanPlayerTurnStarted() string {
	return line("It's your turn! Enter a card number, 'd' to draw or 'h' for help.")
}

func (m MessageWriter) BotTurnStarted(botName string) string {
	return line("%s is thinking...", botName)
}

func (m MessageWriter) WinnerFound(winner game.Participant, botName string) string {
	if winner == game.Human {
		return line("You win! Enter 'r' to play again.")
	}
	return line("%s wins! Enter 'r' to play again.", botName)
}

func (m MessageWriter) State(state game.State) string {
	rows := []string{
		strings.TrimSuffix(m.ActiveCard(state.ActiveCard), "\n"),
		strings.TrimSuffix(m.OpponentHand(state.BotName, state.BotHandCount), "\n"),
		strings.TrimSuffix(m.Hand(state.HumanHand), "\n"),
	}
	switch {
	case state.Phase == game.AwaitingHumanMove && len(state.Playable) == 0:
		rows = append(rows, "Nothing fits, enter 'd' to draw.")
	case state.Phase == game.AwaitingHumanMove:
		rows = append(rows, fmt.Sprintf("You can play %s", state.Playable))
	case state.Phase == game.Finished && state.HasWinner:
		rows = append(rows, strings.TrimSuffix(m.WinnerFound(state.Winner, state.BotName), "\n"))
	case state.Phase == game.ResolvingBotMove:
		rows = append(rows, strings.TrimSuffix(m.BotTurnStarted(state.BotName), "\n"))
	}
	return lines(rows)
}

func (m MessageWriter) Rejected(err error) string {
	return line("%s", err.Error())
}

func (m MessageWriter) Help() string {
	return lines([]string{
		"Commands:",
		"  <n> or 'p <n>'  play the card at position n",
		"  d               draw a card",
		"  s               show the table",
		"  j               show the table as json",
		"  r               deal a new match",
		"  e               leave",
	})
}

func (m MessageWriter) Goodbye() string {
	return line("Bye!")
}

func line(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...) + "\n"
}

func lines(rows []string) string {
	return strings.Join(rows, "\n") + "\n"
}
