package game_test

import (
	"testing"

	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/ratel-online/duel/uno/game"
	"github.com/stretchr/testify/require"
)

func TestAddCards(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	})
	hand.AddCards([]card.Card{
		card.NewSkipCard(color.Red),
	})
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
		card.NewSkipCard(color.Red),
	}, hand.Cards())
}

func TestCardsReturnsACopy(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{card.NewNumberCard(color.Blue, 7)})
	cards := hand.Cards()
	cards[0] = card.NewWildCard()
	require.Equal(t, []card.Card{card.NewNumberCard(color.Blue, 7)}, hand.Cards())
}

func TestEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	})
	require.False(t, hand.Empty())
	hand.Clear()
	require.True(t, hand.Empty())
}

func TestPlayableCards(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 8),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
		card.NewDrawTwoCard(color.Blue),
	})
	lastPlayedCard := card.NewNumberCard(color.Blue, 7)
	playableCards := hand.PlayableCards(lastPlayedCard)
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewDrawTwoCard(color.Blue),
	}, playableCards)
}

func TestFirstPlayable(t *testing.T) {
	t.Run("returns_first_legal_card_in_hand_order", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{
			card.NewNumberCard(color.Red, 1),
			card.NewWildCard(),
			card.NewNumberCard(color.Green, 3),
		})
		index, found, ok := hand.FirstPlayable(card.NewNumberCard(color.Green, 7))
		require.True(t, ok)
		require.Equal(t, 1, index)
		require.Equal(t, card.NewWildCard(), found)
	})

	t.Run("reports_nothing_when_no_card_is_legal", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{
			card.NewNumberCard(color.Red, 1),
			card.NewSkipCard(color.Blue),
		})
		index, _, ok := hand.FirstPlayable(card.NewNumberCard(color.Green, 7))
		require.False(t, ok)
		require.Equal(t, -1, index)
	})
}

func TestRemoveAt(t *testing.T) {
	t.Run("keeps_the_order_of_the_rest", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{
			card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Red, 2),
			card.NewNumberCard(color.Red, 3),
			card.NewNumberCard(color.Red, 4),
		})
		require.Equal(t, card.NewNumberCard(color.Red, 2), hand.RemoveAt(1))
		require.Equal(t, []card.Card{
			card.NewNumberCard(color.Red, 1),
			card.NewNumberCard(color.Red, 3),
			card.NewNumberCard(color.Red, 4),
		}, hand.Cards())
	})

	t.Run("panics_outside_the_hand", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{card.NewWildCard()})
		require.Panics(t, func() { hand.RemoveAt(1) })
		require.Panics(t, func() { hand.RemoveAt(-1) })
	})
}

func TestAt(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{card.NewWildCard()})
	found, ok := hand.At(0)
	require.True(t, ok)
	require.Equal(t, card.NewWildCard(), found)
	_, ok = hand.At(1)
	require.False(t, ok)
}

func TestSize(t *testing.T) {
	hand := game.NewHand()
	require.Equal(t, 0, hand.Size())
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
	})
	require.Equal(t, 3, hand.Size())
}
