package card_test

import (
	"testing"

	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/action"
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestActions(t *testing.T) {
	scenarios := []struct {
		description     string
		card            card.Card
		expectedActions []action.Action
	}{
		{
			description:     "number_card_has_no_actions",
			card:            card.NewNumberCard(color.Red, 3),
			expectedActions: []action.Action{},
		},
		{
			description:     "wild_card_has_no_actions",
			card:            card.NewWildCard(),
			expectedActions: []action.Action{},
		},
		{
			description:     "skip_card_skips",
			card:            card.NewSkipCard(color.Blue),
			expectedActions: []action.Action{action.NewSkipTurnAction()},
		},
		{
			description:     "reverse_card_reverses",
			card:            card.NewReverseCard(color.Green),
			expectedActions: []action.Action{action.NewReverseTurnsAction()},
		},
		{
			description:     "draw_two_card_draws_two",
			card:            card.NewDrawTwoCard(color.Yellow),
			expectedActions: []action.Action{action.NewDrawCardsAction(2)},
		},
		{
			description:     "wild_draw_four_card_draws_four",
			card:            card.NewWildDrawFourCard(),
			expectedActions: []action.Action{action.NewDrawCardsAction(4)},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expectedActions, scenario.card.Actions())
		})
	}
}

func TestWildCardsAreBlack(t *testing.T) {
	require.Equal(t, color.Black, card.NewWildCard().Color())
	require.Equal(t, color.Black, card.NewWildDrawFourCard().Color())
	require.True(t, card.NewWildCard().IsWild())
	require.True(t, card.NewWildDrawFourCard().IsWild())
	require.False(t, card.NewDrawTwoCard(color.Red).IsWild())
}

func TestEqual(t *testing.T) {
	require.True(t, card.NewNumberCard(color.Red, 6).Equal(card.NewNumberCard(color.Red, 6)))
	require.False(t, card.NewNumberCard(color.Red, 6).Equal(card.NewNumberCard(color.Red, 7)))
	require.False(t, card.NewNumberCard(color.Red, 6).Equal(card.NewNumberCard(color.Blue, 6)))
	require.False(t, card.NewSkipCard(color.Red).Equal(card.NewReverseCard(color.Red)))
	require.True(t, card.NewWildCard().Equal(card.NewWildCard()))
}

func TestName(t *testing.T) {
	require.Equal(t, "Red 7", card.NewNumberCard(color.Red, 7).Name())
	require.Equal(t, "Blue Skip", card.NewSkipCard(color.Blue).Name())
	require.Equal(t, "Black WildDrawFour", card.NewWildDrawFourCard().Name())
}
