package game

import (
	"fmt"

	"github.com/ratel-online/duel/uno/card"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) At(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, false
	}
	return h.cards[index], true
}

func (h *Hand) Clear() {
	h.cards = h.cards[:0]
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) PlayableCards(lastPlayedCard card.Card) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, lastPlayedCard) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// FirstPlayable scans in hand order and returns the first card legal on top of lastPlayedCard.
func (h *Hand) FirstPlayable(lastPlayedCard card.Card) (int, card.Card, bool) {
	for index, candidateCard := range h.cards {
		if Playable(candidateCard, lastPlayedCard) {
			return index, candidateCard, true
		}
	}
	return -1, card.Card{}, false
}

// RemoveAt panics on an index outside the hand; callers validate user input first.
func (h *Hand) RemoveAt(index int) card.Card {
	if index < 0 || index >= len(h.cards) {
		panic(fmt.Sprintf("game: hand has no card at index %d (size %d)", index, len(h.cards)))
	}
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed
}

func (h *Hand) Size() int {
	return len(h.cards)
}
