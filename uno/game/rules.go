package game

import "github.com/ratel-online/duel/uno/card"

// Playable reports whether candidateCard may be played on top of lastPlayedCard.
// A wild on either side always matches; there is no color lock after a wild.
func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	if candidateCard.IsWild() || lastPlayedCard.IsWild() {
		return true
	}
	if candidateCard.Color() == lastPlayedCard.Color() {
		return true
	}
	if candidateCard.Kind() != lastPlayedCard.Kind() {
		return false
	}
	if candidateCard.Kind() == card.Number {
		return candidateCard.Number() == lastPlayedCard.Number()
	}
	return true
}
