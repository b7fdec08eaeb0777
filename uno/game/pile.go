package game

import (
	"sync"

	"github.com/ratel-online/duel/uno/card"
)

// Pile is the discard pile; its top is the active card.
type Pile struct {
	sync.Mutex
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(card card.Card) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards = append(p.cards, card)
}

func (p *Pile) Reset() {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	p.cards = p.cards[:0]
}

func (p *Pile) Size() int {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	return len(p.cards)
}

func (p *Pile) Top() (card.Card, bool) {
	p.Mutex.Lock()
	defer p.Mutex.Unlock()
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}
