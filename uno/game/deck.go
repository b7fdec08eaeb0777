package game

import (
	"fmt"
	"sync"

	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
)

// Source picks a uniform integer in [0, n).
type Source interface {
	Intn(n int) int
}

type defaultSource struct{}

func (defaultSource) Intn(n int) int {
	return rand.Intn(n)
}

func DefaultSource() Source {
	return defaultSource{}
}

type DrawMode int

const (
	// DrawSampled samples every draw from the full catalog; the catalog never runs out.
	DrawSampled DrawMode = iota
	// DrawShuffled deals from a shuffled copy of the catalog and refills it when short.
	DrawShuffled
)

func (m DrawMode) String() string {
	switch m {
	case DrawSampled:
		return "sampled"
	case DrawShuffled:
		return "shuffled"
	default:
		return fmt.Sprintf("DrawMode(%d)", int(m))
	}
}

// Catalog builds the reduced card catalog: numbers 1-9 plus Skip, Reverse and
// DrawTwo in each color, followed by one Wild and one WildDrawFour.
func Catalog() []card.Card {
	cards := make([]card.Card, 0, len(color.Colors)*12+2)
	for _, cardColor := range color.Colors {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := make([]card.Card, 0, 12)
	for number := 1; number <= 9; number++ {
		cards = append(cards, card.NewNumberCard(cardColor, number))
	}
	return append(cards,
		card.NewSkipCard(cardColor),
		card.NewReverseCard(cardColor),
		card.NewDrawTwoCard(cardColor),
	)
}

func createBlackCards() []card.Card {
	return []card.Card{
		card.NewWildCard(),
		card.NewWildDrawFourCard(),
	}
}

type Deck struct {
	sync.Mutex
	catalog []card.Card
	source  Source
	mode    DrawMode
	cards   []card.Card
}

func NewDeck(source Source, mode DrawMode) *Deck {
	return NewDeckFromCatalog(Catalog(), source, mode)
}

func NewDeckFromCatalog(catalog []card.Card, source Source, mode DrawMode) *Deck {
	if len(catalog) == 0 {
		panic("game: deck needs a non-empty catalog")
	}
	if source == nil {
		source = DefaultSource()
	}
	cards := make([]card.Card, len(catalog))
	copy(cards, catalog)
	return &Deck{catalog: cards, source: source, mode: mode}
}

func (d *Deck) Mode() DrawMode {
	return d.mode
}

func (d *Deck) DrawOne() card.Card {
	return d.Draw(1)[0]
}

func (d *Deck) Draw(amount int) []card.Card {
	if amount < 0 {
		panic(fmt.Sprintf("game: cannot draw %d cards", amount))
	}
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if d.mode == DrawShuffled {
		return d.deal(amount)
	}
	return d.sample(amount)
}

// sample never repeats a catalog entry within one call until the catalog is
// exhausted; the next pass starts over.
func (d *Deck) sample(amount int) []card.Card {
	cards := make([]card.Card, 0, amount)
	for len(cards) < amount {
		pass := amount - len(cards)
		if pass > len(d.catalog) {
			pass = len(d.catalog)
		}
		indices := make([]int, len(d.catalog))
		for i := range indices {
			indices[i] = i
		}
		for i := 0; i < pass; i++ {
			j := i + d.source.Intn(len(indices)-i)
			indices[i], indices[j] = indices[j], indices[i]
			cards = append(cards, d.catalog[indices[i]])
		}
	}
	return cards
}

func (d *Deck) deal(amount int) []card.Card {
	for len(d.cards) < amount {
		d.fill()
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards
}

func (d *Deck) fill() {
	cards := make([]card.Card, len(d.catalog))
	copy(cards, d.catalog)
	d.shuffle(cards)
	d.cards = append(d.cards, cards...)
}

func (d *Deck) shuffle(cards []card.Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := d.source.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Remaining reports how many cards are left before the next refill. A sampled
// deck always reports the catalog size.
func (d *Deck) Remaining() int {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if d.mode == DrawShuffled {
		return len(d.cards)
	}
	return len(d.catalog)
}
