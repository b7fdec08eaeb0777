package match

import (
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/game"
	"github.com/ratel-online/duel/uno/player"
)

type Option func(*options)

type options struct {
	id           string
	handSize     int
	botDelay     time.Duration
	botDrawDelay time.Duration
	drawMode     game.DrawMode
	catalog      []card.Card
	source       game.Source
	scheduler    Scheduler
	policy       player.Policy
	dealer       Dealer
	botName      string
}

func defaultOptions() options {
	return options{
		handSize:     consts.HandSize,
		botDelay:     consts.BotDelay,
		botDrawDelay: consts.BotDrawDelay,
		drawMode:     game.DrawSampled,
		source:       game.DefaultSource(),
		scheduler:    NewTimerScheduler(),
		policy:       player.NewNaivePolicy(),
		dealer:       NewDeckDealer(),
	}
}

func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

func WithHandSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.handSize = size
		}
	}
}

func WithBotDelay(delay time.Duration) Option {
	return func(o *options) {
		if delay >= 0 {
			o.botDelay = delay
		}
	}
}

func WithBotDrawDelay(delay time.Duration) Option {
	return func(o *options) {
		if delay >= 0 {
			o.botDrawDelay = delay
		}
	}
}

func WithDrawMode(mode game.DrawMode) Option {
	return func(o *options) {
		o.drawMode = mode
	}
}

// WithCatalog restricts the cards the deck hands out.
func WithCatalog(cards []card.Card) Option {
	return func(o *options) {
		o.catalog = cards
	}
}

func WithSource(source game.Source) Option {
	return func(o *options) {
		if source != nil {
			o.source = source
		}
	}
}

func WithScheduler(scheduler Scheduler) Option {
	return func(o *options) {
		if scheduler != nil {
			o.scheduler = scheduler
		}
	}
}

func WithPolicy(policy player.Policy) Option {
	return func(o *options) {
		if policy != nil {
			o.policy = policy
		}
	}
}

func WithDealer(dealer Dealer) Option {
	return func(o *options) {
		if dealer != nil {
			o.dealer = dealer
		}
	}
}

func WithBotName(name string) Option {
	return func(o *options) {
		o.botName = name
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	if o.botName == "" {
		o.botName = player.RandomBotName()
	}
	return o
}

func (o options) newDeck() *game.Deck {
	if len(o.catalog) > 0 {
		return game.NewDeckFromCatalog(o.catalog, o.source, o.drawMode)
	}
	return game.NewDeck(o.source, o.drawMode)
}
