package service

import (
	"fmt"
	stringx "strings"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/event"
	"github.com/ratel-online/duel/uno/game"
	"github.com/ratel-online/duel/uno/match"
	"github.com/ratel-online/duel/uno/msg"
	"github.com/ratel-online/duel/uno/ui"
)

// Conn is the part of a client connection a session uses.
type Conn interface {
	Read() (*protocol.Packet, error)
	Write(packet protocol.Packet) error
	Close() error
}

// Session is one remote player and the match they are playing.
type Session struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Score int64  `json:"score"`

	conn  Conn
	data  chan *protocol.Packet
	match *match.Match

	writeLock   sync.Mutex
	offline     sync.Once
	idleTimeout time.Duration

	sync.Mutex
	online bool
}

func NewSession(conn Conn, info *model.AuthInfo, opts ...match.Option) *Session {
	s := &Session{
		ID:          info.ID,
		Name:        stringx.TrimSpace(info.Name),
		Score:       info.Score,
		conn:        conn,
		data:        make(chan *protocol.Packet, 8),
		idleTimeout: consts.IdleTimeout,
		online:      true,
	}
	s.match = match.New(opts...)
	s.match.Subscribe(s)
	return s
}

func (s *Session) Match() *match.Match {
	return s.match
}

func (s *Session) Online() bool {
	s.Lock()
	defer s.Unlock()
	return s.online
}

// SetIdleTimeout bounds how long Run waits for the next command.
func (s *Session) SetIdleTimeout(timeout time.Duration) {
	s.idleTimeout = timeout
}

// Listening pumps packets from the connection until it fails.
func (s *Session) Listening() error {
	defer close(s.data)
	for {
		packet, err := s.conn.Read()
		if err != nil {
			return err
		}
		if !s.Online() {
			return consts.ErrorsChanClosed
		}
		select {
		case s.data <- packet:
		default:
			log.Infof("session %s is flooding, packet dropped\n", s)
		}
	}
}

// Run deals a match and executes commands until the player leaves, goes idle
// or drops.
func (s *Session) Run() error {
	_ = s.WriteString(msg.Message.Welcome(s.Name))
	s.match.Start()
	for {
		packet, err := s.askForPacket(s.idleTimeout)
		if err != nil {
			if err == consts.ErrorsTimeout {
				_ = s.WriteError(err)
			}
			return err
		}
		reply, exit := ui.Execute(s.match, packet.String())
		if reply != "" {
			_ = s.WriteString(reply)
		}
		if exit {
			return consts.ErrorsExist
		}
	}
}

func (s *Session) askForPacket(timeout time.Duration) (*protocol.Packet, error) {
	var packet *protocol.Packet
	if timeout > 0 {
		select {
		case packet = <-s.data:
		case <-time.After(timeout):
			return nil, consts.ErrorsTimeout
		}
	} else {
		packet = <-s.data
	}
	if packet == nil {
		return nil, consts.ErrorsChanClosed
	}
	return packet, nil
}

// Offline closes the match and the connection. It is safe to call more than once.
func (s *Session) Offline() {
	s.offline.Do(func() {
		s.Lock()
		s.online = false
		s.Unlock()
		s.match.Close()
		if err := s.conn.Close(); err != nil {
			log.Error(err)
		}
		log.Infof("session %s offline\n", s)
	})
}

func (s *Session) WriteString(data string) error {
	return s.write([]byte(data))
}

func (s *Session) WriteError(err error) error {
	if err == consts.ErrorsExist {
		return err
	}
	return s.write([]byte(err.Error() + "\n"))
}

func (s *Session) write(body []byte) error {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()
	return s.conn.Write(protocol.Packet{Body: body})
}

// StartTransaction tells the client to collect input; StopTransaction tells it to stop.
func (s *Session) StartTransaction() {
	_ = s.WriteString(consts.IsStart)
}

func (s *Session) StopTransaction() {
	_ = s.WriteString(consts.IsStop)
}

func (s *Session) String() string {
	return fmt.Sprintf("%s[%d]", s.Name, s.ID)
}

func (s *Session) OnMatchStarted(payload event.MatchStartedPayload) {
	_ = s.WriteString(msg.Message.MatchStarted(payload.State.BotName))
}

func (s *Session) OnActiveCardChanged(payload event.ActiveCardChangedPayload) {
	_ = s.WriteString(msg.Message.ActiveCard(payload.Card))
}

func (s *Session) OnHandChanged(payload event.HandChangedPayload) {
	if payload.Participant == game.Bot {
		_ = s.WriteString(msg.Message.OpponentHand(s.match.BotName(), len(payload.Hand)))
		return
	}
	_ = s.WriteString(msg.Message.Hand(payload.Hand))
}

func (s *Session) OnCardPlayed(payload event.CardPlayedPayload) {
	if payload.Participant == game.Bot {
		_ = s.WriteString(msg.Message.PlayerPlayedCard(s.match.BotName(), payload.Card))
	}
}

func (s *Session) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.Participant == game.Human {
		_ = s.WriteString(msg.Message.HumanPlayerDrewCards(payload.Cards, payload.Penalty))
		return
	}
	_ = s.WriteString(msg.Message.PlayerDrewCards(s.match.BotName(), payload.Cards, payload.Penalty))
}

func (s *Session) OnTurnChanged(payload event.TurnChangedPayload) {
	if payload.Participant == game.Human {
		_ = s.WriteString(msg.Message.HumanPlayerTurnStarted())
		s.StartTransaction()
		return
	}
	s.StopTransaction()
	_ = s.WriteString(msg.Message.BotTurnStarted(s.match.BotName()))
}

func (s *Session) OnTurnForfeited(payload event.TurnForfeitedPayload) {
	_ = s.WriteString(msg.Message.PlayerTurnSkipped(s.match.BotName()))
}

func (s *Session) OnMatchFinished(payload event.MatchFinishedPayload) {
	_ = s.WriteString(msg.Message.WinnerFound(payload.Winner, s.match.BotName()))
	log.Infof("session %s: match %s won by %s\n", s, payload.MatchID, payload.Winner)
}
