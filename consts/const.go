package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	HandSize = 6

	BotDelay     = 500 * time.Millisecond
	BotDrawDelay = 300 * time.Millisecond

	AuthTimeout = 3 * time.Second
	IdleTimeout = 10 * time.Minute

	DefaultTcpAddr = ":9999"
	DefaultWsAddr  = ":9998"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist            = NewErr(1, true, "Exist. ")
	ErrorsChanClosed       = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout          = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid     = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail         = NewErr(1, true, "Auth fail. ")
	ErrorsMatchNotStarted  = NewErr(2, false, "Match not started. ")
	ErrorsMatchFinished    = NewErr(2, false, "Match finished, reset to play again. ")
	ErrorsMatchClosed      = NewErr(2, true, "Match closed. ")
	ErrorsNotYourTurn      = NewErr(3, false, "Not your turn. ")
	ErrorsCardIndexInvalid = NewErr(3, false, "No card at that position. ")
	ErrorsIllegalMove      = NewErr(3, false, "That card does not match the last played card. ")
)
