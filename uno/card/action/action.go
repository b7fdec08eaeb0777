package action

import "fmt"

// Action is an effect a played card carries beyond handing the turn over.
type Action interface {
	Name() string
	sealed()
}

type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

func (a DrawCardsAction) Name() string {
	return fmt.Sprintf("draw %d", a.amount)
}

func (DrawCardsAction) sealed() {}

type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

func (ReverseTurnsAction) Name() string {
	return "reverse"
}

func (ReverseTurnsAction) sealed() {}

type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

func (SkipTurnAction) Name() string {
	return "skip"
}

func (SkipTurnAction) sealed() {}
