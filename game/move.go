package game

import "fmt"

// MoveKind tags which rule of the ladder produced a move
type MoveKind int

const (
	NoMove MoveKind = iota
	ExitMove
	StepMove
	HopMove
	BumpMove // two-square hop that displaced an opponent
)

func (k MoveKind) String() string {
	switch k {
	case NoMove:
		return "none"
	case ExitMove:
		return "exit"
	case StepMove:
		return "step"
	case HopMove:
		return "hop"
	case BumpMove:
		return "bump"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Move describes one token's move and the board it leads to.
type Move struct {
	Kind       MoveKind
	Side       Side
	Token      int // index into the board encoding
	From       int
	To         int
	Bumped     int // index of the displaced token, -1 if none
	BumpedFrom int
	BumpedTo   int
	Board      Board
}

func (m Move) String() string {
	if m.Kind == BumpMove {
		return fmt.Sprintf("%s %s %d->%d bumps %d->%d", m.Side, m.Kind, m.From, m.To, m.BumpedFrom, m.BumpedTo)
	}
	return fmt.Sprintf("%s %s %d->%d", m.Side, m.Kind, m.From, m.To)
}
