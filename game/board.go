package game

import (
	"errors"
	"fmt"
)

const (
	WhiteExit = 9 // White tokens leave the track here
	BlackExit = 0 // Black tokens leave the track here

	firstSquare = 1
	lastSquare  = 8
)

var (
	ErrMalformedBoard     = errors.New("board must be exactly four ASCII digits")
	ErrPositionOutOfRange = errors.New("token position out of range")
	ErrSquareCollision    = errors.New("two tokens share a square")
)

type Side int

const (
	White Side = iota
	Black
)

func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// Exit returns the sentinel square of the side's tokens
func (s Side) Exit() int {
	if s == White {
		return WhiteExit
	}
	return BlackExit
}

// Direction is +1 for White and -1 for Black
func (s Side) Direction() int {
	if s == White {
		return 1
	}
	return -1
}

// Tokens returns the board indices of the side's two tokens
func (s Side) Tokens() [2]int {
	if s == White {
		return [2]int{0, 1}
	}
	return [2]int{2, 3}
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

func ParseSide(name string) (Side, error) {
	switch name {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return White, fmt.Errorf("unknown side %q", name)
}

// Board holds the four token positions in the order w1, w2, b1, b2.
// Board is a value type; moves always produce a new Board.
type Board struct {
	pos [4]int
}

// NewBoard validates ranges: White in [1,9] and Black in [0,8]. Tokens may
// share a square only in a supplied start position such as 1188; see
// CheckInvariant.
func NewBoard(w1, w2, b1, b2 int) (Board, error) {
	b := Board{pos: [4]int{w1, w2, b1, b2}}
	for i, p := range b.pos {
		side := sideOf(i)
		lo, hi := firstSquare, WhiteExit
		if side == Black {
			lo, hi = BlackExit, lastSquare
		}
		if p < lo || p > hi {
			return Board{}, fmt.Errorf("%w: %s token at %d", ErrPositionOutOfRange, side, p)
		}
	}
	return b, nil
}

// CheckInvariant reports two tokens still on the track sharing a square.
func (b Board) CheckInvariant() error {
	for i := 0; i < len(b.pos); i++ {
		if b.exited(i) {
			continue
		}
		for j := i + 1; j < len(b.pos); j++ {
			if !b.exited(j) && b.pos[i] == b.pos[j] {
				return fmt.Errorf("%w: square %d", ErrSquareCollision, b.pos[i])
			}
		}
	}
	return nil
}

// ParseBoard decodes the four-digit w1w2b1b2 encoding.
func ParseBoard(s string) (Board, error) {
	if len(s) != 4 {
		return Board{}, fmt.Errorf("%w: %q", ErrMalformedBoard, s)
	}
	var d [4]int
	for i := 0; i < 4; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Board{}, fmt.Errorf("%w: %q", ErrMalformedBoard, s)
		}
		d[i] = int(c - '0')
	}
	b, err := NewBoard(d[0], d[1], d[2], d[3])
	if err != nil {
		return Board{}, fmt.Errorf("invalid board %q: %w", s, err)
	}
	return b, nil
}

// MustParseBoard is ParseBoard for literals known to be valid.
func MustParseBoard(s string) Board {
	b, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Board) W1() int { return b.pos[0] }
func (b Board) W2() int { return b.pos[1] }
func (b Board) B1() int { return b.pos[2] }
func (b Board) B2() int { return b.pos[3] }

// Position returns the square of token i (0..3, in encoding order)
func (b Board) Position(i int) int { return b.pos[i] }

// IsTerminal reports whether any token has reached its exit
func (b Board) IsTerminal() bool {
	return b.exitedCount(White) > 0 || b.exitedCount(Black) > 0
}

// String is the inverse of ParseBoard
func (b Board) String() string {
	buf := make([]byte, 4)
	for i, p := range b.pos {
		buf[i] = byte('0' + p)
	}
	return string(buf)
}

func (b Board) exited(i int) bool {
	return b.pos[i] == sideOf(i).Exit()
}

func (b Board) exitedCount(side Side) int {
	n := 0
	for _, i := range side.Tokens() {
		if b.exited(i) {
			n++
		}
	}
	return n
}

// occupant returns the index of the on-track token standing on square, or -1.
// Token skip is ignored.
func (b Board) occupant(square, skip int) int {
	for i, p := range b.pos {
		if i == skip || b.exited(i) {
			continue
		}
		if p == square {
			return i
		}
	}
	return -1
}

func (b Board) with(i, square int) Board {
	b.pos[i] = square
	return b
}

func sideOf(i int) Side {
	if i < 2 {
		return White
	}
	return Black
}
