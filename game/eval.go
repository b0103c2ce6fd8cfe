package game

import "fmt"

const (
	WinScore          = 100
	QuadraticWinScore = 1000

	// balanced offset so that the start position 1188 scores zero
	advancementOffset = 18
)

// Evaluate scores a board from White's perspective: positive favours White.
type Evaluate func(Board) int

// EvaluateAdvancement is the standard evaluator.
func EvaluateAdvancement(b Board) int {
	return NewStandardRules().Advancement()(b)
}

// Advancement returns ±WinScore on a won board, otherwise the sum of the
// four positions offset to zero at the start position. White advancing
// raises the sum; Black advancing lowers it.
func (r Rules) Advancement() Evaluate {
	return func(b Board) int {
		if winner, over := r.Winner(b); over {
			return winScore(winner, WinScore)
		}
		return b.pos[0] + b.pos[1] + b.pos[2] + b.pos[3] - advancementOffset
	}
}

// Quadratic rewards advanced tokens more than linearly: the squared distance
// White has covered minus the squared distance Black has covered.
func (r Rules) Quadratic() Evaluate {
	return func(b Board) int {
		if winner, over := r.Winner(b); over {
			return winScore(winner, QuadraticWinScore)
		}
		white := b.pos[0]*b.pos[0] + b.pos[1]*b.pos[1]
		black1 := lastSquare - b.pos[2]
		black2 := lastSquare - b.pos[3]
		return white - black1*black1 - black2*black2
	}
}

// Evaluator looks an evaluator up by name
func (r Rules) Evaluator(name string) (Evaluate, error) {
	switch name {
	case "", "advancement":
		return r.Advancement(), nil
	case "quadratic":
		return r.Quadratic(), nil
	}
	return nil, fmt.Errorf("unknown evaluator %q", name)
}

func winScore(winner Side, score int) int {
	if winner == White {
		return score
	}
	return -score
}
