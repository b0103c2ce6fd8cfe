package game

// moveRule tries to move one token. ok is false when the rule does not apply
// and the next rule in the ladder should be tried.
type moveRule func(r Rules, b Board, token int) (m Move, ok bool)

// Home refuges for a displaced token, in preference order
var (
	blackHome = []int{8, 7, 6, 5}
	whiteHome = []int{1, 2, 3, 4}
)

// ladders[n] is the ordered rule list for a hop limit of n
var ladders [MaxHop + 1][]moveRule

func init() {
	for limit := range ladders {
		ladder := []moveRule{exitRule, stepRule}
		for distance := MinHop; distance <= limit; distance++ {
			ladder = append(ladder, hopRule(distance))
		}
		ladders[limit] = ladder
	}
}

// GenerateMoves returns the successors of b under the standard rules.
func GenerateMoves(b Board, side Side) []Board {
	return NewStandardRules().Successors(b, side)
}

// Moves returns side's legal moves, first token before second. Each token
// contributes at most one move: the first rule of the ladder that applies.
func (r Rules) Moves(b Board, side Side) []Move {
	ladder := r.ladder()
	moves := make([]Move, 0, 2)
	for _, token := range side.Tokens() {
		if b.exited(token) {
			continue
		}
		for _, rule := range ladder {
			if m, ok := rule(r, b, token); ok {
				moves = append(moves, m)
				break
			}
		}
	}
	return moves
}

func (r Rules) Successors(b Board, side Side) []Board {
	moves := r.Moves(b, side)
	boards := make([]Board, len(moves))
	for i, m := range moves {
		boards[i] = m.Board
	}
	return boards
}

func (r Rules) ladder() []moveRule {
	limit := r.MaxHop
	if limit < 0 {
		limit = 0
	} else if limit > MaxHop {
		limit = MaxHop
	}
	return ladders[limit]
}

// A token one square short of its exit may always leave the track
func exitRule(_ Rules, b Board, token int) (Move, bool) {
	side := sideOf(token)
	from := b.pos[token]
	if from+side.Direction() != side.Exit() {
		return Move{}, false
	}
	return newMove(ExitMove, b, token, side.Exit()), true
}

func stepRule(_ Rules, b Board, token int) (Move, bool) {
	side := sideOf(token)
	to := b.pos[token] + side.Direction()
	if b.occupant(to, token) >= 0 {
		return Move{}, false
	}
	return newMove(StepMove, b, token, to), true
}

// hopRule lands distance squares ahead on a free square or the exit. A hop of
// two over an opponent displaces it; longer hops never displace.
func hopRule(distance int) moveRule {
	return func(r Rules, b Board, token int) (Move, bool) {
		side := sideOf(token)
		from := b.pos[token]
		to := from + distance*side.Direction()
		if beyondExit(side, to) {
			return Move{}, false
		}
		if to != side.Exit() && b.occupant(to, token) >= 0 {
			return Move{}, false
		}

		m := newMove(HopMove, b, token, to)
		if distance != MinHop {
			return m, true
		}
		over := b.occupant(from+side.Direction(), token)
		if over < 0 || sideOf(over) == side {
			return m, true
		}
		m.Kind = BumpMove
		m.Bumped = over
		m.BumpedFrom = b.pos[over]
		m.BumpedTo = r.displace(m.Board, over)
		m.Board = m.Board.with(over, m.BumpedTo)
		return m, true
	}
}

// displace finds the refuge for token on b, which already has the hopping
// token on its landing square. The token stays put when no refuge is free.
func (r Rules) displace(b Board, token int) int {
	for _, square := range r.refuges(sideOf(token), b.pos[token]) {
		if b.occupant(square, token) < 0 {
			return square
		}
	}
	return b.pos[token]
}

func (r Rules) refuges(side Side, from int) []int {
	if r.Displacement == DisplaceScan {
		// walk back from the hopped square toward the side's start
		var squares []int
		for sq := from - side.Direction(); sq >= firstSquare && sq <= lastSquare; sq -= side.Direction() {
			squares = append(squares, sq)
		}
		return squares
	}
	if side == White {
		return whiteHome
	}
	return blackHome
}

func newMove(kind MoveKind, b Board, token, to int) Move {
	return Move{
		Kind:   kind,
		Side:   sideOf(token),
		Token:  token,
		From:   b.pos[token],
		To:     to,
		Bumped: -1,
		Board:  b.with(token, to),
	}
}

func beyondExit(side Side, square int) bool {
	if side == White {
		return square > WhiteExit
	}
	return square < BlackExit
}
