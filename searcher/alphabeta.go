package searcher

import "leapfrog/game"

// alphaBeta is fail-soft: it returns the best value found among the children
// searched before the cut.
func (m *Minimax) alphaBeta(board game.Board, depth, alpha, beta int, side game.Side, leaves *int) int {
	children := m.children(board, depth, side)
	if len(children) == 0 {
		*leaves++
		return m.evaluate(board)
	}

	if side == game.White {
		// White to move - maximise with beta cut-off
		best := NegInf
		for _, child := range children {
			value := m.alphaBeta(child, depth-1, alpha, beta, game.Black, leaves)
			best = max(best, value)
			alpha = max(alpha, value)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	// Black to move - minimise with alpha cut-off
	best := Inf
	for _, child := range children {
		value := m.alphaBeta(child, depth-1, alpha, beta, game.White, leaves)
		best = min(best, value)
		beta = min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return best
}

// minimax visits the whole tree
func (m *Minimax) minimax(board game.Board, depth int, side game.Side, leaves *int) int {
	children := m.children(board, depth, side)
	if len(children) == 0 {
		*leaves++
		return m.evaluate(board)
	}

	if side == game.White {
		best := NegInf
		for _, child := range children {
			best = max(best, m.minimax(child, depth-1, game.Black, leaves))
		}
		return best
	}

	best := Inf
	for _, child := range children {
		best = min(best, m.minimax(child, depth-1, game.White, leaves))
	}
	return best
}
