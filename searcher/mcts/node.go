package mcts

import (
	"leapfrog/game"
	"sync"
)

// node is a board in the search tree. Rewards are kept from the perspective
// of the side that moved into the node, so a parent maximises over them.
type node struct {
	sync.RWMutex
	parent   *node
	board    game.Board
	side     game.Side // side to move on board
	moves    []game.Board
	children []*node
	rewards  float64
	visits   float64
}

// newNode expands nothing; a board that is won or blocked keeps no moves.
func newNode(parent *node, rules game.Rules, board game.Board, side game.Side) *node {
	var moves []game.Board
	if !rules.IsTerminal(board) {
		moves = rules.Successors(board, side)
	}
	return &node{
		parent:   parent,
		board:    board,
		side:     side,
		moves:    moves,
		children: make([]*node, 0, len(moves)),
	}
}

// selectOrExpand returns the node itself when it is terminal, a new child
// (expanded=true) while moves remain unexplored, otherwise the child with the
// best UCT value. Any returned child carries a virtual loss until backup.
func (n *node) selectOrExpand(rules game.Rules) (child *node, expanded bool) {
	n.Lock()
	defer n.Unlock()

	if len(n.moves) == 0 { // Terminal node
		return n, false
	}

	if len(n.moves) > len(n.children) { // Expandable node
		child = newNode(n, rules, n.moves[len(n.children)], n.side.Opponent())
		n.children = append(n.children, child)
		child.applyLoss()
		return child, true
	}

	// Fully expanded node
	child = n.children[n.pickChild()]
	child.applyLoss()
	return child, false
}

func (n *node) pickChild() int {
	total := 0.0
	for _, child := range n.children {
		total += child.visitCount()
	}
	policy := newUCT(CSquared, total)

	best := 0
	bestScore := policy.evaluate(n.children[0].stats())
	for i, child := range n.children[1:] {
		if score := policy.evaluate(child.stats()); score > bestScore {
			bestScore = score
			best = i + 1
		}
	}
	return best
}

func (n *node) applyLoss() {
	n.Lock()
	defer n.Unlock()

	n.rewards += Loss
	n.visits++
}

func (n *node) reverseLoss() {
	n.rewards -= Loss
	n.visits--
}

// backup credits reward, given from White's perspective, to the side that
// moved into n and returns the parent.
func (n *node) backup(reward float64) *node {
	n.Lock()
	defer n.Unlock()

	if n.parent != nil { // Non-root node
		n.reverseLoss()
	}

	if n.side.Opponent() == game.White {
		n.rewards += reward
	} else {
		n.rewards -= reward
	}
	n.visits++

	return n.parent
}

func (n *node) stats() (rewards, visits float64) {
	n.RLock()
	defer n.RUnlock()

	return n.rewards, n.visits
}

func (n *node) visitCount() float64 {
	n.RLock()
	defer n.RUnlock()

	return n.visits
}

// bestMove returns the most visited child's board, the first one on ties
func (n *node) bestMove() (game.Board, bool) {
	n.RLock()
	defer n.RUnlock()

	if len(n.children) == 0 {
		return n.board, false
	}

	best := n.children[0]
	for _, child := range n.children[1:] {
		if child.visitCount() > best.visitCount() {
			best = child
		}
	}
	return best.board, true
}
