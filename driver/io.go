package driver

import (
	"bufio"
	"errors"
	"fmt"
	"leapfrog/game"
	"os"
	"strconv"
	"strings"
)

var ErrInvalidDepth = errors.New("depth must be a non-negative integer")

// ReadBoard decodes the first line of the file at path.
func ReadBoard(path string) (game.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return game.Board{}, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return game.Board{}, fmt.Errorf("failed to read input: %w", err)
		}
		return game.Board{}, fmt.Errorf("%w: input %s is empty", game.ErrMalformedBoard, path)
	}
	return game.ParseBoard(strings.TrimSpace(scanner.Text()))
}

// WriteBoard writes the board encoding and a newline, replacing the file.
func WriteBoard(path string, board game.Board) error {
	if err := os.WriteFile(path, []byte(board.String()+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func ParseDepth(s string) (int, error) {
	depth, err := strconv.Atoi(s)
	if err != nil || depth < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDepth, s)
	}
	return depth, nil
}
