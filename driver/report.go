package driver

import (
	"fmt"
	"io"
	"leapfrog/searcher"

	"github.com/muesli/termenv"
)

// Report prints the best board, leaf count and minimax estimate, one per line.
// Values are highlighted when w is a colour terminal.
func Report(w io.Writer, result searcher.Result) {
	out := termenv.NewOutput(w)
	highlight := func(s string) string {
		return out.String(s).Bold().Foreground(out.Color("6")).String()
	}

	fmt.Fprintf(w, "Board Position: %s\n", highlight(result.Board.String()))
	fmt.Fprintf(w, "Positions evaluated by static estimation: %s.\n", highlight(fmt.Sprint(result.Leaves)))
	fmt.Fprintf(w, "MINIMAX estimate: %s.\n", highlight(fmt.Sprint(result.Score)))
}
