package driver

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"leapfrog/experiments"
	"leapfrog/game"
	"leapfrog/meta"
	"leapfrog/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = "needs 3 args: [flags] <inputfile.txt> <outputfile.txt> <maxDepth>"

type Config struct {
	Input          string
	Output         string
	Depth          int
	Rules          game.Rules
	Evaluator      string
	Side           game.Side
	Pruning        bool
	Goroutines     int
	TerminalCutoff bool
}

// Main runs the command line and returns the process exit status. A wrong
// positional argument count prints usage and is not an error.
func Main(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("leapfrog", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rulesPath := fs.String("rules", "", "YAML file with rule variants")
	evaluator := fs.String("eval", "advancement", "Static evaluator: advancement or quadratic")
	side := fs.String("side", "white", "Side to move at the root")
	pruning := fs.Bool("prune", true, "Use alpha-beta pruning")
	goroutines := fs.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines searching root moves")
	terminalCutoff := fs.Bool("terminal-cutoff", false, "Stop searching below won boards")
	verbose := fs.Bool("v", false, "Debug logging")
	experiment := fs.String("experiment", "", "Run a self-play experiment instead: depth, pruning or mcts")
	games := fs.Int("games", meta.GAMES, "Games per experiment match-up")
	outDir := fs.String("out", "experiments", "Directory for experiment records")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	setupLogging(stderr, *verbose)

	rules := game.NewStandardRules()
	if *rulesPath != "" {
		loaded, err := game.LoadRules(*rulesPath)
		if err != nil {
			log.Error().Err(err).Msg("failed to load rules")
			return 1
		}
		rules = loaded
	}

	if *experiment != "" {
		if err := runExperiment(*experiment, *outDir, rules, *games); err != nil {
			log.Error().Err(err).Msg("experiment failed")
			return 1
		}
		return 0
	}

	if fs.NArg() != 3 {
		fmt.Fprintln(stdout, usage)
		return 0
	}

	depth, err := ParseDepth(fs.Arg(2))
	if err != nil {
		log.Error().Err(err).Msg("invalid arguments")
		return 1
	}
	rootSide, err := game.ParseSide(*side)
	if err != nil {
		log.Error().Err(err).Msg("invalid arguments")
		return 1
	}

	config := Config{
		Input:          fs.Arg(0),
		Output:         fs.Arg(1),
		Depth:          depth,
		Rules:          rules,
		Evaluator:      *evaluator,
		Side:           rootSide,
		Pruning:        *pruning,
		Goroutines:     *goroutines,
		TerminalCutoff: *terminalCutoff,
	}
	result, err := Run(config)
	if err != nil {
		log.Error().Err(err).Msg("search failed")
		return 1
	}
	Report(stdout, result)
	return 0
}

// Run reads the root board, searches it and writes the best board. Nothing
// is written when reading or validating the input fails.
func Run(config Config) (searcher.Result, error) {
	board, err := ReadBoard(config.Input)
	if err != nil {
		return searcher.Result{}, err
	}
	if err := board.CheckInvariant(); err != nil {
		log.Warn().Err(err).Msgf("root board %s has stacked tokens", board)
	}

	evaluate, err := config.Rules.Evaluator(config.Evaluator)
	if err != nil {
		return searcher.Result{}, err
	}

	options := []searcher.Option{
		searcher.WithRules(config.Rules),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithPruning(config.Pruning),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithSide(config.Side),
		searcher.WithMetrics(),
	}
	if config.TerminalCutoff {
		options = append(options, searcher.WithTerminalCutoff())
	}

	log.Debug().Msgf("searching %s to depth %d for %s under %s", board, config.Depth, config.Side, config.Rules)
	result := searcher.NewMinimax(options...).FindBestMove(board, config.Depth)

	if err := WriteBoard(config.Output, result.Board); err != nil {
		return searcher.Result{}, err
	}
	return result, nil
}

func runExperiment(name, outDir string, rules game.Rules, games int) error {
	var (
		dir string
		err error
	)
	switch name {
	case "depth":
		dir, err = experiments.RunDepthExperiment(outDir, rules, games)
	case "pruning":
		dir, err = experiments.RunPruningExperiment(outDir, rules, games)
	case "mcts":
		dir, err = experiments.RunMCTSExperiment(outDir, rules, games)
	default:
		return fmt.Errorf("unknown experiment %q", name)
	}
	if err != nil {
		return err
	}
	log.Info().Msgf("experiment records written to %s", dir)
	return nil
}

func setupLogging(w io.Writer, verbose bool) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
