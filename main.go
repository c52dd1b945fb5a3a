package main

import (
	"context"
	"flag"
	"fmt"
	"isolation/agent"
	"isolation/board"
	"isolation/config"
	"isolation/game"
	"isolation/metrics"
	"isolation/searcher"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var evaluations = map[string]game.Evaluate{
	"mobility": game.MobilityScore,
	"improved": game.ImprovedScore,
	"open":     game.OpenMoveScore,
	"null":     game.NullScore,
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML player config")
	budget := flag.Duration("budget", 150*time.Millisecond, "Time budget for the move")
	width := flag.Int("width", 7, "Board width")
	height := flag.Int("height", 7, "Board height")
	openings := flag.Int("openings", 2, "Number of random plies played before searching")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for the random opening plies")
	score := flag.String("score", "mobility", "Evaluation function: mobility, improved, open or null")
	metricsDir := flag.String("metrics-dir", "", "Directory to write search metrics to")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(*configPath, *budget, *width, *height, *openings, *seed, *score, *metricsDir); err != nil {
		log.Fatal().Err(err).Msg("failed to select a move")
	}
}

func run(configPath string, budget time.Duration, width, height, openings int, seed uint64, score, metricsDir string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	evaluate, ok := evaluations[score]
	if !ok {
		return fmt.Errorf("unknown evaluation function %q", score)
	}

	options, err := cfg.Options()
	if err != nil {
		return err
	}
	collector := metrics.NewCollector()
	options = append(options, agent.WithEvaluationFn(evaluate), agent.WithMetrics(collector))
	player, err := agent.NewPlayer(options...)
	if err != nil {
		return err
	}

	b, err := board.New(width, height)
	if err != nil {
		return err
	}
	if b, err = playOpenings(b, openings, rand.New(rand.NewSource(seed))); err != nil {
		return err
	}
	log.Info().Msgf("player %d to move on\n%s", b.ActivePlayer(), b)

	legalMoves := b.LegalMoves(b.ActivePlayer())
	move := player.SelectMove(context.Background(), b, legalMoves, searcher.Countdown(budget))
	metric := player.LastMetrics()
	log.Info().
		Str("method", metric.Method).
		Int("depth", metric.Depth).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Bool("timed_out", metric.TimedOut).
		Dur("duration", metric.Duration).
		Msgf("player %d chose move %s", b.ActivePlayer(), move)

	if metricsDir == "" {
		return nil
	}
	writer, err := metrics.NewWriter(metricsDir)
	if err != nil {
		return err
	}
	record := metrics.SearchRecord{
		Step:         b.MoveCount() + 1,
		Player:       int(b.ActivePlayer()),
		Move:         move.String(),
		SearchMetric: metric,
	}
	if err := writer.WriteSearchRecords([]metrics.SearchRecord{record}); err != nil {
		return err
	}
	log.Info().Msgf("wrote search metrics to %s", writer.Dir())
	return nil
}

// playOpenings plays random legal moves, stopping early if the game ends
func playOpenings(b *board.Board, plies int, rng *rand.Rand) (*board.Board, error) {
	for i := 0; i < plies; i++ {
		moves := b.LegalMoves(b.ActivePlayer())
		if len(moves) == 0 {
			break
		}
		next, err := b.Play(moves[rng.Intn(len(moves))])
		if err != nil {
			return nil, err
		}
		b = next
	}
	return b, nil
}
