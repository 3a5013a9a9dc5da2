// Command rastar plans collision-free paths for a rectangular robot over a
// map of rectangular obstacles, using the parallel speculation-augmented A*
// engine in package rastar. It is the thin CLI wrapper spec.md §1 describes
// as out of the core's scope: argument parsing, random test-point
// generation, map-file loading and the output sink all live here, not in
// the engine itself.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kaidalo/rastar"
	"github.com/kaidalo/rastar/grid"
	"github.com/kaidalo/rastar/internal"
)

const randomPointAttempts = 1000

func newLogger() *zap.Logger {
	logger, err := zap.Config{
		Level:             zap.NewAtomicLevelAt(zap.InfoLevel),
		Encoding:          "console",
		DisableStacktrace: true,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
	}.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "rastar: failed to initialize logger:", err)
		os.Exit(1)
	}

	return logger
}

type config struct {
	mapPath       string
	numTests      int
	weight        float64
	threads       int
	maxExpansions uint64
	speculation   bool
	output        string
	robotLength   int
	robotWidth    int
	seed          int64
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("rastar", flag.ContinueOnError)
	cfg := config{}
	fs.StringVar(&cfg.mapPath, "map", "", "input map file (required)")
	fs.IntVar(&cfg.numTests, "num-tests", 10, "number of random start/goal pairs to plan")
	fs.Float64Var(&cfg.weight, "weight", 1.0, "heuristic weight")
	fs.IntVar(&cfg.threads, "threads", 1, "worker pool size")
	maxExps := fs.Uint64("max-exps", 10000, "expansion cap per plan")
	fs.BoolVar(&cfg.speculation, "speculation", false, "enable speculative prefetch")
	fs.StringVar(&cfg.output, "output", "", "output path (default: discard)")
	fs.IntVar(&cfg.robotLength, "robot-length", 2, "robot footprint extent along x")
	fs.IntVar(&cfg.robotWidth, "robot-width", 2, "robot footprint extent along y")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed (0 means seed from current time)")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	cfg.maxExpansions = *maxExps
	if cfg.mapPath == "" {
		return config{}, fmt.Errorf("rastar: --map is required")
	}

	return cfg, nil
}

// openOutput returns the writer trial results are appended to and a close
// function that is always safe to call. An empty path discards all output.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { f.Close() }, nil
}

func main() {
	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		logger.Fatal("invalid arguments", zap.Error(err))
	}

	raw, err := grid.ParseFile(cfg.mapPath)
	if err != nil {
		logger.Fatal("failed to parse map file", zap.String("path", cfg.mapPath), zap.Error(err))
	}

	m, err := grid.New(raw.Height, raw.Width, cfg.robotLength, cfg.robotWidth, raw.Obstacles)
	if err != nil {
		logger.Fatal("invalid map", zap.Error(err))
	}
	logger.Info("loaded map",
		zap.Int("height", m.Height()),
		zap.Int("width", m.Width()),
		zap.Int("obstacles", len(raw.Obstacles)),
	)

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("running trials", zap.Int("num_tests", cfg.numTests), zap.Int64("seed", seed))

	out, closeOut, err := openOutput(cfg.output)
	if err != nil {
		logger.Fatal("failed to open output", zap.String("path", cfg.output), zap.Error(err))
	}
	defer closeOut()

	if err := runTrials(context.Background(), cfg, seed, m, out, logger); err != nil {
		logger.Fatal("trial run failed", zap.Error(err))
	}
}

// runTrials plans cfg.numTests random start/goal pairs concurrently with
// errgroup.WithContext (see niceyeti-tabular/tabular/server/fastview/
// client.go): every trial runs in its own goroutine at once, with no limit
// on concurrency, and the first trial error cancels the shared context.
// Each trial gets its own Planner (and so its own worker pool and per-cell
// tables) over the shared, read-only grid.Map.
func runTrials(ctx context.Context, cfg config, seed int64, m *grid.Map, out io.Writer, logger *zap.Logger) error {
	group, gctx := errgroup.WithContext(ctx)
	var writeMu sync.Mutex

	for i := 0; i < cfg.numTests; i++ {
		i := i
		group.Go(func() error {
			trialRand := rand.New(rand.NewSource(seed + int64(i)))

			sx, sy, err := internal.RandomFeasiblePoint(trialRand, m, randomPointAttempts)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			gx, gy, err := internal.RandomFeasiblePoint(trialRand, m, randomPointAttempts)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}

			planner := rastar.New(m,
				rastar.WithWeight(cfg.weight),
				rastar.WithThreads(cfg.threads),
				rastar.WithSpeculation(cfg.speculation),
				rastar.WithExpansionCap(cfg.maxExpansions),
			)
			defer planner.Close()

			res, err := planner.Plan(gctx, rastar.Point{X: sx, Y: sy}, rastar.Point{X: gx, Y: gy})
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}

			writeMu.Lock()
			fmt.Fprintln(out, formatTrial(sx, sy, gx, gy, res))
			writeMu.Unlock()

			logger.Info("trial complete",
				zap.Int("trial", i),
				zap.Bool("reached", res.Reached),
				zap.Uint64("expansions", res.Expansions),
				zap.Float64("cost", res.Cost),
			)

			return nil
		})
	}

	return group.Wait()
}

func formatTrial(sx, sy, gx, gy int, res rastar.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(%d,%d) -> (%d,%d) : ", sx, sy, gx, gy)
	if !res.Reached {
		fmt.Fprintf(&sb, "UNREACHED (%d expansions)", res.Expansions)
		return sb.String()
	}
	for j, d := range res.Path {
		if j > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", d)
	}

	return sb.String()
}
