// Command binpack2d solves a 2D bin packing problem read from a .bp2d
// file using either the genetic algorithm or tabu search metaheuristic
// over the LGFI placement engine, and writes the packed layout as JSON.
//
// Build:
//   go build -o binpack2d ./cmd/binpack2d
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/kdriggs/binpack2d/internal/bpio"
	"github.com/kdriggs/binpack2d/internal/engine"
	"github.com/kdriggs/binpack2d/internal/model"
	"github.com/kdriggs/binpack2d/internal/project"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "binpack2d:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	defaults := cfg.Defaults

	fs := flag.NewFlagSet("binpack2d", flag.ContinueOnError)
	input := fs.String("input", "", "path to a .bp2d input file (required)")
	output := fs.String("output", "", "path to write the solution JSON (required unless -compare)")
	algorithm := fs.String("algorithm", string(defaults.Algorithm), "metaheuristic to run: ga or tabu")
	populationSize := fs.Int("population-size", defaults.PopulationSize, "GA population size")
	generations := fs.Int("generations", defaults.Generations, "GA generation count")
	crossoverRate := fs.Float64("crossover-rate", defaults.CrossoverRate, "GA crossover rate in [0,1]")
	mutationRate := fs.Float64("mutation-rate", defaults.MutationRate, "GA mutation rate in [0,1]")
	mutationOperator := fs.String("mutation-operator", defaults.MutationOperator, "GA mutation operator: swap or rotate")
	iterations := fs.Int("iterations", defaults.Iterations, "tabu search iteration count")
	tabuListSize := fs.Int("tabu-size", defaults.TabuListSize, "tabu list capacity (must be < 3n)")
	kappa := fs.Float64("kappa", defaults.Kappa, "population generator bias exponent, >= 1")
	delta := fs.Float64("delta", defaults.Delta, "crossover partner-selection bias exponent, >= 1")
	guillotine := fs.Bool("guillotine", defaults.Guillotine, "restrict LGFI to guillotine-cuttable layouts")
	rotation := fs.Bool("rotation", defaults.Rotation, "allow items to be placed rotated")
	seed := fs.Int64("seed", defaults.Seed, "master RNG seed")
	workers := fs.Int("workers", defaults.Workers, "worker pool size, 0 means runtime.NumCPU()")
	timeout := fs.Duration("timeout", 0, "wall-clock budget for the solve, 0 means no limit")
	compare := fs.Bool("compare", false, "run a side-by-side scenario comparison instead of a single solve")
	saveDefaults := fs.Bool("save-defaults", false, "persist the resolved flags as the new config defaults")
	logFormat := fs.String("log-format", "text", "progress log format: text or json")
	logLevel := fs.String("log-level", "info", "progress log level: debug, info, warn, or error")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return fmt.Errorf("-input is required")
	}
	if !*compare && *output == "" {
		return fmt.Errorf("-output is required unless -compare is set")
	}

	logger := newLogger(*logFormat, *logLevel)

	params := model.RunParams{
		Algorithm:        model.Algorithm(*algorithm),
		Guillotine:       *guillotine,
		Rotation:         *rotation,
		Kappa:            *kappa,
		Delta:            *delta,
		Seed:             *seed,
		Workers:          *workers,
		PopulationSize:   *populationSize,
		Generations:      *generations,
		CrossoverRate:    *crossoverRate,
		MutationRate:     *mutationRate,
		MutationOperator: *mutationOperator,
		Iterations:       *iterations,
		TabuListSize:     *tabuListSize,
	}

	problem, err := bpio.ReadBP2D(*input)
	if err != nil {
		return err
	}
	params.BinWidth = problem.BinWidth
	params.BinHeight = problem.BinHeight

	if err := params.Validate(len(problem.Items)); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	if err := engine.CheckFeasible(problem.Items, params.BinWidth, params.BinHeight, params.Rotation); err != nil {
		return err
	}

	if *saveDefaults {
		if err := project.SaveAppConfig(project.DefaultConfigPath(), model.AppConfig{Defaults: params}); err != nil {
			return fmt.Errorf("saving defaults: %w", err)
		}
		logger.Info("saved defaults", "path", project.DefaultConfigPath())
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if *timeout > 0 {
		var timeoutCancel context.CancelFunc
		ctx, timeoutCancel = context.WithTimeout(ctx, *timeout)
		defer timeoutCancel()
	}

	rng := rand.New(rand.NewSource(params.Seed))
	started := time.Now()

	if *compare {
		return runCompare(ctx, rng, problem.Items, params, logger)
	}

	result := solve(ctx, rng, problem.Items, params, logger)
	finished := time.Now()

	sol := model.FromBins(result.Bins)
	if err := bpio.WriteSolution(*output, sol); err != nil {
		return err
	}

	record := model.RunRecord{
		ID:          uuid.New().String(),
		StartedAt:   started,
		FinishedAt:  finished,
		Params:      params,
		BinCount:    len(result.Bins),
		BestFitness: result.BestFitness,
		InputPath:   *input,
		OutputPath:  *output,
	}
	if err := project.AppendRunRecord(project.DefaultHistoryPath(), record); err != nil {
		logger.Warn("failed to append run history", "error", err)
	}

	logger.Info("solve complete",
		"algorithm", params.Algorithm,
		"bins", len(result.Bins),
		"best_fitness", result.BestFitness,
		"duration", finished.Sub(started),
	)
	return nil
}

func solve(ctx context.Context, rng *rand.Rand, items []model.Item, params model.RunParams, logger *slog.Logger) model.RunResult {
	if params.Algorithm == model.AlgorithmTabu {
		return engine.RunTabuSearch(ctx, rng, items, params, logger)
	}
	return engine.RunGA(ctx, rng, items, params, logger)
}

func runCompare(ctx context.Context, rng *rand.Rand, items []model.Item, base model.RunParams, logger *slog.Logger) error {
	scenarios := engine.BuildDefaultScenarios(base)
	results := engine.CompareScenarios(ctx, rng, items, scenarios, logger)

	t := table.NewWriter()
	t.AppendHeader(table.Row{"scenario", "algorithm", "bins", "fitness", "duration"})
	for _, r := range results {
		t.AppendRow(table.Row{
			r.Scenario.Name,
			r.Scenario.Params.Algorithm,
			r.BinCount,
			fmt.Sprintf("%.4f", r.Result.BestFitness),
			r.Duration.Round(time.Millisecond),
		})
	}
	fmt.Println(t.Render())
	return nil
}

func newLogger(format, level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
