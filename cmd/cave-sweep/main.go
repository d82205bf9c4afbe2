// Command cave-sweep runs the cave automaton over seeded noise for every
// neighbourhood radius and threshold and ranks the rules by how close the
// resulting floor fraction lands to a target.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/pflag"

	"mapsketch/internal/cave"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("cave-sweep", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := options{}
	fs.IntVar(&opts.Cols, "cols", 64, "grid width in squares")
	fs.IntVar(&opts.Rows, "rows", 48, "grid height in squares")
	fs.Float64Var(&opts.WallChance, "wall-chance", 0.45, "chance a noise square starts as wall")
	fs.IntVar(&opts.Generations, "generations", 5, "generations to run per grid")
	fs.IntVar(&opts.Seeds, "seeds", 8, "noise grids per scenario")
	fs.Int64Var(&opts.BaseSeed, "seed", 1337, "seed of the first noise grid")
	fs.IntVar(&opts.MinSize, "min-size", 1, "smallest neighbourhood radius")
	fs.IntVar(&opts.MaxSize, "max-size", 2, "largest neighbourhood radius")
	fs.IntVar(&opts.Workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	fs.Float64Var(&opts.Target, "target", 0.55, "floor fraction to rank against")
	top := fs.Int("top", 10, "results to print")
	baseline := fs.StringToString("baseline", map[string]string{"size": "1", "threshold": "5"}, "rule whose rank is reported")
	verbose := fs.BoolP("verbose", "v", false, "log every scenario")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := opts.validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	n := len(scenarios(opts.MinSize, opts.MaxSize))
	logger.Info("sweeping", "scenarios", n, "seeds", opts.Seeds, "workers", opts.Workers,
		"grid", fmt.Sprintf("%dx%d", opts.Cols, opts.Rows))
	start := time.Now()
	results, err := sweep(ctx, opts, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Top %d of %d rules for floor fraction %.2f (elapsed %s):\n",
		min(*top, len(results)), len(results), opts.Target, time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		fmt.Fprintf(stdout, "%2d) %s floor=%.3f±%.3f settled=%d/%d\n",
			i+1, res.scenario, res.floorMean, res.floorStd, res.settled, opts.Seeds)
	}

	rule := cave.FromMap(*baseline)
	if rank, res, ok := rankOf(results, rule); ok {
		fmt.Fprintf(stdout, "\nBaseline %s ranks %d: floor=%.3f±%.3f\n", res.scenario, rank, res.floorMean, res.floorStd)
	} else {
		fmt.Fprintf(stdout, "\nBaseline size=%d threshold=%d was not swept\n", rule.NeighborhoodSize, rule.NeighborhoodThreshold)
	}
	return nil
}

// rankOf finds rule among the ranked results. Ranks start at 1.
func rankOf(results []scenarioResult, rule cave.Config) (int, scenarioResult, bool) {
	for i, res := range results {
		if res.size == rule.NeighborhoodSize && res.threshold == rule.NeighborhoodThreshold {
			return i + 1, res, true
		}
	}
	return 0, scenarioResult{}, false
}

func (o options) validate() error {
	switch {
	case o.Cols < 1 || o.Rows < 1:
		return errors.New("grid must be at least 1x1")
	case o.Seeds < 1:
		return errors.New("need at least one seed")
	case o.MinSize < 1 || o.MaxSize < o.MinSize:
		return fmt.Errorf("invalid radius range %d..%d", o.MinSize, o.MaxSize)
	case o.WallChance < 0 || o.WallChance > 1:
		return fmt.Errorf("wall chance %.2f outside [0, 1]", o.WallChance)
	}
	return nil
}
