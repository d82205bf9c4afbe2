package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"mapsketch/internal/cave"
	"mapsketch/internal/core"
	"mapsketch/internal/palette"
)

// options describes one sweep over neighbourhood radius and threshold.
type options struct {
	Cols, Rows  int
	WallChance  float64
	Generations int
	Seeds       int
	BaseSeed    int64
	MinSize     int
	MaxSize     int
	Workers     int
	Target      float64
}

type scenario struct {
	size      int
	threshold int
}

func (s scenario) String() string {
	return fmt.Sprintf("size=%d threshold=%d", s.size, s.threshold)
}

type scenarioResult struct {
	scenario
	floorMean float64
	floorStd  float64
	// settled counts seeds whose last generation changed nothing.
	settled int
}

// scenarios lists every threshold from 1 to the largest reachable count for
// each radius.
func scenarios(minSize, maxSize int) []scenario {
	var out []scenario
	for size := minSize; size <= maxSize; size++ {
		for threshold := 1; threshold <= cave.MaxThreshold(size); threshold++ {
			out = append(out, scenario{size: size, threshold: threshold})
		}
	}
	return out
}

// sweep runs every scenario on opts.Seeds noise grids and returns the
// results ordered by closeness of the mean floor fraction to opts.Target.
func sweep(ctx context.Context, opts options, logger *slog.Logger) ([]scenarioResult, error) {
	sets := scenarios(opts.MinSize, opts.MaxSize)
	results := make([]scenarioResult, len(sets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.Workers))
	for i, sc := range sets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := runScenario(opts, sc)
			if err != nil {
				return fmt.Errorf("%s: %w", sc, err)
			}
			results[i] = res
			logger.Debug("scenario done", "size", sc.size, "threshold", sc.threshold,
				"floor_mean", res.floorMean, "floor_std", res.floorStd)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return math.Abs(results[i].floorMean-opts.Target) < math.Abs(results[j].floorMean-opts.Target)
	})
	return results, nil
}

func runScenario(opts options, sc scenario) (scenarioResult, error) {
	p := palette.DefaultCave()
	fractions := make([]float64, 0, opts.Seeds)
	settled := 0
	for s := 0; s < opts.Seeds; s++ {
		g := noiseGrid(opts.Cols, opts.Rows, opts.WallChance, opts.BaseSeed+int64(s), p)

		ca := cave.New(sc.size, sc.threshold)
		ca.SetPalette(p)
		ca.SetGrid(g)
		var before []core.RGB
		for gen := 0; gen < opts.Generations; gen++ {
			before = g.Colors()
			if !ca.RunGeneration() {
				return scenarioResult{}, cave.ErrNoGrid
			}
		}
		if opts.Generations > 0 && slices.Equal(before, g.Colors()) {
			settled++
		}
		fractions = append(fractions, floorFraction(g, p))
	}

	mean, std := stat.MeanStdDev(fractions, nil)
	if len(fractions) < 2 {
		std = 0
	}
	return scenarioResult{scenario: sc, floorMean: mean, floorStd: std, settled: settled}, nil
}

// noiseGrid fills a grid with walls at the given chance and floor elsewhere.
func noiseGrid(cols, rows int, wallChance float64, seed int64, p palette.Cave) *core.Grid {
	g := core.UniformGrid(cols, rows, 1, p.Floor)
	rng := core.NewRNG(seed)
	g.Each(func(_ int, sq *core.Square) {
		if rng.Float64() < wallChance {
			sq.SetColor(p.Wall)
		}
	})
	return g
}

func floorFraction(g *core.Grid, p palette.Cave) float64 {
	if g.Len() == 0 {
		return 0
	}
	floors := 0
	for _, c := range g.Colors() {
		if p.Kind(c) == palette.CaveFloor {
			floors++
		}
	}
	return float64(floors) / float64(g.Len())
}
