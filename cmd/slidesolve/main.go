// Command slidesolve drives the search core from the shell: solve a single
// scrambled or file-loaded puzzle, or benchmark A* against IDA* over a batch
// of random instances.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"slidesolve/config"
	"slidesolve/generator"
	"slidesolve/heuristic"
	"slidesolve/loader"
	"slidesolve/puzzle"
	"slidesolve/search"
)

type solveCmd struct {
	Size       int    `help:"Grid dimension: 3 or 4." default:"3"`
	Algo       string `help:"Searcher to run." enum:"astar,ida" default:"astar"`
	Heuristic  string `help:"Heuristic function." enum:"manhattan,misplaced" default:"manhattan"`
	Steps      int    `help:"Random-walk scramble length (ignored when --file is set)." default:"20"`
	Seed       *int64 `help:"Scramble RNG seed; omit for a time-seeded scramble."`
	File       string `help:"Korf-format problem file to load instead of scrambling." type:"existingfile"`
	Index      int    `help:"Zero-based problem index within --file." default:"0"`
	ConfigPath string `name:"config" help:"YAML file overriding bucket bounds / IDA* depth caps."`
}

func (c *solveCmd) Run(log *zap.Logger) error {
	var start puzzle.Board
	if c.File != "" {
		boards, err := loader.LoadKorfProblems(c.File)
		if err != nil {
			return errors.Wrap(err, "load problem file")
		}
		if c.Index < 0 || c.Index >= len(boards) {
			return errors.Errorf("problem index %d out of range [0,%d)", c.Index, len(boards))
		}
		start = boards[c.Index]
		c.Size = start.Size()
	} else {
		if c.Size != 3 && c.Size != 4 {
			return errors.Errorf("unsupported size %d: must be 3 or 4", c.Size)
		}
		start = generator.RandomPuzzle(c.Size, c.Steps, c.Seed, true)
	}
	goal := puzzle.Goal(c.Size)

	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	opts := []search.Option{search.WithConfig(cfg)}
	if c.Heuristic == "misplaced" {
		table := heuristic.ForSize(c.Size)
		opts = append(opts, search.WithHeuristic(table.Misplaced))
	}

	log.Info("solving", zap.Int("size", c.Size), zap.String("algo", c.Algo), zap.String("heuristic", c.Heuristic))

	var res search.Result
	switch c.Algo {
	case "ida":
		res, err = search.IDAStar(start, goal, opts...)
	default:
		res, err = search.AStar(start, goal, opts...)
	}
	if err != nil {
		return errors.Wrap(err, "search")
	}

	if res.Path == nil {
		fmt.Printf("no solution (generated=%s, elapsed=%s)\n",
			humanize.Comma(int64(res.Generated)), time.Duration(res.ElapsedMS)*time.Millisecond)
		return nil
	}

	fmt.Printf("path_length=%d generated=%s elapsed_ms=%d\n",
		len(res.Path), humanize.Comma(int64(res.Generated)), res.ElapsedMS)
	for i, m := range res.Path {
		fmt.Printf("%3d: %s\n", i+1, m)
	}
	return nil
}

type benchCmd struct {
	Size       int    `help:"Grid dimension: 3 or 4." default:"3"`
	Count      int    `help:"Number of random instances to run." default:"20"`
	Steps      int    `help:"Scramble length per instance." default:"20"`
	Seed       *int64 `help:"Base RNG seed; each instance perturbs it by its index."`
	ConfigPath string `name:"config" help:"YAML file overriding bucket bounds / IDA* depth caps."`
}

func (c *benchCmd) Run(log *zap.Logger) error {
	if c.Size != 3 && c.Size != 4 {
		return errors.Errorf("unsupported size %d: must be 3 or 4", c.Size)
	}
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	goal := puzzle.Goal(c.Size)

	var totalGenA, totalGenI, totalMS int64
	solved := 0
	for i := 0; i < c.Count; i++ {
		var seed *int64
		if c.Seed != nil {
			s := *c.Seed + int64(i)
			seed = &s
		}
		start := generator.RandomPuzzle(c.Size, c.Steps, seed, true)

		resA, err := search.AStar(start, goal, search.WithConfig(cfg))
		if err != nil {
			return errors.Wrap(err, "a-star")
		}
		resI, err := search.IDAStar(start, goal, search.WithConfig(cfg))
		if err != nil {
			return errors.Wrap(err, "ida-star")
		}
		if resA.Path == nil {
			log.Warn("instance unsolvable", zap.Int("index", i))
			continue
		}
		if len(resA.Path) != len(resI.Path) {
			log.Warn("optimal length mismatch", zap.Int("index", i),
				zap.Int("astar_len", len(resA.Path)), zap.Int("ida_len", len(resI.Path)))
		}
		solved++
		totalGenA += int64(resA.Generated)
		totalGenI += int64(resI.Generated)
		totalMS += resA.ElapsedMS + resI.ElapsedMS
	}

	fmt.Printf("solved=%d/%d total_generated_astar=%s total_generated_ida=%s total_elapsed=%s\n",
		solved, c.Count, humanize.Comma(totalGenA), humanize.Comma(totalGenI),
		time.Duration(totalMS)*time.Millisecond)
	return nil
}

var cli struct {
	Solve solveCmd `cmd:"" help:"Solve a single scrambled or file-loaded puzzle."`
	Bench benchCmd `cmd:"" help:"Benchmark A* and IDA* over a batch of random instances."`
}

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init failed:", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	ctx := kong.Parse(&cli, kong.Name("slidesolve"),
		kong.Description("Sliding-tile puzzle solver: A* and IDA* over the 8- and 15-puzzle."))
	err = ctx.Run(log)
	ctx.FatalIfErrorf(err)
}
