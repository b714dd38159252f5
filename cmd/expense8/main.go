// Command expense8 solves an expense 8-puzzle instance read from grid files
// and reports the search statistics and solution steps.
//
// Usage:
//
//	expense8 <start_file> <goal_file> <method> [depth_limit] [--dump]
//
// method is one of a*, greedy, ucs, bfs, dfs, dls, ids (case-insensitive).
// dls takes its depth limit as the trailing argument, or prompts for one.
// --dump additionally writes a trace-<timestamp>.txt with the full search
// trace: every expansion, the fringe after it, and the running counters.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"expense8/puzzle"
	"expense8/search"
)

// Process exit codes: solved, no solution found, bad usage or input.
const (
	exitSolved     = 0
	exitNoSolution = 1
	exitUsage      = 2
)

const usageText = `Usage: expense8 <start_file> <goal_file> <method> [depth_limit] [--dump]

  method       one of: a*, greedy, ucs, bfs, dfs, dls, ids (case-insensitive)
  depth_limit  required by dls; prompted for when omitted
  --dump       write a trace-<timestamp>.txt search trace (also: -d, true, 1, yes)`

// dumpFlags are the accepted spellings of the dump switch.
var dumpFlags = map[string]bool{"--dump": true, "-d": true, "true": true, "1": true, "yes": true}

// errUsage marks argument errors that should print the usage text.
var errUsage = errors.New("usage")

// config is the parsed CLI invocation.
type config struct {
	startFile  string
	goalFile   string
	strategy   search.Strategy
	depthLimit int // -1 until supplied
	dump       bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one CLI invocation; factored out of main for testing.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, "expense8:", err)
		fmt.Fprintln(stderr, usageText)
		return exitUsage
	}

	start, err := loadState(cfg.startFile)
	if err != nil {
		fmt.Fprintln(stderr, "expense8:", err)
		return exitUsage
	}
	goal, err := loadState(cfg.goalFile)
	if err != nil {
		fmt.Fprintln(stderr, "expense8:", err)
		return exitUsage
	}

	if cfg.strategy == search.DLS && cfg.depthLimit < 0 {
		cfg.depthLimit, err = promptDepthLimit(stdin, stdout)
		if err != nil {
			fmt.Fprintln(stderr, "expense8:", err)
			return exitUsage
		}
	}

	var opts []search.Option
	if cfg.strategy == search.DLS {
		opts = append(opts, search.WithDepthLimit(cfg.depthLimit))
	}

	var trace *traceWriter
	var traceFile *os.File
	var traceName string
	if cfg.dump {
		traceName = fmt.Sprintf("trace-%s.txt", time.Now().Format("2006-01-02-15-04-05"))
		traceFile, err = os.Create(traceName)
		if err != nil {
			fmt.Fprintln(stderr, "expense8:", err)
			return exitUsage
		}
		defer traceFile.Close()
		trace = newTraceWriter(traceFile, cfg.strategy, args)
		opts = append(opts, search.WithTracer(trace))
	}

	res, err := search.Solve(start, goal, cfg.strategy, opts...)
	if err != nil {
		fmt.Fprintln(stderr, "expense8:", err)
		return exitUsage
	}

	printReport(stdout, res)

	if trace != nil {
		if err := trace.writeResult(res); err != nil {
			fmt.Fprintln(stderr, "expense8:", err)
			return exitUsage
		}
		fmt.Fprintf(stdout, "Search trace written to %s\n", traceName)
	}

	if !res.Solved() {
		return exitNoSolution
	}

	return exitSolved
}

// parseArgs maps positional arguments onto a config. Anything after the
// method must be either a dump-flag spelling or, for dls, one depth limit.
func parseArgs(args []string) (*config, error) {
	if len(args) < 3 {
		return nil, fmt.Errorf("%w: expected at least start, goal and method", errUsage)
	}

	strategy, err := search.ParseStrategy(args[2])
	if err != nil {
		return nil, err
	}

	cfg := &config{
		startFile:  args[0],
		goalFile:   args[1],
		strategy:   strategy,
		depthLimit: -1,
	}

	for _, arg := range args[3:] {
		lower := strings.ToLower(arg)
		if dumpFlags[lower] {
			cfg.dump = true
			continue
		}
		if cfg.strategy == search.DLS && cfg.depthLimit < 0 {
			limit, convErr := strconv.Atoi(arg)
			if convErr == nil && limit >= 0 {
				cfg.depthLimit = limit
				continue
			}
		}
		return nil, fmt.Errorf("%w: unexpected argument %q", errUsage, arg)
	}

	return cfg, nil
}

// loadState reads one grid file.
func loadState(path string) (puzzle.State, error) {
	f, err := os.Open(path)
	if err != nil {
		return puzzle.State{}, err
	}
	defer f.Close()

	s, err := puzzle.ParseState(f)
	if err != nil {
		return puzzle.State{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// promptDepthLimit asks interactively for the dls cutoff.
func promptDepthLimit(stdin io.Reader, stdout io.Writer) (int, error) {
	fmt.Fprint(stdout, "Enter depth limit for DLS: ")
	var line string
	if _, err := fmt.Fscanln(stdin, &line); err != nil {
		return 0, fmt.Errorf("reading depth limit: %w", err)
	}
	limit, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("%w: depth limit must be a non-negative integer, got %q", errUsage, line)
	}

	return limit, nil
}

// printReport renders the statistics block and, on success, the solution.
func printReport(w io.Writer, res *search.Result) {
	fmt.Fprintf(w, "Nodes Popped: %d\n", res.Stats.NodesPopped)
	fmt.Fprintf(w, "Nodes Expanded: %d\n", res.Stats.NodesExpanded)
	fmt.Fprintf(w, "Nodes Generated: %d\n", res.Stats.NodesGenerated)
	fmt.Fprintf(w, "Max Fringe Size: %d\n", res.Stats.MaxFringeSize)

	if !res.Solved() {
		fmt.Fprintln(w, "No solution found.")
		return
	}

	fmt.Fprintf(w, "Solution Found at depth %d with cost of %d.\n", res.Depth, res.Cost)
	fmt.Fprintln(w, "Steps:")
	for _, m := range res.Moves {
		fmt.Fprintf(w, "        %s\n", m)
	}
}
