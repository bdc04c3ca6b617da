package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"minesweeper/internal/app"
	"minesweeper/internal/solver"
	"minesweeper/pkg/core"
	"minesweeper/pkg/minesweeper"
)

type scenario struct {
	preset string
	width  int
	height int
	mines  int
}

func (s scenario) String() string {
	return fmt.Sprintf("%s %dx%d/%d", s.preset, s.width, s.height, s.mines)
}

type scenarioResult struct {
	scenario scenario
	games    int
	wins     int
	moves    int
	guesses  int
	elapsed  time.Duration
	err      error
}

func (r scenarioResult) winRate() float64 {
	if r.games == 0 {
		return 0
	}
	return float64(r.wins) / float64(r.games)
}

func parseDensities(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.ParseFloat(part, 64)
		if err != nil || d < 0 || d >= 1 {
			return nil, fmt.Errorf("invalid density %q", part)
		}
		out = append(out, d)
	}
	if len(out) == 0 {
		out = []float64{0}
	}
	return out, nil
}

// buildScenarios crosses every preset with every density. A zero density
// keeps the preset's own mine count.
func buildScenarios(presets []core.Preset, densities []float64) []scenario {
	var out []scenario
	for _, p := range presets {
		for _, d := range densities {
			mines := p.Mines
			if d > 0 {
				mines = int(math.Round(d * float64(p.Size.W*p.Size.H)))
				if limit := minesweeper.MaxMines(p.Size.W, p.Size.H); mines > limit {
					mines = limit
				}
			}
			out = append(out, scenario{preset: p.Name, width: p.Size.W, height: p.Size.H, mines: mines})
		}
	}
	return out
}

func runScenario(s scenario, games int, seed int64, log logrus.FieldLogger) scenarioResult {
	res := scenarioResult{scenario: s}
	start := time.Now()
	for i := 0; i < games; i++ {
		gameSeed := seed + int64(i)
		g, err := minesweeper.NewGame(s.width, s.height, s.mines,
			minesweeper.WithRand(core.NewRNG(gameSeed)),
			minesweeper.WithLogger(log),
		)
		if err != nil {
			res.err = err
			return res
		}
		out := solver.New(core.NewRNG(gameSeed)).Play(g, s.width*s.height*2)
		res.games++
		res.moves += out.Moves
		res.guesses += out.Guesses
		if out.State == minesweeper.Victory {
			res.wins++
		}
	}
	res.elapsed = time.Since(start)
	return res
}

func main() {
	games := flag.Int("games", 200, "games to play per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "base seed; game i of a scenario uses seed+i")
	densities := flag.String("densities", "0", "comma separated mine densities (0 keeps the preset count)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log, err := app.NewLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	ds, err := parseDensities(*densities)
	if err != nil {
		log.WithError(err).Fatal("bad -densities")
	}
	scenarios := buildScenarios(core.Presets(), ds)

	log.WithFields(logrus.Fields{
		"scenarios": len(scenarios),
		"workers":   *workers,
		"games":     *games,
	}).Info("starting autoplay sweep")

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- runScenario(s, *games, *seed, log)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, s := range scenarios {
			jobs <- s
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			log.WithError(res.err).WithField("scenario", res.scenario.String()).Warn("scenario skipped")
			continue
		}
		log.WithFields(logrus.Fields{
			"scenario": res.scenario.String(),
			"win_rate": fmt.Sprintf("%.3f", res.winRate()),
			"elapsed":  res.elapsed.Round(time.Millisecond),
		}).Debug("scenario finished")
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].winRate() > all[j].winRate() })
	fmt.Printf("%-28s %6s %8s %10s %10s %10s\n", "scenario", "games", "win%", "moves/g", "guesses/g", "ms/g")
	for _, r := range all {
		n := float64(r.games)
		fmt.Printf("%-28s %6d %7.1f%% %10.1f %10.2f %10.3f\n",
			r.scenario, r.games, 100*r.winRate(),
			float64(r.moves)/n, float64(r.guesses)/n,
			float64(r.elapsed.Microseconds())/1000/n)
	}
	log.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("sweep complete")
}
