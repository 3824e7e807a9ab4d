// cmd/battle-report/report.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"go-crown-quest/internal/battle"
	"go-crown-quest/internal/config"
	"go-crown-quest/internal/defs"
	"go-crown-quest/internal/encounter"
	"go-crown-quest/internal/unit"
	"go-crown-quest/internal/utils"

	"golang.org/x/sync/errgroup"
)

// maxTicks ограничивает один прогон, если бой почему-то не сходится
const maxTicks = 1_000_000

var errNotConcluded = errors.New("battle did not conclude")

// Matchup — условия серии боев
type Matchup struct {
	Left  encounter.Army
	Right encounter.Army
	Hero  unit.Hero
}

// RunResult — итог одного прогона
type RunResult struct {
	Seed      int64
	Outcome   battle.Outcome
	Rounds    int
	Survivors int
}

// Summary — сводка по серии
type Summary struct {
	Runs          int
	Wins          int
	Losses        int
	MeanRounds    float64
	MeanSurvivors float64
}

// parseArmy разбирает "class:stack"
func parseArmy(s string) (encounter.Army, error) {
	classStr, stackStr, ok := strings.Cut(s, ":")
	if !ok {
		return encounter.Army{}, fmt.Errorf("army %q: want class:stack", s)
	}
	class, err := strconv.Atoi(strings.TrimSpace(classStr))
	if err != nil {
		return encounter.Army{}, fmt.Errorf("army %q: bad class: %w", s, err)
	}
	stack, err := strconv.Atoi(strings.TrimSpace(stackStr))
	if err != nil {
		return encounter.Army{}, fmt.Errorf("army %q: bad stack: %w", s, err)
	}
	if stack <= 0 {
		return encounter.Army{}, fmt.Errorf("army %q: stack must be positive", s)
	}
	return encounter.Army{Class: class, Stack: stack}, nil
}

// parseHero разбирает "att,def,spd"
func parseHero(s string) (unit.Hero, error) {
	if s == "" {
		return unit.Hero{}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return unit.Hero{}, fmt.Errorf("hero %q: want att,def,spd", s)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return unit.Hero{}, fmt.Errorf("hero %q: %w", s, err)
		}
		v[i] = n
	}
	return unit.Hero{Attack: v[0], Defense: v[1], Speed: v[2]}, nil
}

// seeds — seedBase, seedBase+step, ... всего runs штук
func seeds(runs int, base, step int64) []int64 {
	out := make([]int64, runs)
	for i := range out {
		out[i] = base + int64(i)*step
	}
	return out
}

// runOne прогоняет бой с фиксированным шагом TickDuration до итога
func runOne(lib *defs.Library, m Matchup, seed int64, logger *slog.Logger) (RunResult, error) {
	lt, ok := lib.Unit(m.Left.Class)
	if !ok {
		return RunResult{}, fmt.Errorf("unknown left class %d", m.Left.Class)
	}
	rt, ok := lib.Unit(m.Right.Class)
	if !ok {
		return RunResult{}, fmt.Errorf("unknown right class %d", m.Right.Class)
	}
	hero := m.Hero
	sim := battle.NewSimulation(
		[]*unit.Unit{unit.NewFromTemplate(lt, m.Left.Stack)},
		[]*unit.Unit{unit.NewFromTemplate(rt, m.Right.Stack)},
		&hero,
		utils.NewPRNGService(seed),
		battle.WithLogger(logger),
	)
	sim.Start()
	for i := 0; i < maxTicks && !sim.Concluded(); i++ {
		sim.Update(config.TickDuration)
	}
	if !sim.Concluded() {
		return RunResult{}, fmt.Errorf("seed %d: %w", seed, errNotConcluded)
	}
	res := RunResult{Seed: seed, Outcome: sim.Conclusion(), Rounds: sim.Rounds()}
	if res.Outcome == battle.OutcomeWin {
		res.Survivors = sim.Left.StackSize
	}
	return res, nil
}

// runAll выполняет прогоны параллельно, не больше workers одновременно.
// Результаты лежат в порядке seeds.
func runAll(ctx context.Context, lib *defs.Library, m Matchup, seedList []int64, workers int, logger *slog.Logger) ([]RunResult, error) {
	results := make([]RunResult, len(seedList))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, workers))
	for i, seed := range seedList {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := runOne(lib, m, seed, logger)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func summarize(results []RunResult) Summary {
	s := Summary{Runs: len(results)}
	if s.Runs == 0 {
		return s
	}
	var rounds, survivors int
	for _, r := range results {
		switch r.Outcome {
		case battle.OutcomeWin:
			s.Wins++
		case battle.OutcomeLose:
			s.Losses++
		}
		rounds += r.Rounds
		survivors += r.Survivors
	}
	s.MeanRounds = float64(rounds) / float64(s.Runs)
	s.MeanSurvivors = float64(survivors) / float64(s.Runs)
	return s
}

func printReport(w io.Writer, lib *defs.Library, m Matchup, results []RunResult) {
	label := func(class int) string {
		if t, ok := lib.Unit(class); ok {
			return t.Label
		}
		return strconv.Itoa(class)
	}
	fmt.Fprintf(w, "%s x%d vs %s x%d, hero ATT %d DEF %d SPD %d\n",
		label(m.Left.Class), m.Left.Stack, label(m.Right.Class), m.Right.Stack,
		m.Hero.Attack, m.Hero.Defense, m.Hero.Speed)
	for _, r := range results {
		fmt.Fprintf(w, "seed %-12d %-5s rounds %-4d survivors %d\n", r.Seed, r.Outcome, r.Rounds, r.Survivors)
	}
	s := summarize(results)
	winRate := 0.0
	if s.Runs > 0 {
		winRate = 100 * float64(s.Wins) / float64(s.Runs)
	}
	fmt.Fprintf(w, "runs %d  wins %d  losses %d  win rate %.1f%%  mean rounds %.2f  mean survivors %.2f\n",
		s.Runs, s.Wins, s.Losses, winRate, s.MeanRounds, s.MeanSurvivors)
}
