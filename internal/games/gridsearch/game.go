// Package gridsearch implements the number hunt game: tap 1..n*n in
// ascending order on a shuffled grid as fast as possible.
package gridsearch

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/NUDC/wego-game/internal/config"
	"github.com/NUDC/wego-game/internal/core"
	"github.com/NUDC/wego-game/internal/registry"
)

type Game struct {
	session *core.Session
	rng     *rand.Rand
	params  config.GridSearchParams

	size     int
	numbers  []int // row-major board, values 1..size*size
	consumed []bool
	next     int // next value to find
	cursor   int
	errors   int

	// wrong-click flash, in remaining ticks
	flashIdx   int
	flashTicks int

	totalTicks int
	tickRate   int
	paused     bool
	screenW    int
	screenH    int
}

// New creates a new number hunt game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("gridsearch", func() registry.Game {
		return New()
	})
}

func (g *Game) ID() string { return "gridsearch" }

func (g *Game) Title() string { return "Number Hunt" }

func (g *Game) Domain() string { return "Attention" }

func (g *Game) Reset(cfg core.RuntimeConfig) {
	params, ok := config.Get().GridSearch[cfg.Difficulty]
	if !ok {
		params = config.Default().GridSearch[core.DifficultyNormal]
	}
	g.params = params
	g.size = params.Size
	g.tickRate = cfg.TickRate
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.numbers = core.ShuffledRange(g.rng, g.size*g.size)
	g.consumed = make([]bool, len(g.numbers))
	g.next = 1
	g.cursor = 0
	g.errors = 0
	g.flashTicks = 0
	g.totalTicks = 0
	g.paused = false

	g.session = core.NewSession(cfg.TickRate, nil)
	g.session.Phase = core.PhaseInput
}

func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.session.Completed() {
		return core.StepResult{State: g.State()}
	}

	g.totalTicks++
	g.session.Tick()
	if g.flashTicks > 0 {
		g.flashTicks--
	}

	g.moveCursor(in)
	if in.Has(core.ActionConfirm) {
		g.tap(g.cursor)
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	row, col := g.cursor/g.size, g.cursor%g.size
	switch {
	case in.Has(core.ActionUp):
		row = core.Max(0, row-1)
	case in.Has(core.ActionDown):
		row = core.Min(g.size-1, row+1)
	case in.Has(core.ActionLeft):
		col = core.Max(0, col-1)
	case in.Has(core.ActionRight):
		col = core.Min(g.size-1, col+1)
	}
	g.cursor = row*g.size + col
}

func (g *Game) tap(idx int) {
	if !g.session.AcceptingInput() {
		return
	}
	if g.consumed[idx] {
		return
	}
	if g.numbers[idx] == g.next {
		g.consumed[idx] = true
		g.next++
		if g.next > g.size*g.size {
			g.session.Complete(g.score())
		}
		return
	}
	g.errors++
	g.flashIdx = idx
	g.flashTicks = int(g.session.Scheduler().Ticks(200 * time.Millisecond))
}

// elapsedTenths reports the completion time in tenths of a second. One
// tenth is added so that an instant clear still registers a nonzero time.
func (g *Game) elapsedTenths() int {
	if g.tickRate <= 0 {
		return 0
	}
	return g.totalTicks*10/g.tickRate + 1
}

func (g *Game) score() int {
	target := float64(g.params.TargetSec)
	used := float64(g.elapsedTenths()) / 10.0

	s := 500
	switch {
	case used <= target:
		s += 300
	case used <= target*1.5:
		s += 200
	case used <= target*2:
		s += 100
	}
	s -= g.errors * 20
	return core.Max(0, s)
}

func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf("Find: %d  Errors: %d  Time: %.1fs",
		g.next, g.errors, float64(g.totalTicks)/float64(core.Max(1, g.tickRate)))
	if g.next > g.size*g.size {
		hud = fmt.Sprintf("Done!  Errors: %d", g.errors)
	}
	dst.DrawText(2, 1, hud)

	grid := core.CenterGrid(dst.Width(), g.size, 5, 2, 3)

	for i, n := range g.numbers {
		x, y := grid.CellOrigin(i)
		label := fmt.Sprintf("%2d", n)
		color := core.ColorWhite
		if g.consumed[i] {
			label = " ."
			color = core.ColorGray
		}
		if g.flashTicks > 0 && i == g.flashIdx {
			color = core.ColorRed
		}
		if i == g.cursor {
			dst.DrawTextColored(x, y, "["+label+"]", core.ColorYellow)
		} else {
			dst.DrawTextColored(x+1, y, label, color)
		}
	}

	if g.paused {
		dst.Overlay("PAUSED", "press p to resume")
	}
	if g.session.Completed() {
		dst.Overlay("ROUND OVER", fmt.Sprintf("Score: %d", g.session.FinalScore()))
	}
}

func (g *Game) State() core.GameState {
	if g.session.Completed() {
		return core.GameState{Score: g.session.FinalScore(), GameOver: true}
	}
	return core.GameState{Score: 0, GameOver: false, Paused: g.paused}
}
