// Package platformer implements a side-scrolling tile platformer: a warrior
// runs, jumps and swings a sword through a series of levels guarded by
// charging boars, and reaches the goal tile to advance.
package platformer

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/entity"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sprite"
)

// Terminal cell size in world pixels. A tile is two cells wide and one tall.
const (
	CellW = 4
	CellH = 8
)

// HUDRows is the number of screen rows above the play field.
const HUDRows = 1

// Score awarded per cleared level and deducted per death.
const (
	LevelScore = 1000
	DeathCost  = 100
)

type phase int

const (
	phaseBanner phase = iota // "Level N" title card
	phasePlaying
	phaseDying
	phaseWon
)

// Game runs a sequence of levels.
type Game struct {
	levels  []*level.Level
	tuning  config.PlatformerConfig
	sprites *sprite.Atlas
	logger  *log.Logger
	config  core.RuntimeConfig

	first   int // Level index a new run starts at
	current int
	playing *PlayingLevel

	phase      phase
	phaseTicks int
	deathStep  int
	stepTicks  int // Ticks left on the current death step

	deaths  int
	cleared int
	paused  bool
}

// New creates a game over levels, which are played in order. A nil logger
// discards log output.
func New(levels []*level.Level, tuning config.PlatformerConfig, sprites *sprite.Atlas, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		levels:  levels,
		tuning:  tuning,
		sprites: sprites,
		logger:  logger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// SetStartLevel chooses the level a run begins at. Out-of-range indexes are
// ignored.
func (g *Game) SetStartLevel(i int) {
	if i >= 0 && i < len(g.levels) {
		g.first = i
	}
}

// Reset starts a new run from the start level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.current = g.first
	g.deaths = 0
	g.cleared = 0
	g.paused = false
	g.enterLevel()
}

// Viewport returns the play field size in world pixels for a screen.
func Viewport(screenW, screenH int) entity.Viewport {
	return entity.Viewport{
		W: max(screenW, 1) * CellW,
		H: max(screenH-HUDRows, 1) * CellH,
	}
}

// Resize adapts the play field to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.config.ScreenW, g.config.ScreenH = w, h
	if g.playing != nil {
		g.playing.Resize(Viewport(w, h))
	}
}

// ReloadLevels swaps in new level data. The level with the same ID as the
// current one restarts; if it is gone, the run restarts from the first level.
func (g *Game) ReloadLevels(levels []*level.Level) {
	if len(levels) == 0 {
		g.logger.Warn("reload produced no levels; keeping the current set")
		return
	}

	id := ""
	if g.current < len(g.levels) {
		id = g.levels[g.current].ID
	}
	g.levels = levels
	g.first = 0

	if i := level.IndexOf(levels, id); i >= 0 {
		g.current = i
	} else {
		g.current = 0
	}
	g.logger.Info("levels reloaded", "count", len(levels), "current", g.levels[g.current].ID)
	g.enterLevel()
}

// enterLevel opens the current level behind its title card, or ends the run
// when every level is cleared.
func (g *Game) enterLevel() {
	if g.current >= len(g.levels) {
		g.phase = phaseWon
		g.playing = nil
		g.logger.Info("all levels cleared", "deaths", g.deaths, "score", g.score())
		return
	}

	l := g.levels[g.current]
	g.playing = OpenLevel(l, g.sprites, Viewport(g.config.ScreenW, g.config.ScreenH), g.tuning, g.logger)
	g.phase = phaseBanner
	g.phaseTicks = 0
	g.logger.Info("entering level", "index", g.current+1, "id", l.ID, "name", l.Name)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		if g.phase == phaseWon {
			g.Reset(g.config)
		} else {
			g.paused = false
			g.enterLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.phase == phaseWon {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase == phasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case phaseBanner:
		g.phaseTicks++
		if g.phaseTicks >= g.tuning.Timing.BannerTicks {
			g.phase = phasePlaying
		}

	case phasePlaying:
		switch g.playing.UpdateFrame(in) {
		case StateDead:
			g.startDying()
		case StateComplete:
			g.cleared++
			g.logger.Info("level complete", "id", g.levels[g.current].ID, "ticks", g.playing.Timer)
			g.current++
			g.enterLevel()
		}

	case phaseDying:
		g.stepDying()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) startDying() {
	g.deaths++
	g.logger.Info("player died", "id", g.levels[g.current].ID, "deaths", g.deaths,
		"at", g.playing.Player.Entity.Position)

	g.phase = phaseDying
	g.playing.DeadStart()
	g.deathStep = 0
	g.playing.DeadUpdate(0)
	g.stepTicks = g.deathStepTicks(0)
}

// stepDying plays the death animation, one step per DeathStepTicks ticks,
// then restarts the level.
func (g *Game) stepDying() {
	g.stepTicks--
	for g.stepTicks <= 0 {
		g.deathStep++
		if g.deathStep >= g.tuning.Timing.DeathSteps {
			g.enterLevel()
			return
		}
		g.playing.DeadUpdate(g.deathStep)
		g.stepTicks = g.deathStepTicks(g.deathStep)
	}
}

func (g *Game) deathStepTicks(step int) int {
	if step == g.tuning.Timing.DeathSkipStep {
		return 0
	}
	return g.tuning.Timing.DeathStepTicks
}

func (g *Game) score() int {
	return max(g.cleared*LevelScore-g.deaths*DeathCost, 0)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		Level:    g.current,
		GameOver: g.phase == phaseWon,
		Won:      g.phase == phaseWon,
		Paused:   g.paused,
	}
}

// Playing returns the level being played, or nil once the run is won.
func (g *Game) Playing() *PlayingLevel { return g.playing }

// Deaths returns the number of deaths this run.
func (g *Game) Deaths() int { return g.deaths }
