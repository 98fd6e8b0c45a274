package platformer

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/fixnum"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/entity"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sprite"
)

// UpdateState is the outcome of one tick of play.
type UpdateState int

const (
	StateNormal UpdateState = iota
	StateDead
	StateComplete
)

func (s UpdateState) String() string {
	switch s {
	case StateNormal:
		return "Normal"
	case StateDead:
		return "Dead"
	case StateComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// deadEndDrop lowers the fallen warrior so the second half of the death
// animation lies on the ground.
var deadEndDrop = fixnum.VI(0, 15)

// PlayingLevel is one attempt at a level.
type PlayingLevel struct {
	Timer   uint32
	Level   *level.Level
	Camera  fixnum.Vec2 // Top-left of the view in world pixels
	Player  Player
	Enemies [MaxEnemies]Enemy

	view    entity.Viewport
	sprites sprite.Provider
	tuning  config.PlatformerConfig
}

// OpenLevel spawns the player and enemies of l. Spawns this runtime has no
// behaviour for, and boars beyond the slot count, are logged and skipped.
func OpenLevel(l *level.Level, sprites sprite.Provider, view entity.Viewport, tuning config.PlatformerConfig, logger *log.Logger) *PlayingLevel {
	pl := &PlayingLevel{
		Level:   l,
		Player:  NewPlayer(l.PlayerStart, sprites, tuning.Player),
		view:    view,
		sprites: sprites,
		tuning:  tuning,
	}

	n := 0
	for _, s := range l.Spawns {
		if s.Kind != level.EnemyBoar {
			logger.Warn("skipping unsupported enemy", "level", l.ID, "kind", s.Kind, "at", s.At)
			continue
		}
		if n == MaxEnemies {
			logger.Warn("enemy slots full", "level", l.ID, "kind", s.Kind, "at", s.At)
			continue
		}
		pl.Enemies[n] = NewBoar(s.At, sprites, tuning.Boar)
		n++
	}

	pl.Camera = InitialCameraPosition(l.PlayerStart.Vec(), l, view)
	pl.commit()
	return pl
}

// UpdateFrame runs one tick: player, enemies in slot order, camera, sprite
// commit, then the death and goal checks.
func (pl *PlayingLevel) UpdateFrame(in core.InputFrame) UpdateState {
	pl.Timer++

	pl.Player.UpdateFrame(in, pl.sprites, pl.Timer, pl.Level)

	dead := false
	for i := range pl.Enemies {
		if pl.Enemies[i].Update(pl.sprites, pl.Level, pl.Player.Entity.Position, pl.Player.Action, pl.Timer) == EnemyKillPlayer {
			dead = true
		}
	}

	pl.Camera = NextCameraPosition(pl.Camera, pl.Player.Entity.Position, pl.Level, pl.view, pl.tuning.Camera)
	pl.commit()

	pos := pl.Player.Entity.Position
	if dead || pl.Player.Entity.LethalAt(pl.Level, pos) {
		return StateDead
	}
	if pl.Player.Entity.GoalAt(pl.Level, pos) {
		return StateComplete
	}
	return StateNormal
}

func (pl *PlayingLevel) commit() {
	pl.Player.Entity.CommitPosition(pl.Camera, pl.view)
	for i := range pl.Enemies {
		pl.Enemies[i].Commit(pl.Camera, pl.view)
	}
}

// DeadStart freezes the player for the death animation and draws it above
// everything else.
func (pl *PlayingLevel) DeadStart() {
	pl.Player.Entity.Velocity = fixnum.VI(0, -1)
	pl.Player.Entity.SpriteOffset = fixnum.Point{}
	pl.Player.Entity.Sprite.Priority = sprite.PriorityFront
}

// DeadUpdate shows step frame of the death animation. The first steps play
// the fall, the rest the body on the ground.
func (pl *PlayingLevel) DeadUpdate(frame int) {
	pl.Timer++

	start := pl.sprites.Len(sprite.WarriorDeadStart)
	if frame < start {
		pl.Player.Entity.Sprite.SetFrame(pl.sprites.Frame(sprite.WarriorDeadStart, frame))
		pl.Player.Entity.CommitPosition(pl.Camera, pl.view)
		return
	}
	pl.Player.Entity.Sprite.SetFrame(pl.sprites.Frame(sprite.WarriorDeadEnd, frame-start))
	pl.Player.Entity.CommitPosition(pl.Camera.Sub(deadEndDrop), pl.view)
}

// Resize changes the viewport, keeping the camera inside the level.
func (pl *PlayingLevel) Resize(view entity.Viewport) {
	pl.view = view
	pl.Camera = clampCamera(pl.Camera.Floor(), pl.Level, view).Vec()
	pl.commit()
}

// View returns the current viewport.
func (pl *PlayingLevel) View() entity.Viewport { return pl.view }
