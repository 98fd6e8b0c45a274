package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/fixnum"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/entity"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sprite"
)

// MaxEnemies is the number of enemy slots in a level.
const MaxEnemies = 16

// EnemyUpdateState is what an enemy reports to the frame loop.
type EnemyUpdateState int

const (
	EnemyNone EnemyUpdateState = iota
	EnemyKillPlayer
)

// updateResult is the per-kind outcome before the slot handles removal.
type updateResult int

const (
	updateNothing updateResult = iota
	updateKillPlayer
	updateRemove
)

type enemyKind int

const (
	enemyEmpty enemyKind = iota
	enemyBoar
)

// Enemy is one enemy slot. The zero value is an empty slot.
type Enemy struct {
	kind enemyKind
	boar Boar
}

// NewBoar creates a boar slot at a spawn point.
func NewBoar(start fixnum.Point, sprites sprite.Provider, tuning config.BoarConfig) Enemy {
	return Enemy{
		kind: enemyBoar,
		boar: newBoar(start.Vec().Add(tuning.SpawnOffset.Vec()), sprites, tuning),
	}
}

// Empty reports whether the slot holds nothing.
func (e *Enemy) Empty() bool { return e.kind == enemyEmpty }

// Boar returns the boar in the slot, or nil.
func (e *Enemy) Boar() *Boar {
	if e.kind != enemyBoar {
		return nil
	}
	return &e.boar
}

// Sprite returns the slot's sprite, or nil for an empty slot.
func (e *Enemy) Sprite() *sprite.Object {
	switch e.kind {
	case enemyBoar:
		return &e.boar.Entity.Sprite
	default:
		return nil
	}
}

// Update runs one tick of the enemy. An enemy that finishes dying empties
// its own slot.
func (e *Enemy) Update(sprites sprite.Provider, l *level.Level, playerPos fixnum.Vec2, playerAction PlayerAction, timer uint32) EnemyUpdateState {
	result := updateNothing
	switch e.kind {
	case enemyBoar:
		result = e.boar.update(sprites, l, playerPos, playerAction, timer)
	}

	switch result {
	case updateRemove:
		*e = Enemy{}
		return EnemyNone
	case updateKillPlayer:
		return EnemyKillPlayer
	default:
		return EnemyNone
	}
}

// Commit writes the sprite position for a camera at offset.
func (e *Enemy) Commit(offset fixnum.Vec2, view entity.Viewport) {
	switch e.kind {
	case enemyBoar:
		e.boar.Entity.CommitPosition(offset, view)
	}
}

// BoarState is the boar's behaviour state.
type BoarState int

const (
	BoarIdle BoarState = iota
	BoarRunning
	BoarDying
)

func (s BoarState) String() string {
	switch s {
	case BoarIdle:
		return "Idle"
	case BoarRunning:
		return "Running"
	case BoarDying:
		return "Dying"
	default:
		return "Unknown"
	}
}

// Boar waits until the player comes close, then charges in their direction
// for a fixed number of frames.
type Boar struct {
	Entity entity.Entity
	State  BoarState

	start  uint32 // Tick the current run or death began
	tuning config.BoarConfig
}

func newBoar(pos fixnum.Vec2, sprites sprite.Provider, tuning config.BoarConfig) Boar {
	e := entity.New(tuning.CollisionBox.Point())
	e.Position = pos
	e.Sprite.SetFrame(sprites.Frame(sprite.BoarIdle, 0))
	e.Sprite.Visible = true
	return Boar{Entity: e, State: BoarIdle, tuning: tuning}
}

func (b *Boar) update(sprites sprite.Provider, l *level.Level, playerPos fixnum.Vec2, playerAction PlayerAction, timer uint32) updateResult {
	t := b.tuning
	toPlayer := b.Entity.Position.Sub(playerPos).MagnitudeSquared()
	touching := toPlayer < fixnum.New(t.HitRadius*t.HitRadius)

	switch b.State {
	case BoarIdle:
		b.Entity.Sprite.SetFrame(sprites.Frame(sprite.BoarIdle, int(timer/uint32(t.IdleFrameTicks))))

		if toPlayer < fixnum.New(t.ProximityRadius*t.ProximityRadius) {
			b.State = BoarRunning
			b.start = timer
			speed := t.RunSpeed.Num
			if b.Entity.Position.X > playerPos.X {
				speed = speed.Neg()
			}
			b.Entity.Velocity = fixnum.V(speed, 0)
			b.Entity.Sprite.HFlip = speed > 0
		}

		if touching {
			if playerAction != ActionAttack {
				return updateKillPlayer
			}
			b.die(timer)
		}

	case BoarRunning:
		offset := int((timer - b.start) / uint32(t.FrameTicks))
		if offset >= t.RunFrames {
			b.Entity.Velocity = fixnum.Vec2{}
			b.State = BoarIdle
		} else {
			b.Entity.Sprite.SetFrame(sprites.Frame(sprite.BoarRun, offset))
		}

		if touching {
			if playerAction != ActionAttack {
				return updateKillPlayer
			}
			b.die(timer)
		}

	case BoarDying:
		offset := int((timer - b.start) / uint32(t.FrameTicks))
		b.Entity.Velocity = fixnum.Vec2{}
		if offset >= t.DeathFrames {
			return updateRemove
		}
		b.Entity.Sprite.SetFrame(sprites.Frame(sprite.BoarHit, offset))
	}

	b.patrol(l)
	b.Entity.UpdatePosition(l)
	return updateNothing
}

func (b *Boar) die(timer uint32) {
	b.State = BoarDying
	b.start = timer
}

// patrol stops the boar next to any enemy stop it is about to reach.
func (b *Boar) patrol(l *level.Level) {
	next := b.Entity.Position.Add(b.Entity.Velocity)
	limit := fixnum.New(b.tuning.StopDistance)
	for _, stop := range l.EnemyStops {
		if next.Sub(stop.Vec()).ManhattanDistance() < limit {
			b.Entity.Velocity = fixnum.Vec2{}
		}
	}
}
