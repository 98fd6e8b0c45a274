package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/fixnum"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/entity"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sprite"
)

// PlayerAction is the logical state of the warrior.
type PlayerAction int

const (
	ActionIdle PlayerAction = iota
	ActionRun
	ActionJump
	ActionDoubleJump
	ActionAttack
	ActionDash // Reserved; nothing enters it yet
)

func (a PlayerAction) String() string {
	switch a {
	case ActionIdle:
		return "Idle"
	case ActionRun:
		return "Run"
	case ActionJump:
		return "Jump"
	case ActionDoubleJump:
		return "DoubleJump"
	case ActionAttack:
		return "Attack"
	case ActionDash:
		return "Dash"
	default:
		return "Unknown"
	}
}

// Player is the warrior controlled by the input.
type Player struct {
	Entity   entity.Entity
	Action   PlayerAction
	Facing   core.Tri // Last non-zero horizontal input
	OnGround bool

	attackStart    uint32 // Tick the current attack began
	lastFrameShown int    // Ticks spent on the final attack frame
	tuning         config.PlayerConfig
}

// NewPlayer places the warrior at a level's player start.
func NewPlayer(start fixnum.Point, sprites sprite.Provider, tuning config.PlayerConfig) Player {
	e := entity.New(tuning.CollisionBox.Point())
	e.Position = start.Vec().Add(tuning.SpawnOffset.Vec())
	e.Sprite.SetFrame(sprites.Frame(sprite.WarriorIdle, 0))
	e.Sprite.Visible = true

	return Player{
		Entity:   e,
		Action:   ActionIdle,
		OnGround: true,
		tuning:   tuning,
	}
}

// UpdateFrame advances the warrior by one tick: ground check, velocity
// integration, collision, logical state, facing, attack and animation.
func (p *Player) UpdateFrame(in core.InputFrame, sprites sprite.Provider, timer uint32, l *level.Level) {
	t := p.tuning

	wasOnGround := p.OnGround
	p.OnGround = p.Entity.OnGround(l)
	if p.OnGround && !wasOnGround && p.Entity.Velocity.Y > t.LandingSpeed.Num {
		p.Action = ActionIdle
	}

	v := p.Entity.Velocity
	jumpPressed := in.Has(core.ActionJump)
	if p.OnGround {
		if p.Action != ActionAttack {
			v.X = v.X.Add(t.GroundAccel.MulInt(in.X.Int()))
			v = t.GroundFriction.Apply(v)
		} else {
			v = fixnum.Vec2{}
		}
		if jumpPressed {
			v.Y = t.JumpSpeed.Neg()
			p.Action = ActionJump
		}
	} else {
		if jumpPressed && p.Action != ActionDoubleJump {
			v.Y = t.JumpSpeed.Neg()
			p.Action = ActionDoubleJump
		}
		v.X = v.X.Add(t.AirAccel.MulInt(in.X.Int()))
		v = t.AirDamping.Apply(v)
		v.Y = v.Y.Add(t.Gravity.Num)
	}

	p.Entity.Velocity = v
	p.Entity.Velocity = p.Entity.UpdatePosition(l)
	v = p.Entity.Velocity

	if p.OnGround {
		switch p.Action {
		case ActionIdle, ActionRun:
			if v.X != 0 {
				p.Action = ActionRun
			} else {
				p.Action = ActionIdle
			}
		case ActionJump, ActionDoubleJump:
			// Landed too softly to count as a landing.
			if v.Y >= 0 {
				p.Action = ActionIdle
			}
		}
	}

	if in.X != core.TriZero {
		p.Facing = in.X
	}
	switch p.Facing {
	case core.TriNegative:
		p.Entity.Sprite.HFlip = true
	case core.TriPositive:
		p.Entity.Sprite.HFlip = false
	}

	if in.Has(core.ActionAttack) && p.OnGround && p.Action != ActionAttack {
		p.Action = ActionAttack
		p.attackStart = timer
		p.lastFrameShown = 0
		// Only the right-facing attack art is off centre.
		if p.Facing == core.TriPositive {
			p.Entity.SpriteOffset = fixnum.P(t.AttackOffset, 0)
		}
	}

	if p.Action == ActionAttack {
		frame := p.attackFrame(sprites, timer)
		if p.Action == ActionAttack {
			p.Entity.Sprite.SetFrame(sprites.Frame(sprite.WarriorAttack, frame))
			return
		}
	}
	p.Entity.SpriteOffset = fixnum.Point{}

	deadband := t.PoseDeadband.Num
	switch {
	case v.Y < deadband.Neg():
		p.Entity.Sprite.SetFrame(sprites.Frame(sprite.WarriorJump, int(timer/uint32(t.JumpFrameTicks))))
	case v.Y > deadband:
		p.Entity.Sprite.SetFrame(sprites.Frame(sprite.WarriorFall, 0))
	case v.X != 0:
		run := PingPong(int(timer/uint32(t.RunFrameTicks)), sprites.Len(sprite.WarriorRun))
		p.Entity.Sprite.SetFrame(sprites.Frame(sprite.WarriorRun, run))
	default:
		p.Entity.Sprite.SetFrame(sprites.Frame(sprite.WarriorIdle, int(timer/uint32(t.IdleFrameTicks))))
	}
}

// attackFrame returns the attack frame for timer, holding the last frame for
// AttackHold extra ticks before dropping back to Idle.
func (p *Player) attackFrame(sprites sprite.Provider, timer uint32) int {
	n := sprites.Len(sprite.WarriorAttack)
	frame := int((timer - p.attackStart) / uint32(p.tuning.AttackFrameTicks))
	if frame+1 < n {
		return frame
	}

	p.lastFrameShown++
	if p.lastFrameShown > p.tuning.AttackHold {
		p.Action = ActionIdle
		p.lastFrameShown = 0
	}
	return max(n-1, 0)
}

// Attacking reports whether the sword is out this tick.
func (p *Player) Attacking() bool { return p.Action == ActionAttack }

// PingPong maps a counter onto a triangle wave over [0, n) with period 2(n-1):
// 0, 1, ..., n-1, n-2, ..., 1, 0, 1, ...
func PingPong(i, n int) int {
	cycle := 2 * (n - 1)
	if cycle <= 0 {
		return 0
	}
	i %= cycle
	if i < 0 {
		i += cycle
	}
	if i >= n {
		return cycle - i
	}
	return i
}
