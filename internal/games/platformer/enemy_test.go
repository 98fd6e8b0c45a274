package platformer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/fixnum"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sprite"
)

// arenaLevel is a 40x20 open room with a floor on the last row.
func arenaLevel(t *testing.T) *level.Level {
	rows := make([]string, 0, 20)
	for i := 0; i < 17; i++ {
		rows = append(rows, strings.Repeat(".", 40))
	}
	rows = append(rows,
		".P"+strings.Repeat(".", 38),
		strings.Repeat(".", 40),
		strings.Repeat("#", 40),
	)
	return buildLevel(t, "arena", rows...)
}

// A boar spawned at y=144 sits at y=145, resting on the floor.
const boarY = 145

func newTestBoar(x int) (Enemy, *sprite.Atlas) {
	atlas := sprite.DefaultAtlas()
	return NewBoar(fixnum.P(x, boarY-1), atlas, config.DefaultPlatformerConfig().Boar), atlas
}

func TestBoarSpawn(t *testing.T) {
	l := arenaLevel(t)
	e, _ := newTestBoar(100)

	b := e.Boar()
	if b == nil {
		t.Fatal("Boar() = nil for a boar slot")
	}
	if b.Entity.Position != fixnum.VI(100, boarY) {
		t.Errorf("position = %v, expected spawn nudged down one pixel", b.Entity.Position)
	}
	if b.Entity.CollisionAt(l, b.Entity.Position) {
		t.Error("boar spawned inside the level")
	}
	if b.State != BoarIdle {
		t.Errorf("state = %v, expected Idle", b.State)
	}
	if e.Empty() || e.Sprite() == nil {
		t.Error("boar slot should not be empty")
	}
}

func TestBoarChargesTowardPlayer(t *testing.T) {
	l := arenaLevel(t)

	tests := []struct {
		name    string
		playerX int
		dir     int
	}{
		{"player left", 50, -1},
		{"player right", 150, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, atlas := newTestBoar(100)

			result := e.Update(atlas, l, fixnum.VI(tt.playerX, boarY), ActionIdle, 1)
			if result != EnemyNone {
				t.Errorf("Update() = %v, expected EnemyNone", result)
			}
			b := e.Boar()
			if b.State != BoarRunning {
				t.Fatalf("state = %v, expected Running", b.State)
			}
			if b.Entity.Velocity.X.Sign() != tt.dir || b.Entity.Velocity.Y != 0 {
				t.Errorf("velocity = %v, expected horizontal toward the player", b.Entity.Velocity)
			}
			if b.Entity.Sprite.HFlip != (tt.dir > 0) {
				t.Errorf("hflip = %v, expected the boar to face the player", b.Entity.Sprite.HFlip)
			}
		})
	}
}

func TestBoarIgnoresDistantPlayer(t *testing.T) {
	l := arenaLevel(t)
	e, atlas := newTestBoar(100)

	for timer := uint32(1); timer < 100; timer++ {
		e.Update(atlas, l, fixnum.VI(30, boarY), ActionIdle, timer)
	}
	b := e.Boar()
	if b.State != BoarIdle || !b.Entity.Velocity.IsZero() {
		t.Errorf("state = %v velocity = %v, expected an idle boar", b.State, b.Entity.Velocity)
	}
	if b.Entity.Sprite.Frame.Tag != sprite.BoarIdle {
		t.Errorf("idle boar shows %v", b.Entity.Sprite.Frame.Tag)
	}
}

func TestBoarRunEnds(t *testing.T) {
	l := arenaLevel(t)
	e, atlas := newTestBoar(200)
	tuning := config.DefaultPlatformerConfig().Boar

	e.Update(atlas, l, fixnum.VI(150, boarY), ActionIdle, 1)
	far := fixnum.VI(20, boarY)

	endAt := uint32(1 + tuning.RunFrames*tuning.FrameTicks)
	for timer := uint32(2); timer < endAt; timer++ {
		e.Update(atlas, l, far, ActionIdle, timer)
		if e.Boar().State != BoarRunning {
			t.Fatalf("tick %d: state = %v, expected Running until %d", timer, e.Boar().State, endAt)
		}
		if f := e.Boar().Entity.Sprite.Frame; f.Tag != sprite.BoarRun {
			t.Fatalf("tick %d: running boar shows %v", timer, f.Tag)
		}
	}

	e.Update(atlas, l, far, ActionIdle, endAt)
	b := e.Boar()
	if b.State != BoarIdle || !b.Entity.Velocity.IsZero() {
		t.Errorf("state = %v velocity = %v, expected the boar to stop", b.State, b.Entity.Velocity)
	}

	// 28 ticks of movement at a quarter pixel each.
	moved := fixnum.New(200).Sub(b.Entity.Position.X)
	if moved != fixnum.New(7) {
		t.Errorf("boar charged %v pixels, expected 7", moved)
	}
}

func TestBoarKillsPlayer(t *testing.T) {
	l := arenaLevel(t)
	e, atlas := newTestBoar(100)

	result := e.Update(atlas, l, fixnum.VI(90, boarY), ActionRun, 1)
	if result != EnemyKillPlayer {
		t.Errorf("Update() = %v, expected EnemyKillPlayer", result)
	}

	// A kill skips the move for that tick.
	if e.Boar().Entity.Position != fixnum.VI(100, boarY) {
		t.Errorf("position = %v, expected no movement on the kill tick", e.Boar().Entity.Position)
	}
}

func TestBoarDiesToAttack(t *testing.T) {
	l := arenaLevel(t)
	e, atlas := newTestBoar(100)
	tuning := config.DefaultPlatformerConfig().Boar

	result := e.Update(atlas, l, fixnum.VI(90, boarY), ActionAttack, 5)
	if result != EnemyNone {
		t.Fatalf("Update() = %v, expected EnemyNone while attacking", result)
	}
	if e.Boar().State != BoarDying {
		t.Fatalf("state = %v, expected Dying", e.Boar().State)
	}

	// Touching a dying boar is harmless.
	removeAt := uint32(5 + tuning.DeathFrames*tuning.FrameTicks)
	for timer := uint32(6); timer < removeAt; timer++ {
		if r := e.Update(atlas, l, fixnum.VI(100, boarY), ActionIdle, timer); r != EnemyNone {
			t.Fatalf("tick %d: dying boar returned %v", timer, r)
		}
		b := e.Boar()
		if b == nil {
			t.Fatalf("tick %d: boar removed early", timer)
		}
		if !b.Entity.Velocity.IsZero() || b.Entity.Sprite.Frame.Tag != sprite.BoarHit {
			t.Fatalf("tick %d: dying boar velocity %v frame %v", timer, b.Entity.Velocity, b.Entity.Sprite.Frame)
		}
	}

	if r := e.Update(atlas, l, fixnum.VI(100, boarY), ActionIdle, removeAt); r != EnemyNone {
		t.Errorf("removal returned %v, expected EnemyNone", r)
	}
	if !e.Empty() || e.Boar() != nil || e.Sprite() != nil {
		t.Error("slot should be empty after the boar is removed")
	}

	// Empty slots do nothing.
	if r := e.Update(atlas, l, fixnum.VI(100, boarY), ActionIdle, removeAt+1); r != EnemyNone {
		t.Errorf("empty slot returned %v", r)
	}
}

func TestBoarStopsAtEnemyStop(t *testing.T) {
	l := arenaLevel(t)
	l.EnemyStops = []fixnum.Point{fixnum.P(90, boarY)}
	e, atlas := newTestBoar(100)

	player := fixnum.VI(50, boarY)
	for timer := uint32(1); timer <= 20; timer++ {
		e.Update(atlas, l, player, ActionIdle, timer)
	}

	b := e.Boar()
	if !b.Entity.Velocity.IsZero() {
		t.Errorf("velocity = %v, expected the stop to halt the boar", b.Entity.Velocity)
	}
	if b.Entity.Position.X != fixnum.New(98) {
		t.Errorf("x = %v, expected the boar to halt at 98", b.Entity.Position.X)
	}
}

func TestEnemyCommit(t *testing.T) {
	e, _ := newTestBoar(100)
	view := Viewport(80, 24)

	e.Commit(fixnum.VI(0, 0), view)
	if !e.Sprite().Visible {
		t.Error("boar in view should be visible")
	}

	e.Commit(fixnum.VI(1000, 0), view)
	if e.Sprite().Visible {
		t.Error("boar far left of the camera should be hidden")
	}

	var empty Enemy
	empty.Commit(fixnum.VI(0, 0), view)
}
