package platformer

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/fixnum"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sprite"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}

func testTuning() config.PlatformerConfig {
	tuning := config.DefaultPlatformerConfig()
	tuning.Timing.BannerTicks = 2
	return tuning
}

func discardLogger() *log.Logger { return log.New(io.Discard) }

// walkLevel has the goal a short walk to the right of the start.
func walkLevel(t *testing.T, id string) *level.Level {
	return buildLevel(t, id,
		"............",
		"............",
		"............",
		"P.........*.",
		"############",
	)
}

// spikeLevel drops the player onto spikes.
func spikeLevel(t *testing.T) *level.Level {
	return buildLevel(t, "spikes",
		"....",
		"P...",
		"....",
		"^^^^",
		"####",
	)
}

func newTestGame(levels ...*level.Level) *Game {
	g := New(levels, testTuning(), sprite.DefaultAtlas(), discardLogger())
	g.Reset(testRuntime)
	return g
}

// skipBanner steps through the level title card.
func skipBanner(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 10 && g.phase == phaseBanner; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.phase != phasePlaying {
		t.Fatalf("phase = %v after the banner, expected playing", g.phase)
	}
}

func TestOpenLevelSpawns(t *testing.T) {
	l := buildLevel(t, "spawns",
		"....................",
		"....................",
		".P....B.....m...B...",
		"####################",
	)

	var sb strings.Builder
	logger := log.New(&sb)
	pl := OpenLevel(l, sprite.DefaultAtlas(), Viewport(80, 24), testTuning(), logger)

	boars := 0
	for i := range pl.Enemies {
		if pl.Enemies[i].Boar() != nil {
			boars++
		}
	}
	if boars != 2 {
		t.Errorf("spawned %d boars, expected 2", boars)
	}
	if !pl.Enemies[2].Empty() {
		t.Error("slot after the last boar should be empty")
	}
	if !strings.Contains(sb.String(), "slime") {
		t.Errorf("expected the skipped slime to be logged, got %q", sb.String())
	}
	if pl.Timer != 0 {
		t.Errorf("Timer = %d, expected 0", pl.Timer)
	}
}

func TestOpenLevelSlotLimit(t *testing.T) {
	row := []rune(strings.Repeat(".", 80))
	for i := 0; i < MaxEnemies+3; i++ {
		row[2+i*4] = 'B'
	}
	row[0] = 'P'
	l := buildLevel(t, "crowded",
		strings.Repeat(".", 80),
		strings.Repeat(".", 80),
		string(row),
		strings.Repeat("#", 80),
	)

	pl := OpenLevel(l, sprite.DefaultAtlas(), Viewport(80, 24), testTuning(), discardLogger())
	for i := range pl.Enemies {
		if pl.Enemies[i].Empty() {
			t.Errorf("slot %d empty, expected every slot filled", i)
		}
	}
}

func TestPlayingLevelDeathOnSpikes(t *testing.T) {
	pl := OpenLevel(spikeLevel(t), sprite.DefaultAtlas(), Viewport(80, 24), testTuning(), discardLogger())

	state := StateNormal
	for i := 0; i < 60 && state == StateNormal; i++ {
		state = pl.UpdateFrame(core.NewInputFrame())
	}
	if state != StateDead {
		t.Fatalf("state = %v, expected Dead after falling onto spikes", state)
	}
	if pl.Timer == 0 {
		t.Error("timer did not advance")
	}
}

func TestPlayingLevelKilledByBoar(t *testing.T) {
	l := buildLevel(t, "boar",
		"................",
		"................",
		".P..B...........",
		"################",
	)
	pl := OpenLevel(l, sprite.DefaultAtlas(), Viewport(80, 24), testTuning(), discardLogger())

	state := StateNormal
	for i := 0; i < 120 && state == StateNormal; i++ {
		state = pl.UpdateFrame(core.NewInputFrame())
	}
	if state != StateDead {
		t.Fatalf("state = %v, expected the charging boar to kill the player", state)
	}
}

func TestPlayingLevelAttackKillsBoar(t *testing.T) {
	l := buildLevel(t, "boar",
		"................",
		"................",
		".P..B...........",
		"################",
	)
	pl := OpenLevel(l, sprite.DefaultAtlas(), Viewport(80, 24), testTuning(), discardLogger())
	pl.Player.Facing = core.TriPositive

	attack := core.NewInputFrame()
	attack.Set(core.ActionAttack)
	if state := pl.UpdateFrame(attack); state != StateNormal {
		t.Fatalf("state = %v on the attack tick", state)
	}

	for i := 0; i < 120; i++ {
		if state := pl.UpdateFrame(core.NewInputFrame()); state != StateNormal {
			t.Fatalf("tick %d: state = %v, expected the attack to win", i, state)
		}
		if pl.Enemies[0].Empty() {
			return
		}
	}
	t.Errorf("boar not removed; state %v", pl.Enemies[0].Boar().State)
}

func TestPlayingLevelComplete(t *testing.T) {
	pl := OpenLevel(walkLevel(t, "walk"), sprite.DefaultAtlas(), Viewport(80, 24), testTuning(), discardLogger())

	right := core.NewInputFrame()
	right.X = core.TriPositive

	state := StateNormal
	for i := 0; i < 400 && state == StateNormal; i++ {
		state = pl.UpdateFrame(right)
	}
	if state != StateComplete {
		t.Fatalf("state = %v, expected Complete at the goal", state)
	}
}

func TestPlayingLevelCommitsSprites(t *testing.T) {
	pl := OpenLevel(walkLevel(t, "walk"), sprite.DefaultAtlas(), Viewport(80, 24), testTuning(), discardLogger())
	pl.UpdateFrame(core.NewInputFrame())

	// The level is smaller than the view, so the camera sits at the origin.
	if pl.Camera != (fixnum.Vec2{}) {
		t.Errorf("Camera = %v, expected origin", pl.Camera)
	}
	want := pl.Player.Entity.Position.Floor().Sub(pl.Player.Entity.Size)
	if got := pl.Player.Entity.Sprite.Position; got != want {
		t.Errorf("player sprite at %v, expected %v", got, want)
	}
	if !pl.Player.Entity.Sprite.Visible {
		t.Error("player sprite should be visible")
	}
}

func TestDeadSequence(t *testing.T) {
	pl := OpenLevel(walkLevel(t, "walk"), sprite.DefaultAtlas(), Viewport(80, 24), testTuning(), discardLogger())
	pos := pl.Player.Entity.Position

	pl.DeadStart()
	if pl.Player.Entity.Sprite.Priority != sprite.PriorityFront {
		t.Error("dead player should draw in front")
	}
	if pl.Player.Entity.Velocity != fixnum.VI(0, -1) {
		t.Errorf("velocity = %v, expected (0, -1)", pl.Player.Entity.Velocity)
	}

	base := pos.Floor().Sub(pl.Player.Entity.Size)
	for frame := 0; frame < 9; frame++ {
		pl.DeadUpdate(frame)
		f := pl.Player.Entity.Sprite.Frame
		pos := pl.Player.Entity.Sprite.Position
		if frame < 5 {
			if f.Tag != sprite.WarriorDeadStart || f.Index != frame || pos != base {
				t.Errorf("frame %d: %+v at %v, expected dead-start %d at %v", frame, f, pos, frame, base)
			}
		} else {
			lowered := base.Add(fixnum.P(0, 15))
			if f.Tag != sprite.WarriorDeadEnd || f.Index != frame-5 || pos != lowered {
				t.Errorf("frame %d: %+v at %v, expected dead-end %d at %v", frame, f, pos, frame-5, lowered)
			}
		}
	}
	if pl.Timer != 9 {
		t.Errorf("Timer = %d, expected 9", pl.Timer)
	}
	if pl.Player.Entity.Position != pos {
		t.Error("the death sequence should not move the body")
	}
}

func TestGameBannerThenPlay(t *testing.T) {
	g := newTestGame(walkLevel(t, "a"))
	if g.phase != phaseBanner {
		t.Fatalf("phase = %v after Reset, expected the banner", g.phase)
	}

	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Level 1") {
		t.Error("banner should show the level number")
	}

	skipBanner(t, g)
	if g.playing.Timer != 0 {
		t.Errorf("level timer = %d during the banner, expected 0", g.playing.Timer)
	}
}

func TestGameAdvancesAndWins(t *testing.T) {
	g := newTestGame(walkLevel(t, "a"), walkLevel(t, "b"))
	right := core.NewInputFrame()
	right.X = core.TriPositive

	skipBanner(t, g)
	for i := 0; i < 400 && g.current == 0; i++ {
		g.Step(right)
	}
	if g.current != 1 || g.phase != phaseBanner {
		t.Fatalf("current = %d phase = %v, expected the second level's banner", g.current, g.phase)
	}
	if s := g.State(); s.Level != 1 || s.Score != LevelScore || s.GameOver {
		t.Errorf("State() = %+v after the first level", s)
	}

	skipBanner(t, g)
	for i := 0; i < 400 && !g.State().GameOver; i++ {
		g.Step(right)
	}
	s := g.State()
	if !s.GameOver || !s.Won {
		t.Fatalf("State() = %+v, expected a won game", s)
	}
	if s.Score != 2*LevelScore {
		t.Errorf("Score = %d, expected %d", s.Score, 2*LevelScore)
	}

	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "YOU WIN") {
		t.Error("won screen should say so")
	}

	// Restart begins a new run.
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if s := g.State(); s.GameOver || s.Level != 0 || s.Score != 0 {
		t.Errorf("State() = %+v after restart, expected a fresh run", s)
	}
}

func TestGameDeathRestartsLevel(t *testing.T) {
	g := newTestGame(spikeLevel(t))
	skipBanner(t, g)

	for i := 0; i < 60 && g.phase == phasePlaying; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.phase != phaseDying {
		t.Fatalf("phase = %v, expected dying", g.phase)
	}
	if g.Deaths() != 1 {
		t.Errorf("Deaths() = %d, expected 1", g.Deaths())
	}

	timing := testTuning().Timing
	want := (timing.DeathSteps - 1) * timing.DeathStepTicks
	ticks := 0
	for g.phase == phaseDying && ticks < 200 {
		g.Step(core.NewInputFrame())
		ticks++
	}
	if ticks != want {
		t.Errorf("death sequence took %d ticks, expected %d", ticks, want)
	}
	if g.phase != phaseBanner || g.current != 0 {
		t.Errorf("phase = %v current = %d, expected the same level again", g.phase, g.current)
	}
	if g.playing.Timer != 0 {
		t.Errorf("restarted level timer = %d, expected 0", g.playing.Timer)
	}
	if s := g.State(); s.Score != 0 {
		t.Errorf("Score = %d, expected deaths to floor at 0", s.Score)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(walkLevel(t, "a"))
	skipBanner(t, g)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	timer := g.playing.Timer
	right := core.NewInputFrame()
	right.X = core.TriPositive
	for i := 0; i < 10; i++ {
		g.Step(right)
	}
	if g.playing.Timer != timer {
		t.Error("paused game advanced")
	}

	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}

	g.Step(pause)
	g.Step(right)
	if g.State().Paused || g.playing.Timer == timer {
		t.Error("unpaused game should advance")
	}
}

func TestGameRestartLevel(t *testing.T) {
	g := newTestGame(walkLevel(t, "a"))
	skipBanner(t, g)

	right := core.NewInputFrame()
	right.X = core.TriPositive
	for i := 0; i < 20; i++ {
		g.Step(right)
	}
	start := g.levels[0].PlayerStart.Vec().Add(testTuning().Player.SpawnOffset.Vec())
	if g.playing.Player.Entity.Position == start {
		t.Fatal("player should have moved")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.playing.Player.Entity.Position != start || g.phase != phaseBanner {
		t.Errorf("restart left the player at %v in phase %v", g.playing.Player.Entity.Position, g.phase)
	}
}

func TestGameReloadLevels(t *testing.T) {
	a, b := walkLevel(t, "a"), walkLevel(t, "b")
	g := newTestGame(a, b)
	g.SetStartLevel(1)
	g.Reset(testRuntime)
	if g.current != 1 {
		t.Fatalf("current = %d, expected the start level", g.current)
	}

	b2 := walkLevel(t, "b")
	b2.Name = "Reworked"
	g.ReloadLevels([]*level.Level{a, b2})
	if g.current != 1 || g.playing.Level != b2 {
		t.Errorf("reload should restart the same level id, got %d", g.current)
	}

	g.ReloadLevels([]*level.Level{walkLevel(t, "c")})
	if g.current != 0 || g.playing.Level.ID != "c" {
		t.Errorf("reload without the current id should start over, got %d", g.current)
	}

	g.ReloadLevels(nil)
	if g.playing.Level.ID != "c" {
		t.Error("an empty reload should keep the current levels")
	}
}

func TestGameResizeKeepsProgress(t *testing.T) {
	g := newTestGame(walkLevel(t, "a"))
	skipBanner(t, g)
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	timer := g.playing.Timer

	g.Resize(40, 12)
	if g.playing.Timer != timer {
		t.Error("resize restarted the level")
	}
	if g.playing.View() != Viewport(40, 12) {
		t.Errorf("view = %+v, expected %+v", g.playing.View(), Viewport(40, 12))
	}
}

func TestGameRenderShowsWorld(t *testing.T) {
	g := newTestGame(walkLevel(t, "a"))
	skipBanner(t, g)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Level 1/1", "Score 0", "█", "⚑", "o"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	// The floor is row 4 of the level, one HUD row down.
	if row := screen.Row(HUDRows + 4); !strings.HasPrefix(row, strings.Repeat("█", 24)) {
		t.Errorf("floor row = %q", row)
	}
}

func TestViewport(t *testing.T) {
	v := Viewport(80, 24)
	if v.W != 320 || v.H != 184 {
		t.Errorf("Viewport(80, 24) = %+v, expected 320x184", v)
	}
	if v := Viewport(0, 0); v.W <= 0 || v.H <= 0 {
		t.Errorf("Viewport(0, 0) = %+v, expected a positive size", v)
	}
}

func TestCenteredMessageBox(t *testing.T) {
	g := newTestGame(walkLevel(t, "a"))
	screen := core.NewScreen(40, 11)
	g.drawCenteredMessage(screen, "PAUSED", "Press P to resume", core.ColorBrightYellow)

	// Box is 21x5, centred at (9, 3).
	if screen.Get(9, 3) != '┌' || screen.Get(29, 7) != '┘' {
		t.Errorf("box corners = %q %q, expected ┌ ┘", screen.Get(9, 3), screen.Get(29, 7))
	}
	if got := string([]rune(screen.Row(4))[17:23]); got != "PAUSED" {
		t.Errorf("title row = %q, expected PAUSED centred at column 17", screen.Row(4))
	}
	if got := string([]rune(screen.Row(6))[11:28]); got != "Press P to resume" {
		t.Errorf("subtitle row = %q", screen.Row(6))
	}
	if screen.GetCell(17, 4).Color != core.ColorBrightYellow {
		t.Error("title should use the message colour")
	}
}
