package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/fixnum"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/entity"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

// NextCameraPosition returns the scroll offset for the next tick. The view
// centre moves a fraction of the way toward a point scaled from the player
// position, then the offset is clamped to the level.
func NextCameraPosition(current, player fixnum.Vec2, l *level.Level, view entity.Viewport, tuning config.CameraConfig) fixnum.Vec2 {
	target := tuning.TargetRatio.ApplyPoint(player.Floor())
	half := view.Half()
	centre := current.Floor().Add(half)

	next := centre.MulInt(tuning.Smoothing).Add(target).DivInt(tuning.Smoothing + 1).Sub(half)
	return clampCamera(next, l, view).Vec()
}

// InitialCameraPosition centres the view on start as far as the level allows.
func InitialCameraPosition(start fixnum.Vec2, l *level.Level, view entity.Viewport) fixnum.Vec2 {
	return clampCamera(start.Floor().Sub(view.Half()), l, view).Vec()
}

// clampCamera keeps the view inside the level. A level smaller than the view
// pins that axis at 0.
func clampCamera(p fixnum.Point, l *level.Level, view entity.Viewport) fixnum.Point {
	maxX := max(l.PixelWidth()-view.W, 0)
	maxY := max(l.PixelHeight()-view.H, 0)
	return fixnum.P(core.Clamp(p.X, 0, maxX), core.Clamp(p.Y, 0, maxY))
}
