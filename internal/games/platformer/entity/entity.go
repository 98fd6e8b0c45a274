// Package entity implements the moving body shared by the player and the
// enemies: a fixed-point position and velocity, a centred collision box, and
// the tile collision solver that moves it through a level.
package entity

import (
	"github.com/vovakirdan/tui-platformer/internal/fixnum"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sprite"
)

// SpriteSize is the default sprite half extent in pixels.
var SpriteSize = fixnum.P(16, 16)

// searchPrecision bounds the bisection in the collision solver.
var searchPrecision = fixnum.Ratio(1, 8)

// Viewport is the visible area in pixels.
type Viewport struct {
	W, H int
}

// Half returns the centre offset of the viewport.
func (v Viewport) Half() fixnum.Point { return fixnum.P(v.W/2, v.H/2) }

// Entity is a body that moves through the level.
type Entity struct {
	Position fixnum.Vec2
	Velocity fixnum.Vec2

	// CollisionBox is the full width and height of the AABB centred on Position.
	CollisionBox fixnum.Point

	// SpriteOffset shifts only the drawn sprite, never the collision box.
	SpriteOffset fixnum.Point

	// Size is the sprite half extent used to place and cull the sprite.
	Size fixnum.Point

	Sprite sprite.Object
}

// New creates an entity with the given collision box at the origin.
func New(box fixnum.Point) Entity {
	return Entity{
		CollisionBox: box,
		Size:         SpriteSize,
		Sprite: sprite.Object{
			Size:     SpriteSize,
			Priority: sprite.PriorityNormal,
		},
	}
}

// tileSpan returns the inclusive tile range covered by the box at pos.
func (e *Entity) tileSpan(pos fixnum.Vec2) (left, top, right, bottom int) {
	hx := fixnum.New(e.CollisionBox.X / 2)
	hy := fixnum.New(e.CollisionBox.Y / 2)
	one := fixnum.New(1)

	left = fixnum.FloorDiv(pos.X.Sub(hx).Floor(), level.TileSize)
	right = fixnum.FloorDiv(pos.X.Add(hx).Sub(one).Floor(), level.TileSize)
	top = fixnum.FloorDiv(pos.Y.Sub(hy).Floor(), level.TileSize)
	bottom = fixnum.FloorDiv(pos.Y.Add(hy).Sub(one).Floor(), level.TileSize)
	return left, top, right, bottom
}

// somethingAt reports whether pred holds for any tile the box touches at pos.
func (e *Entity) somethingAt(pos fixnum.Vec2, pred func(x, y int) bool) bool {
	left, top, right, bottom := e.tileSpan(pos)
	for x := left; x <= right; x++ {
		for y := top; y <= bottom; y++ {
			if pred(x, y) {
				return true
			}
		}
	}
	return false
}

// CollisionAt reports whether the box at pos overlaps a solid tile.
func (e *Entity) CollisionAt(l *level.Level, pos fixnum.Vec2) bool {
	return e.somethingAt(pos, l.Collides)
}

// LethalAt reports whether the box at pos overlaps a lethal tile.
func (e *Entity) LethalAt(l *level.Level, pos fixnum.Vec2) bool {
	return e.somethingAt(pos, l.Kills)
}

// GoalAt reports whether the box at pos overlaps a goal tile.
func (e *Entity) GoalAt(l *level.Level, pos fixnum.Vec2) bool {
	return e.somethingAt(pos, l.Wins)
}

// OnGround reports whether the box one pixel below the current position is blocked.
func (e *Entity) OnGround(l *level.Level) bool {
	return e.CollisionAt(l, e.Position.Add(fixnum.VI(0, 1)))
}

// UpdatePosition moves the entity by its velocity, x axis first and then y,
// stopping each axis just short of solid tiles. It returns the displacement
// actually applied, which callers adopt as the new velocity.
func (e *Entity) UpdatePosition(l *level.Level) fixnum.Vec2 {
	old := e.Position

	xMove := fixnum.V(e.Velocity.X, 0)
	if !e.CollisionAt(l, e.Position.Add(xMove)) {
		e.Position = e.Position.Add(xMove)
	} else {
		e.Position = e.Position.Add(e.binarySearchCollision(l, fixnum.VI(1, 0), e.Velocity.X))
	}

	yMove := fixnum.V(0, e.Velocity.Y)
	if !e.CollisionAt(l, e.Position.Add(yMove)) {
		e.Position = e.Position.Add(yMove)
	} else {
		e.Position = e.Position.Add(e.binarySearchCollision(l, fixnum.VI(0, 1), e.Velocity.Y))
	}

	return e.Position.Sub(old)
}

// binarySearchCollision finds the longest free move along unit of at most
// initial, to within searchPrecision.
func (e *Entity) binarySearchCollision(l *level.Level, unit fixnum.Vec2, initial fixnum.Num) fixnum.Vec2 {
	low := fixnum.Num(0)
	high := initial

	for high.Sub(low).Abs() > searchPrecision {
		mid := low.Add(high).DivInt(2)
		if e.CollisionAt(l, e.Position.Add(unit.Mul(mid))) {
			high = mid
		} else {
			low = mid
		}
	}
	return unit.Mul(low)
}

// CommitPosition writes the sprite's screen position for a camera at offset
// and hides it when it lies outside the viewport grown by the sprite size.
func (e *Entity) CommitPosition(offset fixnum.Vec2, view Viewport) {
	pos := e.Position.Sub(offset).Floor().Sub(e.SpriteOffset)
	e.Sprite.Position = pos.Sub(e.Size)
	e.Sprite.Size = e.Size

	e.Sprite.Visible = !(pos.X < -e.Size.X ||
		pos.X > view.W+e.Size.X ||
		pos.Y < -e.Size.Y ||
		pos.Y > view.H+e.Size.Y)
}
