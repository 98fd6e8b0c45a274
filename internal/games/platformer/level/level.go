// Package level holds the immutable tile map a platformer level is played on:
// two stacked tile layers with per-tile-id classification tables, spawn
// points, and patrol stops. It also loads levels from YAML files.
package level

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/fixnum"
)

// TileSize is the edge length of a tile in pixels.
const TileSize = 8

// Kind classifies a tile id. Each tile carries at most one kind.
type Kind uint8

const (
	KindNone      Kind = 0
	KindCollision Kind = 1
	KindLethal    Kind = 2
	KindGoal      Kind = 4
)

// String returns the name used in level files.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindCollision:
		return "solid"
	case KindLethal:
		return "lethal"
	case KindGoal:
		return "goal"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// EnemyKind names an enemy type that can be spawned.
type EnemyKind int

const (
	EnemyBoar EnemyKind = iota
	EnemySlime
	EnemySnail
)

func (e EnemyKind) String() string {
	switch e {
	case EnemyBoar:
		return "boar"
	case EnemySlime:
		return "slime"
	case EnemySnail:
		return "snail"
	default:
		return "unknown"
	}
}

// Spawn is one enemy spawn point in world pixels.
type Spawn struct {
	Kind EnemyKind
	At   fixnum.Point
}

// Errors reported while building or loading a level.
var (
	ErrNoPlayerStart        = errors.New("level has no player start")
	ErrMultiplePlayerStarts = errors.New("level has more than one player start")
	ErrUnknownObject        = errors.New("unknown level object type")
	ErrUnknownGlyph         = errors.New("unknown tile glyph")
	ErrUnknownKind          = errors.New("unknown tile kind")
	ErrDimensions           = errors.New("invalid level dimensions")
)

// Level is a loaded level. It is never mutated during play.
type Level struct {
	ID   string
	Name string

	Width, Height int // In tiles

	// Row-major tile ids, len = Width*Height.
	Background []uint16
	Foreground []uint16

	// Tile id -> classification, one table per layer.
	BackgroundKinds []Kind
	ForegroundKinds []Kind

	PlayerStart fixnum.Point
	Spawns      []Spawn
	EnemyStops  []fixnum.Point

	// Path the level was loaded from, empty for levels built in code.
	Source string
}

// Validate checks that the layer arrays match the declared dimensions.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, l.Width, l.Height)
	}
	n := l.Width * l.Height
	if len(l.Background) != n || len(l.Foreground) != n {
		return fmt.Errorf("%w: %dx%d needs %d tiles per layer, got background %d foreground %d",
			ErrDimensions, l.Width, l.Height, n, len(l.Background), len(l.Foreground))
	}
	return nil
}

// PixelWidth returns the level width in pixels.
func (l *Level) PixelWidth() int { return l.Width * TileSize }

// PixelHeight returns the level height in pixels.
func (l *Level) PixelHeight() int { return l.Height * TileSize }

// InBounds reports whether tile (x, y) lies inside the map.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// Collides reports whether tile (x, y) blocks movement.
// Everything outside the map is solid.
func (l *Level) Collides(x, y int) bool {
	if !l.InBounds(x, y) {
		return true
	}
	return l.is(x, y, KindCollision)
}

// Kills reports whether tile (x, y) is lethal. Outside the map is not.
func (l *Level) Kills(x, y int) bool {
	return l.InBounds(x, y) && l.is(x, y, KindLethal)
}

// Wins reports whether tile (x, y) completes the level. Outside the map is not.
func (l *Level) Wins(x, y int) bool {
	return l.InBounds(x, y) && l.is(x, y, KindGoal)
}

// is reports whether either layer classifies the in-bounds tile (x, y) as k.
func (l *Level) is(x, y int, k Kind) bool {
	i := y*l.Width + x
	return lookup(l.ForegroundKinds, l.Foreground[i]) == k ||
		lookup(l.BackgroundKinds, l.Background[i]) == k
}

// KindsAt returns the classification of each layer at tile (x, y).
// Out-of-bounds tiles report KindNone for both.
func (l *Level) KindsAt(x, y int) (background, foreground Kind) {
	if !l.InBounds(x, y) {
		return KindNone, KindNone
	}
	i := y*l.Width + x
	return lookup(l.BackgroundKinds, l.Background[i]), lookup(l.ForegroundKinds, l.Foreground[i])
}

// TilesAt returns the raw tile ids of each layer at tile (x, y).
func (l *Level) TilesAt(x, y int) (background, foreground uint16, ok bool) {
	if !l.InBounds(x, y) {
		return 0, 0, false
	}
	i := y*l.Width + x
	return l.Background[i], l.Foreground[i], true
}

// lookup treats ids past the end of a table as unclassified.
func lookup(table []Kind, id uint16) Kind {
	if int(id) >= len(table) {
		return KindNone
	}
	return table[id]
}

// SpawnsOf returns the spawn points of one enemy kind in file order.
func (l *Level) SpawnsOf(kind EnemyKind) []fixnum.Point {
	var out []fixnum.Point
	for _, s := range l.Spawns {
		if s.Kind == kind {
			out = append(out, s.At)
		}
	}
	return out
}
