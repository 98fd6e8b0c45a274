// Package sprite holds the animation-facing side of the platformer: named
// animation tags, the frame provider the game logic selects from, and the
// Object handle the renderer draws each tick.
package sprite

import "github.com/vovakirdan/tui-platformer/internal/fixnum"

// Tag names an animation.
type Tag string

// Animations used by the game logic.
const (
	WarriorIdle      Tag = "warrior/idle"
	WarriorRun       Tag = "warrior/run"
	WarriorJump      Tag = "warrior/jump"
	WarriorFall      Tag = "warrior/fall"
	WarriorAttack    Tag = "warrior/attack"
	WarriorDeadStart Tag = "warrior/dead-start"
	WarriorDeadEnd   Tag = "warrior/dead-end"

	BoarIdle Tag = "boar/idle"
	BoarRun  Tag = "boar/run"
	BoarHit  Tag = "boar/hit"
)

// Frame identifies one displayable frame of an animation.
type Frame struct {
	Tag   Tag
	Index int
}

// Provider resolves animation offsets to frames.
type Provider interface {
	// Frame returns the frame at offset, wrapping past the end of the tag.
	Frame(tag Tag, offset int) Frame
	// Len returns the number of frames in tag, or 0 if unknown.
	Len(tag Tag) int
}

// Priority orders objects when drawing; lower values draw on top.
type Priority int

const (
	PriorityFront  Priority = 0
	PriorityNormal Priority = 1
)

// Object is the renderer's view of one on-screen entity. The game writes it
// once per tick and never reads it back for game logic.
type Object struct {
	Frame    Frame
	HFlip    bool
	Position fixnum.Point // Screen position of the sprite's top-left corner, in pixels
	Size     fixnum.Point // Half extent; Position+Size is the sprite centre
	Visible  bool
	Priority Priority
}

// SetFrame replaces the displayed frame.
func (o *Object) SetFrame(f Frame) { o.Frame = f }

// Centre returns the screen-space centre of the sprite.
func (o *Object) Centre() fixnum.Point { return o.Position.Add(o.Size) }
