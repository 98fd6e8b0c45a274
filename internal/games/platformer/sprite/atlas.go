package sprite

import (
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Glyph is a frame drawn as terminal text. Rows are top to bottom; spaces are
// transparent.
type Glyph struct {
	Rows  []string
	Color core.Color
}

// Width returns the widest row in cells.
func (g Glyph) Width() int {
	w := 0
	for _, r := range g.Rows {
		w = max(w, len([]rune(r)))
	}
	return w
}

// Height returns the number of rows.
func (g Glyph) Height() int { return len(g.Rows) }

// Flipped returns the glyph mirrored horizontally.
func (g Glyph) Flipped() Glyph {
	w := g.Width()
	rows := make([]string, len(g.Rows))
	for i, row := range g.Rows {
		src := []rune(row)
		dst := make([]rune, w)
		for x := range dst {
			dst[x] = ' '
		}
		for x, r := range src {
			dst[w-1-x] = mirrorRune(r)
		}
		rows[i] = string(dst)
	}
	return Glyph{Rows: rows, Color: g.Color}
}

var mirrored = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'╭': '╮', '╮': '╭',
	'╰': '╯', '╯': '╰',
	'▌': '▐', '▐': '▌',
}

func mirrorRune(r rune) rune {
	if m, ok := mirrored[r]; ok {
		return m
	}
	return r
}

// Atlas is a Provider backed by glyph frames.
type Atlas struct {
	tags map[Tag][]Glyph
}

// NewAtlas builds an atlas from per-tag frame lists.
func NewAtlas(tags map[Tag][]Glyph) *Atlas {
	return &Atlas{tags: tags}
}

// Frame implements Provider.
func (a *Atlas) Frame(tag Tag, offset int) Frame {
	n := len(a.tags[tag])
	if n == 0 {
		return Frame{Tag: tag}
	}
	i := offset % n
	if i < 0 {
		i += n
	}
	return Frame{Tag: tag, Index: i}
}

// Len implements Provider.
func (a *Atlas) Len(tag Tag) int {
	return len(a.tags[tag])
}

// Glyph returns the art for f, or false when the atlas has none.
func (a *Atlas) Glyph(f Frame) (Glyph, bool) {
	frames := a.tags[f.Tag]
	if f.Index < 0 || f.Index >= len(frames) {
		return Glyph{}, false
	}
	return frames[f.Index], true
}

func frames(color core.Color, art ...string) []Glyph {
	out := make([]Glyph, len(art))
	for i, a := range art {
		out[i] = Glyph{Rows: strings.Split(a, "\n"), Color: color}
	}
	return out
}

// DefaultAtlas returns the built-in terminal art. Warrior frames face right;
// boar frames face left.
func DefaultAtlas() *Atlas {
	return NewAtlas(map[Tag][]Glyph{
		WarriorIdle: frames(core.ColorBrightWhite,
			" o \n/|\\",
			" o \n/|\\",
			" o \n(|)",
			" o \n/|\\",
		),
		WarriorRun: frames(core.ColorBrightWhite,
			" o \n/| ",
			" o \n |\\",
			" o \n/ \\",
			" o>\n | ",
		),
		WarriorJump: frames(core.ColorBrightWhite,
			"\\o/\n | ",
			" o/\n/| ",
			"\\o \n |\\",
		),
		WarriorFall: frames(core.ColorBrightWhite,
			"\\o/\n/ \\",
		),
		// The sword reaches right of the body; the body sits four cells left
		// of the glyph centre, which the attack sprite offset cancels.
		WarriorAttack: frames(core.ColorBrightYellow,
			" o/\n/|         ",
			" o_\n/|==-      ",
			" o_\n/|=======- ",
			" o \n/|\\--------",
		),
		WarriorDeadStart: frames(core.ColorBrightRed,
			" o \n/|\\",
			" x \n/|\\",
			"\\x/\n | ",
			" x \n | ",
			"   \n x ",
		),
		// Drawn lowered by two rows; the body is on the top row.
		WarriorDeadEnd: frames(core.ColorRed,
			"_x_\n   \n   ",
			"_x.\n   \n   ",
			"_._\n   \n   ",
			"...\n   \n   ",
		),
		BoarIdle: frames(core.ColorBrown,
			" ,__, \n<oo__)",
			" ,__, \n<oo__)",
			" ,__,~\n<oo__)",
			" ,__, \n<oo__)",
		),
		BoarRun: frames(core.ColorOrange,
			" ,__, \n<oo__)",
			" ,__,'\n<oo__/",
			" ,__,'\n<oo__)",
			" ,__,'\n<oo__\\",
			" ,__,'\n<oo__)",
			" ,__,'\n<oo__/",
			" ,__, \n<oo__)",
		),
		BoarHit: frames(core.ColorBrightRed,
			" ,__, \n<xx__)",
			" ,__, \n<xx__)",
			"  __  \n<xx__)",
			"      \n _xx_ ",
		),
	})
}
