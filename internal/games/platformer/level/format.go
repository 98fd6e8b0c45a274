package level

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/fixnum"
)

// Object types recognised in level files.
const (
	ObjectPlayerStart = "Player Start"
	ObjectBoarSpawn   = "Boar Spawn"
	ObjectSlimeSpawn  = "Slime Spawn"
	ObjectSnailSpawn  = "Snail Spawn"
	ObjectEnemyStop   = "Enemy Stop"
)

// YAMLLevel is the on-disk level layout.
//
// Rows draw the map one glyph per tile. Each glyph is either a tile from the
// legend or a marker; a marker cell gets the blank tile and places an object.
// Markers sit in the tile an entity's feet occupy: a player start resolves to
// the bottom pixel row of that tile, a boar to its top pixel row, and other
// objects to the tile centre. Objects may also be given in pixels directly.
type YAMLLevel struct {
	ID              string              `yaml:"id"`
	Name            string              `yaml:"name"`
	Legend          map[string]YAMLTile `yaml:"legend"`
	Blank           string              `yaml:"blank,omitempty"`
	Markers         map[string]string   `yaml:"markers,omitempty"`
	BackgroundKinds []Kind              `yaml:"background_kinds"`
	ForegroundKinds []Kind              `yaml:"foreground_kinds"`
	Rows            []string            `yaml:"rows"`
	Objects         []YAMLObject        `yaml:"objects,omitempty"`
}

// YAMLTile maps a glyph to a tile id on each layer.
type YAMLTile struct {
	BG uint16 `yaml:"bg"`
	FG uint16 `yaml:"fg"`
}

// YAMLObject is an object placed in pixel coordinates.
type YAMLObject struct {
	Type string `yaml:"type"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// UnmarshalYAML accepts a kind name ("solid") or its numeric value (1).
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: expected a scalar", value.Line, ErrUnknownKind)
	}
	parsed, err := ParseKind(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

// MarshalYAML writes the kind by name.
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// ParseKind reads a kind name or number.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "0":
		return KindNone, nil
	case "solid", "collision", "1":
		return KindCollision, nil
	case "lethal", "kill", "2":
		return KindLethal, nil
	case "goal", "win", "4":
		return KindGoal, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, n)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ParseYAML parses a YAML level file into a validated Level.
func ParseYAML(data []byte) (*Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return yl.Build()
}

// Build converts the file layout into a Level.
func (yl YAMLLevel) Build() (*Level, error) {
	if yl.ID == "" {
		return nil, fmt.Errorf("level id is required")
	}
	if len(yl.Rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrDimensions)
	}

	blank := yl.Blank
	if blank == "" {
		blank = "."
	}
	blankTile := yl.Legend[blank]

	width := len([]rune(yl.Rows[0]))
	lvl := &Level{
		ID:              yl.ID,
		Name:            yl.Name,
		Width:           width,
		Height:          len(yl.Rows),
		Background:      make([]uint16, 0, width*len(yl.Rows)),
		Foreground:      make([]uint16, 0, width*len(yl.Rows)),
		BackgroundKinds: yl.BackgroundKinds,
		ForegroundKinds: yl.ForegroundKinds,
	}
	if lvl.Name == "" {
		lvl.Name = yl.ID
	}

	var objects []YAMLObject
	for y, row := range yl.Rows {
		glyphs := []rune(row)
		if len(glyphs) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrDimensions, y, len(glyphs), width)
		}
		for x, g := range glyphs {
			key := string(g)
			if t, ok := yl.Legend[key]; ok {
				lvl.Background = append(lvl.Background, t.BG)
				lvl.Foreground = append(lvl.Foreground, t.FG)
				continue
			}
			objType, ok := yl.Markers[key]
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d column %d", ErrUnknownGlyph, key, y, x)
			}
			lvl.Background = append(lvl.Background, blankTile.BG)
			lvl.Foreground = append(lvl.Foreground, blankTile.FG)
			at := markerAnchor(objType, x, y)
			objects = append(objects, YAMLObject{Type: objType, X: at.X, Y: at.Y})
		}
	}
	objects = append(objects, yl.Objects...)

	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	if err := lvl.placeObjects(objects); err != nil {
		return nil, err
	}
	return lvl, nil
}

func markerAnchor(objType string, tx, ty int) fixnum.Point {
	x := tx*TileSize + TileSize/2
	switch objType {
	case ObjectPlayerStart:
		return fixnum.P(x, ty*TileSize+TileSize-1)
	case ObjectBoarSpawn:
		return fixnum.P(x, ty*TileSize)
	default:
		return fixnum.P(x, ty*TileSize+TileSize/2)
	}
}

func (l *Level) placeObjects(objects []YAMLObject) error {
	hasStart := false
	for _, o := range objects {
		at := fixnum.P(o.X, o.Y)
		switch o.Type {
		case ObjectPlayerStart:
			if hasStart {
				return fmt.Errorf("%w: second start at %v", ErrMultiplePlayerStarts, at)
			}
			l.PlayerStart = at
			hasStart = true
		case ObjectBoarSpawn:
			l.Spawns = append(l.Spawns, Spawn{Kind: EnemyBoar, At: at})
		case ObjectSlimeSpawn:
			l.Spawns = append(l.Spawns, Spawn{Kind: EnemySlime, At: at})
		case ObjectSnailSpawn:
			l.Spawns = append(l.Spawns, Spawn{Kind: EnemySnail, At: at})
		case ObjectEnemyStop:
			l.EnemyStops = append(l.EnemyStops, at)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownObject, o.Type)
		}
	}
	if !hasStart {
		return ErrNoPlayerStart
	}
	return nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
