package level

import (
	"embed"
	"io/fs"
)

//go:embed levels/*.yaml
var builtinFS embed.FS

// BuiltinRoot is the Root reported for levels compiled into the binary.
const BuiltinRoot = "builtin"

// Builtin loads the levels shipped with the game, in play order.
func Builtin() ([]*Level, error) {
	sub, err := fs.Sub(builtinFS, "levels")
	if err != nil {
		return nil, err
	}
	return NewFSLoader(sub, BuiltinRoot).LoadAll()
}
