// Package leveldata parses tile maps and lays them out in world space.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

import (
	"errors"
	"fmt"
)

// TileGrid holds tile codes row by row, top row first, as authored in the map file.
type TileGrid [][]int

// Rows returns the number of rows in the grid.
func (g TileGrid) Rows() int {
	return len(g)
}

// Cols returns the number of columns in the grid (0 for an empty grid).
func (g TileGrid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

var (
	ErrMapNotFound  = errors.New("map file not found or unreadable")
	ErrMapRead      = errors.New("map read failed")
	ErrParse        = errors.New("invalid tile code")
	ErrRaggedRow    = errors.New("row length differs from first row")
	ErrEmptyMap     = errors.New("map has no rows")
	ErrUnknownTile  = errors.New("unknown tile code")
	ErrMultiTileset = errors.New("only single-tileset TMX maps are supported")
)

// ParseError reports a field that is not a base-10 integer.
type ParseError struct {
	Line   int // 1-based line number in the source
	Column int // 1-based field index within the line
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d field %d: %q: %v", e.Line, e.Column, e.Field, e.Err)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// PlacedTile is a non-empty grid cell positioned in y-up world coordinates.
type PlacedTile struct {
	Row, Col int
	Code     int
	Kind     TileKind
	X, Y     float64 // left and top edges
	Size     float64
}

// Bottom returns the bottom edge of the tile.
func (t PlacedTile) Bottom() float64 {
	return t.Y - t.Size
}

// Right returns the right edge of the tile.
func (t PlacedTile) Right() float64 {
	return t.X + t.Size
}
