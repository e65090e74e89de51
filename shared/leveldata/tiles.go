package leveldata

// TileKind identifies the look of a placed tile. Every placed tile is solid.
type TileKind int

const (
	Empty TileKind = iota
	Box
	GrassLeft
	GrassMid
	GrassRight
	GrassHillLeft
	GrassHillRight
	GrassCornerLeft
	GrassCornerRight
	GrassCenterRound
	Grass
	Chain
	Spikes
	SignLeft
	SignRight
	TileKindCount // Must be last - used for array sizing
)

var kindNames = [TileKindCount]string{
	Empty:            "empty",
	Box:              "box",
	GrassLeft:        "grass_left",
	GrassMid:         "grass_mid",
	GrassRight:       "grass_right",
	GrassHillLeft:    "grass_hill_left",
	GrassHillRight:   "grass_hill_right",
	GrassCornerLeft:  "grass_corner_left",
	GrassCornerRight: "grass_corner_right",
	GrassCenterRound: "grass_center_round",
	Grass:            "grass",
	Chain:            "chain",
	Spikes:           "spikes",
	SignLeft:         "sign_left",
	SignRight:        "sign_right",
}

func (k TileKind) String() string {
	if k < 0 || k >= TileKindCount {
		return "invalid"
	}
	return kindNames[k]
}

// tileCodes maps map-file codes to tile kinds. Codes 3 and 52 both draw the
// right grass edge.
var tileCodes = map[int]TileKind{
	0:   Box,
	1:   GrassLeft,
	3:   GrassRight,
	9:   Chain,
	35:  Grass,
	36:  GrassCenterRound,
	42:  GrassCornerLeft,
	43:  GrassCornerRight,
	48:  GrassHillLeft,
	49:  GrassHillRight,
	51:  GrassMid,
	52:  GrassRight,
	106: SignLeft,
	107: SignRight,
	127: Spikes,
}

// FallbackKind is used for non-negative codes missing from the tile table.
const FallbackKind = Box

// Lookup returns the kind for a code and whether the code is in the table.
// Negative codes are empty space and always report true.
func Lookup(code int) (TileKind, bool) {
	if code < 0 {
		return Empty, true
	}
	kind, ok := tileCodes[code]
	return kind, ok
}

// Classify maps any code to a tile kind: negative codes are Empty, known
// codes map through the table and unknown codes fall back to FallbackKind.
func Classify(code int) TileKind {
	kind, ok := Lookup(code)
	if !ok {
		return FallbackKind
	}
	return kind
}

// Placement returns the world-space left and top edges of the tile at
// (row, col). Row 0 is the top row of the file, so y is flipped against
// mapHeight rows.
func Placement(row, col int, tileSize float64, mapHeight int) (x, y float64) {
	x = float64(col) * tileSize
	y = float64(mapHeight-row) * tileSize
	return x, y
}

// Layout positions every non-empty cell of the grid.
func Layout(grid TileGrid, tileSize float64, mapHeight int) []PlacedTile {
	var tiles []PlacedTile
	for r, row := range grid {
		for c, code := range row {
			kind := Classify(code)
			if kind == Empty {
				continue
			}
			x, y := Placement(r, c, tileSize, mapHeight)
			tiles = append(tiles, PlacedTile{
				Row:  r,
				Col:  c,
				Code: code,
				Kind: kind,
				X:    x,
				Y:    y,
				Size: tileSize,
			})
		}
	}
	return tiles
}

// Bounds returns the world rectangle covered by the laid-out tiles as
// (left, bottom, right, top). An empty layout yields all zeros.
func Bounds(tiles []PlacedTile) (left, bottom, right, top float64) {
	for i, t := range tiles {
		if i == 0 {
			left, bottom, right, top = t.X, t.Bottom(), t.Right(), t.Y
			continue
		}
		left = min(left, t.X)
		bottom = min(bottom, t.Bottom())
		right = max(right, t.Right())
		top = max(top, t.Y)
	}
	return left, bottom, right, top
}
