package leveldata

import "testing"

func TestClassify_KnownCodes(t *testing.T) {
	tests := []struct {
		code int
		want TileKind
	}{
		{0, Box},
		{1, GrassLeft},
		{3, GrassRight},
		{9, Chain},
		{35, Grass},
		{36, GrassCenterRound},
		{42, GrassCornerLeft},
		{43, GrassCornerRight},
		{48, GrassHillLeft},
		{49, GrassHillRight},
		{51, GrassMid},
		{52, GrassRight},
		{106, SignLeft},
		{107, SignRight},
		{127, Spikes},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := Classify(tt.code); got != tt.want {
				t.Errorf("Classify(%d) = %v, want %v", tt.code, got, tt.want)
			}
			if _, ok := Lookup(tt.code); !ok {
				t.Errorf("Lookup(%d) reported unknown code", tt.code)
			}
		})
	}
}

func TestClassify_Totality(t *testing.T) {
	for code := -10; code <= 200; code++ {
		kind := Classify(code)
		if kind < 0 || kind >= TileKindCount {
			t.Fatalf("Classify(%d) = %d, outside the kind range", code, kind)
		}
		if code < 0 && kind != Empty {
			t.Errorf("Classify(%d) = %v, want empty", code, kind)
		}
		if code >= 0 && kind == Empty {
			t.Errorf("Classify(%d) = empty for a non-negative code", code)
		}
	}
}

func TestClassify_UnknownFallsBackToBox(t *testing.T) {
	for _, code := range []int{2, 4, 50, 128, 1000} {
		if got := Classify(code); got != FallbackKind {
			t.Errorf("Classify(%d) = %v, want %v", code, got, FallbackKind)
		}
		if _, ok := Lookup(code); ok {
			t.Errorf("Lookup(%d) reported a table hit", code)
		}
	}
}

func TestPlacement(t *testing.T) {
	x, y := Placement(2, 3, 64, 7)
	if x != 192 || y != 320 {
		t.Errorf("Placement(2, 3, 64, 7) = (%v, %v), want (192, 320)", x, y)
	}

	x, y = Placement(0, 0, 64, 7)
	if x != 0 || y != 448 {
		t.Errorf("Placement(0, 0, 64, 7) = (%v, %v), want (0, 448)", x, y)
	}

	// Rows past the map height land below y = 0.
	_, y = Placement(9, 0, 64, 7)
	if y != -128 {
		t.Errorf("Placement(9, 0, 64, 7) y = %v, want -128", y)
	}
}

func TestLayout_OmitsNegativeCodes(t *testing.T) {
	grid := TileGrid{
		{-1, 0, -1, 51},
		{1, 51, 51, 3},
	}

	tiles := Layout(grid, 64, 7)

	perRow := map[int]int{}
	for _, tile := range tiles {
		perRow[tile.Row]++
		if grid[tile.Row][tile.Col] < 0 {
			t.Errorf("tile placed at negative cell (%d, %d)", tile.Row, tile.Col)
		}
	}
	if perRow[0] != 2 {
		t.Errorf("row 0 placed %d tiles, want 2", perRow[0])
	}
	if perRow[0] >= len(grid[0]) {
		t.Errorf("row 0 placed %d tiles, want fewer than the row length", perRow[0])
	}
	if perRow[1] != 4 {
		t.Errorf("row 1 placed %d tiles, want 4", perRow[1])
	}
}

func TestLayout_Positions(t *testing.T) {
	tiles := Layout(TileGrid{{-1, 127}, {51, -1}}, 64, 7)
	if len(tiles) != 2 {
		t.Fatalf("Layout() placed %d tiles, want 2", len(tiles))
	}

	spikes := tiles[0]
	if spikes.Kind != Spikes || spikes.X != 64 || spikes.Y != 448 {
		t.Errorf("tiles[0] = %+v, want spikes at (64, 448)", spikes)
	}
	grass := tiles[1]
	if grass.Kind != GrassMid || grass.X != 0 || grass.Y != 384 || grass.Bottom() != 320 {
		t.Errorf("tiles[1] = %+v, want grass_mid at (0, 384) with bottom 320", grass)
	}
}

func TestBounds(t *testing.T) {
	tiles := Layout(TileGrid{{0, -1, -1}, {-1, -1, 0}}, 64, 7)
	left, bottom, right, top := Bounds(tiles)
	if left != 0 || bottom != 320 || right != 192 || top != 448 {
		t.Errorf("Bounds() = (%v, %v, %v, %v), want (0, 320, 192, 448)", left, bottom, right, top)
	}

	left, bottom, right, top = Bounds(nil)
	if left != 0 || bottom != 0 || right != 0 || top != 0 {
		t.Errorf("Bounds(nil) = (%v, %v, %v, %v), want zeros", left, bottom, right, top)
	}
}
