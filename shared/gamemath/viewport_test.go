package gamemath

import "testing"

var testMargins = Margins{Left: 40, Right: 150, Top: 40, Bottom: 40}

func TestScrollViewport_InsideMarginsIsUnchanged(t *testing.T) {
	start := Viewport{Left: 100, Bottom: -20}
	player := Rect{Left: 300, Right: 340, Top: 200, Bottom: 140}

	got, changed := ScrollViewport(start, player, 800, 600, testMargins)
	if changed {
		t.Errorf("ScrollViewport() changed = true for a player inside the margins")
	}
	if got != start {
		t.Errorf("ScrollViewport() = %+v, want %+v", got, start)
	}
}

func TestScrollViewport_Exactness(t *testing.T) {
	tests := []struct {
		name   string
		start  Viewport
		player Rect
		want   Viewport
	}{
		{
			name:   "left",
			start:  Viewport{},
			player: Rect{Left: 10, Right: 50, Top: 300, Bottom: 240},
			want:   Viewport{Left: -30},
		},
		{
			name:   "right uses the wide right margin",
			start:  Viewport{},
			player: Rect{Left: 620, Right: 660.5, Top: 300, Bottom: 240},
			want:   Viewport{Left: 10.5},
		},
		{
			name:   "top",
			start:  Viewport{Bottom: 10},
			player: Rect{Left: 200, Right: 240, Top: 575, Bottom: 515},
			want:   Viewport{Bottom: 15},
		},
		{
			name:   "bottom",
			start:  Viewport{Bottom: 10},
			player: Rect{Left: 200, Right: 240, Top: 73, Bottom: 13},
			want:   Viewport{Bottom: -27},
		},
		{
			name:   "left and bottom together",
			start:  Viewport{Left: 50, Bottom: 50},
			player: Rect{Left: 60, Right: 100, Top: 120, Bottom: 60},
			want:   Viewport{Left: 20, Bottom: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := ScrollViewport(tt.start, tt.player, 800, 600, testMargins)
			if !changed {
				t.Errorf("ScrollViewport() changed = false, want true")
			}
			if got != tt.want {
				t.Errorf("ScrollViewport() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScrollViewport_ChecksRunInOrder(t *testing.T) {
	// A box wider than the window trips the left check, then the right check
	// measures against the already shifted offset.
	player := Rect{Left: 0, Right: 700, Top: 300, Bottom: 240}

	got, changed := ScrollViewport(Viewport{}, player, 800, 600, testMargins)
	if !changed {
		t.Fatalf("ScrollViewport() changed = false, want true")
	}
	// left: 0 - (0+40-0) = -40; right boundary -40+800-150 = 610, 700 > 610 -> +90.
	if got.Left != 50 {
		t.Errorf("ScrollViewport().Left = %v, want 50", got.Left)
	}
}

func TestScrollViewport_PlayerOnBoundaryDoesNotScroll(t *testing.T) {
	player := Rect{Left: 40, Right: 650, Top: 560, Bottom: 40}

	_, changed := ScrollViewport(Viewport{}, player, 800, 600, testMargins)
	if changed {
		t.Errorf("ScrollViewport() changed = true for a player exactly on the boundaries")
	}
}

func TestViewportBounds(t *testing.T) {
	left, right, bottom, top := Viewport{Left: -30, Bottom: 12}.Bounds(800, 600)
	if left != -30 || right != 770 || bottom != 12 || top != 612 {
		t.Errorf("Bounds() = (%v, %v, %v, %v), want (-30, 770, 12, 612)", left, right, bottom, top)
	}
}

func TestHorizontalSpeed(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		want        float64
	}{
		{"idle", false, false, 0},
		{"left", true, false, -5},
		{"right", false, true, 5},
		{"both cancel", true, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HorizontalSpeed(tt.left, tt.right, 5); got != tt.want {
				t.Errorf("HorizontalSpeed(%v, %v) = %v, want %v", tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestApplyGravity(t *testing.T) {
	if got := ApplyGravity(14, 0.5, 16); got != 13.5 {
		t.Errorf("ApplyGravity(14) = %v, want 13.5", got)
	}
	if got := ApplyGravity(-15.8, 0.5, 16); got != -16 {
		t.Errorf("ApplyGravity(-15.8) = %v, want -16 (clamped)", got)
	}
}
