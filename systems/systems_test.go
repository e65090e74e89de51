package systems

import (
	"math"
	"strings"
	"testing"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/automoto/tilehop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const eps = 1e-6

// flatGrid is seven rows with a box floor along the bottom row, so the
// floor spans y 0..64 in world space.
func flatGrid(cols int) leveldata.TileGrid {
	grid := make(leveldata.TileGrid, 7)
	for r := range grid {
		grid[r] = make([]int, cols)
		for c := range grid[r] {
			grid[r][c] = -1
			if r == 6 {
				grid[r][c] = 0
			}
		}
	}
	return grid
}

func newTestWorld(t *testing.T, grid leveldata.TileGrid) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	pressKeys(t)

	e := ecs.NewECS(donburi.NewWorld())
	level := components.Level.Get(factory.CreateLevel(e, "test", grid))
	factory.CreateSpace(e, level.Bounds, cfg.Physics.SpacePadding, cfg.Physics.SpaceCell)
	factory.CreateWalls(e, level)
	factory.CreateCamera(e)
	return e
}

func pressKeys(t *testing.T, keys ...ebiten.Key) {
	t.Helper()
	held := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		held[k] = true
	}
	prev := KeyState
	KeyState = func(k ebiten.Key) bool { return held[k] }
	t.Cleanup(func() { KeyState = prev })
}

func step(e *ecs.ECS, frames int) {
	for i := 0; i < frames; i++ {
		UpdateInput(e)
		UpdatePause(e)
		UpdateMultiPlayerInput(e)
		WithGameplayChecks(UpdatePlayer)(e)
		WithGameplayChecks(UpdatePhysics)(e)
		WithGameplayChecks(UpdateRespawn)(e)
		WithGameplayChecks(UpdateCamera)(e)
	}
}

func TestPhysics_PlayerLandsOnFloor(t *testing.T) {
	e := newTestWorld(t, flatGrid(10))
	player := factory.CreatePlayer(e, 0, cfg.SpawnPoint{X: 90, Y: 160}, cfg.ControlSchemeArrows)
	obj := components.Object.Get(player)
	physics := components.Physics.Get(player)

	if CanJump(obj) {
		t.Fatal("CanJump() = true while spawned in the air")
	}

	for i := 0; i < 60; i++ {
		UpdatePhysics(e)
	}

	if got := obj.Bounds().Bottom; math.Abs(got-64) > eps {
		t.Errorf("bottom after landing = %v, want 64", got)
	}
	if physics.OnGround == nil {
		t.Error("OnGround = nil after landing")
	}
	if physics.SpeedY != 0 {
		t.Errorf("SpeedY = %v after landing, want 0", physics.SpeedY)
	}
	if !CanJump(obj) {
		t.Error("CanJump() = false while standing on the floor")
	}
}

func TestPhysics_WallStopsHorizontalMovement(t *testing.T) {
	grid := flatGrid(10)
	grid[5][3] = 0 // box standing on the floor, x 192..256

	e := newTestWorld(t, grid)
	player := factory.CreatePlayer(e, 0, cfg.SpawnPoint{X: 90, Y: 96}, cfg.ControlSchemeArrows)
	pressKeys(t, ebiten.KeyArrowRight)

	step(e, 60)

	bounds := components.Object.Get(player).Bounds()
	if math.Abs(bounds.Right-192) > eps {
		t.Errorf("right edge = %v, want 192 (stopped at the box)", bounds.Right)
	}
	if math.Abs(bounds.Bottom-64) > eps {
		t.Errorf("bottom = %v, want 64 (still on the floor)", bounds.Bottom)
	}
	if got := components.Player.Get(player).Direction; got != cfg.DirectionRight {
		t.Errorf("Direction = %v, want right", got)
	}
}

func TestPhysics_PlayersPassThroughEachOther(t *testing.T) {
	e := newTestWorld(t, flatGrid(10))
	p1 := factory.CreatePlayer(e, 0, cfg.SpawnPoint{X: 90, Y: 96}, cfg.ControlSchemeArrows)
	p2 := factory.CreatePlayer(e, 1, cfg.SpawnPoint{X: 150, Y: 96}, cfg.ControlSchemeWASD)
	pressKeys(t, ebiten.KeyArrowRight)

	step(e, 30)

	got := components.Object.Get(p1).Bounds().Left
	if want := 90 - 24 + 30*cfg.Player.MovementSpeed; math.Abs(got-want) > eps {
		t.Errorf("P1 left = %v, want %v (not blocked by P2)", got, want)
	}
	if got := components.Object.Get(p2).Bounds().Left; math.Abs(got-126) > eps {
		t.Errorf("P2 left = %v, want 126 (P2 keys not held)", got)
	}
}

func TestPlayer_Jump(t *testing.T) {
	e := newTestWorld(t, flatGrid(10))
	p1 := factory.CreatePlayer(e, 0, cfg.SpawnPoint{X: 90, Y: 96}, cfg.ControlSchemeArrows)
	p2 := factory.CreatePlayer(e, 1, cfg.SpawnPoint{X: 180, Y: 400}, cfg.ControlSchemeWASD)

	step(e, 2)
	pressKeys(t, ebiten.KeyArrowUp, ebiten.KeyW)

	UpdateInput(e)
	UpdateMultiPlayerInput(e)
	UpdatePlayer(e)

	if got := components.Physics.Get(p1).SpeedY; got != cfg.Player.JumpSpeed {
		t.Errorf("grounded P1 SpeedY = %v, want %v", got, cfg.Player.JumpSpeed)
	}
	if got := components.Physics.Get(p2).SpeedY; got == cfg.Player.JumpSpeed {
		t.Error("airborne P2 jumped")
	}

	// Holding the key does not jump again once airborne or back on ground.
	UpdatePhysics(e)
	UpdateMultiPlayerInput(e)
	UpdatePlayer(e)
	if got := components.Physics.Get(p1).SpeedY; got >= cfg.Player.JumpSpeed {
		t.Errorf("P1 SpeedY = %v on the second frame, want below %v", got, cfg.Player.JumpSpeed)
	}
}

func TestCamera_ScrollsOnlyWhenNeeded(t *testing.T) {
	e := newTestWorld(t, flatGrid(40))
	player := factory.CreatePlayer(e, 0, cfg.SpawnPoint{X: 90, Y: 160}, cfg.ControlSchemeArrows)
	factory.CreatePlayer(e, 1, cfg.SpawnPoint{X: 400, Y: 160}, cfg.ControlSchemeWASD)

	cameraEntry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(cameraEntry)

	UpdateCamera(e)
	if camera.Changed || camera.View.Left != 0 || camera.View.Bottom != 0 {
		t.Fatalf("camera moved to %+v for a player inside the margins", camera.View)
	}

	components.Object.Get(player).MoveTo(700, 64)
	UpdateCamera(e)
	if !camera.Changed {
		t.Fatal("Changed = false after the player crossed the right margin")
	}
	if camera.View.Left != 98 {
		t.Errorf("View.Left = %v, want 98", camera.View.Left)
	}
	if camera.Offset.X != -98 {
		t.Errorf("Offset.X = %v, want -98", camera.Offset.X)
	}

	UpdateCamera(e)
	if camera.Changed {
		t.Error("Changed = true on a second update without movement")
	}
}

func TestCamera_IgnoresSecondPlayer(t *testing.T) {
	e := newTestWorld(t, flatGrid(40))
	factory.CreatePlayer(e, 0, cfg.SpawnPoint{X: 90, Y: 160}, cfg.ControlSchemeArrows)
	p2 := factory.CreatePlayer(e, 1, cfg.SpawnPoint{X: 180, Y: 160}, cfg.ControlSchemeWASD)

	cameraEntry, _ := components.Camera.First(e.World)
	camera := components.Camera.Get(cameraEntry)
	before := *camera

	tests := []struct {
		name         string
		left, bottom float64
	}{
		{"past right margin", 1200, 64},
		{"past left margin", -300, 64},
		{"above top margin", 90, 900},
		{"below bottom margin", 90, -200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components.Object.Get(p2).MoveTo(tt.left, tt.bottom)
			UpdateCamera(e)

			if camera.Changed {
				t.Error("Changed = true after only P2 left the margins")
			}
			if camera.View != before.View || camera.Offset != before.Offset {
				t.Errorf("camera = %+v / %+v, want unchanged %+v / %+v",
					camera.View, camera.Offset, before.View, before.Offset)
			}
		})
	}
}

func TestRespawn(t *testing.T) {
	e := newTestWorld(t, flatGrid(10))
	player := factory.CreatePlayer(e, 0, cfg.SpawnPoint{X: 90, Y: 160}, cfg.ControlSchemeArrows)
	obj := components.Object.Get(player)
	components.Physics.Get(player).SpeedY = -20

	obj.MoveTo(66, -cfg.Player.FallLimit-200)
	UpdateRespawn(e)

	bounds := obj.Bounds()
	if bounds.Left != 66 || bounds.Bottom != 128 {
		t.Errorf("respawned at (%v, %v), want (66, 128)", bounds.Left, bounds.Bottom)
	}
	if got := components.Physics.Get(player).SpeedY; got != 0 {
		t.Errorf("SpeedY after respawn = %v, want 0", got)
	}
	if got := components.Player.Get(player).Respawns; got != 1 {
		t.Errorf("Respawns = %d, want 1", got)
	}
}

func TestPause_FreezesGameplay(t *testing.T) {
	e := newTestWorld(t, flatGrid(10))
	player := factory.CreatePlayer(e, 0, cfg.SpawnPoint{X: 90, Y: 160}, cfg.ControlSchemeArrows)

	pressKeys(t, ebiten.KeyP)
	step(e, 1)
	if !GetOrCreatePause(e).IsPaused {
		t.Fatal("IsPaused = false after pressing P")
	}

	before := components.Object.Get(player).Bounds()
	step(e, 10)
	if after := components.Object.Get(player).Bounds(); after != before {
		t.Errorf("player moved from %+v to %+v while paused", before, after)
	}
}

func TestSettings_Toggles(t *testing.T) {
	e := newTestWorld(t, flatGrid(10))

	var fullscreen bool
	prev := SetFullscreen
	SetFullscreen = func(on bool) { fullscreen = on }
	t.Cleanup(func() { SetFullscreen = prev })

	pressKeys(t, ebiten.KeyF1, ebiten.KeyF11)
	UpdateInput(e)
	UpdateSettings(e)

	settings := GetOrCreateSettings(e)
	if !settings.Debug || !settings.Fullscreen || !fullscreen {
		t.Errorf("settings = %+v, fullscreen applied = %v, want both on", *settings, fullscreen)
	}

	// Held keys do not toggle again.
	UpdateInput(e)
	UpdateSettings(e)
	if !settings.Debug {
		t.Error("Debug toggled off while F1 was held")
	}
}

func TestHUDLines(t *testing.T) {
	e := newTestWorld(t, flatGrid(10))
	factory.CreatePlayer(e, 1, cfg.SpawnPoint{X: 180, Y: 400}, cfg.ControlSchemeWASD)
	factory.CreatePlayer(e, 0, cfg.SpawnPoint{X: 90, Y: 96}, cfg.ControlSchemeArrows)
	step(e, 2)

	got := strings.Join(HUDLines(e), "\n")
	for _, want := range []string{"Level: test", "View: 0, 0", "P1: grounded", "P2: airborne"} {
		if !strings.Contains(got, want) {
			t.Errorf("HUDLines() = %q, missing %q", got, want)
		}
	}
	if strings.Index(got, "P1") > strings.Index(got, "P2") {
		t.Errorf("HUDLines() = %q, want P1 listed before P2", got)
	}
}

func TestBanner_FadesAndIsRemoved(t *testing.T) {
	e := newTestWorld(t, flatGrid(10))
	entry := factory.CreateBanner(e, "hello", 0.1, 0.1)
	banner := components.Banner.Get(entry)

	UpdateBanner(e)
	if banner.Alpha != 1 {
		t.Errorf("Alpha during hold = %v, want 1", banner.Alpha)
	}

	for i := 0; i < 30; i++ {
		UpdateBanner(e)
	}
	if _, ok := components.Banner.First(e.World); ok {
		t.Error("banner still present after its fade finished")
	}
}
