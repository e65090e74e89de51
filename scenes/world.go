package scenes

import (
	"fmt"
	"sync"

	"github.com/automoto/tilehop/assets"
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/leveldata"
	"github.com/automoto/tilehop/systems"
	"github.com/automoto/tilehop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene is the playable level with both players.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewPlatformerScene creates a new platformer scene
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	name, grid, err := LoadLevel()
	if err != nil {
		log.Fatal().Err(err).Str("map", cfg.Map.Path).Msg("failed to load map")
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateMultiPlayerInput)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateRespawn))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBanner))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayers)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawBanner)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	level := PopulateWorld(ecs, name, grid)
	ps.ecs = ecs

	log.Info().
		Str("level", name).
		Int("rows", grid.Rows()).
		Int("cols", grid.Cols()).
		Int("tiles", len(level.Tiles)).
		Msg("level loaded")
}

// LoadLevel reads the configured map. An empty map is an error. Unknown tile
// codes are drawn as boxes with a warning, or rejected when strict tiles are
// enabled.
func LoadLevel() (string, leveldata.TileGrid, error) {
	name, grid, err := assets.LoadLevel(cfg.Map.Path)
	if err != nil {
		return "", nil, err
	}
	if len(grid) == 0 {
		return "", nil, fmt.Errorf("map %s: %w", name, leveldata.ErrEmptyMap)
	}

	if cfg.Map.StrictTiles {
		if err := leveldata.Validate(grid); err != nil {
			return "", nil, fmt.Errorf("map %s: %w", name, err)
		}
	} else if unknown := leveldata.UnknownCodes(grid); len(unknown) > 0 {
		log.Warn().Str("map", name).Ints("codes", unknown).Msg("unknown tile codes drawn as boxes")
	}

	return name, grid, nil
}

// PopulateWorld creates the level, its walls, the camera, both players and
// the controls banner. The space must exist before anything that collides.
func PopulateWorld(ecs *ecs.ECS, name string, grid leveldata.TileGrid) *components.LevelData {
	level := components.Level.Get(factory.CreateLevel(ecs, name, grid))

	factory.CreateSpace(ecs, level.Bounds, cfg.Physics.SpacePadding, cfg.Physics.SpaceCell)
	factory.CreateWalls(ecs, level)
	factory.CreateCamera(ecs)

	schemes := []cfg.ControlSchemeID{cfg.ControlSchemeArrows, cfg.ControlSchemeWASD}
	for i, scheme := range schemes {
		factory.CreatePlayer(ecs, i, cfg.Player.Spawns[i], scheme)
	}

	if cfg.Banner.Text != "" {
		factory.CreateBanner(ecs, cfg.Banner.Text, cfg.Banner.HoldSeconds, cfg.Banner.FadeSeconds)
	}
	return level
}
