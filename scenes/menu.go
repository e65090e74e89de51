package scenes

import (
	"sync"

	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/systems"
	"github.com/automoto/tilehop/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the title menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once

	start bool
	quit  bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() error {
	ms.once.Do(ms.configure)

	ms.ecs.Update()
	ms.menuUI.Update()

	input := systems.GetOrCreateInput(ms.ecs)
	if systems.GetAction(input, cfg.ActionFullscreen).JustPressed {
		ms.menuUI.SetFullscreen(systems.GetOrCreateSettings(ms.ecs).Fullscreen)
	}
	if systems.GetAction(input, cfg.ActionStart).JustPressed {
		ms.start = true
	}

	switch {
	case ms.quit:
		return ebiten.Termination
	case ms.start:
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger))
	}
	return nil
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Keyboard shortcuts work on the menu too
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateSettings)

	settings := systems.GetOrCreateSettings(ms.ecs)
	ms.menuUI = ui.NewMenuUI(
		cfg.C.Title,
		cfg.Banner.Text,
		settings.Fullscreen,
		func() { ms.start = true },
		func() bool { return systems.ToggleFullscreen(ms.ecs) },
		func() { ms.quit = true },
	)
}
