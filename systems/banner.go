package systems

import (
	"image/color"

	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const bannerPadding = 8

// UpdateBanner advances the fade of every banner and removes finished ones.
func UpdateBanner(ecs *ecs.ECS) {
	dt := float32(1) / float32(cfg.C.TPS)

	var done []donburi.Entity
	components.Banner.Each(ecs.World, func(e *donburi.Entry) {
		banner := components.Banner.Get(e)
		if banner.Fade == nil {
			return
		}

		alpha, _, finished := banner.Fade.Update(dt)
		banner.Alpha = alpha
		if finished {
			banner.Alpha = 0
			banner.Done = true
			done = append(done, e.Entity())
		}
	})

	for _, entity := range done {
		ecs.World.Remove(entity)
	}
}

// DrawBanner draws each banner centred near the top of the screen.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Regular.Get()
	width := screen.Bounds().Dx()

	components.Banner.Each(ecs.World, func(e *donburi.Entry) {
		banner := components.Banner.Get(e)
		if banner.Done || banner.Alpha <= 0 {
			return
		}

		bounds := text.BoundString(face, banner.Text)
		x := (width - bounds.Dx()) / 2
		y := int(cfg.Banner.Y)

		vector.FillRect(screen,
			float32(x-bannerPadding), float32(y+bounds.Min.Y-bannerPadding),
			float32(bounds.Dx()+2*bannerPadding), float32(bounds.Dy()+2*bannerPadding),
			fade(cfg.Banner.BoxColor, banner.Alpha), false)
		text.Draw(screen, banner.Text, face, x, y, fade(cfg.Banner.TextColor, banner.Alpha))
	})
}

// fade scales a colour's alpha, keeping it premultiplied.
func fade(c color.RGBA, alpha float32) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float32(v) * alpha) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
