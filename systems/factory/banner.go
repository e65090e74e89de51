package factory

import (
	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBanner shows text at full opacity for hold seconds, then fades it out.
func CreateBanner(ecs *ecs.ECS, text string, hold, fade float32) *donburi.Entry {
	banner := archetypes.Banner.Spawn(ecs)

	tw := gween.NewSequence(
		gween.New(1, 1, hold, ease.Linear),
		gween.New(1, 0, fade, ease.InQuad),
	)
	components.Banner.Set(banner, &components.BannerData{
		Text:  text,
		Alpha: 1,
		Fade:  tw,
	})

	return banner
}
