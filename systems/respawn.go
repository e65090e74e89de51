package systems

import (
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRespawn puts players that fell far below the map back on their
// spawn point.
func UpdateRespawn(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	limit := components.Level.Get(levelEntry).Bounds.Bottom - cfg.Player.FallLimit

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Bounds().Top >= limit {
			return
		}

		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj.MoveTo(player.SpawnX-obj.W/2, player.SpawnY-obj.H/2)
		physics.SpeedX, physics.SpeedY = 0, 0
		physics.OnGround = nil
		player.Respawns++

		log.Debug().Int("player", player.Index+1).Int("respawns", player.Respawns).Msg("player respawned")
	})
}
