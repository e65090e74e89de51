package factory

import (
	"github.com/automoto/tilehop/archetypes"
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a player centred on spawn. Index 0 is the primary
// player.
func CreatePlayer(ecs *ecs.ECS, index int, spawn cfg.SpawnPoint, scheme cfg.ControlSchemeID) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := newObject(ecs, spawn.X-w/2, spawn.Y-h/2, w, h, "character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, obj)

	color := cfg.White
	if index < len(cfg.Player.Colors) {
		color = cfg.Player.Colors[index]
	}
	components.Player.SetValue(player, components.PlayerData{
		Index:     index,
		Direction: cfg.DirectionRight,
		SpawnX:    spawn.X,
		SpawnY:    spawn.Y,
		Color:     color,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		ControlScheme: scheme,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity: cfg.Physics.Gravity,
	})

	return player
}
