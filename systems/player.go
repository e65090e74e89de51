package systems

import (
	"github.com/automoto/tilehop/components"
	cfg "github.com/automoto/tilehop/config"
	"github.com/automoto/tilehop/shared/gamemath"
	"github.com/automoto/tilehop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const walkFrameTicks = 8

// UpdatePlayer turns each player's held keys into speeds. Jumps only start
// on the frame the jump key goes down and only while standing on something.
func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		input := components.PlayerInput.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		left := GetPlayerAction(input, cfg.ActionMoveLeft).Pressed
		right := GetPlayerAction(input, cfg.ActionMoveRight).Pressed
		physics.SpeedX = gamemath.HorizontalSpeed(left, right, cfg.Player.MovementSpeed)

		switch {
		case physics.SpeedX < 0:
			player.Direction = cfg.DirectionLeft
		case physics.SpeedX > 0:
			player.Direction = cfg.DirectionRight
		}

		if GetPlayerAction(input, cfg.ActionJump).JustPressed && CanJump(obj) {
			physics.SpeedY = cfg.Player.JumpSpeed
		}

		updateWalkFrame(player, physics)
	})
}

func updateWalkFrame(player *components.PlayerData, physics *components.PhysicsData) {
	if physics.SpeedX == 0 || physics.OnGround == nil {
		player.Frame = 0
		player.FrameTimer = 0
		return
	}
	player.FrameTimer++
	if player.FrameTimer >= walkFrameTicks {
		player.FrameTimer = 0
		player.Frame = (player.Frame + 1) % 2
	}
}
