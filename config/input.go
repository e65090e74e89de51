package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPause
	ActionDebug
	ActionFullscreen
	ActionStart
	ActionCount // Must be last - used for array sizing
)

// ControlSchemeID selects the keys a player is steered with.
type ControlSchemeID int

const (
	ControlSchemeArrows ControlSchemeID = iota // Primary player
	ControlSchemeWASD
)

// InputConfig holds all input mappings
type InputConfig struct {
	// Global bindings shared by every player (pause, debug, fullscreen, start).
	Bindings map[ActionID][]ebiten.Key
	// Per-player movement bindings, indexed by ControlSchemeID.
	Schemes []map[ActionID][]ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID][]ebiten.Key{
			ActionPause:      {ebiten.KeyP, ebiten.KeyEscape},
			ActionDebug:      {ebiten.KeyF1},
			ActionFullscreen: {ebiten.KeyF11},
			ActionStart:      {ebiten.KeyEnter, ebiten.KeySpace},
		},
		Schemes: []map[ActionID][]ebiten.Key{
			ControlSchemeArrows: {
				ActionMoveLeft:  {ebiten.KeyArrowLeft},
				ActionMoveRight: {ebiten.KeyArrowRight},
				ActionJump:      {ebiten.KeyArrowUp},
			},
			ControlSchemeWASD: {
				ActionMoveLeft:  {ebiten.KeyA},
				ActionMoveRight: {ebiten.KeyD},
				ActionJump:      {ebiten.KeyW},
			},
		},
	}
}
