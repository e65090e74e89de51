package config

import (
	"image/color"

	"github.com/automoto/tilehop/shared/gamemath"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// MapConfig describes how map cells become world tiles.
type MapConfig struct {
	Path          string  // Map file to load; empty uses the embedded map
	TileSize      float64 // Source tile size in pixels before scaling
	SpriteScaling float64
	Height        int  // Row count used to flip rows into y-up world space
	StrictTiles   bool // Reject unknown tile codes instead of drawing a box
}

// ScaledTileSize returns the on-screen size of one tile.
func (m MapConfig) ScaledTileSize() float64 {
	return m.TileSize * m.SpriteScaling
}

// CameraConfig contains the scrolling margins
type CameraConfig struct {
	ViewportMargin float64 // Left, top and bottom margin
	RightMargin    float64 // Wider margin so the player sees what is ahead
}

// Margins returns the scroll margins for gamemath.ScrollViewport.
func (c CameraConfig) Margins() gamemath.Margins {
	return gamemath.Margins{
		Left:   c.ViewportMargin,
		Right:  c.RightMargin,
		Top:    c.ViewportMargin,
		Bottom: c.ViewportMargin,
	}
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
	SpaceCell    int     // resolv cell size
	SpacePadding float64 // Extra space around the map that still collides
}

// SpawnPoint is the starting centre of a player.
type SpawnPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	MovementSpeed   float64
	JumpSpeed       float64
	CollisionWidth  float64
	CollisionHeight float64
	Spawns          []SpawnPoint // Index 0 is the primary player
	FallLimit       float64      // Distance below the map before respawn
	Colors          []color.RGBA
}

// HUDConfig contains HUD text configuration
type HUDConfig struct {
	Margin    float64
	LineGap   float64
	TextColor color.RGBA
	FontSize  float64
}

// BannerConfig contains the controls banner shown at level start
type BannerConfig struct {
	Text        string
	HoldSeconds float32
	FadeSeconds float32
	Y           float64
	BoxColor    color.RGBA
	TextColor   color.RGBA
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Overlay  bool // Draw collision boxes
}

// Global configuration instances
var C *Config
var Map MapConfig
var Camera CameraConfig
var Physics PhysicsConfig
var Player PlayerConfig
var HUD HUDConfig
var Banner BannerConfig
var Pause PauseConfig
var Debug DebugConfig

// Background is the clear colour of the play field ("amazon").
var Background = color.RGBA{R: 59, G: 122, B: 87, A: 255}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every setting to its built-in default.
func Reset() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Tilehop",
		TPS:    60,
	}

	Map = MapConfig{
		TileSize:      128,
		SpriteScaling: 0.5,
		Height:        7,
	}

	Camera = CameraConfig{
		ViewportMargin: 40,
		RightMargin:    150,
	}

	Physics = PhysicsConfig{
		Gravity:      0.5,
		MaxFallSpeed: 32,
		SpaceCell:    32,
		SpacePadding: 512,
	}

	Player = PlayerConfig{
		MovementSpeed:   5,
		JumpSpeed:       14,
		CollisionWidth:  48,
		CollisionHeight: 64,
		Spawns: []SpawnPoint{
			{X: 90, Y: 160},
			{X: 180, Y: 160},
		},
		FallLimit: 1000,
		Colors: []color.RGBA{
			{R: 240, G: 200, B: 80, A: 255},
			{R: 170, G: 180, B: 200, A: 255},
		},
	}

	HUD = HUDConfig{
		Margin:    8,
		LineGap:   16,
		TextColor: White,
		FontSize:  12,
	}

	Banner = BannerConfig{
		Text:        "P1: arrow keys   P2: W A D   P: pause   F1: debug   F11: fullscreen",
		HoldSeconds: 3,
		FadeSeconds: 1.5,
		Y:           40,
		BoxColor:    BlackOverlay,
		TextColor:   White,
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "P / Esc to resume",
	}

	Debug = DebugConfig{}
}
