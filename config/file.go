package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML overlay accepted by LoadFile. Every field is
// optional; missing fields keep their defaults.
type FileConfig struct {
	Screen struct {
		Width  *int    `yaml:"width"`
		Height *int    `yaml:"height"`
		Title  *string `yaml:"title"`
	} `yaml:"screen"`

	Map struct {
		Path          *string  `yaml:"path"`
		TileSize      *float64 `yaml:"tile_size"`
		SpriteScaling *float64 `yaml:"sprite_scaling"`
		Height        *int     `yaml:"height"`
		StrictTiles   *bool    `yaml:"strict_tiles"`
	} `yaml:"map"`

	Camera struct {
		ViewportMargin *float64 `yaml:"viewport_margin"`
		RightMargin    *float64 `yaml:"right_margin"`
	} `yaml:"camera"`

	Physics struct {
		Gravity      *float64 `yaml:"gravity"`
		MaxFallSpeed *float64 `yaml:"max_fall_speed"`
	} `yaml:"physics"`

	Player struct {
		MovementSpeed *float64     `yaml:"movement_speed"`
		JumpSpeed     *float64     `yaml:"jump_speed"`
		Width         *float64     `yaml:"width"`
		Height        *float64     `yaml:"height"`
		FallLimit     *float64     `yaml:"fall_limit"`
		Spawns        []SpawnPoint `yaml:"spawns"`
	} `yaml:"player"`
}

// LoadFile reads a YAML file and overlays it onto the current settings.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	fc, err := ParseFile(data)
	if err != nil {
		return fmt.Errorf("failed to parse config YAML from %s: %w", path, err)
	}

	fc.Apply()

	if err := Validate(); err != nil {
		return fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return nil
}

// ParseFile decodes a YAML overlay. Unknown keys are rejected so typos are
// not silently ignored.
func ParseFile(data []byte) (*FileConfig, error) {
	var fc FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &fc, nil
}

// Apply copies every set field of the overlay into the global settings.
func (fc *FileConfig) Apply() {
	set(&C.Width, fc.Screen.Width)
	set(&C.Height, fc.Screen.Height)
	set(&C.Title, fc.Screen.Title)

	set(&Map.Path, fc.Map.Path)
	set(&Map.TileSize, fc.Map.TileSize)
	set(&Map.SpriteScaling, fc.Map.SpriteScaling)
	set(&Map.Height, fc.Map.Height)
	set(&Map.StrictTiles, fc.Map.StrictTiles)

	set(&Camera.ViewportMargin, fc.Camera.ViewportMargin)
	set(&Camera.RightMargin, fc.Camera.RightMargin)

	set(&Physics.Gravity, fc.Physics.Gravity)
	set(&Physics.MaxFallSpeed, fc.Physics.MaxFallSpeed)

	set(&Player.MovementSpeed, fc.Player.MovementSpeed)
	set(&Player.JumpSpeed, fc.Player.JumpSpeed)
	set(&Player.CollisionWidth, fc.Player.Width)
	set(&Player.CollisionHeight, fc.Player.Height)
	set(&Player.FallLimit, fc.Player.FallLimit)
	if len(fc.Player.Spawns) > 0 {
		Player.Spawns = fc.Player.Spawns
	}
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Validate checks the current settings for values the game cannot run with.
func Validate() error {
	switch {
	case C.Width <= 0 || C.Height <= 0:
		return fmt.Errorf("screen size %dx%d must be positive", C.Width, C.Height)
	case Map.TileSize <= 0 || Map.SpriteScaling <= 0:
		return errors.New("tile size and sprite scaling must be positive")
	case Map.Height < 0:
		return fmt.Errorf("map height %d must not be negative", Map.Height)
	case Camera.ViewportMargin < 0 || Camera.RightMargin < 0:
		return errors.New("camera margins must not be negative")
	case Camera.ViewportMargin+Camera.RightMargin >= float64(C.Width):
		return fmt.Errorf("horizontal margins %v+%v leave no room on a %d wide screen",
			Camera.ViewportMargin, Camera.RightMargin, C.Width)
	case 2*Camera.ViewportMargin >= float64(C.Height):
		return fmt.Errorf("vertical margins leave no room on a %d high screen", C.Height)
	case Player.CollisionWidth <= 0 || Player.CollisionHeight <= 0:
		return errors.New("player size must be positive")
	case Physics.MaxFallSpeed <= 0:
		return errors.New("max fall speed must be positive")
	case len(Player.Spawns) < 2:
		return fmt.Errorf("need a spawn for each of the 2 players, got %d", len(Player.Spawns))
	}
	return nil
}
