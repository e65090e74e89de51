package assets

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"

	"github.com/automoto/tilehop/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// DefaultLevel is the embedded map used when no map path is given.
const DefaultLevel = "levels/newmap1.csv"

// LoadLevel reads the map at path, or the embedded default map when path is
// empty. It returns a display name for the level with the grid.
func LoadLevel(path string) (string, leveldata.TileGrid, error) {
	if path == "" {
		return loadEmbedded(DefaultLevel)
	}

	grid, err := leveldata.LoadMap(path)
	if err != nil {
		return "", nil, err
	}
	return filepath.Base(path), grid, nil
}

func loadEmbedded(name string) (string, leveldata.TileGrid, error) {
	data, err := assetFS.ReadFile(name)
	if err != nil {
		return "", nil, fmt.Errorf("%w: embedded %s: %w", leveldata.ErrMapNotFound, name, err)
	}

	grid, err := leveldata.ParseMap(bytes.NewReader(data))
	if err != nil {
		return "", nil, fmt.Errorf("parse embedded map %s: %w", name, err)
	}
	return filepath.Base(name), grid, nil
}
