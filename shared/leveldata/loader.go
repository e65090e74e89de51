package leveldata

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadMap reads a map file and returns its tile grid. Files ending in .tmx
// are read as Tiled maps, everything else as comma-separated integers.
func LoadMap(path string) (TileGrid, error) {
	if strings.EqualFold(filepath.Ext(path), ".tmx") {
		return LoadTMX(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMapNotFound, path, err)
	}
	defer f.Close()

	if info, err := f.Stat(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMapNotFound, path, err)
	} else if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrMapNotFound, path)
	}

	grid, err := ParseMap(f)
	if errors.Is(err, ErrMapRead) {
		return nil, fmt.Errorf("%w: %s: %w", ErrMapNotFound, path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("parse map %s: %w", path, err)
	}
	return grid, nil
}

// maxLineBytes bounds a single map row. Wide maps run to tens of thousands
// of fields, well past bufio's default token size.
const maxLineBytes = 16 << 20

// ParseMap reads comma-separated rows of tile codes. Blank lines are skipped
// and every row must have as many fields as the first one. Failures of the
// reader itself are wrapped in ErrMapRead.
func ParseMap(r io.Reader) (TileGrid, error) {
	var grid TileGrid

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		row := make([]int, len(fields))
		for i, field := range fields {
			field = strings.TrimSpace(field)
			code, err := strconv.Atoi(field)
			if err != nil {
				return nil, &ParseError{Line: lineNo, Column: i + 1, Field: field, Err: err}
			}
			row[i] = code
		}

		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("line %d: %w: got %d fields, want %d", lineNo, ErrRaggedRow, len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMapRead, err)
	}

	return grid, nil
}

// LoadTMX converts the first tile layer of a Tiled map into a tile grid.
// Empty cells become -1, tiles become their tileset-local ID. Maps with more
// than one tileset are rejected with ErrMultiTileset, since local IDs from
// different tilesets would collide. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (TileGrid, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrMapNotFound, tmxPath, err)
		}
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if len(levelMap.Tilesets) > 1 {
		return nil, fmt.Errorf("load TMX %s: %w: found %d", tmxPath, ErrMultiTileset, len(levelMap.Tilesets))
	}
	if len(levelMap.Layers) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrEmptyMap)
	}

	layer := levelMap.Layers[0]
	grid := make(TileGrid, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		row := make([]int, levelMap.Width)
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				row[x] = -1
				continue
			}
			row[x] = int(tile.ID)
		}
		grid[y] = row
	}

	return grid, nil
}

// Validate checks that every non-negative code in the grid is in the tile
// table. It returns the first unknown code wrapped in ErrUnknownTile.
func Validate(grid TileGrid) error {
	if len(grid) == 0 {
		return ErrEmptyMap
	}
	for r, row := range grid {
		for c, code := range row {
			if code < 0 {
				continue
			}
			if _, ok := Lookup(code); !ok {
				return fmt.Errorf("row %d col %d: %w: %d", r, c, ErrUnknownTile, code)
			}
		}
	}
	return nil
}

// UnknownCodes returns the distinct non-negative codes that fall back to the
// box kind, in first-seen order.
func UnknownCodes(grid TileGrid) []int {
	seen := make(map[int]bool)
	var codes []int
	for _, row := range grid {
		for _, code := range row {
			if code < 0 || seen[code] {
				continue
			}
			if _, ok := Lookup(code); !ok {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}
	return codes
}
