package system

import (
	"fmt"

	"github.com/younwookim/lionheart/internal/domain/collision"
	"github.com/younwookim/lionheart/internal/domain/entity"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity.
// Rows are written top first; the stage stores them bottom first.
// Characters without a mapping are empty cells.
func LoadStage(cfg *config.StageConfig, table *collision.Table) (*entity.Stage, error) {
	if cfg.Size.TileSize <= 0 {
		return nil, fmt.Errorf("%w: %s: tile size %d", config.ErrInvalidStage, cfg.ID, cfg.Size.TileSize)
	}
	tileWidth := cfg.Size.Width / cfg.Size.TileSize
	tileHeight := len(cfg.Layers.Collision)
	if tileWidth <= 0 || tileHeight == 0 {
		return nil, fmt.Errorf("%w: %s: empty collision layer", config.ErrInvalidStage, cfg.ID)
	}

	profiles := make(map[rune]entity.Tile, len(cfg.TileMapping))
	for char, mapping := range cfg.TileMapping {
		runes := []rune(char)
		if len(runes) != 1 {
			return nil, fmt.Errorf("%w: %s: tile key %q is not one character", config.ErrInvalidStage, cfg.ID, char)
		}
		p, err := table.Profile(mapping.Profile)
		if err != nil {
			return nil, fmt.Errorf("failed to map tile %q of stage %s: %w", char, cfg.ID, err)
		}
		profiles[runes[0]] = entity.Tile{Profile: p, Name: mapping.Profile}
	}

	tiles := make([][]entity.Tile, tileHeight)
	for i, row := range cfg.Layers.Collision {
		y := tileHeight - 1 - i
		tiles[y] = make([]entity.Tile, tileWidth)
		x := 0
		for _, char := range row {
			if x >= tileWidth {
				break
			}
			tiles[y][x] = profiles[char]
			x++
		}
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: cfg.Size.TileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
	}, nil
}
