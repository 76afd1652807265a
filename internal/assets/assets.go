// Package assets loads the rune-art sprites used to draw the runner.
// Sprites are optional: anything that fails to load is left nil and the
// game draws a solid shape instead.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/core"
)

//go:embed defaults/sprites.yaml
var defaultSpritesYAML []byte

// ErrBadSprite is wrapped by errors about a malformed sprite entry.
var ErrBadSprite = errors.New("bad sprite")

// Set holds the sprites for each entity kind. Nil entries mean "draw a shape".
type Set struct {
	Player   *core.Sprite
	Airborne *core.Sprite // Player while in the air
	Coin     *core.Sprite
	Obstacle *core.Sprite // First rune is tiled over the obstacle
}

// spriteFile is the YAML layout of a sprite sheet.
type spriteFile struct {
	Player   *spriteEntry `yaml:"player"`
	Airborne *spriteEntry `yaml:"airborne"`
	Coin     *spriteEntry `yaml:"coin"`
	Obstacle *spriteEntry `yaml:"obstacle"`
}

type spriteEntry struct {
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
}

// Load reads a sprite sheet.
// Search order: customPath -> ~/.arcade/sprites.yaml -> ./assets/sprites.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the other
// locations are skipped silently.
func Load(customPath string) (*Set, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("assets: cannot read %s: %w", customPath, err)
		}
		set, err := Parse(data)
		if err != nil {
			return set, fmt.Errorf("assets: %s: %w", customPath, err)
		}
		return set, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if set, err := Parse(data); err == nil {
			return set, nil
		}
	}

	return Parse(defaultSpritesYAML)
}

// LoadOrFallback loads sprites and logs any failure. It never returns nil;
// sprites that could not be loaded are left empty so shapes are drawn instead.
func LoadOrFallback(customPath string, logger *log.Logger) *Set {
	set, err := Load(customPath)
	if err != nil {
		if logger != nil {
			logger.Warn("sprites unavailable, drawing plain shapes", "path", customPath, "error", err)
		}
		if set == nil {
			set = &Set{}
		}
	}
	return set
}

// Parse decodes a sprite sheet. Valid entries are returned even when
// another entry is malformed; the first problem is reported as an error.
func Parse(data []byte) (*Set, error) {
	var f spriteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return &Set{}, fmt.Errorf("assets: cannot parse sprites: %w", err)
	}

	var firstErr error
	convert := func(name string, e *spriteEntry) *core.Sprite {
		sp, err := e.sprite()
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("assets: %s: %w", name, err)
			}
			return nil
		}
		return sp
	}

	set := &Set{
		Player:   convert("player", f.Player),
		Airborne: convert("airborne", f.Airborne),
		Coin:     convert("coin", f.Coin),
		Obstacle: convert("obstacle", f.Obstacle),
	}
	return set, firstErr
}

// sprite converts a YAML entry. A missing entry yields nil without error.
func (e *spriteEntry) sprite() (*core.Sprite, error) {
	if e == nil {
		return nil, nil
	}
	if len(e.Rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadSprite)
	}
	color, ok := core.ParseColor(e.Color)
	if !ok {
		return nil, fmt.Errorf("%w: unknown color %q", ErrBadSprite, e.Color)
	}
	rows := make([]string, len(e.Rows))
	copy(rows, e.Rows)
	return &core.Sprite{Rows: rows, Color: color}, nil
}

// searchPaths returns the non-custom locations checked for a sprite sheet.
func searchPaths() []string {
	paths := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".arcade", "sprites.yaml"))
	}
	return append(paths, filepath.Join("assets", "sprites.yaml"))
}
