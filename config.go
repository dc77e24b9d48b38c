package cmdlog

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned by LoadConfig and Config.Validate when a
// setting is out of range.
var ErrInvalidConfig = errors.New("cmdlog: invalid config")

// DefaultTextBoundsFactor is the multiple of the text size used as a
// conservative ascent/descent when bounding constant-baseline text. It
// must over-approximate real glyph extents; lowering it is unsafe.
const DefaultTextBoundsFactor = 1.5

// DefaultChunkSize is the arena chunk size in bytes.
const DefaultChunkSize = 4096

// Config holds the tunables of the recording pipeline. The zero value is
// not valid; start from DefaultConfig.
type Config struct {
	// ChunkSize is the arena chunk size in bytes.
	ChunkSize int `toml:"chunk_size"`

	// Optimize runs the rewrite pipeline when a recording is released.
	Optimize bool `toml:"optimize"`

	// Individual passes.
	NoopSaveRestores bool `toml:"noop_save_restores"`
	// AnnotateCulls only affects opt.Optimize called directly on a log.
	// Sealing a log always pairs its cull markers, so a playback is
	// annotated whatever this is set to.
	AnnotateCulls bool `toml:"annotate_culls"`
	ReduceText    bool `toml:"reduce_text"`
	BoundText     bool `toml:"bound_text"`

	// TextBoundsFactor overrides DefaultTextBoundsFactor.
	TextBoundsFactor float32 `toml:"text_bounds_factor"`
	// CheckTextBounds verifies every text bound against the typeface's
	// real extents and panics if the bound is too tight.
	CheckTextBounds bool `toml:"check_text_bounds"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		ChunkSize:        DefaultChunkSize,
		Optimize:         true,
		NoopSaveRestores: true,
		AnnotateCulls:    true,
		ReduceText:       true,
		BoundText:        true,
		TextBoundsFactor: DefaultTextBoundsFactor,
	}
}

// Validate checks the settings.
func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk_size must be positive, got %d", ErrInvalidConfig, c.ChunkSize)
	}
	if c.TextBoundsFactor < 1 {
		return fmt.Errorf("%w: text_bounds_factor must be at least 1, got %g", ErrInvalidConfig, c.TextBoundsFactor)
	}
	return nil
}

// LoadConfig reads a TOML file over the defaults. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("cmdlog: read config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DecodeConfig parses TOML text over the defaults.
func DecodeConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cmdlog: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
