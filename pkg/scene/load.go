package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrInvalidConfig is wrapped by every configuration failure
var ErrInvalidConfig = errors.New("invalid scene config")

// Load reads, decodes and validates a scene config. Texture paths are resolved
// relative to the directory holding the config file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrInvalidConfig, path, err)
	}
	defer f.Close()

	var cfg Config
	decoder := json.NewDecoder(f)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.resolvePaths(filepath.Dir(path))
	return &cfg, nil
}

// Save writes a scene config as indented JSON
func Save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

func (c *Config) resolvePaths(baseDir string) {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(baseDir, p)
	}

	if c.Sky != nil {
		c.Sky.Texture = resolve(c.Sky.Texture)
	}
	for i := range c.Objects {
		c.Objects[i].Material.Texture = resolve(c.Objects[i].Material.Texture)
	}
}

// Overrides replaces sampling settings when set to a positive value
type Overrides struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
}

// Apply copies the positive override values into the config
func (o Overrides) Apply(c *Config) {
	if o.Width > 0 {
		c.Width = o.Width
	}
	if o.Height > 0 {
		c.Height = o.Height
	}
	if o.SamplesPerPixel > 0 {
		c.SamplesPerPixel = o.SamplesPerPixel
	}
	if o.MaxDepth > 0 {
		c.MaxDepth = o.MaxDepth
	}
}
