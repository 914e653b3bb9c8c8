// pkg/config/scene.go
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// SceneConfig describes an initial world population: sprites with their
// starting state and the named groups they belong to.
type SceneConfig struct {
	Name     string         `yaml:"name"`
	GravityX float64        `yaml:"gravityX"`
	GravityY float64        `yaml:"gravityY"`
	Friction float64        `yaml:"friction"`
	Sprites  []SpriteConfig `yaml:"sprites"`
}

// SpriteConfig describes one sprite in a scene. A mass of 0 marks the sprite
// immovable for collision response.
type SpriteConfig struct {
	Name      string   `yaml:"name"`
	X         float64  `yaml:"x"`
	Y         float64  `yaml:"y"`
	Width     float64  `yaml:"width"`
	Height    float64  `yaml:"height"`
	VelocityX float64  `yaml:"velocityX"`
	VelocityY float64  `yaml:"velocityY"`
	Mass      float64  `yaml:"mass"`
	Groups    []string `yaml:"groups,omitempty"`
}

// LoadScene loads a scene configuration from a YAML file.
func LoadScene(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var scene SceneConfig
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}

	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %q: %w", path, err)
	}
	return &scene, nil
}

// SaveScene saves a scene configuration to a YAML file.
func SaveScene(scene *SceneConfig, path string) error {
	data, err := yaml.Marshal(scene)
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}
	return nil
}

// Validate checks sprite definitions for usable geometry and masses and for
// unique, non-empty names.
func (s *SceneConfig) Validate() error {
	if s.Friction < 0 || s.Friction > 1 {
		return fmt.Errorf("friction %v out of range [0, 1]", s.Friction)
	}

	seen := make(map[string]bool, len(s.Sprites))
	for i, sc := range s.Sprites {
		if sc.Name == "" {
			return fmt.Errorf("sprite %d has no name", i)
		}
		if seen[sc.Name] {
			return fmt.Errorf("duplicate sprite name %q", sc.Name)
		}
		seen[sc.Name] = true

		if sc.Width <= 0 || sc.Height <= 0 {
			return fmt.Errorf("sprite %q has non-positive size %vx%v", sc.Name, sc.Width, sc.Height)
		}
		if sc.Mass < 0 {
			return fmt.Errorf("sprite %q has negative mass %v", sc.Name, sc.Mass)
		}
		for _, v := range []float64{sc.X, sc.Y, sc.VelocityX, sc.VelocityY} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("sprite %q has non-finite state", sc.Name)
			}
		}
	}
	return nil
}

// DefaultScene returns a small demonstration scene: four unit-mass sprites
// in a row, the middle two grouped together.
func DefaultScene() *SceneConfig {
	return &SceneConfig{
		Name: "default",
		Sprites: []SpriteConfig{
			{Name: "a", X: 20, Y: 100, Width: 10, Height: 10, Mass: 1},
			{Name: "b", X: 40, Y: 100, Width: 10, Height: 10, Mass: 1, Groups: []string{"middle"}},
			{Name: "c", X: 60, Y: 100, Width: 10, Height: 10, Mass: 1, Groups: []string{"middle"}},
			{Name: "d", X: 80, Y: 100, Width: 10, Height: 10, Mass: 1},
		},
	}
}
