package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/shapes"
)

const (
	DefaultRadius  = 2.5
	DefaultSamples = 200
	DefaultStart   = 8.0
	DefaultEnd     = 0.0
)

// Scenario describes one pair of bodies and, optionally, how to sweep them.
type Scenario struct {
	Name  string       `yaml:"name"`
	Body1 BodyConfig   `yaml:"body1"`
	Body2 BodyConfig   `yaml:"body2"`
	Arena *ArenaConfig `yaml:"arena,omitempty"`
	Sweep SweepConfig  `yaml:"sweep"`
}

type BodyConfig struct {
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
	Radius   float64  `yaml:"radius"`
	Angle    *float64 `yaml:"angle,omitempty"`
	VX       float64  `yaml:"vx"`
	VY       float64  `yaml:"vy"`
	VAngular float64  `yaml:"vangular"`
	AX       float64  `yaml:"ax"`
	AY       float64  `yaml:"ay"`
	AAngular float64  `yaml:"aangular"`
}

// ArenaConfig is a rectangle drawn around the scene; it does not collide.
type ArenaConfig struct {
	X      float64  `yaml:"x"`
	Y      float64  `yaml:"y"`
	Height float64  `yaml:"height"`
	Width  float64  `yaml:"width"`
	Angle  *float64 `yaml:"angle,omitempty"`
}

type SweepConfig struct {
	Start   float64 `yaml:"start"`
	End     float64 `yaml:"end"`
	Samples int     `yaml:"samples"`
	// Direction is the angle (radians) from body2 towards body1.
	Direction float64 `yaml:"direction"`
}

func DefaultConfig() *Scenario {
	return &Scenario{
		Name:  "head_on",
		Body1: BodyConfig{X: 5, Radius: DefaultRadius, VX: 5, VY: 5},
		Body2: BodyConfig{X: 0, Radius: DefaultRadius, VX: -5, VY: 5},
		Sweep: SweepConfig{Start: DefaultStart, End: DefaultEnd, Samples: DefaultSamples},
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Scenario) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects scenarios the sweep cannot run. Body geometry is not
// checked; degenerate bodies are reported by the resolution itself.
func (s *Scenario) Validate() error {
	if s.Sweep.Samples < 0 {
		return fmt.Errorf("sweep samples must be non-negative, got %d", s.Sweep.Samples)
	}
	return nil
}

func (b BodyConfig) Circle() shapes.Circle {
	return shapes.NewCircle(b.X, b.Y, b.Radius, b.Angle,
		dynamo.NewVelocity(b.VX, b.VY, b.VAngular),
		dynamo.NewAcceleration(b.AX, b.AY, b.AAngular),
	)
}

// Circles builds both bodies of the scenario.
func (s *Scenario) Circles() (shapes.Circle, shapes.Circle) {
	return s.Body1.Circle(), s.Body2.Circle()
}

// Rectangle returns the arena, if one is configured.
func (s *Scenario) Rectangle() (shapes.Rectangle, bool) {
	if s.Arena == nil {
		return shapes.Rectangle{}, false
	}
	a := s.Arena
	return shapes.NewRectangle(a.X, a.Y, a.Height, a.Width, a.Angle), true
}

// Clone returns a deep copy so presets are never modified by callers.
func (s *Scenario) Clone() *Scenario {
	c := *s
	c.Body1.Angle = cloneFloat(s.Body1.Angle)
	c.Body2.Angle = cloneFloat(s.Body2.Angle)
	if s.Arena != nil {
		arena := *s.Arena
		arena.Angle = cloneFloat(s.Arena.Angle)
		c.Arena = &arena
	}
	return &c
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
