// Package scenario describes the samples the field driver builds and
// reports on.
package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fields/internal/geometry/vector"
)

// DEFAULT is the built-in scenario as YAML.
//
//go:embed default.yaml
var DEFAULT []byte

// ErrUnknownLabel is returned when a derived quantity names a sample that
// does not exist in its group.
var ErrUnknownLabel = errors.New("unknown sample label")

// Construct names how a sample vector is built.
type Construct string

const (
	// ConstructDefault is the zero vector; no components are given.
	ConstructDefault Construct = "default"
	// ConstructComponents passes all three components to the constructor.
	ConstructComponents Construct = "components"
	// ConstructSetters starts from the zero vector and assigns X, Y and Z
	// one at a time.
	ConstructSetters Construct = "setters"
	// ConstructSet starts from the zero vector and calls Set once.
	ConstructSet Construct = "set"
)

// Sample is one labelled field vector and the way it is constructed.
type Sample struct {
	Label      string    `yaml:"label"`
	Construct  Construct `yaml:"construct"`
	Components []float64 `yaml:"components"`
}

// Scenario is the set of samples the driver builds, in print order.
type Scenario struct {
	Electric []Sample `yaml:"electric"`
	Magnetic []Sample `yaml:"magnetic"`

	// InnerProduct lists electric sample labels.
	InnerProduct []string `yaml:"innerProduct"`
	// UnitVector lists magnetic sample labels.
	UnitVector []string `yaml:"unitVector"`
}

// Build constructs the sample's vector.
func (s Sample) Build() (vector.Vec3, error) {
	if s.Construct == ConstructDefault || s.Construct == "" {
		if len(s.Components) != 0 {
			return vector.Vec3{}, fmt.Errorf("%s: default construction takes no components", s.Label)
		}
		return vector.Vec3{}, nil
	}

	if len(s.Components) != 3 {
		return vector.Vec3{}, fmt.Errorf("%s: expected 3 components, got %d", s.Label, len(s.Components))
	}
	c := s.Components

	switch s.Construct {
	case ConstructComponents:
		return vector.NewVec3(c[0], c[1], c[2]), nil
	case ConstructSetters:
		var v vector.Vec3
		v.X = c[0]
		v.Y = c[1]
		v.Z = c[2]
		return v, nil
	case ConstructSet:
		var v vector.Vec3
		v.Set(c[0], c[1], c[2])
		return v, nil
	}

	return vector.Vec3{}, fmt.Errorf("%s: unknown construction %q", s.Label, s.Construct)
}

// Validate checks that labels are unique within each group, every sample
// can be built, and the derived-quantity lists only name existing samples.
func (s *Scenario) Validate() error {
	electric, err := checkSamples("electric", s.Electric)
	if err != nil {
		return err
	}
	magnetic, err := checkSamples("magnetic", s.Magnetic)
	if err != nil {
		return err
	}

	for _, label := range s.InnerProduct {
		if !electric[label] {
			return fmt.Errorf("inner product of %q: %w", label, ErrUnknownLabel)
		}
	}
	for _, label := range s.UnitVector {
		if !magnetic[label] {
			return fmt.Errorf("unit vector of %q: %w", label, ErrUnknownLabel)
		}
	}
	return nil
}

func checkSamples(group string, samples []Sample) (map[string]bool, error) {
	seen := make(map[string]bool, len(samples))
	for i, sample := range samples {
		if sample.Label == "" {
			return nil, fmt.Errorf("%s sample %d: missing label", group, i)
		}
		if seen[sample.Label] {
			return nil, fmt.Errorf("%s sample %q: duplicate label", group, sample.Label)
		}
		seen[sample.Label] = true

		if _, err := sample.Build(); err != nil {
			return nil, fmt.Errorf("%s sample %w", group, err)
		}
	}
	return seen, nil
}

// Decode reads a YAML scenario and validates it. Unknown keys are rejected.
func Decode(r io.Reader) (*Scenario, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var s Scenario
	if err := decoder.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty scenario")
		}
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Default returns the built-in scenario.
func Default() *Scenario {
	s, err := Decode(bytes.NewReader(DEFAULT))
	if err != nil {
		panic(fmt.Sprintf("default scenario: %v", err))
	}
	return s
}

// Load reads the scenario at path, or the built-in one if path is empty.
func Load(path string) (*Scenario, error) {
	if path == "" {
		return Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	s, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario %s: %w", path, err)
	}
	return s, nil
}
