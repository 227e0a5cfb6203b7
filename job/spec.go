// SPDX-License-Identifier: MIT

package job

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtopo/metric"
)

// Sentinel errors for job descriptions.
var (
	// ErrMissingName indicates a job without a name.
	ErrMissingName = errors.New("job: name is required")

	// ErrNoInput indicates a job with neither a complex nor a Rips input.
	ErrNoInput = errors.New("job: no input (complex or rips) given")

	// ErrAmbiguousInput indicates more than one input source.
	ErrAmbiguousInput = errors.New("job: more than one input given")

	// ErrUnknownDistance indicates a distance name metric.ByName does not know.
	ErrUnknownDistance = errors.New("job: unknown distance")
)

// Spec is a job description.
type Spec struct {
	// Name identifies the job in logs and output.
	Name string `yaml:"name"`

	// Field is the prime coefficient field; 0 means 2.
	Field int `yaml:"field,omitempty"`

	// Strict drops zero-length intervals.
	Strict bool `yaml:"strict,omitempty"`

	// Dimensions selects the reported diagrams; empty means all.
	Dimensions []int `yaml:"dimensions,omitempty"`

	// Complex is an explicit filtered complex.
	Complex []Entry `yaml:"complex,omitempty"`

	// Rips is a point-cloud input.
	Rips *Rips `yaml:"rips,omitempty"`

	// Betti lists persistent Betti numbers to evaluate.
	Betti []BettiQuery `yaml:"betti,omitempty"`
}

// Entry is one simplex of an explicit complex.
type Entry struct {
	Simplex []int   `yaml:"simplex"`
	Degree  float64 `yaml:"degree"`
}

// Rips configures a Vietoris–Rips build. Exactly one of Points and
// Distances must be set.
type Rips struct {
	Points    [][]float64 `yaml:"points,omitempty"`
	Distances [][]float64 `yaml:"distances,omitempty"`

	// Threshold defaults to 1 + the largest distance.
	Threshold *float64 `yaml:"threshold,omitempty"`

	// MaxSize bounds the vertex count of a simplex; 0 means unbounded.
	MaxSize int `yaml:"max_size,omitempty"`

	// Distance is a metric.ByName name; empty means euclidean.
	Distance string `yaml:"distance,omitempty"`
}

// BettiQuery asks for β_Dim at At with the given minimum persistence.
type BettiQuery struct {
	Dim         int     `yaml:"dim"`
	At          float64 `yaml:"at"`
	Persistence float64 `yaml:"persistence,omitempty"`
}

// Load reads and parses a job file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("job: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML job, rejecting unknown fields, and validates it.
//
// Errors:
//   - a wrapped yaml error for malformed input.
//   - ErrMissingName, ErrNoInput, ErrAmbiguousInput, ErrUnknownDistance.
func Parse(data []byte) (*Spec, error) {
	var s Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("job: parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks the structural rules of a job. Numeric checks (field
// primality, degrees, thresholds) are left to the packages that run it.
func (s *Spec) Validate() error {
	if s.Name == "" {
		return ErrMissingName
	}
	switch {
	case len(s.Complex) == 0 && s.Rips == nil:
		return ErrNoInput
	case len(s.Complex) > 0 && s.Rips != nil:
		return fmt.Errorf("%w: complex and rips", ErrAmbiguousInput)
	}
	if r := s.Rips; r != nil {
		if len(r.Points) > 0 && len(r.Distances) > 0 {
			return fmt.Errorf("%w: rips points and distances", ErrAmbiguousInput)
		}
		if r.Distance != "" {
			if _, ok := metric.ByName(r.Distance); !ok {
				return fmt.Errorf("%w: %q", ErrUnknownDistance, r.Distance)
			}
		}
	}

	return nil
}

// FieldOrDefault returns Field, or 2 when unset.
func (s *Spec) FieldOrDefault() int {
	if s.Field == 0 {
		return 2
	}

	return s.Field
}
