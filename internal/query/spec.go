package query

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMaxGenres caps the genre selection.
const DefaultMaxGenres = 5

// YearRange is an inclusive release year interval.
type YearRange struct {
	Min int `yaml:"min" json:"min" validate:"ltefield=Max"`
	Max int `yaml:"max" json:"max"`
}

// Contains reports whether year lies in r.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// FilterSpec selects titles. Zero-valued dimensions are unconstrained.
type FilterSpec struct {
	Kinds       []string   `yaml:"kinds" json:"kinds,omitempty" validate:"dive,required"`
	YearRange   *YearRange `yaml:"year_range" json:"year_range,omitempty"`
	QualityTier string     `yaml:"quality_tier" json:"quality_tier,omitempty" validate:"omitempty,tier"`
	Ratings     []string   `yaml:"ratings" json:"ratings,omitempty" validate:"dive,required"`
	Genres      []string   `yaml:"genres" json:"genres,omitempty" validate:"dive,required"`
	Countries   []string   `yaml:"countries" json:"countries,omitempty" validate:"dive,required"`
}

// IsZero reports whether no dimension is active.
func (s FilterSpec) IsZero() bool {
	return len(s.Kinds) == 0 && s.YearRange == nil && strings.TrimSpace(s.QualityTier) == "" &&
		len(s.Ratings) == 0 && len(s.Genres) == 0 && len(s.Countries) == 0
}

// LoadFile reads a FilterSpec from a YAML document.
func LoadFile(path string) (FilterSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FilterSpec{}, fmt.Errorf("read query file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML FilterSpec. Unknown keys are rejected.
func Parse(data []byte) (FilterSpec, error) {
	var spec FilterSpec
	if len(strings.TrimSpace(string(data))) == 0 {
		return spec, nil
	}
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return FilterSpec{}, fmt.Errorf("parse query: %w", err)
	}
	return spec, nil
}
