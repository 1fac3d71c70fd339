// ABOUTME: YAML tour configuration: scrim style plus ordered spotlight steps
// ABOUTME: Unset style fields fall back to defaults; negative values are rejected

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/spotlight-go/pkg/overlay"
)

// File is the on-disk tour description.
type File struct {
	Style StyleConfig `yaml:"style"`
	Steps []Step      `yaml:"steps"`
}

// StyleConfig is the YAML-friendly form of overlay.Style. Padding and
// CornerRadius are pointers so an absent field inherits the default
// while an explicit zero stays zero.
type StyleConfig struct {
	Scrim        string   `yaml:"scrim"`
	Padding      *float64 `yaml:"padding"`
	CornerRadius *float64 `yaml:"corner_radius"`
}

// Step names a spotlight target with the text shown alongside it.
type Step struct {
	Target string `yaml:"target"`
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
}

// Default style values, matching overlay.DefaultStyle.
const (
	DefaultScrim        = "#000000b3"
	DefaultPadding      = 8.0
	DefaultCornerRadius = 12.0
)

// Default returns a File with default style and no steps.
func Default() File {
	pad := DefaultPadding
	radius := DefaultCornerRadius
	return File{
		Style: StyleConfig{
			Scrim:        DefaultScrim,
			Padding:      &pad,
			CornerRadius: &radius,
		},
	}
}

// Load reads and validates a tour file. Unset style fields inherit the
// defaults; invalid values (negative numbers, unparseable colors, steps
// without a target) are configuration errors and fail fast.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading tour file: %w", err)
	}

	f := Default()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func (f File) validate() error {
	if _, err := f.OverlayStyle(); err != nil {
		return err
	}
	for i, s := range f.Steps {
		if s.Target == "" {
			return fmt.Errorf("step %d: missing target", i+1)
		}
	}
	return nil
}

// OverlayStyle converts the YAML style to an overlay.Style.
func (f File) OverlayStyle() (overlay.Style, error) {
	scrim, err := ParseHexColor(f.Style.Scrim)
	if err != nil {
		return overlay.Style{}, fmt.Errorf("scrim: %w", err)
	}
	s := overlay.Style{Scrim: scrim}
	if f.Style.Padding != nil {
		s.Padding = *f.Style.Padding
	}
	if f.Style.CornerRadius != nil {
		s.CornerRadius = *f.Style.CornerRadius
	}
	if err := s.Validate(); err != nil {
		return overlay.Style{}, err
	}
	return s, nil
}
