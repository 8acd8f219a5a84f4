// Package colormap generates discrete colour palettes from named
// gradient scales and formats them for display.
package colormap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/cognicore/entail/pkg/entail/internalerr"
)

// Shade bounds. The generator needs at least MinShades colours and
// displays never use more than MaxShades.
const (
	MinShades = 6
	MaxShades = 72
)

// Format selects how palette colours are rendered as strings.
type Format string

const (
	FormatHex        Format = "hex"        // #rrggbb
	FormatRGBAString Format = "rgbaString" // rgba(r,g,b,1)
	FormatRGB        Format = "rgb"        // rgb(r,g,b)
	FormatFloat      Format = "float"      // r,g,b,a in [0,1]
)

// Config describes a palette request.
type Config struct {
	Name   string `yaml:"name"`
	Format Format `yaml:"format"`
	Shades int    `yaml:"nshades"`
}

// DefaultConfig is the copper palette used for saliency maps.
func DefaultConfig() Config {
	return Config{Name: "copper", Format: FormatHex, Shades: 20}
}

// Clamped returns a copy of c with Shades forced into [MinShades, MaxShades].
func (c Config) Clamped() Config {
	if c.Shades < MinShades {
		c.Shades = MinShades
	}
	if c.Shades > MaxShades {
		c.Shades = MaxShades
	}
	return c
}

// Validate checks that the palette name and format are known.
func (c Config) Validate() error {
	if _, ok := scales[strings.ToLower(c.Name)]; !ok {
		return fmt.Errorf("%w: unknown colormap %q", internalerr.ErrInvalidConfig, c.Name)
	}
	switch c.Format {
	case FormatHex, FormatRGBAString, FormatRGB, FormatFloat:
	default:
		return fmt.Errorf("%w: unknown colormap format %q", internalerr.ErrInvalidConfig, c.Format)
	}
	return nil
}

// Names lists the available palettes.
func Names() []string {
	names := make([]string, 0, len(scales))
	for name := range scales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate returns exactly c.Clamped().Shades colours sampled evenly
// from the named scale, first colour at the scale's start and last at
// its end.
func Generate(c Config) ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c = c.Clamped()
	stops := scales[strings.ToLower(c.Name)]

	out := make([]string, c.Shades)
	for i := range out {
		t := float64(i) / float64(c.Shades-1)
		out[i] = format(sample(stops, t), c.Format)
	}
	return out, nil
}

func sample(stops []stop, t float64) colorful.Color {
	for i := 0; i < len(stops)-1; i++ {
		lo, hi := stops[i], stops[i+1]
		if t > hi.at && i < len(stops)-2 {
			continue
		}
		span := hi.at - lo.at
		if span <= 0 {
			return toColor(hi.rgb)
		}
		local := (t - lo.at) / span
		if local < 0 {
			local = 0
		}
		if local > 1 {
			local = 1
		}
		return toColor(lo.rgb).BlendRgb(toColor(hi.rgb), local)
	}
	return toColor(stops[len(stops)-1].rgb)
}

func toColor(rgb [3]uint8) colorful.Color {
	return colorful.Color{
		R: float64(rgb[0]) / 255.0,
		G: float64(rgb[1]) / 255.0,
		B: float64(rgb[2]) / 255.0,
	}
}

func format(c colorful.Color, f Format) string {
	switch f {
	case FormatRGBAString:
		r, g, b := c.RGB255()
		return fmt.Sprintf("rgba(%d,%d,%d,1)", r, g, b)
	case FormatRGB:
		r, g, b := c.RGB255()
		return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
	case FormatFloat:
		return fmt.Sprintf("%.4f,%.4f,%.4f,1", c.R, c.G, c.B)
	default:
		return c.Hex()
	}
}
