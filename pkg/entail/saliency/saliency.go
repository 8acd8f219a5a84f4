// Package saliency turns per-token importance scores into coloured
// token runs for display.
package saliency

import (
	"math"
	"strconv"

	"github.com/cognicore/entail/pkg/entail/colormap"
	"github.com/cognicore/entail/pkg/entail/rank"
)

// Transparent is the background of tokens outside the top-K selection.
const Transparent = "transparent"

// WeightedToken is a token and, when selected, its raw weight.
type WeightedToken struct {
	Token  string
	Weight *float64
}

// ColoredToken is a render-ready token.
type ColoredToken struct {
	Token       string
	Background  string
	Annotation  string
	Highlighted bool
}

// Pair attaches weights to the k highest-scoring tokens. Tokens beyond
// the end of weights are never selected.
func Pair(tokens []string, weights []float64, k int) []WeightedToken {
	sel := rank.Select(weights, k)
	out := make([]WeightedToken, len(tokens))
	for i, tok := range tokens {
		out[i] = WeightedToken{Token: tok}
		if i < len(weights) && sel.Has(i) {
			w := weights[i]
			out[i].Weight = &w
		}
	}
	return out
}

// DisplayWeight maps a raw weight onto the palette axis. Low raw weights
// land at the bright end of the sequential palettes.
func DisplayWeight(raw float64) float64 {
	return 1 - raw
}

// Colorize maps every weighted token to a background colour from the
// palette described by cfg. The caller's cfg is not modified.
func Colorize(tokens []WeightedToken, cfg colormap.Config) ([]ColoredToken, error) {
	palette, err := colormap.Generate(cfg)
	if err != nil {
		return nil, err
	}
	last := len(palette) - 1

	out := make([]ColoredToken, len(tokens))
	for i, tok := range tokens {
		if tok.Weight == nil {
			out[i] = ColoredToken{Token: tok.Token, Background: Transparent}
			continue
		}
		dw := DisplayWeight(*tok.Weight)
		// Scale only after clamping; huge weights would overflow int.
		idx := int(math.Round(math.Max(0, math.Min(1, dw)) * float64(last)))
		out[i] = ColoredToken{
			Token:       tok.Token,
			Background:  palette[idx],
			Annotation:  strconv.FormatFloat(dw, 'f', 5, 64),
			Highlighted: true,
		}
	}
	return out, nil
}
