// Package judgment summarises the model's three-way label distribution.
package judgment

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cognicore/entail/pkg/entail/internalerr"
)

// Label is an entailment class.
type Label int

const (
	Entailment Label = iota
	Contradiction
	Neutral
)

func (l Label) String() string {
	switch l {
	case Entailment:
		return "entailment"
	case Contradiction:
		return "contradiction"
	case Neutral:
		return "neutral"
	}
	return "unknown"
}

// Phrase is the clause used in summary prose.
func (l Label) Phrase() string {
	switch l {
	case Entailment:
		return "the premise entails the hypothesis"
	case Contradiction:
		return "the premise contradicts the hypothesis"
	case Neutral:
		return "there is no correlation between the premise and hypothesis"
	}
	return ""
}

// Tier buckets the winning probability.
type Tier int

const (
	NotConfident Tier = iota
	SomewhatLikely
	VeryLikely
)

// Tier thresholds.
const (
	VeryConfident     = 0.75
	SomewhatConfident = 0.50
)

func (t Tier) String() string {
	switch t {
	case VeryLikely:
		return "very likely"
	case SomewhatLikely:
		return "somewhat likely"
	}
	return "not confident"
}

// Probs holds the label distribution in model output order.
type Probs struct {
	Entailment    float64
	Contradiction float64
	Neutral       float64
}

// FromSlice reads [entailment, contradiction, neutral].
func FromSlice(p []float64) (Probs, error) {
	if len(p) != 3 {
		return Probs{}, fmt.Errorf("%w: expected 3 label probabilities, got %d", internalerr.ErrInvalidInput, len(p))
	}
	return Probs{Entailment: p[0], Contradiction: p[1], Neutral: p[2]}, nil
}

// Judgment is the argmax label and its confidence tier.
type Judgment struct {
	Label      Label
	Confidence float64
	Tier       Tier
}

// Judge picks the label whose probability strictly exceeds both others.
// Any tie at the top yields ErrNoJudgment.
func Judge(p Probs) (Judgment, error) {
	var j Judgment
	switch {
	case p.Entailment > p.Contradiction && p.Entailment > p.Neutral:
		j = Judgment{Label: Entailment, Confidence: p.Entailment}
	case p.Contradiction > p.Entailment && p.Contradiction > p.Neutral:
		j = Judgment{Label: Contradiction, Confidence: p.Contradiction}
	case p.Neutral > p.Entailment && p.Neutral > p.Contradiction:
		j = Judgment{Label: Neutral, Confidence: p.Neutral}
	default:
		return Judgment{}, internalerr.ErrNoJudgment
	}

	switch {
	case j.Confidence >= VeryConfident:
		j.Tier = VeryLikely
	case j.Confidence >= SomewhatConfident:
		j.Tier = SomewhatLikely
	default:
		j.Tier = NotConfident
	}
	return j, nil
}

// Summary renders the one-sentence verdict.
func (j Judgment) Summary() string {
	if j.Tier == NotConfident {
		return "The model is not confident in its judgment."
	}
	return fmt.Sprintf("It is %s that %s.", j.Tier, j.Label.Phrase())
}

// Point is a position inside the unit ternary triangle.
type Point struct {
	X, Y float64
}

// Ternary projects the distribution onto an equilateral triangle with
// entailment at the apex, contradiction bottom-left and neutral
// bottom-right.
func Ternary(p Probs) Point {
	a, b, c := p.Contradiction, p.Neutral, p.Entailment
	sum := a + b + c
	return Point{
		X: 0.5 * (2*b + c) / sum,
		Y: c / sum,
	}
}

// Default plot size of the ternary background image, in pixels.
const (
	PlotWidth  = 224
	PlotHeight = 194
)

// Plot converts p to pixel offsets from the top-left of a width×height
// image.
func (p Point) Plot(width, height int) (left, top int) {
	left = int(math.Round(p.X * float64(width)))
	top = int(math.Round((1.0 - p.Y) * float64(height)))
	return left, top
}

// FormatProb renders p as a percentage with at most one decimal.
func FormatProb(p float64) string {
	s := strconv.FormatFloat(p*100, 'f', 1, 64)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s + "%"
	}
	return strconv.FormatFloat(f, 'f', -1, 64) + "%"
}
