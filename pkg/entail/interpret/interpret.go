// Package interpret models gradient-based interpretation results.
package interpret

import (
	"encoding/json"
	"fmt"

	"github.com/cognicore/entail/pkg/entail/internalerr"
)

// Kind identifies a saliency interpreter on the model server.
type Kind string

const (
	SimpleGradient     Kind = "simple_gradient"
	IntegratedGradient Kind = "integrated_gradient"
	SmoothGradient     Kind = "smooth_gradient"
)

// Kinds lists every supported interpreter.
func Kinds() []Kind {
	return []Kind{SimpleGradient, IntegratedGradient, SmoothGradient}
}

// ParseKind validates an interpreter name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case SimpleGradient, IntegratedGradient, SmoothGradient:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown interpreter %q", internalerr.ErrInvalidInput, s)
}

// Result is one interpreter's per-token gradients for an input pair.
// GradInput1 follows the hypothesis tokens and GradInput2 the premise
// tokens, matching the model's embedding order.
type Result struct {
	Kind       Kind      `json:"kind"`
	GradInput1 []float64 `json:"grad_input_1"`
	GradInput2 []float64 `json:"grad_input_2"`
}

// Premise returns the gradients aligned with the premise tokens.
func (r Result) Premise() []float64 { return r.GradInput2 }

// Hypothesis returns the gradients aligned with the hypothesis tokens.
func (r Result) Hypothesis() []float64 { return r.GradInput1 }

// Empty reports whether the result carries no gradients.
func (r Result) Empty() bool {
	return len(r.GradInput1) == 0 && len(r.GradInput2) == 0
}

type instance struct {
	GradInput1 []float64 `json:"grad_input_1"`
	GradInput2 []float64 `json:"grad_input_2"`
}

type payload struct {
	Instance1 *instance `json:"instance_1"`
}

// Decode extracts the result for kind from an interpret response of the
// form {"<kind>": {"instance_1": {...}}}.
func Decode(kind Kind, body []byte) (Result, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return Result{}, err
	}

	var resp struct {
		SimpleGradient     *payload `json:"simple_gradient"`
		IntegratedGradient *payload `json:"integrated_gradient"`
		SmoothGradient     *payload `json:"smooth_gradient"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return Result{}, fmt.Errorf("decode interpretation: %w", err)
	}

	var p *payload
	switch kind {
	case SimpleGradient:
		p = resp.SimpleGradient
	case IntegratedGradient:
		p = resp.IntegratedGradient
	case SmoothGradient:
		p = resp.SmoothGradient
	}
	if p == nil || p.Instance1 == nil {
		return Result{}, fmt.Errorf("%w: no %s result in response", internalerr.ErrNotFound, kind)
	}
	return Result{
		Kind:       kind,
		GradInput1: p.Instance1.GradInput1,
		GradInput2: p.Instance1.GradInput2,
	}, nil
}
