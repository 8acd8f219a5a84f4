package saliency

import (
	"testing"

	"github.com/cognicore/entail/pkg/entail/colormap"
)

func ptr(f float64) *float64 { return &f }

func TestPair(t *testing.T) {
	tokens := []string{"The", "elephant", "was", "lost", "."}
	grads := []float64{0.05, 0.4, 0.1, 0.35, 0.1}

	got := Pair(tokens, grads, 2)
	if len(got) != len(tokens) {
		t.Fatalf("len = %d, want %d", len(got), len(tokens))
	}
	for i, wt := range got {
		if wt.Token != tokens[i] {
			t.Errorf("token %d = %q, want %q", i, wt.Token, tokens[i])
		}
		selected := i == 1 || i == 3
		if selected != (wt.Weight != nil) {
			t.Errorf("token %d selected = %v", i, wt.Weight != nil)
		}
		if wt.Weight != nil && *wt.Weight != grads[i] {
			t.Errorf("token %d weight = %f, want raw %f", i, *wt.Weight, grads[i])
		}
	}
}

func TestPairZeroAndAll(t *testing.T) {
	tokens := []string{"a", "b", "c"}
	grads := []float64{0.2, 0.3, 0.5}

	for _, wt := range Pair(tokens, grads, 0) {
		if wt.Weight != nil {
			t.Errorf("k=0 selected %q", wt.Token)
		}
	}
	for _, wt := range Pair(tokens, grads, 5) {
		if wt.Weight == nil {
			t.Errorf("k>=len left %q unselected", wt.Token)
		}
	}
}

func TestPairShortWeights(t *testing.T) {
	got := Pair([]string{"a", "b", "c"}, []float64{0.9}, 3)
	if got[0].Weight == nil || got[1].Weight != nil || got[2].Weight != nil {
		t.Errorf("unexpected selection with short weights: %+v", got)
	}
}

func TestColorizePreservesOrder(t *testing.T) {
	tokens := []WeightedToken{
		{Token: "two", Weight: ptr(0.7)},
		{Token: "women", Weight: nil},
		{Token: "sit", Weight: ptr(0.1)},
	}

	got, err := Colorize(tokens, colormap.DefaultConfig())
	if err != nil {
		t.Fatalf("Colorize: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d", len(got))
	}
	for i := range tokens {
		if got[i].Token != tokens[i].Token {
			t.Errorf("order broken at %d: %q", i, got[i].Token)
		}
	}
	if got[1].Background != Transparent || got[1].Highlighted || got[1].Annotation != "" {
		t.Errorf("unselected token should be transparent, got %+v", got[1])
	}
	if got[0].Background == Transparent || got[2].Background == Transparent {
		t.Error("selected tokens need a colour")
	}
}

func TestColorizeDisplayWeight(t *testing.T) {
	cfg := colormap.Config{Name: "greys", Format: colormap.FormatHex, Shades: 11}
	palette, err := colormap.Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Colorize([]WeightedToken{
		{Token: "hi", Weight: ptr(0.8)},
		{Token: "lo", Weight: ptr(0)},
		{Token: "top", Weight: ptr(1)},
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	// 1 - 0.8 = 0.2 -> index 2 of 0..10
	if got[0].Background != palette[2] {
		t.Errorf("hi background = %s, want %s", got[0].Background, palette[2])
	}
	if got[0].Annotation != "0.20000" {
		t.Errorf("hi annotation = %s", got[0].Annotation)
	}
	if got[1].Background != palette[10] || got[1].Annotation != "1.00000" {
		t.Errorf("lo = %+v", got[1])
	}
	if got[2].Background != palette[0] || got[2].Annotation != "0.00000" {
		t.Errorf("top = %+v", got[2])
	}
}

func TestColorizeOutOfRangeWeights(t *testing.T) {
	cfg := colormap.Config{Name: "greys", Format: colormap.FormatHex, Shades: 6}
	palette, _ := colormap.Generate(cfg)

	got, err := Colorize([]WeightedToken{
		{Token: "neg", Weight: ptr(-3)},
		{Token: "big", Weight: ptr(4)},
		{Token: "huge-neg", Weight: ptr(-1e300)},
		{Token: "huge", Weight: ptr(1e300)},
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Background != palette[5] {
		t.Errorf("negative weight should clamp to last shade, got %s", got[0].Background)
	}
	if got[1].Background != palette[0] {
		t.Errorf("large weight should clamp to first shade, got %s", got[1].Background)
	}
	if got[2].Background != palette[5] {
		t.Errorf("-1e300 should clamp to last shade, got %s", got[2].Background)
	}
	if got[3].Background != palette[0] {
		t.Errorf("1e300 should clamp to first shade, got %s", got[3].Background)
	}
}

func TestColorizeDoesNotMutateConfig(t *testing.T) {
	cfg := colormap.Config{Name: "copper", Format: colormap.FormatHex, Shades: 3}
	if _, err := Colorize([]WeightedToken{{Token: "x", Weight: ptr(0.5)}}, cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Shades != 3 {
		t.Errorf("config mutated: %d", cfg.Shades)
	}
}

func TestColorizeBadConfig(t *testing.T) {
	if _, err := Colorize(nil, colormap.Config{Name: "mauve", Format: colormap.FormatHex}); err == nil {
		t.Error("expected error for unknown palette")
	}
}

func TestColorizeEmpty(t *testing.T) {
	got, err := Colorize(nil, colormap.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty output, got %d", len(got))
	}
}
