package rank

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestTopKBasic(t *testing.T) {
	weights := []float64{0.1, 0.5, 0.2, 0.9, 0.3}

	got := TopK(weights, 3)
	want := []int{3, 1, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopK = %v, want %v", got, want)
	}
}

func TestTopKZero(t *testing.T) {
	got := TopK([]float64{0.4, 0.6}, 0)
	if len(got) != 0 {
		t.Errorf("k=0 should select nothing, got %v", got)
	}

	got = TopK([]float64{0.4, 0.6}, -2)
	if len(got) != 0 {
		t.Errorf("negative k should select nothing, got %v", got)
	}
}

func TestTopKLargerThanInput(t *testing.T) {
	got := TopK([]float64{0.4, 0.6, 0.5}, 10)
	want := []int{1, 2, 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopK = %v, want %v", got, want)
	}
}

func TestTopKEmpty(t *testing.T) {
	if got := TopK(nil, 3); len(got) != 0 {
		t.Errorf("empty input should yield empty selection, got %v", got)
	}
}

func TestTopKTiesKeepOriginalOrder(t *testing.T) {
	weights := []float64{0.2, 0.5, 0.5, 0.1, 0.5}

	got := TopK(weights, 2)
	want := []int{1, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopK = %v, want %v", got, want)
	}
}

func TestTopKDoesNotMutateInput(t *testing.T) {
	weights := []float64{0.3, 0.1, 0.2}
	TopK(weights, 2)
	if !reflect.DeepEqual(weights, []float64{0.3, 0.1, 0.2}) {
		t.Errorf("input mutated: %v", weights)
	}
}

func TestTopKProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(12)
		weights := make([]float64, n)
		for i := range weights {
			// Coarse values so ties show up often.
			weights[i] = float64(rng.Intn(5)) / 4
		}
		k := rng.Intn(n + 2)

		got := TopK(weights, k)

		wantLen := k
		if wantLen > n {
			wantLen = n
		}
		if len(got) != wantLen {
			t.Fatalf("trial %d: len = %d, want %d", trial, len(got), wantLen)
		}

		chosen := make(map[int]bool)
		for _, i := range got {
			if i < 0 || i >= n {
				t.Fatalf("trial %d: index %d out of range", trial, i)
			}
			if chosen[i] {
				t.Fatalf("trial %d: duplicate index %d", trial, i)
			}
			chosen[i] = true
		}

		for i := 0; i < n; i++ {
			if chosen[i] {
				continue
			}
			for j := range chosen {
				if weights[j] < weights[i] {
					t.Fatalf("trial %d: unselected %d (%.2f) outweighs selected %d (%.2f)",
						trial, i, weights[i], j, weights[j])
				}
				if weights[j] == weights[i] && j > i {
					t.Fatalf("trial %d: tie broken against original order (%d before %d)", trial, i, j)
				}
			}
		}
	}
}

func TestSelect(t *testing.T) {
	sel := Select([]float64{0.9, 0.1, 0.5}, 2)

	if sel.Len() != 2 {
		t.Fatalf("Len = %d, want 2", sel.Len())
	}
	if !sel.Has(0) || !sel.Has(2) || sel.Has(1) {
		t.Errorf("unexpected selection %v", sel.Indices())
	}
	if !reflect.DeepEqual(sel.Indices(), []int{0, 2}) {
		t.Errorf("Indices = %v", sel.Indices())
	}
}

func TestSelectZeroValue(t *testing.T) {
	var sel Selection
	if sel.Has(0) || sel.Len() != 0 {
		t.Error("zero Selection should be empty")
	}
}

func TestTopKTokens(t *testing.T) {
	pairs := []TokenWeight{
		{Token: "the", Weight: 0.05},
		{Token: "elephant", Weight: 0.6},
		{Token: "was", Weight: 0.1},
		{Token: "lost", Weight: 0.25},
	}

	got := TopKTokens(pairs, 2)
	want := []int{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopKTokens = %v, want %v", got, want)
	}
}
