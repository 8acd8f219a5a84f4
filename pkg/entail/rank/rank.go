package rank

import "sort"

// TokenWeight pairs a token with its raw importance score.
type TokenWeight struct {
	Token  string
	Weight float64
}

// Selection is the set of token positions chosen for display.
type Selection struct {
	idx map[int]struct{}
}

// Has reports whether position i was selected.
func (s Selection) Has(i int) bool {
	_, ok := s.idx[i]
	return ok
}

// Len returns the number of selected positions.
func (s Selection) Len() int { return len(s.idx) }

// Indices returns the selected positions in ascending order.
func (s Selection) Indices() []int {
	out := make([]int, 0, len(s.idx))
	for i := range s.idx {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// TopK returns the positions of the k largest weights, highest first.
// Equal weights keep their original order. k <= 0 selects nothing and
// k >= len(weights) selects every position.
func TopK(weights []float64, k int) []int {
	if k <= 0 || len(weights) == 0 {
		return []int{}
	}

	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return weights[order[a]] > weights[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}
	return order[:k]
}

// Select is TopK as a Selection.
func Select(weights []float64, k int) Selection {
	top := TopK(weights, k)
	sel := Selection{idx: make(map[int]struct{}, len(top))}
	for _, i := range top {
		sel.idx[i] = struct{}{}
	}
	return sel
}

// TopKTokens ranks token/weight pairs and returns the selected positions.
func TopKTokens(pairs []TokenWeight, k int) []int {
	weights := make([]float64, len(pairs))
	for i, p := range pairs {
		weights[i] = p.Weight
	}
	return TopK(weights, k)
}
