package prediction

import (
	"fmt"

	"github.com/cognicore/entail/pkg/entail/internalerr"
	"github.com/cognicore/entail/pkg/entail/judgment"
)

// Request is the sentence pair sent to the model.
type Request struct {
	Premise    string `json:"premise"`
	Hypothesis string `json:"hypothesis"`
}

// Response is the model's prediction for a Request.
type Response struct {
	LabelProbs       []float64   `json:"label_probs"`
	PremiseTokens    []string    `json:"premise_tokens"`
	HypothesisTokens []string    `json:"hypothesis_tokens"`
	H2PAttention     [][]float64 `json:"h2p_attention"`
	P2HAttention     [][]float64 `json:"p2h_attention"`
}

// Probs returns the label distribution.
func (r Response) Probs() (judgment.Probs, error) {
	return judgment.FromSlice(r.LabelProbs)
}

// Heatmap is a labelled attention matrix: Data[i][j] is how much row
// token i attends to column token j.
type Heatmap struct {
	RowLabels []string
	ColLabels []string
	Data      [][]float64
}

// Heat builds a Heatmap after checking the matrix is rows×cols.
func Heat(rows, cols []string, data [][]float64) (Heatmap, error) {
	if len(data) != len(rows) {
		return Heatmap{}, fmt.Errorf("%w: attention has %d rows, want %d", internalerr.ErrInvalidInput, len(data), len(rows))
	}
	for i, row := range data {
		if len(row) != len(cols) {
			return Heatmap{}, fmt.Errorf("%w: attention row %d has %d columns, want %d", internalerr.ErrInvalidInput, i, len(row), len(cols))
		}
	}
	return Heatmap{RowLabels: rows, ColLabels: cols, Data: data}, nil
}

// PremiseToHypothesis is the attention of each premise token over the
// hypothesis tokens.
func (r Response) PremiseToHypothesis() (Heatmap, error) {
	return Heat(r.PremiseTokens, r.HypothesisTokens, r.P2HAttention)
}

// HypothesisToPremise is the attention of each hypothesis token over the
// premise tokens.
func (r Response) HypothesisToPremise() (Heatmap, error) {
	return Heat(r.HypothesisTokens, r.PremiseTokens, r.H2PAttention)
}
