package store

import (
	"context"
	"time"
)

// Store persists explanations so they can be re-rendered without calling
// the model again.
type Store interface {
	Close() error

	SaveExplanation(ctx context.Context, r Record) error
	GetExplanation(ctx context.Context, id string) (Record, error)
	RecentExplanations(ctx context.Context, k int) ([]Record, error)
}

// Record is a stored explanation. Prediction and Interpretation hold the
// JSON returned by the model server; Interpretation is empty when the
// pair was never interpreted. PremiseTopK and HypothesisTopK are the
// highlight counts the explanation was last shown with.
type Record struct {
	ID             string
	Premise        string
	Hypothesis     string
	Interpreter    string
	Prediction     string
	Interpretation string
	PremiseTopK    int
	HypothesisTopK int
	CreatedAt      time.Time
}
