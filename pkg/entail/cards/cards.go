package cards

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/entail/pkg/entail/judgment"
	"github.com/cognicore/entail/pkg/entail/saliency"
)

// Builder issues explanation IDs and constructs summary cards
type Builder struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates a new card builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// NewID returns a ULID stamped with t. IDs from one Builder sort in
// issue order.
func (b *Builder) NewID(t time.Time) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), b.entropy).String()
}

// Card is a one-screen digest of an explanation
type Card struct {
	ID        string
	Title     string
	Bullets   []string
	Scores    map[string]float64
	CreatedAt time.Time
}

// Input carries what a card is built from
type Input struct {
	ID         string
	Premise    string
	Hypothesis string
	Summary    string
	Probs      judgment.Probs
	Salient    Salient
	CreatedAt  time.Time
}

// Salient holds the coloured tokens of both sentences, nil when the
// pair was not interpreted.
type Salient struct {
	Premise    []saliency.ColoredToken
	Hypothesis []saliency.ColoredToken
}

// Build creates a card for one explanation
func (b *Builder) Build(in Input) Card {
	card := Card{
		ID:      in.ID,
		Title:   in.Summary,
		Bullets: []string{fmt.Sprintf("premise: %s", in.Premise), fmt.Sprintf("hypothesis: %s", in.Hypothesis)},
		Scores: map[string]float64{
			judgment.Entailment.String():    in.Probs.Entailment,
			judgment.Contradiction.String(): in.Probs.Contradiction,
			judgment.Neutral.String():       in.Probs.Neutral,
		},
		CreatedAt: in.CreatedAt,
	}

	if in.Salient.Premise == nil && in.Salient.Hypothesis == nil {
		card.Bullets = append(card.Bullets, "salient tokens: not interpreted")
		return card
	}
	card.Bullets = append(card.Bullets,
		"salient premise tokens: "+joinHighlighted(in.Salient.Premise),
		"salient hypothesis tokens: "+joinHighlighted(in.Salient.Hypothesis),
	)
	return card
}

func joinHighlighted(tokens []saliency.ColoredToken) string {
	var parts []string
	for _, tok := range tokens {
		if tok.Highlighted {
			parts = append(parts, fmt.Sprintf("%s (%s)", tok.Token, tok.Annotation))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
