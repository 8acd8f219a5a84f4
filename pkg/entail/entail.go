package entail

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cognicore/entail/pkg/entail/cards"
	"github.com/cognicore/entail/pkg/entail/colormap"
	"github.com/cognicore/entail/pkg/entail/interpret"
	"github.com/cognicore/entail/pkg/entail/judgment"
	"github.com/cognicore/entail/pkg/entail/prediction"
	"github.com/cognicore/entail/pkg/entail/saliency"
	"github.com/cognicore/entail/pkg/entail/store"
)

// Model is the remote entailment model.
type Model interface {
	Predict(ctx context.Context, req prediction.Request) (prediction.Response, error)
	Interpret(ctx context.Context, req prediction.Request, kind interpret.Kind) (interpret.Result, error)
}

// Entail is the explanation engine facade
type Entail struct {
	model    Model
	store    store.Store
	colormap colormap.Config
	interp   interpret.Kind
	cards    *cards.Builder
	now      func() time.Time
}

// Options configures an Entail instance. Store is optional.
type Options struct {
	Model       Model
	Store       store.Store
	Colormap    colormap.Config
	Interpreter interpret.Kind
	Now         func() time.Time
}

// New creates an Entail instance with the given dependencies
func New(opts Options) *Entail {
	e := &Entail{
		model:    opts.Model,
		store:    opts.Store,
		colormap: opts.Colormap,
		interp:   opts.Interpreter,
		cards:    cards.New(),
		now:      opts.Now,
	}
	if e.colormap == (colormap.Config{}) {
		e.colormap = colormap.DefaultConfig()
	}
	if e.interp == "" {
		e.interp = interpret.SimpleGradient
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// Close releases the store, if any.
func (e *Entail) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// Colormap returns the palette used for saliency maps.
func (e *Entail) Colormap() colormap.Config { return e.colormap }

// ExplainRequest asks for a prediction and, optionally, a saliency
// interpretation of it.
type ExplainRequest struct {
	prediction.Request
	Interpret      bool
	Kind           interpret.Kind
	PremiseTopK    int
	HypothesisTopK int
}

// Explanation is everything needed to render one premise/hypothesis pair.
type Explanation struct {
	ID             string
	Request        prediction.Request
	Prediction     prediction.Response
	Interpretation *interpret.Result

	Probs    judgment.Probs
	Judgment judgment.Judgment
	Point    judgment.Point

	PremiseTopK    int
	HypothesisTopK int
	// Premise and Hypothesis are nil until the pair is interpreted.
	Premise    []saliency.ColoredToken
	Hypothesis []saliency.ColoredToken

	CreatedAt time.Time
}

// Interpreted reports whether saliency maps are available.
func (x *Explanation) Interpreted() bool {
	return x.Interpretation != nil && !x.Interpretation.Empty()
}

// Explain runs the model and builds a renderable explanation. An
// unresolvable label tie fails with internalerr.ErrNoJudgment.
func (e *Entail) Explain(ctx context.Context, req ExplainRequest) (*Explanation, error) {
	pred, err := e.model.Predict(ctx, req.Request)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	var res *interpret.Result
	if req.Interpret {
		kind := req.Kind
		if kind == "" {
			kind = e.interp
		}
		r, err := e.model.Interpret(ctx, req.Request, kind)
		if err != nil {
			return nil, fmt.Errorf("interpret: %w", err)
		}
		res = &r
	}

	created := e.now()
	x, err := e.assemble(e.cards.NewID(created), req.Request, pred, res, req.PremiseTopK, req.HypothesisTopK, created)
	if err != nil {
		return nil, err
	}
	if err := e.save(ctx, x); err != nil {
		return nil, err
	}
	return x, nil
}

// Interpret adds (or replaces) the saliency interpretation of an existing
// explanation, keeping its K values.
func (e *Entail) Interpret(ctx context.Context, x *Explanation, kind interpret.Kind) (*Explanation, error) {
	if kind == "" {
		kind = e.interp
	}
	res, err := e.model.Interpret(ctx, x.Request, kind)
	if err != nil {
		return nil, fmt.Errorf("interpret: %w", err)
	}
	out, err := e.assemble(x.ID, x.Request, x.Prediction, &res, x.PremiseTopK, x.HypothesisTopK, x.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := e.save(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Rerender recomputes the saliency maps of x for new K values without
// calling the model. x is not modified.
func (e *Entail) Rerender(x *Explanation, premiseK, hypothesisK int) (*Explanation, error) {
	return e.assemble(x.ID, x.Request, x.Prediction, x.Interpretation, premiseK, hypothesisK, x.CreatedAt)
}

// Reselect is Rerender followed by saving the new K values, so Load and
// Recent show the explanation the way it was last displayed.
func (e *Entail) Reselect(ctx context.Context, x *Explanation, premiseK, hypothesisK int) (*Explanation, error) {
	out, err := e.Rerender(x, premiseK, hypothesisK)
	if err != nil {
		return nil, err
	}
	if err := e.save(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Load rebuilds a stored explanation with the K values it was saved with.
func (e *Entail) Load(ctx context.Context, id string) (*Explanation, error) {
	if e.store == nil {
		return nil, fmt.Errorf("load %s: no store configured", id)
	}
	rec, err := e.store.GetExplanation(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.fromRecord(rec)
}

// Recent returns summary cards for the k newest stored explanations.
func (e *Entail) Recent(ctx context.Context, k int) ([]cards.Card, error) {
	if e.store == nil {
		return nil, nil
	}
	recs, err := e.store.RecentExplanations(ctx, k)
	if err != nil {
		return nil, err
	}
	out := make([]cards.Card, 0, len(recs))
	for _, rec := range recs {
		x, err := e.fromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("rebuild %s: %w", rec.ID, err)
		}
		out = append(out, e.Card(x))
	}
	return out, nil
}

// Card summarises an explanation.
func (e *Entail) Card(x *Explanation) cards.Card {
	return e.cards.Build(cards.Input{
		ID:         x.ID,
		Premise:    x.Request.Premise,
		Hypothesis: x.Request.Hypothesis,
		Summary:    x.Judgment.Summary(),
		Probs:      x.Probs,
		Salient:    cards.Salient{Premise: x.Premise, Hypothesis: x.Hypothesis},
		CreatedAt:  x.CreatedAt,
	})
}

func (e *Entail) assemble(id string, req prediction.Request, pred prediction.Response, res *interpret.Result, premiseK, hypothesisK int, created time.Time) (*Explanation, error) {
	probs, err := pred.Probs()
	if err != nil {
		return nil, err
	}
	j, err := judgment.Judge(probs)
	if err != nil {
		return nil, fmt.Errorf("judge %v: %w", pred.LabelProbs, err)
	}

	x := &Explanation{
		ID:             id,
		Request:        req,
		Prediction:     pred,
		Interpretation: res,
		Probs:          probs,
		Judgment:       j,
		Point:          judgment.Ternary(probs),
		PremiseTopK:    premiseK,
		HypothesisTopK: hypothesisK,
		CreatedAt:      created,
	}
	if !x.Interpreted() {
		return x, nil
	}

	x.Premise, err = saliency.Colorize(saliency.Pair(pred.PremiseTokens, res.Premise(), premiseK), e.colormap)
	if err != nil {
		return nil, fmt.Errorf("colorize premise: %w", err)
	}
	x.Hypothesis, err = saliency.Colorize(saliency.Pair(pred.HypothesisTokens, res.Hypothesis(), hypothesisK), e.colormap)
	if err != nil {
		return nil, fmt.Errorf("colorize hypothesis: %w", err)
	}
	return x, nil
}

func (e *Entail) save(ctx context.Context, x *Explanation) error {
	if e.store == nil {
		return nil
	}
	predJSON, err := json.Marshal(x.Prediction)
	if err != nil {
		return err
	}
	rec := store.Record{
		ID:             x.ID,
		Premise:        x.Request.Premise,
		Hypothesis:     x.Request.Hypothesis,
		Prediction:     string(predJSON),
		PremiseTopK:    x.PremiseTopK,
		HypothesisTopK: x.HypothesisTopK,
		CreatedAt:      x.CreatedAt,
	}
	if x.Interpretation != nil {
		interpJSON, err := json.Marshal(x.Interpretation)
		if err != nil {
			return err
		}
		rec.Interpreter = string(x.Interpretation.Kind)
		rec.Interpretation = string(interpJSON)
	}
	if err := e.store.SaveExplanation(ctx, rec); err != nil {
		return fmt.Errorf("save explanation: %w", err)
	}
	return nil
}

func (e *Entail) fromRecord(rec store.Record) (*Explanation, error) {
	var pred prediction.Response
	if err := json.Unmarshal([]byte(rec.Prediction), &pred); err != nil {
		return nil, fmt.Errorf("decode stored prediction: %w", err)
	}
	var res *interpret.Result
	if rec.Interpretation != "" {
		res = &interpret.Result{}
		if err := json.Unmarshal([]byte(rec.Interpretation), res); err != nil {
			return nil, fmt.Errorf("decode stored interpretation: %w", err)
		}
	}
	req := prediction.Request{Premise: rec.Premise, Hypothesis: rec.Hypothesis}
	return e.assemble(rec.ID, req, pred, res, rec.PremiseTopK, rec.HypothesisTopK, rec.CreatedAt)
}
