package modelapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/cognicore/entail/pkg/entail/internalerr"
	"github.com/cognicore/entail/pkg/entail/interpret"
	"github.com/cognicore/entail/pkg/entail/prediction"
)

type roundTrip func(*http.Request) *http.Response

func (rt roundTrip) RoundTrip(req *http.Request) (*http.Response, error) {
	return rt(req), nil
}

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestPredictSuccess(t *testing.T) {
	client := &Client{
		BaseURL: "https://models.test/api/",
		HTTPClient: &http.Client{
			Transport: roundTrip(func(req *http.Request) *http.Response {
				if req.URL.String() != "https://models.test/api/predict/textual-entailment" {
					t.Fatalf("unexpected URL %s", req.URL)
				}
				var got prediction.Request
				if err := json.NewDecoder(req.Body).Decode(&got); err != nil {
					t.Fatalf("decode request: %v", err)
				}
				if got.Premise != "A dog runs." {
					t.Fatalf("premise not normalised: %q", got.Premise)
				}
				return respond(200, `{
					"label_probs": [0.9, 0.05, 0.05],
					"premise_tokens": ["A", "dog", "runs", "."],
					"hypothesis_tokens": ["An", "animal", "moves"],
					"h2p_attention": [], "p2h_attention": []
				}`)
			}),
		},
	}

	resp, err := client.Predict(context.Background(), prediction.Request{
		Premise:    "  A   dog\truns. ",
		Hypothesis: "An animal moves",
	})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if len(resp.PremiseTokens) != 4 || resp.LabelProbs[0] != 0.9 {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestPredictServerError(t *testing.T) {
	client := &Client{
		BaseURL: "https://models.test",
		HTTPClient: &http.Client{
			Transport: roundTrip(func(req *http.Request) *http.Response {
				return respond(500, `oops`)
			}),
		},
	}
	if _, err := client.Predict(context.Background(), prediction.Request{}); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestPredictErrorBody(t *testing.T) {
	client := &Client{
		BaseURL: "https://models.test",
		HTTPClient: &http.Client{
			Transport: roundTrip(func(req *http.Request) *http.Response {
				return respond(200, `{"error":"model not loaded"}`)
			}),
		},
	}
	_, err := client.Predict(context.Background(), prediction.Request{})
	if err == nil || !strings.Contains(err.Error(), "model not loaded") {
		t.Fatalf("expected API error, got %v", err)
	}
}

func TestPredictRequiresBaseURL(t *testing.T) {
	client := &Client{}
	if _, err := client.Predict(context.Background(), prediction.Request{}); err == nil {
		t.Fatal("expected error without base URL")
	}
}

func TestInterpret(t *testing.T) {
	client := &Client{
		BaseURL: "https://models.test",
		APIKey:  "secret",
		HTTPClient: &http.Client{
			Transport: roundTrip(func(req *http.Request) *http.Response {
				if req.URL.Path != "/interpret/textual-entailment/simple_gradient" {
					t.Fatalf("unexpected path %s", req.URL.Path)
				}
				if req.Header.Get("Authorization") != "Bearer secret" {
					t.Fatalf("missing auth header")
				}
				return respond(200, `{"simple_gradient":{"instance_1":{"grad_input_1":[0.6,0.4],"grad_input_2":[0.1,0.2,0.7]}}}`)
			}),
		},
	}

	res, err := client.Interpret(context.Background(), prediction.Request{Premise: "p", Hypothesis: "h"}, interpret.SimpleGradient)
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if len(res.Premise()) != 3 || len(res.Hypothesis()) != 2 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestInterpretUnknownKind(t *testing.T) {
	client := &Client{BaseURL: "https://models.test"}
	_, err := client.Interpret(context.Background(), prediction.Request{}, interpret.Kind("lrp"))
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Fatalf("got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	// Fullwidth letters fold to ASCII under NFKC.
	if got := normalize("  ｄｊｅｍｂｅ  drum "); got != "djembe drum" {
		t.Errorf("normalize = %q", got)
	}
}
