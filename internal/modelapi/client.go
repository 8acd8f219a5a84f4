package modelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/entail/pkg/entail/interpret"
	"github.com/cognicore/entail/pkg/entail/prediction"
)

const (
	predictPath   = "/predict/textual-entailment"
	interpretPath = "/interpret/textual-entailment"
)

// Client calls a textual-entailment model server.
type Client struct {
	BaseURL string
	APIKey  string

	HTTPClient *http.Client
}

type errorResponse struct {
	Error string `json:"error"`
}

// Predict runs the model on a premise/hypothesis pair.
func (c *Client) Predict(ctx context.Context, req prediction.Request) (prediction.Response, error) {
	body, err := c.send(ctx, predictPath, normalizeRequest(req))
	if err != nil {
		return prediction.Response{}, err
	}
	var resp prediction.Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return prediction.Response{}, fmt.Errorf("modelapi: decode prediction: %w", err)
	}
	return resp, nil
}

// Interpret asks the server to explain its prediction with the given
// interpreter.
func (c *Client) Interpret(ctx context.Context, req prediction.Request, kind interpret.Kind) (interpret.Result, error) {
	if _, err := interpret.ParseKind(string(kind)); err != nil {
		return interpret.Result{}, err
	}
	body, err := c.send(ctx, interpretPath+"/"+string(kind), normalizeRequest(req))
	if err != nil {
		return interpret.Result{}, err
	}
	return interpret.Decode(kind, body)
}

func (c *Client) send(ctx context.Context, path string, payload any) ([]byte, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("modelapi: base URL required")
	}
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var apiErr errorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		return nil, fmt.Errorf("modelapi error: %s", apiErr.Error)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("modelapi: %s returned %s", path, resp.Status)
	}
	return body, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}

func normalizeRequest(req prediction.Request) prediction.Request {
	return prediction.Request{
		Premise:    normalize(req.Premise),
		Hypothesis: normalize(req.Hypothesis),
	}
}

func normalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return norm.NFKC.String(s)
}
