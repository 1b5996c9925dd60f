package board

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GreenSheep01201/Claw-Kanban/internal/debug"
	"github.com/GreenSheep01201/Claw-Kanban/internal/domain"
)

const (
	cardsPath = "/api/cards"

	// RequestIDHeader carries a per-request id so server logs can be matched
	// with the client's debug log.
	RequestIDHeader = "X-Request-Id"

	maxErrorBody = 64 << 10
)

var httpLog = debug.For("board")

// HTTPClient talks to the board's JSON API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	requestID  func() string
}

// HTTPOption configures an HTTPClient.
type HTTPOption func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTPClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) HTTPOption {
	return func(c *HTTPClient) {
		clone := *c.httpClient
		clone.Timeout = d
		c.httpClient = &clone
	}
}

// WithRequestIDs overrides how request ids are generated. Passing nil
// stops the header from being sent.
func WithRequestIDs(gen func() string) HTTPOption {
	return func(c *HTTPClient) { c.requestID = gen }
}

// NewHTTPClient returns a client rooted at baseURL, e.g. http://127.0.0.1:8787.
func NewHTTPClient(baseURL string, opts ...HTTPOption) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{},
		requestID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL reports the API root the client was built with.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) String() string {
	return c.baseURL
}

// CreateCard calls POST /api/cards. Any 2xx response is success; the body is
// not inspected.
func (c *HTTPClient) CreateCard(ctx context.Context, req domain.CreateCardRequest) error {
	if err := Validate(req); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, cardsPath, req, nil)
}

// ListCards calls GET /api/cards. The server may answer with a bare array or
// an object wrapping it under "cards".
func (c *HTTPClient) ListCards(ctx context.Context) ([]domain.Card, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, cardsPath, nil, &raw); err != nil {
		return nil, err
	}
	cards, err := decodeCardList(raw)
	if err != nil {
		return nil, parseFailed("list cards", err)
	}
	return cards, nil
}

func decodeCardList(raw json.RawMessage) ([]domain.Card, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []domain.Card{}, nil
	}
	if trimmed[0] == '[' {
		var cards []domain.Card
		if err := json.Unmarshal(trimmed, &cards); err != nil {
			return nil, err
		}
		return cards, nil
	}
	var wrapped struct {
		Cards []domain.Card `json:"cards"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Cards == nil {
		return []domain.Card{}, nil
	}
	return wrapped.Cards, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return transportFailed(op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	var id string
	if c.requestID != nil {
		id = c.requestID()
		req.Header.Set(RequestIDHeader, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		httpLog.Logf("%s id=%s failed after %s: %v", op, id, time.Since(start), err)
		return transportFailed(op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	httpLog.Logf("%s id=%s -> %d in %s", op, id, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return rejected(newAPIError(resp.StatusCode, data))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return parseFailed(op, err)
	}
	return nil
}

// newAPIError pulls a human message out of an error body. It understands
// {"error":"..."}, {"error":{"message":"..."}} and {"message":"..."}, then
// falls back to the raw text and finally the status text.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Body: string(body)}

	var payload struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = errorText(payload.Error)
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(payload.Message)
		}
		if apiErr.Message != "" {
			return apiErr
		}
	}

	text := strings.TrimSpace(string(body))
	if text != "" && !looksLikeJSON(text) {
		apiErr.Message = text
	}
	return apiErr
}

func errorText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil {
		return strings.TrimSpace(nested.Message)
	}
	return ""
}

func looksLikeJSON(text string) bool {
	return strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[")
}
