package astroapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/yanqian/astropredict-web/internal/domain/prediction"
	"github.com/yanqian/astropredict-web/internal/domain/zodiac"
	apperrors "github.com/yanqian/astropredict-web/pkg/errors"
)

const (
	defaultBaseURL = "http://localhost:5000/api"
	defaultTimeout = 15 * time.Second
	errorBodyLimit = 4 << 10

	msgTransport          = "Unable to reach the prediction service. Please try again later."
	msgPredictionFailed   = "Failed to get prediction"
	msgMalformedResponse  = "The prediction service returned an unreadable response"
	msgCompatibilityError = "Failed to check compatibility"
)

// Observer receives one event per finished backend call.
type Observer interface {
	ObserveBackendCall(endpoint, outcome string, elapsed time.Duration)
}

// Client talks to the astrology prediction backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	observer   Observer
}

// Option customises a Client.
type Option func(*Client)

// WithRateLimit caps outbound calls at rps with the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			return
		}
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithObserver reports call outcomes to o.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient builds an API client.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	url := strings.TrimSpace(baseURL)
	if url == "" {
		url = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c := &Client{
		baseURL: strings.TrimRight(url, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListSigns implements zodiac.SignSource.
func (c *Client) ListSigns(ctx context.Context) ([]zodiac.Sign, error) {
	var payload struct {
		Signs []zodiac.Sign `json:"zodiac_signs"`
	}
	if err := c.do(ctx, "zodiac_signs", http.MethodGet, "/zodiac-signs", nil, &payload, "Failed to load zodiac signs"); err != nil {
		return nil, err
	}
	return payload.Signs, nil
}

// Predict posts the birth data and decodes the prediction result.
func (c *Client) Predict(ctx context.Context, in prediction.BirthInput) (prediction.Result, error) {
	var res prediction.Result
	if err := c.do(ctx, "predict", http.MethodPost, "/predict", in, &res, msgPredictionFailed); err != nil {
		return prediction.Result{}, err
	}
	return res, nil
}

// CheckCompatibility asks the backend how well two signs match.
func (c *Client) CheckCompatibility(ctx context.Context, sign1, sign2 string) (prediction.Compatibility, error) {
	body := struct {
		Sign1 string `json:"sign1"`
		Sign2 string `json:"sign2"`
	}{Sign1: sign1, Sign2: sign2}

	var res prediction.Compatibility
	if err := c.do(ctx, "zodiac_compatibility", http.MethodPost, "/zodiac-compatibility", body, &res, msgCompatibilityError); err != nil {
		return prediction.Compatibility{}, err
	}
	return res, nil
}

// Health pings the backend health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, "health", http.MethodGet, "/health", nil, nil, "Prediction service unhealthy")
}

// StatusError carries the upstream status of a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status=%d body=%s", e.StatusCode, e.Body)
}

func (c *Client) do(ctx context.Context, endpoint, method, path string, in, out any, failMsg string) (err error) {
	start := time.Now()
	defer func() {
		if c.observer != nil {
			c.observer.ObserveBackendCall(endpoint, outcome(err), time.Since(start))
		}
	}()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return apperrors.Wrap("transport_error", msgTransport, fmt.Errorf("rate limit wait canceled: %w", err))
		}
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", endpoint, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap("transport_error", msgTransport, fmt.Errorf("%s request failed: %w", endpoint, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return apperrors.Wrap("backend_error", backendMessage(payload, failMsg), &StatusError{StatusCode: resp.StatusCode, Body: string(payload)})
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap("backend_error", msgMalformedResponse, fmt.Errorf("decode %s response: %w", endpoint, err))
	}
	return nil
}

// backendMessage extracts {"error": "..."} from an error body.
func backendMessage(payload []byte, fallback string) string {
	var body struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || len(body.Error) == 0 {
		return fallback
	}
	var msg string
	if err := json.Unmarshal(body.Error, &msg); err == nil && strings.TrimSpace(msg) != "" {
		return msg
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body.Error, &nested); err == nil && strings.TrimSpace(nested.Message) != "" {
		return nested.Message
	}
	return fallback
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if code := apperrors.CodeOf(err); code != "" {
		return code
	}
	return "client_error"
}
