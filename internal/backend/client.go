package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DefaultEndpoint is the gate service the UI talks to when nothing else is configured.
const DefaultEndpoint = "http://localhost:5000/apply_gate"

// RequestIDHeader carries the per-request id so client and server logs can be matched.
const RequestIDHeader = "X-Request-ID"

// StateVector is a column vector of amplitudes, one single-element row per basis state.
type StateVector [][]float64

// InitialState returns the single-qubit ground state |0⟩.
func InitialState() StateVector {
	return StateVector{{1}, {0}}
}

// Clone returns a deep copy so callers can hand the vector to another goroutine.
func (s StateVector) Clone() StateVector {
	if s == nil {
		return nil
	}
	out := make(StateVector, len(s))
	for i, row := range s {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Applier applies a named gate to a state vector.
type Applier interface {
	ApplyGate(ctx context.Context, gate string, state StateVector) (StateVector, error)
}

// ErrMissingState is returned when a 2xx response carries no new_state field.
var ErrMissingState = errors.New("response has no new_state")

// Config holds the gate service connection settings.
type Config struct {
	// Full URL of the apply_gate route
	Endpoint string

	// Zero means no timeout
	Timeout time.Duration

	// HTTP client; built from Timeout when nil
	HTTPClient *http.Client

	Logger *log.Logger
}

// Client talks to the remote apply_gate service.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *log.Logger
}

type applyRequest struct {
	Gate        string      `json:"gate"`
	StateVector StateVector `json:"state_vector"`
}

type applyResponse struct {
	NewState StateVector `json:"new_state"`
}

// NewClient creates a client for the given configuration.
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return &Client{
		endpoint: cfg.Endpoint,
		http:     cfg.HTTPClient,
		logger:   cfg.Logger.WithPrefix("backend"),
	}
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// ApplyGate posts the gate and the current state vector and returns the service's new state.
// Transport failures, non-2xx statuses and undecodable bodies all come back as errors,
// each naming the request id sent in the X-Request-ID header.
func (c *Client) ApplyGate(ctx context.Context, gate string, state StateVector) (StateVector, error) {
	payload, err := json.Marshal(applyRequest{Gate: gate, StateVector: state})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, reqID)

	logger := c.logger.With("request_id", reqID, "gate", gate)
	logger.Debug("posting gate", "endpoint", c.endpoint)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s (request %s): %w", gate, reqID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("apply gate %s failed (request %s): %s (status: %d)", gate, reqID, bytes.TrimSpace(body), resp.StatusCode)
	}

	var out applyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response (request %s): %w", reqID, err)
	}
	if out.NewState == nil {
		return nil, fmt.Errorf("request %s: %w", reqID, ErrMissingState)
	}

	logger.Debug("gate applied", "elapsed", time.Since(start), "rows", len(out.NewState))
	return out.NewState, nil
}
