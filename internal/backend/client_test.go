package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestApplyGateSendsGateAndState(t *testing.T) {
	var got applyRequest
	var gotID, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotID = r.Header.Get(RequestIDHeader)
		gotType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"new_state": [[0], [1]]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL})
	state, err := c.ApplyGate(context.Background(), "X", InitialState())
	if err != nil {
		t.Fatalf("ApplyGate error: %v", err)
	}

	if got.Gate != "X" {
		t.Errorf("request gate = %q, want X", got.Gate)
	}
	if !reflect.DeepEqual(got.StateVector, InitialState()) {
		t.Errorf("request state_vector = %v, want %v", got.StateVector, InitialState())
	}
	if gotID == "" {
		t.Error("expected a request id header")
	}
	if gotType != "application/json" {
		t.Errorf("content type = %q", gotType)
	}
	if want := (StateVector{{0}, {1}}); !reflect.DeepEqual(state, want) {
		t.Errorf("new state = %v, want %v", state, want)
	}
}

func TestApplyGateFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "boom"},
		{name: "invalid gate", status: http.StatusBadRequest, body: `{"error": "Invalid gate"}`},
		{name: "malformed body", status: http.StatusOK, body: `{"new_state": [[1],`},
		{name: "missing new_state", status: http.StatusOK, body: `{}`, wantErr: ErrMissingState},
		{name: "null new_state", status: http.StatusOK, body: `{"new_state": null}`, wantErr: ErrMissingState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(Config{Endpoint: srv.URL})
			state, err := c.ApplyGate(context.Background(), "H", InitialState())
			if err == nil {
				t.Fatalf("expected error, got state %v", state)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if state != nil {
				t.Errorf("expected nil state on failure, got %v", state)
			}
		})
	}
}

func TestApplyGateErrorsCarryRequestID(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, "boom"},
		{"malformed body", http.StatusOK, `{"new_state": [[1],`},
		{"missing new_state", http.StatusOK, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sent string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				sent = r.Header.Get(RequestIDHeader)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(Config{Endpoint: srv.URL}).ApplyGate(context.Background(), "X", InitialState())
			if err == nil {
				t.Fatal("expected error")
			}
			if sent == "" {
				t.Fatal("request carried no id")
			}
			if !strings.Contains(err.Error(), sent) {
				t.Errorf("error %q does not name request %s", err, sent)
			}
		})
	}
}

func TestApplyGateNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(Config{Endpoint: url})
	if _, err := c.ApplyGate(context.Background(), "X", InitialState()); err == nil {
		t.Fatal("expected error for closed server")
	}
}

func TestApplyGateTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(Config{Endpoint: srv.URL, Timeout: 50 * time.Millisecond})
	if _, err := c.ApplyGate(context.Background(), "X", InitialState()); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{})
	if c.Endpoint() != DefaultEndpoint {
		t.Errorf("endpoint = %q, want %q", c.Endpoint(), DefaultEndpoint)
	}
	if c.http.Timeout != 0 {
		t.Errorf("default timeout = %v, want none", c.http.Timeout)
	}
}

func TestStateVectorClone(t *testing.T) {
	s := StateVector{{0.5}, {0.5}}
	c := s.Clone()
	c[0][0] = 9
	if s[0][0] != 0.5 {
		t.Error("clone shares rows with the original")
	}
	if StateVector(nil).Clone() != nil {
		t.Error("clone of nil should be nil")
	}
}
