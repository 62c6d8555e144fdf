package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestIDMiddleware(t *testing.T) {
	s := New()

	tests := []struct {
		name       string
		incomingID string
		wantSame   bool
	}{
		{
			name:       "generates ID when missing",
			incomingID: "",
			wantSame:   false,
		},
		{
			name:       "preserves valid UUID",
			incomingID: uuid.New().String(),
			wantSame:   true,
		},
		{
			name:       "replaces invalid ID",
			incomingID: "not-a-uuid",
			wantSame:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seenID string
			handler := s.requestIDMiddleware(func(_ http.ResponseWriter, r *http.Request) {
				seenID, _ = r.Context().Value(contextKeyRequestID).(string)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incomingID != "" {
				req.Header.Set("X-Request-Id", tt.incomingID)
			}
			w := httptest.NewRecorder()

			handler(w, req)

			if seenID == "" {
				t.Fatal("expected request ID in context")
			}
			if _, err := uuid.Parse(seenID); err != nil {
				t.Errorf("request ID is not a valid UUID: %s", seenID)
			}
			if tt.wantSame && seenID != tt.incomingID {
				t.Errorf("expected incoming ID %s to be preserved, got %s", tt.incomingID, seenID)
			}
			if !tt.wantSame && seenID == tt.incomingID {
				t.Errorf("expected incoming ID %s to be replaced", tt.incomingID)
			}
			if got := w.Header().Get("X-Request-Id"); got != seenID {
				t.Errorf("response header ID %s does not match context ID %s", got, seenID)
			}
		})
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := New()

	handler := s.requestIDMiddleware(s.panicRecoveryMiddleware(
		func(_ http.ResponseWriter, _ *http.Request) {
			panic("handler exploded")
		},
	))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestCORSMiddleware(t *testing.T) {
	s := New()

	called := false
	handler := s.corsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	// Preflight short-circuits.
	req := httptest.NewRequest(http.MethodOptions, "/predict", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight: expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if called {
		t.Error("preflight should not reach the handler")
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS origin header")
	}

	// Regular request passes through with headers set.
	req = httptest.NewRequest(http.MethodPost, "/predict", nil)
	w = httptest.NewRecorder()
	handler(w, req)

	if !called {
		t.Error("expected handler to be called")
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS origin header on regular request")
	}
}

func TestResponseWriterStatusTracking(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	rw.WriteHeader(http.StatusBadRequest)
	rw.WriteHeader(http.StatusOK) // ignored

	if rw.Status() != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rw.Status())
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected recorded status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestResponseWriterImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if _, err := rw.Write([]byte("body")); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if rw.Status() != http.StatusOK {
		t.Errorf("expected implicit status %d, got %d", http.StatusOK, rw.Status())
	}
}
