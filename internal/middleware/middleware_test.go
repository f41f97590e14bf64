package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"air-cargo-assistant/internal/audit"
	"air-cargo-assistant/pkg/log"
)

type fakeAuditUC struct {
	inputs []audit.RecordInput
}

func (f *fakeAuditUC) Record(_ context.Context, input audit.RecordInput) {
	f.inputs = append(f.inputs, input)
}

func newTestRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.POST("/api/v1/conversation", func(c *gin.Context) {
		// The handler must still see the full body after the audit
		// middleware snapshots it.
		var payload struct {
			Message string `json:"message"`
		}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"echo": payload.Message})
	})
	return r
}

func TestRequestID(t *testing.T) {
	m := New(log.NewNop(), &fakeAuditUC{})

	t.Run("GeneratedWhenAbsent", func(t *testing.T) {
		r := newTestRouter(m.RequestID())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/conversation", strings.NewReader(`{"message":"hi"}`))
		r.ServeHTTP(w, req)

		if w.Header().Get(HeaderRequestID) == "" {
			t.Error("response missing generated request id")
		}
	})

	t.Run("CallerIDKept", func(t *testing.T) {
		r := newTestRouter(m.RequestID())
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/conversation", strings.NewReader(`{"message":"hi"}`))
		req.Header.Set(HeaderRequestID, "req-123")
		r.ServeHTTP(w, req)

		if got := w.Header().Get(HeaderRequestID); got != "req-123" {
			t.Errorf("request id = %q, want req-123", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	m := New(log.NewNop(), &fakeAuditUC{})
	r := newTestRouter(m.RateLimit(60, 2))

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/conversation", strings.NewReader(`{"message":"hi"}`))
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK {
		t.Errorf("burst requests = %v, first two should pass", statuses)
	}
	if statuses[2] != http.StatusTooManyRequests {
		t.Errorf("third request = %d, want 429", statuses[2])
	}

	t.Run("OtherClientUnaffected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/conversation", strings.NewReader(`{"message":"hi"}`))
		req.RemoteAddr = "10.0.0.2:1234"
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200 for a fresh client", w.Code)
		}
	})
}

func TestAudit(t *testing.T) {
	recorder := &fakeAuditUC{}
	m := New(log.NewNop(), recorder)
	r := newTestRouter(m.Audit())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversation", strings.NewReader(`{"message":"quote please"}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body snapshot broke downstream binding", w.Code)
	}
	if len(recorder.inputs) != 1 {
		t.Fatalf("recorded %d entries, want 1", len(recorder.inputs))
	}

	got := recorder.inputs[0]
	if got.Endpoint != "/api/v1/conversation" || got.Method != http.MethodPost {
		t.Errorf("entry = %+v", got)
	}
	if got.ResponseStatus != http.StatusOK {
		t.Errorf("status = %d", got.ResponseStatus)
	}
	if got.UserMessage != "quote please" {
		t.Errorf("user message = %q", got.UserMessage)
	}
	if got.LatencyMs < 0 {
		t.Errorf("latency = %v", got.LatencyMs)
	}
}
