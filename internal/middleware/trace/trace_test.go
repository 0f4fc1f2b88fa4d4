package trace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddlewareAssignsRequestID(t *testing.T) {
	mw := NewMiddleware(nil)

	var seen []string
	handler := mw.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, GetRequestID(r.Context()))
	}))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	}

	if len(seen) != 2 {
		t.Fatalf("handler ran %d times, want 2", len(seen))
	}
	if seen[0] == "" || seen[1] == "" {
		t.Error("request ID missing from context")
	}
	if seen[0] == seen[1] {
		t.Error("request IDs are not unique per request")
	}
	if got := mw.TotalRequests(); got != 2 {
		t.Errorf("TotalRequests() = %d, want 2", got)
	}
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID(empty ctx) = %q, want empty", got)
	}
}
