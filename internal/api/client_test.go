package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"monedero/internal/core"
)

func testClient(t *testing.T, tokens TokenSource, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, nil, tokens)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRejectsBadBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"http", "http://localhost:8000", false},
		{"https", "https://api.example.com", false},
		{"trailing slash", "http://localhost:8000/", false},
		{"no scheme", "localhost:8000", true},
		{"file scheme", "file:///etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.baseURL, nil, StaticToken(""))
			if (err != nil) != tt.wantErr {
				t.Errorf("NewClient(%q) error = %v, wantErr %v", tt.baseURL, err, tt.wantErr)
			}
		})
	}
}

func TestBearerAttachedFromTokenSource(t *testing.T) {
	var gotAuth string
	client := testClient(t, StaticToken("tok-1"), func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]core.Category{})
	})

	if _, err := client.Categories(context.Background(), CategoryFilters{}); err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want Bearer tok-1", gotAuth)
	}
}

func TestMissingCredentialShortCircuits(t *testing.T) {
	called := false
	client := testClient(t, StaticToken(""), func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := client.Categories(context.Background(), CategoryFilters{})
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("error = %v, want ErrMissingCredential", err)
	}
	if called {
		t.Error("request reached the server despite missing credential")
	}
}

func TestPublicEndpointSkipsCredential(t *testing.T) {
	var gotAuth string
	client := testClient(t, StaticToken(""), func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]core.Category{})
	})

	if _, err := client.GlobalCategories(context.Background(), CategoryFilters{}); err != nil {
		t.Fatalf("GlobalCategories: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want none on a public endpoint", gotAuth)
	}
}

func TestRequestErrorCarriesDetail(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"detail field", http.StatusNotFound, `{"detail": "category not found"}`, "category not found"},
		{"no detail field", http.StatusBadRequest, `{"error": "nope"}`, "Bad Request"},
		{"invalid json", http.StatusInternalServerError, "boom", "Internal Server Error"},
		{"empty body", http.StatusForbidden, "", "Forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient(t, StaticToken("tok-1"), func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Category(context.Background(), 1)
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("error = %v, want *RequestError", err)
			}
			if reqErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", reqErr.StatusCode, tt.status)
			}
			if reqErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", reqErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestNetworkErrorWrapsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	client, err := NewClient(srv.URL, nil, StaticToken("tok-1"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.Category(context.Background(), 1)
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error = %v, want *NetworkError", err)
	}
	if netErr.Unwrap() == nil {
		t.Error("NetworkError does not wrap the underlying failure")
	}
}

func TestPaginationQuery(t *testing.T) {
	var gotQuery string
	client := testClient(t, StaticToken("tok-1"), func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]core.Expense{})
	})

	skip, limit := 20, 10
	_, err := client.Expenses(context.Background(), ExpenseFilters{
		Pagination: Pagination{Skip: &skip, Limit: &limit},
	})
	if err != nil {
		t.Fatalf("Expenses: %v", err)
	}
	if gotQuery != "limit=10&skip=20" {
		t.Errorf("query = %q, want limit=10&skip=20", gotQuery)
	}
}

func TestLoginSendsFormEncodedCredentials(t *testing.T) {
	var gotContentType, gotUser, gotPass string
	client := testClient(t, StaticToken(""), func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		_ = r.ParseForm()
		gotUser = r.PostForm.Get("username")
		gotPass = r.PostForm.Get("password")
		_ = json.NewEncoder(w).Encode(LoginResponse{AccessToken: "tok-1", TokenType: "bearer"})
	})

	resp, err := client.Login(context.Background(), core.Credentials{Username: "ana@example.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if gotContentType != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotUser != "ana@example.com" || gotPass != "secret" {
		t.Errorf("form = (%q, %q)", gotUser, gotPass)
	}
	if resp.AccessToken != "tok-1" {
		t.Errorf("AccessToken = %q", resp.AccessToken)
	}
}

func TestExplicitTokenOverridesSource(t *testing.T) {
	var gotAuth string
	client := testClient(t, StaticToken("from-source"), func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(core.User{ID: 1})
	})

	if _, err := client.Me(context.Background(), "explicit"); err != nil {
		t.Fatalf("Me: %v", err)
	}
	if gotAuth != "Bearer explicit" {
		t.Errorf("Authorization = %q, want Bearer explicit", gotAuth)
	}
}
