package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

func newAuthedRouter(t *testing.T) *mux.Router {
	t.Helper()
	r := mux.NewRouter()
	r.Use(Middleware(NewMockAuthorizer()))
	r.HandleFunc("/v0/users/{userId}/habits", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	return r
}

func TestMiddleware_AllowsMatchingUser(t *testing.T) {
	var seen *ActorInfo
	r := mux.NewRouter()
	r.Use(Middleware(NewMockAuthorizer()))
	r.HandleFunc("/v0/users/{userId}/habits", func(w http.ResponseWriter, req *http.Request) {
		seen = ActorFrom(req.Context())
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/v0/users/"+LocalDevUserID+"/habits", nil)
	req.Header.Set("Authorization", "Bearer "+LocalDevAPIKey)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seen == nil || seen.UserID != LocalDevUserID {
		t.Fatalf("actor in context = %+v", seen)
	}
}

func TestMiddleware_RejectsMissingKey(t *testing.T) {
	r := newAuthedRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/v0/users/"+LocalDevUserID+"/habits", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestMiddleware_RejectsUnknownKey(t *testing.T) {
	r := newAuthedRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/v0/users/"+LocalDevUserID+"/habits", nil)
	req.Header.Set("Authorization", "Bearer sk_wrong")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestMiddleware_RejectsForeignUserPath(t *testing.T) {
	r := newAuthedRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/v0/users/somebody-else/habits", nil)
	req.Header.Set("Authorization", "Bearer "+LocalDevAPIKey)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestStaticAuthorizer(t *testing.T) {
	a, err := NewStaticAuthorizer("sk_a:alice, sk_b:bob")
	if err != nil {
		t.Fatalf("NewStaticAuthorizer: %v", err)
	}
	actor, err := a.Authorize(context.Background(), "sk_b", "GET /")
	if err != nil || actor.UserID != "bob" {
		t.Fatalf("actor = %+v, err = %v", actor, err)
	}
	if _, err := a.Authorize(context.Background(), "sk_c", "GET /"); err != ErrInvalidAPIKey {
		t.Fatalf("err = %v, want ErrInvalidAPIKey", err)
	}

	if _, err := NewStaticAuthorizer(""); err == nil {
		t.Fatal("empty spec should fail")
	}
	if _, err := NewStaticAuthorizer("garbage"); err == nil {
		t.Fatal("malformed spec should fail")
	}
}

func TestExtractAPIKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := ExtractAPIKey(req); err != ErrMissingAPIKey {
		t.Fatalf("err = %v, want ErrMissingAPIKey", err)
	}

	req.Header.Set("Authorization", "Basic abc")
	if _, err := ExtractAPIKey(req); err != ErrInvalidAPIKey {
		t.Fatalf("err = %v, want ErrInvalidAPIKey", err)
	}

	req.Header.Set("Authorization", "Bearer sk_123")
	key, err := ExtractAPIKey(req)
	if err != nil || key != "sk_123" {
		t.Fatalf("key = %q, err = %v", key, err)
	}
}
