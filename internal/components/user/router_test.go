package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"accounts-api/internal/shared/config"
	"accounts-api/internal/shared/password"
	"accounts-api/internal/shared/token"
)

func newTestRouter(t *testing.T) (http.Handler, *token.Issuer) {
	t.Helper()

	issuer, err := token.NewIssuer(&config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour})
	if err != nil {
		t.Fatalf("NewIssuer() unexpected error: %v", err)
	}

	svc := NewService(newFakeRepo(), password.NewHasher())
	return NewRouter(svc, issuer), issuer
}

func TestCreateUserEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"alice","password":"s3cret!"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/users/1" {
		t.Errorf("Location = %q, want %q", loc, "/users/1")
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["username"] != "alice" {
		t.Errorf("username = %v, want alice", body["username"])
	}
	if _, leaked := body["password_hash"]; leaked {
		t.Error("response leaked the password hash")
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	router, _ := newTestRouter(t)

	for i, want := range []int{http.StatusCreated, http.StatusConflict} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"alice","password":"s3cret!"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != want {
			t.Errorf("attempt %d: status = %d, want %d", i+1, rec.Code, want)
		}
	}
}

func TestCreateUserBadRequest(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"missing username", `{"password":"s3cret!"}`},
		{"missing password", `{"username":"alice"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestGetUserRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestGetUserEndpoint(t *testing.T) {
	router, issuer := newTestRouter(t)

	create := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"alice","password":"s3cret!"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d", rec.Code, http.StatusCreated)
	}

	signed, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}

	get := httptest.NewRequest(http.MethodGet, "/1", nil)
	get.Header.Set("Authorization", "Bearer "+signed)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, get)

	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["username"] != "alice" {
		t.Errorf("username = %v, want alice", body["username"])
	}

	missing := httptest.NewRequest(http.MethodGet, "/999", nil)
	missing.Header.Set("Authorization", "Bearer "+signed)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, missing)

	if rec.Code != http.StatusNotFound {
		t.Errorf("missing user status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
