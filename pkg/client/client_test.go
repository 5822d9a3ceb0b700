package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const testToken = "token-abc"

// newTestServer serves a minimal slice of the API: login issues testToken,
// verify accepts only testToken, logout accepts anything authenticated.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	writeJSON := func(w http.ResponseWriter, code int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(v)
	}

	user := &User{ID: "u-1", Email: "a@x.com", Name: "A", Role: "user", Plan: "Starter", Status: "Active"}

	// Method-qualified ServeMux patterns need Go 1.22; emulate them here so
	// the suite runs on Go 1.21.
	handle := func(method, path string, h http.HandlerFunc) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
				return
			}
			h(w, r)
		})
	}

	handle(http.MethodPost, "/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Email != "a@x.com" || req.Password != "secret1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"user": user, "token": testToken})
	})

	handle(http.MethodPost, "/api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		created := *user
		created.ID = "u-2"
		created.Email = req.Email
		created.Name = req.Name
		writeJSON(w, http.StatusCreated, map[string]any{"user": &created, "token": testToken})
	})

	handle(http.MethodGet, "/api/auth/verify", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"user": user})
	})

	handle(http.MethodPost, "/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_LoginCachesAndPersists(t *testing.T) {
	srv := newTestServer(t)
	store := NewMemoryTokenStore()
	c := New(srv.URL, store)

	user, err := c.Login(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("unexpected user %+v", user)
	}
	if !c.IsAuthenticated() {
		t.Fatalf("expected authenticated state")
	}
	if c.Token() != testToken {
		t.Fatalf("expected cached token, got %q", c.Token())
	}

	stored, err := store.Load()
	if err != nil || stored != testToken {
		t.Fatalf("expected persisted token, got %q (%v)", stored, err)
	}
}

func TestClient_LoginFailure(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, NewMemoryTokenStore())

	_, err := c.Login(context.Background(), "a@x.com", "wrong")

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
	if !strings.Contains(apiErr.Message, "invalid email or password") {
		t.Fatalf("expected server message, got %q", apiErr.Message)
	}
	if c.IsAuthenticated() {
		t.Fatalf("failed login must not authenticate")
	}
}

func TestClient_Signup(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, NewMemoryTokenStore())

	user, err := c.Signup(context.Background(), "b@x.com", "secret1", "B")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.Email != "b@x.com" || user.Name != "B" {
		t.Fatalf("unexpected user %+v", user)
	}
	if !c.IsAuthenticated() {
		t.Fatalf("expected authenticated state")
	}
}

func TestClient_RehydratesFromStore(t *testing.T) {
	srv := newTestServer(t)
	store := NewMemoryTokenStore()
	if err := store.Save(testToken); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	c := New(srv.URL, store)
	if !c.IsAuthenticated() {
		t.Fatalf("expected session rehydrated from stored token")
	}
	if got := c.CurrentUser(); got == nil || got.Email != "a@x.com" {
		t.Fatalf("unexpected rehydrated user %+v", got)
	}
}

func TestClient_RehydrateClearsRejectedToken(t *testing.T) {
	srv := newTestServer(t)
	store := NewMemoryTokenStore()
	if err := store.Save("stale-token"); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	c := New(srv.URL, store)
	if c.IsAuthenticated() {
		t.Fatalf("rejected token must not authenticate")
	}
	if stored, _ := store.Load(); stored != "" {
		t.Fatalf("rejected token must be cleared from the store, got %q", stored)
	}
}

func TestClient_RehydrateToleratesUnreachableServer(t *testing.T) {
	store := NewMemoryTokenStore()
	if err := store.Save(testToken); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	// Nothing listens here; construction must still succeed.
	c := New("http://127.0.0.1:1", store)
	if c.IsAuthenticated() {
		t.Fatalf("unverifiable token must not authenticate")
	}
}

func TestClient_LogoutClearsStateEvenOnServerError(t *testing.T) {
	srv := newTestServer(t)
	store := NewMemoryTokenStore()
	c := New(srv.URL, store)

	if _, err := c.Login(context.Background(), "a@x.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	srv.Close()

	err := c.Logout(context.Background())
	if err == nil {
		t.Fatalf("expected an informational notify error")
	}
	if c.IsAuthenticated() {
		t.Fatalf("logout must clear local state regardless of server reachability")
	}
	if stored, _ := store.Load(); stored != "" {
		t.Fatalf("logout must clear the store, got %q", stored)
	}
}

func TestClient_Logout(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, NewMemoryTokenStore())

	if _, err := c.Login(context.Background(), "a@x.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if c.IsAuthenticated() || c.Token() != "" || c.CurrentUser() != nil {
		t.Fatalf("expected cleared session")
	}
}

func TestClient_VerifyRequiresSession(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, NewMemoryTokenStore())

	_, err := c.Verify(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a session, got %v", err)
	}
}

func TestClient_AdminRequestsCarryBearerToken(t *testing.T) {
	var gotAuth, gotMethod string
	var gotPatch UserPatch
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/login" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"user":{"id":"adm","role":"admin"},"token":"` + testToken + `"}`))
			return
		}
		gotAuth = r.Header.Get("Authorization")
		gotMethod = r.Method
		if r.Method == http.MethodPut {
			_ = json.NewDecoder(r.Body).Decode(&gotPatch)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"u-9"},"message":"ok"}`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, NewMemoryTokenStore())
	if _, err := c.Login(context.Background(), "adm@x.com", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := c.AdminGetUser(context.Background(), "u-9"); err != nil {
		t.Fatalf("admin get: %v", err)
	}
	if gotAuth != "Bearer "+testToken {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}

	plan := "Pro"
	if err := c.AdminUpdateUser(context.Background(), "u-9", UserPatch{Plan: &plan}); err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if gotPatch.Plan == nil || *gotPatch.Plan != "Pro" {
		t.Fatalf("expected plan in patch body, got %+v", gotPatch)
	}
	if gotPatch.Name != nil {
		t.Fatalf("nil fields must be omitted from the patch body")
	}

	if err := c.AdminDeleteUser(context.Background(), "u-9"); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Fatalf("expected DELETE, got %q", gotMethod)
	}
}
