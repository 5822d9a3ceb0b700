// Package client is the Go SDK for the platform API. It plays the role the
// browser session holder plays for the web frontend: it keeps the current
// user and token in memory, persists the token through a TokenStore, attaches
// it to authenticated requests, and rehydrates session state at construction.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// User mirrors the API's user representation.
type User struct {
	ID           string        `json:"id"`
	Email        string        `json:"email"`
	Name         string        `json:"name"`
	Role         string        `json:"role"`
	Plan         string        `json:"plan"`
	Status       string        `json:"status"`
	Subscription *Subscription `json:"subscription,omitempty"`
}

// Subscription mirrors the API's subscription representation.
type Subscription struct {
	ID          string `json:"id"`
	Plan        string `json:"plan"`
	Status      string `json:"status"`
	RenewalDate string `json:"renewal_date,omitempty"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %d %s", e.Status, e.Message)
}

// Client is a session-aware API client. The zero value is not usable; use New.
// User and token are updated atomically under a single lock on success paths.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      TokenStore

	mu    sync.Mutex
	user  *User
	token string
}

// New creates a Client and rehydrates session state: a token found in the
// store is presented to the verify endpoint, and on any failure (invalid,
// expired, revoked, or unreachable server) the stored token is cleared and
// the client starts unauthenticated. New itself never fails on auth grounds.
func New(baseURL string, store TokenStore) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		store:      store,
	}

	stored, err := store.Load()
	if err != nil || stored == "" {
		return c
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := c.verify(ctx, stored)
	if err != nil {
		_ = store.Clear()
		return c
	}

	c.user = user
	c.token = stored
	return c
}

// Login authenticates and caches the resulting session.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	return c.authenticate(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// Signup creates an account and caches the resulting session.
func (c *Client) Signup(ctx context.Context, email, password, name string) (*User, error) {
	return c.authenticate(ctx, "/api/auth/signup", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	})
}

func (c *Client) authenticate(ctx context.Context, path string, body map[string]string) (*User, error) {
	var resp struct {
		User  *User  `json:"user"`
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, path, "", body, &resp); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.user = resp.User
	c.token = resp.Token
	c.mu.Unlock()

	if err := c.store.Save(resp.Token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	return resp.User, nil
}

// Logout notifies the server, then clears local state. The notification is
// best effort: a network or server failure never blocks the local clear, and
// the returned error is informational only.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	tok := c.token
	c.mu.Unlock()

	var notifyErr error
	if tok != "" {
		notifyErr = c.do(ctx, http.MethodPost, "/api/auth/logout", tok, nil, nil)
	}

	c.mu.Lock()
	c.user = nil
	c.token = ""
	c.mu.Unlock()
	_ = c.store.Clear()

	return notifyErr
}

// Verify refreshes the cached user from the server using the cached token.
func (c *Client) Verify(ctx context.Context) (*User, error) {
	c.mu.Lock()
	tok := c.token
	c.mu.Unlock()
	if tok == "" {
		return nil, &APIError{Status: http.StatusUnauthorized, Message: "not authenticated"}
	}

	user, err := c.verify(ctx, tok)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.user = user
	c.mu.Unlock()
	return user, nil
}

func (c *Client) verify(ctx context.Context, tok string) (*User, error) {
	var resp struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", tok, nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// CurrentUser returns the cached user, or nil when unauthenticated.
func (c *Client) CurrentUser() *User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// Token returns the cached session token, empty when unauthenticated.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// IsAuthenticated reports whether a user and token are cached.
func (c *Client) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user != nil && c.token != ""
}

// AdminGetUser fetches any user by id. Requires an admin session.
func (c *Client) AdminGetUser(ctx context.Context, id string) (*User, error) {
	var resp struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/users/"+id, c.Token(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// UserPatch is a partial admin update; nil fields are left unchanged.
type UserPatch struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Plan   *string `json:"plan,omitempty"`
	Status *string `json:"status,omitempty"`
}

// AdminUpdateUser applies a partial update to any user. Requires an admin
// session.
func (c *Client) AdminUpdateUser(ctx context.Context, id string, patch UserPatch) error {
	return c.do(ctx, http.MethodPut, "/api/admin/users/"+id, c.Token(), patch, nil)
}

// AdminDeleteUser removes a user. Requires an admin session.
func (c *Client) AdminDeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/users/"+id, c.Token(), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, tok string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		return &APIError{Status: resp.StatusCode, Message: errBody.Error}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
