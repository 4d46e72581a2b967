// Package client wraps every outbound call to the back-office API: it
// attaches the bearer credential, normalizes error bodies, and handles
// session expiry globally so the page controllers never see a 401.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mktrading/backoffice/session"
)

// ErrUnauthorized reports that a call hit a 401: the credential is already
// cleared and the navigator already invoked, so callers show no message and
// stop whatever they were doing.
var ErrUnauthorized = errors.New("session expired")

// RequestError carries the backend's inline message for any other non-2xx
// response.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string { return e.Message }

type Client struct {
	base           string
	store          session.Store
	onUnauthorized func()
	http           *http.Client
}

// New builds a client for the given API origin. onUnauthorized is the
// navigator back to the login entry point; it runs on every 401, whichever
// endpoint produced it.
func New(base string, store session.Store, onUnauthorized func()) *Client {
	return &Client{base: base, store: store, onUnauthorized: onUnauthorized, http: http.DefaultClient}
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		c.store.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Status: resp.StatusCode, Message: errMessage(data, "Request failed")}
	}
	if out != nil {
		// a malformed body is treated like a missing one
		json.Unmarshal(data, out)
	}
	return nil
}

// Login authenticates and stores the returned token. Unlike the verbs above
// a 401 here is an ordinary request error: there is no session to tear down
// yet.
func (c *Client) Login(ctx context.Context, username, password string) error {
	creds := map[string]string{"username": username, "password": password}
	b, _ := json.Marshal(creds)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/login", bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Status: resp.StatusCode, Message: errMessage(data, "Login failed")}
	}
	var body struct {
		Token string `json:"token"`
	}
	json.Unmarshal(data, &body)
	return c.store.Set(body.Token)
}

func (c *Client) Logout() error {
	return c.store.Clear()
}

// errMessage digs the backend's message out of an error body, falling back
// to a generic one when the body is not JSON or has no message field.
func errMessage(data []byte, fallback string) string {
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &body) == nil && body.Error != "" {
		return body.Error
	}
	return fallback
}
