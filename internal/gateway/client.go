// Package gateway is the thin request layer between the editor and the forms
// backend. Every operation is one request/response round trip; nothing is
// retried or queued here.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrMissingIdentifier = errors.New("server didn't return a valid form ID")
)

// User is the authenticated profile attached to a session.
type User struct {
	ID       DocID  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Session carries the bearer token and profile for authenticated calls. It is
// passed explicitly; there is no ambient global session.
type Session struct {
	Token string
	User  *User
}

// Authenticated reports whether the session can make authenticated calls.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Clear drops the token and profile, e.g. after a 401 or logout.
func (s *Session) Clear() {
	s.Token = ""
	s.User = nil
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// NewClientWithHTTP lets tests inject an http.Client.
func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	c := NewClient(baseURL)
	if hc != nil {
		c.http = hc
	}
	return c
}

// envelope is the standard response wrapper the backend uses.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// doJSON performs one JSON round trip and returns the data payload. A 401
// clears the session so stale tokens don't keep being replayed.
func (c *Client) doJSON(ctx context.Context, sess *Session, method, path string, body interface{}) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	return c.decode(resp, sess)
}

func (c *Client) decode(resp *http.Response, sess *Session) (json.RawMessage, error) {
	if resp.StatusCode == http.StatusUnauthorized {
		if sess != nil {
			sess.Clear()
		}
		return nil, ErrNotAuthenticated
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %v", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("malformed response: %v", err)
	}

	if resp.StatusCode >= 300 || !env.Success {
		msg := env.Message
		if env.Error != nil && env.Error.Message != "" {
			msg = env.Error.Message
		}
		if msg == "" {
			msg = resp.Status
		}
		return nil, fmt.Errorf("%s", msg)
	}
	return env.Data, nil
}
