// Package api implements typed clients for the finance API.
//
// Every call attaches the bearer credential from a TokenSource, runs exactly
// once (no retries at this layer) and normalizes failures into the shared
// error taxonomy: *NetworkError when no response was received, *RequestError
// for non-2xx responses carrying the server's detail message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ErrMissingCredential is returned when an authenticated endpoint is called
// while no credential is available. No network call is made in that case.
var ErrMissingCredential = errors.New("api: no credential available")

// TokenSource yields the current bearer credential. The session store is the
// canonical implementation; tests substitute fixed tokens.
type TokenSource interface {
	Token() (string, bool)
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func() (string, bool)

func (f TokenSourceFunc) Token() (string, bool) {
	return f()
}

// StaticToken is a TokenSource for a fixed credential.
type StaticToken string

func (s StaticToken) Token() (string, bool) {
	return string(s), s != ""
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the shared transport for all resource clients.
type Client struct {
	baseURL *url.URL
	http    httpDoer
	tokens  TokenSource
}

// NewClient builds a client for the API at baseURL. httpClient may be nil, in
// which case http.DefaultClient is used; timeouts belong to the passed
// http.Client, not to this layer.
func NewClient(baseURL string, httpClient httpDoer, tokens TokenSource) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base URL scheme %q", u.Scheme)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: u, http: httpClient, tokens: tokens}, nil
}

// request options for a single call.
type call struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	authed      bool
	bearer      string // explicit credential, overrides the TokenSource
	out         any
}

func (c *Client) do(ctx context.Context, cl call) error {
	u := c.baseURL.JoinPath(cl.path)
	if len(cl.query) > 0 {
		u.RawQuery = cl.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u.String(), cl.body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}
	switch {
	case cl.bearer != "":
		req.Header.Set("Authorization", "Bearer "+cl.bearer)
	case cl.authed:
		token, ok := c.tokens.Token()
		if !ok {
			return ErrMissingCredential
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRequestError(resp)
	}

	if cl.out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(cl.out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", cl.method, cl.path, err)
	}
	return nil
}

// newRequestError extracts the API's detail message from an error response.
func newRequestError(resp *http.Response) *RequestError {
	msg := http.StatusText(resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(body) > 0 {
		var payload struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Detail != "" {
			msg = payload.Detail
		}
	}
	if msg == "" {
		msg = "request failed"
	}

	slog.Debug("API request rejected", "status", resp.StatusCode, "detail", msg)
	return &RequestError{StatusCode: resp.StatusCode, Message: msg}
}

// marshalBody encodes a JSON request body.
func marshalBody(in any) (io.Reader, error) {
	encoded, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(encoded), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, authed bool, out any) error {
	return c.do(ctx, call{method: http.MethodGet, path: path, query: query, authed: authed, out: out})
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any, authed bool) error {
	var body io.Reader
	if in != nil {
		encoded, err := marshalBody(in)
		if err != nil {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}
		body = encoded
	}
	return c.do(ctx, call{
		method:      method,
		path:        path,
		body:        body,
		contentType: "application/json",
		authed:      authed,
		out:         out,
	})
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: path, authed: true})
}

// Pagination carries the skip/limit window shared by every list endpoint.
type Pagination struct {
	Skip  *int
	Limit *int
}

func (p Pagination) apply(q url.Values) {
	if p.Skip != nil {
		q.Set("skip", strconv.Itoa(*p.Skip))
	}
	if p.Limit != nil {
		q.Set("limit", strconv.Itoa(*p.Limit))
	}
}
