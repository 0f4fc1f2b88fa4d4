package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"monedero/internal/core"
)

// Auth and profile endpoints take the credential explicitly rather than
// through the TokenSource: the session store calls them while it is still
// deciding whether a credential is valid, before it publishes one.

// LoginResponse is the success payload of the login endpoint. The embedded
// user object is optional; callers must treat a missing AccessToken as a
// contract violation.
type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        *core.User `json:"user,omitempty"`
}

// Login submits form-encoded credentials and returns the raw response.
func (c *Client) Login(ctx context.Context, creds core.Credentials) (LoginResponse, error) {
	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	body := strings.NewReader(form.Encode())

	var out LoginResponse
	err := c.do(ctx, call{
		method:      http.MethodPost,
		path:        "api/auth/login",
		body:        body,
		contentType: "application/x-www-form-urlencoded",
		out:         &out,
	})
	if err != nil {
		return LoginResponse{}, err
	}
	return out, nil
}

// Register creates an account. It does not establish a session; the caller
// is expected to log in afterwards.
func (c *Client) Register(ctx context.Context, reg core.Registration) (core.User, error) {
	var out core.User
	if err := c.sendJSON(ctx, http.MethodPost, "api/auth/register", reg, &out, false); err != nil {
		return core.User{}, err
	}
	return out, nil
}

// Me verifies a credential against the identity endpoint and returns the
// minimal identity it proves.
func (c *Client) Me(ctx context.Context, token string) (core.User, error) {
	var out core.User
	err := c.do(ctx, call{method: http.MethodGet, path: "api/auth/me", bearer: token, out: &out})
	if err != nil {
		return core.User{}, err
	}
	return out, nil
}

// Profile fetches the extended profile for the given credential.
func (c *Client) Profile(ctx context.Context, token string) (core.User, error) {
	var out core.User
	err := c.do(ctx, call{method: http.MethodGet, path: "api/users/profile", bearer: token, out: &out})
	if err != nil {
		return core.User{}, err
	}
	return out, nil
}

// UpdateProfile applies a partial profile update and returns the server's
// representation of the result.
func (c *Client) UpdateProfile(ctx context.Context, token string, patch core.ProfilePatch) (core.User, error) {
	encoded, err := marshalBody(patch)
	if err != nil {
		return core.User{}, err
	}
	var out core.User
	err = c.do(ctx, call{
		method:      http.MethodPut,
		path:        "api/users/profile",
		body:        encoded,
		contentType: "application/json",
		bearer:      token,
		out:         &out,
	})
	if err != nil {
		return core.User{}, err
	}
	return out, nil
}

// ChangePassword rotates the account password. Success has no body.
func (c *Client) ChangePassword(ctx context.Context, token string, change core.PasswordChange) error {
	encoded, err := marshalBody(change)
	if err != nil {
		return err
	}
	return c.do(ctx, call{
		method:      http.MethodPost,
		path:        "api/auth/change-password",
		body:        encoded,
		contentType: "application/json",
		bearer:      token,
	})
}

// DeleteAccount removes the account behind the credential.
func (c *Client) DeleteAccount(ctx context.Context, token string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: "api/users/profile", bearer: token})
}
