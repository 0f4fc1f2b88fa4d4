// Package core defines the wire-level domain model of the finance API.
//
// Field names follow the API's JSON contract verbatim; the server is
// authoritative for every value here, the client never derives or merges
// fields locally.
package core

import "errors"

// User is the authenticated principal as returned by the API. The same shape
// is used for the minimal identity from the token-verification endpoint and
// for the extended profile: endpoints that omit fields simply leave them zero.
type User struct {
	ID                int64  `json:"id"`
	Name              string `json:"nombre"`
	Email             string `json:"correo"`
	PreferredCurrency string `json:"moneda_preferida"`
	AvatarURL         string `json:"foto_perfil,omitempty"`
	CreatedAt         string `json:"fecha_creacion"`
}

// Credentials is the form-encoded login payload.
type Credentials struct {
	Username string
	Password string
}

// Registration is the payload for creating a new account.
type Registration struct {
	Name              string `json:"nombre"`
	Email             string `json:"correo"`
	Password          string `json:"contrasena"`
	PreferredCurrency string `json:"moneda_preferida"`
}

// ProfilePatch carries partial profile fields; nil pointers are omitted from
// the request body so the server only touches what the caller set.
type ProfilePatch struct {
	Name              *string `json:"nombre,omitempty"`
	PreferredCurrency *string `json:"moneda_preferida,omitempty"`
	AvatarURL         *string `json:"foto_perfil,omitempty"`
}

// PasswordChange is the payload for the password-change endpoint.
type PasswordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

var (
	ErrEmptyUsername = errors.New("empty username")
	ErrEmptyPassword = errors.New("empty password")
	ErrEmptyName     = errors.New("empty name")
	ErrEmptyEmail    = errors.New("empty email")
)

// Validate checks login credentials before any network call is made.
func (c Credentials) Validate() error {
	if c.Username == "" {
		return ErrEmptyUsername
	}
	if c.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// Validate checks the registration payload before submission.
func (r Registration) Validate() error {
	if r.Name == "" {
		return ErrEmptyName
	}
	if r.Email == "" {
		return ErrEmptyEmail
	}
	if r.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}
