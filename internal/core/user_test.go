package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCredentials_Validate(t *testing.T) {
	tests := []struct {
		name    string
		creds   Credentials
		wantErr error
	}{
		{"valid", Credentials{Username: "ana@example.com", Password: "secret"}, nil},
		{"empty username", Credentials{Password: "secret"}, ErrEmptyUsername},
		{"empty password", Credentials{Username: "ana@example.com"}, ErrEmptyPassword},
		{"both empty", Credentials{}, ErrEmptyUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistration_Validate(t *testing.T) {
	tests := []struct {
		name    string
		reg     Registration
		wantErr error
	}{
		{"valid", Registration{Name: "Ana", Email: "ana@example.com", Password: "secret"}, nil},
		{"valid without currency", Registration{Name: "Ana", Email: "ana@example.com", Password: "secret"}, nil},
		{"empty name", Registration{Email: "ana@example.com", Password: "secret"}, ErrEmptyName},
		{"empty email", Registration{Name: "Ana", Password: "secret"}, ErrEmptyEmail},
		{"empty password", Registration{Name: "Ana", Email: "ana@example.com"}, ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserWireFormat(t *testing.T) {
	payload := `{
		"id": 7,
		"nombre": "Ana",
		"correo": "ana@example.com",
		"moneda_preferida": "EUR",
		"fecha_creacion": "2024-01-01"
	}`

	var user User
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := User{ID: 7, Name: "Ana", Email: "ana@example.com", PreferredCurrency: "EUR", CreatedAt: "2024-01-01"}
	if user != want {
		t.Errorf("decoded user = %+v, want %+v", user, want)
	}
}

func TestProfilePatchOmitsUnsetFields(t *testing.T) {
	name := "Ana Maria"
	encoded, err := json.Marshal(ProfilePatch{Name: &name})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(encoded, &fields); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got, ok := fields["nombre"]; !ok || got != "Ana Maria" {
		t.Errorf("nombre = %v, want Ana Maria", got)
	}
	if _, ok := fields["moneda_preferida"]; ok {
		t.Error("unset moneda_preferida serialized")
	}
	if _, ok := fields["foto_perfil"]; ok {
		t.Error("unset foto_perfil serialized")
	}
}
