// Package session owns the authenticated session: who is logged in, the
// bearer credential that proves it, and every state transition between the
// two. It is the only package that performs authentication network calls and
// the only writer of the persisted credential.
package session

import (
	"context"
	"errors"
	"sync"

	"monedero/internal/api"
	"monedero/internal/core"
	"monedero/internal/log"
)

// Phase is the derived session status. It is never persisted; it is
// recomputed from the identity/credential pair on every read.
type Phase string

const (
	// PhaseHydrating covers construction until Bootstrap resolves.
	PhaseHydrating Phase = "hydrating"
	// PhaseAnonymous means no credential is held.
	PhaseAnonymous Phase = "anonymous"
	// PhaseAuthenticated means both credential and identity are present.
	PhaseAuthenticated Phase = "authenticated"
)

// AuthAPI is the slice of the API the store needs. *api.Client implements it.
type AuthAPI interface {
	Login(ctx context.Context, creds core.Credentials) (api.LoginResponse, error)
	Register(ctx context.Context, reg core.Registration) (core.User, error)
	Me(ctx context.Context, token string) (core.User, error)
	Profile(ctx context.Context, token string) (core.User, error)
	UpdateProfile(ctx context.Context, token string, patch core.ProfilePatch) (core.User, error)
	ChangePassword(ctx context.Context, token string, change core.PasswordChange) error
	DeleteAccount(ctx context.Context, token string) error
}

// CredentialStore is the durable home of the credential. Load returns an
// empty string with a nil error when nothing is stored; the store treats any
// load failure the same as "no credential".
type CredentialStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Store is the single source of truth for the session. The durable credential
// copy is write-through: it is read exactly once, during Bootstrap; after
// that the in-memory pair is authoritative.
//
// Invariant: identity and credential are present together or absent together,
// and are always written as a pair under the mutex.
type Store struct {
	apiClient AuthAPI
	creds     CredentialStore
	logger    *log.Logger

	bootstrapOnce sync.Once

	mu        sync.Mutex
	user      *core.User
	token     string
	hydrated  bool
	anonEpoch uint64
}

// New builds a store in the hydrating phase. Callers must invoke Bootstrap
// (typically in a goroutine) to resolve it.
func New(apiClient AuthAPI, creds CredentialStore, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Store{
		apiClient: apiClient,
		creds:     creds,
		logger:    logger.WithComponent(log.ComponentSession),
	}
}

// Phase reports the current session phase.
func (s *Store) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phaseLocked()
}

func (s *Store) phaseLocked() Phase {
	switch {
	case !s.hydrated:
		return PhaseHydrating
	case s.token != "":
		return PhaseAuthenticated
	default:
		return PhaseAnonymous
	}
}

// Identity returns the current identity, if any.
func (s *Store) Identity() (core.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return core.User{}, false
	}
	return *s.user, true
}

// Token returns the current credential, if any. It implements
// api.TokenSource so resource clients can attach the bearer token.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// AnonymousEpoch counts transitions into the anonymous phase. The route
// guard uses it to issue its redirect exactly once per anonymous period.
func (s *Store) AnonymousEpoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anonEpoch
}

// setPair writes identity and credential together. Passing an empty token
// clears both; the pair is never split.
func (s *Store) setPair(user *core.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setPairLocked(user, token)
}

func (s *Store) setPairLocked(user *core.User, token string) {
	wasAnonymous := s.hydrated && s.token == ""
	if token == "" {
		s.user = nil
		s.token = ""
	} else {
		s.user = user
		s.token = token
	}
	s.hydrated = true
	if s.token == "" && !wasAnonymous {
		s.anonEpoch++
	}
}

// Bootstrap attempts silent re-authentication from the persisted credential.
// It resolves the hydrating phase exactly once; repeated calls are no-ops.
// Failures are not surfaced: a rejected or unreadable credential degrades to
// the anonymous phase, and the stale persisted value is discarded.
func (s *Store) Bootstrap(ctx context.Context) {
	s.bootstrapOnce.Do(func() {
		s.bootstrap(ctx)
	})
}

func (s *Store) bootstrap(ctx context.Context) {
	token, err := s.creds.Load(ctx)
	if err != nil || token == "" {
		if err != nil {
			s.logger.WarnContext(ctx, "Stored credential unreadable", "error", err)
		}
		s.setPair(nil, "")
		return
	}

	identity, err := s.apiClient.Me(ctx, token)
	if err != nil {
		s.logger.InfoContext(ctx, "Stored credential not accepted, clearing it", "error", err)
		if clearErr := s.creds.Clear(ctx); clearErr != nil {
			s.logger.ErrorContext(ctx, "Failed to clear stored credential", "error", clearErr)
		}
		s.setPair(nil, "")
		return
	}

	// The extended profile is best effort: the minimal identity from the
	// verification endpoint is enough to resolve to authenticated.
	if profile, err := s.apiClient.Profile(ctx, token); err == nil {
		identity = profile
	} else {
		s.logger.WarnContext(ctx, "Extended profile unavailable, using minimal identity", "error", err)
	}

	s.setPair(&identity, token)
	s.logger.InfoContext(ctx, "Session restored", "user_id", identity.ID)
}

// Login exchanges credentials for a session. The credential is persisted
// only on success; no prior session state is altered on failure.
func (s *Store) Login(ctx context.Context, creds core.Credentials) error {
	resp, err := s.apiClient.Login(ctx, creds)
	if err != nil {
		return loginError(err)
	}
	if resp.AccessToken == "" {
		// A 2xx without a token is a broken contract, not bad credentials,
		// but callers see the same fail path for both.
		return &AuthenticationError{Reason: "login response missing access token"}
	}

	if err := s.creds.Save(ctx, resp.AccessToken); err != nil {
		return err
	}

	identity := s.resolveIdentity(ctx, resp)
	s.setPair(&identity, resp.AccessToken)
	s.logger.InfoContext(ctx, "Logged in", "user_id", identity.ID)
	return nil
}

// resolveIdentity fetches the extended profile for a fresh login, degrading
// to the identity embedded in the login response, then to the verification
// endpoint. Login never fails for want of a richer profile.
func (s *Store) resolveIdentity(ctx context.Context, resp api.LoginResponse) core.User {
	profile, err := s.apiClient.Profile(ctx, resp.AccessToken)
	if err == nil {
		return profile
	}
	s.logger.WarnContext(ctx, "Extended profile unavailable after login", "error", err)

	if resp.User != nil {
		return *resp.User
	}
	if me, err := s.apiClient.Me(ctx, resp.AccessToken); err == nil {
		return me
	}
	return core.User{}
}

// Register creates an account and immediately logs in with it; registration
// alone does not establish a session.
func (s *Store) Register(ctx context.Context, reg core.Registration) error {
	if err := reg.Validate(); err != nil {
		return err
	}
	if _, err := s.apiClient.Register(ctx, reg); err != nil {
		return err
	}
	return s.Login(ctx, core.Credentials{Username: reg.Email, Password: reg.Password})
}

// Logout clears the session synchronously. It makes no network call and is
// idempotent: logging out while anonymous is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	alreadyAnonymous := s.hydrated && s.token == ""
	s.setPairLocked(nil, "")
	s.mu.Unlock()

	if alreadyAnonymous {
		return nil
	}
	if err := s.creds.Clear(ctx); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Logged out")
	return nil
}

// UpdateProfile applies a partial profile update. The server's echo replaces
// the identity wholesale; nothing is merged locally.
func (s *Store) UpdateProfile(ctx context.Context, patch core.ProfilePatch) error {
	token, ok := s.Token()
	if !ok {
		return &NotAuthenticatedError{Op: "update profile"}
	}

	updated, err := s.apiClient.UpdateProfile(ctx, token, patch)
	if err != nil {
		return err
	}

	s.replaceIdentity(&updated)
	return nil
}

// RefreshProfile re-fetches the profile and replaces the identity on
// success. On failure the identity is left untouched.
func (s *Store) RefreshProfile(ctx context.Context) (core.User, error) {
	token, ok := s.Token()
	if !ok {
		return core.User{}, &NotAuthenticatedError{Op: "refresh profile"}
	}

	profile, err := s.apiClient.Profile(ctx, token)
	if err != nil {
		return core.User{}, err
	}

	s.replaceIdentity(&profile)
	return profile, nil
}

// ChangePassword rotates the password. It does not log the caller out and
// changes no local state.
func (s *Store) ChangePassword(ctx context.Context, change core.PasswordChange) error {
	token, ok := s.Token()
	if !ok {
		return &NotAuthenticatedError{Op: "change password"}
	}
	return s.apiClient.ChangePassword(ctx, token, change)
}

// DeleteAccount removes the account and, on success, logs out. On failure
// the session is untouched.
func (s *Store) DeleteAccount(ctx context.Context) error {
	token, ok := s.Token()
	if !ok {
		return &NotAuthenticatedError{Op: "delete account"}
	}

	if err := s.apiClient.DeleteAccount(ctx, token); err != nil {
		return err
	}

	if err := s.Logout(ctx); err != nil {
		// The account is gone server-side; a failed local clear must not
		// mask that success.
		s.logger.ErrorContext(ctx, "Failed to clear session after account deletion", "error", err)
	}
	return nil
}

// replaceIdentity swaps the identity only while a credential is still held,
// so a concurrent logout can never leave identity without credential.
func (s *Store) replaceIdentity(user *core.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return
	}
	s.user = user
}

// loginError maps API rejections of the login call onto the session
// taxonomy: 4xx means the credentials were refused, everything else
// propagates unchanged.
func loginError(err error) error {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) && reqErr.StatusCode >= 400 && reqErr.StatusCode < 500 {
		return &AuthenticationError{Reason: "login rejected", Err: err}
	}
	return err
}
