package http

import (
	"errors"
	"net/http"

	"monedero/internal/api"
	"monedero/internal/core"
	"monedero/internal/log"
	"monedero/internal/session"
)

// authPageData feeds the login and register templates.
type authPageData struct {
	Error string
	Email string
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if s.sessions.Phase() == session.PhaseAuthenticated {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		s.render(w, r, "login_page", authPageData{})

	case http.MethodPost:
		if !s.loginLimiter.allow(extractClientIP(r)) {
			w.WriteHeader(http.StatusTooManyRequests)
			s.render(w, r, "login_page", authPageData{Error: "Too many attempts, try again in a minute"})
			return
		}

		creds := core.Credentials{
			Username: sanitizeInput(r.FormValue("username")),
			Password: r.FormValue("password"),
		}
		if err := creds.Validate(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			s.render(w, r, "login_page", authPageData{Error: "Username and password are required", Email: creds.Username})
			return
		}

		if err := s.sessions.Login(r.Context(), creds); err != nil {
			s.logger.WarnContext(r.Context(), "Login failed", log.FieldError, err)
			w.WriteHeader(errorStatus(err))
			s.render(w, r, "login_page", authPageData{Error: errorMessage(err), Email: creds.Username})
			return
		}

		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)

	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if s.sessions.Phase() == session.PhaseAuthenticated {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		s.render(w, r, "register_page", authPageData{})

	case http.MethodPost:
		if !s.loginLimiter.allow(extractClientIP(r)) {
			w.WriteHeader(http.StatusTooManyRequests)
			s.render(w, r, "register_page", authPageData{Error: "Too many attempts, try again in a minute"})
			return
		}

		reg := core.Registration{
			Name:              sanitizeInput(r.FormValue("name")),
			Email:             sanitizeInput(r.FormValue("email")),
			Password:          r.FormValue("password"),
			PreferredCurrency: sanitizeInput(r.FormValue("currency")),
		}
		if err := reg.Validate(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			s.render(w, r, "register_page", authPageData{Error: "Name, email and password are required", Email: reg.Email})
			return
		}

		if err := s.sessions.Register(r.Context(), reg); err != nil {
			s.logger.WarnContext(r.Context(), "Registration failed", log.FieldError, err)
			w.WriteHeader(errorStatus(err))
			s.render(w, r, "register_page", authPageData{Error: errorMessage(err), Email: reg.Email})
			return
		}

		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)

	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := s.sessions.Logout(r.Context()); err != nil {
		s.logger.ErrorContext(r.Context(), "Logout failed to clear stored credential", log.FieldError, err)
	}
	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}

// errorMessage renders a session or API error as user-facing text.
func errorMessage(err error) string {
	var authErr *session.AuthenticationError
	if errors.As(err, &authErr) {
		return "Invalid username or password"
	}

	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return "Cannot reach the server, check your connection"
	}

	return "Something went wrong, try again"
}

// errorStatus picks the response status for a failed session operation.
func errorStatus(err error) int {
	var notAuth *session.NotAuthenticatedError
	if errors.As(err, &notAuth) {
		return http.StatusUnauthorized
	}

	var authErr *session.AuthenticationError
	if errors.As(err, &authErr) {
		return http.StatusUnauthorized
	}

	var reqErr *api.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
