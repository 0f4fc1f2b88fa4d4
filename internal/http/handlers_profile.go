package http

import (
	"net/http"

	"monedero/internal/core"
	"monedero/internal/log"
)

// profilePageData feeds the profile template.
type profilePageData struct {
	User    core.User
	Error   string
	Message string
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.renderProfile(w, r, "", "")

	case http.MethodPost:
		patch := core.ProfilePatch{
			Name:              optional(r, "name"),
			PreferredCurrency: optional(r, "currency"),
			AvatarURL:         optional(r, "avatar_url"),
		}

		if err := s.sessions.UpdateProfile(r.Context(), patch); err != nil {
			s.logger.WarnContext(r.Context(), "Profile update failed", log.FieldError, err)
			w.WriteHeader(errorStatus(err))
			s.renderProfile(w, r, errorMessage(err), "")
			return
		}
		s.renderProfile(w, r, "", "Profile updated")

	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	change := core.PasswordChange{
		OldPassword: r.FormValue("old_password"),
		NewPassword: r.FormValue("new_password"),
	}
	if change.OldPassword == "" || change.NewPassword == "" {
		w.WriteHeader(http.StatusBadRequest)
		s.renderProfile(w, r, "Both the current and the new password are required", "")
		return
	}

	if err := s.sessions.ChangePassword(r.Context(), change); err != nil {
		s.logger.WarnContext(r.Context(), "Password change failed", log.FieldError, err)
		w.WriteHeader(errorStatus(err))
		s.renderProfile(w, r, errorMessage(err), "")
		return
	}
	s.renderProfile(w, r, "", "Password changed")
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := s.sessions.DeleteAccount(r.Context()); err != nil {
		s.logger.ErrorContext(r.Context(), "Account deletion failed", log.FieldError, err)
		w.WriteHeader(errorStatus(err))
		s.renderProfile(w, r, errorMessage(err), "")
		return
	}
	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}

func (s *Server) renderProfile(w http.ResponseWriter, r *http.Request, errMsg, okMsg string) {
	user, ok := s.sessions.Identity()
	if !ok {
		http.Redirect(w, r, LoginPath, http.StatusSeeOther)
		return
	}
	s.render(w, r, "profile_page", profilePageData{User: user, Error: errMsg, Message: okMsg})
}
