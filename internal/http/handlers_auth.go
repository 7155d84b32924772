package http

import (
	"log/slog"
	"net/http"

	"feetrack/internal/core"
	"feetrack/internal/session"
)

// currentIdentity resolves the session cookie, if any.
func (s *Server) currentIdentity(r *http.Request) (core.Identity, bool) {
	c, err := r.Cookie(session.CookieName)
	if err != nil {
		return core.Identity{}, false
	}
	return s.sessions.Lookup(c.Value)
}

// requireSession gates a handler behind a valid login.
func (s *Server) requireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.currentIdentity(r); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// requireAdmin gates a handler behind an admin login. Logged-in members are
// sent to their own payments page rather than shown an error.
func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := s.currentIdentity(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if !id.IsAdmin() {
			http.Redirect(w, r, "/me", http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if id, ok := s.currentIdentity(r); ok {
		if id.IsAdmin() {
			http.Redirect(w, r, "/", http.StatusSeeOther)
		} else {
			http.Redirect(w, r, "/me", http.StatusSeeOther)
		}
		return
	}
	s.render(w, r, "login.html", struct{ Error string }{})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	username := sanitizeInput(r.Form.Get("username"))
	password := r.Form.Get("password")

	members, err := s.members.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Member list error during login", "error", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	id, err := core.Authenticate(username, password, members)
	if err != nil {
		slog.WarnContext(r.Context(), "Login failed", "username", username, "client_ip", extractClientIP(r))
		w.WriteHeader(http.StatusUnauthorized)
		s.render(w, r, "login.html", struct{ Error string }{Error: "Invalid username or password."})
		return
	}

	token := s.sessions.Create(id)
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	slog.InfoContext(r.Context(), "Login succeeded", "member_id", id.MemberID, "role", string(id.Role))

	if id.IsAdmin() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	} else {
		http.Redirect(w, r, "/me", http.StatusSeeOther)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(session.CookieName); err == nil {
		s.sessions.Destroy(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
