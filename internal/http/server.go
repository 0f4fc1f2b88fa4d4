// Package http serves the monedero web client: public login and register
// pages, and session-guarded views over the remote finance API.
package http

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"monedero/internal/api"
	"monedero/internal/cache"
	"monedero/internal/guard"
	"monedero/internal/log"
	"monedero/internal/middleware/security"
	"monedero/internal/middleware/trace"
	"monedero/internal/session"
	appweb "monedero/web"
)

// LoginPath is where the route guard sends anonymous visitors.
const LoginPath = "/login"

// Server hosts the view layer. It reads session state through the store and
// fetches everything else through the API clients; it never mutates the
// credential itself.
type Server struct {
	http.Server

	templates  *template.Template
	sessions   *session.Store
	routeGuard *guard.Guard
	apiClient  *api.Client
	logger     *log.Logger

	loginLimiter *rateLimiter

	// Dashboard data is cached briefly so a reload does not refetch four
	// API resources.
	dashCache *cache.LRUCache[dashboardData]
}

// NewServer wires routes, templates and middleware for the local client.
func NewServer(addr string, sessions *session.Store, apiClient *api.Client, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	logger = logger.WithComponent(log.ComponentHTTP)

	templates, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		templates:    templates,
		sessions:     sessions,
		apiClient:    apiClient,
		logger:       logger,
		loginLimiter: newRateLimiter(10, time.Minute),
		dashCache:    cache.NewLRUCache[dashboardData](8, 30*time.Second),
	}

	// The navigation side effect fires once per anonymous period; every
	// request in that period still gets its own redirect response.
	s.routeGuard = guard.New(sessions, guard.NavigatorFunc(func(destination string) {
		logger.Info("Redirecting anonymous visitor", log.FieldPath, destination)
	}), LoginPath)

	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/logout", s.handleLogout)

	mux.Handle("/dashboard", s.protect(http.HandlerFunc(s.handleDashboard)))
	mux.Handle("/profile", s.protect(http.HandlerFunc(s.handleProfile)))
	mux.Handle("/profile/password", s.protect(http.HandlerFunc(s.handleChangePassword)))
	mux.Handle("/profile/delete", s.protect(http.HandlerFunc(s.handleDeleteAccount)))

	if static, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	}

	traceMW := trace.NewMiddleware(extractClientIP)
	handler := traceMW.Middleware(security.Headers(security.DefaultHeadersConfig())(mux))

	s.Server = http.Server{
		Addr:    addr,
		Handler: handler,
	}
	return s, nil
}

// Close releases background resources owned by the server.
func (s *Server) Close() {
	s.loginLimiter.stop()
}

// handleRoot sends visitors to the dashboard; the guard bounces anonymous
// ones to the login page from there.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// protect gates a protected view on the session phase.
func (s *Server) protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch s.routeGuard.Resolve() {
		case guard.RenderLoading:
			// Hydration in flight: placeholder only, no navigation.
			w.Header().Set("Retry-After", "1")
			s.render(w, r, "loading_page", nil)
		case guard.RenderNothing:
			http.Redirect(w, r, s.routeGuard.Destination(), http.StatusSeeOther)
		case guard.RenderChildren:
			next.ServeHTTP(w, r)
		}
	})
}

// render executes a page template, logging failures.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution failed",
			log.FieldError, err, "template", name)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}
