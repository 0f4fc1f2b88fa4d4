// Package security applies browser security headers to every response the
// local client serves.
package security

import (
	"fmt"
	"net/http"
)

// HeadersConfig holds the header values to apply.
type HeadersConfig struct {
	CSP string

	HSTSMaxAge            int
	HSTSIncludeSubdomains bool

	XFrameOptions       string
	XContentTypeOptions string
	ReferrerPolicy      string
	PermissionsPolicy   string
}

// DefaultHeadersConfig returns defaults suited to a locally served,
// template-rendered client.
func DefaultHeadersConfig() HeadersConfig {
	return HeadersConfig{
		CSP: "default-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data:; " +
			"object-src 'none'; " +
			"frame-ancestors 'none'; " +
			"base-uri 'self'; " +
			"form-action 'self'",

		HSTSMaxAge:            31536000,
		HSTSIncludeSubdomains: true,

		XFrameOptions:       "DENY",
		XContentTypeOptions: "nosniff",
		ReferrerPolicy:      "strict-origin-when-cross-origin",
		PermissionsPolicy:   "geolocation=(), microphone=(), camera=()",
	}
}

// Headers returns middleware applying the configured security headers.
func Headers(config HeadersConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", config.XContentTypeOptions)
			h.Set("X-Frame-Options", config.XFrameOptions)
			h.Set("Referrer-Policy", config.ReferrerPolicy)
			h.Set("Permissions-Policy", config.PermissionsPolicy)
			if config.CSP != "" {
				h.Set("Content-Security-Policy", config.CSP)
			}

			// HSTS only makes sense over TLS.
			if r.TLS != nil && config.HSTSMaxAge > 0 {
				hsts := fmt.Sprintf("max-age=%d", config.HSTSMaxAge)
				if config.HSTSIncludeSubdomains {
					hsts += "; includeSubDomains"
				}
				h.Set("Strict-Transport-Security", hsts)
			}

			next.ServeHTTP(w, r)
		})
	}
}
