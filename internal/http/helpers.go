package http

import (
	"net"
	"net/http"
	"strings"
)

// trustedProxies are networks allowed to set forwarding headers. The client
// is expected to be served locally or behind a private reverse proxy.
var trustedProxies = func() []*net.IPNet {
	var nets []*net.IPNet
	for _, cidr := range []string{"127.0.0.0/8", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"} {
		_, network, err := net.ParseCIDR(cidr)
		if err == nil {
			nets = append(nets, network)
		}
	}
	return nets
}()

func isTrustedProxy(ip net.IP) bool {
	for _, network := range trustedProxies {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// extractClientIP returns the real client IP, honoring X-Forwarded-For only
// when the direct peer is a trusted proxy.
func extractClientIP(r *http.Request) string {
	directIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		directIP = r.RemoteAddr
	}

	peer := net.ParseIP(directIP)
	if peer == nil || !isTrustedProxy(peer) {
		return directIP
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if net.ParseIP(first) != nil {
			return first
		}
	}
	return directIP
}

// sanitizeInput trims whitespace and strips control characters from form
// values before they are sent to the API.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// optional returns a pointer to the sanitized form value, or nil when the
// field was left empty, so partial updates omit untouched fields.
func optional(r *http.Request, field string) *string {
	v := sanitizeInput(r.FormValue(field))
	if v == "" {
		return nil
	}
	return &v
}
