// Package clientip resolves the originating client address of an HTTP request.
//
// The first X-Forwarded-For entry wins when present. That header is set by
// clients as easily as by proxies, so the result is only trustworthy when the
// edge proxy overwrites it. No IP format validation is performed.
package clientip

import (
	"net"
	"net/http"
	"strings"
)

// HeaderForwardedFor is the proxy chain header consulted first.
const HeaderForwardedFor = "X-Forwarded-For"

// FromHeader returns the client IP from h, falling back to remoteAddr.
// Only the first X-Forwarded-For entry is considered: when it is blank
// (e.g. ", 1.2.3.4") the later entries are ignored and remoteAddr is used.
// A "host:port" remoteAddr is reduced to host; anything else is returned as-is.
// The boolean is false when neither source yields a value.
func FromHeader(h http.Header, remoteAddr string) (string, bool) {
	if xff := h.Get(HeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first, true
		}
	}

	addr := strings.TrimSpace(remoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	if addr == "" {
		return "", false
	}
	return addr, true
}

// FromRequest is FromHeader applied to r.Header and r.RemoteAddr.
func FromRequest(r *http.Request) (string, bool) {
	return FromHeader(r.Header, r.RemoteAddr)
}
