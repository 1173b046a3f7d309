package router

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// middlewareIP rewrites RemoteAddr to the caller address. Forwarding headers
// are honored only when the direct peer is a loopback or private address,
// i.e. a proxy in front of the service.
func middlewareIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := clientAddr(r); ip.IsValid() {
			r.RemoteAddr = ip.String()
		}
		next.ServeHTTP(w, r)
	})
}

func clientAddr(r *http.Request) netip.Addr {
	peer := parseAddr(r.RemoteAddr)
	if !peer.IsValid() || !(peer.IsLoopback() || peer.IsPrivate()) {
		return peer
	}

	for _, h := range []string{"True-Client-IP", "X-Real-IP"} {
		if ip := parseAddr(r.Header.Get(h)); ip.IsValid() {
			return ip
		}
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := parseAddr(first); ip.IsValid() {
			return ip
		}
	}

	return peer
}

func parseAddr(s string) netip.Addr {
	s = strings.TrimSpace(s)
	if host, _, err := net.SplitHostPort(s); err == nil {
		s = host
	}

	ip, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}
	}
	return ip.Unmap()
}
