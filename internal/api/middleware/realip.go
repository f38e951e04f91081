package middleware

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

// RealIP определяет адрес клиента и кладет его в контекст (см. handlers.ClientIP)
// X-Forwarded-For и X-Real-IP читаются только если соединение пришло от доверенного прокси,
// иначе используется RemoteAddr
func RealIP(trusted []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := handlers.RemoteHost(r)
			if isTrusted(ip, trusted) {
				if forwarded := forwardedClient(r, trusted); forwarded != "" {
					ip = forwarded
				}
			}
			next.ServeHTTP(w, r.WithContext(handlers.WithClientIP(r.Context(), ip)))
		})
	}
}

// forwardedClient идет по X-Forwarded-For справа налево и возвращает первый адрес не из доверенных
func forwardedClient(r *http.Request, trusted []netip.Prefix) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			addr, err := netip.ParseAddr(hop)
			if err != nil {
				return ""
			}
			if !containsAddr(trusted, addr) {
				return addr.String()
			}
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		if addr, err := netip.ParseAddr(xri); err == nil {
			return addr.String()
		}
	}
	return ""
}

func isTrusted(ip string, trusted []netip.Prefix) bool {
	if len(trusted) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	return containsAddr(trusted, addr)
}

func containsAddr(prefixes []netip.Prefix, addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, p := range prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
