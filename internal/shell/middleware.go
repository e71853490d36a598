package shell

import (
	"net/http"

	"github.com/tair/storefront/pkg/logger"
)

// ShellOnly redirects to "/" when no shell is attached
func ShellOnly(bridge *Bridge) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !bridge.Available() {
				logger.Debug(r.Context()).Str("path", r.URL.Path).Msg("Shell-only route outside the shell, redirecting")
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
