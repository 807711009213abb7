package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"decor-backend/pkg/utils"
)

// PanicRecovery converts a handler panic into a 500 response. The store's
// degradation policy means panics here are programming errors, not storage
// failures, so the stack is always logged.
func PanicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[HTTP] Panic on %s %s: %v\n%s", r.Method, r.URL.Path, err, debug.Stack())
				utils.Error(w, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
