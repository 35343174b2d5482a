package recovery

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/mentoro-app/mentoro-server/internal/api/respond"
)

// Middleware converts a panicking handler into a 500 response so one bad
// request cannot take the whole service down with it.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("recovered from handler panic")

				respond.WriteInternalError(w, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
