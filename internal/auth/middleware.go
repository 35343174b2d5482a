package auth

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

type contextKey struct{}

// ActorFrom returns the authenticated actor stored by Middleware, or nil.
func ActorFrom(ctx context.Context) *ActorInfo {
	actor, _ := ctx.Value(contextKey{}).(*ActorInfo)
	return actor
}

// Middleware authenticates every request and stores the resolved actor in the
// request context. Routes carrying a {userId} path variable are additionally
// checked against the actor: a valid key never grants access to another
// user's data.
func Middleware(authorizer Authorizer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey, err := ExtractAPIKey(r)
			if err != nil {
				http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
				return
			}

			actor, err := authorizer.Authorize(r.Context(), apiKey, r.Method+" "+r.URL.Path)
			if err != nil {
				http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
				return
			}

			if userID := mux.Vars(r)["userId"]; userID != "" && userID != actor.UserID {
				http.Error(w, "Forbidden: "+ErrForbidden.Error(), http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), contextKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
