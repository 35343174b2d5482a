package auth

import "context"

// ActorInfo identifies the authenticated user behind an API key.
type ActorInfo struct {
	UserID  string `json:"user_id"`
	KeyName string `json:"key_name"`
}

// Authorizer validates API keys and resolves them to an actor in one call.
type Authorizer interface {
	// Authorize validates the API key and checks that the actor may perform
	// the named operation. Returns ActorInfo if authorized.
	Authorize(ctx context.Context, apiKey, operation string) (*ActorInfo, error)
}
