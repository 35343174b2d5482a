package auth

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// StaticAuthorizer resolves API keys from a fixed key-to-user table, loaded
// from configuration. Suitable for single-tenant and small deployments where
// keys are provisioned out of band.
type StaticAuthorizer struct {
	keys map[string]string // api key -> user id
}

// NewStaticAuthorizer parses a "key1:user1,key2:user2" spec into an
// authorizer.
func NewStaticAuthorizer(spec string) (*StaticAuthorizer, error) {
	keys := make(map[string]string)
	for _, pair := range strings.Split(spec, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, user, ok := strings.Cut(pair, ":")
		if !ok || key == "" || user == "" {
			return nil, errors.Errorf("malformed API key entry %q, want key:user", pair)
		}
		keys[key] = user
	}
	if len(keys) == 0 {
		return nil, errors.New("no API keys configured")
	}
	return &StaticAuthorizer{keys: keys}, nil
}

func (a *StaticAuthorizer) Authorize(ctx context.Context, apiKey, operation string) (*ActorInfo, error) {
	userID, ok := a.keys[apiKey]
	if !ok {
		return nil, ErrInvalidAPIKey
	}
	return &ActorInfo{UserID: userID, KeyName: "Static Key"}, nil
}
