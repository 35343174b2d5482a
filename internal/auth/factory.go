package auth

import (
	"github.com/mentoro-app/mentoro-server/internal/config"
)

// NewAuthorizer selects the authorizer for the current configuration: the
// mock authorizer in dev mode, the static key table otherwise.
func NewAuthorizer(cfg *config.Config) (Authorizer, error) {
	if cfg.DevMode {
		return NewMockAuthorizer(), nil
	}
	return NewStaticAuthorizer(cfg.APIKeys)
}
