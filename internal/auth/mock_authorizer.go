package auth

import "context"

const (
	// LocalDevAPIKey is the hardcoded API key for local development only.
	LocalDevAPIKey = "sk_local_mentoro_dev_key"

	// LocalDevUserID is the user the dev key resolves to.
	LocalDevUserID = "mentoro-dev"
)

// MockAuthorizer recognizes only the hardcoded dev key and resolves it to the
// local development user. Never used outside dev mode.
type MockAuthorizer struct{}

func NewMockAuthorizer() *MockAuthorizer { return &MockAuthorizer{} }

func (m *MockAuthorizer) Authorize(ctx context.Context, apiKey, operation string) (*ActorInfo, error) {
	if apiKey != LocalDevAPIKey {
		return nil, ErrInvalidAPIKey
	}
	return &ActorInfo{
		UserID:  LocalDevUserID,
		KeyName: "Local Development Key",
	}, nil
}
