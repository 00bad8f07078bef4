package token

// Provider mints a bearer token valid for exactly one resource URL.
//
// It is injected into the request-building layer so that request shaping
// can be tested without a real credential backend.
type Provider interface {
	GenerateAccessToken(resourceURL, senderID string) (string, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(resourceURL, senderID string) (string, error)

// GenerateAccessToken implements Provider.
func (f ProviderFunc) GenerateAccessToken(resourceURL, senderID string) (string, error) {
	return f(resourceURL, senderID)
}
