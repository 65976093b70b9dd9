package googleauth

import (
	"context"

	"golang.org/x/oauth2"
)

// Scoped binds a Provider to one scope set so API clients can depend on a
// single-method credential source without knowing about scope names.
type Scoped struct {
	provider *Provider
	set      ScopeSet
}

// Scoped returns the provider bound to set.
func (p *Provider) Scoped(set ScopeSet) *Scoped {
	return &Scoped{provider: p, set: set}
}

// TokenSource yields a refreshing token source for the bound scope set.
func (s *Scoped) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	return s.provider.TokenSource(ctx, s.set)
}
