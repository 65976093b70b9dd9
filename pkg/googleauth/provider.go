// Package googleauth yields OAuth2 token sources for named Google scope sets,
// backed by a pluggable token store.
package googleauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// ErrNotAuthorized indicates no stored token exists for the requested scope
// set; the user must complete the consent flow first.
var ErrNotAuthorized = errors.New("not authorized: run the consent flow first")

const stateTTL = 5 * time.Minute

// Provider issues token sources for scope sets and drives the consent flow.
type Provider struct {
	credentialsJSON []byte
	store           TokenStore
	redirectURL     string

	mu         sync.Mutex
	stateStore map[string]time.Time
}

// NewProviderFromFile builds a Provider from an OAuth client credentials file
// (the "installed"/"web" JSON downloaded from Google Cloud Console).
func NewProviderFromFile(credentialsPath string, store TokenStore, redirectURL string) (*Provider, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: read credentials file: %v", ErrNotAuthorized, err)
	}
	return NewProvider(data, store, redirectURL)
}

// NewProvider builds a Provider from raw credentials JSON.
func NewProvider(credentialsJSON []byte, store TokenStore, redirectURL string) (*Provider, error) {
	// Parse once up front so an invalid file fails at startup, not per request.
	if _, err := google.ConfigFromJSON(credentialsJSON); err != nil {
		return nil, fmt.Errorf("%w: parse credentials: %v", ErrNotAuthorized, err)
	}
	return &Provider{
		credentialsJSON: credentialsJSON,
		store:           store,
		redirectURL:     redirectURL,
		stateStore:      make(map[string]time.Time),
	}, nil
}

func (p *Provider) config(set ScopeSet) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(p.credentialsJSON, set.Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: parse credentials: %v", ErrNotAuthorized, err)
	}
	if p.redirectURL != "" {
		cfg.RedirectURL = p.redirectURL
	}
	return cfg, nil
}

// TokenSource returns a refreshing token source for the scope set. Refreshed
// tokens are persisted back to the store on a best-effort basis.
func (p *Provider) TokenSource(ctx context.Context, set ScopeSet) (oauth2.TokenSource, error) {
	cfg, err := p.config(set)
	if err != nil {
		return nil, err
	}

	token, err := p.store.Load(set.Name)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return nil, fmt.Errorf("%w (scope set %q)", ErrNotAuthorized, set.Name)
		}
		return nil, fmt.Errorf("%w: load token: %v", ErrNotAuthorized, err)
	}

	return &persistingTokenSource{
		base:  cfg.TokenSource(ctx, token),
		store: p.store,
		name:  set.Name,
		last:  token,
	}, nil
}

// AuthURL returns the Google consent URL for the scope set together with the
// generated anti-forgery state value.
func (p *Provider) AuthURL(set ScopeSet) (url string, state string, err error) {
	cfg, err := p.config(set)
	if err != nil {
		return "", "", err
	}

	state, err = p.generateState()
	if err != nil {
		return "", "", err
	}

	return cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce), state, nil
}

// Exchange validates state, swaps the authorization code for a token, and
// saves it under every scope set name in saveAs (plus the set itself when
// saveAs is empty).
func (p *Provider) Exchange(ctx context.Context, set ScopeSet, code, state string, saveAs ...ScopeSet) error {
	if !p.consumeState(state) {
		return fmt.Errorf("%w: invalid or expired state parameter", ErrNotAuthorized)
	}

	cfg, err := p.config(set)
	if err != nil {
		return err
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("%w: code exchange failed: %v", ErrNotAuthorized, err)
	}
	if token.RefreshToken == "" {
		return fmt.Errorf("%w: no refresh token received, grant offline access", ErrNotAuthorized)
	}

	if len(saveAs) == 0 {
		saveAs = []ScopeSet{set}
	}
	for _, target := range saveAs {
		if err := p.store.Save(target.Name, token); err != nil {
			return fmt.Errorf("save token for %q: %w", target.Name, err)
		}
	}
	return nil
}

func (p *Provider) generateState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	state := base64.URLEncoding.EncodeToString(b)

	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	p.stateStore[state] = now.Add(stateTTL)
	for s, exp := range p.stateStore {
		if exp.Before(now) {
			delete(p.stateStore, s)
		}
	}
	return state, nil
}

func (p *Provider) consumeState(state string) bool {
	if state == "" {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	expiry, ok := p.stateStore[state]
	if !ok {
		return false
	}
	delete(p.stateStore, state)
	return !time.Now().After(expiry)
}

// Authorized reports whether a token is stored for the scope set. It does not
// check validity; an expired token with a refresh token still counts.
func (p *Provider) Authorized(set ScopeSet) bool {
	_, err := p.store.Load(set.Name)
	return err == nil
}

// persistingTokenSource saves refreshed tokens back to the store so the next
// process start does not need a new consent.
type persistingTokenSource struct {
	base  oauth2.TokenSource
	store TokenStore
	name  string

	mu   sync.Mutex
	last *oauth2.Token
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.base.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: token refresh failed: %v", ErrNotAuthorized, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil || token.AccessToken != s.last.AccessToken {
		// Best effort; a failed save only costs a re-consent later.
		_ = s.store.Save(s.name, token)
		s.last = token
	}
	return token, nil
}
