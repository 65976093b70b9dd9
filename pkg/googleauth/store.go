package googleauth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/oauth2"
)

// ErrTokenNotFound indicates no token has been stored under a given name.
var ErrTokenNotFound = errors.New("token not found")

// TokenStore persists OAuth2 tokens keyed by scope-set name.
type TokenStore interface {
	Load(name string) (*oauth2.Token, error)
	Save(name string, token *oauth2.Token) error
}

// FileStore keeps one <name>_token.json per scope set under dir.
// Writes are plain truncate-and-rewrite: two concurrent refreshes racing on
// the same file can clobber each other. Acceptable for a single-user tool.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir ("." if empty).
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "."
	}
	return &FileStore{dir: dir}
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_token.json", name))
}

// Load reads the token file for name.
func (s *FileStore) Load(name string) (*oauth2.Token, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("open token file: %w", err)
	}
	defer func() { _ = f.Close() }()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, fmt.Errorf("decode token file: %w", err)
	}
	return token, nil
}

// Save writes the token file for name with 0600 permissions.
func (s *FileStore) Save(name string, token *oauth2.Token) error {
	f, err := os.OpenFile(s.path(name), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create token file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("encode token file: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory TokenStore for tests.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]*oauth2.Token
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: make(map[string]*oauth2.Token)}
}

// Load returns the stored token for name.
func (s *MemoryStore) Load(name string) (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[name]
	if !ok {
		return nil, ErrTokenNotFound
	}
	return token, nil
}

// Save stores the token under name.
func (s *MemoryStore) Save(name string, token *oauth2.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[name] = token
	return nil
}
