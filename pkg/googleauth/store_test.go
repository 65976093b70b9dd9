package googleauth_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/oauth2"

	"workspace-agent/pkg/googleauth"
)

func TestFileStore(t *testing.T) {
	t.Run("Save and load roundtrip", func(t *testing.T) {
		dir := t.TempDir()
		store := googleauth.NewFileStore(dir)

		token := &oauth2.Token{
			AccessToken:  "at",
			RefreshToken: "rt",
			TokenType:    "Bearer",
		}
		if err := store.Save("gmail", token); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		got, err := store.Load("gmail")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if got.AccessToken != "at" || got.RefreshToken != "rt" {
			t.Errorf("token got = %+v", got)
		}
	})

	t.Run("File named after scope set", func(t *testing.T) {
		dir := t.TempDir()
		store := googleauth.NewFileStore(dir)

		if err := store.Save("calendar", &oauth2.Token{AccessToken: "at"}); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "calendar_token.json")); err != nil {
			t.Errorf("expected calendar_token.json: %v", err)
		}
	})

	t.Run("Missing token", func(t *testing.T) {
		store := googleauth.NewFileStore(t.TempDir())

		_, err := store.Load("gmail")
		if !errors.Is(err, googleauth.ErrTokenNotFound) {
			t.Errorf("expected ErrTokenNotFound, got %v", err)
		}
	})

	t.Run("Corrupt token file", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "gmail_token.json"), []byte(`{broken`), 0600); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		store := googleauth.NewFileStore(dir)
		if _, err := store.Load("gmail"); err == nil {
			t.Errorf("expected decode error")
		}
	})
}

func TestMemoryStore(t *testing.T) {
	store := googleauth.NewMemoryStore()

	if _, err := store.Load("gmail"); !errors.Is(err, googleauth.ErrTokenNotFound) {
		t.Errorf("expected ErrTokenNotFound, got %v", err)
	}

	if err := store.Save("gmail", &oauth2.Token{AccessToken: "at"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := store.Load("gmail")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.AccessToken != "at" {
		t.Errorf("token got = %+v", got)
	}
}
