// scripts/google-auth/main.go
//
// Run this ONCE locally to authorize Gmail and Google Calendar access in a
// single consent, and write gmail_token.json plus calendar_token.json.
//
// Usage:
//   go run scripts/google-auth/main.go [credentials.json] [token-dir]
//
// It prints a browser URL, you log in with your Google account, paste the
// authorization code back, and both token files are saved.

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"workspace-agent/pkg/googleauth"
)

func main() {
	credsPath := "credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	tokenDir := "."
	if len(os.Args) > 2 {
		tokenDir = os.Args[2]
	}

	store := googleauth.NewFileStore(tokenDir)
	provider, err := googleauth.NewProviderFromFile(credsPath, store, "")
	if err != nil {
		log.Fatalf("Failed to load credentials file %q: %v\nMake sure it is an OAuth Desktop App credentials file.", credsPath, err)
	}

	combined := googleauth.Combined(googleauth.GmailScopes, googleauth.CalendarScopes)

	authURL, state, err := provider.AuthURL(combined)
	if err != nil {
		log.Fatalf("Failed to build consent URL: %v", err)
	}

	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in to your account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	if err := provider.Exchange(ctx, combined, code, state,
		googleauth.GmailScopes, googleauth.CalendarScopes); err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	fmt.Println()
	fmt.Printf("Tokens saved under %s: gmail_token.json, calendar_token.json\n", tokenDir)
	fmt.Println("Restart the server to pick them up.")
}
