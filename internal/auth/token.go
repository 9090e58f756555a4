package auth

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
)

// tokenFromFile loads a persisted OAuth token.
func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = f.Close()
	}()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, fmt.Errorf("failed to decode token file %s: %w", path, err)
	}

	return token, nil
}

// saveToken persists an OAuth token with owner-only permissions.
func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create token file %s: %w", path, err)
	}

	defer func() {
		_ = f.Close()
	}()

	if err := json.NewEncoder(f).Encode(token); err != nil {
		return fmt.Errorf("failed to write token file %s: %w", path, err)
	}

	return nil
}
