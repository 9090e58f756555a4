package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"gdrive-eraser/internal/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
)

var (
	// ErrCredentialsMissing means no OAuth client secret file was found.
	// This is fatal; the user must run `gdrive-eraser setup`.
	ErrCredentialsMissing = errors.New("credentials.json not found")

	// ErrAuthExpired means the persisted token could not be refreshed.
	// This is fatal; the user must delete token.json and re-authenticate.
	ErrAuthExpired = errors.New("stored authorization is no longer valid")
)

// Trashing and deleting files requires the full drive scope.
// Changing scopes invalidates any previously saved token.json.
var scopes = []string{drive.DriveScope}

// ConsentFlow obtains a token through interactive user consent. It is an
// interface so commands and tests can run without a browser or terminal.
type ConsentFlow interface {
	Authorize(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error)
}

// GetClient returns an authenticated HTTP client, running the local
// redirect consent flow if no valid token is stored.
func GetClient(ctx context.Context) (*http.Client, error) {
	return GetClientWithFlow(ctx, &LocalRedirectFlow{})
}

// GetClientWithFlow is GetClient with an explicit consent flow.
//
// A persisted token is used as-is when valid, refreshed and re-persisted
// when expired with a refresh token, and replaced via the consent flow
// when absent. A refresh failure is surfaced as ErrAuthExpired rather
// than silently re-running consent, so the user stays in control of
// when a browser window appears.
func GetClientWithFlow(ctx context.Context, flow ConsentFlow) (*http.Client, error) {
	credPath := config.GetCredentialsPath()

	data, err := os.ReadFile(credPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w (looked at %s): run 'gdrive-eraser setup' for instructions", ErrCredentialsMissing, credPath)
		}

		return nil, fmt.Errorf("failed to read client secret file %s: %w", credPath, err)
	}

	conf, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse client secret file %s: %w", credPath, err)
	}

	tokenPath, err := config.GetTokenPath()
	if err != nil {
		return nil, err
	}

	token, err := tokenFromFile(tokenPath)

	switch {
	case err != nil:
		slog.Debug("no stored token, starting consent flow", "path", tokenPath)

		token, err = flow.Authorize(ctx, conf)
		if err != nil {
			return nil, fmt.Errorf("authorization failed: %w", err)
		}

		if err := saveToken(tokenPath, token); err != nil {
			return nil, err
		}

	case !token.Valid() && token.RefreshToken != "":
		slog.Debug("stored token expired, refreshing")

		refreshed, err := conf.TokenSource(ctx, token).Token()
		if err != nil {
			return nil, fmt.Errorf("%w: delete %s and run again to re-authenticate (%v)", ErrAuthExpired, tokenPath, err)
		}

		token = refreshed
		if err := saveToken(tokenPath, token); err != nil {
			return nil, err
		}

	case !token.Valid():
		slog.Debug("stored token expired with no refresh token, starting consent flow")

		token, err = flow.Authorize(ctx, conf)
		if err != nil {
			return nil, fmt.Errorf("authorization failed: %w", err)
		}

		if err := saveToken(tokenPath, token); err != nil {
			return nil, err
		}
	}

	return conf.Client(ctx, token), nil
}
