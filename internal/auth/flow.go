package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"runtime"

	"golang.org/x/oauth2"
)

// LocalRedirectFlow runs the installed-app consent flow: it listens on an
// ephemeral localhost port, sends the user to the consent page, and
// exchanges the code delivered to the redirect URL.
type LocalRedirectFlow struct{}

type callbackResult struct {
	code string
	err  error
}

func (f *LocalRedirectFlow) Authorize(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to start local redirect listener: %w", err)
	}

	defer func() {
		_ = listener.Close()
	}()

	flowConf := *conf
	flowConf.RedirectURL = fmt.Sprintf("http://%s/callback", listener.Addr().String())

	state, err := randomState()
	if err != nil {
		return nil, err
	}

	results := make(chan callbackResult, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			results <- callbackResult{err: fmt.Errorf("consent callback state mismatch")}

			return
		}

		if errMsg := r.URL.Query().Get("error"); errMsg != "" {
			http.Error(w, "authorization denied", http.StatusForbidden)
			results <- callbackResult{err: fmt.Errorf("authorization denied: %s", errMsg)}

			return
		}

		fmt.Fprintln(w, "Authorization complete. You can close this window and return to the terminal.")
		results <- callbackResult{code: r.URL.Query().Get("code")}
	})

	server := &http.Server{Handler: mux}
	go func() {
		_ = server.Serve(listener)
	}()

	defer func() {
		_ = server.Close()
	}()

	authURL := flowConf.AuthCodeURL(state, oauth2.AccessTypeOffline)

	fmt.Fprintf(os.Stderr, "Open the following URL in your browser to authorize access:\n\n  %s\n\n", authURL)
	openBrowser(authURL)

	var result callbackResult

	select {
	case result = <-results:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if result.err != nil {
		return nil, result.err
	}

	token, err := flowConf.Exchange(ctx, result.code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	return token, nil
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate state token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// openBrowser makes a best-effort attempt to open the URL in the default
// browser. Failure is fine; the URL is already printed.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start()
}
