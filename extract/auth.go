package extract

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
)

// authorize builds an HTTP client authorised for the given scopes from a
// service account key. The key is read from the credentials file if it
// exists, otherwise from the supplied JSON blob (typically the
// GOOGLE_CREDENTIALS environment variable). A missing key is fatal - the
// run aborts before any work is done.
func authorize(ctx context.Context, credentials string, key []byte, scopes ...string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if errors.Is(err, fs.ErrNotExist) {
		b = key
	} else if err != nil {
		return nil, err
	}

	if len(b) == 0 {
		return nil, fmt.Errorf("No credentials found")
	}

	config, err := google.JWTConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, fmt.Errorf("Invalid service account key (%v)", err)
	}

	return config.Client(ctx), nil
}
