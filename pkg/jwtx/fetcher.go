package jwtx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// maxJWKSBytes bounds the size of a fetched JWKS document.
const maxJWKSBytes = 1 << 20

// Fetcher keeps a KeySet in sync with a remote JWKS endpoint.
type Fetcher struct {
	URL    string
	Keys   *KeySet
	Client *http.Client
	Logger *slog.Logger
}

// NewFetcher returns a Fetcher with a bounded HTTP client.
func NewFetcher(url string, keys *KeySet, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		URL:    url,
		Keys:   keys,
		Client: &http.Client{Timeout: 10 * time.Second},
		Logger: logger,
	}
}

// Refresh downloads the JWKS and replaces the key set.
func (f *Fetcher) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return fmt.Errorf("jwtx: build jwks request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("jwtx: fetch jwks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwtx: fetch jwks: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxJWKSBytes))
	if err != nil {
		return fmt.Errorf("jwtx: read jwks: %w", err)
	}

	set, err := ParseJWKS(body)
	if err != nil {
		return err
	}
	if len(set.Keys) == 0 {
		return fmt.Errorf("jwtx: jwks at %s has no signing keys", f.URL)
	}
	return f.Keys.ResetFromJWKS(set)
}

// Run refreshes every interval until ctx is cancelled. Failures keep the
// previous keys and are logged.
func (f *Fetcher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := f.Refresh(ctx); err != nil {
				f.Logger.Warn("jwks refresh failed", "url", f.URL, "error", err)
				continue
			}
			f.Logger.Debug("jwks refreshed", "url", f.URL, "keys", f.Keys.Len())
		}
	}
}
