package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/directory/pkg/jwtx"
)

var ErrNoKeySource = errors.New("one of DIRECTORY_JWKS_URL or DIRECTORY_JWKS_FILE must be set")

// InitKeys loads the provider's token verification keys.
//
// Sources:
//   - DIRECTORY_JWKS_URL: fetched now and refreshed by the returned Fetcher.
//     A failed first fetch is logged and left to the refresh loop, so the
//     service starts but reports not ready until keys arrive.
//   - DIRECTORY_JWKS_FILE: read once at startup. The fetcher is nil.
func InitKeys(ctx context.Context, cfg Config, logger *slog.Logger) (*jwtx.KeySet, *jwtx.Fetcher, error) {
	keys := jwtx.NewKeySet()

	switch {
	case cfg.JWKSURL != "":
		fetcher := jwtx.NewFetcher(cfg.JWKSURL, keys, logger)
		if err := fetcher.Refresh(ctx); err != nil {
			logger.Warn("initial jwks fetch failed, will retry",
				"url", cfg.JWKSURL,
				"retry_in", cfg.JWKSRefreshInterval,
				"error", err,
			)
		} else {
			logger.Info("jwks loaded", "url", cfg.JWKSURL, "keys", keys.Len())
		}
		return keys, fetcher, nil

	case cfg.JWKSFile != "":
		set, err := jwtx.LoadJWKSFile(cfg.JWKSFile)
		if err != nil {
			return nil, nil, err
		}
		if err := keys.ResetFromJWKS(set); err != nil {
			return nil, nil, fmt.Errorf("load jwks file %s: %w", cfg.JWKSFile, err)
		}
		if !keys.IsReady() {
			return nil, nil, fmt.Errorf("jwks file %s has no signing keys", cfg.JWKSFile)
		}
		logger.Info("jwks loaded", "file", cfg.JWKSFile, "keys", keys.Len())
		return keys, nil, nil
	}

	return nil, nil, ErrNoKeySource
}
