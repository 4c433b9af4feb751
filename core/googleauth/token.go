package googleauth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"secretary-api/core/config"
	"secretary-api/core/errors"
	"secretary-api/core/logger"
)

// Scopes requested for the service's Google integrations
var scopes = []string{
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/spreadsheets",
}

var (
	mu     sync.Mutex
	cached *oauth2.Token
)

// AccessToken returns a valid Google API access token, refreshing through
// the configured refresh token when the cached one is near expiry.
func AccessToken(ctx context.Context) (string, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return "", errors.NewAppError(errors.ErrConfiguration, "config not initialized", nil)
	}
	if cfg.GoogleAPI.ClientID == "" || cfg.GoogleAPI.ClientSecret == "" || cfg.GoogleAPI.RefreshToken == "" {
		return "", errors.NewAppError(errors.ErrConfiguration, "Google API credentials not configured", nil)
	}

	mu.Lock()
	defer mu.Unlock()

	if cached != nil && time.Now().Before(cached.Expiry.Add(-5*time.Minute)) {
		return cached.AccessToken, nil
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       scopes,
	}

	tokenSource := oauthConfig.TokenSource(ctx, &oauth2.Token{
		RefreshToken: cfg.GoogleAPI.RefreshToken,
	})

	token, err := tokenSource.Token()
	if err != nil {
		logger.Error("googleauth:AccessToken:Refresh:Error", "error", err)
		return "", errors.NewAppError(errors.ErrConfiguration, "failed to refresh Google token", err)
	}

	cached = token
	logger.Info("googleauth:AccessToken:Refreshed", "expires_at", token.Expiry)
	return token.AccessToken, nil
}
