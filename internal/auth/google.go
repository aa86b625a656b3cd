// Package auth provides external identity resolution and session handling.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dwellist/dwellist-backend/internal/repository"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"
	exchangeTimeout  = 10 * time.Second
)

// IdentityProvider abstracts the external OAuth handshake.
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (repository.Profile, error)
}

// GoogleProvider implements IdentityProvider against Google's OAuth endpoints.
// It is stateless: the exchange result is normalized and passed through.
type GoogleProvider struct {
	config *oauth2.Config
}

// NewGoogleProvider creates a GoogleProvider for the given client credentials
func NewGoogleProvider(clientID, clientSecret, redirectURL string) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// AuthCodeURL returns the provider authorization URL for the given state token
func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange trades an authorization code for a normalized profile. Both the
// token exchange and the userinfo fetch run under a bounded timeout.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (repository.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	defer cancel()

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return repository.Profile{}, fmt.Errorf("oauth code exchange failed: %w", err)
	}

	client := p.config.Client(ctx, token)
	resp, err := client.Get(userinfoEndpoint)
	if err != nil {
		return repository.Profile{}, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return repository.Profile{}, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var info struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return repository.Profile{}, fmt.Errorf("failed to decode userinfo: %w", err)
	}

	if info.Email == "" {
		return repository.Profile{}, fmt.Errorf("provider returned no email address")
	}

	return repository.Profile{
		ExternalID:  info.ID,
		Email:       info.Email,
		DisplayName: info.Name,
	}, nil
}
