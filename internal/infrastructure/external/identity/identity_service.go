package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sweepscout/tracker/internal/config"
	"github.com/sweepscout/tracker/internal/domain"
)

// tokenResponse is the provider's token-endpoint payload
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// userInfoResponse is the provider's userinfo payload (OpenID Connect shape)
type userInfoResponse struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

type identityProviderImpl struct {
	cfg    *config.OAuthConfig
	client *retryablehttp.Client
}

// NewIdentityProvider creates an OAuth identity client. The provider's token
// and userinfo endpoints occasionally flake, so calls go through a retrying
// HTTP client.
func NewIdentityProvider(cfg *config.OAuthConfig) domain.IdentityProvider {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.HTTPClient.Timeout = 15 * time.Second
	client.Logger = nil

	return &identityProviderImpl{
		cfg:    cfg,
		client: client,
	}
}

// Exchange trades an authorization code for the signed-in user's identity
func (p *identityProviderImpl) Exchange(ctx context.Context, code string) (*domain.Identity, error) {
	token, err := p.exchangeCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	info, err := p.fetchUserInfo(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("userinfo fetch failed: %w", err)
	}

	if info.Sub == "" {
		return nil, fmt.Errorf("identity provider returned empty subject")
	}

	return &domain.Identity{
		Subject: info.Sub,
		Name:    info.Name,
		Email:   info.Email,
		Picture: info.Picture,
	}, nil
}

func (p *identityProviderImpl) exchangeCode(ctx context.Context, code string) (*tokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", p.cfg.ClientID)
	form.Set("client_secret", p.cfg.ClientSecret)
	form.Set("redirect_uri", p.cfg.RedirectURL)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, p.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var token tokenResponse
	if err := p.do(req, http.StatusOK, &token); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("token endpoint returned empty access token")
	}
	return &token, nil
}

func (p *identityProviderImpl) fetchUserInfo(ctx context.Context, accessToken string) (*userInfoResponse, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, p.cfg.UserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	var info userInfoResponse
	if err := p.do(req, http.StatusOK, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// do sends the request and decodes the response into out
func (p *identityProviderImpl) do(req *retryablehttp.Request, expectedStatus int, out any) error {
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return fmt.Errorf("identity provider error: unexpected status %d - %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
