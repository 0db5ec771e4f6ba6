package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
)

const defaultTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifier validates Google ID tokens against the tokeninfo endpoint.
type GoogleVerifier struct {
	client       *http.Client
	tokenInfoURL string
}

type GoogleVerifierOption func(*GoogleVerifier)

// WithTokenInfoURL overrides the tokeninfo endpoint, used in tests.
func WithTokenInfoURL(u string) GoogleVerifierOption {
	return func(v *GoogleVerifier) {
		v.tokenInfoURL = u
	}
}

func NewGoogleVerifier(opts ...GoogleVerifierOption) *GoogleVerifier {
	v := &GoogleVerifier{
		client:       &http.Client{Timeout: 10 * time.Second},
		tokenInfoURL: defaultTokenInfoURL,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

type tokenInfoResponse struct {
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`
}

func (v *GoogleVerifier) Verify(ctx context.Context, token string) (*Claims, error) {
	if token == "" {
		return nil, common.ErrorInvalidArgument
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		v.tokenInfoURL+"?id_token="+url.QueryEscape(token), nil)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request: %w", err)
	}
	defer resp.Body.Close()

	// the endpoint answers 4xx for any bad or expired token
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, common.ErrorInvalidArgument
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokeninfo status %d", resp.StatusCode)
	}

	var info tokenInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("tokeninfo decode: %w", err)
	}

	if info.Email == "" {
		return nil, common.ErrorInvalidArgument
	}

	return &Claims{
		Email:         info.Email,
		EmailVerified: info.EmailVerified == "true",
		Name:          info.Name,
		Picture:       info.Picture,
		Locale:        info.Locale,
		Provider:      "google",
	}, nil
}
