package offers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"visa-route-checker/internal/platform/obs"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// fetchToken exchanges the client credentials for a bearer token
// (/v1/security/oauth2/token). The secret never appears in returned errors.
func (a *AmadeusOfferProvider) fetchToken(ctx context.Context) (_ string, err error) {
	defer obs.Time(ctx, "amadeus.fetchToken")(&err)

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", a.clientID)
	form.Set("client_secret", a.clientSecret)

	req, err := a.newRequest(
		ctx,
		http.MethodPost,
		a.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()),
		"application/x-www-form-urlencoded",
	)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}

	body, err := a.do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}

	var decoded tokenResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	token := strings.TrimSpace(decoded.AccessToken)
	if token == "" {
		return "", errors.New("token response has no access_token")
	}

	return token, nil
}
