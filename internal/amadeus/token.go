package amadeus

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"voyago/internal/logger"
	"voyago/internal/utils"
)

const (
	tokenPath = "/v1/security/oauth2/token"

	// The Amadeus sandbox omits expires_in on occasion; this matches the
	// lifetime it hands out when present.
	defaultExpiresIn = 1799 * time.Second
)

// Credentials are the client id/secret for the OAuth2 client-credentials
// grant.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Broker owns the single cached bearer token for the process. It hands out
// the cached token while it is comfortably ahead of expiry and otherwise
// performs one client-credentials exchange, no matter how many callers ask
// at once.
type Broker struct {
	baseURL string
	creds   Credentials
	margin  time.Duration
	client  *http.Client
	log     logger.Logger
	now     func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time

	flight singleflight.Group
}

func NewBroker(baseURL string, creds Credentials, margin time.Duration, client *http.Client, log logger.Logger) *Broker {
	return &Broker{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		creds:   creds,
		margin:  margin,
		client:  client,
		log:     log,
		now:     time.Now,
	}
}

// Token returns a bearer token valid for at least the configured margin.
// Concurrent callers observing a cold or expiring cache share one exchange
// and all receive its result.
func (b *Broker) Token(ctx context.Context) (string, error) {
	if tok, ok := b.cached(); ok {
		return tok, nil
	}

	v, err, _ := b.flight.Do("token", func() (interface{}, error) {
		// A caller that queued behind a finished refresh can use its result.
		if tok, ok := b.cached(); ok {
			return tok, nil
		}
		return b.exchange(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (b *Broker) cached() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.token != "" && b.now().Before(b.expiresAt.Add(-b.margin)) {
		return b.token, true
	}
	return "", false
}

// exchange performs one client-credentials grant and publishes the result.
// On failure the previously cached token, if any, is left untouched.
func (b *Broker) exchange(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", b.creds.ClientID)
	form.Set("client_secret", b.creds.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", &UnavailableError{Err: err, Timeout: isTimeout(err)}
	}
	defer utils.Close(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UnavailableError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var payload struct {
			ErrorDescription string `json:"error_description"`
		}
		_ = json.Unmarshal(body, &payload)
		detail := payload.ErrorDescription
		if detail == "" {
			detail = "token request failed"
		}
		b.log.Warn("token exchange rejected",
			logger.Int("status", resp.StatusCode),
			logger.String("detail", detail))
		return "", &AuthError{Detail: detail}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.AccessToken == "" {
		return "", &AuthError{Detail: "malformed token response"}
	}

	lifetime := time.Duration(payload.ExpiresIn) * time.Second
	if payload.ExpiresIn <= 0 {
		lifetime = defaultExpiresIn
	}

	b.mu.Lock()
	b.token = payload.AccessToken
	b.expiresAt = b.now().Add(lifetime)
	b.mu.Unlock()

	b.log.Debug("token refreshed", logger.Duration("lifetime", lifetime))
	return payload.AccessToken, nil
}
