package logon

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/parkgate/spaproxy/internal/config"
)

// TokenSource exposes the gateway's own application token state. The
// health report and the proxy's template resolution both read from it.
type TokenSource interface {
	ApplicationTokenID() string
	HasApplicationToken() bool
	HasValidApplicationToken() bool
}

// Client logs this gateway on to the backend token service with its
// application credentials and keeps the issued token.
type Client struct {
	cc clientcredentials.Config

	mu    sync.RWMutex
	token *oauth2.Token
}

var _ TokenSource = (*Client)(nil)

func NewClient(cfg config.BackendConfig) *Client {
	return &Client{
		cc: clientcredentials.Config{
			ClientID:     cfg.GetApplicationID(),
			ClientSecret: cfg.GetApplicationSecret(),
			TokenURL:     strings.TrimSuffix(cfg.GetSecurityTokenServiceURL(), "/") + "/token",
		},
	}
}

// Logon performs a single application logon against the token service.
func (c *Client) Logon(ctx context.Context) error {
	token, err := c.cc.Token(ctx)
	if err != nil {
		return fmt.Errorf("application logon: %w", err)
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	log.Info().Time("expiry", token.Expiry).Msg("application token acquired")
	return nil
}

// LogonWithRetry retries the logon with exponential backoff until it
// succeeds, the backoff gives up, or the context is cancelled. Used at
// startup when the backend may still be coming up.
func (c *Client) LogonWithRetry(ctx context.Context, maxElapsed time.Duration) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = maxElapsed

	return backoff.Retry(func() error {
		if err := c.Logon(ctx); err != nil {
			log.Warn().Err(err).Msg("application logon failed, will retry")
			return err
		}
		return nil
	}, backoff.WithContext(bo, ctx))
}

// ApplicationTokenID returns the token value used to fill the
// application-token placeholder in proxy templates.
func (c *Client) ApplicationTokenID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.token == nil {
		return ""
	}
	return c.token.AccessToken
}

func (c *Client) HasApplicationToken() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != nil && c.token.AccessToken != ""
}

func (c *Client) HasValidApplicationToken() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token.Valid()
}
