package bigcommerce

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"storefront/internal/domain"
)

const DefaultAPIURL = "https://api.bigcommerce.com"

type Config struct {
	APIURL      string
	StoreHash   string
	AccessToken string
}

// Client requests hosted checkout redirect URLs for backend carts. It keeps
// the last successful response for the last cart id it was asked about.
type Client struct {
	http   *resty.Client
	cfg    Config
	logger *zap.Logger

	group singleflight.Group

	mu         sync.Mutex
	lastCartID string
	last       *domain.CheckoutRedirect
}

func New(cfg Config, logger *zap.Logger) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http: resty.New().
			SetHeader("Accept", "application/json").
			SetHeader("Content-Type", "application/json"),
		cfg:    cfg,
		logger: logger.With(zap.String("component", "bigcommerce")),
	}
}

type redirectResponse struct {
	Data *struct {
		CartURL             string `json:"cart_url"`
		CheckoutURL         string `json:"checkout_url"`
		EmbeddedCheckoutURL string `json:"embedded_checkout_url"`
	} `json:"data"`
	Status int `json:"status"`
}

func (c *Client) missingConfig() []string {
	var missing []string
	if c.cfg.StoreHash == "" {
		missing = append(missing, "BIGCOMMERCE_STORE_HASH")
	}
	if c.cfg.AccessToken == "" {
		missing = append(missing, "BIGCOMMERCE_ACCESS_TOKEN")
	}
	return missing
}

// RedirectURLs returns the checkout redirect URLs for cartID.
func (c *Client) RedirectURLs(ctx context.Context, cartID string) (*domain.CheckoutRedirect, error) {
	if missing := c.missingConfig(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required BigCommerce env vars for checkout redirects: %s", domain.ErrConfig, strings.Join(missing, ", "))
	}
	if cartID == "" {
		return nil, fmt.Errorf("%w: cart id required", domain.ErrValidation)
	}

	c.mu.Lock()
	if c.lastCartID == cartID && c.last != nil {
		out := *c.last
		c.mu.Unlock()
		c.logger.Debug("bigcommerce: redirect memo hit", zap.String("cart_id", cartID))
		return &out, nil
	}
	c.mu.Unlock()

	// The shared request outlives any single caller; each caller stops
	// waiting when its own context ends.
	ch := c.group.DoChan(cartID, func() (any, error) {
		res, err := c.request(context.WithoutCancel(ctx), cartID)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.lastCartID = cartID
		c.last = res
		c.mu.Unlock()
		return res, nil
	})

	var v any
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: bigcommerce redirect request: %w", domain.ErrTransport, ctx.Err())
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		v = r.Val
	}
	out := *v.(*domain.CheckoutRedirect)
	return &out, nil
}

func (c *Client) request(ctx context.Context, cartID string) (*domain.CheckoutRedirect, error) {
	url := fmt.Sprintf("%s/stores/%s/v3/carts/%s/redirect_urls", strings.TrimRight(c.cfg.APIURL, "/"), c.cfg.StoreHash, cartID)
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-auth-token", c.cfg.AccessToken).
		Post(url)
	if err != nil {
		return nil, fmt.Errorf("%w: bigcommerce redirect request: %w", domain.ErrTransport, err)
	}

	switch status := resp.StatusCode(); {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, fmt.Errorf("%w: bigcommerce returned status %d", domain.ErrUnauthorized, status)
	case status == http.StatusNotFound:
		return nil, fmt.Errorf("cart %q: %w", cartID, domain.ErrNotFound)
	case !resp.IsSuccess():
		return nil, fmt.Errorf("%w: bigcommerce returned status %d", domain.ErrTransport, status)
	}

	var body redirectResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode bigcommerce response: %w", domain.ErrTransport, err)
	}
	if body.Data == nil {
		return nil, fmt.Errorf("%w: bigcommerce response missing data", domain.ErrTransport)
	}

	c.logger.Info("bigcommerce: redirect urls fetched", zap.String("cart_id", cartID))
	return &domain.CheckoutRedirect{
		CartURL:             body.Data.CartURL,
		CheckoutURL:         body.Data.CheckoutURL,
		EmbeddedCheckoutURL: body.Data.EmbeddedCheckoutURL,
	}, nil
}
