package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"storefront/internal/domain"
)

const (
	DefaultAPIVersion = "2024-01"
	defaultCacheSize  = 512
	defaultSortKey    = "RELEVANCE"
	pageSize          = 100
	tokenHeader       = "X-Shopify-Storefront-Access-Token"
)

type Config struct {
	StoreDomain string
	AccessToken string
	APIVersion  string
	// Endpoint overrides the URL derived from StoreDomain and APIVersion.
	Endpoint  string
	CacheTTL  time.Duration
	CacheSize int
	// NoStore disables the response cache entirely.
	NoStore bool
}

// Client talks to the Storefront GraphQL API and returns canonical types.
type Client struct {
	http        *resty.Client
	endpoint    string
	storeDomain string
	cache       *responseCache
	logger      *zap.Logger
}

func New(cfg Config, logger *zap.Logger) (*Client, error) {
	var missing []string
	if cfg.StoreDomain == "" {
		missing = append(missing, "SHOPIFY_STORE_DOMAIN")
	}
	if cfg.AccessToken == "" {
		missing = append(missing, "SHOPIFY_STOREFRONT_ACCESS_TOKEN")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", domain.ErrConfig, strings.Join(missing, ", "))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s/api/%s/graphql.json", cfg.StoreDomain, cfg.APIVersion)
	}

	c := &Client{
		http: resty.New().
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json").
			SetHeader(tokenHeader, cfg.AccessToken),
		endpoint:    endpoint,
		storeDomain: cfg.StoreDomain,
		logger:      logger.With(zap.String("component", "shopify")),
	}
	if !cfg.NoStore {
		size := cfg.CacheSize
		if size <= 0 {
			size = defaultCacheSize
		}
		c.cache = newResponseCache(size, cfg.CacheTTL)
	}
	return c, nil
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// fetch posts one operation and decodes its data envelope into out.
// Only cacheable reads consult the response cache.
func (c *Client) fetch(ctx context.Context, query string, variables map[string]any, cacheable bool, out any) error {
	useCache := cacheable && c.cache != nil
	var key string
	if useCache {
		key = cacheKey(query, variables)
		if data, ok := c.cache.get(key); ok {
			c.logger.Debug("shopify: cache hit")
			return decodeData(data, out)
		}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(graphqlRequest{Query: query, Variables: variables}).
		Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("%w: shopify request: %w", domain.ErrTransport, err)
	}

	switch status := resp.StatusCode(); {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: shopify returned status %d", domain.ErrUnauthorized, status)
	case !resp.IsSuccess():
		return fmt.Errorf("%w: shopify returned status %d: %s", domain.ErrTransport, status, truncate(resp.Body()))
	}

	var envelope graphqlResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("%w: decode shopify response: %w", domain.ErrTransport, err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("%w: shopify: %s", domain.ErrTransport, envelope.Errors[0].Message)
	}
	if useCache {
		c.cache.put(key, append(json.RawMessage(nil), envelope.Data...))
	}
	return decodeData(envelope.Data, out)
}

func decodeData(data json.RawMessage, out any) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode shopify data: %w", domain.ErrTransport, err)
	}
	return nil
}

func truncate(b []byte) string {
	const limit = 256
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}

func sortKey(key string) string {
	if key == "" {
		return defaultSortKey
	}
	return strings.ToUpper(key)
}
