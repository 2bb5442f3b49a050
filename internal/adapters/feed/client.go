package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/okian/pbp/pkg/logger"
	"github.com/okian/pbp/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultTimeout  = 15 * time.Second
	defaultCallback = "angular.callbacks._8"

	viewPlayByPlay = "gameCenterPlayByPlay"
	viewSummary    = "gameSummary"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL sets the vendor endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithClientCode sets the league client code.
func WithClientCode(code string) Option {
	return func(c *Client) {
		if code != "" {
			c.clientCode = code
		}
	}
}

// WithAPIKey sets the vendor API key.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		if key != "" {
			c.apiKey = key
		}
	}
}

// WithLanguage sets the feed language parameter.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if lang != "" {
			c.lang = lang
		}
	}
}

// WithTimeout bounds each feed request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// Client fetches the two per-game feeds from the vendor.
type Client struct {
	baseURL    string
	clientCode string
	apiKey     string
	lang       string
	http       *http.Client
	log        logger.Logger
}

// NewClient creates a feed client with configuration options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    "https://lscluster.hockeytech.com/feed/index.php",
		clientCode: "pwhl",
		lang:       "en",
		http:       &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Get()
	}
	return c
}

// PlayByPlay fetches and decodes the raw event records for a game.
func (c *Client) PlayByPlay(ctx context.Context, gameID int) ([]map[string]any, error) {
	const op = "feed.play_by_play"
	body, err := c.fetch(ctx, viewPlayByPlay, gameID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	records, err := decodeEvents(body)
	if err != nil {
		metrics.RecordDecodeError()
		return nil, err
	}
	c.log.Debug(ctx, "decoded play-by-play feed",
		logger.Int("game_id", gameID),
		logger.Int("records", len(records)),
	)
	return records, nil
}

// fetch issues one statviewfeed request and returns the raw body text.
func (c *Client) fetch(ctx context.Context, view string, gameID int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	q := u.Query()
	q.Set("feed", "statviewfeed")
	q.Set("view", view)
	q.Set("game_id", strconv.Itoa(gameID))
	q.Set("key", c.apiKey)
	q.Set("client_code", c.clientCode)
	q.Set("lang", c.lang)
	q.Set("callback", defaultCallback)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.RecordFetchDuration(view, float64(time.Since(start).Milliseconds()))

	if resp.StatusCode == http.StatusNotFound {
		metrics.RecordGameNotFound()
		return "", fmt.Errorf("game %d: %w", gameID, ErrGameNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from %s view", resp.StatusCode, view)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
