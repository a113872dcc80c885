package cfbd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/preston-bernstein/msom-squad-service/internal/domain/schedule"
	"github.com/preston-bernstein/msom-squad-service/internal/providers"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config controls how the CollegeFootballData client reaches the upstream API.
type Config struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches season schedules from the CollegeFootballData API.
type Client struct {
	baseURL    string
	token      string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a CollegeFootballData client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		token:      strings.TrimSpace(cfg.Token),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchSchedule issues GET /games for the query and returns games in upstream order.
func (c *Client) FetchSchedule(ctx context.Context, q schedule.Query) ([]schedule.Game, error) {
	req, err := c.buildRequest(ctx, q)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request games: %w", providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    "collegefootballdata rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload []gameResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s: games: %w: %w", providerName, providers.ErrDecode, err)
	}
	return mapGames(payload), nil
}

func (c *Client) buildRequest(ctx context.Context, q schedule.Query) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/games", nil)
	if err != nil {
		return nil, err
	}

	params := req.URL.Query()
	if q.Year > 0 {
		params.Set("year", strconv.Itoa(q.Year))
	}
	if q.SeasonType != "" {
		params.Set("seasonType", string(q.SeasonType))
	}
	if q.Team != "" {
		params.Set("team", q.Team)
	}
	req.URL.RawQuery = params.Encode()

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// Name reports the provider identifier used in logs and metrics.
func (c *Client) Name() string {
	return providerName
}
