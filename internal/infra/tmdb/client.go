package infra_tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/humanbelnik/kinomatch/internal/config"
	"github.com/humanbelnik/kinomatch/internal/metrics"
	"github.com/humanbelnik/kinomatch/internal/model"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const breakerName = "tmdb"

var (
	ErrUnavailable = errors.New("movie catalog unavailable")
	ErrUpstream    = errors.New("movie catalog error")
)

type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker[[]byte]
	logger     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		cl.logger = l
	}
}

func New(cfg config.TMDB, opts ...Option) *Client {
	c := &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		language:   cfg.Language,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.Burst, 1)),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	c.cb = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// A missing movie is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, model.ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state change",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
	return c
}

func (c *Client) Search(ctx context.Context, query string, page int) (model.CatalogPage, error) {
	return c.page(ctx, "search", "/search/movie", url.Values{
		"query": {query},
		"page":  {strconv.Itoa(page)},
	})
}

func (c *Client) Popular(ctx context.Context, page int) (model.CatalogPage, error) {
	return c.page(ctx, "discover", "/discover/movie", url.Values{
		"sort_by": {"popularity.desc"},
		"page":    {strconv.Itoa(page)},
	})
}

func (c *Client) ByGenre(ctx context.Context, genreID int, page int) (model.CatalogPage, error) {
	return c.page(ctx, "discover", "/discover/movie", url.Values{
		"sort_by":     {"popularity.desc"},
		"with_genres": {strconv.Itoa(genreID)},
		"page":        {strconv.Itoa(page)},
	})
}

func (c *Client) Upcoming(ctx context.Context, page int) (model.CatalogPage, error) {
	return c.page(ctx, "upcoming", "/movie/upcoming", url.Values{
		"page": {strconv.Itoa(page)},
	})
}

// Trending accepts "day" or "week".
func (c *Client) Trending(ctx context.Context, window string) (model.CatalogPage, error) {
	return c.page(ctx, "trending", "/trending/movie/"+url.PathEscape(window), url.Values{})
}

func (c *Client) Genres(ctx context.Context) ([]model.Genre, error) {
	var dto genresDTO
	if err := c.get(ctx, "genres", "/genre/movie/list", url.Values{}, &dto); err != nil {
		return nil, err
	}

	genres := make([]model.Genre, len(dto.Genres))
	for i, g := range dto.Genres {
		genres[i] = model.Genre{ID: g.ID, Name: g.Name}
	}
	return genres, nil
}

// Details returns model.ErrNotFound for ids unknown to the catalog.
func (c *Client) Details(ctx context.Context, id int) (model.Movie, error) {
	var dto detailsDTO
	if err := c.get(ctx, "details", "/movie/"+strconv.Itoa(id), url.Values{}, &dto); err != nil {
		return model.Movie{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) page(ctx context.Context, endpoint, path string, params url.Values) (model.CatalogPage, error) {
	var dto pageDTO
	if err := c.get(ctx, endpoint, path, params, &dto); err != nil {
		return model.CatalogPage{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		metrics.CatalogRequests.WithLabelValues(endpoint, "throttled").Inc()
		return errors.Join(ErrUnavailable, err)
	}

	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)
	reqURL := c.baseURL + path + "?" + params.Encode()

	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.do(ctx, reqURL)
	})
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			metrics.CatalogRequests.WithLabelValues(endpoint, "rejected").Inc()
			return errors.Join(ErrUnavailable, err)
		case errors.Is(err, model.ErrNotFound):
			metrics.CatalogRequests.WithLabelValues(endpoint, "not_found").Inc()
			return err
		default:
			metrics.CatalogRequests.WithLabelValues(endpoint, "failure").Inc()
			c.logger.Error("catalog request failed",
				slog.String("endpoint", endpoint),
				slog.String("error", err.Error()))
			return err
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		metrics.CatalogRequests.WithLabelValues(endpoint, "failure").Inc()
		return fmt.Errorf("%w: failed to decode response: %w", ErrUpstream, err)
	}
	metrics.CatalogRequests.WithLabelValues(endpoint, "success").Inc()
	return nil
}

func (c *Client) do(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = redactQuery(urlErr.URL)
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrUpstream, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, model.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	return body, nil
}

// redactQuery drops the query string, which carries the api key.
func redactQuery(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		return raw[:i]
	}
	return raw
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
