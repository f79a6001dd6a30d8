package jikan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://api.jikan.moe/v4"

	// The Jikan search and top endpoints are paged; one page is enough here.
	searchLimit = 20
)

// ErrDisabled indicates the anime provider is turned off in configuration.
// Surfaced as a user notice, not a failure.
var ErrDisabled = errors.New("jikan provider is disabled")

// Season names accepted by the seasonal endpoint.
const (
	SeasonWinter = "winter"
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonFall   = "fall"
)

// TopFilter selects the ranking used by the top anime endpoint.
type TopFilter string

const (
	TopAiring     TopFilter = "airing"
	TopUpcoming   TopFilter = "upcoming"
	TopPopularity TopFilter = "bypopularity"
	TopFavorite   TopFilter = "favorite"
)

// HTTPClient is the transport used for requests
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries the Jikan API for anime metadata
type Client interface {
	// Enabled reports whether the provider is turned on. It never touches
	// the network.
	Enabled() bool
	SearchAnime(ctx context.Context, query string) ([]Anime, error)
	GetAnimeDetails(ctx context.Context, id int) (*Anime, error)
	TopAnime(ctx context.Context, filter TopFilter) ([]Anime, error)
	SeasonalAnime(ctx context.Context, year int, season string) ([]Anime, error)
}

type client struct {
	baseURL string
	enabled bool
	http    HTTPClient
}

// ClientOption configures a Client
type ClientOption func(*client)

// WithHTTPClient sets the http client used for requests
func WithHTTPClient(h HTTPClient) ClientOption {
	return func(c *client) {
		c.http = h
	}
}

// Disabled marks the provider as turned off; every call returns ErrDisabled.
func Disabled() ClientOption {
	return func(c *client) {
		c.enabled = false
	}
}

// New creates a Jikan client. An empty baseURL uses the public API.
func New(baseURL string, opts ...ClientOption) (Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid jikan base url: %w", err)
	}

	c := &client{
		baseURL: baseURL,
		enabled: true,
		http:    http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) Enabled() bool {
	return c.enabled
}

func (c *client) SearchAnime(ctx context.Context, query string) ([]Anime, error) {
	var resp listResponse
	params := url.Values{
		"q":     []string{query},
		"limit": []string{strconv.Itoa(searchLimit)},
	}
	if err := c.get(ctx, "/anime", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *client) GetAnimeDetails(ctx context.Context, id int) (*Anime, error) {
	var resp detailResponse
	if err := c.get(ctx, "/anime/"+strconv.Itoa(id)+"/full", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *client) TopAnime(ctx context.Context, filter TopFilter) ([]Anime, error) {
	if filter == "" {
		filter = TopPopularity
	}

	var resp listResponse
	params := url.Values{
		"type":  []string{string(filter)},
		"limit": []string{strconv.Itoa(searchLimit)},
	}
	if err := c.get(ctx, "/top/anime", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *client) SeasonalAnime(ctx context.Context, year int, season string) ([]Anime, error) {
	var resp listResponse
	params := url.Values{"limit": []string{strconv.Itoa(searchLimit)}}
	path := fmt.Sprintf("/seasons/%d/%s", year, season)
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *client) get(ctx context.Context, path string, params url.Values, out any) error {
	if !c.enabled {
		return ErrDisabled
	}

	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to build jikan request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("jikan request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jikan responded with status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode jikan response: %w", err)
	}

	return nil
}

// CurrentSeason maps a point in time to the airing season containing it.
func CurrentSeason(t time.Time) (int, string) {
	year := t.Year()
	switch month := t.Month(); {
	case month == time.December || month <= time.February:
		return year, SeasonWinter
	case month <= time.May:
		return year, SeasonSpring
	case month <= time.August:
		return year, SeasonSummer
	default:
		return year, SeasonFall
	}
}
