package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const DefaultBaseURL = "https://api.themoviedb.org/3"

// ErrMissingAPIKey indicates the client was used without an API key configured.
// Callers are expected to surface this as a user notice rather than a failure.
var ErrMissingAPIKey = errors.New("tmdb api key is not configured")

// HTTPClient is the transport used for requests
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries the TMDB API for movie and tv metadata
type Client interface {
	// Configured reports whether an API key is set. It never touches the
	// network.
	Configured() bool
	SearchMovies(ctx context.Context, query string) ([]Movie, error)
	SearchTVShows(ctx context.Context, query string) ([]TVShow, error)
	GetMovieDetails(ctx context.Context, id int) (*MovieDetails, error)
	GetTVShowDetails(ctx context.Context, id int) (*TVShowDetails, error)
	GetMovieGenres(ctx context.Context) ([]Genre, error)
}

type client struct {
	baseURL  string
	apiKey   string
	language string
	http     HTTPClient
}

// ClientOption configures a Client
type ClientOption func(*client)

// WithHTTPClient sets the http client used for requests
func WithHTTPClient(h HTTPClient) ClientOption {
	return func(c *client) {
		c.http = h
	}
}

// WithLanguage sets the language query parameter sent on every request
func WithLanguage(language string) ClientOption {
	return func(c *client) {
		c.language = language
	}
}

// New creates a TMDB client. An empty baseURL uses the public API.
func New(baseURL, apiKey string, opts ...ClientOption) (Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid tmdb base url: %w", err)
	}

	c := &client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		language: "en-US",
		http:     http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) Configured() bool {
	return c.apiKey != ""
}

func (c *client) SearchMovies(ctx context.Context, query string) ([]Movie, error) {
	var resp searchResponse[Movie]
	params := url.Values{"query": []string{query}}
	if err := c.get(ctx, "/search/movie", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *client) SearchTVShows(ctx context.Context, query string) ([]TVShow, error) {
	var resp searchResponse[TVShow]
	params := url.Values{"query": []string{query}}
	if err := c.get(ctx, "/search/tv", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (c *client) GetMovieDetails(ctx context.Context, id int) (*MovieDetails, error) {
	var details MovieDetails
	params := url.Values{"append_to_response": []string{"credits"}}
	if err := c.get(ctx, "/movie/"+strconv.Itoa(id), params, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *client) GetTVShowDetails(ctx context.Context, id int) (*TVShowDetails, error) {
	var details TVShowDetails
	params := url.Values{"append_to_response": []string{"credits"}}
	if err := c.get(ctx, "/tv/"+strconv.Itoa(id), params, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *client) GetMovieGenres(ctx context.Context) ([]Genre, error) {
	var resp genreResponse
	if err := c.get(ctx, "/genre/movie/list", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Genres, nil
}

func (c *client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build tmdb request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb responded with status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode tmdb response: %w", err)
	}

	return nil
}
