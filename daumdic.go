// Package daumdic looks up words (Korean, English, Japanese, Hanja,
// Chinese, ...) in the Daum Dictionary and returns their meanings,
// pronunciations and, when there is no exact match, alternative spellings.
package daumdic

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mempirate/daumdic/log"
)

const DAUM_ENDPOINT = "https://dic.daum.net"

const defaultTimeout = 15 * time.Second

// Client queries the Daum Dictionary search page. The zero value is not
// usable; construct one with NewClient.
type Client struct {
	log     zerolog.Logger
	fetcher Fetcher
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (15s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.fetcher = &httpFetcher{client: hc}
	}
}

// WithBaseURL overrides the dictionary endpoint. Mostly useful in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithFetcher replaces the transport entirely.
func WithFetcher(f Fetcher) Option {
	return func(c *Client) {
		c.fetcher = f
	}
}

// WithLogger replaces the default logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		log:     log.NewLogger("daumdic"),
		fetcher: &httpFetcher{client: &http.Client{Timeout: defaultTimeout}},
		baseURL: DAUM_ENDPOINT,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Search looks up query with a single GET against the dictionary's search
// endpoint and parses the resulting page. There are no retries and no
// partial results; cancelling ctx drops the pending request.
//
// It fails with ErrEmptyQuery for an empty query, a *StatusError for a
// non-success response, and an error wrapping ErrMarkup when the page
// structure is unrecognizable.
func (c *Client) Search(ctx context.Context, query string) (*Search, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}

	u := c.baseURL + "/search.do?q=" + url.QueryEscape(query)

	c.log.Debug().Str("url", u).Msg("Fetching results page")

	body, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch results for %q", query)
	}

	search, err := parseSearch(body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse results for %q", query)
	}

	c.log.Debug().
		Int("words", len(search.Words)).
		Int("alternatives", len(search.Alternatives)).
		Msg("Parsed results page")

	return search, nil
}

// Result carries the outcome of SearchAsync.
type Result struct {
	Search *Search
	Err    error
}

// SearchAsync runs Search in a goroutine and delivers the outcome on the
// returned channel, which is buffered and closed after the single send. The
// receive never blocks the sender.
func (c *Client) SearchAsync(ctx context.Context, query string) <-chan Result {
	out := make(chan Result, 1)

	go func() {
		defer close(out)
		search, err := c.Search(ctx, query)
		out <- Result{Search: search, Err: err}
	}()

	return out
}
