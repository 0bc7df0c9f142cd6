package lrclib

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/streambinder/lyricsync/entity"
)

const (
	DefaultSearchURL = "https://lrclib.net/api/search"
	DefaultGetURL    = "https://lrclib.net/api/get"
	DefaultUserAgent = "lyricsync (https://github.com/streambinder/lyricsync)"
	DefaultTimeout   = 10 * time.Second
)

var (
	json        = jsoniter.ConfigCompatibleWithStandardLibrary
	ErrNotFound = errors.New("lyrics not found")
	ErrUpstream = errors.New("lyrics provider unavailable")
)

// StatusError reports an unexpected upstream response status
type StatusError struct {
	StatusCode int
	URL        string
}

func (err *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", err.URL, err.StatusCode)
}

func (err *StatusError) Unwrap() error {
	return ErrUpstream
}

// Client talks to an LRCLib-compatible lyrics index
type Client struct {
	http      *http.Client
	timeout   time.Duration
	searchURL string
	getURL    string
	userAgent string
}

type Option func(*Client)

func WithSearchURL(searchURL string) Option {
	return func(c *Client) {
		c.searchURL = searchURL
	}
}

func WithGetURL(getURL string) Option {
	return func(c *Client) {
		c.getURL = strings.TrimSuffix(getURL, "/")
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http = client
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the requests timeout: a client given through
// WithHTTPClient is copied rather than modified
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func New(opts ...Option) *Client {
	client := &Client{
		searchURL: DefaultSearchURL,
		getURL:    DefaultGetURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(client)
	}

	switch {
	case client.http == nil:
		client.http = &http.Client{Timeout: DefaultTimeout}
		if client.timeout > 0 {
			client.http.Timeout = client.timeout
		}
	case client.timeout > 0:
		copied := *client.http
		copied.Timeout = client.timeout
		client.http = &copied
	}
	return client
}

func (client *Client) get(ctx context.Context, target string, value interface{}) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	request.Header.Set("User-Agent", client.userAgent)
	request.Header.Set("Accept", "application/json")

	response, err := client.http.Do(request)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s", ErrUpstream, err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &StatusError{StatusCode: response.StatusCode, URL: target}
	}
	if err := json.NewDecoder(response.Body).Decode(value); err != nil {
		return fmt.Errorf("%w: malformed response from %s: %s", ErrUpstream, target, err)
	}
	return nil
}

// Search queries the index for the given text, passing duration
// (in seconds, 0 if unknown) as a hint: an empty result set is not an error
func (client *Client) Search(ctx context.Context, query string, duration int) ([]entity.Candidate, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("duration", strconv.Itoa(duration))

	var candidates []entity.Candidate
	if err := client.get(ctx, client.searchURL+"?"+params.Encode(), &candidates); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return candidates, nil
}

// Get fetches the record with the given stable identifier
func (client *Client) Get(ctx context.Context, id int) (*entity.Candidate, error) {
	var candidate entity.Candidate
	if err := client.get(ctx, client.getURL+"/"+strconv.Itoa(id), &candidate); err != nil {
		return nil, err
	}
	return &candidate, nil
}
