package figma

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// DefaultBaseURL is the production REST endpoint.
const DefaultBaseURL = "https://api.figma.com/v1"

const defaultTimeout = time.Minute

// Client talks to the Figma REST API.
type Client struct {
	base  string
	token string
	httpc *http.Client
	log   *zap.Logger
}

// ClientOption adjusts client construction.
type ClientOption func(*Client)

// WithBaseURL points the client at a different endpoint, used in tests.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.base = strings.TrimRight(base, "/")
	}
}

// WithTimeout caps the time spent on a single request.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpc.Timeout = d
		}
	}
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(httpc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// NewClient prepares an API client. The token is a personal access token
// generated in the account settings, the service rejects requests without it.
func NewClient(token string, log *zap.Logger, opts ...ClientOption) (*Client, error) {
	if len(token) == 0 {
		return nil, fmt.Errorf("%w: access token is not set", ErrAuthenticationRequired)
	}
	c := &Client{
		base:  DefaultBaseURL,
		token: token,
		httpc: &http.Client{Timeout: defaultTimeout},
		log:   log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// File downloads a document snapshot. It returns the raw response body next
// to the parsed document so callers can keep the pristine JSON.
func (c *Client) File(ctx context.Context, key string) ([]byte, *File, error) {
	body, err := c.get(ctx, "/files/"+url.PathEscape(key), nil)
	if err != nil {
		return nil, nil, err
	}
	f, err := ParseFile(body, c.log)
	if err != nil {
		return nil, nil, err
	}
	return body, f, nil
}

// Images asks the service to render nodes and returns links to the rendered
// results keyed by node id. Nodes the service could not render map to an
// empty link.
func (c *Client) Images(ctx context.Context, key string, ids []string, format string, scale float64) (map[string]string, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	if len(format) > 0 {
		q.Set("format", format)
	}
	if scale > 0 {
		q.Set("scale", strconv.FormatFloat(scale, 'f', -1, 64))
	}

	body, err := c.get(ctx, "/images/"+url.PathEscape(key), q)
	if err != nil {
		return nil, err
	}
	if msg := gjson.GetBytes(body, "err"); msg.Exists() && len(msg.String()) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrRemoteFetchFailed, msg.String())
	}

	images := make(map[string]string)
	gjson.GetBytes(body, "images").ForEach(func(k, v gjson.Result) bool {
		images[k.String()] = v.String()
		return true
	})
	return images, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteFetchFailed, err)
	}
	req.Header.Set("X-Figma-Token", c.token)

	c.log.Debug("Requesting", zap.String("url", u))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrRemoteFetchFailed, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %s", ErrAuthenticationRequired, apiError(body, resp.Status))
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %s", ErrRemoteFetchFailed, apiError(body, resp.Status))
	}
	return body, nil
}

// apiError digs the error message out of a failed response body, falling back
// to the HTTP status line.
func apiError(body []byte, status string) string {
	if msg := gjson.GetBytes(body, "err"); msg.Exists() && len(msg.String()) > 0 {
		return msg.String()
	}
	if msg := gjson.GetBytes(body, "message"); msg.Exists() && len(msg.String()) > 0 {
		return msg.String()
	}
	return status
}
