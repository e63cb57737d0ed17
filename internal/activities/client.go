package activities

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxBodyBytes bounds how much of a response body the client reads.
const maxBodyBytes = 1 << 20

// Client talks to the activities API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient builds a Client for the API served at baseURL, e.g. the page origin.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// escapeComponent escapes s the way encodeURIComponent does for the characters
// that matter here: spaces become %20, reserved characters are percent-encoded.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ActivitiesURL is the catalog endpoint.
func (c *Client) ActivitiesURL() string {
	return c.baseURL + "/activities"
}

// SignupURL is the signup endpoint for req, with both parts escaped.
func (c *Client) SignupURL(req SignupRequest) string {
	return c.baseURL + "/activities/" + escapeComponent(req.Activity) + "/signup?email=" + escapeComponent(req.Email)
}

// ListActivities fetches the catalog in server order.
func (c *Client) ListActivities(ctx context.Context) ([]Activity, error) {
	const op = "list activities"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ActivitiesURL(), nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Op: op, Err: fmt.Errorf("build request: %w", err)}
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Op: op, Err: err}
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxBodyBytes)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var reply apiReply
		_ = json.NewDecoder(body).Decode(&reply)
		return nil, &Error{Kind: KindRejected, Op: op, Status: resp.StatusCode, Detail: reply.detailText()}
	}

	return DecodeCatalog(body)
}

// Signup posts req to the signup endpoint.
//
// A 2xx answer must carry a "message" string; anything else is KindMalformed.
// A non-2xx answer is KindRejected with the server's "detail" when it is a
// string, whatever the body looks like otherwise.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (SignupResult, error) {
	const op = "signup"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.SignupURL(req), nil)
	if err != nil {
		return SignupResult{}, &Error{Kind: KindTransport, Op: op, Err: fmt.Errorf("build request: %w", err)}
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return SignupResult{}, &Error{Kind: KindTransport, Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return SignupResult{}, &Error{Kind: KindTransport, Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}

	var reply apiReply
	decodeErr := json.Unmarshal(raw, &reply)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return SignupResult{}, &Error{Kind: KindRejected, Op: op, Status: resp.StatusCode, Detail: reply.detailText()}
	}

	if decodeErr != nil {
		return SignupResult{}, malformed(op, "decode body: %v", decodeErr)
	}
	if reply.Message == nil {
		return SignupResult{}, malformed(op, "missing message")
	}

	return SignupResult{Message: *reply.Message}, nil
}
