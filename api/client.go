package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/contar-cli/contar/constant"
	"github.com/contar-cli/contar/key"
	"github.com/contar-cli/contar/log"
	"github.com/contar-cli/contar/network"
	"github.com/contar-cli/contar/session"
	"github.com/spf13/viper"
)

// Client issues authenticated calls against the catalog API and unwraps
// the response envelope. The session is injected so every resolution
// request stays independently testable.
type Client struct {
	base string
	http *http.Client
	sess *session.Session
}

// New returns a client bound to the configured API base and the shared
// HTTP client.
func New(sess *session.Session) *Client {
	base := viper.GetString(key.APIBase)
	if base == "" {
		base = constant.APIBase
	}
	return NewWith(base, network.Client, sess)
}

// NewWith returns a client with an explicit base and HTTP client,
// used by tests to point at a mock server.
func NewWith(base string, httpClient *http.Client, sess *session.Session) *Client {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &Client{base: base, http: httpClient, sess: sess}
}

// Session returns the injected session.
func (c *Client) Session() *session.Session {
	return c.sess
}

// Call fetches a resource and returns the envelope's data payload.
// Caller-supplied headers (e.g. a Referer) are preserved; a bearer token,
// when present on the session, is injected on top of them. The note is
// logged for observability only and never affects control flow.
func (c *Client) Call(ctx context.Context, path, id string, headers http.Header, note string) (json.RawMessage, error) {
	if note != "" {
		log.Infof("%s (%s)", note, path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, &CallError{Path: path, ID: id, Err: err}
	}
	c.prepare(req, headers)

	envelope, err := c.do(req)
	if err != nil {
		return nil, &CallError{Path: path, ID: id, Err: err}
	}
	if err := envelope.Err(); err != nil {
		return nil, &CallError{Path: path, ID: id, Err: err}
	}
	return envelope.Data, nil
}

// Authenticate exchanges the account credentials for a bearer token and
// stores it on the session. A token is obtained at most once per run.
func (c *Client) Authenticate(ctx context.Context, creds session.Credentials) error {
	form := url.Values{
		"email":    {creds.Email},
		"password": {creds.Password},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"authenticate", strings.NewReader(form.Encode()))
	if err != nil {
		return &AuthError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.prepare(req, nil)

	envelope, err := c.do(req)
	if err != nil {
		return &AuthError{Err: err}
	}
	if err := envelope.Err(); err != nil {
		return &AuthError{Err: err}
	}
	if envelope.Token == "" {
		return &AuthError{Err: fmt.Errorf("%w: no token in authenticate response", ErrMalformedResponse)}
	}

	c.sess.SetToken(envelope.Token)
	log.Info("authenticated against the catalog API")
	return nil
}

// prepare merges caller headers into the request and injects the
// User-Agent and, once authenticated, the Authorization header.
func (c *Client) prepare(req *http.Request, headers http.Header) {
	for name, values := range headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	if token, ok := c.sess.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) do(req *http.Request) (*Envelope, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("%w: HTTP %d", ErrMalformedResponse, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &envelope, nil
}
