// Package fabric pushes interface configuration to the fabric controller.
package fabric

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-logr/logr"
	"github.com/tidwall/gjson"
)

const (
	loginPath = "/api/aaaLogin.json"
	pushPath  = "/api/mo/uni.json"

	// cookieName carries the session token returned by the login call.
	cookieName = "APIC-cookie"
)

// Client is a REST client for the fabric controller. It is not safe for
// concurrent use.
type Client struct {
	baseURL  *url.URL
	login    string
	password string
	http     *http.Client
	logger   logr.Logger
	token    string
	insecure bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for all requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithInsecure disables verification of the controller's certificate. It
// applies to the HTTP client in effect after all options, including one
// given with [WithHTTPClient], whose transport must then be an
// *http.Transport (or nil).
func WithInsecure() Option {
	return func(c *Client) {
		c.insecure = true
	}
}

// WithLogger sets a custom logger for the client.
func WithLogger(logger logr.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the controller at rawURL. By default, the client
// uses [slog.Default] for logging.
func New(rawURL, login, password string, opts ...Option) (*Client, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fabric: invalid url %q: %w", rawURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("fabric: invalid url %q: expected http(s)://host", rawURL)
	}
	c := &Client{
		baseURL:  u,
		login:    login,
		password: password,
		http:     &http.Client{Timeout: 30 * time.Second},
		logger:   logr.FromSlogHandler(slog.Default().Handler()),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.insecure {
		hc, err := insecureClient(c.http)
		if err != nil {
			return nil, err
		}
		c.http = hc
	}
	return c, nil
}

// insecureClient returns a copy of hc that skips certificate verification.
// hc itself is left untouched.
func insecureClient(hc *http.Client) (*http.Client, error) {
	var transport *http.Transport
	switch t := hc.Transport.(type) {
	case nil:
		transport = http.DefaultTransport.(*http.Transport).Clone()
	case *http.Transport:
		transport = t.Clone()
	default:
		return nil, fmt.Errorf("fabric: cannot disable certificate verification on transport %T", hc.Transport)
	}
	if transport.TLSClientConfig == nil {
		transport.TLSClientConfig = &tls.Config{}
	}
	transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec

	insecure := *hc
	insecure.Transport = transport
	return &insecure, nil
}

// Connect authenticates against the controller and keeps the session token
// for subsequent pushes.
func (c *Client) Connect(ctx context.Context) error {
	payload, err := json.Marshal(newMO("aaaUser", map[string]string{"name": c.login, "pwd": c.password}))
	if err != nil {
		return &ConnectError{URL: c.baseURL.String(), Err: err}
	}

	status, body, err := c.post(ctx, loginPath, payload)
	if err != nil {
		return &ConnectError{URL: c.baseURL.String(), Err: err}
	}
	if status != http.StatusOK {
		return &ConnectError{URL: c.baseURL.String(), Status: status, Err: responseError(body)}
	}

	token := gjson.GetBytes(body, "imdata.0.aaaLogin.attributes.token").String()
	if token == "" {
		return &ConnectError{URL: c.baseURL.String(), Status: status, Err: errors.New("no session token in response")}
	}
	c.token = token
	c.logger.V(1).Info("Logged in", "url", c.baseURL.String(), "user", c.login)
	return nil
}

// Push sends one object to the controller. Failures are not retried.
func (c *Client) Push(ctx context.Context, obj Object) error {
	if c.token == "" {
		return &PushError{Object: obj.ObjectName(), Err: ErrNotConnected}
	}
	payload, err := Encode(obj)
	if err != nil {
		return &PushError{Object: obj.ObjectName(), Err: err}
	}

	c.logger.V(1).Info("Pushing object", "name", obj.ObjectName(), "payload", string(payload))
	status, body, err := c.post(ctx, pushPath, payload)
	if err != nil {
		return &PushError{Object: obj.ObjectName(), Err: err}
	}
	if status != http.StatusOK {
		return &PushError{Object: obj.ObjectName(), Status: status, Err: responseError(body)}
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload []byte) (int, []byte, error) {
	u := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: c.token})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// responseError extracts the controller's error text from a response body.
func responseError(body []byte) error {
	if text := gjson.GetBytes(body, "imdata.0.error.attributes.text").String(); text != "" {
		return errors.New(text)
	}
	return errors.New("unexpected response from controller")
}
