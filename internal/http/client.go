// Package http is the transport primitive of the client: it performs one
// HTTP exchange with the engine daemon and returns the raw status code and
// body. It never interprets the status code.
package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/fivetwenty-io/docker-client/internal/constants"
	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request is one call to perform.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the raw result of a completed exchange.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is a handle on one daemon endpoint. Exchanges on a Client are
// serialized: at most one is in flight at a time.
type Client struct {
	mu sync.Mutex

	host         string
	baseURL      string
	apiVersion   string
	httpClient   *http.Client
	timeout      time.Duration
	logger       docker.Logger
	debug        bool
	userAgent    string
	interceptors *docker.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger docker.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithAPIVersion prefixes every path with /v<version>/. An empty version
// sends unversioned paths.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithTimeout bounds a single exchange.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. The client is used
// as is: for unix hosts it must already dial the socket.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithInterceptors runs the chain around every exchange. Interceptors are
// called without the handle's lock held.
func WithInterceptors(chain *docker.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport bound to host. Accepted hosts are
// unix:///path/to.sock, tcp://host:port, http://host:port and https://host:port.
func NewClient(host string, opts ...Option) (*Client, error) {
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", docker.ErrInvalidHost, host, err)
	}

	client := &Client{
		host:      host,
		timeout:   constants.DefaultHTTPTimeout,
		userAgent: constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	var transport http.RoundTripper

	switch u.Scheme {
	case constants.SchemeUnix:
		if u.Path == "" {
			return nil, fmt.Errorf("%w %q: missing socket path", docker.ErrInvalidHost, host)
		}

		client.baseURL = "http://" + constants.PlaceholderHost
		transport = newUnixTransport(u.Path)
	case constants.SchemeTCP, constants.SchemeHTTP:
		if u.Host == "" {
			return nil, fmt.Errorf("%w %q: missing address", docker.ErrInvalidHost, host)
		}

		client.baseURL = "http://" + u.Host
	case constants.SchemeHTTPS:
		if u.Host == "" {
			return nil, fmt.Errorf("%w %q: missing address", docker.ErrInvalidHost, host)
		}

		client.baseURL = "https://" + u.Host
	default:
		return nil, fmt.Errorf("%w: %q", docker.ErrUnsupportedScheme, u.Scheme)
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{
			Transport: transport,
			Timeout:   client.timeout,
		}
	}

	return client, nil
}

// newUnixTransport dials socketPath for every connection, whatever host the
// request URL names.
func newUnixTransport(socketPath string) *http.Transport {
	dialer := &net.Dialer{}

	return &http.Transport{
		DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
			return dialer.DialContext(ctx, constants.SchemeUnix, socketPath)
		},
		DisableCompression: true,
	}
}

// Host returns the host the client was created with.
func (c *Client) Host() string {
	return c.host
}

// APIVersion returns the API version prefix, possibly empty.
func (c *Client) APIVersion() string {
	return c.apiVersion
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}

// Do performs req and returns the raw result. Any completed exchange is
// returned with a nil error whatever its status code. Failures to encode,
// send or read the exchange are returned as *docker.TransportError.
//
// Request interceptors may rewrite the method, path, headers and body before
// the request is sent. Interceptors run outside the handle's lock, so they may
// issue their own calls on the same Client; only the exchange itself is
// serialized.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, transportError(req.Method, req.Path, fmt.Errorf("encoding request body: %w", err))
	}

	intercepted := &docker.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: c.buildHeaders(req, body != nil),
		Body:    body,
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
		if err != nil {
			return nil, transportError(req.Method, req.Path, err)
		}
	}

	if intercepted.Headers == nil {
		intercepted.Headers = make(http.Header)
	}

	var bodyReader io.Reader = http.NoBody

	if len(intercepted.Body) > 0 {
		bodyReader = bytes.NewReader(intercepted.Body)

		if intercepted.Headers.Get("Content-Type") == "" {
			intercepted.Headers.Set("Content-Type", "application/json")
		}
	} else {
		intercepted.Headers.Del("Content-Type")
	}

	httpReq, err := http.NewRequestWithContext(ctx, intercepted.Method, c.endpoint(intercepted.Path, req.Query), bodyReader)
	if err != nil {
		return nil, transportError(intercepted.Method, intercepted.Path, fmt.Errorf("creating request: %w", err))
	}

	httpReq.Header = intercepted.Headers

	c.logDebug("HTTP Request", map[string]interface{}{
		"method": intercepted.Method,
		"url":    httpReq.URL.String(),
	})

	start := time.Now()

	resp, err := c.exchange(httpReq)
	if err != nil {
		interceptorErr := c.runResponseInterceptors(ctx, intercepted, &docker.Response{Error: err})
		if interceptorErr != nil {
			err = errors.Join(err, interceptorErr)
		}

		return nil, transportError(intercepted.Method, intercepted.Path, err)
	}

	c.logDebug("HTTP Response", map[string]interface{}{
		"method":      intercepted.Method,
		"url":         httpReq.URL.String(),
		"status_code": resp.StatusCode,
		"duration":    time.Since(start).String(),
	})

	err = c.runResponseInterceptors(ctx, intercepted, &docker.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	})
	if err != nil {
		return nil, transportError(intercepted.Method, intercepted.Path, err)
	}

	return resp, nil
}

// exchange holds the handle's lock for one round trip.
func (c *Client) exchange(httpReq *http.Request) (*Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.perform(httpReq)
}

// perform sends the request and reads the whole body.
func (c *Client) perform(httpReq *http.Request) (*Response, error) {
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       data,
	}, nil
}

func (c *Client) runResponseInterceptors(ctx context.Context, req *docker.Request, resp *docker.Response) error {
	if c.interceptors == nil {
		return nil
	}

	return c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
}

func (c *Client) buildHeaders(req *Request, hasBody bool) http.Header {
	headers := make(http.Header)
	headers.Set("Accept", "application/json")

	if hasBody {
		headers.Set("Content-Type", "application/json")
	}

	if c.userAgent != "" {
		headers.Set("User-Agent", c.userAgent)
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return headers
}

// endpoint builds the request URL: <base>/v<version>/<path>?<query>.
func (c *Client) endpoint(path string, query url.Values) string {
	var builder strings.Builder

	builder.WriteString(c.baseURL)
	builder.WriteString("/")

	if c.apiVersion != "" {
		builder.WriteString("v")
		builder.WriteString(c.apiVersion)
		builder.WriteString("/")
	}

	builder.WriteString(strings.TrimPrefix(path, "/"))

	if len(query) > 0 {
		builder.WriteString("?")
		builder.WriteString(query.Encode())
	}

	return builder.String()
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

func encodeBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	if raw, ok := body.([]byte); ok {
		return raw, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}

	return data, nil
}

func transportError(method, path string, err error) *docker.TransportError {
	return &docker.TransportError{
		Method: method,
		Path:   path,
		Err:    err,
	}
}
