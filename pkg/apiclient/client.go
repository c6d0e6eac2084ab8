// Package apiclient is the single gateway to the admin REST API. It attaches
// the session's bearer token to every request and turns a 401 on any endpoint
// other than login into a forced logout.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/logging"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/navigation"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/session"
)

const (
	DefaultLoginPath = "/auth/login"
	maxResponseBytes = 10 << 20
)

type Options struct {
	BaseURL   string
	LoginPath string
	// Zero means no per-request deadline beyond the caller's context.
	Timeout    time.Duration
	HTTPClient *http.Client
	Session    *session.Session
	Navigator  navigation.Navigator
	Logger     *logrus.Logger
	Registerer prometheus.Registerer
}

type Client struct {
	baseURL    string
	loginPath  string
	timeout    time.Duration
	httpClient *http.Client
	session    *session.Session
	nav        navigation.Navigator
	log        *logrus.Logger
	metrics    *clientMetrics
	tracer     trace.Tracer
}

func New(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("baseURL required")
	}
	if opts.Session == nil {
		return nil, errors.New("session required")
	}
	if opts.Navigator == nil {
		return nil, errors.New("navigator required")
	}
	loginPath := strings.TrimSpace(opts.LoginPath)
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Client{
		baseURL:    baseURL,
		loginPath:  loginPath,
		timeout:    opts.Timeout,
		httpClient: hc,
		session:    opts.Session,
		nav:        opts.Navigator,
		log:        logger,
		metrics:    newClientMetrics(opts.Registerer),
		tracer:     otel.Tracer("leafclutch-admin/apiclient"),
	}, nil
}

func (c *Client) BaseURL() string   { return c.baseURL }
func (c *Client) LoginPath() string { return c.loginPath }

// Request is a raw outbound call. Path is relative to the base URL; a query
// string on it is merged into Params.
type Request struct {
	Method      string
	Path        string
	Params      url.Values
	Body        io.Reader
	ContentType string
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into out. An empty body leaves out untouched.
func (r *Response) Decode(out any) error {
	if r == nil || out == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, out)
}

// Do sends body (if non-nil) as JSON.
func (c *Client) Do(ctx context.Context, method, path string, body any, params url.Values) (*Response, error) {
	req := &Request{Method: method, Path: path, Params: params}
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s %s body", method, path)
		}
		req.Body = bytes.NewReader(raw)
		req.ContentType = "application/json"
	}
	return c.Send(ctx, req)
}

// Send performs a single attempt; there are no retries.
func (c *Client) Send(ctx context.Context, r *Request) (*Response, error) {
	if r == nil {
		return nil, errors.New("nil request")
	}
	method := strings.ToUpper(strings.TrimSpace(r.Method))
	if method == "" {
		method = http.MethodGet
	}
	path, params, err := splitPath(r.Path, r.Params)
	if err != nil {
		return nil, errors.Wrapf(err, "parse path %q", r.Path)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ctx, span := c.tracer.Start(ctx, "admin-api "+method, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", path),
	)

	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, r.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s %s", method, path)
	}
	httpReq.Header.Set("Accept", "application/json")
	if r.ContentType != "" {
		httpReq.Header.Set("Content-Type", r.ContentType)
	}
	if token, ok := c.session.Token(); ok {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	c.metrics.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.requests.WithLabelValues(method, statusClass(0)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		c.log.WithError(err).WithFields(logrus.Fields{"method": method, "path": path}).Warn("admin api request failed")
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	_ = resp.Body.Close()

	c.metrics.requests.WithLabelValues(method, statusClass(resp.StatusCode)).Inc()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.log.WithFields(logrus.Fields{
		"method":      method,
		"path":        path,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("admin api request")

	if readErr != nil {
		return nil, &TransportError{Method: method, Path: path, Err: readErr}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: raw}, nil
	}

	span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	apiErr := newAPIError(method, path, resp.StatusCode, raw)
	if resp.StatusCode == http.StatusUnauthorized && path != c.loginPath {
		apiErr.cause = ErrSessionExpired
		c.expireSession(path)
	}
	return nil, apiErr
}

func splitPath(raw string, params url.Values) (string, url.Values, error) {
	path := "/" + strings.TrimLeft(strings.TrimSpace(raw), "/")
	i := strings.IndexByte(path, '?')
	if i < 0 {
		return path, params, nil
	}
	query, err := url.ParseQuery(path[i+1:])
	if err != nil {
		return "", nil, err
	}
	for k, vs := range params {
		query[k] = append(query[k], vs...)
	}
	return path[:i], query, nil
}

func (c *Client) expireSession(path string) {
	c.metrics.logouts.Inc()
	c.log.WithField("path", path).Warn("token expired, logging out")
	if err := c.session.SignOut(); err != nil {
		c.log.WithError(err).Error("failed to clear session")
	}
	c.nav.HardRedirect("/")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for an access token and stores it. A rejected
// login leaves the session untouched; check it with IsLoginFailure.
func (c *Client) Login(ctx context.Context, email, password string) error {
	out, err := SendJSON[loginResponse](ctx, c, http.MethodPost, c.loginPath, loginRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		return err
	}
	if strings.TrimSpace(out.AccessToken) == "" {
		return errors.New("login response carried no access_token")
	}
	return c.session.SignIn(out.AccessToken)
}

// Logout clears the session and reloads the app at the root path.
func (c *Client) Logout() error {
	err := c.session.SignOut()
	c.nav.HardRedirect("/")
	return err
}

// GetJSON performs a GET and decodes the JSON response.
func GetJSON[T any](ctx context.Context, c *Client, path string, params url.Values) (T, error) {
	var out T
	resp, err := c.Do(ctx, http.MethodGet, path, nil, params)
	if err != nil {
		return out, err
	}
	if err := resp.Decode(&out); err != nil {
		return out, errors.Wrapf(err, "decode GET %s", path)
	}
	return out, nil
}

// SendJSON performs method with a JSON body and decodes the JSON response.
func SendJSON[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	resp, err := c.Do(ctx, method, path, body, nil)
	if err != nil {
		return out, err
	}
	if err := resp.Decode(&out); err != nil {
		return out, errors.Wrapf(err, "decode %s %s", method, path)
	}
	return out, nil
}
