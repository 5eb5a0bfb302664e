// Package clickatell is a client for the Clickatell SMS gateway.
//
// The gateway exposes two parallel APIs and a Client speaks exactly one of
// them, selected by Config.API: the legacy HTTP API authenticates with
// username and password carried as ordered query parameters, the REST API
// authenticates with a bearer key and exchanges JSON bodies.
//
// Operations return the provider's response as-is. A non-2xx status or a
// provider error body is not an operation error; callers read Response.Body
// and decide. Identifier extraction from send acknowledgements is the one
// piece of parsing the package offers, via Response.MessageID.
package clickatell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/Behyna/sms-services/clickatell/pkg/httpclient"
	"go.uber.org/zap"
)

const (
	legacySendPath     = "http/sendmsg.php"
	legacyStatusPath   = "http/querymsg.php"
	legacyBalancePath  = "http/getbalance.php"
	legacyChargePath   = "http/getmsgcharge.php"
	legacyCoveragePath = "utils/routecoverage.php"
	legacyStopPath     = "http/delmsg.php"

	restMessagePath  = "rest/message"
	restBalancePath  = "rest/account/balance"
	restCoveragePath = "rest/coverage"
)

// credentials tags the credential form with the API it belongs to, so request
// building never has to guess which union member is populated.
type credentials struct {
	api      API
	username string
	password string
	apiKey   string
}

func newCredentials(cfg Config) credentials {
	if cfg.API == APIREST {
		return credentials{api: APIREST, apiKey: cfg.APIKey}
	}
	return credentials{api: APIHTTP, username: cfg.Username, password: cfg.Password}
}

// Client is one authenticated session against the gateway. All fields are set
// at construction and never mutated, so a Client is safe for concurrent use.
type Client struct {
	cfg        Config
	creds      credentials
	headers    map[string]string
	client     httpclient.HTTPClient
	logger     *zap.Logger
	ownsClient bool
	closed     atomic.Bool
}

// New validates cfg and returns a ready Client. A nil client makes the Client
// build and own its transport using cfg.Timeout and cfg.ConnectTimeout; a nil
// logger disables logging.
func New(cfg Config, client httpclient.HTTPClient, logger *zap.Logger) (*Client, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		cfg:    cfg,
		creds:  newCredentials(cfg),
		client: client,
		logger: logger,
	}
	if c.client == nil {
		c.client = httpclient.NewHTTPClientWithConnectTimeout(cfg.Timeout, cfg.ConnectTimeout)
		c.ownsClient = true
	}
	c.headers = buildHeaders(c.creds)

	return c, nil
}

func buildHeaders(creds credentials) map[string]string {
	if creds.api == APIREST {
		return map[string]string{
			"X-Version":     "1",
			"Content-Type":  "application/json",
			"Accept":        "application/json",
			"Authorization": "Bearer " + creds.apiKey,
		}
	}
	return map[string]string{
		"Connection":    "keep-alive",
		"Cache-Control": "max-age=0",
		"Origin":        "null",
	}
}

// Close marks the client unusable and, when the transport was built by New,
// releases its idle connections. Close is idempotent.
func (c *Client) Close() {
	if c == nil || !c.closed.CompareAndSwap(false, true) {
		return
	}
	if c.ownsClient {
		c.client.Close()
	}
}

func (c *Client) live() error {
	if c == nil {
		return fmt.Errorf("%w: nil client", ErrInvalidArgument)
	}
	if c.closed.Load() {
		return ErrSessionClosed
	}
	return nil
}

// Send delivers text to one or more destinations in a single call. The
// acknowledgement carries one message identifier per destination; use
// Response.MessageID or Response.MessageIDs to extract them.
func (c *Client) Send(ctx context.Context, text string, to []string) (Response, error) {
	if err := c.live(); err != nil {
		return Response{}, err
	}
	if text == "" {
		return Response{}, fmt.Errorf("%w: text is required", ErrInvalidArgument)
	}
	if len(to) == 0 {
		return Response{}, fmt.Errorf("%w: at least one destination is required", ErrInvalidArgument)
	}
	for _, dest := range to {
		if dest == "" {
			return Response{}, fmt.Errorf("%w: blank destination", ErrInvalidArgument)
		}
	}

	if c.creds.api == APIHTTP {
		return c.do(ctx, http.MethodGet, legacySendPath+buildQuery(c.authParams(param{"text", text}), to), nil)
	}

	body, err := json.Marshal(sendRequest{Text: text, To: to})
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return c.do(ctx, http.MethodPost, restMessagePath, bytes.NewReader(body))
}

// GetStatus queries the delivery status of a previously sent message.
func (c *Client) GetStatus(ctx context.Context, messageID string) (Response, error) {
	if err := c.requireID(messageID); err != nil {
		return Response{}, err
	}
	if c.creds.api == APIHTTP {
		return c.do(ctx, http.MethodGet, legacyStatusPath+buildQuery(c.authParams(param{"apimsgid", messageID}), nil), nil)
	}
	return c.do(ctx, http.MethodGet, restMessagePath+"/"+url.PathEscape(messageID), nil)
}

// GetBalance queries the remaining account credit.
func (c *Client) GetBalance(ctx context.Context) (Response, error) {
	if err := c.live(); err != nil {
		return Response{}, err
	}
	if c.creds.api == APIHTTP {
		return c.do(ctx, http.MethodGet, legacyBalancePath+buildQuery(c.authParams(), nil), nil)
	}
	return c.do(ctx, http.MethodGet, restBalancePath, nil)
}

// GetCharge queries the units charged for a previously sent message. The REST
// API reports charge and status from the same message resource, so there it is
// equivalent to GetStatus.
func (c *Client) GetCharge(ctx context.Context, messageID string) (Response, error) {
	if err := c.requireID(messageID); err != nil {
		return Response{}, err
	}
	if c.creds.api == APIHTTP {
		return c.do(ctx, http.MethodGet, legacyChargePath+buildQuery(c.authParams(param{"apimsgid", messageID}), nil), nil)
	}
	return c.do(ctx, http.MethodGet, restMessagePath+"/"+url.PathEscape(messageID), nil)
}

// GetCoverage asks whether the gateway can route messages to msisdn.
func (c *Client) GetCoverage(ctx context.Context, msisdn string) (Response, error) {
	if err := c.live(); err != nil {
		return Response{}, err
	}
	if msisdn == "" {
		return Response{}, fmt.Errorf("%w: msisdn is required", ErrInvalidArgument)
	}
	if c.creds.api == APIHTTP {
		return c.do(ctx, http.MethodGet, legacyCoveragePath+buildQuery(c.authParams(param{"msisdn", msisdn}), nil), nil)
	}
	return c.do(ctx, http.MethodGet, restCoveragePath+"/"+url.PathEscape(msisdn), nil)
}

// Stop cancels delivery of a message that has not left the gateway yet.
func (c *Client) Stop(ctx context.Context, messageID string) (Response, error) {
	if err := c.requireID(messageID); err != nil {
		return Response{}, err
	}
	if c.creds.api == APIHTTP {
		return c.do(ctx, http.MethodGet, legacyStopPath+buildQuery(c.authParams(param{"apimsgid", messageID}), nil), nil)
	}
	return c.do(ctx, http.MethodDelete, restMessagePath+"/"+url.PathEscape(messageID), nil)
}

func (c *Client) requireID(messageID string) error {
	if err := c.live(); err != nil {
		return err
	}
	if messageID == "" {
		return fmt.Errorf("%w: message id is required", ErrInvalidArgument)
	}
	return nil
}

// authParams returns the legacy authentication triple followed by extra, in
// the order the legacy API expects them.
func (c *Client) authParams(extra ...param) []param {
	params := []param{
		{"user", c.creds.username},
		{"password", c.creds.password},
		{"api_id", c.cfg.APIID},
	}
	return append(params, extra...)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	endpoint := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + path

	var (
		resp *http.Response
		err  error
	)
	switch method {
	case http.MethodPost:
		resp, err = c.client.Post(ctx, endpoint, body, c.headers)
	case http.MethodDelete:
		resp, err = c.client.Delete(ctx, endpoint, c.headers)
	default:
		resp, err = c.client.Get(ctx, endpoint, c.headers)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return Response{}, ErrTimeout
		}
		return Response{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	// credentials ride in the query string, so log the bare path only
	c.logger.Debug("clickatell call",
		zap.String("method", method),
		zap.String("api", string(c.creds.api)),
		zap.String("path", strings.SplitN(path, "?", 2)[0]),
		zap.Int("status", resp.StatusCode),
		zap.String("body", string(data)))

	return Response{API: c.creds.api, StatusCode: resp.StatusCode, Body: string(data)}, nil
}
