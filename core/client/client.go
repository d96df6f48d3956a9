package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workloadparser/models"
)

const requestIDHeader = "X-Request-ID"

// TransportError means the request never got a response: refused connection,
// DNS failure, timeout or a body that could not be read.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// TokenSource issues the bearer token for one request. *auth.Signer is one.
type TokenSource interface {
	Token() (string, error)
}

// Client - HTTP client for the target service
type Client struct {
	client *http.Client
	signer TokenSource
	logger *zap.Logger
}

type Option func(*Client)

// WithSigner attaches a bearer token to every request.
func WithSigner(s TokenSource) Option {
	return func(c *Client) {
		c.signer = s
	}
}

// NewClient builds a client. A zero timeout keeps the http.Client default (none).
func NewClient(timeout time.Duration, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send executes the request synchronously. Any HTTP status is a Result;
// failures to get a response are returned as *TransportError. A request that
// could not be built (payload encoding, token signing) fails with a plain
// wrapped error and nothing is sent.
func (c *Client) Send(ctx context.Context, r models.Request) (models.Result, error) {
	var body io.Reader
	if r.HasBody() {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return models.Result{}, fmt.Errorf("encoding payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return models.Result{}, &TransportError{Method: r.Method, URL: r.URL, Err: err}
	}

	requestID := uuid.New().String()
	req.Header.Set(requestIDHeader, requestID)
	if r.HasBody() {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.signer != nil {
		token, err := c.signer.Token()
		if err != nil {
			return models.Result{}, fmt.Errorf("signing request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("sending request",
		zap.String("method", r.Method),
		zap.String("url", r.URL),
		zap.String("request_id", requestID))

	response, err := c.client.Do(req)
	if err != nil {
		// *url.Error repeats method and URL
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return models.Result{}, &TransportError{Method: r.Method, URL: r.URL, Err: err}
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return models.Result{}, &TransportError{Method: r.Method, URL: r.URL, Err: fmt.Errorf("reading response: %w", err)}
	}

	return models.Result{
		RequestID:  requestID,
		Method:     r.Method,
		URL:        r.URL,
		StatusCode: response.StatusCode,
		Body:       string(responseBody),
	}, nil
}
