// Package client provides the generic LightX job client: upload negotiation,
// binary upload, job submission and completion polling. Every feature endpoint
// is driven by this one client configured with a feature payload.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/lightxeditor/lightx-go/internal/logger"
	"github.com/lightxeditor/lightx-go/pkg/api/routes"
)

const (
	// DefaultTimeout is the default per-request timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultPollInterval is the default wait between status checks.
	DefaultPollInterval = 3 * time.Second
	// DefaultMaxPollAttempts is the default status-check budget per job.
	DefaultMaxPollAttempts = 5
)

// headerAPIKey authenticates every API request. There is no token refresh or
// request signing.
const headerAPIKey = "x-api-key"

// Options contains configuration options for the client.
type Options struct {
	// BaseURL is the base URL of the LightX API.
	BaseURL string

	// APIKey is sent as the x-api-key header on every API request.
	APIKey string

	// Timeout is the per-request timeout.
	Timeout time.Duration

	// PollInterval is the wait between status checks in AwaitCompletion.
	PollInterval time.Duration

	// MaxPollAttempts bounds the number of status checks per job.
	MaxPollAttempts int
}

// DefaultOptions returns the default client options. APIKey must still be set
// by the caller.
func DefaultOptions() *Options {
	return &Options{
		BaseURL:         routes.DefaultBaseURL,
		Timeout:         DefaultTimeout,
		PollInterval:    DefaultPollInterval,
		MaxPollAttempts: DefaultMaxPollAttempts,
	}
}

// Client drives LightX jobs from raw bytes to a finished-asset URL. It holds
// no mutable state beyond configuration, so one Client may run any number of
// jobs concurrently.
type Client struct {
	baseURL         string
	apiKey          string
	timeout         time.Duration
	pollInterval    time.Duration
	maxPollAttempts int
}

// NewClient creates a new client with the given options.
func NewClient(opts *Options) (*Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	// Validate the base URL
	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	c := &Client{
		baseURL:         opts.BaseURL,
		apiKey:          opts.APIKey,
		timeout:         opts.Timeout,
		pollInterval:    opts.PollInterval,
		maxPollAttempts: opts.MaxPollAttempts,
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.pollInterval <= 0 {
		c.pollInterval = DefaultPollInterval
	}
	if c.maxPollAttempts <= 0 {
		c.maxPollAttempts = DefaultMaxPollAttempts
	}
	return c, nil
}

// createAgent creates a new Fiber Agent for the given method and absolute URL.
func (c *Client) createAgent(ctx context.Context, method, fullURL string) (*fiber.Agent, error) {
	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	return agent, nil
}

// postJSON sends an authenticated JSON POST to an API endpoint and decodes the
// envelope body into out. Both success signals are checked independently: the
// HTTP status and the application statusCode inside the envelope.
func (c *Client) postJSON(ctx context.Context, endpoint string, payload, out interface{}) error {
	agent, err := c.createAgent(ctx, http.MethodPost, c.baseURL+endpoint)
	if err != nil {
		return err
	}
	agent.Set("Accept", "application/json")
	agent.Set(headerAPIKey, c.apiKey)
	agent.JSON(payload)

	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request to %s: %w", endpoint, errs[0])
	}
	if statusCode < 200 || statusCode >= 300 {
		return &Error{Kind: KindNetwork, Message: string(body), HTTPStatus: statusCode}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("error decoding response from %s: %w", endpoint, err)
	}
	if env.StatusCode != statusCodeOK {
		return &Error{Kind: KindAPI, Message: env.Message}
	}
	if out != nil && len(env.Body) > 0 {
		if err := json.Unmarshal(env.Body, out); err != nil {
			return fmt.Errorf("error decoding response body from %s: %w", endpoint, err)
		}
	}
	return nil
}

// SubmitJob submits a feature payload to its endpoint and returns the created
// order. Exactly one order exists per call; there is no batching. Payloads
// implementing Validator are checked before any network call.
func (c *Client) SubmitJob(ctx context.Context, req Request) (*Order, error) {
	if v, ok := req.(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	var order Order
	if err := c.postJSON(ctx, req.SubmitPath(), req, &order); err != nil {
		return nil, err
	}

	logger.DebugWithFields("order created", map[string]interface{}{
		"orderId":              order.OrderID,
		"endpoint":             req.SubmitPath(),
		"maxRetriesAllowed":    order.MaxRetriesAllowed,
		"avgResponseTimeInSec": order.AvgResponseTimeInSec,
	})
	return &order, nil
}

// CheckOrder performs a single status query against the given order-status
// endpoint (v1 and v2 features poll different paths).
func (c *Client) CheckOrder(ctx context.Context, statusPath, orderID string) (*OrderStatus, error) {
	payload := map[string]string{"orderId": orderID}
	var status OrderStatus
	if err := c.postJSON(ctx, statusPath, payload, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// AwaitCompletion polls the order until it reaches a terminal state or the
// attempt budget runs out. Transport and application errors during polling are
// transient and retried, except on the final attempt where they surface to the
// caller. A terminal "failed" status surfaces immediately and is never
// retried. The wait between attempts is a real sleep, cancellable through ctx.
func (c *Client) AwaitCompletion(ctx context.Context, statusPath, orderID string) (*OrderStatus, error) {
	for attempt := 1; attempt <= c.maxPollAttempts; attempt++ {
		status, err := c.CheckOrder(ctx, statusPath, orderID)
		if err != nil {
			if attempt == c.maxPollAttempts {
				return nil, err
			}
			logger.Debugf("order %s: attempt %d failed, retrying: %v", orderID, attempt, err)
		} else {
			logger.Debugf("order %s: attempt %d status %s", orderID, attempt, status.Status)
			switch status.Status {
			case StatusSucceeded:
				return status, nil
			case StatusFailed:
				return nil, &Error{Kind: KindProcessingFailed, Message: "processing failed", OrderID: orderID}
			}
			// StatusProcessing or an unknown value: wait and retry.
		}

		if attempt == c.maxPollAttempts {
			break
		}
		if err := sleep(ctx, c.pollInterval); err != nil {
			return nil, err
		}
	}

	return nil, &Error{
		Kind:    KindMaxRetries,
		Message: fmt.Sprintf("no terminal status after %d attempts", c.maxPollAttempts),
		OrderID: orderID,
	}
}

// Do submits the request and waits for the order to complete.
func (c *Client) Do(ctx context.Context, req Request) (*OrderStatus, error) {
	order, err := c.SubmitJob(ctx, req)
	if err != nil {
		return nil, err
	}
	return c.AwaitCompletion(ctx, req.StatusPath(), order.OrderID)
}

// Run is the composite workflow: upload the images sequentially in argument
// order, build the feature payload from the resulting URLs, submit, and wait
// for completion. Any failure aborts immediately; uploaded asset URLs are not
// salvaged for a later retry.
func (c *Client) Run(ctx context.Context, build PayloadBuilder, images ...Image) (*OrderStatus, error) {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		u, err := c.UploadImage(ctx, img.Data, img.ContentType)
		if err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}

	req, err := build(urls)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

// Download fetches a finished output asset. Output URLs are pre-signed, so no
// API key header is sent.
func (c *Client) Download(ctx context.Context, assetURL string) ([]byte, error) {
	agent, err := c.createAgent(ctx, http.MethodGet, assetURL)
	if err != nil {
		return nil, err
	}

	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("error downloading asset: %w", errs[0])
	}
	if statusCode < 200 || statusCode >= 300 {
		return nil, &Error{Kind: KindNetwork, Message: "asset download rejected", HTTPStatus: statusCode}
	}
	return body, nil
}

// sleep waits for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
