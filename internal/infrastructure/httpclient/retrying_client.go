package httpclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet_export/internal/domain/entity"
	"wallet_export/internal/pkg/metrics"

	"github.com/cenkalti/backoff/v4"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// RetryingClient is a fasthttp GET client that retries transient failures
// according to a RetryPolicy. It holds no per-request state and is safe for
// concurrent use.
type RetryingClient struct {
	client    *fasthttp.Client
	policy    RetryPolicy
	userAgent string
	timeout   time.Duration
	logger    *zap.Logger
}

// NewRetryingClient creates a client that sends userAgent on every request.
func NewRetryingClient(policy RetryPolicy, userAgent string, timeout time.Duration, logger *zap.Logger) *RetryingClient {
	return &RetryingClient{
		client: &fasthttp.Client{
			Name:                     userAgent,
			NoDefaultUserAgentHeader: true,
		},
		policy:    policy,
		userAgent: userAgent,
		timeout:   timeout,
		logger:    logger.Named("RetryingClient"),
	}
}

// statusError is returned for a non-2xx response.
type statusError struct {
	url    string
	status int
	body   []byte
}

func (e *statusError) Error() string {
	const maxBody = 256
	body := e.body
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	return fmt.Sprintf("GET %s: status %d: %s", e.url, e.status, string(body))
}

func transientStatus(status int) bool {
	return status >= fasthttp.StatusInternalServerError || status == fasthttp.StatusTooManyRequests || status == fasthttp.StatusRequestTimeout
}

// Get performs a GET against url and returns the body of the first 2xx response.
// Timeouts, connection errors, 408, 429 and 5xx are retried; other statuses fail at once.
func (c *RetryingClient) Get(ctx context.Context, url string) ([]byte, error) {
	attempts := 0
	operation := func() ([]byte, error) {
		attempts++
		body, err := c.do(ctx, url)
		if err == nil {
			metrics.CollectIndexAttempt("ok")
			return body, nil
		}

		var se *statusError
		if errors.As(err, &se) && !transientStatus(se.status) {
			metrics.CollectIndexAttempt("rejected")
			return nil, backoff.Permanent(err)
		}
		metrics.CollectIndexAttempt("transient")
		return nil, err
	}

	notify := func(err error, wait time.Duration) {
		metrics.IndexRetries.Inc()
		c.logger.Warn("Transient index failure, retrying",
			zap.String("url", url),
			zap.Int("attempt", attempts),
			zap.Duration("wait", wait),
			zap.Error(err))
	}

	body, err := backoff.RetryNotifyWithData(operation, backoff.WithContext(c.policy.newBackOff(), ctx), notify)
	if err != nil {
		c.logger.Error("Index request failed", zap.String("url", url), zap.Int("attempts", attempts), zap.Error(err))
		return nil, fmt.Errorf("%w: GET %s failed after %d attempt(s): %w", entity.ErrTransport, url, attempts, err)
	}
	return body, nil
}

type response struct {
	status int
	body   []byte
	err    error
}

// do sends one GET. The attempt ends at the earlier of the context deadline and the
// client timeout, and returns as soon as ctx is done.
func (c *RetryingClient) do(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, backoff.Permanent(err)
	}

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	done := make(chan response, 1)
	go func() {
		req := fasthttp.AcquireRequest()
		defer fasthttp.ReleaseRequest(req)
		req.SetRequestURI(url)
		req.Header.SetMethod(fasthttp.MethodGet)
		req.Header.SetUserAgent(c.userAgent)
		req.Header.Set(fasthttp.HeaderAccept, "application/json")

		resp := fasthttp.AcquireResponse()
		defer fasthttp.ReleaseResponse(resp)

		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			done <- response{err: err}
			return
		}
		done <- response{status: resp.StatusCode(), body: append([]byte(nil), resp.Body()...)}
	}()

	var res response
	select {
	case <-ctx.Done():
		return nil, backoff.Permanent(ctx.Err())
	case res = <-done:
	}

	if res.err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, res.err)
	}
	if res.status < 200 || res.status >= 300 {
		return nil, &statusError{url: url, status: res.status, body: res.body}
	}

	c.logger.Debug("Index response received", zap.String("url", url), zap.Int("bytes", len(res.body)))
	return res.body, nil
}
