package renamed

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// newAPIClient builds the retrying client used for API calls. Retry
// scheduling and the exchange log hook live here; response classification
// happens in execute once the final attempt settles.
func (c *client) newAPIClient() *resty.Client {
	rc := resty.New().
		SetBaseURL(c.baseURL).
		SetTimeout(c.timeout).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetRetryCount(c.maxRetries).
		SetRetryAfter(c.retryBackoff).
		AddRetryCondition(shouldRetry).
		AddRetryHook(c.logRetryAttempt).
		OnAfterResponse(c.logExchange)
	rc.JSONUnmarshal = decodeResponseJSON

	if c.maxRetries > 0 {
		rc.SetRetryWaitTime(backoffDelay(1)).
			SetRetryMaxWaitTime(backoffDelay(c.maxRetries))
	}

	return rc
}

// newTransferClient builds the single-attempt client used for raw byte
// fetches against result URLs, which may target hosts outside the API
// origin.
func (c *client) newTransferClient() *resty.Client {
	return resty.New().
		SetTimeout(c.timeout).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		OnAfterResponse(c.logExchange)
}

// execute sends a prepared request and maps every failure into a typed
// *Error. Transient failures are retried inside the resty client before
// this returns.
func (c *client) execute(req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, wrapTransportError(err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, classifyStatus(resp.StatusCode(), http.StatusText(resp.StatusCode()), resp.Body())
	}

	return resp, nil
}

// decodeResponseJSON replaces resty's default unmarshaler on the API
// client: a success response with an empty body decodes to an empty
// structure instead of failing.
func decodeResponseJSON(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// shouldRetry keeps transport faults and server-side failures in the retry
// loop. Responses below 500 are surfaced immediately.
func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp.StatusCode() >= http.StatusInternalServerError
}

// retryBackoff doubles the wait before each retry: 200ms, then 400ms, ...
func (c *client) retryBackoff(_ *resty.Client, resp *resty.Response) (time.Duration, error) {
	attempt := 1
	if resp != nil && resp.Request != nil && resp.Request.Attempt > 0 {
		attempt = resp.Request.Attempt
	}
	return backoffDelay(attempt), nil
}

func backoffDelay(retry int) time.Duration {
	return time.Duration(1<<uint(retry)) * 100 * time.Millisecond
}

// logRetryAttempt reports one retry decision. Resty also fires this hook
// after the final failed attempt, when no wait follows; that call is
// skipped.
func (c *client) logRetryAttempt(resp *resty.Response, _ error) {
	if c.logger == nil {
		return
	}

	attempt := 0
	if resp != nil && resp.Request != nil {
		attempt = resp.Request.Attempt
	}
	if attempt < 1 || attempt > c.maxRetries {
		return
	}

	c.logger.Debug("retrying request",
		"attempt", attempt,
		"max_retries", c.maxRetries,
		"backoff_ms", backoffDelay(attempt).Milliseconds(),
	)
}

// logExchange emits one debug line per completed HTTP exchange, including
// the exchanges that a retry follows.
func (c *client) logExchange(_ *resty.Client, resp *resty.Response) error {
	if c.logger != nil {
		c.logger.Debug("request completed",
			"method", resp.Request.Method,
			"path", displayPath(resp.Request.URL, c.baseURL),
			"status", resp.StatusCode(),
			"duration_ms", resp.Time().Milliseconds(),
		)
	}
	return nil
}

// wrapTransportError converts low-level transport failures into the typed
// taxonomy. Caller cancellation passes through untouched.
func wrapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return newTimeoutError(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newTimeoutError(err)
	}

	return newNetworkError(err)
}

// displayPath strips the origin from a URL so log lines carry only the
// request path.
func displayPath(rawURL, baseURL string) string {
	if baseURL != "" && strings.HasPrefix(rawURL, baseURL) {
		return rawURL[len(baseURL):]
	}

	if strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://") {
		if parsed, err := url.Parse(rawURL); err == nil {
			return parsed.Path
		}
	}

	return rawURL
}
