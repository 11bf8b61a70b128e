package renamed

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type client struct {
	restyClient     *resty.Client
	transferClient  *resty.Client
	apiKey          string
	baseURL         string
	timeout         time.Duration
	maxRetries      int
	pollInterval    time.Duration
	maxPollAttempts int
	logger          *slog.Logger
	debug           bool
}

var _ Client = (*client)(nil)

type Option func(*client)

func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithMaxRetries bounds how many additional attempts a failed request gets.
// Zero disables retries entirely.
func WithMaxRetries(maxRetries int) Option {
	return func(c *client) {
		if maxRetries >= 0 {
			c.maxRetries = maxRetries
		}
	}
}

// WithPollInterval sets the default wait between job status polls.
func WithPollInterval(interval time.Duration) Option {
	return func(c *client) {
		if interval > 0 {
			c.pollInterval = interval
		}
	}
}

// WithMaxPollAttempts caps the default number of job status polls.
func WithMaxPollAttempts(attempts int) Option {
	return func(c *client) {
		if attempts > 0 {
			c.maxPollAttempts = attempts
		}
	}
}

// WithLogger installs a diagnostic logger. Without one the client stays
// silent. Takes precedence over WithDebug.
func WithLogger(logger *slog.Logger) Option {
	return func(c *client) {
		c.logger = logger
	}
}

// WithDebug enables debug logging to stderr when no logger is installed.
func WithDebug(debug bool) Option {
	return func(c *client) {
		c.debug = debug
	}
}

// WithRestyClient allows callers to provide a preconfigured API client.
func WithRestyClient(restyClient *resty.Client) Option {
	return func(c *client) {
		if restyClient != nil {
			c.restyClient = restyClient
		}
	}
}

// WithTransferClient overrides the client used for raw downloads from
// result URLs, which may live outside the API origin.
func WithTransferClient(transfer *resty.Client) Option {
	return func(c *client) {
		if transfer != nil {
			c.transferClient = transfer
		}
	}
}

func NewClient(apiKey string, opts ...Option) (Client, error) {
	if apiKey == "" {
		return nil, newAuthenticationError("API key is required")
	}

	c := &client{
		apiKey:          apiKey,
		baseURL:         DefaultBaseURL,
		timeout:         DefaultTimeout,
		maxRetries:      DefaultMaxRetries,
		pollInterval:    DefaultPollInterval,
		maxPollAttempts: DefaultMaxPollAttempts,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil && c.debug {
		c.logger = newDebugLogger()
	}

	if c.restyClient == nil {
		c.restyClient = c.newAPIClient()
	}

	if c.transferClient == nil {
		c.transferClient = c.newTransferClient()
	}

	if c.logger != nil {
		c.logger.Debug("client initialized", "api_key", maskAPIKey(c.apiKey))
	}

	return c, nil
}

// Name returns the service name.
func (c *client) Name() string {
	return ServiceName
}

// Version returns the API version.
func (c *client) Version() string {
	return APIVersion
}

// Close releases idle connections held by both transports.
func (c *client) Close() {
	c.restyClient.GetClient().CloseIdleConnections()
	c.transferClient.GetClient().CloseIdleConnections()
}

func newDebugLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// maskAPIKey keeps a short prefix and suffix so diagnostics never expose
// the credential.
func maskAPIKey(apiKey string) string {
	if len(apiKey) <= 7 {
		return "***"
	}
	return apiKey[:3] + "..." + apiKey[len(apiKey)-4:]
}
