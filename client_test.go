package renamed

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "rt_test_key_9876"

func newTestClient(t *testing.T, baseURL string, opts ...Option) *client {
	t.Helper()

	base := []Option{WithBaseURL(baseURL)}
	cli, err := NewClient(testAPIKey, append(base, opts...)...)
	require.NoError(t, err)

	return cli.(*client)
}

func respondJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestNewClient(t *testing.T) {
	t.Run("requires an api key", func(t *testing.T) {
		cli, err := NewClient("")
		require.Nil(t, cli)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, ErrCodeAuthentication, apiErr.Code)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	})

	t.Run("applies defaults", func(t *testing.T) {
		cli, err := NewClient(testAPIKey)
		require.NoError(t, err)
		defer cli.Close()

		c := cli.(*client)
		assert.Equal(t, DefaultBaseURL, c.baseURL)
		assert.Equal(t, DefaultTimeout, c.timeout)
		assert.Equal(t, DefaultMaxRetries, c.maxRetries)
		assert.Equal(t, DefaultPollInterval, c.pollInterval)
		assert.Equal(t, DefaultMaxPollAttempts, c.maxPollAttempts)
		assert.Nil(t, c.logger)

		assert.Equal(t, ServiceName, cli.Name())
		assert.Equal(t, APIVersion, cli.Version())
	})

	t.Run("applies options", func(t *testing.T) {
		cli, err := NewClient(testAPIKey,
			WithBaseURL("https://api.example.com/v1/"),
			WithMaxRetries(5),
			WithMaxPollAttempts(10),
		)
		require.NoError(t, err)
		defer cli.Close()

		c := cli.(*client)
		assert.Equal(t, "https://api.example.com/v1", c.baseURL, "trailing slash is trimmed")
		assert.Equal(t, 5, c.maxRetries)
		assert.Equal(t, 10, c.maxPollAttempts)
	})

	t.Run("retries can be disabled", func(t *testing.T) {
		cli, err := NewClient(testAPIKey, WithMaxRetries(0))
		require.NoError(t, err)
		defer cli.Close()

		assert.Equal(t, 0, cli.(*client).maxRetries)
	})
}

func TestClientLogging(t *testing.T) {
	t.Run("logs initialization with a masked key", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		cli, err := NewClient("rt_1234567890abcd", WithLogger(logger))
		require.NoError(t, err)
		defer cli.Close()

		out := buf.String()
		assert.Contains(t, out, "client initialized")
		assert.Contains(t, out, "rt_...abcd")
		assert.NotContains(t, out, "rt_1234567890abcd")
	})

	t.Run("stays silent without a logger", func(t *testing.T) {
		cli, err := NewClient(testAPIKey)
		require.NoError(t, err)
		defer cli.Close()

		assert.Nil(t, cli.(*client).logger)
	})
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   string
	}{
		{"long key keeps prefix and suffix", "rt_1234567890abcdef", "rt_...cdef"},
		{"short key is fully masked", "rt_1234", "***"},
		{"empty key is fully masked", "", "***"},
		{"boundary length is fully masked", "1234567", "***"},
		{"eight characters keep both ends", "12345678", "123...5678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, maskAPIKey(tt.apiKey))
		})
	}
}

func TestDisplayPath(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		baseURL string
		want    string
	}{
		{"api path", "https://www.renamed.to/api/v1/rename", "https://www.renamed.to/api/v1", "/rename"},
		{"external url keeps only the path", "https://assets.example.com/files/doc.pdf?sig=abc", "https://www.renamed.to/api/v1", "/files/doc.pdf"},
		{"relative path passes through", "/user", "https://www.renamed.to/api/v1", "/user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayPath(tt.url, tt.baseURL))
		})
	}
}
