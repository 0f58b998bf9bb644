package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"whatsapp-studio/internal/config"
)

// ErrUnavailable is returned while the breaker is open.
var ErrUnavailable = errors.New("whatsapp: graph api temporarily unavailable")

type Client struct {
	Config  *config.Config
	HTTP    *http.Client
	baseURL string
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.GraphTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c := &Client{
		Config:  cfg,
		HTTP:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(cfg.GraphBaseURL, "/"),
		logger:  logger,
	}
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "graph-api",
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// Rejections from Meta are answers, not outages.
		IsSuccessful: func(err error) bool {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return apiErr.StatusCode < http.StatusInternalServerError
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return c
}

// APIError is an error answer from the Graph API.
type APIError struct {
	StatusCode  int    `json:"-"`
	Message     string `json:"message"`
	Type        string `json:"type"`
	Code        int    `json:"code"`
	Subcode     int    `json:"error_subcode"`
	UserTitle   string `json:"error_user_title"`
	UserMessage string `json:"error_user_msg"`
	TraceID     string `json:"fbtrace_id"`
}

// Error prefers the user facing message so it can be shown as is.
func (e *APIError) Error() string {
	if e.UserMessage != "" {
		return e.UserMessage
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("graph api error: status %d", e.StatusCode)
}

func parseAPIError(status int, body []byte) *APIError {
	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		msg := strings.TrimSpace(string(body))
		if msg == "" {
			msg = http.StatusText(status)
		}
		return &APIError{StatusCode: status, Message: msg}
	}
	envelope.Error.StatusCode = status
	return envelope.Error
}

func (c *Client) url(parts ...string) string {
	return c.baseURL + "/" + strings.Join(parts, "/")
}

// sendRequest performs one call through the breaker. A []byte body is sent
// raw, anything else is encoded as JSON.
func (c *Client) sendRequest(ctx context.Context, method, url string, body interface{}, headers map[string]string) ([]byte, error) {
	var bodyReader io.Reader
	isJSON := false
	switch b := body.(type) {
	case nil:
	case []byte:
		bodyReader = bytes.NewReader(b)
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
		isJSON = true
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Config.WhatsAppToken)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if isJSON && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.do(req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, ErrUnavailable
		}
		return nil, err
	}
	return out.([]byte), nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		apiErr := parseAPIError(resp.StatusCode, respBody)
		c.logger.Debug("graph api error",
			"method", req.Method, "path", req.URL.Path,
			"status", resp.StatusCode, "code", apiErr.Code, "trace", apiErr.TraceID)
		return nil, apiErr
	}
	return respBody, nil
}
