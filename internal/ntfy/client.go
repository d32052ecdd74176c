package ntfy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "https://ntfy.sh"
	defaultHTTPTimeout = 10 * time.Second
)

// Message is one push notification.
type Message struct {
	Title    string
	Body     string
	ClickURL string
	Priority string
	Tags     string
}

// Config controls how the ntfy client reaches the delivery server.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client publishes notifications to per-user ntfy topics. Delivery is
// best-effort: callers treat a returned error as a failed attempt and never
// retry within the same cycle.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs an ntfy client with the provided configuration.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: client,
	}
}

// Publish sends one message to the topic. Any 2xx response counts as
// delivered.
func (c *Client) Publish(ctx context.Context, topic string, msg Message) error {
	if topic == "" {
		return fmt.Errorf("ntfy: empty topic")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+topic, strings.NewReader(msg.Body))
	if err != nil {
		return err
	}

	if msg.Title != "" {
		req.Header.Set("Title", msg.Title)
	}
	if msg.ClickURL != "" {
		req.Header.Set("Click", msg.ClickURL)
		req.Header.Set("Actions", fmt.Sprintf("view, Watch Game, %s", msg.ClickURL))
	}
	priority := msg.Priority
	if priority == "" {
		priority = "high"
	}
	req.Header.Set("Priority", priority)
	tags := msg.Tags
	if tags == "" {
		tags = "sports,tv"
	}
	req.Header.Set("Tags", tags)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("ntfy: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
