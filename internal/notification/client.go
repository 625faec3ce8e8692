package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Notifier is an interface for publishing asset registration events.
type Notifier interface {
	NotifyRegistration(event RegistrationEvent) error
	NotifyRegistrationWithContext(ctx context.Context, event RegistrationEvent) error
	IsHealthy(ctx context.Context) bool
}

// Config holds configuration for the webhook client.
type Config struct {
	URL            string
	Timeout        time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
	MaxPayloadSize int64
}

// DefaultConfig returns a default configuration for the webhook client.
func DefaultConfig(url string) Config {
	return Config{
		URL:            url,
		Timeout:        10 * time.Second,
		RetryAttempts:  3,
		RetryDelay:     time.Second,
		MaxPayloadSize: 1024 * 1024, // 1MB
	}
}

// webhookClient is the concrete implementation of the Notifier interface
type webhookClient struct {
	config Config
	client *http.Client
	logger *log.Logger
}

// NewNotifier creates a new Notifier with default configuration.
func NewNotifier(url string) Notifier {
	return NewNotifierWithConfig(DefaultConfig(url))
}

// NewNotifierWithConfig creates a new Notifier with custom configuration.
func NewNotifierWithConfig(config Config) Notifier {
	client := &http.Client{
		Timeout: config.Timeout,
	}

	return &webhookClient{
		config: config,
		client: client,
		logger: log.Default(),
	}
}

// RegistrationEvent is the payload posted to the webhook after a laptop asset
// has been committed to both tables.
type RegistrationEvent struct {
	AssetID             string    `json:"assetId"`
	LaptopID            string    `json:"laptopId"`
	SerialNumber        string    `json:"serialNumber,omitempty"`
	Model               string    `json:"model,omitempty"`
	DeviceBrand         string    `json:"deviceBrand,omitempty"`
	WarrentyExpieryDate string    `json:"warrentyExpieryDate,omitempty"`
	Timestamp           time.Time `json:"timestamp,omitempty"`
	Source              string    `json:"source,omitempty"`
}

// Validate checks if the event is valid
func (e *RegistrationEvent) Validate() error {
	if e.AssetID == "" {
		return fmt.Errorf("event asset ID is required")
	}
	if e.LaptopID == "" {
		return fmt.Errorf("event laptop ID is required")
	}
	return nil
}

// NotifyRegistration posts a registration event to the webhook.
func (c *webhookClient) NotifyRegistration(event RegistrationEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.config.Timeout)
	defer cancel()
	return c.NotifyRegistrationWithContext(ctx, event)
}

// NotifyRegistrationWithContext posts a registration event with context support.
func (c *webhookClient) NotifyRegistrationWithContext(ctx context.Context, event RegistrationEvent) error {
	if err := event.Validate(); err != nil {
		return fmt.Errorf("invalid registration event: %w", err)
	}

	// Set timestamp if not provided
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	// Set source if not provided
	if event.Source == "" {
		event.Source = "laptop-inventory-api"
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			// Wait before retry
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.config.RetryDelay * time.Duration(attempt)):
			}
			c.logger.Printf("Retrying registration event send (attempt %d/%d)", attempt+1, c.config.RetryAttempts+1)
		}

		if err := c.sendAttempt(ctx, event); err != nil {
			lastErr = err
			c.logger.Printf("Registration event send attempt %d failed: %v", attempt+1, err)

			// Don't retry on validation, client errors, or payload size errors
			if strings.Contains(err.Error(), "400") ||
				strings.Contains(err.Error(), "invalid") ||
				strings.Contains(err.Error(), "payload too large") ||
				strings.Contains(err.Error(), "failed to marshal") {
				return err
			}
			continue
		}

		return nil
	}

	return fmt.Errorf("failed to send registration event after %d attempts: %w", c.config.RetryAttempts+1, lastErr)
}

// sendAttempt performs a single webhook delivery attempt
func (c *webhookClient) sendAttempt(ctx context.Context, event RegistrationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal registration event: %w", err)
	}

	// Check payload size
	if int64(len(payload)) > c.config.MaxPayloadSize {
		return fmt.Errorf("event payload too large: %d bytes (max %d)", len(payload), c.config.MaxPayloadSize)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.config.URL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "laptop-inventory-api/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	// Read response body for better error reporting
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("webhook returned error status %d: %s", resp.StatusCode, string(body))
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusAccepted {
		c.logger.Printf("Warning: unexpected status code %d from webhook", resp.StatusCode)
	}

	return nil
}

// IsHealthy checks if the webhook endpoint is reachable.
func (c *webhookClient) IsHealthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, "HEAD", c.config.URL, nil)
	if err != nil {
		return false
	}

	req.Header.Set("User-Agent", "laptop-inventory-api/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < 500
}
