package userservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/corray333/microservice-demo/order/internal/service/models/user"
	"github.com/spf13/viper"
)

// Client calls the user service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a user service client with the given base URL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// MustNewClient creates a user service client from configuration.
func MustNewClient() *Client {
	baseURL := viper.GetString("service_urls.user_service")
	if baseURL == "" {
		panic("service_urls.user_service is not configured")
	}

	timeout := viper.GetInt("clients.timeout_seconds")
	if timeout == 0 {
		timeout = 10
	}

	return NewClient(baseURL, &http.Client{
		Timeout: time.Duration(timeout) * time.Second,
	})
}

// GetUser fetches a user by id. A non-2xx response or an undecodable body
// is reported as an error; there is no retry.
func (c *Client) GetUser(ctx context.Context, id int64) (*user.User, error) {
	url := fmt.Sprintf("%s/api/users/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to contact user service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("user service returned status %d", resp.StatusCode)
	}

	var u user.User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("failed to decode user data: %w", err)
	}

	return &u, nil
}
