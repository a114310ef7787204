package productservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/corray333/microservice-demo/order/internal/service/models/product"
	"github.com/spf13/viper"
)

// Client calls the product service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a product service client with the given base URL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

// MustNewClient creates a product service client from configuration.
func MustNewClient() *Client {
	baseURL := viper.GetString("service_urls.product_service")
	if baseURL == "" {
		panic("service_urls.product_service is not configured")
	}

	timeout := viper.GetInt("clients.timeout_seconds")
	if timeout == 0 {
		timeout = 10
	}

	return NewClient(baseURL, &http.Client{
		Timeout: time.Duration(timeout) * time.Second,
	})
}

// GetProduct fetches a product by id. A non-2xx response or an undecodable
// body is reported as an error; there is no retry.
func (c *Client) GetProduct(ctx context.Context, id int64) (*product.Product, error) {
	url := fmt.Sprintf("%s/api/products/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build product request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to contact product service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("product service returned status %d", resp.StatusCode)
	}

	var p product.Product
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode product data: %w", err)
	}

	return &p, nil
}
