package productservice

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/10", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": 10, "name": "Widget", "price": 9.99, "stock": 5}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)

	p, err := client.GetProduct(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), p.ID)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, 9.99, p.Price)
}

func TestGetProduct_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)

	_, err := client.GetProduct(context.Background(), 999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestGetProduct_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"price": "not a number"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)

	_, err := client.GetProduct(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode product data")
}
