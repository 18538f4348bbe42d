package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		Root:           server.URL + "/api/v1.0",
		Token:          "test-token",
		AcceptLanguage: "fr-fr",
	}, nil)
	require.NoError(t, err)
	return client, server
}

func TestNewClient_RequiresRoot(t *testing.T) {
	_, err := NewClient(Config{}, nil)
	assert.ErrorIs(t, err, ErrNoRoot)
}

func TestClient_Endpoint(t *testing.T) {
	c, err := NewClient(Config{Root: "https://example.com/api/v1.0/"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/api/v1.0/organizations/", c.endpoint("organizations"))
	assert.Equal(t,
		"https://example.com/api/v1.0/course-product-relations/rel-1/offer-rules/rule-2/",
		c.endpoint("course-product-relations", "rel-1", "offer-rules", "rule-2"))
}

func TestClient_RequestDecoration(t *testing.T) {
	var got *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":0,"next":null,"previous":null,"results":[]}`))
	})

	query := url.Values{}
	query.Set("query", "physics")
	query.Add("organization_ids", "org-1")
	query.Add("organization_ids", "org-2")
	_, err := client.Courses().List(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", got.Header.Get("Authorization"))
	assert.Equal(t, "fr-fr", got.Header.Get("Accept-Language"))
	assert.Equal(t, "/api/v1.0/courses/", got.URL.Path)
	assert.Equal(t, "physics", got.URL.Query().Get("query"))
	assert.Equal(t, []string{"org-1", "org-2"}, got.URL.Query()["organization_ids"])
}

func TestClient_ContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Orders().List(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
