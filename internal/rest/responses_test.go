package rest

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_DetailBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Not found."}`))
	})

	_, err := client.Products().Get(context.Background(), "missing", nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Not found.", apiErr.Message)
	assert.False(t, apiErr.IsValidation())
}

func TestAPIError_FieldValidation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{
			"nb_seats": ["Ensure this value is greater than or equal to 0."],
			"code": "This field is required."
		}`))
	})

	_, err := client.OfferRules("rel-1").Create(context.Background(), NewForm())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsValidation())
	assert.Equal(t,
		[]string{"Ensure this value is greater than or equal to 0."},
		apiErr.Fields["nb_seats"])
	// Single-string field messages are normalized to a slice.
	assert.Equal(t, []string{"This field is required."}, apiErr.Fields["code"])
	assert.Contains(t, apiErr.Error(), "code, nb_seats")
}

func TestAPIError_OpaqueBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := client.Orders().List(context.Background(), nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream exploded", apiErr.Message)
}

func TestAPIError_EmptyBodyFallsBackToStatusText(t *testing.T) {
	e := parseAPIError(http.StatusServiceUnavailable, nil)
	assert.Equal(t, "Service Unavailable", e.Message)
}

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"override wins", []string{"fr-FR", "en-us", "en-us"}, "fr-fr"},
		{"skips empty sources", []string{"", "  ", "de-de"}, "de-de"},
		{"underscore normalized", []string{"pt_BR"}, "pt-br"},
		{"all empty falls back", []string{"", ""}, DefaultLocale},
		{"no sources", nil, DefaultLocale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLocale(tt.candidates...))
		})
	}
}
