package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/api"
	"backoffice/internal/rest"
)

func testClient(t *testing.T, handler http.HandlerFunc) *rest.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := rest.NewClient(rest.Config{Root: server.URL + "/api/v1.0"}, nil)
	require.NoError(t, err)
	return client
}

func TestFetchListing_OrdersRowsFollowEnvelopeOrder(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1.0/orders/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"count": 2, "next": null, "previous": null,
			"results": [
				{"id": "o-a", "reference": "ORD-A", "owner_name": "Ada", "state": "validated", "total": 100, "total_currency": "EUR"},
				{"id": "o-b", "reference": "ORD-B", "owner_name": "Grace", "state": "pending", "total": 50, "total_currency": "EUR"}
			]
		}`))
	})

	l, err := fetchListing(context.Background(), client, pageOrders, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, l.count)
	require.Len(t, l.rows, 2)
	assert.Equal(t, "ORD-A", l.rows[0][0])
	assert.Equal(t, "ORD-B", l.rows[1][0])
	assert.Equal(t, []string{"o-a", "o-b"}, l.ids)
}

func TestFetchListing_CourseRuns(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1.0/course-runs/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"count": 1, "next": null, "previous": null,
			"results": [
				{"id": "run-1", "course_id": "C1", "title": "Spring session",
				 "start": "2026-03-01T00:00:00Z", "end": null}
			]
		}`))
	})

	l, err := fetchListing(context.Background(), client, pageCourseRuns, nil)
	require.NoError(t, err)

	require.Len(t, l.rows, 1)
	assert.Equal(t, []string{"Spring session", "C1", "2026-03-01", "-"}, l.rows[0])
	assert.Equal(t, []string{"run-1"}, l.ids)
}

func TestFetchListing_BatchOrders(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1.0/batch-orders/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"count": 1, "next": null, "previous": null,
			"results": [
				{"id": "bo-1", "company_name": "ACME", "nb_seats": 12,
				 "state": "pending", "total": 1200}
			]
		}`))
	})

	l, err := fetchListing(context.Background(), client, pageBatchOrders, nil)
	require.NoError(t, err)

	require.Len(t, l.rows, 1)
	assert.Equal(t, []string{"ACME", "12", "pending", "1200.00"}, l.rows[0])
}

func TestPageOrder_CoversEveryPage(t *testing.T) {
	assert.Len(t, pageOrder, len(pageTitles))
	for _, p := range pageOrder {
		assert.Contains(t, pageTitles, p)
	}
}

func TestFetchListing_PassesFilters(t *testing.T) {
	var gotQuery string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":0,"next":null,"previous":null,"results":[]}`))
	})

	query, err := parseFilters("physics", []string{"state=ongoing"})
	require.NoError(t, err)
	_, err = fetchListing(context.Background(), client, pageCourses, query)
	require.NoError(t, err)

	assert.Contains(t, gotQuery, "query=physics")
	assert.Contains(t, gotQuery, "state=ongoing")
}

func TestParseFilters_RejectsBadPair(t *testing.T) {
	_, err := parseFilters("", []string{"nonsense"})
	assert.Error(t, err)
}

func TestBuildForm(t *testing.T) {
	form, closeFiles, err := buildForm([]string{"code=ORG", "title=My org"}, nil)
	require.NoError(t, err)
	defer closeFiles()
	assert.NotNil(t, form)

	_, _, err = buildForm([]string{"nonsense"}, nil)
	assert.Error(t, err)

	_, _, err = buildForm(nil, []string{"logo=/does/not/exist.png"})
	assert.Error(t, err)
}

func TestRuleRow_Projection(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	row := ruleRow(api.OfferRule{
		Description:      "early birds",
		NbSeats:          30,
		NbAvailableSeats: 12,
		IsActive:         true,
		Start:            &start,
	})
	assert.Equal(t, []string{"early birds", "30", "12", "active", "2026-03-01", "-"}, row)
}
