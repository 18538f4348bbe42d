package rest

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_PaginationEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"count": 2,
			"next": null,
			"previous": null,
			"results": [
				{"id": "org-a", "code": "A", "title": "Alpha"},
				{"id": "org-b", "code": "B", "title": "Beta"}
			]
		}`))
	})

	page, err := client.Organizations().List(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Count)
	assert.Nil(t, page.Next)
	assert.Nil(t, page.Previous)
	require.Len(t, page.Results, 2)
	// Row order must match the envelope order.
	assert.Equal(t, "org-a", page.Results[0].ID)
	assert.Equal(t, "org-b", page.Results[1].ID)
}

func TestCreate_SendsMultipartForm(t *testing.T) {
	var method, contentType string
	var fields map[string][]string
	var logoName string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		fields = r.MultipartForm.Value
		if files := r.MultipartForm.File["logo"]; len(files) > 0 {
			logoName = files[0].Filename
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "org-1", "code": "NEW", "title": "New org"}`))
	})

	form := NewForm().
		Set("code", "NEW").
		Set("title", "New org").
		Attach("logo", "logo.png", strings.NewReader("not-a-real-png"))

	created, err := client.Organizations().Create(context.Background(), form)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Contains(t, contentType, "multipart/form-data")
	assert.Equal(t, []string{"NEW"}, fields["code"])
	assert.Equal(t, "logo.png", logoName)
	assert.Equal(t, "org-1", created.ID)
}

func TestUpdate_UsesPatchOnDetailRoute(t *testing.T) {
	var method, path string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "course-1", "code": "C1", "title": "Renamed"}`))
	})

	updated, err := client.Courses().Update(context.Background(), "course-1",
		NewForm().Set("title", "Renamed"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "/api/v1.0/courses/course-1/", path)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestOfferRules_NestedRoute(t *testing.T) {
	var paths []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": "rule-1", "nb_seats": 10, "nb_available_seats": 10}`))
		}
	})

	rules := client.OfferRules("rel-1")
	_, err := rules.Create(context.Background(), NewForm().SetInt("nb_seats", 10))
	require.NoError(t, err)
	_, err = rules.Update(context.Background(), "rule-1", NewForm().SetInt("nb_seats", 15))
	require.NoError(t, err)
	require.NoError(t, rules.Delete(context.Background(), "rule-1"))

	assert.Equal(t, []string{
		"POST /api/v1.0/course-product-relations/rel-1/offer-rules/",
		"PATCH /api/v1.0/course-product-relations/rel-1/offer-rules/rule-1/",
		"DELETE /api/v1.0/course-product-relations/rel-1/offer-rules/rule-1/",
	}, paths)
}

func TestOrderGroups_NestedRoute(t *testing.T) {
	var paths []string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": "group-1", "nb_seats": 8, "nb_available_seats": 8}`))
		}
	})

	groups := client.OrderGroups("rel-1")
	_, err := groups.Create(context.Background(), NewForm().SetInt("nb_seats", 8))
	require.NoError(t, err)
	_, err = groups.Update(context.Background(), "group-1", NewForm().SetInt("nb_seats", 12))
	require.NoError(t, err)
	require.NoError(t, groups.Delete(context.Background(), "group-1"))

	assert.Equal(t, []string{
		"POST /api/v1.0/course-product-relations/rel-1/order-groups/",
		"PATCH /api/v1.0/course-product-relations/rel-1/order-groups/group-1/",
		"DELETE /api/v1.0/course-product-relations/rel-1/order-groups/group-1/",
	}, paths)
}

func TestOptions_MetadataChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodOptions, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"name": "Organization Access List",
			"actions": {
				"POST": {
					"role": {
						"type": "choice",
						"required": true,
						"label": "Role",
						"choices": [
							{"value": "owner", "display_name": "Owner"},
							{"value": "administrator", "display_name": "Administrator"},
							{"value": "member", "display_name": "Member"}
						]
					}
				}
			}
		}`))
	})

	meta, err := client.OrganizationAccesses("org-1").Options(context.Background())
	require.NoError(t, err)

	choices := meta.ChoicesFor("POST", "role")
	require.Len(t, choices, 3)
	assert.Equal(t, "owner", choices[0].Value)
	assert.Equal(t, "Administrator", choices[1].DisplayName)
	assert.Nil(t, meta.ChoicesFor("POST", "unknown"))
	assert.Nil(t, meta.ChoicesFor("PUT", "role"))
}

func TestDelete_NoContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	assert.NoError(t, client.Vouchers().Delete(context.Background(), "v-1"))
}
