package rest

import (
	"context"
	"net/http"
	"net/url"

	"backoffice/internal/api"
)

// resource implements the verb mapping shared by every repository:
// GET /{resource}/, GET /{resource}/{id}/, POST, PATCH, DELETE.
// Nested repositories are the same thing with a longer base path.
type resource[T api.Resource] struct {
	c    *Client
	base []string
}

// List fetches one page of the collection. filters may be nil.
func (r resource[T]) List(ctx context.Context, filters url.Values) (api.Paginated[T], error) {
	var page api.Paginated[T]
	resp, err := r.c.do(ctx, http.MethodGet, r.c.endpoint(r.base...), filters, nil)
	if err != nil {
		return page, err
	}
	if err := decodeResponse(resp, &page); err != nil {
		return api.Paginated[T]{}, err
	}
	return page, nil
}

func (r resource[T]) Get(ctx context.Context, id string, filters url.Values) (T, error) {
	var item T
	resp, err := r.c.do(ctx, http.MethodGet, r.c.endpoint(append(r.base, id)...), filters, nil)
	if err != nil {
		return item, err
	}
	if err := decodeResponse(resp, &item); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

func (r resource[T]) Create(ctx context.Context, form *Form) (T, error) {
	var item T
	body, err := form.encode()
	if err != nil {
		return item, err
	}
	resp, err := r.c.do(ctx, http.MethodPost, r.c.endpoint(r.base...), nil, body)
	if err != nil {
		return item, err
	}
	if err := decodeResponse(resp, &item); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

func (r resource[T]) Update(ctx context.Context, id string, form *Form) (T, error) {
	var item T
	body, err := form.encode()
	if err != nil {
		return item, err
	}
	resp, err := r.c.do(ctx, http.MethodPatch, r.c.endpoint(append(r.base, id)...), nil, body)
	if err != nil {
		return item, err
	}
	if err := decodeResponse(resp, &item); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

func (r resource[T]) Delete(ctx context.Context, id string) error {
	resp, err := r.c.do(ctx, http.MethodDelete, r.c.endpoint(append(r.base, id)...), nil, nil)
	if err != nil {
		return err
	}
	return decodeResponse[struct{}](resp, nil)
}

// Options introspects the collection endpoint for enumerated choices.
func (r resource[T]) Options(ctx context.Context) (Metadata, error) {
	var meta Metadata
	resp, err := r.c.do(ctx, http.MethodOptions, r.c.endpoint(r.base...), nil, nil)
	if err != nil {
		return meta, err
	}
	if err := decodeResponse(resp, &meta); err != nil {
		return Metadata{}, err
	}
	return meta, nil
}
