// ABOUTME: Generic REST resource over one server collection path.
// ABOUTME: One codec serves exercises, plans, and logs alike.
package api

import (
	"context"
	"net/http"
	"strconv"
)

// Resource provides List/Create/Update/Delete over a single collection path,
// for example /workout/plans. The element order returned by List is the
// server's; the client imposes no sort of its own.
type Resource[T any] struct {
	c    *Client
	path string
}

// NewResource creates a resource for the collection at path.
func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{c: c, path: path}
}

// List fetches the full collection in server order.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts a draft and returns the server's echo, which carries the
// assigned id. The draft itself is never returned.
func (r *Resource[T]) Create(ctx context.Context, draft T) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodPost, r.path, draft, &out)
	return out, err
}

// Update puts the full item at id and returns the server's version.
func (r *Resource[T]) Update(ctx context.Context, id int, item T) (T, error) {
	var out T
	err := r.c.do(ctx, http.MethodPut, r.path+"/"+strconv.Itoa(id), item, &out)
	return out, err
}

// Delete removes the item at id.
func (r *Resource[T]) Delete(ctx context.Context, id int) error {
	return r.c.do(ctx, http.MethodDelete, r.path+"/"+strconv.Itoa(id), nil, nil)
}
