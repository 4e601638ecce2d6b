package template

import "context"

// Repository provides read access to the curated template catalog.
type Repository interface {
	List(ctx context.Context) ([]Template, error)
	Get(ctx context.Context, id string) (*Template, error)
}
