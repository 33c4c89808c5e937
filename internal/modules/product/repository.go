package product

import "context"

// Repository defines the interface for product data storage.
type Repository interface {
	// EnsureSchema creates the products table if it does not exist yet.
	EnsureSchema(ctx context.Context) error
	// InsertIgnore stores p unless a product with the same external ID
	// already exists; the conflicting write is discarded, not merged.
	InsertIgnore(ctx context.Context, p *Product) error
	// ListRecent returns at most limit products, newest first.
	ListRecent(ctx context.Context, limit int) ([]*Product, error)
}
