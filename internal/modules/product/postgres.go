package product

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			external_id VARCHAR(50) UNIQUE,
			title TEXT NOT NULL,
			price VARCHAR(20),
			image_url TEXT,
			affiliate_link TEXT,
			category VARCHAR(50),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`)
	return err
}

func (r *postgresRepo) InsertIgnore(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (external_id, title, price, image_url, affiliate_link, category)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (external_id) DO NOTHING`,
		p.ExternalID, p.Title, p.Price, p.ImageURL, p.AffiliateLink, p.Category)
	return err
}

func (r *postgresRepo) ListRecent(ctx context.Context, limit int) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT external_id, title, price, image_url, affiliate_link, category, created_at
		FROM products ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ExternalID, &p.Title, &p.Price, &p.ImageURL,
			&p.AffiliateLink, &p.Category, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
