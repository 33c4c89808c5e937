package product

import "time"

// Product is one affiliate item discovered by the market scan.
// Price and ImageURL are pointers so a value absent at the source
// stays null through the feed instead of collapsing to "".
type Product struct {
	ID            int64     `json:"-"`
	ExternalID    string    `json:"external_id"`
	Title         string    `json:"title"`
	Price         *string   `json:"price"`
	ImageURL      *string   `json:"image_url"`
	AffiliateLink string    `json:"affiliate_link"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
}
