package product

import (
	"context"
	"fmt"
)

// FeedLimit caps how many products the storefront feed returns.
const FeedLimit = 50

// DefaultScanKeyword is echoed by the scan trigger when the caller
// supplies no keyword.
const DefaultScanKeyword = "smart gadgets"

// FeedItem is the wire shape the storefront consumes.
type FeedItem struct {
	Name  string  `json:"name"`
	Price *string `json:"price"`
	Img   *string `json:"img"`
	Link  string  `json:"link"`
	Tag   string  `json:"tag"`
}

// Service defines the storefront read model.
type Service interface {
	Feed(ctx context.Context) ([]FeedItem, error)
	AcknowledgeScan(keyword string) string
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Feed(ctx context.Context) ([]FeedItem, error) {
	products, err := s.repo.ListRecent(ctx, FeedLimit)
	if err != nil {
		return nil, err
	}
	items := make([]FeedItem, 0, len(products))
	for _, p := range products {
		items = append(items, FeedItem{
			Name:  p.Title,
			Price: p.Price,
			Img:   p.ImageURL,
			Link:  p.AffiliateLink,
			Tag:   p.Category,
		})
	}
	return items, nil
}

// AcknowledgeScan only acknowledges the request; the actual scan runs
// on the background schedule, never synchronously with the trigger.
func (s *service) AcknowledgeScan(keyword string) string {
	if keyword == "" {
		keyword = DefaultScanKeyword
	}
	return fmt.Sprintf("Scanned for %s", keyword)
}
