package scan

import (
	"context"
	"math/rand"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Lovelaga/Bebe-Ai-Store/internal/metrics"
	"github.com/Lovelaga/Bebe-Ai-Store/internal/modules/affiliate"
	"github.com/Lovelaga/Bebe-Ai-Store/internal/modules/product"
)

// Job runs one market scan cycle: pick a keyword, query the affiliate
// gateway, normalize the candidates, store them with insert-or-ignore
// semantics.
type Job struct {
	client   affiliate.Client
	repo     product.Repository
	keywords []string
	log      *logrus.Logger
}

func NewJob(client affiliate.Client, repo product.Repository, keywords []string, log *logrus.Logger) *Job {
	return &Job{client: client, repo: repo, keywords: keywords, log: log}
}

// Run executes one scan cycle and returns the number of candidates
// processed. Adapter and store failures abort the cycle; they are
// logged here and never propagated to the scheduler. Re-running is
// safe: every write is idempotent on external_id.
func (j *Job) Run(ctx context.Context) int {
	keyword := j.keywords[rand.Intn(len(j.keywords))]
	logger := j.log.WithFields(logrus.Fields{
		"cycle":   uuid.NewString(),
		"keyword": keyword,
	})
	logger.Info("starting market scan")
	metrics.ScanCyclesTotal.Inc()

	candidates, err := j.client.QueryProducts(ctx, keyword)
	if err != nil {
		logger.WithError(err).Warn("market scan failed")
		metrics.ScanFailuresTotal.Inc()
		return 0
	}

	count := 0
	for i := range candidates {
		p := normalize(&candidates[i], keyword)
		if err := j.repo.InsertIgnore(ctx, p); err != nil {
			logger.WithError(err).WithField("external_id", p.ExternalID).
				Warn("storing product failed, aborting cycle")
			metrics.ScanFailuresTotal.Inc()
			return count
		}
		count++
	}

	metrics.ProductsProcessedTotal.Add(float64(count))
	logger.WithField("processed", count).Info("market scan complete")
	return count
}

// normalize derives the storable record from a gateway candidate. The
// affiliate link prefers the tracked promotion link and falls back to
// the plain detail-page URL.
func normalize(c *affiliate.Candidate, keyword string) *product.Product {
	link := c.PromotionLink
	if link == "" {
		link = c.DetailURL
	}
	return &product.Product{
		ExternalID:    strconv.FormatInt(c.ProductID, 10),
		Title:         c.Title,
		Price:         c.SalePrice,
		ImageURL:      c.MainImageURL,
		AffiliateLink: link,
		Category:      keyword,
	}
}
