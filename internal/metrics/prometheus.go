package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ScanCyclesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "market_scan_cycles_total",
		Help: "Total number of market scan cycles started.",
	})
	ScanFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "market_scan_failures_total",
		Help: "Total number of market scan cycles aborted by an adapter or store failure.",
	})
	ProductsProcessedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "market_scan_products_processed_total",
		Help: "Total number of affiliate candidates processed by scan cycles.",
	})
)

func init() {
	prometheus.MustRegister(ScanCyclesTotal)
	prometheus.MustRegister(ScanFailuresTotal)
	prometheus.MustRegister(ProductsProcessedTotal)
}

// Handler returns the HTTP handler exporting Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
