package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the checkout confirm flow, end to end
	CheckoutLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_confirm_latency_seconds",
		Help:    "Latency of the checkout confirm flow",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of orders placed
	OrdersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Total number of orders placed",
	})

	// Stock decrements that drove a product's available count negative
	OversoldProducts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_oversold_products_total",
		Help: "Stock decrements that produced a negative available count",
	})
)

func Init() {
	prometheus.MustRegister(
		CheckoutLatency,
		OrdersPlaced,
		OversoldProducts,
	)
}
