// Package metrics exposes Prometheus counters for the planner.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector the service records to
type Metrics struct {
	registry *prometheus.Registry

	CatalogViews        *prometheus.CounterVec
	FilterRejections    *prometheus.CounterVec
	ShoppingAggregation prometheus.Counter
	ShoppingExports     *prometheus.CounterVec
	GoalCompletions     *prometheus.CounterVec
	HTTPRequests        *prometheus.CounterVec
}

// New registers the collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		CatalogViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mealplanner_catalog_views_total",
			Help: "Catalog views served, by whether a profile was applied.",
		}, []string{"mode"}),
		FilterRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mealplanner_filter_rejections_total",
			Help: "Recipes rejected by the dietary filter, by rule.",
		}, []string{"rule"}),
		ShoppingAggregation: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mealplanner_shopping_aggregations_total",
			Help: "Shopping lists built.",
		}),
		ShoppingExports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mealplanner_shopping_exports_total",
			Help: "Shopping list exports, by destination.",
		}, []string{"destination"}),
		GoalCompletions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mealplanner_goal_completions_total",
			Help: "Goals completed, by category.",
		}, []string{"category"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mealplanner_http_requests_total",
			Help: "HTTP requests, by route and status code.",
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.CatalogViews,
		m.FilterRejections,
		m.ShoppingAggregation,
		m.ShoppingExports,
		m.GoalCompletions,
		m.HTTPRequests,
	)
	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
