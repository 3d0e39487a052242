// Package metrics holds the Prometheus collectors for the render pipeline
// and the figure server.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vk/stockgraph/internal/graph"
	"github.com/vk/stockgraph/internal/nodeid"
)

// Metrics groups the collectors registered on one registry.
type Metrics struct {
	GraphNodes     *prometheus.GaugeVec
	GraphEdges     prometheus.Gauge
	LayoutDuration *prometheus.HistogramVec
	RenderDuration *prometheus.HistogramVec
	Renders        *prometheus.CounterVec
	HTTPRequests   *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		GraphNodes: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "stockgraph_graph_nodes",
			Help: "Nodes in the current graph by kind",
		}, []string{"kind"}),
		GraphEdges: factory.NewGauge(prometheus.GaugeOpts{
			Name: "stockgraph_graph_edges",
			Help: "Edges in the current graph",
		}),
		LayoutDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stockgraph_layout_duration_seconds",
			Help:    "Time to compute node positions",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"layout"}),
		RenderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stockgraph_render_duration_seconds",
			Help:    "Time to encode a figure",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10},
		}, []string{"format"}),
		Renders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stockgraph_renders_total",
			Help: "Figures encoded by format and outcome",
		}, []string{"format", "outcome"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stockgraph_http_requests_total",
			Help: "Figure server requests by route and status code",
		}, []string{"route", "code"}),
	}
}

// ObserveGraph records the node counts per kind and the edge count of g.
func (m *Metrics) ObserveGraph(g *graph.Graph) {
	p := graph.PartitionGraph(g)
	for _, kind := range nodeid.Kinds {
		m.GraphNodes.WithLabelValues(kind.String()).Set(float64(len(p.Of(kind))))
	}
	m.GraphEdges.Set(float64(g.EdgeCount()))
}

// ObserveLayout records how long a layout took.
func (m *Metrics) ObserveLayout(name string, d time.Duration) {
	m.LayoutDuration.WithLabelValues(name).Observe(d.Seconds())
}

// ObserveRender records one encode of the given format.
func (m *Metrics) ObserveRender(format string, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Renders.WithLabelValues(format, outcome).Inc()
	m.RenderDuration.WithLabelValues(format).Observe(d.Seconds())
}
