// Package metrics exports navigation counters to Prometheus by observing a
// menu system.
package metrics

import (
	"math"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/san-kum/dialnav/internal/menu"
)

const namespace = "dialnav"

// Collector is a menu.Observer backed by Prometheus counters.
type Collector struct {
	activations *prometheus.CounterVec
	turns       *prometheus.CounterVec
	distance    *prometheus.CounterVec
	items       *prometheus.CounterVec
	daydreams   prometheus.Counter
}

var _ menu.Observer = (*Collector)(nil)

func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		activations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "menu_activations_total",
			Help:      "Menus brought into view, by direction.",
		}, []string{"menu", "direction"}),
		turns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Dial turn events received.",
		}, []string{"menu"}),
		distance: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turn_distance_total",
			Help:      "Absolute dial travel in radians.",
		}, []string{"menu"}),
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "item_events_total",
			Help:      "Item handler dispatches, by event.",
		}, []string{"menu", "item", "event"}),
		daydreams: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "daydreams_total",
			Help:      "Times the display went idle.",
		}),
	}
	reg.MustRegister(c.activations, c.turns, c.distance, c.items, c.daydreams)
	return c
}

// NewRegistry returns a registry with a fresh Collector registered on it.
func NewRegistry() (*prometheus.Registry, *Collector) {
	reg := prometheus.NewRegistry()
	return reg, New(reg)
}

// Handler serves the metrics gathered by reg.
func Handler(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func (c *Collector) MenuActivated(m *menu.Menu, push bool) {
	dir := "pop"
	if push {
		dir = "push"
	}
	c.activations.WithLabelValues(m.Name, dir).Inc()
}

func (c *Collector) Turned(m *menu.Menu, amount float64) {
	c.turns.WithLabelValues(m.Name).Inc()
	c.distance.WithLabelValues(m.Name).Add(math.Abs(amount))
}

func (c *Collector) ItemSelected(m *menu.Menu, it *menu.Item)   { c.item(m, it, "select") }
func (c *Collector) ItemDeselected(m *menu.Menu, it *menu.Item) { c.item(m, it, "deselect") }
func (c *Collector) ItemPressed(m *menu.Menu, it *menu.Item)    { c.item(m, it, "press") }
func (c *Collector) ItemReleased(m *menu.Menu, it *menu.Item)   { c.item(m, it, "release") }
func (c *Collector) ItemActivated(m *menu.Menu, it *menu.Item)  { c.item(m, it, "activate") }

func (c *Collector) item(m *menu.Menu, it *menu.Item, event string) {
	c.items.WithLabelValues(m.Name, it.Name, event).Inc()
}

// Daydreamed counts a transition into the idle display.
func (c *Collector) Daydreamed() {
	c.daydreams.Inc()
}
