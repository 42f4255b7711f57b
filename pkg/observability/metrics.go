package observability

import (
	"time"

	"github.com/aretw0/folio/pkg/layout"
	"github.com/aretw0/folio/pkg/markup"
	"github.com/aretw0/folio/pkg/modifier"
	"github.com/prometheus/client_golang/prometheus"
)

// Resolution sources reported by Metrics.
const (
	SourceExplicit = "explicit"
	SourceDefault  = "default"
)

// Metrics holds the Folio collectors.
type Metrics struct {
	modifierCalls    *prometheus.CounterVec
	modifierDuration *prometheus.HistogramVec
	defaultLookups   *prometheus.CounterVec
	resolutions      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		modifierCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_modifier_body_calls_total",
				Help: "Total number of modifier Body invocations",
			},
			[]string{"modifier"},
		),
		modifierDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "folio_modifier_body_duration_seconds",
				Help:    "Duration of modifier Body invocations",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"modifier"},
		),
		defaultLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_default_layout_lookups_total",
				Help: "Total number of default layout lookups on the publishing context",
			},
			[]string{"layout"},
		),
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_layout_resolutions_total",
				Help: "Layout resolutions by source (explicit or default)",
			},
			[]string{"source", "layout"},
		),
	}

	for _, c := range []prometheus.Collector{m.modifierCalls, m.modifierDuration, m.defaultLookups, m.resolutions} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Modifier decorates mod so every Body call is counted and timed under name.
func (m *Metrics) Modifier(name string, mod modifier.Modifier) modifier.Modifier {
	return modifier.Func(func(content markup.Node) markup.Node {
		start := time.Now()
		out := mod.Body(content)
		m.modifierCalls.WithLabelValues(name).Inc()
		m.modifierDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		return out
	})
}

// Context decorates ctx so every default lookup is counted by layout name.
// A nil ctx answers layout.Missing.
func (m *Metrics) Context(ctx layout.PublishingContext) layout.PublishingContext {
	return layout.ContextFunc(func() layout.Layout {
		l := layout.Missing
		if ctx != nil {
			l = ctx.DefaultLayout()
		}
		name := ""
		if !layout.IsMissing(l) {
			name = l.Name()
		}
		m.defaultLookups.WithLabelValues(name).Inc()
		return l
	})
}

// ObservePage resolves the page's layout and records where it came from.
// A nil page resolves to layout.Missing and is not recorded.
func (m *Metrics) ObservePage(p *layout.Page) layout.Layout {
	if p == nil {
		return layout.Missing
	}
	l := layout.Resolve(p)
	source := SourceDefault
	if p.Explicit() {
		source = SourceExplicit
	}
	m.resolutions.WithLabelValues(source, l.Name()).Inc()
	return l
}
