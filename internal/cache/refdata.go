package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const refDataKeyPrefix = "refdata:"

// Metrics counts reference data lookups.
type Metrics struct {
	hits   prometheus.Counter
	misses prometheus.Counter
	errors prometheus.Counter
}

// NewMetrics registers cache collectors with reg.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refdata_cache_hits_total",
			Help:      "Total number of reference data cache hits",
		}),
		misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refdata_cache_misses_total",
			Help:      "Total number of reference data cache misses",
		}),
		errors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refdata_cache_errors_total",
			Help:      "Total number of reference data cache errors",
		}),
	}
}

// RefDataCache keeps reference data categories for a fixed TTL.
type RefDataCache struct {
	store   Store
	ttl     time.Duration
	metrics *Metrics
}

// NewRefDataCache wraps store. metrics may be nil.
func NewRefDataCache(store Store, ttl time.Duration, metrics *Metrics) *RefDataCache {
	return &RefDataCache{store: store, ttl: ttl, metrics: metrics}
}

func (r *RefDataCache) inc(c func(*Metrics) prometheus.Counter) {
	if r != nil && r.metrics != nil {
		c(r.metrics).Inc()
	}
}

// GetOrLoad returns the cached list for category, calling load on a miss.
// Only non-empty lists are cached; cache failures fall through to load.
func GetOrLoad[T any](ctx context.Context, r *RefDataCache, category string, load func(context.Context) ([]T, error)) ([]T, error) {
	if r == nil || r.store == nil || r.ttl <= 0 {
		return load(ctx)
	}

	key := refDataKeyPrefix + category

	if data, ok, err := r.store.Get(ctx, key); err != nil {
		r.inc(func(m *Metrics) prometheus.Counter { return m.errors })
	} else if ok {
		var items []T
		if err := json.Unmarshal(data, &items); err == nil {
			r.inc(func(m *Metrics) prometheus.Counter { return m.hits })
			return items, nil
		}
		r.inc(func(m *Metrics) prometheus.Counter { return m.errors })
	}

	r.inc(func(m *Metrics) prometheus.Counter { return m.misses })

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		if data, err := json.Marshal(items); err == nil {
			if err := r.store.Set(ctx, key, data, r.ttl); err != nil {
				r.inc(func(m *Metrics) prometheus.Counter { return m.errors })
			}
		}
	}

	return items, nil
}
