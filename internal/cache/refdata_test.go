package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type item struct {
	Handle string `json:"handle"`
	Label  string `json:"label"`
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *mockStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func TestGetOrLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("caches non-empty lists", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		metrics := NewMetrics(reg, "test")
		lc := NewLocalCache(&LocalCacheConfig{})
		defer lc.Stop()
		r := NewRefDataCache(lc, time.Hour, metrics)

		calls := 0
		load := func(context.Context) ([]item, error) {
			calls++
			return []item{{Handle: "PHONE", Label: "Paid over the phone"}}, nil
		}

		first, err := GetOrLoad(ctx, r, "paymentSource", load)
		require.NoError(t, err)
		second, err := GetOrLoad(ctx, r, "paymentSource", load)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls)
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.hits))
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.misses))
	})

	t.Run("does not cache empty lists", func(t *testing.T) {
		lc := NewLocalCache(&LocalCacheConfig{})
		defer lc.Stop()
		r := NewRefDataCache(lc, time.Hour, nil)

		calls := 0
		load := func(context.Context) ([]item, error) {
			calls++
			return []item{}, nil
		}

		_, _ = GetOrLoad(ctx, r, "warningType", load)
		_, _ = GetOrLoad(ctx, r, "warningType", load)
		assert.Equal(t, 2, calls)
	})

	t.Run("load errors are returned", func(t *testing.T) {
		lc := NewLocalCache(&LocalCacheConfig{})
		defer lc.Stop()
		r := NewRefDataCache(lc, time.Hour, nil)

		_, err := GetOrLoad(ctx, r, "x", func(context.Context) ([]item, error) {
			return nil, errors.New("boom")
		})
		assert.EqualError(t, err, "boom")
	})

	t.Run("store failures fall through", func(t *testing.T) {
		store := &mockStore{}
		store.On("Get", ctx, "refdata:x").Return([]byte(nil), false, errors.New("down"))
		store.On("Set", ctx, "refdata:x", mock.Anything, time.Hour).Return(errors.New("down"))

		reg := prometheus.NewRegistry()
		metrics := NewMetrics(reg, "test")
		r := NewRefDataCache(store, time.Hour, metrics)

		items, err := GetOrLoad(ctx, r, "x", func(context.Context) ([]item, error) {
			return []item{{Handle: "A"}}, nil
		})
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, float64(2), testutil.ToFloat64(metrics.errors))
		store.AssertExpectations(t)
	})

	t.Run("nil cache always loads", func(t *testing.T) {
		items, err := GetOrLoad(ctx, nil, "x", func(context.Context) ([]item, error) {
			return []item{{Handle: "A"}}, nil
		})
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}
