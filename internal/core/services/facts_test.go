package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostfacts/facter-cli/internal/core/domain"
	"github.com/hostfacts/facter-cli/internal/core/ports/driven"
)

// fakeSource scripts FactSource responses and counts invocations.
type fakeSource struct {
	facts      domain.FactSet
	factValues map[string]any
	err        error

	fetchCalls     int
	fetchFactCalls int
}

var _ driven.FactSource = (*fakeSource)(nil)

func (f *fakeSource) Fetch(_ context.Context) (domain.FactSet, error) {
	f.fetchCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.facts, nil
}

func (f *fakeSource) FetchFact(_ context.Context, name string) (any, error) {
	f.fetchFactCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.factValues[name], nil
}

func newTestSource() *fakeSource {
	return &fakeSource{
		facts: domain.FactSet{
			"architecture": "x86_64",
			"kernel":       "Linux",
			"processors":   float64(8),
		},
		factValues: map[string]any{
			"architecture": "x86_64",
			"kernel":       "Linux",
		},
	}
}

func TestNewFactService(t *testing.T) {
	service := NewFactService(newTestSource(), true)

	require.NotNil(t, service)
	assert.Nil(t, service.cache)
}

func TestFactService_Lookup(t *testing.T) {
	ctx := context.Background()

	t.Run("cached lookups invoke the source once", func(t *testing.T) {
		source := newTestSource()
		service := NewFactService(source, true)

		v1, err := service.Lookup(ctx, "architecture")
		require.NoError(t, err)
		v2, err := service.Lookup(ctx, "architecture")
		require.NoError(t, err)

		assert.Equal(t, "x86_64", v1)
		assert.Equal(t, "x86_64", v2)
		assert.Equal(t, 1, source.fetchCalls)
		assert.Zero(t, source.fetchFactCalls)
	})

	t.Run("absent fact fails with ErrFactNotFound", func(t *testing.T) {
		service := NewFactService(newTestSource(), true)

		_, err := service.Lookup(ctx, "no_such_fact")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFactNotFound)
		assert.Contains(t, err.Error(), "no_such_fact")
	})

	t.Run("caching disabled queries the source every time", func(t *testing.T) {
		source := newTestSource()
		service := NewFactService(source, false)

		_, err := service.Lookup(ctx, "kernel")
		require.NoError(t, err)
		_, err = service.Lookup(ctx, "kernel")
		require.NoError(t, err)

		assert.Zero(t, source.fetchCalls)
		assert.Equal(t, 2, source.fetchFactCalls)
		assert.Nil(t, service.cache)
	})

	t.Run("source failure surfaces", func(t *testing.T) {
		source := &fakeSource{err: errors.New("facter exploded")}
		service := NewFactService(source, true)

		_, err := service.Lookup(ctx, "kernel")

		assert.ErrorContains(t, err, "facter exploded")
	})
}

func TestFactService_LookupFresh(t *testing.T) {
	ctx := context.Background()

	t.Run("bypasses the cache", func(t *testing.T) {
		source := newTestSource()
		service := NewFactService(source, true)
		require.NoError(t, service.BuildCache(ctx))

		_, err := service.LookupFresh(ctx, "kernel")
		require.NoError(t, err)

		assert.Equal(t, 1, source.fetchFactCalls)
	})

	t.Run("nil result is not found", func(t *testing.T) {
		service := NewFactService(newTestSource(), true)

		_, err := service.LookupFresh(ctx, "no_such_fact")

		assert.ErrorIs(t, err, domain.ErrFactNotFound)
	})

	t.Run("empty string result is not found", func(t *testing.T) {
		source := newTestSource()
		source.factValues["blank"] = ""
		service := NewFactService(source, true)

		_, err := service.LookupFresh(ctx, "blank")

		assert.ErrorIs(t, err, domain.ErrFactNotFound)
	})
}

func TestFactService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the value when present", func(t *testing.T) {
		service := NewFactService(newTestSource(), true)

		v, err := service.Get(ctx, "kernel", "fallback")

		require.NoError(t, err)
		assert.Equal(t, "Linux", v)
	})

	t.Run("returns the default when absent", func(t *testing.T) {
		service := NewFactService(newTestSource(), true)

		v, err := service.Get(ctx, "no_such_fact", "fallback")

		require.NoError(t, err)
		assert.Equal(t, "fallback", v)
	})

	t.Run("nil default is allowed", func(t *testing.T) {
		service := NewFactService(newTestSource(), true)

		v, err := service.Get(ctx, "no_such_fact", nil)

		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("infrastructure failures still surface", func(t *testing.T) {
		source := &fakeSource{err: errors.New("boom")}
		service := NewFactService(source, true)

		_, err := service.Get(ctx, "kernel", "fallback")

		assert.Error(t, err)
	})
}

func TestFactService_All(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the cached map by reference", func(t *testing.T) {
		source := newTestSource()
		service := NewFactService(source, true)

		first, err := service.All(ctx)
		require.NoError(t, err)
		second, err := service.All(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, source.fetchCalls)
		assert.Equal(t, first, second)
	})

	t.Run("caching disabled fetches fresh each call", func(t *testing.T) {
		source := newTestSource()
		service := NewFactService(source, false)

		_, err := service.All(ctx)
		require.NoError(t, err)
		_, err = service.All(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, source.fetchCalls)
	})

	t.Run("nil fetch result becomes empty set", func(t *testing.T) {
		service := NewFactService(&fakeSource{}, false)

		facts, err := service.All(ctx)

		require.NoError(t, err)
		require.NotNil(t, facts)
		assert.Empty(t, facts)
	})
}

func TestFactService_Projections(t *testing.T) {
	ctx := context.Background()

	t.Run("keys are sorted", func(t *testing.T) {
		service := NewFactService(newTestSource(), true)

		keys, err := service.Keys(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"architecture", "kernel", "processors"}, keys)
	})

	t.Run("values follow key order", func(t *testing.T) {
		service := NewFactService(newTestSource(), true)

		values, err := service.Values(ctx)

		require.NoError(t, err)
		assert.Equal(t, []any{"x86_64", "Linux", float64(8)}, values)
	})

	t.Run("items pair names with values", func(t *testing.T) {
		service := NewFactService(newTestSource(), true)

		items, err := service.Items(ctx)

		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, domain.Entry{Name: "architecture", Value: "x86_64"}, items[0])
	})

	t.Run("projections are snapshots, not live views", func(t *testing.T) {
		source := newTestSource()
		service := NewFactService(source, true)

		keys, err := service.Keys(ctx)
		require.NoError(t, err)

		// Mutating the underlying source does not change an
		// already-produced slice.
		source.facts["late_fact"] = true
		assert.Len(t, keys, 3)
	})
}

func TestFactService_JSON(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips to the full fact set", func(t *testing.T) {
		service := NewFactService(newTestSource(), true)

		data, err := service.JSON(ctx)
		require.NoError(t, err)

		var decoded domain.FactSet
		require.NoError(t, json.Unmarshal(data, &decoded))

		all, err := service.All(ctx)
		require.NoError(t, err)
		assert.Equal(t, all, decoded)
	})
}

func TestFactService_CacheManagement(t *testing.T) {
	ctx := context.Background()

	t.Run("clear then read rebuilds exactly once", func(t *testing.T) {
		source := newTestSource()
		service := NewFactService(source, true)

		_, err := service.Lookup(ctx, "kernel")
		require.NoError(t, err)

		service.ClearCache()

		_, err = service.Lookup(ctx, "kernel")
		require.NoError(t, err)
		_, err = service.Lookup(ctx, "architecture")
		require.NoError(t, err)

		assert.Equal(t, 2, source.fetchCalls)
	})

	t.Run("HasCache without caching has no side effects", func(t *testing.T) {
		source := newTestSource()
		service := NewFactService(source, false)

		ok, err := service.HasCache(ctx)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, source.fetchCalls)
	})

	t.Run("BuildCache failure leaves no cache", func(t *testing.T) {
		source := &fakeSource{err: errors.New("boom")}
		service := NewFactService(source, true)

		err := service.BuildCache(ctx)

		assert.Error(t, err)
		assert.Nil(t, service.cache)
	})

	t.Run("empty fact set still counts as a populated cache", func(t *testing.T) {
		source := &fakeSource{facts: domain.FactSet{}}
		service := NewFactService(source, true)

		require.NoError(t, service.BuildCache(ctx))

		ok, err := service.HasCache(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 1, source.fetchCalls)
	})
}
