package driving

import (
	"context"

	"github.com/hostfacts/facter-cli/internal/core/domain"
)

// FactStore is the dictionary-like read surface over a fact source.
// It replaces the duck-typed associative access of the historical
// implementation with an explicit interface.
//
// A FactStore holds at most one memoized fact set. It is not safe for
// concurrent use; callers needing concurrent access must synchronize
// externally or hold separate instances.
type FactStore interface {
	// Lookup returns the value of a fact, serving from the cache when
	// one is held. Absent facts fail with domain.ErrFactNotFound.
	Lookup(ctx context.Context, name string) (any, error)

	// LookupFresh bypasses the cache and queries the tool directly
	// for one fact. A nil or empty-string result fails with
	// domain.ErrFactNotFound. The result is not cached.
	LookupFresh(ctx context.Context, name string) (any, error)

	// Get is Lookup with a default: it returns def instead of
	// failing when the fact is absent. Infrastructure failures still
	// surface as errors.
	Get(ctx context.Context, name string, def any) (any, error)

	// All returns the full fact set: the cached map when caching is
	// enabled and populated (callers must treat it as read-only),
	// otherwise one fresh fetch.
	All(ctx context.Context) (domain.FactSet, error)

	// Keys returns the fact names from the current snapshot, sorted.
	Keys(ctx context.Context) ([]string, error)

	// Values returns the fact values from the current snapshot, in
	// Keys order.
	Values(ctx context.Context) ([]any, error)

	// Items returns name/value pairs from the current snapshot, in
	// Keys order. The slice is freshly computed at call time, not a
	// live view.
	Items(ctx context.Context) ([]domain.Entry, error)

	// JSON serializes All to canonical JSON.
	JSON(ctx context.Context) ([]byte, error)

	// BuildCache fetches the full fact set and stores it as the
	// cache, storing an empty set if the fetch produced nothing.
	BuildCache(ctx context.Context) error

	// ClearCache discards any held fact set.
	ClearCache()

	// HasCache reports whether a cache is available for reads. When
	// caching is disabled it reports false without side effects;
	// otherwise it builds the cache on demand.
	HasCache(ctx context.Context) (bool, error)
}
