package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hostfacts/facter-cli/internal/core/domain"
	"github.com/hostfacts/facter-cli/internal/core/ports/driven"
	"github.com/hostfacts/facter-cli/internal/core/ports/driving"
)

// Ensure FactService implements the interface.
var _ driving.FactStore = (*FactService)(nil)

// FactService exposes a fact source through dictionary-like reads
// with a one-slot memoization cache.
//
// The cache slot is absent until first access and invalidated only by
// ClearCache or by reading through LookupFresh. With caching disabled
// no fact set is ever retained across calls. FactService has no
// locking discipline: one instance, one goroutine.
type FactService struct {
	source       driven.FactSource
	cacheEnabled bool

	// cache is nil when absent. An empty but non-nil map counts as a
	// populated cache.
	cache domain.FactSet
}

// NewFactService creates a fact service over the given source.
func NewFactService(source driven.FactSource, cacheEnabled bool) *FactService {
	return &FactService{
		source:       source,
		cacheEnabled: cacheEnabled,
	}
}

// Lookup returns the value of a fact, served from the cache when one
// is available.
func (s *FactService) Lookup(ctx context.Context, name string) (any, error) {
	ok, err := s.HasCache(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return s.LookupFresh(ctx, name)
	}

	v, ok := s.cache[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrFactNotFound, name)
	}
	return v, nil
}

// LookupFresh queries the source directly for one fact, bypassing and
// not touching the cache. The historical adapter conflated nil and
// empty-string results with absence on this path; that behaviour is
// kept.
func (s *FactService) LookupFresh(ctx context.Context, name string) (any, error) {
	v, err := s.source.FetchFact(ctx, name)
	if err != nil {
		return nil, err
	}
	if v == nil || v == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrFactNotFound, name)
	}
	return v, nil
}

// Get returns the value of a fact, or def when the fact is absent.
func (s *FactService) Get(ctx context.Context, name string, def any) (any, error) {
	v, err := s.Lookup(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrFactNotFound) {
			return def, nil
		}
		return nil, err
	}
	return v, nil
}

// All returns the full fact set. The cached map is returned directly
// when available; callers must treat it as read-only.
func (s *FactService) All(ctx context.Context) (domain.FactSet, error) {
	ok, err := s.HasCache(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		facts, err := s.source.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		if facts == nil {
			facts = domain.FactSet{}
		}
		return facts, nil
	}
	return s.cache, nil
}

// Keys returns the sorted fact names of the current snapshot.
func (s *FactService) Keys(ctx context.Context) ([]string, error) {
	facts, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return facts.SortedKeys(), nil
}

// Values returns the fact values of the current snapshot, in Keys order.
func (s *FactService) Values(ctx context.Context) ([]any, error) {
	facts, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	values := make([]any, 0, len(facts))
	for _, k := range facts.SortedKeys() {
		values = append(values, facts[k])
	}
	return values, nil
}

// Items returns name/value pairs of the current snapshot, in Keys order.
func (s *FactService) Items(ctx context.Context) ([]domain.Entry, error) {
	facts, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return facts.Entries(), nil
}

// JSON serializes the current snapshot to JSON.
func (s *FactService) JSON(ctx context.Context) ([]byte, error) {
	facts, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(facts)
}

// BuildCache fetches the full fact set and stores it. A fetch that
// produced no mapping stores an empty one; the cache never holds a
// non-map.
func (s *FactService) BuildCache(ctx context.Context) error {
	facts, err := s.source.Fetch(ctx)
	if err != nil {
		return err
	}
	if facts == nil {
		facts = domain.FactSet{}
	}
	s.cache = facts
	return nil
}

// ClearCache discards any held fact set.
func (s *FactService) ClearCache() {
	s.cache = nil
}

// HasCache reports whether cached reads are possible, building the
// cache on demand. With caching disabled it reports false and has no
// side effects.
func (s *FactService) HasCache(ctx context.Context) (bool, error) {
	if !s.cacheEnabled {
		return false, nil
	}
	if s.cache == nil {
		if err := s.BuildCache(ctx); err != nil {
			return false, err
		}
	}
	return true, nil
}
