package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hostfacts/facter-cli/internal/adapters/driven/config/file"
	"github.com/hostfacts/facter-cli/internal/core/domain"
	"github.com/hostfacts/facter-cli/internal/core/ports/driving"
)

// fakeFactStore serves a fixed fact set and records cache activity.
type fakeFactStore struct {
	facts       domain.FactSet
	err         error
	clearCalls  int
	freshCalls  int
	lookupCalls int
}

var _ driving.FactStore = (*fakeFactStore)(nil)

func (f *fakeFactStore) Lookup(_ context.Context, name string) (any, error) {
	f.lookupCalls++
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.facts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrFactNotFound, name)
	}
	return v, nil
}

func (f *fakeFactStore) LookupFresh(ctx context.Context, name string) (any, error) {
	f.freshCalls++
	return f.Lookup(ctx, name)
}

func (f *fakeFactStore) Get(ctx context.Context, name string, def any) (any, error) {
	v, err := f.Lookup(ctx, name)
	if err != nil {
		if notFound(err) {
			return def, nil
		}
		return nil, err
	}
	return v, nil
}

func (f *fakeFactStore) All(_ context.Context) (domain.FactSet, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.facts, nil
}

func (f *fakeFactStore) Keys(ctx context.Context) ([]string, error) {
	facts, err := f.All(ctx)
	if err != nil {
		return nil, err
	}
	return facts.SortedKeys(), nil
}

func (f *fakeFactStore) Values(ctx context.Context) ([]any, error) {
	facts, err := f.All(ctx)
	if err != nil {
		return nil, err
	}
	values := make([]any, 0, len(facts))
	for _, k := range facts.SortedKeys() {
		values = append(values, facts[k])
	}
	return values, nil
}

func (f *fakeFactStore) Items(ctx context.Context) ([]domain.Entry, error) {
	facts, err := f.All(ctx)
	if err != nil {
		return nil, err
	}
	return facts.Entries(), nil
}

func (f *fakeFactStore) JSON(ctx context.Context) ([]byte, error) {
	facts, err := f.All(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(facts)
}

func (f *fakeFactStore) BuildCache(_ context.Context) error { return f.err }
func (f *fakeFactStore) ClearCache()                        { f.clearCalls++ }
func (f *fakeFactStore) HasCache(_ context.Context) (bool, error) {
	return true, f.err
}

// setupTestStore injects a fake fact store and a temp-dir settings
// store, and resets command state afterwards.
func setupTestStore(t *testing.T) *fakeFactStore {
	t.Helper()

	fake := &fakeFactStore{
		facts: domain.FactSet{
			"architecture": "x86_64",
			"kernel":       "Linux",
			"processors":   float64(8),
		},
	}
	factStore = fake

	store, err := file.NewSettingsStore(t.TempDir())
	require.NoError(t, err)
	settingsStore = store

	t.Cleanup(func() {
		factStore = nil
		settingsStore = nil
		rootJSON = false
		jsonCompact = false
		lookupFresh = false
		lookupDefault = ""
	})
	return fake
}

// executeCommand runs the root command with args and captures output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
