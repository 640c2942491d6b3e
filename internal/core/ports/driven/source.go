package driven

import (
	"context"

	"github.com/hostfacts/facter-cli/internal/core/domain"
)

// FactSource produces fact sets by invoking an external
// system-inventory tool. Every call blocks until the child process
// exits; there is no background work and no retrying. A failed
// invocation surfaces once, immediately.
type FactSource interface {
	// Fetch runs the tool without a fact argument and returns the
	// complete fact set. The returned map is freshly allocated on
	// every call.
	Fetch(ctx context.Context) (domain.FactSet, error)

	// FetchFact runs the tool for a single named fact. A fact the
	// tool does not know yields (nil, nil) on the structured path and
	// an empty string on the text path; callers decide whether that
	// constitutes "not found".
	FetchFact(ctx context.Context, name string) (any, error)
}
