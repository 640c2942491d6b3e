package facter

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/hostfacts/facter-cli/internal/core/domain"
	"github.com/hostfacts/facter-cli/internal/core/ports/driven"
	"github.com/hostfacts/facter-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.FactSource = (*Source)(nil)

// Source invokes the facter executable and decodes its output.
// Construction performs no I/O; the executable is resolved by the
// operating system on first use.
type Source struct {
	settings domain.Settings
	runner   CommandRunner
	decoders []decoder
	limiter  *rate.Limiter
}

// New creates a facter-backed fact source.
func New(settings domain.Settings) *Source {
	return NewWithRunner(settings, execRunner{})
}

// NewWithRunner creates a source with a custom process runner.
// Tests use this to script facter's behaviour without a child process.
func NewWithRunner(settings domain.Settings, runner CommandRunner) *Source {
	var limiter *rate.Limiter
	if settings.MinInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(settings.MinInterval), 1)
	}
	return &Source{
		settings: settings,
		runner:   runner,
		decoders: defaultDecoders(),
		limiter:  limiter,
	}
}

// Fetch returns the complete fact set.
func (s *Source) Fetch(ctx context.Context) (domain.FactSet, error) {
	v, err := s.query(ctx, "")
	if err != nil {
		return nil, err
	}
	facts, _ := v.(domain.FactSet)
	return facts, nil
}

// FetchFact returns the value of a single fact. Structured decoding
// yields a typed value (nil when the tool does not know the fact);
// the text fallback yields the trimmed raw output.
func (s *Source) FetchFact(ctx context.Context, name string) (any, error) {
	return s.query(ctx, name)
}

// query runs the decoder strategies in order. Failures of structured
// strategies are swallowed; the final strategy's failure is the call's
// failure. key is empty for a full fact set request.
func (s *Source) query(ctx context.Context, key string) (any, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, &ExecError{Path: s.settings.FacterPath, Err: err}
		}
	}

	// One ID per logical query correlates the structured attempts
	// with their fallback in debug logs.
	runID := uuid.NewString()[:8]

	for i, dec := range s.decoders {
		last := i == len(s.decoders)-1

		args := s.args(dec, key)
		logger.Debug("query %s: running %s %v", runID, s.settings.FacterPath, args)

		res, err := s.run(ctx, args)
		if err != nil {
			if !last {
				logger.Debug("query %s: %s attempt did not launch: %v", runID, dec.name(), err)
				continue
			}
			if isNotFoundErr(err) {
				return nil, &ExecError{
					Path: s.settings.FacterPath,
					Err:  fmt.Errorf("%w: %v", domain.ErrFacterNotFound, err),
				}
			}
			return nil, &ExecError{Path: s.settings.FacterPath, Err: err}
		}
		if res.ExitCode != 0 {
			if !last {
				logger.Debug("query %s: %s attempt exited %d", runID, dec.name(), res.ExitCode)
				continue
			}
			return nil, &ExecError{
				Path:     s.settings.FacterPath,
				ExitCode: res.ExitCode,
				Stderr:   string(res.Stderr),
			}
		}

		v, err := s.decode(dec, res.Stdout, key)
		if err != nil {
			if !last {
				logger.Debug("query %s: %s decode failed: %v", runID, dec.name(), err)
				continue
			}
			return nil, err
		}
		return v, nil
	}

	// decoders is never empty; keep the compiler satisfied.
	return nil, &ExecError{Path: s.settings.FacterPath, Err: domain.ErrFacterNotFound}
}

// run executes one facter attempt, bounded by the configured timeout.
func (s *Source) run(ctx context.Context, args []string) (Result, error) {
	if s.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.settings.Timeout)
		defer cancel()
	}
	return s.runner.Run(ctx, s.settings.FacterPath, args)
}

func (s *Source) decode(dec decoder, stdout []byte, key string) (any, error) {
	if key != "" {
		return dec.decodeFact(stdout, key)
	}
	facts, err := dec.decodeAll(stdout)
	if err != nil {
		return nil, err
	}
	return facts, nil
}

// args assembles the argument list: optional namespaces first, then
// the external facts directory, then the decoder's output flag, with
// the requested fact name always last.
func (s *Source) args(dec decoder, key string) []string {
	var args []string
	if s.settings.PuppetFacts {
		args = append(args, "--puppet")
	}
	if s.settings.ExternalDir != "" {
		args = append(args, "--external-dir", s.settings.ExternalDir)
	}
	if s.settings.ShowLegacy {
		args = append(args, "--show-legacy")
	}
	if f := dec.flag(); f != "" {
		args = append(args, f)
	}
	if key != "" {
		args = append(args, key)
	}
	return args
}
