package facter

import (
	"bufio"
	"runtime"
	"strings"

	"github.com/hostfacts/facter-cli/internal/core/domain"
)

// separator splits a fact line into name and value.
const separator = " => "

// lineSeparator joins continuation lines with the host convention.
func lineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// parsePairs parses facter's plain "key => value" output in a single
// pass. A line containing the separator opens a new fact; a line
// without it continues the previous fact's value, with internal line
// breaks preserved. Pairs are emitted in the order keys first appear.
//
// A continuation line before any key has been opened is malformed and
// fails immediately with a ParseError.
func parsePairs(text string) ([]domain.Entry, error) {
	var (
		pairs   []domain.Entry
		current string
		value   []string
		open    bool
		lineNo  int
	)

	flush := func() {
		if open {
			pairs = append(pairs, domain.Entry{
				Name:  current,
				Value: strings.Join(value, lineSeparator()),
			})
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLength)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		name, rest, found := strings.Cut(line, separator)
		if !found {
			if !open {
				return nil, &ParseError{Line: lineNo}
			}
			value = append(value, line)
			continue
		}

		flush()
		current = name
		value = []string{rest}
		open = true
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	flush()
	return pairs, nil
}

// maxLineLength bounds a single output line; facter values can carry
// whole file contents from external facts.
const maxLineLength = 1024 * 1024
