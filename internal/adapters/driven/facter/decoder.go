package facter

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hostfacts/facter-cli/internal/core/domain"
)

// decoder is one output-decoding strategy. Strategies are tried in a
// fixed order; each one names the facter flag that selects its format.
type decoder interface {
	// name identifies the strategy in debug logs.
	name() string

	// flag is the facter output flag for this format, empty for the
	// plain text default.
	flag() string

	// decodeAll parses a full fact set from stdout.
	decodeAll(out []byte) (domain.FactSet, error)

	// decodeFact parses the response to a single-fact query.
	decodeFact(out []byte, name string) (any, error)
}

// defaultDecoders is the strategy order: JSON preferred, YAML next,
// line-oriented text as the last resort.
func defaultDecoders() []decoder {
	return []decoder{jsonDecoder{}, yamlDecoder{}, textDecoder{}}
}

type jsonDecoder struct{}

func (jsonDecoder) name() string { return "json" }
func (jsonDecoder) flag() string { return "--json" }

func (jsonDecoder) decodeAll(out []byte) (domain.FactSet, error) {
	var facts domain.FactSet
	if err := json.Unmarshal(out, &facts); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if facts == nil {
		return nil, fmt.Errorf("decode json: output is not an object")
	}
	return facts, nil
}

func (d jsonDecoder) decodeFact(out []byte, name string) (any, error) {
	facts, err := d.decodeAll(out)
	if err != nil {
		return nil, err
	}
	return facts[name], nil
}

type yamlDecoder struct{}

func (yamlDecoder) name() string { return "yaml" }
func (yamlDecoder) flag() string { return "--yaml" }

func (yamlDecoder) decodeAll(out []byte) (domain.FactSet, error) {
	var facts map[string]any
	if err := yaml.Unmarshal(out, &facts); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if facts == nil {
		return nil, fmt.Errorf("decode yaml: output is not a mapping")
	}
	return domain.FactSet(facts), nil
}

func (d yamlDecoder) decodeFact(out []byte, name string) (any, error) {
	facts, err := d.decodeAll(out)
	if err != nil {
		return nil, err
	}
	return facts[name], nil
}

type textDecoder struct{}

func (textDecoder) name() string { return "text" }
func (textDecoder) flag() string { return "" }

func (textDecoder) decodeAll(out []byte) (domain.FactSet, error) {
	pairs, err := parsePairs(string(out))
	if err != nil {
		return nil, err
	}
	facts := make(domain.FactSet, len(pairs))
	for _, p := range pairs {
		facts[p.Name] = p.Value
	}
	return facts, nil
}

// decodeFact returns the trimmed raw text: a single-fact query in
// text mode prints just the value.
func (textDecoder) decodeFact(out []byte, _ string) (any, error) {
	return strings.TrimSpace(string(out)), nil
}
