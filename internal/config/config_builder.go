package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder accumulates partial configurations from the supported
// sources and merges them into one [StructuredConfig]. Earlier layers win:
// a field already set by env is not overwritten by flags or JSON.
type configBuilder struct {
	layers []*StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]*StructuredConfig, 0, 3)}
}

func (b *configBuilder) withEnv() *configBuilder {
	layer := &StructuredConfig{}
	if err := parseEnv(layer); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, layer)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.layers = append(b.layers, ParseFlags())
	return b
}

// withJSON loads the JSON file layer when a path was supplied by any earlier
// source. Absent a path the layer is skipped.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			path = layer.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	layer, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, layer)
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error collecting config sources: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging config layers: %w", err)
		}
	}

	return merged, merged.validate()
}
