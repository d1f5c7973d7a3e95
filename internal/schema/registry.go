// Package schema holds the object-class registry. The engine itself is
// payload-opaque; everything class-specific - the set of valid class names,
// the shareable flag for base data, and optional JSON Schema validation of
// payloads - lives here and is consulted at the transport boundary.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/tuckersync/tucker-sync/internal/config"
)

var (
	// ErrUnknownClass is returned when a request references an object class
	// that was never registered.
	ErrUnknownClass = errors.New("unknown object class")

	// ErrNotShareable is returned when base data is requested for a class
	// not marked shareable.
	ErrNotShareable = errors.New("object class is not shareable")

	// ErrInvalidPayload is returned when a payload fails its class schema.
	ErrInvalidPayload = errors.New("payload does not match object class schema")
)

// Class is one registered object class.
type Class struct {
	Name      string
	Shareable bool

	// schema is nil when the class declared no payload schema; payloads are
	// then accepted as-is.
	schema *jsonschema.Schema
}

// Registry resolves object-class names to their registered configuration.
// It is immutable after construction and safe for concurrent use.
type Registry struct {
	classes map[string]*Class
}

// NewRegistry compiles the configured object classes. Schemas are compiled
// once here so a malformed schema fails startup rather than a request.
func NewRegistry(cfgs []config.ObjectClass) (*Registry, error) {
	classes := make(map[string]*Class, len(cfgs))

	for _, cfg := range cfgs {
		class := &Class{
			Name:      cfg.Name,
			Shareable: cfg.Shareable,
		}

		if cfg.PayloadSchema != "" {
			compiled, err := compileSchema(cfg.Name, cfg.PayloadSchema)
			if err != nil {
				return nil, fmt.Errorf("object class %q: %w", cfg.Name, err)
			}
			class.schema = compiled
		}

		classes[cfg.Name] = class
	}

	return &Registry{classes: classes}, nil
}

func compileSchema(name, rawSchema string) (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(rawSchema))
	if err != nil {
		return nil, fmt.Errorf("error parsing payload schema: %w", err)
	}

	resource := name + ".schema.json"
	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource(resource, doc); err != nil {
		return nil, fmt.Errorf("error adding payload schema resource: %w", err)
	}

	compiled, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("error compiling payload schema: %w", err)
	}

	return compiled, nil
}

// Lookup resolves a class name.
func (r *Registry) Lookup(name string) (*Class, error) {
	class, ok := r.classes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}
	return class, nil
}

// LookupShareable resolves a class name and additionally requires the
// shareable flag, for the unauthenticated base-data feed.
func (r *Registry) LookupShareable(name string) (*Class, error) {
	class, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	if !class.Shareable {
		return nil, fmt.Errorf("%w: %q", ErrNotShareable, name)
	}
	return class, nil
}

// ValidatePayload checks raw against the class schema, if one is declared.
// A nil or empty payload is only valid when the class has no schema.
func (c *Class) ValidatePayload(raw json.RawMessage) error {
	if c.schema == nil {
		return nil
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if err = c.schema.Validate(instance); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return nil
}
