package annotations

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/toyz/sigmatch/internal/errors"
)

// Registry manages directive schemas
type Registry struct {
	mu      sync.RWMutex
	schemas map[DirectiveKind]DirectiveSchema
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[DirectiveKind]DirectiveSchema),
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the global registry with the built-in directive
// schemas registered
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		for _, schema := range []DirectiveSchema{
			EventDirectiveSchema,
			SignalArgDirectiveSchema,
			MethodReturnDirectiveSchema,
		} {
			if err := defaultRegistry.Register(schema); err != nil {
				panic(fmt.Sprintf("registering built-in schema %s: %v", schema.Kind, err))
			}
		}
	})
	return defaultRegistry
}

// Register adds a directive schema to the registry
func (r *Registry) Register(schema DirectiveSchema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[schema.Kind]; exists {
		return fmt.Errorf("directive kind %s is already registered", schema.Kind)
	}
	r.schemas[schema.Kind] = schema
	return nil
}

// Schema retrieves the schema for a directive kind
func (r *Registry) Schema(kind DirectiveKind) (DirectiveSchema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schema, exists := r.schemas[kind]
	return schema, exists
}

// Validate checks a parsed directive against its registered schema: unknown
// parameters, missing required parameters, and per-parameter validators
func (r *Registry) Validate(d *ParsedDirective) error {
	schema, exists := r.Schema(d.Kind)
	if !exists {
		return errors.Newf(errors.DirectiveValidationErrorCode,
			"%s: no schema registered for directive kind %s", d.Location, d.Kind)
	}

	for key, value := range d.Params {
		spec, known := schema.Parameters[key]
		if !known {
			return errors.Newf(errors.DirectiveValidationErrorCode,
				"%s: unknown parameter -%s for //sigmatch::%s", d.Location, key, d.Kind).
				WithHint("known parameters: %s", strings.Join(parameterNames(schema), ", "))
		}
		if spec.Validator != nil {
			if err := spec.Validator(value); err != nil {
				return errors.Wrapf(errors.DirectiveValidationErrorCode, err,
					"%s: invalid value for -%s", d.Location, key)
			}
		}
	}

	for key, spec := range schema.Parameters {
		if spec.Required && !d.Has(key) {
			return errors.Newf(errors.DirectiveValidationErrorCode,
				"%s: //sigmatch::%s requires parameter -%s", d.Location, d.Kind, key).
				WithHint("%s", spec.Description)
		}
	}

	return nil
}

func parameterNames(schema DirectiveSchema) []string {
	names := make([]string, 0, len(schema.Parameters))
	for name := range schema.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
