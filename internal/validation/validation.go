// Package validation checks request payloads against the embedded JSON
// Schemas before they are decoded into model types.
package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Schema names, one per payload type.
const (
	AddressCreate      = "address_create"
	AddressUpdate      = "address_update"
	PersonCreate       = "person_create"
	PersonUpdate       = "person_update"
	OrganizationCreate = "organization_create"
	OrganizationUpdate = "organization_update"
	ProjectCreate      = "project_create"
	ProjectUpdate      = "project_update"
)

const schemaBaseURL = "mem://records/schemas/"

// Validator validates payloads against the compiled schemas. It is safe for
// concurrent use.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

// NewValidator compiles every embedded schema.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("failed to read schemas: %w", err)
	}

	var names []string
	for _, entry := range entries {
		data, err := schemaFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", entry.Name(), err)
		}
		if err := compiler.AddResource(schemaBaseURL+entry.Name(), bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to add schema resource %s: %w", entry.Name(), err)
		}
		names = append(names, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
	}

	v := &Validator{schemas: make(map[string]*jsonschema.Schema, len(names))}
	for _, name := range names {
		schema, err := compiler.Compile(schemaBaseURL + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		v.schemas[name] = schema
	}

	return v, nil
}

// Validate checks an already decoded JSON document (as produced by
// json.Unmarshal into an any) against the named schema. A failure is
// returned as *Error.
func (v *Validator) Validate(name string, doc any) error {
	schema, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	err := schema.Validate(doc)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return &Error{Errors: []FieldError{{Code: CodeSchema, Message: err.Error()}}}
	}

	result := &Error{}
	collectErrors(validationErr, result)
	return result
}

// Decode validates the raw JSON body against the named schema and, when it
// passes, unmarshals it into dst. Only properties declared by the schema reach
// dst, so keys that differ from a declared property by case alone are dropped
// instead of being matched by encoding/json's case-insensitive field lookup.
func (v *Validator) Decode(name string, data []byte, dst any) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return &Error{Errors: []FieldError{{Code: CodeInvalidJSON, Message: err.Error()}}}
	}

	if err := v.Validate(name, doc); err != nil {
		return err
	}

	pruned, err := json.Marshal(prune(v.schemas[name], doc))
	if err != nil {
		return fmt.Errorf("failed to encode validated document: %w", err)
	}

	if err := json.Unmarshal(pruned, dst); err != nil {
		return &Error{Errors: []FieldError{{Code: CodeType, Message: err.Error()}}}
	}

	return nil
}

// prune returns doc with every object key not declared in the matching
// schema's properties removed, following $ref and array items.
func prune(schema *jsonschema.Schema, doc any) any {
	for schema != nil && schema.Ref != nil {
		schema = schema.Ref
	}
	if schema == nil {
		return doc
	}

	switch d := doc.(type) {
	case map[string]any:
		out := make(map[string]any, len(d))
		for key, val := range d {
			prop, ok := schema.Properties[key]
			if !ok {
				continue
			}
			out[key] = prune(prop, val)
		}
		return out
	case []any:
		if schema.Items2020 == nil {
			return d
		}
		out := make([]any, len(d))
		for i, item := range d {
			out[i] = prune(schema.Items2020, item)
		}
		return out
	default:
		return doc
	}
}

// collectErrors flattens the leaf causes of a schema validation error.
func collectErrors(err *jsonschema.ValidationError, result *Error) {
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, FieldError{
			Field:   fieldFromPointer(err.InstanceLocation),
			Code:    codeFromKeyword(err.KeywordLocation),
			Message: err.Message,
		})
		return
	}

	for _, cause := range err.Causes {
		collectErrors(cause, result)
	}
}

// fieldFromPointer converts a JSON Pointer such as /addresses/0/city into
// addresses.0.city.
func fieldFromPointer(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	return strings.ReplaceAll(ptr, "/", ".")
}

func codeFromKeyword(keywordLocation string) string {
	switch path.Base(keywordLocation) {
	case "required":
		return CodeRequired
	case "type":
		return CodeType
	case "format":
		return CodeFormat
	default:
		return CodeSchema
	}
}
