package model

import (
	"errors"
	"fmt"
	"strings"
)

// FieldSchema is the ordered list of fields a widget exposes for editing.
type FieldSchema []Field

// SchemaError reports a single invariant violation in a FieldSchema.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return "model: schema: " + e.Reason
	}
	return fmt.Sprintf("model: schema %s: %s", e.Path, e.Reason)
}

// Lookup returns the field registered under key.
func (s FieldSchema) Lookup(key string) (Field, bool) {
	for _, field := range s {
		if field.Key == key {
			return field, true
		}
	}
	return Field{}, false
}

// Keys returns the field keys in declaration order.
func (s FieldSchema) Keys() []string {
	keys := make([]string, 0, len(s))
	for _, field := range s {
		keys = append(keys, field.Key)
	}
	return keys
}

// Repeaters returns the repeater fields in declaration order.
func (s FieldSchema) Repeaters() []Field {
	var out []Field
	for _, field := range s {
		if field.IsRepeater() {
			out = append(out, field)
		}
	}
	return out
}

// Validate checks key uniqueness and the one-level nesting rule. All
// violations are reported, joined.
func (s FieldSchema) Validate() error {
	return errors.Join(validateFields(s, "")...)
}

func validateFields(fields []Field, prefix string) []error {
	var errs []error
	seen := make(map[string]struct{}, len(fields))
	for idx, field := range fields {
		key := strings.TrimSpace(field.Key)
		path := joinPath(prefix, key)
		if key == "" {
			errs = append(errs, &SchemaError{Path: joinPath(prefix, fmt.Sprintf("[%d]", idx)), Reason: "key is required"})
			continue
		}
		if _, dup := seen[key]; dup {
			errs = append(errs, &SchemaError{Path: path, Reason: "duplicate key"})
		}
		seen[key] = struct{}{}

		switch field.Kind {
		case FieldKindText:
			if len(field.ItemFields) > 0 || len(field.DefaultItems) > 0 {
				errs = append(errs, &SchemaError{Path: path, Reason: "text field cannot declare items"})
			}
		case FieldKindRepeater:
			if prefix != "" {
				errs = append(errs, &SchemaError{Path: path, Reason: "repeater cannot be nested"})
				continue
			}
			if len(field.ItemFields) == 0 {
				errs = append(errs, &SchemaError{Path: path, Reason: "repeater requires item fields"})
			}
			errs = append(errs, validateFields(field.ItemFields, key)...)
			errs = append(errs, validateDefaultItems(field, path)...)
		default:
			errs = append(errs, &SchemaError{Path: path, Reason: fmt.Sprintf("unknown kind %q", field.Kind)})
		}
	}
	return errs
}

func validateDefaultItems(field Field, path string) []error {
	var errs []error
	known := FieldSchema(field.ItemFields)
	for idx, item := range field.DefaultItems {
		for key := range item {
			if _, ok := known.Lookup(key); !ok {
				errs = append(errs, &SchemaError{
					Path:   fmt.Sprintf("%s[%d].%s", path, idx, key),
					Reason: "default item references unknown field",
				})
			}
		}
	}
	return errs
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
