package schema

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-headline/pkg/model"
)

// Extension keys carried on exported schemas.
const (
	ExtPlaceholder   = "x-placeholder"
	ExtTitleTemplate = "x-title-template"
	ExtSection       = "x-section"
)

// OpenAPI converts a field schema into an OpenAPI object schema. Text fields
// become strings with their default; repeaters become arrays of objects
// whose default is the seeded item list.
func OpenAPI(fields model.FieldSchema) *openapi3.Schema {
	root := openapi3.NewObjectSchema()
	for _, field := range fields {
		root.WithProperty(field.Key, fieldSchema(field))
	}
	return root
}

func fieldSchema(field model.Field) *openapi3.Schema {
	if field.IsRepeater() {
		item := openapi3.NewObjectSchema()
		for _, itemField := range field.ItemFields {
			item.WithProperty(itemField.Key, fieldSchema(itemField))
		}
		if field.TitleTemplate != "" {
			item.Extensions = map[string]any{ExtTitleTemplate: field.TitleTemplate}
		}

		defaults := make([]any, 0, len(field.DefaultItems))
		for _, row := range field.DefaultItems {
			entry := make(map[string]any, len(row))
			for key, value := range row {
				entry[key] = value
			}
			defaults = append(defaults, entry)
		}

		array := openapi3.NewArraySchema().WithItems(item).WithDefault(defaults)
		array.Title = field.Label
		withSection(array, field.Section)
		return array
	}

	text := openapi3.NewStringSchema()
	text.Title = field.Label
	if field.Default != "" {
		text.WithDefault(field.Default)
	}
	if field.Placeholder != "" {
		if text.Extensions == nil {
			text.Extensions = make(map[string]any)
		}
		text.Extensions[ExtPlaceholder] = field.Placeholder
	}
	withSection(text, field.Section)
	return text
}

func withSection(s *openapi3.Schema, section string) {
	if section == "" {
		return
	}
	if s.Extensions == nil {
		s.Extensions = make(map[string]any)
	}
	s.Extensions[ExtSection] = section
}

// Validate checks a raw settings document against the exported schema. It
// is meant for hosts accepting edits; the widget itself never validates.
func Validate(fields model.FieldSchema, raw map[string]any) error {
	doc := make(map[string]any, len(raw))
	for key, value := range raw {
		doc[key] = normalize(value)
	}

	if err := OpenAPI(fields).VisitJSON(doc, openapi3.MultiErrors()); err != nil {
		var multi openapi3.MultiError
		if errors.As(err, &multi) && len(multi) > 0 {
			return fmt.Errorf("schema: invalid settings: %w", errors.Join(multi...))
		}
		return fmt.Errorf("schema: invalid settings: %w", err)
	}
	return nil
}

// normalize converts decoder-specific shapes (typed item slices, string
// maps) into the generic JSON shapes VisitJSON expects.
func normalize(value any) any {
	switch v := value.(type) {
	case []model.Item:
		out := make([]any, 0, len(v))
		for _, item := range v {
			out = append(out, normalize(map[string]string(item)))
		}
		return out
	case model.Item:
		return normalize(map[string]string(v))
	case map[string]string:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = val
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, 0, len(v))
		for _, val := range v {
			out = append(out, normalize(val))
		}
		return out
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return v
	}
}
