package settings

import "github.com/goliatone/go-headline/pkg/model"

// Resolve turns a raw settings document into the Settings a widget renders.
// Missing text values take the field default and a missing repeater takes
// its default items. A repeater present but empty stays empty. Item rows get
// missing item keys from the item field defaults. Keys not declared in the
// schema are dropped.
func Resolve(schema model.FieldSchema, raw map[string]any) model.Settings {
	source := model.Settings(raw)
	out := make(model.Settings, len(schema))

	for _, field := range schema {
		value, present := raw[field.Key]
		switch field.Kind {
		case model.FieldKindRepeater:
			if !present || value == nil {
				out[field.Key] = cloneItems(field.DefaultItems)
				continue
			}
			out[field.Key] = fillItems(field, source.Items(field.Key))
		default:
			if !present || value == nil {
				out[field.Key] = field.Default
				continue
			}
			out[field.Key] = source.String(field.Key)
		}
	}
	return out
}

// Defaults returns the Settings a freshly inserted widget renders with.
func Defaults(schema model.FieldSchema) model.Settings {
	return Resolve(schema, nil)
}

// ToRaw converts Settings back into a plain document suitable for Encode.
func ToRaw(schema model.FieldSchema, resolved model.Settings) map[string]any {
	out := make(map[string]any, len(schema))
	for _, field := range schema {
		if field.IsRepeater() {
			items := resolved.Items(field.Key)
			rows := make([]any, 0, len(items))
			for _, item := range items {
				row := make(map[string]any, len(item))
				for key, value := range item {
					row[key] = value
				}
				rows = append(rows, row)
			}
			out[field.Key] = rows
			continue
		}
		out[field.Key] = resolved.String(field.Key)
	}
	return out
}

func fillItems(field model.Field, items []model.Item) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, item := range items {
		row := make(model.Item, len(field.ItemFields))
		for _, itemField := range field.ItemFields {
			if value, ok := item[itemField.Key]; ok {
				row[itemField.Key] = value
				continue
			}
			row[itemField.Key] = itemField.Default
		}
		out = append(out, row)
	}
	return out
}

func cloneItems(items []model.Item) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, item := range items {
		row := make(model.Item, len(item))
		for key, value := range item {
			row[key] = value
		}
		out = append(out, row)
	}
	return out
}
