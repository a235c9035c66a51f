package model

import "fmt"

// Settings holds the resolved values a host supplies for a widget's schema.
// Text fields resolve to strings; repeater fields resolve to []Item. Widgets
// treat Settings as read-only.
type Settings map[string]any

// String returns the scalar stored under key, or "" when it is absent.
// Non-string scalars are formatted with fmt.
func (s Settings) String(key string) string {
	if s == nil {
		return ""
	}
	return scalarString(s[key])
}

// Items returns the repeater rows stored under key. Rows that are not maps
// are skipped.
func (s Settings) Items(key string) []Item {
	if s == nil {
		return nil
	}
	switch raw := s[key].(type) {
	case []Item:
		return raw
	case []map[string]string:
		out := make([]Item, 0, len(raw))
		for _, row := range raw {
			out = append(out, Item(row))
		}
		return out
	case []map[string]any:
		out := make([]Item, 0, len(raw))
		for _, row := range raw {
			out = append(out, itemFromMap(row))
		}
		return out
	case []any:
		out := make([]Item, 0, len(raw))
		for _, entry := range raw {
			switch row := entry.(type) {
			case Item:
				out = append(out, row)
			case map[string]string:
				out = append(out, Item(row))
			case map[string]any:
				out = append(out, itemFromMap(row))
			}
		}
		return out
	default:
		return nil
	}
}

// String returns the item value stored under key, or "".
func (i Item) String(key string) string {
	if i == nil {
		return ""
	}
	return i[key]
}

func itemFromMap(row map[string]any) Item {
	item := make(Item, len(row))
	for key, value := range row {
		item[key] = scalarString(value)
	}
	return item
}

func scalarString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case bool, int, int64, float64, float32, int32, uint, uint64:
		return fmt.Sprint(v)
	default:
		return ""
	}
}
