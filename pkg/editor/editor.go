package editor

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-headline/pkg/model"
)

// ItemIDKey holds the stable row id hosts use to track repeater items
// across edits. Renderers ignore it.
const ItemIDKey = "_id"

// Option customises an Editor.
type Option func(*Editor)

// WithDriver swaps the prompt driver, mostly for tests.
func WithDriver(driver PromptDriver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithIDGenerator replaces the repeater row id generator.
func WithIDGenerator(fn func() string) Option {
	return func(e *Editor) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// Editor walks a field schema and collects raw settings from prompts.
type Editor struct {
	driver PromptDriver
	newID  func() string
}

// New constructs an Editor using the survey driver unless one is supplied.
func New(options ...Option) *Editor {
	e := &Editor{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.driver == nil {
		e.driver = NewSurveyDriver(nil)
	}
	if e.newID == nil {
		e.newID = newItemID
	}
	return e
}

// newItemID returns a 7 character hex id, the short row id format page
// builders store on repeater items.
func newItemID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
}

// Edit prompts every field in order and returns the raw settings map. Values
// already present in prefill become prompt defaults; repeaters start from the
// prefilled items, or the field's default items when prefill has none.
func (e *Editor) Edit(ctx context.Context, schema model.FieldSchema, prefill map[string]any) (map[string]any, error) {
	if ctx == nil {
		return nil, errors.New("editor: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.driver == nil {
		return nil, errors.New("editor: prompt driver is nil")
	}

	current := model.Settings(prefill)
	out := make(map[string]any, len(schema))

	for _, field := range schema {
		switch field.Kind {
		case model.FieldKindText:
			value, err := e.promptText(ctx, field, textDefault(current, field))
			if err != nil {
				return nil, err
			}
			out[field.Key] = value
		case model.FieldKindRepeater:
			items, err := e.promptRepeater(ctx, field, startingItems(current, field))
			if err != nil {
				return nil, err
			}
			out[field.Key] = items
		default:
			return nil, fmt.Errorf("editor: field %q: unsupported kind %q", field.Key, field.Kind)
		}
	}
	return out, nil
}

func (e *Editor) promptText(ctx context.Context, field model.Field, def string) (string, error) {
	return e.driver.Input(ctx, InputConfig{
		Message:     label(field),
		Default:     def,
		Placeholder: field.Placeholder,
	})
}

func (e *Editor) promptRepeater(ctx context.Context, field model.Field, existing []model.Item) ([]any, error) {
	name := label(field)
	if err := e.driver.Info(ctx, fmt.Sprintf("%s: %d item(s)", name, len(existing))); err != nil {
		return nil, err
	}

	items := make([]any, 0, len(existing))
	for i, item := range existing {
		keep, err := e.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Keep %s item %d (%s)?", name, i+1, ItemSummary(field, item)),
			Default: true,
		})
		if err != nil {
			return nil, err
		}
		if !keep {
			continue
		}
		edited, err := e.promptItem(ctx, field, item)
		if err != nil {
			return nil, err
		}
		items = append(items, edited)
	}

	for {
		more, err := e.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Add another %s item?", name),
			Default: len(items) == 0,
		})
		if err != nil {
			return nil, err
		}
		if !more {
			return items, nil
		}
		added, err := e.promptItem(ctx, field, nil)
		if err != nil {
			return nil, err
		}
		items = append(items, added)
	}
}

func (e *Editor) promptItem(ctx context.Context, field model.Field, item model.Item) (map[string]any, error) {
	out := make(map[string]any, len(field.ItemFields)+1)
	id := ""
	if item != nil {
		id = strings.TrimSpace(item[ItemIDKey])
	}
	if id == "" {
		id = e.newID()
	}
	out[ItemIDKey] = id

	for _, sub := range field.ItemFields {
		def := sub.Default
		if item != nil {
			if v, ok := item[sub.Key]; ok {
				def = v
			}
		}
		value, err := e.promptText(ctx, sub, def)
		if err != nil {
			return nil, err
		}
		out[sub.Key] = value
	}
	return out, nil
}

var titlePlaceholder = regexp.MustCompile(`\{\{\{?\s*([A-Za-z0-9_]+)\s*\}?\}\}`)

// ItemSummary renders a repeater's title template against one item, the way
// an editor panel labels collapsed items. Unknown placeholders render empty.
func ItemSummary(field model.Field, item model.Item) string {
	tmpl := field.TitleTemplate
	if strings.TrimSpace(tmpl) == "" {
		if len(field.ItemFields) == 0 {
			return ""
		}
		return item.String(field.ItemFields[0].Key)
	}
	return titlePlaceholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		sub := titlePlaceholder.FindStringSubmatch(match)
		return item.String(sub[1])
	})
}

func label(field model.Field) string {
	if strings.TrimSpace(field.Label) != "" {
		return field.Label
	}
	return field.Key
}

func textDefault(current model.Settings, field model.Field) string {
	if _, ok := current[field.Key]; ok {
		return current.String(field.Key)
	}
	return field.Default
}

func startingItems(current model.Settings, field model.Field) []model.Item {
	if _, ok := current[field.Key]; ok {
		return current.Items(field.Key)
	}
	out := make([]model.Item, 0, len(field.DefaultItems))
	for _, item := range field.DefaultItems {
		clone := make(model.Item, len(item))
		for k, v := range item {
			clone[k] = v
		}
		out = append(out, clone)
	}
	return out
}
