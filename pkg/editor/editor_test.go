package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-headline/pkg/headline"
	"github.com/goliatone/go-headline/pkg/model"
)

type stubDriver struct {
	inputs       []string
	confirm      []bool
	inputConfigs []InputConfig
	confirmMsgs  []string
	infoMessages []string
	inputPos     int
	confirmPos   int
	failInput    error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputConfigs = append(s.inputConfigs, cfg)
	if s.failInput != nil {
		return "", s.failInput
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.confirmMsgs = append(s.confirmMsgs, cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestEdit_DefaultsAndAddedItems(t *testing.T) {
	driver := &stubDriver{
		inputs: []string{
			"We are",     // before_title
			"for hire",   // after_title
			"Designers",  // kept default item
			"Developers", // added item
		},
		confirm: []bool{
			true,  // keep default item
			true,  // add another
			false, // stop
		},
	}

	ids := []string{"a1b2c3d", "e4f5a6b"}
	nextID := func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	schema := headline.NewDescriptor(nil).Fields()
	got, err := New(WithDriver(driver), WithIDGenerator(nextID)).Edit(context.Background(), schema, nil)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	want := map[string]any{
		"before_title": "We are",
		"after_title":  "for hire",
		"list": []any{
			map[string]any{"_id": "a1b2c3d", "title": "Designers"},
			map[string]any{"_id": "e4f5a6b", "title": "Developers"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}

	if driver.inputConfigs[0].Default != "Before Title" || driver.inputConfigs[0].Message != "Before Title" {
		t.Fatalf("unexpected first prompt %+v", driver.inputConfigs[0])
	}
	if driver.inputConfigs[2].Default != "Designer" {
		t.Fatalf("expected default item value as prompt default, got %q", driver.inputConfigs[2].Default)
	}
	if driver.confirmMsgs[0] != "Keep Clip List item 1 (Designer)?" {
		t.Fatalf("unexpected keep prompt %q", driver.confirmMsgs[0])
	}
	if len(driver.infoMessages) != 1 || driver.infoMessages[0] != "Clip List: 1 item(s)" {
		t.Fatalf("unexpected info messages %v", driver.infoMessages)
	}
}

func TestEdit_PrefillDropsItemsAndKeepsEmptyList(t *testing.T) {
	driver := &stubDriver{
		inputs:  []string{"", ""},
		confirm: []bool{false, false, false},
	}
	prefill := map[string]any{
		"before_title": "Hello",
		"list": []any{
			map[string]any{"title": "One"},
			map[string]any{"title": "Two"},
		},
	}

	got, err := New(WithDriver(driver)).Edit(context.Background(), headline.NewDescriptor(nil).Fields(), prefill)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if driver.inputConfigs[0].Default != "Hello" {
		t.Fatalf("prefill should drive default, got %q", driver.inputConfigs[0].Default)
	}
	if driver.inputConfigs[1].Default != "After Title" {
		t.Fatalf("absent prefill falls back to field default, got %q", driver.inputConfigs[1].Default)
	}
	items, ok := got["list"].([]any)
	if !ok || len(items) != 0 {
		t.Fatalf("expected empty list, got %#v", got["list"])
	}
	if got["before_title"] != "" {
		t.Fatalf("empty answer must be kept, got %#v", got["before_title"])
	}
}

func TestEdit_AbortPropagates(t *testing.T) {
	driver := &stubDriver{failInput: ErrAborted}
	_, err := New(WithDriver(driver)).Edit(context.Background(), headline.NewDescriptor(nil).Fields(), nil)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestEdit_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(WithDriver(&stubDriver{})).Edit(ctx, nil, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestEdit_KeepsExistingItemIDs(t *testing.T) {
	driver := &stubDriver{
		inputs:  []string{"", "", "Kept"},
		confirm: []bool{true, false},
	}
	prefill := map[string]any{
		"list": []any{map[string]any{"_id": "0badc0d", "title": "Old"}},
	}

	got, err := New(WithDriver(driver)).Edit(context.Background(), headline.NewDescriptor(nil).Fields(), prefill)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	want := []any{map[string]any{"_id": "0badc0d", "title": "Kept"}}
	if diff := cmp.Diff(want, got["list"]); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestNewItemID(t *testing.T) {
	id := newItemID()
	if len(id) != 7 {
		t.Fatalf("expected 7 character id, got %q", id)
	}
	if id == newItemID() {
		t.Fatalf("expected distinct ids")
	}
}

func TestItemSummary(t *testing.T) {
	field := model.Field{
		Kind:          model.FieldKindRepeater,
		Key:           "list",
		ItemFields:    []model.Field{{Kind: model.FieldKindText, Key: "title"}},
		TitleTemplate: "{{{ title }}} / {{ missing }}",
	}
	if got := ItemSummary(field, model.Item{"title": "Designer"}); got != "Designer / " {
		t.Fatalf("unexpected summary %q", got)
	}

	field.TitleTemplate = ""
	if got := ItemSummary(field, model.Item{"title": "Fallback"}); got != "Fallback" {
		t.Fatalf("unexpected fallback summary %q", got)
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if got := translateSurveyErr(terminal.InterruptErr); !errors.Is(got, ErrAborted) {
		t.Fatalf("interrupt should map to ErrAborted, got %v", got)
	}
	other := errors.New("boom")
	if got := translateSurveyErr(other); got != other {
		t.Fatalf("unexpected translation %v", got)
	}
}
