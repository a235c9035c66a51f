// Package model defines the typed widget model shared by descriptors,
// projectors and hosts. A widget declares an Identity and a FieldSchema; the
// host resolves the schema into Settings at render time and hands them back to
// the widget, which produces Markup. Field descriptors are a tagged variant:
// text fields carry a default and placeholder, repeater fields carry a flat
// item schema plus seeded default items. Settings accessors never fail; absent
// or wrong-shaped values fall back to the empty string or a nil slice.
package model
