// Package headline implements the animated headline widget: a before-text,
// an after-text and an ordered list of rotating words rendered into the
// cd-intro / cd-headline markup consumed by the external animation assets.
//
// The element and class names emitted by Render are a compatibility
// contract with that stylesheet and script and must not change.
package headline
