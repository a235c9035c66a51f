// Package i18n supplies the string lookup used for widget labels and
// defaults. Widgets receive a Lookup function rather than calling a global
// translator, so tests can pass Identity and get the literal source strings.
package i18n
