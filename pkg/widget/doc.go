// Package widget defines the host-facing widget contract and a registry that
// hosts use to discover, search and render widgets by name.
package widget
