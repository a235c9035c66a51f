// Package editor collects widget settings interactively in a terminal. It
// walks a field schema in order, prompting text fields and repeater items,
// and returns the raw settings map a host would persist.
package editor
