// Package ui holds the terminal presentation of lazy-scripts: output format
// detection, the per-event install reporter, the script table and markdown
// rendering of the key reference.
//
// Styling is applied only when the destination is a color-capable terminal
// and NO_COLOR is unset.
package ui
