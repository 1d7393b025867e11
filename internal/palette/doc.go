// Package palette defines the fixed color palettes that images are
// quantized against.
//
// A palette is an ordered list of named reference colors loaded from a
// JSON or Markdown-table file. Order is significant: nearest-color ties
// during dithering resolve to the earliest entry, and exported artifacts
// group colors in palette order.
package palette
