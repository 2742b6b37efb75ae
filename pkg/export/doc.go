// Package export renders a generated command buffer (and, for SVG, the full
// Choice tree behind it) to JSON and SVG.
package export
