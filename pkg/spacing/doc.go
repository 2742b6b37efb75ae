// Package spacing implements the Spacing Calculator (§4.2): a polymorphic
// distance description - a fixed number, a uniform range, or a weighted list
// of nested spacings - resolved to one scalar per call (negative inputs are
// not clamped to zero).
package spacing
