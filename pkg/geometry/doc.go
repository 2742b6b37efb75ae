// Package geometry provides axis-aligned rectangle math for the world
// generator: positions, direction/dimension tables, fit predicates, and
// bounding-box aggregation. See doc comments on Position and Direction for
// the operations this package exposes.
package geometry
