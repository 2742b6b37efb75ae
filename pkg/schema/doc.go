// Package schema holds the possibility library data model (§3): Possibility,
// PossibilityChild, Contents, and the library container they live in, along
// with YAML loading and validation.
package schema
