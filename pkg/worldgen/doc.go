// Package worldgen implements the Mode Generators (§4.5) and the Recursive
// Driver (§4.6): the top-level generate/generateFull flow that looks up a
// schema, dispatches to the mode matching its contents, recurses into
// non-terminal children, and accumulates terminal children into a command
// buffer for an external placement callback.
package worldgen
