// Package validate post-hoc checks a generated Choice tree against the
// structural invariants of the generation kernel (containment and the
// Known/Random contents discipline). It never runs during generation and
// never influences it - a failed check here is a diagnostic, not a
// recoverable error the driver reacts to.
package validate
