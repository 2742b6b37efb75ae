// Package reachability reports which possibility titles a schema library can
// ever reach from a given root, and which are orphaned. This is diagnostic
// tooling only - it never feeds back into generation and is not a substitute
// for the depth ceiling worldgen enforces at runtime.
package reachability
