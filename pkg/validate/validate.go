package validate

import (
	"fmt"

	"github.com/worldseedr/worldseedr/pkg/choice"
	"github.com/worldseedr/worldseedr/pkg/geometry"
	"github.com/worldseedr/worldseedr/pkg/schema"
)

// withinBounds reports whether child's box lies entirely inside host's,
// edge for edge - the literal containment invariant (§8.1), as opposed to
// geometry.Position.FitsPosition, which only compares extents and is used
// by the mode generators to test a candidate before it is ever placed.
func withinBounds(child, host geometry.Position) bool {
	return child.Left >= host.Left && child.Right <= host.Right &&
		child.Bottom >= host.Bottom && child.Top <= host.Top
}

// Violation is a single failed invariant check, naming the offending
// choice's title and the rule that failed.
type Violation struct {
	Title  string
	Rule   string
	Detail string
}

// Report is the result of checking one generated Choice tree.
type Report struct {
	Passed     bool
	Violations []Violation
}

// Check walks root and every descendant (both sibling Children and, for
// Random choices, the recursed Contents tree), verifying:
//
//  1. Containment (§8.1): every child's box lies within its immediate
//     parent's aggregate box - the parent was built by wrap_extremes over
//     exactly these children, so any violation here means a mode generator
//     or the aggregation step disagreed with its own inputs.
//  2. Known/Random contents discipline (§8.5): a Known choice never
//     carries a populated Contents; a Random choice's Contents is either
//     populated or explicitly nil only when that branch legitimately
//     produced nothing (never populated-but-malformed, e.g. with zero
//     Children and a non-nil pointer).
func Check(root *choice.Choice) Report {
	var violations []Violation
	walk(root, &violations)
	return Report{Passed: len(violations) == 0, Violations: violations}
}

func walk(node *choice.Choice, violations *[]Violation) {
	if node == nil {
		return
	}

	switch node.Type {
	case schema.Known:
		if node.Contents != nil {
			*violations = append(*violations, Violation{
				Title: node.Title, Rule: "known-has-no-contents",
				Detail: "a Known choice must not carry a populated Contents",
			})
		}
	case schema.ChildRandom:
		if node.Contents != nil && len(node.Contents.Children) == 0 {
			*violations = append(*violations, Violation{
				Title: node.Title, Rule: "random-contents-not-empty-shell",
				Detail: "a Random choice's Contents, if populated, must carry at least one child",
			})
		}
	}

	for i := range node.Children {
		child := &node.Children[i]
		if !withinBounds(child.Position, node.Position) {
			*violations = append(*violations, Violation{
				Title: child.Title, Rule: "containment",
				Detail: fmt.Sprintf("child box %+v does not lie within parent box %+v", child.Position, node.Position),
			})
		}
		walk(child, violations)
	}

	if node.Type == schema.ChildRandom && node.Contents != nil {
		walk(node.Contents, violations)
	}
}
