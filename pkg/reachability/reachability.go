package reachability

import (
	"sort"

	"github.com/worldseedr/worldseedr/pkg/kerr"
	"github.com/worldseedr/worldseedr/pkg/schema"
)

// Report is the result of walking a possibility library from one root
// title: which titles generation could ever reach, and which are defined
// but unreachable from that root.
type Report struct {
	Root      string
	Reachable map[string]bool
	Orphaned  []string
}

// IsReachable reports whether title was visited from the root.
func (r Report) IsReachable(title string) bool { return r.Reachable[title] }

// Walk performs a breadth-first traversal of lib's child references
// starting at root, following a Known/Random child's Title and a Final
// child's Source, and reports every title reachable from root plus every
// library title that is not (§4 of the original dungeon graph's
// GetReachable, generalized from room adjacency to possibility references).
//
// Walk does not detect cycles as an error: a possibility that references
// itself, directly or through others, is a valid Repeat/Random pattern, not
// a malformed schema - the recursion-depth ceiling in pkg/worldgen is what
// bounds that at generation time, not this diagnostic.
func Walk(lib schema.Library, root string) (Report, error) {
	if _, err := lib.Lookup(root); err != nil {
		return Report{}, err
	}

	reachable := map[string]bool{root: true}
	queue := []string{root}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		p, ok := lib[current]
		if !ok {
			continue
		}
		for _, child := range p.Contents.Children {
			next := child.Title
			if child.Type == schema.Final {
				next = child.Source
			}
			if next == "" || reachable[next] {
				continue
			}
			reachable[next] = true
			queue = append(queue, next)
		}
	}

	var orphaned []string
	for title := range lib {
		if !reachable[title] {
			orphaned = append(orphaned, title)
		}
	}
	sort.Strings(orphaned)

	return Report{Root: root, Reachable: reachable, Orphaned: orphaned}, nil
}

// RequireNoOrphans is a lint-style check: it fails with a MalformedSchema
// kerr naming the first orphaned title, for callers that want reachability
// treated as a hard pre-flight failure rather than an informational report.
func RequireNoOrphans(lib schema.Library, root string) error {
	report, err := Walk(lib, root)
	if err != nil {
		return err
	}
	if len(report.Orphaned) > 0 {
		return kerr.New(kerr.MalformedSchema, "possibility %q is unreachable from root %q", report.Orphaned[0], root)
	}
	return nil
}
