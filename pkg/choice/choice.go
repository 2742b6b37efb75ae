package choice

import (
	"github.com/worldseedr/worldseedr/pkg/geometry"
	"github.com/worldseedr/worldseedr/pkg/kerr"
	"github.com/worldseedr/worldseedr/pkg/rng"
	"github.com/worldseedr/worldseedr/pkg/schema"
)

// Choice is the concrete output of the parser: a Position plus the metadata
// a consumer or the recursive driver needs (§3).
type Choice struct {
	geometry.Position
	Title     string
	Type      schema.ChildType
	Width     int
	Height    int
	Arguments map[string]any

	// Contents holds the recursed generation for a Random-typed Choice.
	// Known-typed Choices never populate it (invariant 5, §3/§8).
	Contents *Choice

	// Children holds the sibling Choices a mode generator produced before
	// they were wrapped into this Choice's own aggregate box.
	Children []Choice
}

// Parse converts child into a concrete Choice hugging pos along dir, per
// §4.4 steps 1-7. Final children are parsed by ParseFinal instead (step 8).
func Parse(child schema.PossibilityChild, lib schema.Library, pos geometry.Position, dir geometry.Direction, r *rng.RNG) (*Choice, error) {
	sch, err := lib.Lookup(child.Title)
	if err != nil {
		return nil, err
	}

	out := &Choice{
		Position:  pos,
		Title:     child.Title,
		Type:      child.Type,
		Width:     sch.Width,
		Height:    sch.Height,
		Arguments: resolveArguments(child.Arguments, r),
	}
	if child.Sizing != nil {
		if child.Sizing.Width != nil {
			out.Width = *child.Sizing.Width
		}
		if child.Sizing.Height != nil {
			out.Height = *child.Sizing.Height
		}
	}

	geometry.Collapse(&out.Position, dir, float64(extentAlong(dir, out.Width, out.Height)))

	if sch.Contents.Snap != nil {
		snap := *sch.Contents.Snap
		geometry.Collapse(&out.Position, snap.Opposite(), float64(extentAlong(snap, out.Width, out.Height)))
	}

	if child.Stretch != nil {
		applyStretch(out, child.Stretch, pos)
	}

	return out, nil
}

// ParseFinal implements §4.4 step 8: the output box is exactly the host
// pos, Width/Height are the source schema's declared dimensions (which may
// disagree with the host rect - that mismatch is intentional, carrying the
// source's nominal size as metadata even though the box itself was not
// resized to it), and the type is always Known regardless of child.Type.
func ParseFinal(child schema.PossibilityChild, lib schema.Library, pos geometry.Position, r *rng.RNG) (*Choice, error) {
	if child.Source == "" {
		return nil, kerr.New(kerr.MalformedSchema, "Final child %q has no source", child.Title)
	}
	source, err := lib.Lookup(child.Source)
	if err != nil {
		return nil, err
	}
	return &Choice{
		Position:  pos,
		Title:     child.Title,
		Type:      schema.Known,
		Width:     source.Width,
		Height:    source.Height,
		Arguments: resolveArguments(child.Arguments, r),
	}, nil
}

func resolveArguments(args *schema.Arguments, r *rng.RNG) map[string]any {
	if args == nil {
		return nil
	}
	return args.Resolve(r)
}

// extentAlong returns the extent a Collapse along dir should use: width for
// the horizontal directions, height for the vertical ones.
func extentAlong(dir geometry.Direction, width, height int) int {
	if dir.Sizing() == geometry.DimWidth {
		return width
	}
	return height
}

func applyStretch(out *Choice, stretch *schema.Stretch, pos geometry.Position) {
	if out.Arguments == nil && (stretch.Width || stretch.Height) {
		out.Arguments = map[string]any{}
	}
	if stretch.Width {
		out.Position.Left = pos.Left
		out.Position.Right = pos.Right
		out.Width = int(out.Position.Width())
		out.Arguments["width"] = out.Width
	}
	if stretch.Height {
		out.Position.Bottom = pos.Bottom
		out.Position.Top = pos.Top
		out.Height = int(out.Position.Height())
		out.Arguments["height"] = out.Height
	}
}
