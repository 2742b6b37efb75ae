package worldgen

import (
	"github.com/worldseedr/worldseedr/pkg/choice"
	"github.com/worldseedr/worldseedr/pkg/geometry"
	"github.com/worldseedr/worldseedr/pkg/rng"
	"github.com/worldseedr/worldseedr/pkg/schema"
)

// recurseFunc is how a mode generator reaches back into the driver to
// expand a non-Known child's own contents (§4.5: "for every non-Known child
// returned, the generator recursively calls generate(child.title,
// pos_snapshot) and stores the result as child.contents"). depth is the
// recursion depth the driver should enforce its ceiling against.
type recurseFunc func(title string, pos geometry.Position, depth int) (*choice.Choice, error)

// parseChild dispatches to choice.Parse or choice.ParseFinal depending on
// the child's type, matching the Final shortcut carved out in §4.4 step 8.
func parseChild(child schema.PossibilityChild, lib schema.Library, pos geometry.Position, dir geometry.Direction, r *rng.RNG) (*choice.Choice, error) {
	if child.Type == schema.Final {
		return choice.ParseFinal(child, lib, pos, r)
	}
	return choice.Parse(child, lib, pos, dir, r)
}

// expandIfRandom recurses into a Random-typed child's own contents and
// attaches the result. Known and Final(-now-Known) children are already
// terminal and are left alone.
func expandIfRandom(c *choice.Choice, childType schema.ChildType, depth int, recurse recurseFunc) error {
	if childType != schema.ChildRandom {
		return nil
	}
	sub, err := recurse(c.Title, c.Position, depth+1)
	if err != nil {
		return err
	}
	c.Contents = sub
	return nil
}

// generateCertain iterates every entry in contents.Children once in order.
// Every entry contributes one Choice regardless of fit - the author accepts
// the consequence of overflow (§4.5 Certain; the newer-source behavior the
// Design Notes, §9, direct adopting over the older fit-filtering variant).
func generateCertain(contents schema.Contents, pos geometry.Position, dir geometry.Direction, spacingVal float64, lib schema.Library, r *rng.RNG, depth int, recurse recurseFunc) ([]choice.Choice, error) {
	working := pos
	var result []choice.Choice
	for _, child := range contents.Children {
		c, err := parseChild(child, lib, working, dir, r)
		if err != nil {
			return nil, err
		}
		if err := expandIfRandom(c, child.Type, depth, recurse); err != nil {
			return nil, err
		}
		result = append(result, *c)
		geometry.Shrink(&working, c.Position, dir, spacingVal)
	}
	return result, nil
}

// generateRepeat cycles contents.Children modulo their count until the
// working position is exhausted or the next child, parsed, no longer fits.
func generateRepeat(contents schema.Contents, pos geometry.Position, dir geometry.Direction, spacingVal float64, lib schema.Library, r *rng.RNG, depth int, recurse recurseFunc) ([]choice.Choice, error) {
	if len(contents.Children) == 0 {
		return nil, nil
	}
	working := pos
	var result []choice.Choice
	for i := 0; geometry.IsNotEmpty(working, dir); i++ {
		child := contents.Children[i%len(contents.Children)]
		c, err := parseChild(child, lib, working, dir, r)
		if err != nil {
			return nil, err
		}
		if !c.Position.FitsPosition(working) {
			break
		}
		if err := expandIfRandom(c, child.Type, depth, recurse); err != nil {
			return nil, err
		}
		result = append(result, *c)
		geometry.Shrink(&working, c.Position, dir, spacingVal)
	}
	return result, nil
}

// generateRandom repeatedly draws a weighted, fit-filtered child until the
// working position is exhausted or the draw comes up empty. Exceeding
// contents.Limit aborts the whole branch by returning (nil, nil): the
// driver treats that exactly like a natural empty result.
func generateRandom(contents schema.Contents, pos geometry.Position, dir geometry.Direction, spacingVal float64, lib schema.Library, r *rng.RNG, depth int, recurse recurseFunc) ([]choice.Choice, error) {
	working := pos
	var result []choice.Choice
	for geometry.IsNotEmpty(working, dir) {
		chosen, ok := choice.ChooseAmongPosition(contents.Children, working, lib, r)
		if !ok {
			break
		}
		c, err := parseChild(chosen, lib, working, dir, r)
		if err != nil {
			return nil, err
		}
		if err := expandIfRandom(c, chosen.Type, depth, recurse); err != nil {
			return nil, err
		}
		result = append(result, *c)
		geometry.Shrink(&working, c.Position, dir, spacingVal)

		if contents.Limit != nil && len(result) > *contents.Limit {
			return nil, nil
		}
	}
	return result, nil
}

// generateMultiple parses every entry against an independent snapshot of
// the same starting region, then translates (not shrinks) the working
// position by spacing along dir before the next entry - producing fanned,
// overlapping sibling placements.
func generateMultiple(contents schema.Contents, pos geometry.Position, dir geometry.Direction, spacingVal float64, lib schema.Library, r *rng.RNG, depth int, recurse recurseFunc) ([]choice.Choice, error) {
	working := pos
	var result []choice.Choice
	for _, child := range contents.Children {
		c, err := parseChild(child, lib, working, dir, r)
		if err != nil {
			return nil, err
		}
		if err := expandIfRandom(c, child.Type, depth, recurse); err != nil {
			return nil, err
		}
		result = append(result, *c)
		geometry.Move(&working, dir, spacingVal)
	}
	return result, nil
}
