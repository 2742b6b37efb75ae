package choice

import (
	"github.com/worldseedr/worldseedr/pkg/choose"
	"github.com/worldseedr/worldseedr/pkg/geometry"
	"github.com/worldseedr/worldseedr/pkg/rng"
	"github.com/worldseedr/worldseedr/pkg/schema"
)

// ChooseAmong is choose_among specialized to PossibilityChild (§4.3).
func ChooseAmong(children []schema.PossibilityChild, r *rng.RNG) (schema.PossibilityChild, bool) {
	return choose.Among(children, r)
}

// ChooseAmongPosition is choose_among_position (§4.3): filter children to
// those whose referenced schema fits pos, then run ChooseAmong. A Final
// child is filtered by its source schema's dimensions; every other child
// type is filtered by its own title.
func ChooseAmongPosition(children []schema.PossibilityChild, pos geometry.Position, lib schema.Library, r *rng.RNG) (schema.PossibilityChild, bool) {
	return choose.AmongFitting(children, func(c schema.PossibilityChild) bool {
		return fitsPosition(c, pos, lib)
	}, r)
}

func fitsPosition(c schema.PossibilityChild, pos geometry.Position, lib schema.Library) bool {
	title := c.Title
	if c.Type == schema.Final {
		title = c.Source
	}
	sch, err := lib.Lookup(title)
	if err != nil {
		return false
	}
	width, height := sch.Width, sch.Height
	if c.Sizing != nil {
		if c.Sizing.Width != nil {
			width = *c.Sizing.Width
		}
		if c.Sizing.Height != nil {
			height = *c.Sizing.Height
		}
	}
	return float64(width) <= pos.Width() && float64(height) <= pos.Height()
}
