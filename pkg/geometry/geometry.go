// Package geometry provides the axis-aligned rectangle math the generator
// packs against: positions, the four cardinal directions, fit predicates,
// and bounding-box aggregation.
//
// Everything here is pure - no RNG, no I/O - so it can be fuzzed and
// property-tested directly (see geometry_test.go).
package geometry

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Direction is one of the four cardinal directions a schema can pack or
// snap along.
type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection maps a schema's string tag ("top", "right", "bottom",
// "left") to its Direction. Any other string is the fatal UnknownDirection
// condition, but geometry has no dependency on the error taxonomy package,
// so it reports failure the plain Go way; callers in pkg/schema wrap this
// into a kerr.Error.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "top":
		return Top, true
	case "right":
		return Right, true
	case "bottom":
		return Bottom, true
	case "left":
		return Left, true
	default:
		return 0, false
	}
}

// UnmarshalYAML lets a schema file spell a direction as a plain string.
func (d *Direction) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	dir, ok := ParseDirection(s)
	if !ok {
		return fmt.Errorf("geometry: unrecognized direction %q", s)
	}
	*d = dir
	return nil
}

// Dimension is the extent (width or height) a Direction advances along.
type Dimension int

const (
	DimWidth Dimension = iota
	DimHeight
)

// opposite maps each direction to its mirror: top<->bottom, left<->right.
var opposite = map[Direction]Direction{
	Top:    Bottom,
	Bottom: Top,
	Left:   Right,
	Right:  Left,
}

// sizing maps each direction to the dimension it advances: top/bottom pack
// along height, left/right pack along width.
var sizing = map[Direction]Dimension{
	Top:    DimHeight,
	Bottom: DimHeight,
	Left:   DimWidth,
	Right:  DimWidth,
}

// Opposite returns the mirror direction. Panics on an unrecognized
// Direction - the specification treats this as the fatal UnknownDirection
// condition (§7), and geometry has no error-return seam to carry it through.
func (d Direction) Opposite() Direction {
	o, ok := opposite[d]
	if !ok {
		panic(fmt.Sprintf("geometry: unknown direction %v", d))
	}
	return o
}

// Sizing returns the dimension this direction advances along.
func (d Direction) Sizing() Dimension {
	s, ok := sizing[d]
	if !ok {
		panic(fmt.Sprintf("geometry: unknown direction %v", d))
	}
	return s
}

// Position is an axis-aligned rectangle on the generator's plane, described
// by its four edges. Top > Bottom and Right > Left for any rectangle that
// has been through Parse; intermediate working copies during packing may
// momentarily violate that (e.g. a Repeat loop testing a child that will be
// rejected for not fitting).
type Position struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Width is the horizontal extent.
func (p Position) Width() float64 { return p.Right - p.Left }

// Height is the vertical extent.
func (p Position) Height() float64 { return p.Top - p.Bottom }

// FitsSize reports whether p's width and height are each no larger than the
// given w and h. This is fits_size from §4.1.
func (p Position) FitsSize(w, h float64) bool {
	return p.Width() <= w && p.Height() <= h
}

// FitsPosition reports whether p fits within host's extents. This is
// fits_position from §4.1.
func (p Position) FitsPosition(host Position) bool {
	return p.FitsSize(host.Width(), host.Height())
}

// IsNotEmpty reports whether pos still has positive extent along dir's
// sizing dimension: width for left/right, height for top/bottom. Mode
// generators use this to decide whether there is any room left to pack
// another child.
func IsNotEmpty(pos Position, dir Direction) bool {
	switch dir {
	case Left, Right:
		return pos.Left < pos.Right
	case Top, Bottom:
		return pos.Top > pos.Bottom
	default:
		panic(fmt.Sprintf("geometry: unknown direction %v", dir))
	}
}

// Shrink advances the host position's edge along dir past child's extent
// plus spacing, consuming the space child just occupied. The caller passes
// a pointer because packing mutates one working Position across a sequence
// of placed children (invariant 2: shrink is monotonic - the remaining
// position's area never increases).
func Shrink(pos *Position, child Position, dir Direction, spacing float64) {
	switch dir {
	case Top:
		pos.Bottom = child.Top + spacing
	case Right:
		pos.Left = child.Right + spacing
	case Bottom:
		pos.Top = child.Bottom - spacing
	case Left:
		pos.Right = child.Left - spacing
	default:
		panic(fmt.Sprintf("geometry: unknown direction %v", dir))
	}
}

// Collapse sets pos's dir edge to hug its opposite edge by extent, keeping
// Top > Bottom and Right > Left regardless of which edge is collapsed: Top
// and Right grow outward from their opposite (Bottom, Left respectively);
// Bottom and Left grow outward from theirs the other way. This is how the
// choice parser both hugs a child to the trailing edge of its packing axis
// and, applied to the opposite of a declared snap direction, hugs a child
// to one named edge on the orthogonal axis.
func Collapse(pos *Position, dir Direction, extent float64) {
	switch dir {
	case Top:
		pos.Top = pos.Bottom + extent
	case Right:
		pos.Right = pos.Left + extent
	case Bottom:
		pos.Bottom = pos.Top - extent
	case Left:
		pos.Left = pos.Right - extent
	default:
		panic(fmt.Sprintf("geometry: unknown direction %v", dir))
	}
}

// Move translates the whole position by s along dir. Used only by Multiple
// mode, which fans siblings out by spacing rather than packing them.
func Move(pos *Position, dir Direction, s float64) {
	switch dir {
	case Top:
		pos.Top += s
		pos.Bottom += s
	case Bottom:
		pos.Top -= s
		pos.Bottom -= s
	case Right:
		pos.Right += s
		pos.Left += s
	case Left:
		pos.Right -= s
		pos.Left -= s
	default:
		panic(fmt.Sprintf("geometry: unknown direction %v", dir))
	}
}

// WrapExtremes returns the tightest Position enclosing every non-nil entry
// in children, in order. A nil entry marks a child that produced no
// geometry (the source's "empty object" case, §4.1) - aggregation stops at
// the first one and returns whatever was accumulated up to that point,
// reproducing the source's bug-tolerant behavior rather than silently
// skipping past it.
//
// Returns ok=false only when children is empty; wrapping a single child
// returns a copy of that child's box unchanged (idempotence, §8.6).
func WrapExtremes(children []*Position) (box Position, ok bool) {
	if len(children) == 0 {
		return Position{}, false
	}
	if children[0] == nil {
		return Position{}, true
	}

	box = *children[0]
	for _, c := range children[1:] {
		if c == nil {
			break
		}
		if c.Top > box.Top {
			box.Top = c.Top
		}
		if c.Right > box.Right {
			box.Right = c.Right
		}
		if c.Bottom < box.Bottom {
			box.Bottom = c.Bottom
		}
		if c.Left < box.Left {
			box.Left = c.Left
		}
	}
	return box, true
}
