package spacing

import (
	"gopkg.in/yaml.v3"

	"github.com/worldseedr/worldseedr/pkg/choose"
	"github.com/worldseedr/worldseedr/pkg/kerr"
	"github.com/worldseedr/worldseedr/pkg/rng"
)

// Spacing is the polymorphic distance specification from §3: a plain number,
// an object or array range, or a weighted list of nested Spacings. It wraps
// a single form, discriminated by the concrete type held in Form.
type Spacing struct {
	Form Form
}

// Form is the sum type a Spacing wraps: exactly one of Fixed, Range, or
// Weighted, per the Design Notes' recommendation (§9) to replace the
// source's dynamic dispatch with a closed set of variants.
type Form interface {
	isForm()
}

// Fixed is a deterministic spacing: the plain-number form.
type Fixed float64

func (Fixed) isForm() {}

// Range is the object/array form: a uniform integer in [Min, Max], rounded
// to Units (default 1).
type Range struct {
	Min, Max, Units int
}

func (Range) isForm() {}

// Weighted is the weighted-list form: pick one Entry by percent, then
// recurse into its Value.
type Weighted []Entry

func (Weighted) isForm() {}

// Entry is one member of a Weighted spacing list.
type Entry struct {
	Value   Spacing
	Percent float64
}

// Weight satisfies choose.Weighted.
func (e Entry) Weight() float64 { return e.Percent }

// Calculate resolves s to one number, per §4.2. Range and Weighted forms
// consult r; Fixed does not. The result is non-negative when the form's
// numbers are; negative Fixed values or Range bounds are not clamped and
// can yield a negative result.
func Calculate(s Spacing, r *rng.RNG) (float64, error) {
	switch v := s.Form.(type) {
	case Fixed:
		return float64(v), nil

	case Range:
		units := v.Units
		if units <= 0 {
			units = 1
		}
		lo := floorDiv(v.Min, units)
		hi := floorDiv(v.Max, units)
		n := r.Between(lo, hi)
		return float64(n * units), nil

	case Weighted:
		if len(v) == 0 {
			return 0, kerr.New(kerr.MalformedSchema, "weighted spacing list is empty")
		}
		chosen, ok := choose.Among[Entry](v, r)
		if !ok {
			return 0, nil
		}
		return Calculate(chosen.Value, r)

	default:
		return 0, kerr.New(kerr.MalformedSchema, "unrecognized spacing form %T", s.Form)
	}
}

// floorDiv is integer division rounded toward negative infinity, matching
// the ⌊min/u⌋ notation in §4.2 (Go's native / truncates toward zero).
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// UnmarshalYAML implements the four polymorphic shapes named in §3:
//   - a scalar number           -> Fixed
//   - a two-element array       -> Range, sugar for {min, max}, units 1
//   - a mapping {min,max,units} -> Range
//   - a sequence of mappings
//     {value, percent}          -> Weighted
func (s *Spacing) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n float64
		if err := node.Decode(&n); err != nil {
			return kerr.New(kerr.MalformedSchema, "spacing scalar: %v", err)
		}
		s.Form = Fixed(n)
		return nil

	case yaml.MappingNode:
		var obj struct {
			Min   int `yaml:"min"`
			Max   int `yaml:"max"`
			Units int `yaml:"units"`
		}
		if err := node.Decode(&obj); err != nil {
			return kerr.New(kerr.MalformedSchema, "spacing object: %v", err)
		}
		s.Form = Range{Min: obj.Min, Max: obj.Max, Units: obj.Units}
		return nil

	case yaml.SequenceNode:
		return s.unmarshalSequence(node)

	default:
		return kerr.New(kerr.MalformedSchema, "spacing: unrecognized YAML node kind %v", node.Kind)
	}
}

func (s *Spacing) unmarshalSequence(node *yaml.Node) error {
	if len(node.Content) == 0 {
		return kerr.New(kerr.MalformedSchema, "spacing array form is empty")
	}

	if node.Content[0].Kind == yaml.ScalarNode {
		if len(node.Content) != 2 {
			return kerr.New(kerr.MalformedSchema, "spacing array form requires exactly 2 numbers, got %d", len(node.Content))
		}
		var bounds [2]int
		if err := node.Decode(&bounds); err != nil {
			return kerr.New(kerr.MalformedSchema, "spacing array: %v", err)
		}
		s.Form = Range{Min: bounds[0], Max: bounds[1], Units: 1}
		return nil
	}

	var raw []struct {
		Value   Spacing `yaml:"value"`
		Percent float64 `yaml:"percent"`
	}
	if err := node.Decode(&raw); err != nil {
		return kerr.New(kerr.MalformedSchema, "weighted spacing list: %v", err)
	}
	entries := make(Weighted, len(raw))
	for i, r := range raw {
		entries[i] = Entry{Value: r.Value, Percent: r.Percent}
	}
	s.Form = entries
	return nil
}
