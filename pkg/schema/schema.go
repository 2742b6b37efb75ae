package schema

import (
	"gopkg.in/yaml.v3"

	"github.com/worldseedr/worldseedr/pkg/choose"
	"github.com/worldseedr/worldseedr/pkg/geometry"
	"github.com/worldseedr/worldseedr/pkg/kerr"
	"github.com/worldseedr/worldseedr/pkg/rng"
	"github.com/worldseedr/worldseedr/pkg/spacing"
)

// Mode is one of the four child-list interpretations a Contents block names
// (§3, §4.5).
type Mode int

const (
	ModeUnset Mode = iota
	Certain
	Repeat
	Random
	Multiple
)

func (m Mode) String() string {
	switch m {
	case Certain:
		return "Certain"
	case Repeat:
		return "Repeat"
	case Random:
		return "Random"
	case Multiple:
		return "Multiple"
	default:
		return "Unset"
	}
}

// ParseMode maps a schema's string tag to its Mode, failing with
// UnknownMode for anything else (§7).
func ParseMode(s string) (Mode, error) {
	switch s {
	case "Certain":
		return Certain, nil
	case "Repeat":
		return Repeat, nil
	case "Random":
		return Random, nil
	case "Multiple":
		return Multiple, nil
	default:
		return ModeUnset, kerr.New(kerr.UnknownMode, "unrecognized mode %q", s)
	}
}

// UnmarshalYAML lets a schema file spell mode as a plain string.
func (m *Mode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	mode, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ChildType is one of Known, Random, or Final (§3).
type ChildType int

const (
	ChildTypeUnset ChildType = iota
	Known
	ChildRandom
	Final
)

func (c ChildType) String() string {
	switch c {
	case Known:
		return "Known"
	case ChildRandom:
		return "Random"
	case Final:
		return "Final"
	default:
		return "Unset"
	}
}

// ParseChildType maps a child's string tag to its ChildType, failing with
// UnknownChildType for anything else (§7).
func ParseChildType(s string) (ChildType, error) {
	switch s {
	case "Known":
		return Known, nil
	case "Random":
		return ChildRandom, nil
	case "Final":
		return Final, nil
	default:
		return ChildTypeUnset, kerr.New(kerr.UnknownChildType, "unrecognized child type %q", s)
	}
}

func (c *ChildType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	ct, err := ParseChildType(s)
	if err != nil {
		return err
	}
	*c = ct
	return nil
}

// Sizing overrides a child's width/height. Either field may be left unset;
// pointers let the choice parser tell "defined as zero" from "not defined"
// apart, which §4.4 step 3 requires ("if it defines the field").
type Sizing struct {
	Width  *int `yaml:"width,omitempty"`
	Height *int `yaml:"height,omitempty"`
}

// Stretch flags force a child to fill its host on one axis (§4.4 step 7).
type Stretch struct {
	Width  bool `yaml:"width,omitempty"`
	Height bool `yaml:"height,omitempty"`
}

// ArgEntry is one member of a weighted Arguments list: a concrete value map
// with its selection percent.
type ArgEntry struct {
	Values  map[string]any `yaml:"values"`
	Percent float64        `yaml:"percent"`
}

// Weight satisfies choose.Weighted.
func (e ArgEntry) Weight() float64 { return e.Percent }

// Arguments is the polymorphic form named in the Design Notes (§9,
// "Weighted arguments: same treatment [as Spacing]"): either a fixed value
// map, or a weighted list of them.
type Arguments struct {
	Fixed    map[string]any
	Weighted []ArgEntry
}

// IsWeighted reports whether this Arguments is the weighted-list form.
func (a Arguments) IsWeighted() bool { return a.Weighted != nil }

// Resolve implements §4.4 step 2: a weighted Arguments is chosen by percent
// and the winning entry's Values are returned; a fixed Arguments is copied
// as-is. A weighted Arguments that chooses nothing (the chance-of-nothing
// outcome, §4.3) resolves to a nil map - the parser treats that as "no
// arguments" rather than an error.
func (a Arguments) Resolve(r *rng.RNG) map[string]any {
	if !a.IsWeighted() {
		return a.Fixed
	}
	chosen, ok := choose.Among(a.Weighted, r)
	if !ok {
		return nil
	}
	return chosen.Values
}

// UnmarshalYAML accepts either a mapping (Fixed) or a sequence of
// {values, percent} entries (Weighted).
func (a *Arguments) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var seq []ArgEntry
		if err := node.Decode(&seq); err != nil {
			return kerr.New(kerr.MalformedSchema, "weighted arguments: %v", err)
		}
		a.Weighted = seq
		return nil
	}
	var m map[string]any
	if err := node.Decode(&m); err != nil {
		return kerr.New(kerr.MalformedSchema, "arguments: %v", err)
	}
	a.Fixed = m
	return nil
}

// PossibilityChild references another possibility from inside a Contents
// child list (§3).
type PossibilityChild struct {
	Title     string     `yaml:"title"`
	Type      ChildType  `yaml:"type"`
	Percent   float64    `yaml:"percent,omitempty"`
	Sizing    *Sizing    `yaml:"sizing,omitempty"`
	Stretch   *Stretch   `yaml:"stretch,omitempty"`
	Arguments *Arguments `yaml:"arguments,omitempty"`
	Source    string     `yaml:"source,omitempty"` // Final only
}

// Weight satisfies choose.Weighted for Random-mode selection (§4.5).
func (c PossibilityChild) Weight() float64 { return c.Percent }

// Contents is a Possibility's content block (§3).
type Contents struct {
	Mode      Mode                `yaml:"mode"`
	Direction *geometry.Direction `yaml:"direction,omitempty"`
	Spacing   *spacing.Spacing    `yaml:"spacing,omitempty"`
	Snap      *geometry.Direction `yaml:"snap,omitempty"`
	Limit     *int                `yaml:"limit,omitempty"`
	Children  []PossibilityChild  `yaml:"children"`
}

// Possibility is a named entry in the library (§3).
type Possibility struct {
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	Contents Contents `yaml:"contents"`
}

// Library is a PossibilityContainer: a mapping from schema title to
// Possibility, stable for the lifetime of one generation call (§3).
type Library map[string]Possibility

// Lookup finds a possibility by title, failing with UnknownPossibility if
// absent (§4.4 step 1, §7).
func (l Library) Lookup(title string) (Possibility, error) {
	p, ok := l[title]
	if !ok {
		return Possibility{}, kerr.New(kerr.UnknownPossibility, "possibility %q not found in library", title)
	}
	return p, nil
}

// Validate checks every Possibility and child reference for well-formedness
// that the parser would otherwise only discover mid-generation: a mode must
// be set, every Final child must carry a source, and every title a child
// references (by Title or, for Final, by Source) must resolve somewhere in
// the library.
func (l Library) Validate() error {
	for title, p := range l {
		if p.Contents.Mode == ModeUnset {
			return kerr.New(kerr.MalformedSchema, "possibility %q: contents.mode is not set", title)
		}
		for i, child := range p.Contents.Children {
			if child.Type == ChildTypeUnset {
				return kerr.New(kerr.UnknownChildType, "possibility %q child %d: type is not set", title, i)
			}
			if child.Type == Final {
				if child.Source == "" {
					return kerr.New(kerr.MalformedSchema, "possibility %q child %d: Final child has no source", title, i)
				}
				if _, ok := l[child.Source]; !ok {
					return kerr.New(kerr.UnknownPossibility, "possibility %q child %d: Final source %q not found", title, i, child.Source)
				}
				continue
			}
			if _, ok := l[child.Title]; !ok {
				return kerr.New(kerr.UnknownPossibility, "possibility %q child %d: title %q not found", title, i, child.Title)
			}
		}
	}
	return nil
}
