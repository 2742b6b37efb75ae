package worldgen

import (
	"log"
	"time"

	"github.com/worldseedr/worldseedr/pkg/choice"
	"github.com/worldseedr/worldseedr/pkg/geometry"
	"github.com/worldseedr/worldseedr/pkg/kerr"
	"github.com/worldseedr/worldseedr/pkg/rng"
	"github.com/worldseedr/worldseedr/pkg/schema"
	"github.com/worldseedr/worldseedr/pkg/spacing"
)

// defaultMaxDepth bounds schema self-reference (§9: "do not attempt static
// cycle detection. Do detect infinite loops at runtime by capping recursion
// depth with a configurable ceiling"). Not present in the original source;
// a recommended addition.
const defaultMaxDepth = 128

// Settings configures a Driver (§6 "Configure").
type Settings struct {
	// Possibilities is the schema library generation draws against. Required.
	Possibilities schema.Library

	// Random is a function returning a number in [0, 1); defaults to a
	// time-seeded source when nil.
	Random func() float64

	// OnPlacement receives the command buffer on RunGeneratedCommands;
	// defaults to a logging sink.
	OnPlacement func([]choice.Choice)

	// MaxDepth overrides the recursion-depth ceiling; defaults to 128.
	MaxDepth int
}

// Driver is the recursive driver (§4.6): it looks up a schema, dispatches
// to the mode generator matching its contents, recurses into non-terminal
// children, and accumulates terminal children into a command buffer.
type Driver struct {
	lib         schema.Library
	rng         *rng.RNG
	onPlacement func([]choice.Choice)
	maxDepth    int
	commands    []choice.Choice
}

// New constructs a Driver. Constructing one without a possibility library
// is a MissingSettings error (§7).
func New(settings Settings) (*Driver, error) {
	if settings.Possibilities == nil {
		return nil, kerr.New(kerr.MissingSettings, "worldgen: Settings.Possibilities is required")
	}

	var r *rng.RNG
	if settings.Random != nil {
		r = rng.FromFunc(0, settings.Random)
	} else {
		r = rng.New(uint64(time.Now().UnixNano()))
	}

	onPlacement := settings.OnPlacement
	if onPlacement == nil {
		onPlacement = func(cmds []choice.Choice) {
			log.Printf("worldgen: flushing %d generated command(s)", len(cmds))
		}
	}

	maxDepth := settings.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	return &Driver{lib: settings.Possibilities, rng: r, onPlacement: onPlacement, maxDepth: maxDepth}, nil
}

// Possibilities returns the library the driver currently generates against
// (§6 "Introspection").
func (d *Driver) Possibilities() schema.Library { return d.lib }

// SetPossibilities swaps the library. Safe between generation calls; not
// during one (§5).
func (d *Driver) SetPossibilities(lib schema.Library) { d.lib = lib }

// SetOnPlacement replaces the placement callback.
func (d *Driver) SetOnPlacement(f func([]choice.Choice)) { d.onPlacement = f }

// Command is a generate entry point's input: the schema title to expand,
// the host region it must fit within, and an optional direction hint used
// only when the schema itself doesn't declare contents.direction.
type Command struct {
	Title     string
	Position  geometry.Position
	Direction *geometry.Direction
}

// Generate implements generate(name, command) (§4.6): merge the command's
// Position with the schema (the host region is authoritative), resolve the
// layout direction, and dispatch to the matching mode generator. Returns
// (nil, nil) when the chosen mode produced no children at all - the
// caller's "branch produced nothing" case (§4.5 Random, §8 S3).
func (d *Driver) Generate(cmd Command) (*choice.Choice, error) {
	return d.generate(cmd, 0)
}

func (d *Driver) generate(cmd Command, depth int) (*choice.Choice, error) {
	if depth > d.maxDepth {
		return nil, kerr.New(kerr.DepthExceeded, "generation recursion exceeded depth %d at %q", d.maxDepth, cmd.Title)
	}

	sch, err := d.lib.Lookup(cmd.Title)
	if err != nil {
		return nil, err
	}

	dir := cmd.Direction
	if sch.Contents.Direction != nil {
		dir = sch.Contents.Direction
	}
	if dir == nil {
		return nil, kerr.New(kerr.UnknownDirection, "possibility %q: no layout direction available (schema omits contents.direction and no caller hint was supplied)", cmd.Title)
	}

	spacingVal := 0.0
	if sch.Contents.Spacing != nil {
		spacingVal, err = spacing.Calculate(*sch.Contents.Spacing, d.rng)
		if err != nil {
			return nil, err
		}
	}

	recurse := func(title string, pos geometry.Position, nextDepth int) (*choice.Choice, error) {
		return d.generate(Command{Title: title, Position: pos}, nextDepth)
	}

	var children []choice.Choice
	switch sch.Contents.Mode {
	case schema.Certain:
		children, err = generateCertain(sch.Contents, cmd.Position, *dir, spacingVal, d.lib, d.rng, depth, recurse)
	case schema.Repeat:
		children, err = generateRepeat(sch.Contents, cmd.Position, *dir, spacingVal, d.lib, d.rng, depth, recurse)
	case schema.Random:
		children, err = generateRandom(sch.Contents, cmd.Position, *dir, spacingVal, d.lib, d.rng, depth, recurse)
	case schema.Multiple:
		children, err = generateMultiple(sch.Contents, cmd.Position, *dir, spacingVal, d.lib, d.rng, depth, recurse)
	case schema.ModeUnset:
		return nil, kerr.New(kerr.MalformedSchema, "possibility %q: contents.mode is not set", cmd.Title)
	default:
		return nil, kerr.New(kerr.UnknownMode, "possibility %q: unrecognized contents.mode %d", cmd.Title, int(sch.Contents.Mode))
	}
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return nil, nil
	}

	boxes := make([]*geometry.Position, len(children))
	for i := range children {
		boxes[i] = &children[i].Position
	}
	box, ok := geometry.WrapExtremes(boxes)
	if !ok {
		return nil, nil
	}

	return &choice.Choice{
		Position: box,
		Title:    cmd.Title,
		Type:     schema.Known,
		Width:    sch.Width,
		Height:   sch.Height,
		Children: children,
	}, nil
}

// GenerateFull implements generateFull(command) (§4.6): generate the
// aggregate for cmd, then walk its children, appending Known leaves to the
// command buffer and descending into Random children's already-expanded
// Contents (populated during generation by the mode generator, §4.5). It
// returns the same aggregate Generate would have returned for an identical
// call - callers that want both the full tree (for export or invariant
// checking) and the flattened command buffer should call GenerateFull once
// rather than calling Generate and GenerateFull separately, which would
// generate twice and consume the RNG twice for no reason.
func (d *Driver) GenerateFull(cmd Command) (*choice.Choice, error) {
	agg, err := d.generate(cmd, 0)
	if err != nil {
		return nil, err
	}
	if agg == nil {
		return nil, nil
	}
	if err := d.walkChildren(agg.Children); err != nil {
		return nil, err
	}
	return agg, nil
}

func (d *Driver) walkChildren(children []choice.Choice) error {
	for i := range children {
		c := children[i]
		switch c.Type {
		case schema.Known:
			d.commands = append(d.commands, c)
		case schema.ChildRandom:
			if c.Contents == nil {
				continue // this branch recursed to nothing; nothing to flush
			}
			if err := d.walkChildren(c.Contents.Children); err != nil {
				return err
			}
		default:
			return kerr.New(kerr.UnknownChildType, "generateFull: child %q has unrecognized type %v", c.Title, c.Type)
		}
	}
	return nil
}

// ClearGeneratedCommands empties the command buffer.
func (d *Driver) ClearGeneratedCommands() {
	d.commands = nil
}

// RunGeneratedCommands flushes the command buffer to the placement
// callback. Does not clear it - call ClearGeneratedCommands first if the
// next generation pass should start from empty.
func (d *Driver) RunGeneratedCommands() {
	d.onPlacement(d.commands)
}
