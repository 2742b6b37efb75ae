package worldgen

import (
	"testing"

	"github.com/worldseedr/worldseedr/pkg/choice"
	"github.com/worldseedr/worldseedr/pkg/geometry"
	"github.com/worldseedr/worldseedr/pkg/kerr"
	"github.com/worldseedr/worldseedr/pkg/schema"
)

func dirPtr(d geometry.Direction) *geometry.Direction { return &d }

func rowLibrary() schema.Library {
	return schema.Library{
		"room": {
			Width: 10, Height: 10,
			Contents: schema.Contents{Mode: schema.Certain},
		},
		"row": {
			Width: 30, Height: 10,
			Contents: schema.Contents{
				Mode:      schema.Certain,
				Direction: dirPtr(geometry.Right),
				Children: []schema.PossibilityChild{
					{Title: "room", Type: schema.Known},
					{Title: "room", Type: schema.Known},
					{Title: "room", Type: schema.Known},
				},
			},
		},
	}
}

func TestNew_MissingPossibilitiesIsFatal(t *testing.T) {
	_, err := New(Settings{})
	if !kerr.Is(err, kerr.MissingSettings) {
		t.Fatalf("expected MissingSettings, got %v", err)
	}
}

func TestNew_DefaultsMaxDepthAndRandom(t *testing.T) {
	d, err := New(Settings{Possibilities: rowLibrary()})
	if err != nil {
		t.Fatal(err)
	}
	if d.maxDepth != defaultMaxDepth {
		t.Errorf("maxDepth = %d, want %d", d.maxDepth, defaultMaxDepth)
	}
	if d.rng == nil {
		t.Error("expected a default RNG to be constructed")
	}
}

func TestGenerate_S1CertainRowPacking(t *testing.T) {
	d, err := New(Settings{
		Possibilities: rowLibrary(),
		Random:        func() float64 { return 0.5 },
	})
	if err != nil {
		t.Fatal(err)
	}

	host := geometry.Position{Top: 10, Right: 30, Bottom: 0, Left: 0}
	got, err := d.Generate(Command{Title: "row", Position: host})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Children) != 3 {
		t.Fatalf("got %d children, want 3", len(got.Children))
	}
	want := []geometry.Position{
		{Top: 10, Right: 10, Bottom: 0, Left: 0},
		{Top: 10, Right: 20, Bottom: 0, Left: 10},
		{Top: 10, Right: 30, Bottom: 0, Left: 20},
	}
	for i, w := range want {
		if got.Children[i].Position != w {
			t.Errorf("child %d position = %+v, want %+v", i, got.Children[i].Position, w)
		}
	}
	if got.Position != host {
		t.Errorf("aggregate box = %+v, want host %+v", got.Position, host)
	}
}

func TestGenerate_UnknownDirectionWithNoHintOrSchemaDirection(t *testing.T) {
	lib := schema.Library{
		"bare": {
			Width: 10, Height: 10,
			Contents: schema.Contents{
				Mode:     schema.Certain,
				Children: []schema.PossibilityChild{{Title: "bare", Type: schema.Known}},
			},
		},
	}
	d, err := New(Settings{Possibilities: lib, Random: func() float64 { return 0.5 }})
	if err != nil {
		t.Fatal(err)
	}
	_, err = d.Generate(Command{Title: "bare"})
	if !kerr.Is(err, kerr.UnknownDirection) {
		t.Fatalf("expected UnknownDirection, got %v", err)
	}
}

func TestGenerate_CommandDirectionHintIsUsedWhenSchemaOmitsOne(t *testing.T) {
	lib := schema.Library{
		"room": {Width: 10, Height: 10, Contents: schema.Contents{Mode: schema.Certain}},
		"bare": {
			Width: 30, Height: 10,
			Contents: schema.Contents{
				Mode:     schema.Certain,
				Children: []schema.PossibilityChild{{Title: "room", Type: schema.Known}},
			},
		},
	}
	d, err := New(Settings{Possibilities: lib, Random: func() float64 { return 0.5 }})
	if err != nil {
		t.Fatal(err)
	}
	host := geometry.Position{Top: 10, Right: 30, Bottom: 0, Left: 0}
	got, err := d.Generate(Command{Title: "bare", Position: host, Direction: dirPtr(geometry.Right)})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(got.Children))
	}
}

func TestGenerate_UnknownModeFails(t *testing.T) {
	lib := schema.Library{
		"nomode": {Width: 10, Height: 10, Contents: schema.Contents{Mode: schema.Mode(99), Direction: dirPtr(geometry.Right)}},
	}
	d, err := New(Settings{Possibilities: lib, Random: func() float64 { return 0.5 }})
	if err != nil {
		t.Fatal(err)
	}
	_, err = d.Generate(Command{Title: "nomode", Position: geometry.Position{Top: 10, Right: 10}})
	if !kerr.Is(err, kerr.UnknownMode) {
		t.Fatalf("expected UnknownMode, got %v", err)
	}
}

func TestGenerate_DepthCeilingOnSelfReferencingSchema(t *testing.T) {
	lib := schema.Library{
		"loop": {
			Width: 10, Height: 10,
			Contents: schema.Contents{
				Mode:      schema.Repeat,
				Direction: dirPtr(geometry.Right),
				Children: []schema.PossibilityChild{
					{Title: "loop", Type: schema.ChildRandom},
				},
			},
		},
	}
	d, err := New(Settings{Possibilities: lib, Random: func() float64 { return 0.5 }, MaxDepth: 5})
	if err != nil {
		t.Fatal(err)
	}
	host := geometry.Position{Top: 10, Right: 10000, Bottom: 0, Left: 0}
	_, err = d.Generate(Command{Title: "loop", Position: host})
	if !kerr.Is(err, kerr.DepthExceeded) {
		t.Fatalf("expected DepthExceeded, got %v", err)
	}
}

func TestGenerateFull_FlushesKnownLeavesAndDescendsRandomContents(t *testing.T) {
	lib := schema.Library{
		"leaf": {Width: 10, Height: 10, Contents: schema.Contents{Mode: schema.Certain}},
		"branch": {
			Width: 10, Height: 10,
			Contents: schema.Contents{
				Mode:      schema.Certain,
				Direction: dirPtr(geometry.Right),
				Children:  []schema.PossibilityChild{{Title: "leaf", Type: schema.Known}},
			},
		},
		"root": {
			Width: 20, Height: 10,
			Contents: schema.Contents{
				Mode:      schema.Certain,
				Direction: dirPtr(geometry.Right),
				Children: []schema.PossibilityChild{
					{Title: "branch", Type: schema.ChildRandom},
					{Title: "leaf", Type: schema.Known},
				},
			},
		},
	}
	d, err := New(Settings{Possibilities: lib, Random: func() float64 { return 0.5 }})
	if err != nil {
		t.Fatal(err)
	}
	host := geometry.Position{Top: 10, Right: 20, Bottom: 0, Left: 0}
	if _, err := d.GenerateFull(Command{Title: "root", Position: host}); err != nil {
		t.Fatal(err)
	}

	var flushed []choice.Choice
	d.SetOnPlacement(func(cmds []choice.Choice) { flushed = cmds })
	d.RunGeneratedCommands()

	if len(flushed) != 2 {
		t.Fatalf("got %d flushed commands, want 2 (one leaf under branch, one leaf sibling)", len(flushed))
	}
	for _, c := range flushed {
		if c.Title != "leaf" {
			t.Errorf("flushed command %q, want leaf", c.Title)
		}
	}
}

func TestClearGeneratedCommands_EmptiesBuffer(t *testing.T) {
	d, err := New(Settings{Possibilities: rowLibrary(), Random: func() float64 { return 0.5 }})
	if err != nil {
		t.Fatal(err)
	}
	host := geometry.Position{Top: 10, Right: 30, Bottom: 0, Left: 0}
	if _, err := d.GenerateFull(Command{Title: "row", Position: host, Direction: dirPtr(geometry.Right)}); err != nil {
		t.Fatal(err)
	}
	if len(d.commands) == 0 {
		t.Fatal("expected generateFull to populate the command buffer")
	}
	d.ClearGeneratedCommands()
	if len(d.commands) != 0 {
		t.Errorf("expected empty buffer after Clear, got %d", len(d.commands))
	}
}

func TestGenerate_DeterministicAcrossRepeatedCallsWithSameSeed(t *testing.T) {
	newDriver := func() *Driver {
		d, err := New(Settings{Possibilities: rowLibrary(), Random: func() float64 { return 0.37 }})
		if err != nil {
			t.Fatal(err)
		}
		return d
	}
	host := geometry.Position{Top: 10, Right: 30, Bottom: 0, Left: 0}

	d1 := newDriver()
	got1, err := d1.Generate(Command{Title: "row", Position: host})
	if err != nil {
		t.Fatal(err)
	}
	d2 := newDriver()
	got2, err := d2.Generate(Command{Title: "row", Position: host})
	if err != nil {
		t.Fatal(err)
	}

	if len(got1.Children) != len(got2.Children) {
		t.Fatalf("child count differs: %d vs %d", len(got1.Children), len(got2.Children))
	}
	for i := range got1.Children {
		if got1.Children[i].Position != got2.Children[i].Position {
			t.Errorf("child %d differs between runs: %+v vs %+v", i, got1.Children[i].Position, got2.Children[i].Position)
		}
	}
}

func TestGenerateRandom_LimitAbortsWholeBranch(t *testing.T) {
	lib := schema.Library{
		"room": {Width: 10, Height: 10, Contents: schema.Contents{Mode: schema.Certain}},
		"strip": {
			Width: 100, Height: 10,
			Contents: schema.Contents{
				Mode:      schema.Random,
				Direction: dirPtr(geometry.Right),
				Limit:     intPtr(1),
				Children: []schema.PossibilityChild{
					{Title: "room", Type: schema.Known, Percent: 100},
				},
			},
		},
	}
	d, err := New(Settings{Possibilities: lib, Random: func() float64 { return 0.1 }})
	if err != nil {
		t.Fatal(err)
	}
	host := geometry.Position{Top: 10, Right: 100, Bottom: 0, Left: 0}
	got, err := d.Generate(Command{Title: "strip", Position: host})
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Errorf("expected nil aggregate once the limit is exceeded, got %+v", got)
	}
}

func intPtr(n int) *int { return &n }
