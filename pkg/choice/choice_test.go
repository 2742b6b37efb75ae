package choice

import (
	"testing"

	"github.com/worldseedr/worldseedr/pkg/geometry"
	"github.com/worldseedr/worldseedr/pkg/kerr"
	"github.com/worldseedr/worldseedr/pkg/rng"
	"github.com/worldseedr/worldseedr/pkg/schema"
)

func lib() schema.Library {
	return schema.Library{
		"a": schema.Possibility{Width: 10, Height: 10, Contents: schema.Contents{Mode: schema.Certain}},
		"b": schema.Possibility{Width: 20, Height: 10, Contents: schema.Contents{Mode: schema.Certain}},
		"tree": schema.Possibility{Width: 16, Height: 16, Contents: schema.Contents{Mode: schema.Certain}},
		"snapped": schema.Possibility{
			Width: 10, Height: 30,
			Contents: schema.Contents{Mode: schema.Certain, Snap: snapPtr(geometry.Bottom)},
		},
	}
}

func snapPtr(d geometry.Direction) *geometry.Direction { return &d }

// TestParse_S1CertainModeRightPacking is scenario S1: a "row" possibility
// packing two Known children to the right.
func TestParse_S1CertainModeRightPacking(t *testing.T) {
	l := lib()
	host := geometry.Position{Top: 10, Right: 30, Bottom: 0, Left: 0}

	got, err := Parse(schema.PossibilityChild{Title: "a", Type: schema.Known}, l, host, geometry.Right, rng.New(1))
	if err != nil {
		t.Fatal(err)
	}
	want := geometry.Position{Top: 10, Right: 10, Bottom: 0, Left: 0}
	if got.Position != want {
		t.Errorf("child a position = %+v, want %+v", got.Position, want)
	}

	geometry.Shrink(&host, got.Position, geometry.Right, 0)
	got2, err := Parse(schema.PossibilityChild{Title: "b", Type: schema.Known}, l, host, geometry.Right, rng.New(1))
	if err != nil {
		t.Fatal(err)
	}
	want2 := geometry.Position{Top: 10, Right: 30, Bottom: 0, Left: 10}
	if got2.Position != want2 {
		t.Errorf("child b position = %+v, want %+v", got2.Position, want2)
	}
}

// TestParse_S5Snap is scenario S5: snap=bottom on a host {bottom:0,top:100}
// with child height 30 yields child bottom=0, top=30.
func TestParse_S5Snap(t *testing.T) {
	l := lib()
	host := geometry.Position{Top: 100, Right: 10, Bottom: 0, Left: 0}
	got, err := Parse(schema.PossibilityChild{Title: "snapped", Type: schema.Known}, l, host, geometry.Right, rng.New(1))
	if err != nil {
		t.Fatal(err)
	}
	if got.Bottom != 0 || got.Top != 30 {
		t.Errorf("snapped child = %+v, want Bottom=0 Top=30", got.Position)
	}
}

// TestParseFinal_S6CopiesSourceDimensions is scenario S6.
func TestParseFinal_S6CopiesSourceDimensions(t *testing.T) {
	l := lib()
	host := geometry.Position{Top: 50, Right: 50, Bottom: 0, Left: 0}
	child := schema.PossibilityChild{Title: "final-thing", Type: schema.Final, Source: "tree"}
	got, err := ParseFinal(child, l, host, rng.New(1))
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != schema.Known {
		t.Errorf("ParseFinal type = %v, want Known", got.Type)
	}
	if got.Width != 16 || got.Height != 16 {
		t.Errorf("ParseFinal dims = %dx%d, want 16x16", got.Width, got.Height)
	}
	if got.Position != host {
		t.Errorf("ParseFinal position = %+v, want host %+v", got.Position, host)
	}
}

func TestParseFinal_MissingSourceIsMalformed(t *testing.T) {
	_, err := ParseFinal(schema.PossibilityChild{Title: "x", Type: schema.Final}, lib(), geometry.Position{}, rng.New(1))
	if !kerr.Is(err, kerr.MalformedSchema) {
		t.Fatalf("expected MalformedSchema, got %v", err)
	}
}

func TestParse_UnknownTitleFails(t *testing.T) {
	_, err := Parse(schema.PossibilityChild{Title: "ghost", Type: schema.Known}, lib(), geometry.Position{}, geometry.Right, rng.New(1))
	if !kerr.Is(err, kerr.UnknownPossibility) {
		t.Fatalf("expected UnknownPossibility, got %v", err)
	}
}

func TestParse_StretchFillsHostAndMirrorsArguments(t *testing.T) {
	l := lib()
	host := geometry.Position{Top: 10, Right: 40, Bottom: 0, Left: 0}
	child := schema.PossibilityChild{Title: "a", Type: schema.Known, Stretch: &schema.Stretch{Width: true}}
	got, err := Parse(child, l, host, geometry.Right, rng.New(1))
	if err != nil {
		t.Fatal(err)
	}
	if got.Left != 0 || got.Right != 40 {
		t.Errorf("stretched width position = %+v, want Left=0 Right=40", got.Position)
	}
	if got.Arguments["width"] != 40 {
		t.Errorf("stretched arguments[width] = %v, want 40", got.Arguments["width"])
	}
}

func TestChooseAmongPosition_FiltersByFit(t *testing.T) {
	l := lib()
	small := geometry.Position{Top: 10, Right: 10, Bottom: 0, Left: 0}
	children := []schema.PossibilityChild{
		{Title: "b", Type: schema.Known, Percent: 100}, // 20x10, doesn't fit
		{Title: "a", Type: schema.Known, Percent: 100}, // 10x10, fits
	}
	got, ok := ChooseAmongPosition(children, small, l, rng.New(1))
	if !ok || got.Title != "a" {
		t.Errorf("ChooseAmongPosition = %+v, %v; want a, true", got, ok)
	}
}

func TestChooseAmongPosition_NoneFit(t *testing.T) {
	l := lib()
	tiny := geometry.Position{Top: 1, Right: 1, Bottom: 0, Left: 0}
	children := []schema.PossibilityChild{{Title: "a", Type: schema.Known, Percent: 100}}
	_, ok := ChooseAmongPosition(children, tiny, l, rng.New(1))
	if ok {
		t.Error("expected no fit for a 1x1 host against a 10x10 schema")
	}
}
