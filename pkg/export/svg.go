package export

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/worldseedr/worldseedr/pkg/choice"
	"github.com/worldseedr/worldseedr/pkg/geometry"
	"github.com/worldseedr/worldseedr/pkg/kerr"
)

// SVGOptions configures the diagram export.
type SVGOptions struct {
	Width      int    // Canvas width in pixels
	Height     int    // Canvas height in pixels
	Margin     int    // Canvas margin in pixels (default: 40)
	ShowLabels bool   // Show choice title labels
	ShowTree   bool   // Draw the full Choice tree, dimmed, behind the command buffer
	Title      string // Optional header title
}

// DefaultSVGOptions returns sensible default export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:      1200,
		Height:     900,
		Margin:     40,
		ShowLabels: true,
		ShowTree:   true,
		Title:      "WorldSeedr generation",
	}
}

// ExportSVG renders commands (one rectangle per Known choice, labeled by
// title) as an SVG diagram. When opts.ShowTree and tree are non-nil, the
// full Choice tree is drawn first, dimmed, as a backdrop - it shows the
// packing structure the command buffer was flattened out of.
func ExportSVG(commands []choice.Choice, tree *choice.Choice, opts SVGOptions) ([]byte, error) {
	if len(commands) == 0 {
		return nil, kerr.New(kerr.MalformedSchema, "export: command buffer is empty")
	}
	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 900
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	boxes := make([]*geometry.Position, len(commands))
	for i := range commands {
		boxes[i] = &commands[i].Position
	}
	bounds, ok := geometry.WrapExtremes(boxes)
	if !ok {
		return nil, kerr.New(kerr.MalformedSchema, "export: could not compute bounds of command buffer")
	}

	proj := projector{bounds: bounds, opts: opts}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#1a1a2e")

	if opts.ShowTree && tree != nil {
		drawTree(canvas, tree, proj, 0)
	}
	for _, c := range commands {
		drawChoice(canvas, c, proj, "fill:#4299e1;stroke:#fff;stroke-width:1", "#e2e8f0")
	}
	if opts.Title != "" {
		canvas.Text(opts.Width/2, opts.Margin/2, opts.Title, "text-anchor:middle;font-size:20px;fill:#fff")
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders and writes an SVG export to filepath with 0644
// permissions.
func SaveSVGToFile(commands []choice.Choice, tree *choice.Choice, filepath string, opts SVGOptions) error {
	data, err := ExportSVG(commands, tree, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// projector maps a generated command buffer's world-space bounds onto the
// canvas, accounting for the generator's Y-up geometry (Top > Bottom)
// against SVG's Y-down pixel space.
type projector struct {
	bounds geometry.Position
	opts   SVGOptions
}

func (p projector) scale() float64 {
	usableW := float64(p.opts.Width - 2*p.opts.Margin)
	usableH := float64(p.opts.Height - 2*p.opts.Margin)
	sx := usableW / maxFloat(p.bounds.Width(), 1)
	sy := usableH / maxFloat(p.bounds.Height(), 1)
	return minFloat(sx, sy)
}

// rect converts a world-space Position to canvas pixel coordinates:
// (x, y) of the top-left corner, width, height.
func (p projector) rect(pos geometry.Position) (x, y, w, h int) {
	s := p.scale()
	x = p.opts.Margin + int((pos.Left-p.bounds.Left)*s)
	y = p.opts.Margin + int((p.bounds.Top-pos.Top)*s)
	w = int(pos.Width() * s)
	h = int(pos.Height() * s)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return x, y, w, h
}

func drawChoice(canvas *svg.SVG, c choice.Choice, proj projector, style, labelColor string) {
	x, y, w, h := proj.rect(c.Position)
	canvas.Rect(x, y, w, h, style)
	if proj.opts.ShowLabels && c.Title != "" {
		canvas.Text(x+w/2, y+h/2, c.Title, fmt.Sprintf("text-anchor:middle;font-size:11px;fill:%s", labelColor))
	}
}

// drawTree recurses the full Choice tree - every Children entry, and every
// Random choice's expanded Contents - rendering each as a dimmed outline so
// the command buffer's flattened leaves stand out against the structure
// they were drawn from.
func drawTree(canvas *svg.SVG, node *choice.Choice, proj projector, depth int) {
	if node == nil {
		return
	}
	if depth > 0 {
		drawChoice(canvas, *node, proj, "fill:none;stroke:#4a5568;stroke-width:1;stroke-dasharray:3,3", "#718096")
	}
	for i := range node.Children {
		drawTree(canvas, &node.Children[i], proj, depth+1)
	}
	if node.Contents != nil {
		drawTree(canvas, node.Contents, proj, depth+1)
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
