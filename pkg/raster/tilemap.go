package raster

import "fmt"

// TileMap is a rasterized command buffer: a layered 2D grid, the same shape
// a Tiled-style map editor or game engine expects to import.
type TileMap struct {
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Layers     map[string]*Layer
}

// Layer is a single named layer in a TileMap: either a tile grid ("tilelayer")
// or a list of positioned entities ("objectgroup").
type Layer struct {
	ID      int
	Name    string
	Type    string
	Visible bool
	Opacity float64
	Data    []uint32
	Objects []Object
}

// Object is one entity placed on an objectgroup layer - here, one Known
// choice from the generated command buffer.
type Object struct {
	ID         int
	Name       string
	Type       string
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Properties map[string]any
}

// NewTileMap allocates an empty grid of the given dimensions.
func NewTileMap(width, height, tileWidth, tileHeight int) *TileMap {
	return &TileMap{
		Width:      width,
		Height:     height,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Layers:     make(map[string]*Layer),
	}
}

// AddLayer creates and registers a new layer. layerType is "tilelayer" or
// "objectgroup".
func AddLayer(tm *TileMap, name, layerType string) *Layer {
	layer := &Layer{
		ID:      len(tm.Layers),
		Name:    name,
		Type:    layerType,
		Visible: true,
		Opacity: 1.0,
	}
	switch layerType {
	case "tilelayer":
		layer.Data = make([]uint32, tm.Width*tm.Height)
	case "objectgroup":
		layer.Objects = []Object{}
	}
	tm.Layers[name] = layer
	return layer
}

// GetTile returns the tile value at (x, y), or 0 if out of bounds.
func GetTile(data []uint32, x, y, width, height int) uint32 {
	if x < 0 || x >= width || y < 0 || y >= height {
		return 0
	}
	return data[y*width+x]
}

// SetTile writes value at (x, y). Returns an error if the coordinate is out
// of bounds.
func SetTile(data []uint32, x, y, width, height int, value uint32) error {
	if x < 0 || x >= width || y < 0 || y >= height {
		return fmt.Errorf("raster: position (%d, %d) out of bounds [0, %d) x [0, %d)", x, y, width, height)
	}
	data[y*width+x] = value
	return nil
}

// FillRect sets every tile in the w x h rectangle anchored at (x, y) to
// value, clipping silently at the grid edge rather than failing - a choice
// whose declared extent runs past the rasterized bounds still paints as
// much of itself as fits.
func FillRect(data []uint32, x, y, w, h, width, height int, value uint32) {
	for dy := 0; dy < h; dy++ {
		ty := y + dy
		if ty < 0 || ty >= height {
			continue
		}
		for dx := 0; dx < w; dx++ {
			tx := x + dx
			if tx < 0 || tx >= width {
				continue
			}
			_ = SetTile(data, tx, ty, width, height, value)
		}
	}
}
