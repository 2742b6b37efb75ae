package raster

import (
	"github.com/worldseedr/worldseedr/pkg/choice"
	"github.com/worldseedr/worldseedr/pkg/geometry"
	"github.com/worldseedr/worldseedr/pkg/kerr"
)

// Rasterize converts a generated command buffer (the Known leaves a Driver
// accumulated via GenerateFull/RunGeneratedCommands) into a TileMap: a
// "rooms" tile layer with one filled rectangle per choice, and an "entities"
// objectgroup layer carrying each choice's title and resolved arguments.
//
// World-space positions may use any origin, including negative Left/Bottom
// edges (Multiple mode fans siblings outward in both directions); Rasterize
// normalizes the whole buffer against its own bounding box before gridding,
// so the caller never needs to pre-translate coordinates.
func Rasterize(commands []choice.Choice, tileWidth, tileHeight int) (*TileMap, error) {
	if len(commands) == 0 {
		return nil, kerr.New(kerr.MalformedSchema, "raster: command buffer is empty")
	}
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, kerr.New(kerr.MalformedSchema, "raster: tile dimensions must be positive, got %dx%d", tileWidth, tileHeight)
	}

	boxes := make([]*geometry.Position, len(commands))
	for i := range commands {
		boxes[i] = &commands[i].Position
	}
	bounds, ok := geometry.WrapExtremes(boxes)
	if !ok {
		return nil, kerr.New(kerr.MalformedSchema, "raster: could not compute bounds of command buffer")
	}

	gridWidth := ceilDiv(int(bounds.Width()), tileWidth)
	gridHeight := ceilDiv(int(bounds.Height()), tileHeight)
	if gridWidth <= 0 {
		gridWidth = 1
	}
	if gridHeight <= 0 {
		gridHeight = 1
	}

	tm := NewTileMap(gridWidth, gridHeight, tileWidth, tileHeight)
	rooms := AddLayer(tm, "rooms", "tilelayer")
	entities := AddLayer(tm, "entities", "objectgroup")

	for i, c := range commands {
		x := int((c.Left - bounds.Left) / float64(tileWidth))
		y := int((bounds.Top - c.Top) / float64(tileHeight))
		w := ceilDiv(int(c.Width()), tileWidth)
		h := ceilDiv(int(c.Height()), tileHeight)
		if w <= 0 {
			w = 1
		}
		if h <= 0 {
			h = 1
		}
		FillRect(rooms.Data, x, y, w, h, tm.Width, tm.Height, titleTile(c.Title))

		entities.Objects = append(entities.Objects, Object{
			ID:         i,
			Name:       c.Title,
			Type:       c.Type.String(),
			X:          c.Left - bounds.Left,
			Y:          bounds.Top - c.Top,
			Width:      c.Width(),
			Height:     c.Height(),
			Properties: c.Arguments,
		})
	}

	return tm, nil
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// titleTile derives a stable, non-zero tile value from a choice's title so
// that the same library produces the same rendered tile map every run -
// zero is reserved for "empty" by FillRect/GetTile's convention.
func titleTile(title string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(title); i++ {
		h ^= uint32(title[i])
		h *= 16777619
	}
	if h == 0 {
		h = 1
	}
	return h
}
