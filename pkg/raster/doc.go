// Package raster bridges a generated command buffer to a tile grid: one
// concrete consumer of the kernel's output, demonstrating the game-engine
// integration the generator itself stays agnostic to.
package raster
