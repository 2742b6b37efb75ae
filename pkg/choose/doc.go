// Package choose implements the weighted chooser (§4.3): draw a percentage
// in [1, 100] and walk a list accumulating each item's declared weight,
// returning the first item whose running sum reaches the draw. It is shared
// by pkg/spacing (weighted spacing forms) and pkg/choice (random-mode child
// selection) so both match the exact same selection rule.
package choose
