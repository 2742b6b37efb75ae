// Package choice implements the Choice Parser (§4.4): turning an abstract
// PossibilityChild plus a host Position and layout direction into a
// concrete Choice rectangle, and the random-mode selection wrappers
// (choose_among / choose_among_position) specialized to PossibilityChild.
package choice
