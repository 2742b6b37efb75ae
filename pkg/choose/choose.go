package choose

import "github.com/worldseedr/worldseedr/pkg/rng"

// Weighted is anything choose_among can draw from: an item that declares its
// own selection weight as an author-supplied percentage. Percentages need
// not sum to 100 - see Among.
type Weighted interface {
	Weight() float64
}

// Among implements choose_among: empty list chooses nothing; a single
// element is always chosen; otherwise draw g in [1, 100] and return the
// first item whose cumulative weight reaches g. If no cumulative sum
// reaches g - which happens when weights sum to less than 100 - Among
// returns ok=false. Callers must tolerate that "chance of nothing" outcome;
// it is not an error.
func Among[T Weighted](items []T, r *rng.RNG) (chosen T, ok bool) {
	switch len(items) {
	case 0:
		return chosen, false
	case 1:
		return items[0], true
	}

	g := float64(r.Percentage())
	sum := 0.0
	for _, it := range items {
		sum += it.Weight()
		if sum >= g {
			return it, true
		}
	}
	return chosen, false
}

// AmongFitting is choose_among_position: filter items to those satisfying
// fits, then run Among over the survivors.
func AmongFitting[T Weighted](items []T, fits func(T) bool, r *rng.RNG) (chosen T, ok bool) {
	filtered := make([]T, 0, len(items))
	for _, it := range items {
		if fits(it) {
			filtered = append(filtered, it)
		}
	}
	return Among(filtered, r)
}
