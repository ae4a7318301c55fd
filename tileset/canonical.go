package tileset

import "github.com/katalvlaran/tilewave/bitmap"

// canonicalize enumerates the eight symmetry variants of base (reflection
// crossed with quarter-turn rotation, reflection applied first) and drops
// every variant whose transformed pixel content duplicates an earlier one.
// A fully symmetric tile therefore collapses to a single variant; a fully
// asymmetric one keeps all eight. Survivors come back sorted by identity.
// Complexity: O(V²×W×H) for V ≤ 8 variants — the pairwise dedup is bounded
// by the constant variant count.
func canonicalize(ref string, base *bitmap.Image) ([]*Tile, error) {
	seen := make([]*bitmap.Image, 0, 8)
	survivors := make([]*Tile, 0, 8)
	for _, reflected := range []bool{false, true} {
		for rotation := 0; rotation < 4; rotation++ {
			t, err := NewTile(ref, reflected, rotation, base)
			if err != nil {
				return nil, err
			}
			if duplicates(seen, t.Image()) {
				continue
			}
			seen = append(seen, t.Image())
			survivors = append(survivors, t)
		}
	}
	sortTiles(survivors)
	return survivors, nil
}

// duplicates reports whether img pixel-matches any previously kept image.
func duplicates(seen []*bitmap.Image, img *bitmap.Image) bool {
	for _, s := range seen {
		if s.Equal(img) {
			return true
		}
	}
	return false
}
