// Package grid defines board coordinates and side geometry.
package grid

import "fmt"

// Side identifies one edge of a cell. The numeric values are load-bearing:
// Opposite relies on the (s+2)%4 relation and border indexes are keyed by side.
type Side int

const (
	// Top is the edge facing the neighbor at row-1.
	Top Side = iota
	// Left is the edge facing the neighbor at col-1.
	Left
	// Bottom is the edge facing the neighbor at row+1.
	Bottom
	// Right is the edge facing the neighbor at col+1.
	Right

	// NumSides is the number of cell edges.
	NumSides = 4
)

// sideNames backs Side.String.
var sideNames = [NumSides]string{"top", "left", "bottom", "right"}

// String returns the lowercase side name, or "side(n)" out of range.
func (s Side) String() string {
	if s < 0 || s >= NumSides {
		return fmt.Sprintf("side(%d)", int(s))
	}
	return sideNames[s]
}

// Opposite returns the side facing s across a shared edge:
// Top↔Bottom, Left↔Right.
// Complexity: O(1).
func (s Side) Opposite() Side {
	return (s + 2) % NumSides
}

// offsets[s] is the (row, col) delta toward the neighbor across side s.
var offsets = [NumSides][2]int{
	{-1, 0}, // Top
	{0, -1}, // Left
	{1, 0},  // Bottom
	{0, 1},  // Right
}

// Coord addresses a board cell. Row grows downward, Col rightward.
type Coord struct {
	Row, Col int
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less orders coordinates by row, then column — the natural board order
// used for deterministic tie-breaking.
// Complexity: O(1).
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// InBounds reports whether c lies inside a width×height board.
// Complexity: O(1).
func (c Coord) InBounds(width, height int) bool {
	return c.Row >= 0 && c.Row < height && c.Col >= 0 && c.Col < width
}

// Neighbor is one in-bounds neighbor of a cell, paired with the side of
// the cell that faces it.
type Neighbor struct {
	Side  Side
	Coord Coord
}

// Neighbors returns the in-bounds axis-aligned neighbors of c on a
// width×height board, in fixed side order Top, Left, Bottom, Right.
// Complexity: O(1); allocates one slice of at most four entries.
func Neighbors(c Coord, width, height int) []Neighbor {
	out := make([]Neighbor, 0, NumSides)
	for s := Side(0); s < NumSides; s++ {
		n := Coord{Row: c.Row + offsets[s][0], Col: c.Col + offsets[s][1]}
		if n.InBounds(width, height) {
			out = append(out, Neighbor{Side: s, Coord: n})
		}
	}
	return out
}
