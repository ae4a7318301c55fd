// Package grid provides the board geometry beneath the collapse engine:
// coordinates, sides, side opposition and in-bounds neighbor enumeration.
//
// What:
//
//   - Coord addresses a board cell as (Row, Col) with natural ordering.
//   - Side names the four edges of a cell (Top, Left, Bottom, Right) and
//     knows its opposite across a shared edge.
//   - Neighbors enumerates the valid axis-aligned neighbors of a cell
//     together with the side of the cell facing each neighbor.
//
// Why:
//
//   - Constraint propagation: a placed tile constrains each neighbor
//     through the edge it shares with it; the (Side, Coord) pairing is
//     exactly the information the engine needs.
//
// Complexity:
//
//   - All operations are O(1); Neighbors allocates one slice of ≤4 entries.
package grid
