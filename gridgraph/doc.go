// Package gridgraph treats a square n×n occupancy grid as an implicit graph:
// every free cell is a vertex and orthogonally adjacent free cells share an
// unweighted edge.
//
// What:
//
//   - Grid wraps (or copies) row-major blocked flags: blocked[row*n+col] != 0
//     marks an impassable cell. Any nonzero value counts as blocked.
//   - Cells are addressed by a single linear index idx = row*n + col.
//   - NeighborOffsets fixes the 4-neighbor order: up, down, left, right.
//   - ConnectedComponents groups free cells into 4-connected regions.
//   - ParseRows reads text mazes ('#' or 'X' = wall, '.' = free,
//     'S'/'G' = free start/goal markers).
//
// Why:
//
//   - Pathfinding: a shared, read-only grid may be handed to many concurrent
//     searches without copying.
//   - Diagnostics: region counts explain why two cells cannot be joined.
//
// Complexity:
//
//   - Wrap:                O(1), Memory: O(1) (no copy).
//   - FromRows, ParseRows: O(n²), Memory: O(n²).
//   - ConnectedComponents: O(n²·4), Memory: O(n²).
//
// Errors:
//
//   - ErrEmptyGrid: size is zero or negative, or input has no rows.
//   - ErrNonSquare: rows are ragged or their count differs from their length.
//   - ErrShortBlocked: flag slice holds fewer than n² entries.
//   - ErrBadCell: unknown character in a text row.
package gridgraph
