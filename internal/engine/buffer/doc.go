// Package buffer provides the line store and position types for the editor
// engine.
//
// Content is held as an ordered slice of lines. The store is never empty:
// removing the last remaining line leaves a single empty line behind.
//
// Position Types:
//
//   - Pos: line and column, both 1-based, column counted in runes
//   - Range: a start and end Pos
//
// Column Bounds:
//
// A column may address one slot past the last rune of a line (the insertion
// point at end of line) only while inserting, or when the line is empty.
// Bound clamps an arbitrary candidate into that valid space:
//
//	lines := buffer.NewLines([]string{"hello"})
//	buffer.Bound(lines, buffer.Pos{Line: 9, Col: 0}, false) // (1:1)
//	buffer.Bound(lines, buffer.Pos{Line: 1, Col: 9}, false) // (1:5)
//	buffer.Bound(lines, buffer.Pos{Line: 1, Col: 9}, true)  // (1:6)
//
// Addressing a line that does not exist is never an error. Reads report
// absence and writes are ignored.
//
// The store performs no locking; it is owned by a single editing session.
package buffer
