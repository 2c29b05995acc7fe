// Package engine provides the text-editing core of vedit.
//
// The engine package serves as the main facade, combining the line store,
// cursor bounds, modes, snapshot undo/redo, word scanning and search into a
// single Document owned by one editing session.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: positions, bounds clamping and the line store
//   - scan: word and line boundary scanning
//   - history: snapshot undo/redo stacks
//   - search: inline and cross-line substring search
//   - cursor: secondary cursor set
//
// # Positions
//
// Positions are 1-based in both axes and columns count runes. Every
// operation that moves the cursor routes the candidate through buffer.Bound,
// so the cursor is always valid for the current mode: Insert mode allows the
// column one past the end of a line, other modes do not.
//
// # Operations
//
// Edits come in two forms. The ...At methods take a position, apply the edit
// and return the resulting position without moving the cursor. The cursor
// methods (Insert, Del, BreakLine, ...) apply the same edit at the cursor and
// store the result.
//
//	doc := engine.New(engine.WithLines([]string{"fn main() {", "}"}))
//	doc.StartInsert()
//	doc.MoveTo(buffer.NewPos(1, 12))
//	doc.BreakLine() // new line indented by one tab
//	doc.Insert('x')
//
// Addressing a missing line or an empty range is a silent no-op.
//
// # Undo
//
// Undo is snapshot based. A checkpoint captures the whole content, the
// cursor and the modified flag. Break runes, pastes, line breaks, joins and
// line deletions commit a checkpoint first, so a run of plain characters
// undoes as one unit. The first edit after a clean state also commits one.
// Any new edit clears the redo stack.
//
// # Thread Safety
//
// A Document is not safe for concurrent use. It is owned by a single
// session that serializes all calls.
package engine
