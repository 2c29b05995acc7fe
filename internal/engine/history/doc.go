// Package history provides snapshot-based undo/redo for the editor engine.
//
// Each entry is a State: a full copy of the document lines together with the
// cursor and the modified flag at the moment the checkpoint was taken.
// Restoring a state replaces the content wholesale.
//
// # History Stack
//
//	h := history.New(1000) // keep at most 1000 undo entries
//
//	h.Push(current)              // checkpoint before an edit
//	prev, ok := h.PopUndo()      // step back
//	h.PushRedo(current)          // remember where we came from
//
// Push skips a state equal to the one already on top, so edits that change
// nothing leave no trace. Clearing the redo stack when a fresh edit is
// committed is the caller's responsibility; Push itself leaves it alone
// because redo also pushes onto the undo stack.
package history
