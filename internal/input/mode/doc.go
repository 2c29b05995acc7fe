// Package mode provides the modal state machine of the editor.
//
// A document is always in exactly one of five modes:
//   - Normal: navigation and commands
//   - Insert: text input, the cursor may sit one past the line end
//   - Command: a command line is being typed
//   - Search: a search target is being typed
//   - Select: one or more ranges are selected
//
// # Transitions
//
//	          ┌──────────▶ Insert ─────┐
//	          ├──────────▶ Command ────┤
//	 Normal ──┼──────────▶ Search ─────┤ Cancel
//	    ▲     └──────────▶ Select ─────┤
//	    └──────────────────────────────┘
//
// Only Normal can enter another mode, and every other mode can only return
// to Normal. A Machine enforces these rules and notifies listeners on every
// change.
package mode
