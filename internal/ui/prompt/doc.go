// Package prompt implements the interactive prompts used by openhooks on a
// terminal.
//
// Available prompts:
//   - [Terminal.AskChoice]: single selection from a list
//   - [Terminal.AskMultiSelect]: fuzzy-filtered multi selection
//   - [Terminal.AskText]: single-line text input with a default
package prompt
