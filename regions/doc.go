// Package regions implements the concrete UI regions: the splash logo, the
// main menu, scrollable text panels, the status line and the score editor.
// Each region is self-contained and talks to the rest of the application only
// through commands.
package regions
