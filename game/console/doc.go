// Package console runs the interactive robot shell.
//
// Console prints a banner, then repeatedly shows a prompt naming the active
// robot ("Robocom:>" or "Robocom (2):>"), reads one line, and hands it to the
// commander. Output is styled with lipgloss; styles are bound to the output
// writer, so redirected output is plain text. LIST and SHOWLOG render as
// tables.
//
// No error ends the loop. It stops on QUIT, at end of input, or when the
// context passed to Run is cancelled.
package console
