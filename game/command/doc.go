// Package command parses robot console input into structured commands.
//
// A line is a case-insensitive keyword optionally followed by
// comma-separated arguments:
//
//	PLACE 0,0,NORTH
//	MOVE
//	MOVE 2
//	use 1
//
// Parse checks the keyword against the vocabulary and the argument count
// against the keyword's shape, so a Command that reaches the commander is
// always well formed. PLACE carries x, y and the orientation; every other
// targeted command carries at most one robot id.
//
// Numbers are plain decimal digits with an optional minus sign. Leading
// zeros are ignored; hex, octal, underscores and comments are rejected.
package command
