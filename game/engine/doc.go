// Package engine provides the value types and single-robot state machine of
// the toy robot simulator.
//
// The engine package implements:
//   - Orientation with clockwise quarter-turns
//   - Position values and step advancement
//   - Playground envelopes and coded position validation
//   - The Robot state machine with its movement log
//
// Core Types:
//
// Position is a plain value; copying it never aliases another robot's state.
// Validate checks a candidate Position against a Playground and returns every
// failed check as a coded ValidationError, in a fixed order. Robot applies
// already-validated transitions and records one LogEntry per applied command.
//
// Usage:
//
//	pg := engine.Playground{Width: 5, Height: 5}
//	start := engine.Position{X: 0, Y: 0, Facing: engine.North}
//	if res := engine.Validate(start, pg); !res.Valid {
//		return res.Err()
//	}
//
//	robot := engine.NewRobot(1)
//	robot.Place(start)
//
//	next := robot.Report().Advance(1)
//	if engine.Validate(next, pg).Valid {
//		robot.Move(1)
//	}
//
// Rules:
//
// A robot only changes position while it is placed and switched on, yet every
// Move and turn is logged. Reboot returns to the initial position and leaves a
// single log entry; Remove un-places the robot and clears its log; Undo restores
// the position saved before the most recent change.
package engine
