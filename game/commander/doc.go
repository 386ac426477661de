// Package commander coordinates a fleet of robots on a shared playground.
//
// The commander package implements:
//   - The robot registry keyed by integer id
//   - Active-robot selection for commands given without an id
//   - Id allocation and the fleet size limit
//   - Validate-then-commit placement and movement
//   - A dispatch table from command keys to handlers
//
// Architecture:
//
// Commander sits between the outer surfaces (console, MCP tools, script
// replay) and the engine. Callers either invoke typed methods such as Move
// or Place, or pass a parsed command.Command to Execute. Both paths share the
// same lock, so a LIST always sees a consistent fleet.
//
// A candidate position is validated against the playground before any robot
// is touched. A refused candidate yields a *PositionRejectedError carrying
// the coded validation errors; every other failure is one of the sentinel
// errors in this package, and Classify maps any of them onto an Outcome.
//
// Usage:
//
//	c, err := commander.New(commander.Options{
//		MaxRobots:  10,
//		StepSize:   1,
//		Playground: engine.Playground{Width: 5, Height: 5},
//	}, logger)
//	if err != nil {
//		return err
//	}
//
//	cmd, err := c.ParseCommand("PLACE 0,0,NORTH")
//	if err != nil {
//		return err
//	}
//	res, err := c.Execute(cmd)
//
// QUIT never ends the process itself. Execute returns a Result with Quit set
// and the caller decides what to do.
package commander
