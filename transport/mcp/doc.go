// Package mcp provides a Model Context Protocol server for the toy robot simulator.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for every fleet operation
//   - A raw command tool sharing the console's parser
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - place: place the active robot or create a new one
//   - use: select or deselect a robot
//   - move, left, right: change position or facing
//   - undo, reboot, remove, destroy: restore, reset, un-place or delete
//   - report, list, show_log: inspect robots
//   - execute: run one console command line
//
// Targeting:
//
// Tools that act on a single robot accept an optional robot_id. Without it
// the commander's active robot is used, exactly as in the console.
//
// Usage:
//
//	srv := mcp.NewServer(fleet, version, logger, recorder)
//	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
//		return err
//	}
//
// The server speaks over stdio only and serves a single client. Failed
// commands come back as tool errors prefixed with their outcome, such as
// "validation:" or "selection:".
package mcp
