// Package config provides settings management for the toy robot simulator.
//
// The config package handles:
//   - Built-in defaults for every setting
//   - Loading a YAML or JSON settings file
//   - Environment variable overrides with the TOYROBOT_ prefix
//   - Validation of limits, log level and log format
//   - Writing a starter settings file
//
// Configuration Format:
//
//	commander:
//	  max_robots: 10
//	  allow_boundaries: false
//	  collisions_detected: false
//	playground:
//	  width: 5
//	  height: 5
//	robot:
//	  step_size: 1
//	log:
//	  level: info
//	  format: console
//
// Environment variables split on the first underscore after the prefix, so
// TOYROBOT_PLAYGROUND_WIDTH sets playground.width and
// TOYROBOT_COMMANDER_MAX_ROBOTS sets commander.max_robots.
//
// Usage:
//
//	manager, err := config.NewManager("toyrobot.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fleet, err := commander.New(manager.Settings().CommanderOptions(), logger)
//
// collisions_detected is accepted and passed through to the playground, but
// no rule consults it.
package config
