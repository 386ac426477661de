package commander

import (
	"github.com/google/uuid"

	"github.com/wricardo/mcp-training/toyrobot/game/command"
	"github.com/wricardo/mcp-training/toyrobot/game/engine"
)

// Result is the outcome of a successful command
type Result struct {
	Key      command.Key       `json:"key"`
	RobotID  int               `json:"robot_id,omitempty"`
	Position *engine.Position  `json:"position,omitempty"`
	Log      []engine.LogEntry `json:"log,omitempty"`
	Robots   []Summary         `json:"robots,omitempty"`

	// Created is set when PLACE allocated a new robot
	Created bool `json:"created,omitempty"`
	// Quit asks the caller to stop reading commands
	Quit bool `json:"quit,omitempty"`
}

// Summary is one LIST row
type Summary struct {
	ID        int              `json:"id"`
	Key       uuid.UUID        `json:"key"`
	Active    bool             `json:"active"`
	Placed    bool             `json:"placed"`
	Activated bool             `json:"activated"`
	Position  *engine.Position `json:"position,omitempty"`
}

// Target selects the robot a command applies to
type Target struct {
	id       int
	explicit bool
}

// Active targets the currently selected robot
func Active() Target {
	return Target{}
}

// ByID targets the robot with the given id
func ByID(id int) Target {
	return Target{id: id, explicit: true}
}

// ID returns the explicit id, if any
func (t Target) ID() (int, bool) {
	return t.id, t.explicit
}

func targetOf(cmd command.Command) Target {
	if id, ok := cmd.ID(); ok {
		return ByID(id)
	}
	return Active()
}

func positionOf(r *engine.Robot) *engine.Position {
	pos := r.Report()
	return &pos
}
