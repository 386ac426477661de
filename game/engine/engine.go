package engine

import (
	"time"

	"github.com/google/uuid"
)

// Robot is a single robot's state machine.
// It never validates positions itself; callers check candidates against a
// Playground before invoking Place or Move.
type Robot struct {
	ID  int       `json:"id"`
	Key uuid.UUID `json:"key"`

	InitialPosition Position `json:"initial_position"`
	CurrentPosition Position `json:"current_position"`
	LastPosition    Position `json:"last_position"`

	Placed    bool `json:"placed"`
	Activated bool `json:"activated"`

	// Clock stamps log entries. Nil means time.Now.
	Clock func() time.Time `json:"-"`

	log []LogEntry
}

// NewRobot creates an unplaced, activated robot with a fresh global key
func NewRobot(id int) *Robot {
	return &Robot{
		ID:        id,
		Key:       uuid.New(),
		Activated: true,
		log:       []LogEntry{},
	}
}

// Place puts the robot at pos, resetting initial and last positions too
func (r *Robot) Place(pos Position) {
	r.InitialPosition = pos
	r.CurrentPosition = pos
	r.LastPosition = pos
	r.Placed = true
	r.record()
}

// Move advances the robot by step in its current facing.
// An unplaced or switched-off robot keeps its position, but the attempt is still logged.
func (r *Robot) Move(step int) {
	if r.movable() {
		r.LastPosition = r.CurrentPosition
		r.CurrentPosition = r.CurrentPosition.Advance(step)
	}
	r.record()
}

// TurnLeft rotates the robot a quarter-turn counter-clockwise
func (r *Robot) TurnLeft() {
	if r.movable() {
		r.LastPosition = r.CurrentPosition
		r.CurrentPosition = r.CurrentPosition.TurnLeft()
	}
	r.record()
}

// TurnRight rotates the robot a quarter-turn clockwise
func (r *Robot) TurnRight() {
	if r.movable() {
		r.LastPosition = r.CurrentPosition
		r.CurrentPosition = r.CurrentPosition.TurnRight()
	}
	r.record()
}

// Reboot returns the robot to its initial position and restarts the log
func (r *Robot) Reboot() {
	r.CurrentPosition = r.InitialPosition
	r.log = r.log[:0]
	r.record()
}

// Remove takes the robot off the playground. Positions are kept as stale data.
func (r *Robot) Remove() {
	r.Placed = false
	r.log = r.log[:0]
}

// Undo restores the position saved before the last mutation.
// Only one level is kept, so a second Undo leaves the position unchanged.
func (r *Robot) Undo() {
	r.CurrentPosition = r.LastPosition
	r.record()
}

// Report returns the current position
func (r *Robot) Report() Position {
	return r.CurrentPosition
}

// Log returns a copy of the movement log, oldest first
func (r *Robot) Log() []LogEntry {
	out := make([]LogEntry, len(r.log))
	copy(out, r.log)
	return out
}

// SwitchOn enables movement
func (r *Robot) SwitchOn() {
	r.Activated = true
}

// SwitchOff disables movement. Turns and moves are then logged but not applied.
func (r *Robot) SwitchOff() {
	r.Activated = false
}

func (r *Robot) movable() bool {
	return r.Placed && r.Activated
}

func (r *Robot) record() {
	now := time.Now
	if r.Clock != nil {
		now = r.Clock
	}
	r.log = append(r.log, LogEntry{Time: now(), Position: r.CurrentPosition})
}
