package commander

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wricardo/mcp-training/toyrobot/game/command"
	"github.com/wricardo/mcp-training/toyrobot/game/engine"
)

var (
	ErrInvalidOptions     = errors.New("invalid commander options")
	ErrNoActiveRobot      = errors.New("no active robot selected")
	ErrRobotNotFound      = errors.New("robot not found")
	ErrCapacityReached    = errors.New("robot limit reached")
	ErrRobotAlreadyPlaced = errors.New("active robot is already placed")
	ErrNotSupported       = errors.New("command not supported")
)

// PositionRejectedError reports a candidate position that failed validation.
// The robot it was computed for is left untouched.
type PositionRejectedError struct {
	RobotID   int
	Candidate engine.Position
	Errors    []engine.ValidationError
}

func (e *PositionRejectedError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, v := range e.Errors {
		parts = append(parts, v.Error())
	}
	return fmt.Sprintf("position %s rejected: %s", e.Candidate, strings.Join(parts, "; "))
}

// Outcome buckets an execution error for reporting and metrics
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeParse       Outcome = "parse"
	OutcomeValidation  Outcome = "validation"
	OutcomeLookup      Outcome = "lookup"
	OutcomeSelection   Outcome = "selection"
	OutcomeCapacity    Outcome = "capacity"
	OutcomePlaced      Outcome = "placed"
	OutcomeUnsupported Outcome = "unsupported"
	OutcomeError       Outcome = "error"
)

// Classify maps an error returned by ParseCommand or Execute onto its Outcome
func Classify(err error) Outcome {
	var rejected *PositionRejectedError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &rejected):
		return OutcomeValidation
	case errors.Is(err, ErrRobotNotFound):
		return OutcomeLookup
	case errors.Is(err, ErrNoActiveRobot):
		return OutcomeSelection
	case errors.Is(err, ErrCapacityReached):
		return OutcomeCapacity
	case errors.Is(err, ErrRobotAlreadyPlaced):
		return OutcomePlaced
	case errors.Is(err, ErrNotSupported):
		return OutcomeUnsupported
	case errors.Is(err, command.ErrEmptyInput),
		errors.Is(err, command.ErrSyntax),
		errors.Is(err, command.ErrUnknownCommand),
		errors.Is(err, command.ErrArgumentCount),
		errors.Is(err, command.ErrInvalidArgument),
		errors.Is(err, engine.ErrInvalidOrientation):
		return OutcomeParse
	}
	return OutcomeError
}
