package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wricardo/mcp-training/toyrobot/game/engine"
)

// Key names a command in the robot vocabulary
type Key string

const (
	Place   Key = "PLACE"
	Use     Key = "USE"
	List    Key = "LIST"
	Move    Key = "MOVE"
	Left    Key = "LEFT"
	Right   Key = "RIGHT"
	Report  Key = "REPORT"
	Reboot  Key = "REBOOT"
	Remove  Key = "REMOVE"
	Destroy Key = "DESTROY"
	ShowLog Key = "SHOWLOG"
	On      Key = "ON"
	Off     Key = "OFF"
	Undo    Key = "UNDO"
	Quit    Key = "QUIT"
	Help    Key = "HELP"
)

// Keys lists the vocabulary in the order HELP presents it
var Keys = []Key{
	Use, List, Place, Move, Left, Right, Report, Undo, Reboot,
	Destroy, Remove, ShowLog, On, Off, Quit, Help,
}

// arity is the argument shape a key accepts
type arity int

const (
	noArgs arity = iota
	optionalID
	placement
)

var arities = map[Key]arity{
	Place:   placement,
	Use:     optionalID,
	List:    noArgs,
	Move:    optionalID,
	Left:    optionalID,
	Right:   optionalID,
	Report:  optionalID,
	Reboot:  optionalID,
	Remove:  optionalID,
	Destroy: optionalID,
	ShowLog: optionalID,
	On:      optionalID,
	Off:     optionalID,
	Undo:    optionalID,
	Quit:    noArgs,
	Help:    noArgs,
}

// LookupKey resolves a keyword (any case) to a Key
func LookupKey(word string) (Key, bool) {
	k := Key(strings.ToUpper(word))
	_, ok := arities[k]
	return k, ok
}

// Command is a parsed instruction: a key plus integer arguments.
// For PLACE the arguments are x, y and the orientation as an int.
type Command struct {
	Key  Key   `json:"key"`
	Args []int `json:"args,omitempty"`
}

// NewPlace builds a PLACE command for pos
func NewPlace(pos engine.Position) Command {
	return Command{Key: Place, Args: []int{pos.X, pos.Y, int(pos.Facing)}}
}

// WithID builds a command targeting robot id
func WithID(key Key, id int) Command {
	return Command{Key: key, Args: []int{id}}
}

// ID returns the explicit robot id, if one was given
func (c Command) ID() (int, bool) {
	if c.Key == Place || len(c.Args) != 1 {
		return 0, false
	}
	return c.Args[0], true
}

// Position decodes the PLACE arguments
func (c Command) Position() (engine.Position, error) {
	if c.Key != Place || len(c.Args) != 3 {
		return engine.Position{}, fmt.Errorf("%w: %s expects x,y,F", ErrArgumentCount, c.Key)
	}
	facing := engine.Orientation(c.Args[2])
	if !facing.Valid() {
		return engine.Position{}, fmt.Errorf("%w: %d", engine.ErrInvalidOrientation, c.Args[2])
	}
	return engine.Position{X: c.Args[0], Y: c.Args[1], Facing: facing}, nil
}

// String renders the command in the same form Parse accepts
func (c Command) String() string {
	if len(c.Args) == 0 {
		return string(c.Key)
	}
	if c.Key == Place {
		if pos, err := c.Position(); err == nil {
			return fmt.Sprintf("%s %s", c.Key, pos)
		}
	}
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = strconv.Itoa(a)
	}
	return fmt.Sprintf("%s %s", c.Key, strings.Join(parts, ","))
}
