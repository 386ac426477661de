package commander

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/toyrobot/game/command"
	"github.com/wricardo/mcp-training/toyrobot/game/engine"
)

// Options configures a fleet
type Options struct {
	MaxRobots  int
	StepSize   int
	Playground engine.Playground

	// Clock stamps robot log entries. Nil means time.Now.
	Clock func() time.Time
}

// Validate checks that every limit is positive
func (o Options) Validate() error {
	switch {
	case o.MaxRobots <= 0:
		return fmt.Errorf("%w: max robots must be positive, got %d", ErrInvalidOptions, o.MaxRobots)
	case o.StepSize <= 0:
		return fmt.Errorf("%w: step size must be positive, got %d", ErrInvalidOptions, o.StepSize)
	case o.Playground.Width <= 0:
		return fmt.Errorf("%w: playground width must be positive, got %d", ErrInvalidOptions, o.Playground.Width)
	case o.Playground.Height <= 0:
		return fmt.Errorf("%w: playground height must be positive, got %d", ErrInvalidOptions, o.Playground.Height)
	}
	return nil
}

// Commander owns the robot registry and the active selection.
// Every exported method holds one mutex for its whole duration.
type Commander struct {
	opts   Options
	logger *zap.Logger

	mu      sync.Mutex
	robots  map[int]*engine.Robot
	order   []int
	counter int
	active  int

	handlers map[command.Key]handler
}

// New creates an empty fleet
func New(opts Options, logger *zap.Logger) (*Commander, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Commander{
		opts:    opts,
		logger:  logger,
		robots:  make(map[int]*engine.Robot),
		counter: 1,
	}
	c.handlers = c.dispatchTable()

	if opts.Playground.CollisionsDetected {
		logger.Warn("collision detection is enabled in configuration but has no effect")
	}
	logger.Debug("commander ready",
		zap.Int("max_robots", opts.MaxRobots),
		zap.Int("step_size", opts.StepSize),
		zap.Int("width", opts.Playground.Width),
		zap.Int("height", opts.Playground.Height),
		zap.Bool("allow_boundaries", opts.Playground.AllowBoundaries),
	)
	return c, nil
}

// Options returns the fleet configuration
func (c *Commander) Options() Options {
	return c.opts
}

// ActiveRobot returns the selected robot id, 0 when none
func (c *Commander) ActiveRobot() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Len returns the number of robots in the registry
func (c *Commander) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.robots)
}

// ParseCommand turns a raw line into a Command
func (c *Commander) ParseCommand(line string) (command.Command, error) {
	return command.Parse(line)
}

// Use selects a robot by id, or deselects when given Active()
func (c *Commander) Use(t Target) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.use(t)
}

// Place puts the active robot on the playground, or creates a new one when none is selected
func (c *Commander) Place(pos engine.Position) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.place(pos)
}

// Move advances the target robot by the configured step
func (c *Commander) Move(t Target) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.move(t)
}

// TurnLeft rotates the target robot counter-clockwise
func (c *Commander) TurnLeft(t Target) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(command.Left, t, (*engine.Robot).TurnLeft)
}

// TurnRight rotates the target robot clockwise
func (c *Commander) TurnRight(t Target) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(command.Right, t, (*engine.Robot).TurnRight)
}

// Report returns the target robot's current position
func (c *Commander) Report(t Target) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.report(t)
}

// ShowLog returns the target robot's movement log
func (c *Commander) ShowLog(t Target) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showLog(t)
}

// Reboot returns the target robot to its initial position
func (c *Commander) Reboot(t Target) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(command.Reboot, t, (*engine.Robot).Reboot)
}

// Remove un-places the target robot, keeping its id
func (c *Commander) Remove(t Target) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(command.Remove, t, (*engine.Robot).Remove)
}

// Undo restores the target robot's previous position
func (c *Commander) Undo(t Target) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apply(command.Undo, t, (*engine.Robot).Undo)
}

// Destroy deletes the target robot from the registry
func (c *Commander) Destroy(t Target) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destroy(t)
}

// SwitchOn is declared for the ON command but not supported
func (c *Commander) SwitchOn(t Target) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unsupported(command.On, t)
}

// SwitchOff is declared for the OFF command but not supported
func (c *Commander) SwitchOff(t Target) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unsupported(command.Off, t)
}

// List summarises every robot in creation order
func (c *Commander) List() (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list()
}

// resolve finds the robot a target refers to
func (c *Commander) resolve(t Target) (*engine.Robot, error) {
	id, explicit := t.ID()
	if !explicit {
		if c.active == 0 {
			return nil, ErrNoActiveRobot
		}
		id = c.active
	}
	r, ok := c.robots[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrRobotNotFound, id)
	}
	return r, nil
}

func (c *Commander) use(t Target) (*Result, error) {
	id, explicit := t.ID()
	if !explicit {
		c.active = 0
		return &Result{Key: command.Use}, nil
	}
	if _, ok := c.robots[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrRobotNotFound, id)
	}
	c.active = id
	return &Result{Key: command.Use, RobotID: id}, nil
}

func (c *Commander) place(pos engine.Position) (*Result, error) {
	if c.active != 0 {
		r, ok := c.robots[c.active]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrRobotNotFound, c.active)
		}
		if r.Placed {
			return nil, fmt.Errorf("%w: robot %d", ErrRobotAlreadyPlaced, r.ID)
		}
		if err := c.check(r.ID, pos); err != nil {
			return nil, err
		}
		r.Place(pos)
		return &Result{Key: command.Place, RobotID: r.ID, Position: positionOf(r)}, nil
	}

	if len(c.robots) >= c.opts.MaxRobots {
		return nil, fmt.Errorf("%w: the limit is %d", ErrCapacityReached, c.opts.MaxRobots)
	}
	if err := c.check(0, pos); err != nil {
		return nil, err
	}

	r := engine.NewRobot(c.counter)
	r.Clock = c.opts.Clock
	r.Place(pos)
	c.robots[r.ID] = r
	c.order = append(c.order, r.ID)
	c.active = r.ID
	c.counter++

	c.logger.Info("robot created",
		zap.Int("robot_id", r.ID),
		zap.String("key", r.Key.String()),
		zap.Stringer("position", pos),
	)
	return &Result{Key: command.Place, RobotID: r.ID, Position: positionOf(r), Created: true}, nil
}

func (c *Commander) move(t Target) (*Result, error) {
	r, err := c.resolve(t)
	if err != nil {
		return nil, err
	}
	candidate := r.Report().Advance(c.opts.StepSize)
	if err := c.check(r.ID, candidate); err != nil {
		return nil, err
	}
	r.Move(c.opts.StepSize)
	return &Result{Key: command.Move, RobotID: r.ID, Position: positionOf(r)}, nil
}

// apply runs a transition that needs no position validation
func (c *Commander) apply(key command.Key, t Target, fn func(*engine.Robot)) (*Result, error) {
	r, err := c.resolve(t)
	if err != nil {
		return nil, err
	}
	fn(r)
	return &Result{Key: key, RobotID: r.ID, Position: positionOf(r)}, nil
}

func (c *Commander) report(t Target) (*Result, error) {
	r, err := c.resolve(t)
	if err != nil {
		return nil, err
	}
	return &Result{Key: command.Report, RobotID: r.ID, Position: positionOf(r)}, nil
}

func (c *Commander) showLog(t Target) (*Result, error) {
	r, err := c.resolve(t)
	if err != nil {
		return nil, err
	}
	return &Result{Key: command.ShowLog, RobotID: r.ID, Log: r.Log()}, nil
}

func (c *Commander) destroy(t Target) (*Result, error) {
	r, err := c.resolve(t)
	if err != nil {
		return nil, err
	}
	delete(c.robots, r.ID)
	for i, id := range c.order {
		if id == r.ID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	if c.active == r.ID {
		c.active = 0
	}

	c.logger.Info("robot destroyed", zap.Int("robot_id", r.ID), zap.String("key", r.Key.String()))
	return &Result{Key: command.Destroy, RobotID: r.ID}, nil
}

func (c *Commander) unsupported(key command.Key, t Target) (*Result, error) {
	r, err := c.resolve(t)
	if err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: %s robot %d", ErrNotSupported, key, r.ID)
}

func (c *Commander) list() (*Result, error) {
	rows := make([]Summary, 0, len(c.order))
	for _, id := range c.order {
		r := c.robots[id]
		row := Summary{
			ID:        r.ID,
			Key:       r.Key,
			Active:    r.ID == c.active,
			Placed:    r.Placed,
			Activated: r.Activated,
		}
		if r.Placed {
			row.Position = positionOf(r)
		}
		rows = append(rows, row)
	}
	return &Result{Key: command.List, Robots: rows}, nil
}

// check validates a candidate position, logging rejections at debug
func (c *Commander) check(robotID int, pos engine.Position) error {
	res := engine.Validate(pos, c.opts.Playground)
	if res.Valid {
		return nil
	}
	c.logger.Debug("position rejected",
		zap.Int("robot_id", robotID),
		zap.Stringer("candidate", pos),
		zap.Int("errors", len(res.Errors)),
	)
	return &PositionRejectedError{RobotID: robotID, Candidate: pos, Errors: res.Errors}
}
