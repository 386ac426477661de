package commander

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/toyrobot/game/command"
	"github.com/wricardo/mcp-training/toyrobot/game/engine"
)

// handler runs one command with the commander lock held
type handler func(cmd command.Command) (*Result, error)

func (c *Commander) dispatchTable() map[command.Key]handler {
	targeted := func(fn func(Target) (*Result, error)) handler {
		return func(cmd command.Command) (*Result, error) {
			return fn(targetOf(cmd))
		}
	}

	return map[command.Key]handler{
		command.Place: func(cmd command.Command) (*Result, error) {
			pos, err := cmd.Position()
			if err != nil {
				return nil, err
			}
			return c.place(pos)
		},
		command.Use:     targeted(c.use),
		command.List:    func(command.Command) (*Result, error) { return c.list() },
		command.Move:    targeted(c.move),
		command.Report:  targeted(c.report),
		command.ShowLog: targeted(c.showLog),
		command.Destroy: targeted(c.destroy),
		command.Left: targeted(func(t Target) (*Result, error) {
			return c.apply(command.Left, t, (*engine.Robot).TurnLeft)
		}),
		command.Right: targeted(func(t Target) (*Result, error) {
			return c.apply(command.Right, t, (*engine.Robot).TurnRight)
		}),
		command.Reboot: targeted(func(t Target) (*Result, error) {
			return c.apply(command.Reboot, t, (*engine.Robot).Reboot)
		}),
		command.Remove: targeted(func(t Target) (*Result, error) {
			return c.apply(command.Remove, t, (*engine.Robot).Remove)
		}),
		command.Undo: targeted(func(t Target) (*Result, error) {
			return c.apply(command.Undo, t, (*engine.Robot).Undo)
		}),
		command.On: targeted(func(t Target) (*Result, error) {
			return c.unsupported(command.On, t)
		}),
		command.Off: targeted(func(t Target) (*Result, error) {
			return c.unsupported(command.Off, t)
		}),
		command.Help: func(command.Command) (*Result, error) {
			return &Result{Key: command.Help}, nil
		},
		command.Quit: func(command.Command) (*Result, error) {
			return &Result{Key: command.Quit, Quit: true}, nil
		},
	}
}

// Execute runs a parsed command against the fleet as one atomic step
func (c *Commander) Execute(cmd command.Command) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.handlers[cmd.Key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", command.ErrUnknownCommand, cmd.Key)
	}

	res, err := h(cmd)
	c.logger.Debug("command executed",
		zap.Stringer("command", cmd),
		zap.String("outcome", string(Classify(err))),
		zap.Int("active_robot", c.active),
	)
	return res, err
}
