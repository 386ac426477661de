package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/toyrobot/game/commander"
	"github.com/wricardo/mcp-training/toyrobot/metrics"
)

// Console is the interactive read-execute loop over a commander
type Console struct {
	cmdr     *commander.Commander
	in       io.Reader
	out      io.Writer
	logger   *zap.Logger
	recorder *metrics.Recorder
	version  string
	styles   styles
}

// Option configures a Console
type Option func(*Console)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Console) { c.logger = logger }
}

// WithMetrics counts every handled line on r
func WithMetrics(r *metrics.Recorder) Option {
	return func(c *Console) { c.recorder = r }
}

// WithVersion sets the version shown in the banner
func WithVersion(v string) Option {
	return func(c *Console) { c.version = v }
}

// New creates a console reading commands from in and writing to out
func New(cmdr *commander.Commander, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		cmdr:    cmdr,
		in:      in,
		out:     out,
		logger:  zap.NewNop(),
		version: "dev",
		styles:  newStyles(out),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run prints the banner and handles lines until QUIT, end of input or ctx is done
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, c.styles.banner(c.version))

	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)

	var readErr error
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr = scanner.Err()
	}()

	for {
		fmt.Fprint(c.out, c.styles.promptText(c.cmdr.ActiveRobot()))

		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			c.logger.Debug("console interrupted", zap.Error(ctx.Err()))
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.out)
				if readErr != nil {
					return fmt.Errorf("failed to read input: %w", readErr)
				}
				return nil
			}
			if c.Handle(line) {
				return nil
			}
		}
	}
}

// Handle parses and executes one line, writing any output.
// It reports whether the line asked the console to quit.
func (c *Console) Handle(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}

	cmd, err := c.cmdr.ParseCommand(line)
	if err == nil {
		var res *commander.Result
		res, err = c.cmdr.Execute(cmd)
		if err == nil {
			c.observe(string(cmd.Key), commander.OutcomeOK)
			if text := c.styles.result(res); text != "" {
				fmt.Fprintln(c.out, text)
			}
			return res.Quit
		}
	}

	outcome := commander.Classify(err)
	c.observe(string(cmd.Key), outcome)
	c.logger.Debug("command failed",
		zap.String("line", line),
		zap.String("outcome", string(outcome)),
		zap.Error(err),
	)
	fmt.Fprintln(c.out, c.styles.failure(err, c.cmdr.Options().MaxRobots))
	return false
}

func (c *Console) observe(key string, outcome commander.Outcome) {
	if c.recorder == nil {
		return
	}
	c.recorder.Observe(key, string(outcome))
	c.recorder.SetRobots(c.cmdr.Len())
}
