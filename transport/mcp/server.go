package mcp

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/wricardo/mcp-training/toyrobot/game/command"
	"github.com/wricardo/mcp-training/toyrobot/game/commander"
	"github.com/wricardo/mcp-training/toyrobot/game/engine"
	"github.com/wricardo/mcp-training/toyrobot/metrics"
)

const serverName = "Toy Robot Simulator"

// Server exposes a commander as MCP tools
type Server struct {
	cmdr      *commander.Commander
	logger    *zap.Logger
	recorder  *metrics.Recorder
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server driving cmdr.
// logger and recorder may be nil.
func NewServer(cmdr *commander.Commander, version string, logger *zap.Logger, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cmdr:     cmdr,
		logger:   logger,
		recorder: recorder,
	}
	s.initMCPServer(version)
	return s
}

// initMCPServer initializes the MCP server with all tools
func (s *Server) initMCPServer(version string) {
	s.mcpServer = server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Toy Robot Simulator - MCP Interface

Robots live on a rectangular playground. Coordinates start at 0,0 in the
south-west corner; NORTH increases y and EAST increases x.

WORKFLOW:
- place: put the active robot on the playground, or create a new one when no robot is selected
- use: select a robot by robot_id, or call without robot_id to clear the selection
- move / left / right / undo / reboot / remove / destroy: change a robot
- report / list / show_log: inspect robots
- execute: run one raw console command such as "PLACE 0,0,NORTH"

Every tool except place, list and execute accepts an optional robot_id. Without it
the active robot is used. A move that would leave the playground is refused and
the robot stays where it was.`),
	)

	s.registerTools()
}

func robotIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Robot id (optional, defaults to the active robot)",
	}
}

func (s *Server) addTargetedTool(name, description string, key command.Key) {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"robot_id": robotIDProperty(),
			},
		},
	}, s.targetedHandler(key))
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "place",
		Description: "Place the active robot, or create and place a new robot when none is selected",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "X coordinate",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Y coordinate",
				},
				"facing": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"NORTH", "EAST", "SOUTH", "WEST"},
					"description": "Direction the robot faces",
				},
			},
			Required: []string{"x", "y", "facing"},
		},
	}, s.handlePlace)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list",
		Description: "List every robot with its position, power and placement",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleList)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "execute",
		Description: "Run one console command line, e.g. \"MOVE 2\" or \"PLACE 1,1,EAST\"",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"command": map[string]interface{}{
					"type":        "string",
					"description": "Command line to execute",
				},
			},
			Required: []string{"command"},
		},
	}, s.handleExecute)

	s.addTargetedTool("use", "Select a robot by id, or clear the selection when robot_id is omitted", command.Use)
	s.addTargetedTool("move", "Move a robot one step forward", command.Move)
	s.addTargetedTool("left", "Turn a robot 90 degrees to the left", command.Left)
	s.addTargetedTool("right", "Turn a robot 90 degrees to the right", command.Right)
	s.addTargetedTool("report", "Report a robot's position", command.Report)
	s.addTargetedTool("undo", "Return a robot to its position before the last change", command.Undo)
	s.addTargetedTool("reboot", "Return a robot to its initial position and restart its log", command.Reboot)
	s.addTargetedTool("remove", "Take a robot off the playground, keeping its id", command.Remove)
	s.addTargetedTool("destroy", "Delete a robot", command.Destroy)
	s.addTargetedTool("show_log", "Show a robot's movement log", command.ShowLog)
}

// GetMCPServer returns the underlying MCP server
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// Listen serves MCP over the given streams until ctx is done or in is closed
func (s *Server) Listen(ctx context.Context, in io.Reader, out io.Writer) error {
	return server.NewStdioServer(s.mcpServer).Listen(ctx, in, out)
}

// Tool handlers

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		return map[string]interface{}{}
	}
	return args
}

// intArg reads an integer argument that JSON may have decoded as float64
func intArg(args map[string]interface{}, name string) (int, bool, error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case int:
		return v, true, nil
	case int64:
		return int(v), true, nil
	case float64:
		if v != float64(int(v)) {
			return 0, true, fmt.Errorf("%s must be an integer, got %v", name, v)
		}
		return int(v), true, nil
	}
	return 0, true, fmt.Errorf("%s must be an integer, got %T", name, raw)
}

func (s *Server) handlePlace(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)

	x, okX, err := intArg(args, "x")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	y, okY, err := intArg(args, "y")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !okX || !okY {
		return mcp.NewToolResultError("x and y are required"), nil
	}
	facingName, _ := args["facing"].(string)
	facing, err := engine.ParseOrientation(facingName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return s.run(command.NewPlace(engine.Position{X: x, Y: y, Facing: facing}))
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.run(command.Command{Key: command.List})
}

func (s *Server) handleExecute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	line, _ := arguments(request)["command"].(string)

	cmd, err := s.cmdr.ParseCommand(line)
	if err != nil {
		s.observe("", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if cmd.Key == command.Quit {
		return mcp.NewToolResultError("QUIT is not available over MCP"), nil
	}
	return s.run(cmd)
}

func (s *Server) targetedHandler(key command.Key) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok, err := intArg(arguments(request), "robot_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		cmd := command.Command{Key: key}
		if ok {
			cmd = command.WithID(key, id)
		}
		return s.run(cmd)
	}
}

// run executes cmd and renders the outcome as tool text
func (s *Server) run(cmd command.Command) (*mcp.CallToolResult, error) {
	res, err := s.cmdr.Execute(cmd)
	s.observe(cmd.Key, err)
	if err != nil {
		s.logger.Debug("tool call failed", zap.Stringer("command", cmd), zap.Error(err))
		return mcp.NewToolResultError(formatError(err)), nil
	}
	return mcp.NewToolResultText(formatResult(res)), nil
}

func (s *Server) observe(key command.Key, err error) {
	if s.recorder == nil {
		return
	}
	s.recorder.Observe(string(key), string(commander.Classify(err)))
	s.recorder.SetRobots(s.cmdr.Len())
}

func formatError(err error) string {
	return fmt.Sprintf("%s: %v", commander.Classify(err), err)
}

func formatResult(res *commander.Result) string {
	switch res.Key {
	case command.Place:
		verb := "placed"
		if res.Created {
			verb = "created and placed"
		}
		return fmt.Sprintf("Robot %d %s at %s", res.RobotID, verb, res.Position)
	case command.Use:
		if res.RobotID == 0 {
			return "Selection cleared"
		}
		return fmt.Sprintf("Robot %d selected", res.RobotID)
	case command.Destroy:
		return fmt.Sprintf("Robot %d destroyed", res.RobotID)
	case command.Remove:
		return fmt.Sprintf("Robot %d removed from the playground", res.RobotID)
	case command.List:
		return formatList(res.Robots)
	case command.ShowLog:
		return formatLog(res)
	case command.Help:
		return "Use the listed tools, or execute with a console command line."
	}
	if res.Position != nil {
		return fmt.Sprintf("Robot %d at %s", res.RobotID, res.Position)
	}
	return string(res.Key)
}

func formatList(rows []commander.Summary) string {
	if len(rows) == 0 {
		return "No robots"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Robots (%d):\n", len(rows))
	for _, r := range rows {
		marker := " "
		if r.Active {
			marker = "*"
		}
		position := "-"
		if r.Position != nil {
			position = r.Position.String()
		}
		power := "OFF"
		if r.Activated {
			power = "ON"
		}
		state := "REMOVED"
		if r.Placed {
			state = "PLACED"
		}
		fmt.Fprintf(&b, "%s %d: %s %s %s\n", marker, r.ID, position, power, state)
	}
	return b.String()
}

func formatLog(res *commander.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Log for robot %d (%d entries):\n", res.RobotID, len(res.Log))
	for i, e := range res.Log {
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, e.Time.Format("15:04:05"), e.Position)
	}
	return b.String()
}
