package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/wricardo/mcp-training/toyrobot/game/command"
	"github.com/wricardo/mcp-training/toyrobot/game/commander"
)

const logTimeLayout = "2006-01-02 15:04:05"

type styles struct {
	title   lipgloss.Style
	prompt  lipgloss.Style
	err     lipgloss.Style
	header  lipgloss.Style
	active  lipgloss.Style
	section lipgloss.Style
}

// newStyles binds every style to out so non-terminal writers get plain text
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title: r.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1),
		prompt:  r.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		err:     r.NewStyle().Foreground(lipgloss.Color("196")),
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		active:  r.NewStyle().Foreground(lipgloss.Color("46")),
		section: r.NewStyle().Bold(true),
	}
}

func (s styles) banner(version string) string {
	lines := []string{
		strings.Repeat("*", 64),
		s.title.Render("Toy Robot Simulator"),
		"Version " + version,
		strings.Repeat("*", 64),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// promptText mirrors the active selection: "Robocom:>" or "Robocom (2):>"
func (s styles) promptText(active int) string {
	if active == 0 {
		return s.prompt.Render("Robocom:>") + " "
	}
	return s.prompt.Render(fmt.Sprintf("Robocom (%d):>", active)) + " "
}

func (s styles) list(rows []commander.Summary) string {
	if len(rows) == 0 {
		return "  There's no robots in the parking."
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "ROBOT", "POSITION", "POWER", "STATE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header.Padding(0, 1)
			}
			if row >= 0 && row < len(rows) && rows[row].Active {
				return s.active.Padding(0, 1)
			}
			return s.section.UnsetBold().Padding(0, 1)
		})

	for i, r := range rows {
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
		t.Row(strconv.Itoa(i+1), fmt.Sprintf("%s[Id=%d]", marker, r.ID), position, power, state)
	}
	return t.String()
}

func (s styles) showLog(res *commander.Result) string {
	var b strings.Builder
	b.WriteString(s.section.Render(fmt.Sprintf(" Log Summary Robot[%d]:", res.RobotID)))
	b.WriteString("\n")

	if len(res.Log) == 0 {
		b.WriteString("  The log is empty.")
		return b.String()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TIME", "POSITION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header.Padding(0, 1)
			}
			return s.section.UnsetBold().Padding(0, 1)
		})
	for _, e := range res.Log {
		t.Row(e.Time.Format(logTimeLayout), e.Position.String())
	}
	b.WriteString(t.String())
	return b.String()
}

func (s styles) report(res *commander.Result) string {
	pos := res.Position
	return fmt.Sprintf("Position (%d): %d,%d, %s", res.RobotID, pos.X, pos.Y, pos.Facing)
}

// result renders a successful command. Commands that only change state print nothing.
func (s styles) result(res *commander.Result) string {
	switch res.Key {
	case command.Report:
		return s.report(res)
	case command.List:
		return s.list(res.Robots)
	case command.ShowLog:
		return s.showLog(res)
	case command.Help:
		return helpText
	}
	return ""
}

// failure renders an error as the lines a user sees
func (s styles) failure(err error, maxRobots int) string {
	var rejected *commander.PositionRejectedError
	var lines []string

	switch {
	case errors.As(err, &rejected):
		lines = append(lines, "The next position of the robot is not valid.", "Error summary:")
		for _, e := range rejected.Errors {
			lines = append(lines, e.Error())
		}
	case errors.Is(err, commander.ErrRobotNotFound):
		lines = append(lines, "A robot with that Id does not exist.")
	case errors.Is(err, commander.ErrNoActiveRobot):
		lines = append(lines, "There's no active robot. Try USE [Id] to select a robot.")
	case errors.Is(err, commander.ErrRobotAlreadyPlaced):
		lines = append(lines, "Currently active robot is placed, try USE command to reset the active robot or USE [Id] to place a removed robot.")
	case errors.Is(err, commander.ErrCapacityReached):
		lines = append(lines, fmt.Sprintf("The limit of robots existing simultaneously was reached. The limit is %d", maxRobots))
	case errors.Is(err, commander.ErrNotSupported):
		lines = append(lines, "This command is not supported yet.")
	case commander.Classify(err) == commander.OutcomeParse:
		lines = append(lines, fmt.Sprintf("Invalid command: %v. Type HELP to see the command list.", err))
	default:
		lines = append(lines, err.Error())
	}

	for i, l := range lines {
		lines[i] = s.err.Render(l)
	}
	return strings.Join(lines, "\n")
}

const helpText = ` Command List:
 ---------------------------------------------------------------------------
 USE [id]: Select the active robot by id. Without an id, clears the selection.
           "use 2", "use".

 LIST: List every robot in the parking.

 PLACE x,y,F: Place the active robot, or a new one when none is selected.
              "place 2,4,north". F is one of north, south, east, west.

 MOVE [id]: Move the active robot or a specific robot one step forward.
            "MOVE 3", "MOVE".

 LEFT [id]: Turn 90 degrees to the left.

 RIGHT [id]: Turn 90 degrees to the right.

 REPORT [id]: Show the current position.

 UNDO [id]: Return to the position before the last change.

 REBOOT [id]: Return to the initial position and restart the log.

 DESTROY [id]: Delete the robot from the parking.

 REMOVE [id]: Take the robot off the playground, keeping its id.

 SHOWLOG [id]: Show the movement log.

 ON [id]: Switch the robot on.

 OFF [id]: Switch the robot off.

 QUIT: Exit the application.

 HELP: Show this help.
`
