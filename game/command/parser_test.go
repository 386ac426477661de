package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/mcp-training/toyrobot/game/engine"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"PLACE 0,0,NORTH", Command{Key: Place, Args: []int{0, 0, int(engine.North)}}},
		{"place 1, 2, west", Command{Key: Place, Args: []int{1, 2, int(engine.West)}}},
		{"PLACE -1,3,South", Command{Key: Place, Args: []int{-1, 3, int(engine.South)}}},
		{"MOVE", Command{Key: Move}},
		{"move 2", Command{Key: Move, Args: []int{2}}},
		{"  LEFT  ", Command{Key: Left}},
		{"RIGHT 4", Command{Key: Right, Args: []int{4}}},
		{"USE", Command{Key: Use}},
		{"USE 1", Command{Key: Use, Args: []int{1}}},
		{"LIST", Command{Key: List}},
		{"REPORT", Command{Key: Report}},
		{"REBOOT 3", Command{Key: Reboot, Args: []int{3}}},
		{"REMOVE", Command{Key: Remove}},
		{"DESTROY 7", Command{Key: Destroy, Args: []int{7}}},
		{"showlog", Command{Key: ShowLog}},
		{"ON 1", Command{Key: On, Args: []int{1}}},
		{"OFF", Command{Key: Off}},
		{"UNDO", Command{Key: Undo}},
		{"QUIT", Command{Key: Quit}},
		{"help", Command{Key: Help}},
		{"MOVE 010", Command{Key: Move, Args: []int{10}}},
		{"PLACE 010,007,NORTH", Command{Key: Place, Args: []int{10, 7, int(engine.North)}}},
		{"USE 08", Command{Key: Use, Args: []int{8}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrEmptyInput},
		{"   ", ErrEmptyInput},
		{"JUMP", ErrUnknownCommand},
		{"FLY 1", ErrUnknownCommand},
		{"PLACE", ErrArgumentCount},
		{"PLACE 1,2", ErrArgumentCount},
		{"PLACE 1,2,NORTH,4", ErrArgumentCount},
		{"PLACE a,2,NORTH", ErrInvalidArgument},
		{"PLACE 1,2,3", ErrInvalidArgument},
		{"PLACE 1,2,UP", engine.ErrInvalidOrientation},
		{"MOVE 1,2", ErrArgumentCount},
		{"MOVE robot", ErrInvalidArgument},
		{"LIST 1", ErrArgumentCount},
		{"QUIT now", ErrArgumentCount},
		{"PLACE 1.5,2,NORTH", ErrSyntax},
		{"PLACE 1,,2", ErrSyntax},
		{"42", ErrSyntax},
		{"MOVE 0x10", ErrSyntax},
		{"MOVE 1_0", ErrSyntax},
		{"MOVE 1 // trailing", ErrSyntax},
		{"MOVE 1 /* note */", ErrSyntax},
		{"PLACE 0b1,0,NORTH", ErrSyntax},
		{"MOVE 99999999999999999999999", ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCommandAccessors(t *testing.T) {
	cmd, err := Parse("PLACE 3,4,EAST")
	require.NoError(t, err)

	pos, err := cmd.Position()
	require.NoError(t, err)
	assert.Equal(t, engine.Position{X: 3, Y: 4, Facing: engine.East}, pos)

	_, ok := cmd.ID()
	assert.False(t, ok, "PLACE has no robot id")

	id, ok := WithID(Move, 5).ID()
	assert.True(t, ok)
	assert.Equal(t, 5, id)

	_, ok = Command{Key: Move}.ID()
	assert.False(t, ok)

	_, err = Command{Key: Move}.Position()
	assert.ErrorIs(t, err, ErrArgumentCount)

	_, err = Command{Key: Place, Args: []int{0, 0, 9}}.Position()
	assert.ErrorIs(t, err, engine.ErrInvalidOrientation)
}

func TestCommandString_RoundTrips(t *testing.T) {
	for _, input := range []string{"PLACE 1,2,SOUTH", "MOVE", "DESTROY 3", "PLACE -2,0,WEST"} {
		cmd, err := Parse(input)
		require.NoError(t, err)
		assert.Equal(t, input, cmd.String())

		again, err := Parse(cmd.String())
		require.NoError(t, err)
		assert.Equal(t, cmd, again)
	}
}

func TestLookupKey(t *testing.T) {
	for _, k := range Keys {
		got, ok := LookupKey(string(k))
		assert.True(t, ok, k)
		assert.Equal(t, k, got)
	}
	_, ok := LookupKey("teleport")
	assert.False(t, ok)
}
