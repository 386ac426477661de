package engine

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestOrientationString(t *testing.T) {
	tests := []struct {
		o    Orientation
		want string
	}{
		{North, "NORTH"},
		{East, "EAST"},
		{South, "SOUTH"},
		{West, "WEST"},
		{Orientation(9), "Orientation(9)"},
	}

	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Orientation(%d).String() = %q, want %q", int(tt.o), got, tt.want)
		}
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		input   string
		want    Orientation
		wantErr bool
	}{
		{"NORTH", North, false},
		{"north", North, false},
		{"East", East, false},
		{" south ", South, false},
		{"wEsT", West, false},
		{"UP", North, true},
		{"", North, true},
		{"N", North, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOrientation(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidOrientation) {
					t.Fatalf("expected ErrInvalidOrientation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPositionJSON(t *testing.T) {
	pos := Position{X: 2, Y: 3, Facing: West}

	data, err := json.Marshal(pos)
	if err != nil {
		t.Fatalf("Failed to marshal position: %v", err)
	}
	if string(data) != `{"x":2,"y":3,"facing":"WEST"}` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var decoded Position
	if err := json.Unmarshal([]byte(`{"x":1,"y":4,"facing":"south"}`), &decoded); err != nil {
		t.Fatalf("Failed to unmarshal position: %v", err)
	}
	if decoded != (Position{X: 1, Y: 4, Facing: South}) {
		t.Errorf("decoded = %+v", decoded)
	}

	if err := json.Unmarshal([]byte(`{"facing":"sideways"}`), &decoded); err == nil {
		t.Error("expected error for unknown facing")
	}
}

func TestPositionString(t *testing.T) {
	pos := Position{X: 0, Y: 1, Facing: North}
	if got := pos.String(); got != "0,1,NORTH" {
		t.Errorf("String() = %q", got)
	}
}

func TestPositionIsValueCopy(t *testing.T) {
	a := Position{X: 1, Y: 1, Facing: North}
	b := a
	b.X = 4
	b.Facing = South

	if a.X != 1 || a.Facing != North {
		t.Errorf("assigning a Position aliased the original: %+v", a)
	}
}
