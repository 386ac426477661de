package engine

import "testing"

var allOrientations = []Orientation{North, East, South, West}

func TestTurnLeftRightIdentity(t *testing.T) {
	for _, o := range allOrientations {
		if got := o.Right().Left(); got != o {
			t.Errorf("%v: Right then Left = %v", o, got)
		}
		if got := o.Left().Right(); got != o {
			t.Errorf("%v: Left then Right = %v", o, got)
		}
	}
}

func TestFourTurnsReturnHome(t *testing.T) {
	for _, o := range allOrientations {
		left, right := o, o
		for i := 0; i < 4; i++ {
			left = left.Left()
			right = right.Right()
		}
		if left != o {
			t.Errorf("four left turns from %v ended at %v", o, left)
		}
		if right != o {
			t.Errorf("four right turns from %v ended at %v", o, right)
		}
	}
}

func TestTurnSequence(t *testing.T) {
	if North.Left() != West {
		t.Errorf("NORTH left = %v, want WEST", North.Left())
	}
	if North.Right() != East {
		t.Errorf("NORTH right = %v, want EAST", North.Right())
	}
	if West.Right() != North {
		t.Errorf("WEST right = %v, want NORTH", West.Right())
	}
	if South.Left() != East {
		t.Errorf("SOUTH left = %v, want EAST", South.Left())
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name string
		from Position
		step int
		want Position
	}{
		{"north", Position{2, 2, North}, 1, Position{2, 3, North}},
		{"south", Position{2, 2, South}, 1, Position{2, 1, South}},
		{"east", Position{2, 2, East}, 1, Position{3, 2, East}},
		{"west", Position{2, 2, West}, 1, Position{1, 2, West}},
		{"step size two", Position{0, 0, North}, 2, Position{0, 2, North}},
		{"no wraparound", Position{0, 0, West}, 1, Position{-1, 0, West}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.Advance(tt.step)
			if got != tt.want {
				t.Errorf("Advance(%d) = %v, want %v", tt.step, got, tt.want)
			}
		})
	}
}

func TestAdvanceLeavesReceiverUnchanged(t *testing.T) {
	from := Position{X: 1, Y: 1, Facing: East}
	_ = from.Advance(3)
	_ = from.TurnLeft()
	if from != (Position{X: 1, Y: 1, Facing: East}) {
		t.Errorf("receiver mutated: %v", from)
	}
}
