package engine

import (
	"strings"
	"testing"
)

func codes(res ValidationResult) []ErrorCode {
	out := make([]ErrorCode, 0, len(res.Errors))
	for _, e := range res.Errors {
		out = append(out, e.Code)
	}
	return out
}

func equalCodes(a, b []ErrorCode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestValidate_InsideEnvelope(t *testing.T) {
	for _, allow := range []bool{false, true} {
		pg := Playground{Width: 5, Height: 4, AllowBoundaries: allow}
		maxX, maxY := pg.Width-1, pg.Height-1
		if allow {
			maxX, maxY = pg.Width, pg.Height
		}
		for x := 0; x <= maxX; x++ {
			for y := 0; y <= maxY; y++ {
				res := Validate(Position{X: x, Y: y, Facing: North}, pg)
				if !res.Valid || len(res.Errors) != 0 {
					t.Errorf("allow=%v (%d,%d): expected valid, got %v", allow, x, y, res.Errors)
				}
				if res.Err() != nil {
					t.Errorf("allow=%v (%d,%d): Err() = %v", allow, x, y, res.Err())
				}
			}
		}
	}
}

func TestValidate_Codes(t *testing.T) {
	pg := Playground{Width: 5, Height: 5}

	tests := []struct {
		name string
		pos  Position
		pg   Playground
		want []ErrorCode
	}{
		{"x above width", Position{X: 6, Y: 0}, pg, []ErrorCode{CodeXAboveWidth}},
		{"x negative", Position{X: -1, Y: 1}, pg, []ErrorCode{CodeXNegative}},
		{"x on boundary", Position{X: 5, Y: 1}, pg, []ErrorCode{CodeXOnBoundary}},
		{"y above height", Position{X: 0, Y: 9}, pg, []ErrorCode{CodeYAboveHeight}},
		{"y negative", Position{X: 0, Y: -3}, pg, []ErrorCode{CodeYNegative}},
		{"y on boundary", Position{X: 0, Y: 5}, pg, []ErrorCode{CodeYOnBoundary}},
		{"both on boundary", Position{X: 5, Y: 5}, pg, []ErrorCode{CodeXOnBoundary, CodeYOnBoundary}},
		{"x above and y negative", Position{X: 7, Y: -1}, pg, []ErrorCode{CodeXAboveWidth, CodeYNegative}},
		{"boundary allowed", Position{X: 5, Y: 5}, Playground{Width: 5, Height: 5, AllowBoundaries: true}, []ErrorCode{}},
		{"above width with boundaries allowed", Position{X: 6, Y: 6}, Playground{Width: 5, Height: 5, AllowBoundaries: true}, []ErrorCode{CodeXAboveWidth, CodeYAboveHeight}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(tt.pos, tt.pg)
			got := codes(res)
			if !equalCodes(got, tt.want) {
				t.Errorf("codes = %v, want %v", got, tt.want)
			}
			if res.Valid != (len(tt.want) == 0) {
				t.Errorf("Valid = %v with codes %v", res.Valid, got)
			}
		})
	}
}

func TestValidate_IgnoresCollisionFlag(t *testing.T) {
	pos := Position{X: 1, Y: 1, Facing: East}
	a := Validate(pos, Playground{Width: 5, Height: 5})
	b := Validate(pos, Playground{Width: 5, Height: 5, CollisionsDetected: true})
	if a.Valid != b.Valid || len(a.Errors) != len(b.Errors) {
		t.Errorf("collision flag changed the result: %v vs %v", a, b)
	}
}

func TestValidate_Messages(t *testing.T) {
	res := Validate(Position{X: 8, Y: 5}, Playground{Width: 5, Height: 5})

	if len(res.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(res.Errors))
	}
	if res.Errors[0].Message != "Value X is greater than the playground limit of 5." {
		t.Errorf("unexpected X message: %q", res.Errors[0].Message)
	}
	if res.Errors[1].Message != "Boundaries are not allowed and value Y is equal to the playground limit of 5." {
		t.Errorf("unexpected Y message: %q", res.Errors[1].Message)
	}
	if !res.Has(CodeYOnBoundary) || res.Has(CodeXNegative) {
		t.Errorf("Has() mismatch for %v", codes(res))
	}

	err := res.Err()
	if err == nil {
		t.Fatal("expected Err() to be non-nil")
	}
	if !strings.Contains(err.Error(), "(1):") || !strings.Contains(err.Error(), "(12):") {
		t.Errorf("Err() should list codes: %v", err)
	}
}
