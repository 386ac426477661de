package engine

// Left returns the orientation a quarter-turn counter-clockwise from o
func (o Orientation) Left() Orientation {
	return (o + orientationCount - 1) % orientationCount
}

// Right returns the orientation a quarter-turn clockwise from o
func (o Orientation) Right() Orientation {
	return (o + 1) % orientationCount
}

// Advance returns the position step units ahead in the current facing.
// There is no wraparound; the result may fall outside any playground.
func (p Position) Advance(step int) Position {
	next := p
	switch p.Facing {
	case North:
		next.Y += step
	case South:
		next.Y -= step
	case East:
		next.X += step
	case West:
		next.X -= step
	}
	return next
}

// TurnLeft returns a copy of p rotated counter-clockwise
func (p Position) TurnLeft() Position {
	p.Facing = p.Facing.Left()
	return p
}

// TurnRight returns a copy of p rotated clockwise
func (p Position) TurnRight() Position {
	p.Facing = p.Facing.Right()
	return p
}
