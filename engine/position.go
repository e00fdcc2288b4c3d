package engine

// Point is a field cell, 0-based
type Point struct {
	X, Y int
}

// Direction is a unit step on the field
type Direction struct {
	DX, DY int
}

var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Step moves p one cell along d on a cols x rows torus
func (p Point) Step(d Direction, cols, rows int) Point {
	return Point{
		X: (p.X + d.DX + cols) % cols,
		Y: (p.Y + d.DY + rows) % rows,
	}
}
