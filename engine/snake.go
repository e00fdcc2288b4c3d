package engine

// Snake is a fixed-capacity ring of cells; tail..head (circular, inclusive) are live.
// Capacity is the field area, so the ring never needs to grow.
type Snake struct {
	cells []Point
	head  int
	tail  int
}

// NewSnake allocates a ring for at most capacity cells
func NewSnake(capacity int) *Snake {
	if capacity < 1 {
		capacity = 1
	}
	return &Snake{cells: make([]Point, capacity)}
}

// Reset shrinks the snake to a single cell at start
func (s *Snake) Reset(start Point) {
	s.head = 0
	s.tail = 0
	s.cells[0] = start
}

// Cap returns the ring capacity
func (s *Snake) Cap() int {
	return len(s.cells)
}

// Len returns the number of live cells
func (s *Snake) Len() int {
	c := len(s.cells)
	return (s.head-s.tail+c)%c + 1
}

// Head returns the newest cell
func (s *Snake) Head() Point {
	return s.cells[s.head]
}

// Tail returns the oldest cell
func (s *Snake) Tail() Point {
	return s.cells[s.tail]
}

// Contains reports whether p is a live cell
func (s *Snake) Contains(p Point) bool {
	c := len(s.cells)
	for i, n := s.tail, s.Len(); n > 0; i, n = (i+1)%c, n-1 {
		if s.cells[i] == p {
			return true
		}
	}
	return false
}

// Cells returns the live cells from tail to head
func (s *Snake) Cells() []Point {
	c := len(s.cells)
	out := make([]Point, 0, s.Len())
	for i, n := s.tail, s.Len(); n > 0; i, n = (i+1)%c, n-1 {
		out = append(out, s.cells[i])
	}
	return out
}

// Move appends next as the new head. Unless grow is set the tail advances first,
// so the cell being vacated this tick does not count as a collision.
// Returns true when next was already occupied.
func (s *Snake) Move(next Point, grow bool) bool {
	c := len(s.cells)
	if !grow {
		s.tail = (s.tail + 1) % c
	}

	// Scan tail..old head; empty when a single-cell snake just vacated its only cell
	newHead := (s.head + 1) % c
	collided := false
	for i := s.tail; i != newHead; i = (i + 1) % c {
		if s.cells[i] == next {
			collided = true
			break
		}
	}

	s.cells[newHead] = next
	s.head = newHead
	return collided
}
