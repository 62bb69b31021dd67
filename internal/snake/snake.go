package snake

// InitialLength is the number of body segments a new snake starts with.
const InitialLength = 2

// Snake is the player entity. The head is tracked apart from the body;
// segments are ordered from the neck to the tail.
type Snake struct {
	head     Position
	dir      Direction
	segments []Position
	score    int
	width    int
	height   int
}

// NewSnake places a snake in the middle of the board heading right, with its
// two initial segments trailing to the left.
func NewSnake(width, height int) *Snake {
	cx, cy := width/2, height/2
	return NewSnakeAt(width, height, Position{X: cx, Y: cy}, DirRight, []Position{
		wrap(cx-1, cy, width, height),
		wrap(cx-2, cy, width, height),
	})
}

// NewSnakeAt builds a snake from explicit state.
func NewSnakeAt(width, height int, head Position, dir Direction, segments []Position) *Snake {
	segs := make([]Position, len(segments), len(segments)+1)
	copy(segs, segments)
	return &Snake{
		head:     head,
		dir:      dir,
		segments: segs,
		width:    width,
		height:   height,
	}
}

// Head returns the head position.
func (s *Snake) Head() Position {
	return s.head
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Score returns the number of food items eaten.
func (s *Snake) Score() int {
	return s.score
}

// Len returns the number of body segments, head excluded.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Segments returns a copy of the body, neck first.
func (s *Snake) Segments() []Position {
	out := make([]Position, len(s.segments))
	copy(out, s.segments)
	return out
}

// SetDirection changes the heading for the next Advance. The exact opposite
// of the current heading is ignored. Reports whether the heading changed.
func (s *Snake) SetDirection(d Direction) bool {
	if d == s.dir.Opposite() {
		return false
	}
	s.dir = d
	return true
}

// Advance moves the snake one cell. The old head becomes the neck, the tail
// is dropped once the body is longer than score+InitialLength, then the head
// steps in the current direction.
func (s *Snake) Advance() {
	if len(s.segments) > 0 {
		s.segments = append(s.segments, Position{})
		copy(s.segments[1:], s.segments)
		s.segments[0] = s.head
		if len(s.segments) > s.score+InitialLength {
			s.segments = s.segments[:len(s.segments)-1]
		}
	}
	s.head = s.head.Step(s.dir, s.width, s.height)
}

// DetectSelfCollision reports whether the head overlaps any body segment.
func (s *Snake) DetectSelfCollision() bool {
	for _, seg := range s.segments {
		if seg == s.head {
			return true
		}
	}
	return false
}

// ConsumeFood adds a point. The length cap rises with it, so the body grows
// on the following Advance.
func (s *Snake) ConsumeFood() {
	s.score++
}
