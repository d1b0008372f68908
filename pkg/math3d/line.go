package math3d

// LineRef is a segment between two points owned by the caller. It reads the
// endpoints on every call, so it reflects later changes to them.
type LineRef[T Float] struct {
	p1, p2 *Vec3d[T]
}

// NewLineRef creates a segment view over p1 and p2.
func NewLineRef[T Float](p1, p2 *Vec3d[T]) LineRef[T] {
	return LineRef[T]{p1: p1, p2: p2}
}

// Length returns the distance between the endpoints.
func (l LineRef[T]) Length() T {
	return l.p1.Sub(*l.p2).Length()
}

// MiddlePoint returns the midpoint of the segment.
func (l LineRef[T]) MiddlePoint() Vec3d[T] {
	return l.p1.Add(*l.p2).Mul(T(0.5))
}

// ToLine returns the owning direction form p1 - p2. The absolute position of
// the segment is lost; length and orientation are kept.
func (l LineRef[T]) ToLine() Line[T] {
	return Line[T]{V: l.p1.Sub(*l.p2)}
}

// Line is a segment reduced to its direction vector.
type Line[T Float] struct {
	V Vec3d[T]
}

// NewLine creates a line from a direction vector.
func NewLine[T Float](v Vec3d[T]) Line[T] {
	return Line[T]{V: v}
}

// Length returns the norm of the direction.
func (l Line[T]) Length() T {
	return l.V.Length()
}

// MiddlePoint returns half the direction. For a line obtained from
// LineRef.ToLine the segment midpoint is MiddlePoint().Add(p2).
func (l Line[T]) MiddlePoint() Vec3d[T] {
	return l.V.Mul(T(0.5))
}
