package math3d

// Surface carries the oriented, non-normalized normal of a triangle.
// Surfaces are produced by Triangle.Surface.
type Surface[T Float] struct {
	n Vec3d[T]
}

// N returns the normal vector.
func (s Surface[T]) N() Vec3d[T] {
	return s.n
}
