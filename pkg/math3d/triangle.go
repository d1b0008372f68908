package math3d

// Triangle is a view over three caller-owned vertices. Collinear and
// coincident vertices are accepted.
type Triangle[T Float] struct {
	p1, p2, p3 *Vec3d[T]
}

// NewTriangle creates a triangle over p1, p2 and p3.
func NewTriangle[T Float](p1, p2, p3 *Vec3d[T]) Triangle[T] {
	return Triangle[T]{p1: p1, p2: p2, p3: p3}
}

// Vertices returns copies of the three vertices.
func (t Triangle[T]) Vertices() (Vec3d[T], Vec3d[T], Vec3d[T]) {
	return *t.p1, *t.p2, *t.p3
}

func (t Triangle[T]) normal() Vec3d[T] {
	ab := t.p2.Sub(*t.p1)
	ac := t.p3.Sub(*t.p1)
	return ab.Cross(ac)
}

// Area returns the triangle's area. It is exactly zero for degenerate
// triangles.
func (t Triangle[T]) Area() T {
	return t.normal().Length() * T(0.5)
}

// Barycentre returns the average of the three vertices.
func (t Triangle[T]) Barycentre() Vec3d[T] {
	return t.p1.Add(*t.p2).Add(*t.p3).Mul(1 / T(3))
}

// Surface returns the triangle's normal, (p2-p1) × (p3-p1), wrapped in a
// Surface. Its magnitude is twice the area. Degenerate triangles fail with
// ErrDegenerateGeometry.
func (t Triangle[T]) Surface() (Surface[T], error) {
	if t.Area() == 0 {
		return Surface[T]{}, ErrDegenerateGeometry
	}
	return Surface[T]{n: t.normal()}, nil
}
