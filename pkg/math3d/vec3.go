// Package math3d provides generic 3D vector, line and triangle primitives.
package math3d

import "fmt"

// Vec3d represents a 3D vector over a floating-point scalar type.
type Vec3d[T Float] struct {
	X, Y, Z T
}

// V3 creates a new Vec3d.
func V3[T Float](x, y, z T) Vec3d[T] {
	return Vec3d[T]{x, y, z}
}

// Zero returns the zero vector.
func Zero[T Float]() Vec3d[T] {
	return Vec3d[T]{}
}

// Add returns the vector sum a + b.
func (a Vec3d[T]) Add(b Vec3d[T]) Vec3d[T] {
	return Vec3d[T]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3d[T]) Sub(b Vec3d[T]) Vec3d[T] {
	return Vec3d[T]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Accumulate adds b to a in place.
func (a *Vec3d[T]) Accumulate(b Vec3d[T]) {
	a.X += b.X
	a.Y += b.Y
	a.Z += b.Z
}

// Decrement subtracts b from a in place.
func (a *Vec3d[T]) Decrement(b Vec3d[T]) {
	a.X -= b.X
	a.Y -= b.Y
	a.Z -= b.Z
}

// AccumulateScaled adds b * s to a in place.
func (a *Vec3d[T]) AccumulateScaled(b Vec3d[T], s T) {
	a.X += b.X * s
	a.Y += b.Y * s
	a.Z += b.Z * s
}

// DecrementScaled subtracts b * s from a in place.
func (a *Vec3d[T]) DecrementScaled(b Vec3d[T], s T) {
	a.X -= b.X * s
	a.Y -= b.Y * s
	a.Z -= b.Z * s
}

// Mul returns the scalar product a * s.
func (a Vec3d[T]) Mul(s T) Vec3d[T] {
	return Vec3d[T]{a.X * s, a.Y * s, a.Z * s}
}

// Div returns a scaled by 1/s. It fails with ErrDivisionByZero when s is
// exactly zero.
func (a Vec3d[T]) Div(s T) (Vec3d[T], error) {
	if s == 0 {
		return Vec3d[T]{}, ErrDivisionByZero
	}
	return a.Mul(1 / s), nil
}

// Dot returns the dot product a · b.
func (a Vec3d[T]) Dot(b Vec3d[T]) T {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the right-handed cross product a × b.
func (a Vec3d[T]) Cross(b Vec3d[T]) Vec3d[T] {
	return Vec3d[T]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean norm of the vector.
func (a Vec3d[T]) Length() T {
	return sqrt(a.Dot(a))
}

// LengthSquared returns the squared length (no sqrt).
func (a Vec3d[T]) LengthSquared() T {
	return a.Dot(a)
}

// Normalize returns the unit vector in the same direction. A zero-length
// vector has no direction and yields ErrZeroNormVector.
func (a Vec3d[T]) Normalize() (Vec3d[T], error) {
	n, err := a.Div(a.Length())
	if err != nil {
		return Vec3d[T]{}, ErrZeroNormVector
	}
	return n, nil
}

// Negate returns the negated vector.
func (a Vec3d[T]) Negate() Vec3d[T] {
	return Vec3d[T]{-a.X, -a.Y, -a.Z}
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec3d[T]) Lerp(b Vec3d[T], t T) Vec3d[T] {
	return Vec3d[T]{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// Distance returns the distance between two points.
func (a Vec3d[T]) Distance(b Vec3d[T]) T {
	return a.Sub(b).Length()
}

// Min returns the component-wise minimum.
func (a Vec3d[T]) Min(b Vec3d[T]) Vec3d[T] {
	return Vec3d[T]{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
}

// Max returns the component-wise maximum.
func (a Vec3d[T]) Max(b Vec3d[T]) Vec3d[T] {
	return Vec3d[T]{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}

// Equal reports whether all three components are exactly equal.
func (a Vec3d[T]) Equal(b Vec3d[T]) bool {
	return a.X == b.X && a.Y == b.Y && a.Z == b.Z
}

// String renders the vector as "(x, y, z)" with two decimals per component.
func (a Vec3d[T]) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", float64(a.X), float64(a.Y), float64(a.Z))
}
