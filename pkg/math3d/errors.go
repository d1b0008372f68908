package math3d

// Error is the closed set of failures reported by this package.
type Error uint8

const (
	// ErrDivisionByZero is returned when a vector is divided by exactly zero.
	ErrDivisionByZero Error = iota + 1
	// ErrZeroNormVector is returned when a zero-length vector is normalized.
	ErrZeroNormVector
	// ErrDegenerateGeometry is returned when a triangle has zero area and
	// therefore no defined normal.
	ErrDegenerateGeometry
)

func (e Error) Error() string {
	switch e {
	case ErrDivisionByZero:
		return "math3d: division by zero"
	case ErrZeroNormVector:
		return "math3d: zero norm vector has no direction"
	case ErrDegenerateGeometry:
		return "math3d: degenerate triangle (collinear or coincident vertices)"
	default:
		return "math3d: unknown error"
	}
}
