// Package atom describes atoms as an element type paired with a position.
package atom

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/taigrr/atomgeo/pkg/logging"
	"github.com/taigrr/atomgeo/pkg/math3d"
)

// MaxAtomicNumber is the largest atomic number accepted without a warning.
const MaxAtomicNumber = 126

var (
	ErrUnknownAtomicNumber = errors.New("atomic number does not name a known element")
	ErrSymbolTooLong       = errors.New("element symbol is longer than two characters")
)

// Warning is an advisory validation result. A value that produced a Warning
// is still valid and usable.
type Warning struct {
	Err error
}

func (w *Warning) Error() string {
	return "warning: " + w.Err.Error()
}

func (w *Warning) Unwrap() error {
	return w.Err
}

// IsWarning reports whether err consists only of advisory warnings.
func IsWarning(err error) bool {
	if err == nil {
		return false
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !IsWarning(e) {
				return false
			}
		}
		return true
	}
	var w *Warning
	return errors.As(err, &w)
}

// AtomType identifies an element. Symbol is optional.
type AtomType struct {
	AtomicNumber uint8
	Symbol       string
}

// NewAtomType creates an AtomType. It never fails: out-of-range input is
// logged as a warning and kept as given.
func NewAtomType(number uint8, symbol string) AtomType {
	t := AtomType{AtomicNumber: number, Symbol: symbol}
	if err := t.Validate(); err != nil {
		logging.L().Warn("questionable atom type",
			zap.Uint8("atomic_number", number),
			zap.String("symbol", symbol),
			zap.Error(err),
		)
	}
	return t
}

// Validate returns the joined warnings for t, or nil.
func (t AtomType) Validate() error {
	var errs []error
	if t.AtomicNumber > MaxAtomicNumber {
		errs = append(errs, &Warning{Err: fmt.Errorf("%w: %d", ErrUnknownAtomicNumber, t.AtomicNumber)})
	}
	if utf8.RuneCountInString(t.Symbol) > 2 {
		errs = append(errs, &Warning{Err: fmt.Errorf("%w: %q", ErrSymbolTooLong, t.Symbol)})
	}
	return errors.Join(errs...)
}

func (t AtomType) String() string {
	if t.Symbol == "" {
		return fmt.Sprintf("Z=%d", t.AtomicNumber)
	}
	return fmt.Sprintf("%s(Z=%d)", t.Symbol, t.AtomicNumber)
}

// Atom is an element at a position in space.
type Atom struct {
	Type     AtomType
	Position math3d.Vec3d[float64]
}

// NewAtom creates an Atom.
func NewAtom(t AtomType, position math3d.Vec3d[float64]) Atom {
	return Atom{Type: t, Position: position}
}

// DistanceTo returns the distance between the two atom centres.
func (a Atom) DistanceTo(b Atom) float64 {
	return math3d.NewLineRef(&a.Position, &b.Position).Length()
}

func (a Atom) String() string {
	return fmt.Sprintf("%s %s", a.Type, a.Position)
}
