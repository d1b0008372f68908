package atom

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/taigrr/atomgeo/pkg/logging"
	"github.com/taigrr/atomgeo/pkg/math3d"
)

// ErrAtomIndex is returned when an atom index is out of range.
var ErrAtomIndex = errors.New("atom index out of range")

// Molecule is a named collection of atoms.
type Molecule struct {
	Name  string
	Atoms []Atom
}

type moleculeFile struct {
	Name  string     `yaml:"name"`
	Atoms []atomFile `yaml:"atoms"`
}

type atomFile struct {
	Number   uint8     `yaml:"number"`
	Symbol   string    `yaml:"symbol,omitempty"`
	Position []float64 `yaml:"position"`
}

// LoadYAML reads a molecule description:
//
//	name: water
//	atoms:
//	  - number: 8
//	    symbol: O
//	    position: [0, 0, 0.1173]
//
// Malformed documents and positions without exactly three components are
// errors. Questionable atom types are only logged.
func LoadYAML(r io.Reader) (*Molecule, error) {
	var f moleculeFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode molecule: %w", err)
	}

	m := &Molecule{Name: f.Name, Atoms: make([]Atom, 0, len(f.Atoms))}
	for i, a := range f.Atoms {
		if len(a.Position) != 3 {
			return nil, fmt.Errorf("atom %d: position has %d components, want 3", i, len(a.Position))
		}
		pos := math3d.V3(a.Position[0], a.Position[1], a.Position[2])
		m.Atoms = append(m.Atoms, NewAtom(NewAtomType(a.Number, a.Symbol), pos))
	}

	logging.L().Debug("loaded molecule",
		zap.String("name", m.Name),
		zap.Int("atoms", len(m.Atoms)),
	)
	return m, nil
}

// Len returns the number of atoms.
func (m *Molecule) Len() int {
	return len(m.Atoms)
}

// Centroid returns the average atom position. An empty molecule has no
// centroid and yields math3d.ErrDivisionByZero.
func (m *Molecule) Centroid() (math3d.Vec3d[float64], error) {
	var sum math3d.Vec3d[float64]
	for i := range m.Atoms {
		sum.Accumulate(m.Atoms[i].Position)
	}
	c, err := sum.Div(float64(len(m.Atoms)))
	if err != nil {
		return math3d.Vec3d[float64]{}, fmt.Errorf("centroid of %q: %w", m.Name, err)
	}
	return c, nil
}

// Validate returns the joined warnings of all atom types, or nil.
func (m *Molecule) Validate() error {
	var errs []error
	for i := range m.Atoms {
		if err := m.Atoms[i].Type.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("atom %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (m *Molecule) atom(i int) (*Atom, error) {
	if i < 0 || i >= len(m.Atoms) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrAtomIndex, i, len(m.Atoms))
	}
	return &m.Atoms[i], nil
}

func (m *Molecule) bond(i, j int) (math3d.LineRef[float64], error) {
	a, err := m.atom(i)
	if err != nil {
		return math3d.LineRef[float64]{}, err
	}
	b, err := m.atom(j)
	if err != nil {
		return math3d.LineRef[float64]{}, err
	}
	return math3d.NewLineRef(&a.Position, &b.Position), nil
}

// BondLength returns the distance between atoms i and j.
func (m *Molecule) BondLength(i, j int) (float64, error) {
	l, err := m.bond(i, j)
	if err != nil {
		return 0, err
	}
	return l.Length(), nil
}

// BondMidpoint returns the point halfway between atoms i and j.
func (m *Molecule) BondMidpoint(i, j int) (math3d.Vec3d[float64], error) {
	l, err := m.bond(i, j)
	if err != nil {
		return math3d.Vec3d[float64]{}, err
	}
	return l.MiddlePoint(), nil
}

// PlaneNormal returns the unit normal of the plane through atoms i, j and k,
// oriented by the right-hand rule. Collinear atoms yield
// math3d.ErrDegenerateGeometry.
func (m *Molecule) PlaneNormal(i, j, k int) (math3d.Vec3d[float64], error) {
	var pts [3]*Atom
	for n, idx := range [3]int{i, j, k} {
		a, err := m.atom(idx)
		if err != nil {
			return math3d.Vec3d[float64]{}, err
		}
		pts[n] = a
	}

	s, err := math3d.NewTriangle(&pts[0].Position, &pts[1].Position, &pts[2].Position).Surface()
	if err != nil {
		return math3d.Vec3d[float64]{}, fmt.Errorf("plane of atoms %d, %d, %d: %w", i, j, k, err)
	}
	return s.N().Normalize()
}
