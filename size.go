package pixl

import "fmt"

// Size is a non-negative continuous extent.
type Size struct {
	W, H float64
}

// NewSize validates and returns a Size. Negative or non-finite extents
// fail with ErrInvalidGeometry; zero is allowed.
func NewSize(w, h float64) (Size, error) {
	if err := checkExtent("width", w); err != nil {
		return Size{}, err
	}
	if err := checkExtent("height", h); err != nil {
		return Size{}, err
	}
	return Size{W: w, H: h}, nil
}

// IsEmpty reports whether either extent is zero.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

func checkExtent(name string, v float64) error {
	if !isFinite(v) || v < 0 {
		return fmt.Errorf("%w: %s %v must be finite and >= 0", ErrInvalidGeometry, name, v)
	}
	return nil
}

func checkCoord(name string, v float64) error {
	if !isFinite(v) {
		return fmt.Errorf("%w: %s %v must be finite", ErrInvalidGeometry, name, v)
	}
	return nil
}
