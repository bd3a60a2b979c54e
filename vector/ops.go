// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultDigits is the number of decimal digits Equal compares.
const DefaultDigits = 6

// Operation tags used when wrapping errors.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opDot        = "Dot"
	opAddScaled  = "AddScaled"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
)

// validatePair checks that a and b are non-nil and of equal size.
func validatePair(tag string, a, b *Vector) error {
	if a == nil || b == nil {
		return fmt.Errorf("%s: %w", tag, ErrNilVector)
	}
	if a.size != b.size {
		return fmt.Errorf("%s: sizes %d and %d: %w", tag, a.size, b.size, ErrLengthMismatch)
	}

	return nil
}

// Add returns a new vector a + b.
func Add(a, b *Vector) (*Vector, error) {
	if err := validatePair(opAdd, a, b); err != nil {
		return nil, err
	}
	out := Zeros(a.size)
	floats.AddTo(out.view(), a.view(), b.view())

	return out, nil
}

// Sub returns a new vector a - b.
func Sub(a, b *Vector) (*Vector, error) {
	if err := validatePair(opSub, a, b); err != nil {
		return nil, err
	}
	out := Zeros(a.size)
	floats.SubTo(out.view(), a.view(), b.view())

	return out, nil
}

// Scale returns a new vector c·v.
func Scale(c float64, v *Vector) *Vector {
	out := Zeros(v.size)
	floats.ScaleTo(out.view(), c, v.view())

	return out
}

// Dot returns the inner product a·b.
func Dot(a, b *Vector) (float64, error) {
	if err := validatePair(opDot, a, b); err != nil {
		return 0, err
	}

	return floats.Dot(a.view(), b.view()), nil
}

// AddInPlace performs dst += src.
func AddInPlace(dst, src *Vector) error {
	if err := validatePair(opAddInPlace, dst, src); err != nil {
		return err
	}
	floats.Add(dst.view(), src.view())

	return nil
}

// SubInPlace performs dst -= src.
func SubInPlace(dst, src *Vector) error {
	if err := validatePair(opSubInPlace, dst, src); err != nil {
		return err
	}
	floats.Sub(dst.view(), src.view())

	return nil
}

// AddScaled performs dst += alpha·src.
func AddScaled(dst *Vector, alpha float64, src *Vector) error {
	if err := validatePair(opAddScaled, dst, src); err != nil {
		return err
	}
	floats.AddScaled(dst.view(), alpha, src.view())

	return nil
}

// ScaleInPlace multiplies every element of v by c.
func ScaleInPlace(c float64, v *Vector) {
	floats.Scale(c, v.view())
}

// Equal reports whether a and b hold the same elements at DefaultDigits
// decimal digits.
func Equal(a, b *Vector) bool {
	return EqualDigits(a, b, DefaultDigits)
}

// EqualDigits reports whether a and b have the same size and every pair of
// elements agrees after truncating toward zero at the given number of decimal
// digits. NaN never compares equal.
func EqualDigits(a, b *Vector, digits int) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.size != b.size {
		return false
	}
	scale := math.Pow10(digits)
	for i := 0; i < a.size; i++ {
		if math.Trunc(a.data[i]*scale) != math.Trunc(b.data[i]*scale) {
			return false
		}
	}

	return true
}
