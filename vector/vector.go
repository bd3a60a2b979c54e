// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// initialCapacity is the capacity of a vector created by New.
const initialCapacity = 1

// Vector is a growable sequence of float64 values.
// data has len == capacity; only data[:size] is logically visible.
// The zero value is an empty vector with capacity 0 and is ready to use.
type Vector struct {
	data []float64 // backing storage, len(data) == capacity
	size int       // elements in use, 0 ≤ size ≤ len(data)
}

// New returns an empty vector with capacity 1.
func New() *Vector {
	return &Vector{data: make([]float64, initialCapacity)}
}

// WithCapacity returns an empty vector whose backing storage holds n elements.
// Values of n below 1 are raised to 1.
func WithCapacity(n int) *Vector {
	if n < initialCapacity {
		n = initialCapacity
	}

	return &Vector{data: make([]float64, n)}
}

// Zeros returns a vector of size n with every element set to 0.
// Negative n is treated as 0.
func Zeros(n int) *Vector {
	if n < 0 {
		n = 0
	}
	v := WithCapacity(n)
	v.size = n

	return v
}

// FromSlice returns a vector holding a copy of vals.
func FromSlice(vals ...float64) *Vector {
	v := WithCapacity(len(vals))
	copy(v.data, vals)
	v.size = len(vals)

	return v
}

// Size returns the number of elements in use.
func (v *Vector) Size() int { return v.size }

// Cap returns the capacity of the backing storage.
func (v *Vector) Cap() int { return len(v.data) }

// Push appends x, doubling the capacity when the vector is full.
// Complexity: amortized O(1).
func (v *Vector) Push(x float64) {
	if v.size == len(v.data) {
		newCap := 2 * len(v.data)
		if newCap < initialCapacity {
			newCap = initialCapacity
		}
		grown := make([]float64, newCap)
		copy(grown, v.data[:v.size])
		v.data = grown
	}
	v.data[v.size] = x
	v.size++
}

// At returns the element at index i.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= v.size {
		return 0, fmt.Errorf("At(%d) size=%d: %w", i, v.size, ErrIndexOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns x to index i.
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("Set(%d) size=%d: %w", i, v.size, ErrIndexOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Reset zeroes the backing storage and sets the size to 0.
// Capacity is kept, so a reset vector can be refilled without reallocating.
func (v *Vector) Reset() {
	for i := range v.data {
		v.data[i] = 0
	}
	v.size = 0
}

// Clone returns a deep copy with the same size and capacity.
func (v *Vector) Clone() *Vector {
	data := make([]float64, len(v.data))
	copy(data, v.data[:v.size])

	return &Vector{data: data, size: v.size}
}

// Slice returns a copy of the logical elements [0, Size()).
func (v *Vector) Slice() []float64 {
	out := make([]float64, v.size)
	copy(out, v.data[:v.size])

	return out
}

// Magnitude returns the Euclidean norm over [0, Size()).
func (v *Vector) Magnitude() float64 {
	if v.size == 0 {
		return 0
	}

	return floats.Norm(v.data[:v.size], 2)
}

// String renders the elements joined by ", " with no trailing separator.
func (v *Vector) String() string {
	var sb strings.Builder
	for i := 0; i < v.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v.data[i], 'g', -1, 64))
	}

	return sb.String()
}

// view exposes the logical elements without copying. Callers must not retain it.
func (v *Vector) view() []float64 { return v.data[:v.size] }
