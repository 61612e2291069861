// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements logical and physical pixel positions.

Logical pixels are the units a host reports pointer coordinates in,
before any display scaling. Physical pixels are device pixels; a logical
position is converted to a physical one by multiplying with the scale
factor of the display, often called the device pixel ratio.

Deltas, such as the movement of a pointer since its previous event, use
the same types as absolute positions.

*/
package unit

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of types a position may be expressed in.
type Number interface {
	constraints.Integer | constraints.Float
}

// LogicalPosition is a position in host logical pixels.
type LogicalPosition[T Number] struct {
	X, Y T
}

// PhysicalPosition is a position in device pixels.
type PhysicalPosition[T Number] struct {
	X, Y T
}

// Logical is shorthand for LogicalPosition{X: x, Y: y}.
func Logical[T Number](x, y T) LogicalPosition[T] {
	return LogicalPosition[T]{X: x, Y: y}
}

// Physical is shorthand for PhysicalPosition{X: x, Y: y}.
func Physical[T Number](x, y T) PhysicalPosition[T] {
	return PhysicalPosition[T]{X: x, Y: y}
}

// ToPhysical converts p to device pixels. Integer positions are rounded
// to the nearest pixel. The scale factor must be positive and finite.
func (p LogicalPosition[T]) ToPhysical(scale float64) PhysicalPosition[T] {
	validateScale(scale)
	return PhysicalPosition[T]{
		X: cast[T](float64(p.X) * scale),
		Y: cast[T](float64(p.Y) * scale),
	}
}

func (p LogicalPosition[T]) String() string {
	return fmt.Sprintf("(%v,%v)lp", p.X, p.Y)
}

func (p PhysicalPosition[T]) String() string {
	return fmt.Sprintf("(%v,%v)px", p.X, p.Y)
}

func validateScale(scale float64) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		panic(fmt.Sprintf("invalid scale factor %v", scale))
	}
}

// cast converts v to T, rounding when T is an integer type.
func cast[T Number](v float64) T {
	half := 0.5
	if T(half) == 0 {
		return T(math.Round(v))
	}
	return T(v)
}
