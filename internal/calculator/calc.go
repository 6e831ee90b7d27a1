// Package calculator provides generic arithmetic helpers.
package calculator

import "golang.org/x/exp/constraints"

// Numeric is any type that supports subtraction.
type Numeric interface {
	Number | constraints.Complex
}

// Summable is any type that supports addition.
type Summable interface {
	Number | ~string
}

// Subtract returns x minus y.
func Subtract[T Numeric](x, y T) T {
	return x - y
}

// Func adds x and y with a Math[float32] and truncates the sum toward zero.
// Sums outside the int range convert to an implementation-defined value.
func Func(x, y float32) int {
	var m Math[float32]
	return int(m.Add(x, y))
}

// MaxOf returns n+1. The trailing arguments are accepted and never read.
func MaxOf(n int, args ...any) int {
	n++
	return n
}

// Adder returns the sum of all its arguments, folding from the right.
func Adder[T Summable](first T, rest ...T) T {
	if len(rest) == 0 {
		return first
	}
	return first + Adder(rest[0], rest[1:]...)
}
