// ============================================================================
// meinDENKWERK (mDW) - Numerik
// ============================================================================
//
// Package:     quadrature
// Description: Composite Simpson's rule over equally spaced nodes
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package quadrature

import (
	"gonum.org/v1/gonum/floats"

	mdwerrors "github.com/msto63/mdw-simpson/pkg/core/errors"
)

// Func is a real integrand. It must be free of side effects.
type Func func(x float64) float64

// Simpson approximates the integral of f over [a, b] using n subintervals.
// n must be positive and even.
func Simpson(f Func, a, b float64, n int) (float64, error) {
	if err := CheckSubdivisions(n); err != nil {
		return 0, err
	}
	if f == nil {
		return 0, mdwerrors.InvalidArgument("integrand must not be nil").
			WithOperation("quadrature.Simpson")
	}

	h := (b - a) / float64(n)
	return SimpsonSamples(Sample(f, Nodes(a, b, n)), h)
}

// SimpsonSamples applies the Simpson weights to samples ys taken at spacing
// h. len(ys)-1 is the subdivision count and must be positive and even.
func SimpsonSamples(ys []float64, h float64) (float64, error) {
	n := len(ys) - 1
	if err := CheckSubdivisions(n); err != nil {
		return 0, err
	}

	var odd, even float64
	for i := 1; i < n; i++ {
		if i%2 == 1 {
			odd += ys[i]
		} else {
			even += ys[i]
		}
	}

	return h / 3 * (ys[0] + ys[n] + 4*odd + 2*even), nil
}

// CheckSubdivisions validates a subdivision count for Simpson's rule
func CheckSubdivisions(n int) error {
	if n <= 0 {
		return mdwerrors.InvalidArgument("subdivision count must be positive").
			WithOperation("quadrature.Simpson").
			WithDetail("n", n)
	}
	if n%2 != 0 {
		return mdwerrors.InvalidArgument("subdivision count must be even").
			WithOperation("quadrature.Simpson").
			WithDetail("n", n)
	}
	return nil
}

// Nodes returns the n+1 equally spaced points a = x₀ < … < xₙ = b.
// n must be at least 1.
func Nodes(a, b float64, n int) []float64 {
	return floats.Span(make([]float64, n+1), a, b)
}

// Sample evaluates f at every point of xs
func Sample(f Func, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}
