// ============================================================================
// meinDENKWERK (mDW) - Numerik
// ============================================================================
//
// Package:     quadrature
// Description: Composite Simpson's rule
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

/*
Package quadrature approximates definite integrals with the composite
Simpson's rule.

The interval [a, b] is split into n equal subintervals (n even). Parabolic
arcs through consecutive triples of sample points give

	∫f ≈ h/3 · [f(x₀) + 4f(x₁) + 2f(x₂) + … + 4f(xₙ₋₁) + f(xₙ)],  h = (b−a)/n

The rule is exact for polynomials up to degree 3 and its global error is
O(h⁴).

Usage:

	q, err := quadrature.Simpson(func(t float64) float64 {
		return 100 * math.Exp(-2*t)
	}, 0, 5, 30)

An odd or non-positive n is rejected with an error carrying
errors.CodeInvalidArgument before f is evaluated.

All functions are pure: identical arguments yield bit-identical results.
*/
package quadrature
