// ============================================================================
// meinDENKWERK (mDW) - Numerik
// ============================================================================
//
// Package:     capacitor
// Description: Charge delivered by an exponentially decaying voltage
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

// Package capacitor models Q = C·∫₀ᵀ V(t) dt for V(t) = V₀·e^(−k·t).
package capacitor

import (
	"math"

	"github.com/msto63/mdw-simpson/internal/quadrature"
	mdwerrors "github.com/msto63/mdw-simpson/pkg/core/errors"
)

// Problem describes the capacitor and the integration window [0, Duration]
type Problem struct {
	Capacitance float64 `json:"capacitance" yaml:"capacitance"` // C in F
	Amplitude   float64 `json:"amplitude" yaml:"amplitude"`     // V₀ in V
	Rate        float64 `json:"rate" yaml:"rate"`               // k in 1/s
	Duration    float64 `json:"duration" yaml:"duration"`       // T in s
}

// Default returns the reference problem: C = 1 µF, V(t) = 100·e^(−2t), T = 5 s
func Default() Problem {
	return Problem{
		Capacitance: 1e-6,
		Amplitude:   100,
		Rate:        2,
		Duration:    5,
	}
}

// Validate checks that the problem is physically meaningful
func (p Problem) Validate() error {
	check := func(name string, v float64, positive bool) error {
		if math.IsNaN(v) || math.IsInf(v, 0) || (positive && v <= 0) {
			return mdwerrors.InvalidArgument("invalid %s", name).
				WithOperation("capacitor.Validate").
				WithDetail(name, v)
		}
		return nil
	}

	if err := check("capacitance", p.Capacitance, true); err != nil {
		return err
	}
	if err := check("amplitude", p.Amplitude, false); err != nil {
		return err
	}
	if err := check("rate", p.Rate, true); err != nil {
		return err
	}
	return check("duration", p.Duration, true)
}

// Voltage is the integrand V(t) = V₀·e^(−k·t)
func (p Problem) Voltage(t float64) float64 {
	return p.Amplitude * math.Exp(-p.Rate*t)
}

// Integrand returns Voltage as a quadrature.Func
func (p Problem) Integrand() quadrature.Func {
	return p.Voltage
}

// AnalyticalCharge is the closed form C·V₀·(1−e^(−k·T))/k
func (p Problem) AnalyticalCharge() float64 {
	return p.Capacitance * p.Amplitude * (1 - math.Exp(-p.Rate*p.Duration)) / p.Rate
}

// SimpsonCharge approximates the charge with n Simpson subintervals
func (p Problem) SimpsonCharge(n int) (float64, error) {
	q, err := quadrature.Simpson(p.Integrand(), 0, p.Duration, n)
	if err != nil {
		return 0, err
	}
	return p.Capacitance * q, nil
}
