// ============================================================================
// meinDENKWERK (mDW) - Numerik
// ============================================================================
//
// Package:     study
// Description: Convergence study of Simpson's rule against the closed form
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package study

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/msto63/mdw-simpson/internal/capacitor"
	"github.com/msto63/mdw-simpson/pkg/core/logging"
)

// DefaultSubdivisions are the subdivision counts of the reference study
var DefaultSubdivisions = []int{6, 10, 20, 30}

// convergenceSlack is the error growth, relative to the analytical charge,
// that Converging attributes to rounding
const convergenceSlack = 1e-12

// Record compares one Simpson approximation with the closed form
type Record struct {
	N      int     `json:"n" yaml:"n"`
	Charge float64 `json:"charge" yaml:"charge"`
	Error  float64 `json:"error" yaml:"error"`
}

// Result is the outcome of one study run
type Result struct {
	RunID      string            `json:"run_id" yaml:"run_id"`
	Problem    capacitor.Problem `json:"problem" yaml:"problem"`
	Records    []Record          `json:"records" yaml:"records"`
	Analytical float64           `json:"analytical" yaml:"analytical"`
}

// Runner executes studies and logs each step
type Runner struct {
	logger *logging.Logger
}

// NewRunner creates a Runner. A nil logger discards all output.
func NewRunner(logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Runner{logger: logger}
}

// Run computes a Record for every n in ns. The first invalid n aborts the
// run and no partial result is returned.
func (r *Runner) Run(p capacitor.Problem, ns []int) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:      uuid.New().String(),
		Problem:    p,
		Records:    make([]Record, 0, len(ns)),
		Analytical: p.AnalyticalCharge(),
	}
	log := r.logger.With("run_id", res.RunID)
	debug := log.Enabled(logging.LevelDebug)
	log.Debug("Starting study", "subdivisions", ns, "analytical", res.Analytical)

	for _, n := range ns {
		charge, err := p.SimpsonCharge(n)
		if err != nil {
			log.Error("Quadrature rejected subdivision count", "n", n, "error", err)
			return nil, err
		}
		rec := Record{
			N:      n,
			Charge: charge,
			Error:  math.Abs(charge - res.Analytical),
		}
		res.Records = append(res.Records, rec)
		if debug {
			order := math.NaN()
			if k := len(res.Records); k > 1 {
				order = ObservedOrder(res.Records[k-2], rec)
			}
			log.Debug("Quadrature done", "n", n, "charge", charge, "error", rec.Error, "order", order)
		}
	}

	log.Info("Study finished", "records", len(res.Records), "converging", res.Converging())
	return res, nil
}

// Run executes a study without logging
func Run(p capacitor.Problem, ns []int) (*Result, error) {
	return NewRunner(nil).Run(p, ns)
}

// Converging reports whether the error does not grow as n increases
func (r *Result) Converging() bool {
	slack := convergenceSlack * math.Abs(r.Analytical)
	sorted := r.ByN()
	for i := 1; i < len(sorted); i++ {
		if sorted[i].N == sorted[i-1].N {
			continue
		}
		if sorted[i].Error > sorted[i-1].Error+slack {
			return false
		}
	}
	return true
}

// ByN returns the records ordered by increasing n
func (r *Result) ByN() []Record {
	out := make([]Record, len(r.Records))
	copy(out, r.Records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].N < out[j].N })
	return out
}

// Orders returns the observed order between consecutive records (by n). The
// first record has no predecessor and gets NaN.
func (r *Result) Orders() []float64 {
	sorted := r.ByN()
	orders := make([]float64, len(sorted))
	for i := range sorted {
		if i == 0 {
			orders[i] = math.NaN()
			continue
		}
		orders[i] = ObservedOrder(sorted[i-1], sorted[i])
	}
	return orders
}

// ObservedOrder estimates p in error ∝ n^(−p) from two records:
// p = log(e₁/e₂) / log(n₂/n₁). It returns NaN when the estimate is undefined.
func ObservedOrder(r1, r2 Record) float64 {
	if r1.N <= 0 || r2.N <= 0 || r1.N == r2.N || r1.Error <= 0 || r2.Error <= 0 {
		return math.NaN()
	}
	return math.Log(r1.Error/r2.Error) / math.Log(float64(r2.N)/float64(r1.N))
}
