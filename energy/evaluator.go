// Package energy is the Metropolis-Hastings acceptance step of the chain.
//
// An Evaluator combines two pluggable scores over a plan, compactness and
// population balance, into the acceptance ratio
//
//	exp(Alpha·(Ec(candidate) − Ec(current)) + Beta·(Ep(candidate) − Ep(current)))
//
// Higher energy is better: a candidate that raises the weighted energy has a
// ratio above one and is always accepted. Accept applies the usual
// min(1, ratio) rule against a uniform draw.
package energy

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/redistrict/plan"
)

// ErrNotConfigured is returned when an energy function is missing.
var ErrNotConfigured = errors.New("energy: energy function not configured")

// Func scores a plan. Implementations must be pure and safe to call from
// several chains at once.
type Func func(p *plan.Plan) (float64, error)

// Evaluator weighs compactness and population energies.
type Evaluator struct {
	Alpha       float64 // compactness weight
	Beta        float64 // population-balance weight
	Compactness Func
	Population  Func
}

// Energy returns Alpha·Ec(p) + Beta·Ep(p).
func (e Evaluator) Energy(p *plan.Plan) (float64, error) {
	if e.Compactness == nil {
		return 0, fmt.Errorf("Energy: compactness: %w", ErrNotConfigured)
	}
	if e.Population == nil {
		return 0, fmt.Errorf("Energy: population: %w", ErrNotConfigured)
	}
	if p == nil {
		return 0, plan.ErrNilPlan
	}
	c, err := e.Compactness(p)
	if err != nil {
		return 0, fmt.Errorf("Energy: compactness: %w", err)
	}
	pop, err := e.Population(p)
	if err != nil {
		return 0, fmt.Errorf("Energy: population: %w", err)
	}
	return e.Alpha*c + e.Beta*pop, nil
}

// LogRatio returns Energy(candidate) − Energy(current).
func (e Evaluator) LogRatio(current, candidate *plan.Plan) (float64, error) {
	cur, err := e.Energy(current)
	if err != nil {
		return 0, fmt.Errorf("LogRatio: current: %w", err)
	}
	cand, err := e.Energy(candidate)
	if err != nil {
		return 0, fmt.Errorf("LogRatio: candidate: %w", err)
	}
	return cand - cur, nil
}

// Ratio returns the Metropolis ratio exp(LogRatio(current, candidate)).
// Large positive differences overflow to +Inf, which Accept treats as 1.
func (e Evaluator) Ratio(current, candidate *plan.Plan) (float64, error) {
	lr, err := e.LogRatio(current, candidate)
	if err != nil {
		return 0, err
	}
	return math.Exp(lr), nil
}

// Accept reports whether a candidate with the given ratio is accepted for a
// uniform draw u in [0,1): u < min(1, ratio).
func Accept(ratio, u float64) bool {
	return u < math.Min(1, ratio)
}
