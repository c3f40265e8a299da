package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c9s/fraccalc/pkg/calc"
	"github.com/c9s/fraccalc/pkg/fixedpoint"
)

var EvaluationMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fraccalc_evaluations_total",
		Help: "evaluated expressions by outcome",
	}, []string{"source", "outcome"})

var DivisionByZeroMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fraccalc_division_by_zero_total",
		Help: "evaluations that divided by zero",
	}, []string{"source"})

var OperandCountMetrics = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "fraccalc_operands",
		Help:    "number of operands folded per expression",
		Buckets: prometheus.LinearBuckets(1, 2, 8),
	}, []string{"source"})

func init() {
	prometheus.MustRegister(EvaluationMetrics, DivisionByZeroMetrics, OperandCountMetrics)
}

// Outcome classifies an evaluation error for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, fixedpoint.ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, fixedpoint.ErrOverflow):
		return "overflow"
	case errors.Is(err, calc.ErrInvalidToken):
		return "parse_error"
	}
	return "error"
}

func UpdateEvaluationMetrics(source string, result calc.Result, err error) {
	EvaluationMetrics.With(prometheus.Labels{"source": source, "outcome": Outcome(err)}).Inc()
	if err != nil {
		return
	}

	if result.DivisionByZero {
		DivisionByZeroMetrics.With(prometheus.Labels{"source": source}).Inc()
	}

	OperandCountMetrics.With(prometheus.Labels{"source": source}).Observe(float64(result.Operands))
}
