// Package metrics exposes Prometheus collectors for command dispatch and input polling.
//
// A nil *Metrics is valid and records nothing, so components can hold one
// unconditionally.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Dispatch results.
const (
	ResultOK           = "ok"
	ResultHandlerError = "handler_error"
	ResultUnknown      = "unknown"
)

// Poll outcomes.
const (
	PollTimeout   = "timeout"
	PollMore      = "more"
	PollLine      = "line"
	PollCancelled = "cancelled"
	PollError     = "error"
)

// Metrics groups the collectors of one shell.
type Metrics struct {
	Dispatches *prometheus.CounterVec
	Polls      *prometheus.CounterVec
	Lines      prometheus.Counter
}

// New creates the collectors and registers them with reg.
// A nil reg leaves them unregistered. Collectors already registered with reg
// are reused, so several shells can share one registry.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cmdline_dispatches_total",
				Help: "Total number of dispatched command lines",
			},
			[]string{"command", "result"},
		),
		Polls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cmdline_polls_total",
				Help: "Total number of asynchronous input polls",
			},
			[]string{"outcome"},
		),
		Lines: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cmdline_lines_total",
				Help: "Total number of completed input lines",
			},
		),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.Dispatches, err = register(reg, m.Dispatches); err != nil {
		return nil, err
	}
	if m.Polls, err = register(reg, m.Polls); err != nil {
		return nil, err
	}
	if m.Lines, err = register(reg, m.Lines); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveDispatch counts one dispatched line.
// Unknown commands are counted without their name to bound label cardinality.
func (m *Metrics) ObserveDispatch(command, result string) {
	if m == nil {
		return
	}
	if result == ResultUnknown {
		command = ""
	}
	m.Dispatches.WithLabelValues(command, result).Inc()
}

// ObservePoll counts one asynchronous poll.
func (m *Metrics) ObservePoll(outcome string) {
	if m == nil {
		return
	}
	m.Polls.WithLabelValues(outcome).Inc()
}

// ObserveLine counts one completed input line.
func (m *Metrics) ObserveLine() {
	if m == nil {
		return
	}
	m.Lines.Inc()
}
