package mapping

import (
	"context"
	"fmt"
	"log/slog"
)

// Rule transforms one input into one output.
type Rule[I, O any] interface {
	Transform(input I) (O, error)
}

// RuleFunc adapts a function to Rule.
type RuleFunc[I, O any] func(input I) (O, error)

// Transform calls f.
func (f RuleFunc[I, O]) Transform(input I) (O, error) {
	return f(input)
}

// Engine dispatches inputs to rules by key.
//
// An Engine is not safe for concurrent Register calls; once populated, Map may be
// called from any number of goroutines as long as the rules themselves allow it.
type Engine[K comparable, I, O any] struct {
	keyOf  func(I) K
	rules  map[K]Rule[I, O]
	order  []K
	target string
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger *slog.Logger
	target string
}

// WithLogger sets the logger used for unmatched-input warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTargetName names the output type in log lines and errors, e.g. "datatype definition".
func WithTargetName(name string) Option {
	return func(o *options) {
		o.target = name
	}
}

// NewEngine returns an empty engine keyed by keyOf.
func NewEngine[K comparable, I, O any](keyOf func(I) K, opts ...Option) *Engine[K, I, O] {
	o := options{logger: slog.Default(), target: "output"}
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine[K, I, O]{
		keyOf:  keyOf,
		rules:  make(map[K]Rule[I, O]),
		target: o.target,
		logger: o.logger,
	}
}

// Register binds rule to key, replacing any rule already bound to it.
func (e *Engine[K, I, O]) Register(key K, rule Rule[I, O]) *Engine[K, I, O] {
	if _, exists := e.rules[key]; !exists {
		e.order = append(e.order, key)
	}

	e.rules[key] = rule

	return e
}

// Len returns the number of registered keys.
func (e *Engine[K, I, O]) Len() int {
	return len(e.rules)
}

// Keys returns the registered keys in registration order.
func (e *Engine[K, I, O]) Keys() []K {
	return append([]K(nil), e.order...)
}

// Map runs the rule registered for input's key.
//
// The boolean is false when there is no result: either nothing is registered, the
// input is a nil interface, or no rule matches its key (logged as a warning).
// A failing rule yields a *Error wrapping the rule's error.
func (e *Engine[K, I, O]) Map(input I) (O, bool, error) {
	var zero O

	if len(e.rules) == 0 {
		return zero, false, nil
	}

	if any(input) == nil {
		e.logger.Warn("could not map a nil input", slog.String("target", e.target))
		return zero, false, nil
	}

	key := e.keyOf(input)

	rule, ok := e.rules[key]
	if !ok {
		e.logger.Log(context.Background(), slog.LevelWarn,
			"could not map input, no corresponding mapping rule has been found",
			slog.String("input", describe(input)),
			slog.String("key", fmt.Sprint(key)),
			slog.String("target", e.target))

		return zero, false, nil
	}

	out, err := rule.Transform(input)
	if err != nil {
		return zero, false, &Error{
			Input:  describe(input),
			Key:    fmt.Sprint(key),
			Target: e.target,
			Err:    err,
		}
	}

	return out, true, nil
}

func describe(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%T", v)
}
