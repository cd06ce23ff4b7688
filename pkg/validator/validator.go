package validator

import (
	"context"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/apivalidate/pkg/fieldpath"
	"github.com/dmitrymomot/apivalidate/pkg/logger"
	"github.com/dmitrymomot/apivalidate/pkg/sanitizer"
)

// Input is a request split into its three validated parts. Nil maps are
// treated as empty.
type Input struct {
	Body   map[string]any
	Params map[string]any
	Query  map[string]any
}

func (in Input) source(loc Location) map[string]any {
	switch loc {
	case LocationParams:
		return in.Params
	case LocationQuery:
		return in.Query
	default:
		return in.Body
	}
}

// Result holds only the fields some rule declared, per location. Maps are
// never nil and never share containers with the Input.
type Result struct {
	Body   map[string]any `json:"body"`
	Params map[string]any `json:"params"`
	Query  map[string]any `json:"query"`
}

// Config is the environment-driven validator configuration.
type Config struct {
	// Concurrency bounds how many rules run at once. Zero means no limit.
	Concurrency int `env:"VALIDATOR_CONCURRENCY" envDefault:"0"`
}

// Option configures a Validator.
type Option func(*Validator)

// WithConcurrency bounds parallel rule evaluation. Values below one remove the bound.
func WithConcurrency(n int) Option {
	return func(v *Validator) {
		v.concurrency = n
	}
}

// WithLogger sets the logger used for debug output. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// Validator runs a fixed list of rules against requests. It is safe for
// concurrent use.
type Validator struct {
	rules       []FieldRule
	concurrency int
	logger      *slog.Logger
}

func New(rules []FieldRule, opts ...Option) *Validator {
	v := &Validator{
		rules:  slices.Clone(rules),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With(logger.Component("validator"))
	return v
}

// NewFromConfig creates a Validator from cfg. Options are applied after cfg.
func NewFromConfig(cfg Config, rules []FieldRule, opts ...Option) *Validator {
	return New(rules, append([]Option{WithConcurrency(cfg.Concurrency)}, opts...)...)
}

// Rules returns a copy of the attached rules in attachment order.
func (v *Validator) Rules() []FieldRule {
	return slices.Clone(v.rules)
}

// Validate evaluates every rule concurrently and, when all pass, returns the
// declared fields of each location. Failures are reported in rule order as a
// single *Error of kind KindParametersValidation. A context that is already
// done is returned as is; once rules start they all run to completion.
func (v *Validator) Validate(ctx context.Context, in Input) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	outcomes := make([]ValidationErrors, len(v.rules))

	var g errgroup.Group
	if v.concurrency > 0 {
		g.SetLimit(v.concurrency)
	}
	for i, rule := range v.rules {
		g.Go(func() error {
			outcomes[i] = rule.Evaluate(in.source(rule.location))
			return nil
		})
	}
	_ = g.Wait()

	var errs ValidationErrors
	for _, outcome := range outcomes {
		errs = append(errs, outcome...)
	}

	if len(errs) > 0 {
		v.logger.DebugContext(ctx, "request validation failed",
			logger.Rules(len(v.rules)),
			logger.Violations(len(errs)),
		)
		return Result{}, NewParametersError(errs)
	}

	return v.extract(in), nil
}

// extract copies every declared field into a fresh result. A declared
// optional key that is absent from an existing object is recorded as
// sanitizer.Undefined and removed again by sanitizer.CleanMap, which
// materializes the enclosing object without inventing missing parents.
func (v *Validator) extract(in Input) Result {
	dst := map[Location]map[string]any{
		LocationBody:   {},
		LocationParams: {},
		LocationQuery:  {},
	}

	for _, rule := range v.rules {
		if rule.forbidden {
			continue
		}
		for _, inst := range rule.path.Resolve(in.source(rule.location)) {
			switch {
			case inst.Present:
				fieldpath.Set(dst[rule.location], inst.Segments, inst.Value)
			case inst.ParentPresent && endsWithKey(inst.Segments):
				fieldpath.Set(dst[rule.location], inst.Segments, sanitizer.Undefined)
			}
		}
	}

	return Result{
		Body:   sanitizer.CleanMap(dst[LocationBody]),
		Params: sanitizer.CleanMap(dst[LocationParams]),
		Query:  sanitizer.CleanMap(dst[LocationQuery]),
	}
}

// endsWithKey keeps absent array positions from padding the result with nulls.
func endsWithKey(segments []fieldpath.Segment) bool {
	return len(segments) > 0 && segments[len(segments)-1].Kind == fieldpath.KeySegment
}

// Request validates in against rules with a throwaway Validator.
func Request(ctx context.Context, in Input, rules ...FieldRule) (Result, error) {
	return New(rules).Validate(ctx, in)
}
