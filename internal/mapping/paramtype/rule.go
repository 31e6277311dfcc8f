package paramtype

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"reqif-exporter/internal/mapping"
	"reqif-exporter/internal/model"
	"reqif-exporter/internal/reqif"
)

var (
	// ErrNotSupported is returned for parameter types outside the scalar set.
	ErrNotSupported = errors.New("parameter type not supported")
	// ErrInvalidOperation is returned for quantity kinds on an unrecognized number set.
	ErrInvalidOperation = errors.New("invalid operation")
)

// Rule turns a scalar parameter type into the matching datatype definition. Each
// call produces fresh objects; a Rule holds no per-call state.
type Rule struct {
	now            func() time.Time
	newID          func() string
	alternativeIDs bool
}

// Option configures a Rule.
type Option func(*Rule)

// WithClock overrides the LastChange stamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Rule) {
		r.now = now
	}
}

// WithIdentifiers overrides the identifier generator.
func WithIdentifiers(newID func() string) Option {
	return func(r *Rule) {
		r.newID = newID
	}
}

// WithoutAlternativeID stops the rule from recording source ids.
func WithoutAlternativeID() Option {
	return func(r *Rule) {
		r.alternativeIDs = false
	}
}

// NewRule returns a rule stamping UTC now and fresh "_<uuid>" identifiers.
func NewRule(opts ...Option) *Rule {
	r := &Rule{
		now:            func() time.Time { return time.Now().UTC() },
		newID:          reqif.NewIdentifier,
		alternativeIDs: true,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// NewEngine returns an engine with r registered for every parameter kind.
func NewEngine(r *Rule, opts ...mapping.Option) *mapping.Engine[model.ParameterKind, model.ParameterType, reqif.DatatypeDefinition] {
	opts = append([]mapping.Option{mapping.WithTargetName("datatype definition")}, opts...)

	e := mapping.NewEngine[model.ParameterKind, model.ParameterType, reqif.DatatypeDefinition](
		func(pt model.ParameterType) model.ParameterKind { return pt.Kind() },
		opts...,
	)

	for _, kind := range model.ParameterKinds() {
		e.Register(kind, r)
	}

	return e
}

// Transform implements mapping.Rule.
func (r *Rule) Transform(pt model.ParameterType) (reqif.DatatypeDefinition, error) {
	if pt == nil {
		return nil, fmt.Errorf("%w: nil parameter type", ErrNotSupported)
	}

	ident := r.identifiable(pt.Thing())

	switch t := pt.(type) {
	case *model.BooleanParameterType:
		return &reqif.DatatypeDefinitionBoolean{Identifiable: ident}, nil
	case *model.DateParameterType, *model.DateTimeParameterType:
		return &reqif.DatatypeDefinitionDate{Identifiable: ident}, nil
	case *model.EnumerationParameterType:
		return r.enumeration(ident, t), nil
	case *model.QuantityKind:
		return quantity(ident, t)
	case *model.TextParameterType:
		return &reqif.DatatypeDefinitionXHTML{Identifiable: ident}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotSupported, pt.Kind())
	}
}

func (r *Rule) identifiable(thing *model.DefinedThing) reqif.Identifiable {
	ident := reqif.Identifiable{
		Identifier:  r.newID(),
		LongName:    thing.Name,
		Description: thing.FirstDefinition(),
		LastChange:  r.now(),
	}

	if r.alternativeIDs {
		ident.AlternativeID = &reqif.AlternativeID{Identifier: thing.ID.String()}
	}

	return ident
}

func (r *Rule) enumeration(ident reqif.Identifiable, t *model.EnumerationParameterType) *reqif.DatatypeDefinitionEnumeration {
	enum := &reqif.DatatypeDefinitionEnumeration{
		Identifiable:    ident,
		SpecifiedValues: make([]*reqif.EnumValue, 0, len(t.ValueDefinitions)),
	}

	for i := range t.ValueDefinitions {
		enum.SpecifiedValues = append(enum.SpecifiedValues, &reqif.EnumValue{
			Identifiable: r.identifiable(&t.ValueDefinitions[i].DefinedThing),
			Properties:   reqif.EmbeddedValue{Key: int64(i)},
			DatatypeID:   ident.Identifier,
		})
	}

	return enum
}

func quantity(ident reqif.Identifiable, t *model.QuantityKind) (reqif.DatatypeDefinition, error) {
	scale := t.DefaultScale

	switch {
	case scale.NumberSet.IsInteger():
		return &reqif.DatatypeDefinitionInteger{
			Identifiable: ident,
			Min:          parseIntBound(scale.MinimumPermissibleValue),
			Max:          parseIntBound(scale.MaximumPermissibleValue),
		}, nil
	case scale.NumberSet.IsReal():
		return &reqif.DatatypeDefinitionReal{
			Identifiable: ident,
			Min:          parseRealBound(scale.MinimumPermissibleValue),
			Max:          parseRealBound(scale.MaximumPermissibleValue),
		}, nil
	default:
		return nil, fmt.Errorf("%w: the %s could not be transformed", ErrInvalidOperation, t.Name)
	}
}

// Unparsable bounds are left unset.
func parseIntBound(s string) *int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}

	return &v
}

func parseRealBound(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}
