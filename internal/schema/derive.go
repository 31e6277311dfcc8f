// Package schema derives a ReqIF template, and the export settings that go with it,
// from the parameter types requirements specifications actually use.
package schema

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"reqif-exporter/internal/builder"
	"reqif-exporter/internal/mapping"
	"reqif-exporter/internal/mapping/paramtype"
	"reqif-exporter/internal/model"
	"reqif-exporter/internal/reqif"
	"reqif-exporter/internal/settings"
)

// ErrNoSpecifications is returned when there is nothing to derive from.
var ErrNoSpecifications = errors.New("no requirements specifications to derive a template from")

// DefaultTitle is the title of derived templates.
const DefaultTitle = "Requirements template"

type options struct {
	logger         *slog.Logger
	now            func() time.Time
	newID          func() string
	alternativeIDs bool
}

// Option configures Derive.
type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func WithIdentifiers(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

// WithoutAlternativeID keeps source ids out of the derived datatypes and enum values.
func WithoutAlternativeID() Option {
	return func(o *options) {
		o.alternativeIDs = false
	}
}

// fixed holds the datatypes every derived template carries.
type fixed struct {
	text     *reqif.DatatypeDefinitionXHTML
	modified *reqif.DatatypeDefinitionDate
	deleted  *reqif.DatatypeDefinitionBoolean
	name     *reqif.DatatypeDefinitionString
}

// Derive builds a template with one specification type and one object type. Both
// carry the text, name, modified-on and deleted attributes plus one attribute per
// parameter type in use. The returned settings route every role and parameter type
// to those attributes.
//
// Parameter types the engine has no rule for are skipped; mapping errors abort.
func Derive(specifications []*model.RequirementsSpecification, opts ...Option) (*reqif.ReqIF, *settings.ExportSettings, error) {
	o := options{
		logger:         slog.Default(),
		now:            func() time.Time { return time.Now().UTC() },
		newID:          reqif.NewIdentifier,
		alternativeIDs: true,
	}

	for _, opt := range opts {
		opt(&o)
	}

	parameterTypes := collectParameterTypes(specifications)
	if parameterTypes == nil {
		return nil, nil, ErrNoSpecifications
	}

	ruleOpts := []paramtype.Option{paramtype.WithClock(o.now), paramtype.WithIdentifiers(o.newID)}
	if !o.alternativeIDs {
		ruleOpts = append(ruleOpts, paramtype.WithoutAlternativeID())
	}

	engine := paramtype.NewEngine(paramtype.NewRule(ruleOpts...), mapping.WithLogger(o.logger))

	now := o.now()
	stamp := func(name string) reqif.Identifiable {
		return reqif.Identifiable{Identifier: o.newID(), LongName: name, LastChange: now}
	}

	f := fixed{
		text:     &reqif.DatatypeDefinitionXHTML{Identifiable: stamp("Text")},
		modified: &reqif.DatatypeDefinitionDate{Identifiable: stamp("Modified On")},
		deleted:  &reqif.DatatypeDefinitionBoolean{Identifiable: stamp("Deleted")},
		name:     &reqif.DatatypeDefinitionString{Identifiable: stamp("Name")},
	}

	specType := &reqif.SpecificationType{Identifiable: stamp("Requirements Specification")}
	objectType := &reqif.SpecObjectType{Identifiable: stamp("Requirement")}

	exportSettings := &settings.ExportSettings{
		Title:                             DefaultTitle,
		SpecificationAttributeDefinitions: f.attach(&specType.SpecAttributes, stamp),
		RequirementAttributeDefinitions:   f.attach(&objectType.SpecAttributes, stamp),
		AddXhtmlTags:                      true,
	}

	dataTypes := []reqif.DatatypeDefinition{f.text, f.modified, f.deleted, f.name}

	for _, pt := range parameterTypes {
		dt, ok, err := engine.Map(pt)
		if err != nil {
			return nil, nil, fmt.Errorf("deriving datatype of %s: %w", pt.Thing().Label(), err)
		}

		if !ok {
			continue
		}

		dataTypes = append(dataTypes, dt)

		for _, attrs := range []*[]reqif.AttributeDefinition{&specType.SpecAttributes, &objectType.SpecAttributes} {
			def := attributeDefinitionFor(stamp(pt.Thing().Name), dt, pt)
			if def == nil {
				return nil, nil, fmt.Errorf("deriving attribute of %s: no attribute definition for %s", pt.Thing().Label(), dt.Kind())
			}

			*attrs = append(*attrs, def)
			exportSettings.ExternalIdentifierMap.Add(def.Ident().Identifier, pt.Thing().ID)
		}
	}

	template := &reqif.ReqIF{
		Header: &reqif.Header{
			Identifier:   o.newID(),
			CreationTime: now,
			ReqIFToolID:  builder.ToolID,
			ReqIFVersion: reqif.Version,
			SourceToolID: builder.SourceToolID,
			Title:        DefaultTitle,
		},
		CoreContent: &reqif.Content{
			DataTypes: dataTypes,
			SpecTypes: []reqif.SpecType{specType, objectType},
		},
	}

	o.logger.Debug("derived template",
		"parameterTypes", len(parameterTypes),
		"datatypes", len(dataTypes),
		"attributes", len(objectType.SpecAttributes))

	return template, exportSettings, nil
}

// attach appends the four role attributes to attrs and returns the role block
// naming them.
func (f fixed) attach(attrs *[]reqif.AttributeDefinition, stamp func(string) reqif.Identifiable) *settings.AttributeDefinitions {
	text := &reqif.AttributeDefinitionXHTML{Identifiable: stamp("Text"), Type: f.text}
	name := &reqif.AttributeDefinitionString{Identifiable: stamp("Name"), Type: f.name}
	modified := &reqif.AttributeDefinitionDate{Identifiable: stamp("Modified On"), Type: f.modified}
	deleted := &reqif.AttributeDefinitionBoolean{Identifiable: stamp("Deleted"), Type: f.deleted}

	*attrs = append(*attrs, text, name, modified, deleted)

	return &settings.AttributeDefinitions{
		TextAttributeDefinitionID:              text.Identifier,
		NameAttributeDefinitionID:              name.Identifier,
		ForeignModifiedOnAttributeDefinitionID: modified.Identifier,
		ForeignDeletedAttributeDefinitionID:    deleted.Identifier,
	}
}

func attributeDefinitionFor(ident reqif.Identifiable, dt reqif.DatatypeDefinition, pt model.ParameterType) reqif.AttributeDefinition {
	ident.Description = pt.Thing().FirstDefinition()

	switch t := dt.(type) {
	case *reqif.DatatypeDefinitionBoolean:
		return &reqif.AttributeDefinitionBoolean{Identifiable: ident, IsEditable: true, Type: t}
	case *reqif.DatatypeDefinitionDate:
		return &reqif.AttributeDefinitionDate{Identifiable: ident, IsEditable: true, Type: t}
	case *reqif.DatatypeDefinitionEnumeration:
		multi := false
		if e, ok := pt.(*model.EnumerationParameterType); ok {
			multi = e.AllowMultiSelect
		}

		return &reqif.AttributeDefinitionEnumeration{Identifiable: ident, IsEditable: true, MultiValued: multi, Type: t}
	case *reqif.DatatypeDefinitionInteger:
		return &reqif.AttributeDefinitionInteger{Identifiable: ident, IsEditable: true, Type: t}
	case *reqif.DatatypeDefinitionReal:
		return &reqif.AttributeDefinitionReal{Identifiable: ident, IsEditable: true, Type: t}
	case *reqif.DatatypeDefinitionString:
		return &reqif.AttributeDefinitionString{Identifiable: ident, IsEditable: true, Type: t}
	case *reqif.DatatypeDefinitionXHTML:
		return &reqif.AttributeDefinitionXHTML{Identifiable: ident, IsEditable: true, Type: t}
	default:
		return nil
	}
}

// collectParameterTypes returns the distinct parameter types in first-use order,
// or nil when there is no specification at all.
func collectParameterTypes(specifications []*model.RequirementsSpecification) []model.ParameterType {
	var (
		out   = []model.ParameterType{}
		seen  = map[uuid.UUID]bool{}
		found bool
	)

	add := func(values []model.ParameterValue) {
		for _, v := range values {
			if v.ParameterType == nil || seen[v.ParameterType.Thing().ID] {
				continue
			}

			seen[v.ParameterType.Thing().ID] = true
			out = append(out, v.ParameterType)
		}
	}

	for _, spec := range specifications {
		if spec == nil {
			continue
		}

		found = true

		add(spec.ParameterValues)

		for _, g := range spec.Groups {
			add(g.ParameterValues)
		}

		for _, r := range spec.Requirements {
			add(r.ParameterValues)
		}
	}

	if !found {
		return nil
	}

	return out
}
