package session

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"reqif-exporter/internal/common"
	"reqif-exporter/internal/model"
)

// dump is the file layout: shared parameter types and the models using them.
type dump struct {
	ParameterTypes    []parameterTypeDump    `yaml:"parameterTypes"`
	EngineeringModels []engineeringModelDump `yaml:"engineeringModels"`
}

type thingDump struct {
	ID         uuid.UUID        `yaml:"id"`
	Name       string           `yaml:"name"`
	ShortName  string           `yaml:"shortName"`
	Definition []definitionDump `yaml:"definition"`
}

type definitionDump struct {
	Content      string `yaml:"content"`
	LanguageCode string `yaml:"languageCode"`
}

type parameterTypeDump struct {
	thingDump        `yaml:",inline"`
	Kind             string      `yaml:"kind"`
	AllowMultiSelect bool        `yaml:"allowMultiSelect"`
	ValueDefinitions []thingDump `yaml:"valueDefinitions"`
	Scale            *scaleDump  `yaml:"scale"`
}

type scaleDump struct {
	thingDump `yaml:",inline"`
	NumberSet string `yaml:"numberSet"`
	Minimum   string `yaml:"minimumPermissibleValue"`
	Maximum   string `yaml:"maximumPermissibleValue"`
}

type engineeringModelDump struct {
	ID         uuid.UUID       `yaml:"id"`
	Name       string          `yaml:"name"`
	Iterations []iterationDump `yaml:"iterations"`
}

type iterationDump struct {
	ID                         uuid.UUID           `yaml:"id"`
	IterationNumber            int                 `yaml:"iterationNumber"`
	IsDeleted                  bool                `yaml:"isDeleted"`
	RequirementsSpecifications []specificationDump `yaml:"requirementsSpecifications"`
}

type specificationDump struct {
	thingDump       `yaml:",inline"`
	IsDeprecated    bool                 `yaml:"isDeprecated"`
	ModifiedOn      string               `yaml:"modifiedOn"`
	ParameterValues []parameterValueDump `yaml:"parameterValues"`
	Groups          []groupDump          `yaml:"groups"`
	Requirements    []requirementDump    `yaml:"requirements"`
}

// groupDump nests child groups the way the source model does.
type groupDump struct {
	thingDump       `yaml:",inline"`
	ModifiedOn      string               `yaml:"modifiedOn"`
	ParameterValues []parameterValueDump `yaml:"parameterValues"`
	Groups          []groupDump          `yaml:"groups"`
}

type requirementDump struct {
	thingDump       `yaml:",inline"`
	Group           uuid.UUID            `yaml:"group"`
	IsDeprecated    bool                 `yaml:"isDeprecated"`
	ModifiedOn      string               `yaml:"modifiedOn"`
	ParameterValues []parameterValueDump `yaml:"parameterValues"`
}

type parameterValueDump struct {
	ParameterType uuid.UUID `yaml:"parameterType"`
	Value         []string  `yaml:"value"`
}

// Parse decodes a model dump. References between things are resolved; any
// reference to a thing missing from the dump is an error.
func Parse(data []byte) ([]*model.EngineeringModel, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("decode model dump: %w", err)
	}

	if len(bytes.TrimSpace(decoded)) == 0 {
		return nil, ErrEmptyDump
	}

	var d dump
	if err := yaml.Unmarshal(decoded, &d); err != nil {
		return nil, fmt.Errorf("parse model dump: %w", err)
	}

	r := resolver{parameterTypes: map[uuid.UUID]model.ParameterType{}}

	for i, pt := range d.ParameterTypes {
		if err := r.addParameterType(pt); err != nil {
			return nil, fmt.Errorf("parameterTypes[%d]: %w", i, err)
		}
	}

	models := make([]*model.EngineeringModel, 0, len(d.EngineeringModels))

	for _, md := range d.EngineeringModels {
		m, err := r.engineeringModel(md)
		if err != nil {
			return nil, fmt.Errorf("engineering model %s: %w", md.ID, err)
		}

		models = append(models, m)
	}

	return models, nil
}

// resolver is the id registry used while converting a dump.
type resolver struct {
	parameterTypes map[uuid.UUID]model.ParameterType
}

func (t thingDump) thing() model.DefinedThing {
	out := model.DefinedThing{ID: t.ID, Name: t.Name, ShortName: t.ShortName}

	for _, d := range t.Definition {
		out.Definition = append(out.Definition, model.Definition{Content: d.Content, LanguageCode: d.LanguageCode})
	}

	return out
}

func (r *resolver) addParameterType(d parameterTypeDump) error {
	if d.ID == uuid.Nil {
		return fmt.Errorf("parameter type %q has no id", d.Name)
	}

	if _, exists := r.parameterTypes[d.ID]; exists {
		return fmt.Errorf("duplicate parameter type %s", d.ID)
	}

	kind, err := model.ParseParameterKind(d.Kind)
	if err != nil {
		return fmt.Errorf("parameter type %s: %w", d.Name, err)
	}

	thing := d.thing()

	var pt model.ParameterType

	switch kind {
	case model.KindBoolean:
		pt = &model.BooleanParameterType{DefinedThing: thing}
	case model.KindDate:
		pt = &model.DateParameterType{DefinedThing: thing}
	case model.KindDateTime:
		pt = &model.DateTimeParameterType{DefinedThing: thing}
	case model.KindEnumeration:
		e := &model.EnumerationParameterType{DefinedThing: thing, AllowMultiSelect: d.AllowMultiSelect}
		for _, v := range d.ValueDefinitions {
			e.ValueDefinitions = append(e.ValueDefinitions, model.EnumerationValueDefinition{DefinedThing: v.thing()})
		}

		pt = e
	case model.KindQuantity:
		q := &model.QuantityKind{DefinedThing: thing}
		if d.Scale != nil {
			q.DefaultScale = model.MeasurementScale{
				DefinedThing:            d.Scale.thing(),
				NumberSet:               model.ParseNumberSetKind(d.Scale.NumberSet),
				MinimumPermissibleValue: d.Scale.Minimum,
				MaximumPermissibleValue: d.Scale.Maximum,
			}
		}

		pt = q
	case model.KindText:
		pt = &model.TextParameterType{DefinedThing: thing}
	}

	r.parameterTypes[d.ID] = pt

	return nil
}

func (r *resolver) engineeringModel(d engineeringModelDump) (*model.EngineeringModel, error) {
	m := &model.EngineeringModel{ID: d.ID, Name: d.Name}

	for _, itd := range d.Iterations {
		it := &model.Iteration{ID: itd.ID, IterationNumber: itd.IterationNumber, IsDeleted: itd.IsDeleted}

		for _, sd := range itd.RequirementsSpecifications {
			spec, err := r.specification(sd)
			if err != nil {
				return nil, fmt.Errorf("iteration %d: specification %s: %w", itd.IterationNumber, label(sd.thingDump), err)
			}

			spec.IterationID = it.ID
			spec.EngineeringModelID = m.ID
			it.RequirementsSpecifications = append(it.RequirementsSpecifications, spec)
		}

		m.Iterations = append(m.Iterations, it)
	}

	return m, nil
}

func (r *resolver) specification(d specificationDump) (*model.RequirementsSpecification, error) {
	modified, err := parseTime(d.ModifiedOn)
	if err != nil {
		return nil, err
	}

	values, err := r.values(d.ParameterValues)
	if err != nil {
		return nil, err
	}

	spec := &model.RequirementsSpecification{
		DefinedThing:    d.thing(),
		IsDeprecated:    d.IsDeprecated,
		ModifiedOn:      modified,
		ParameterValues: values,
	}

	groups := map[uuid.UUID]bool{}
	if err := r.groups(spec, d.Groups, uuid.Nil, groups); err != nil {
		return nil, err
	}

	for _, rd := range d.Requirements {
		if rd.Group != uuid.Nil && !groups[rd.Group] {
			return nil, fmt.Errorf("%w: requirement %s references group %s", ErrDanglingReference, label(rd.thingDump), rd.Group)
		}

		modified, err := parseTime(rd.ModifiedOn)
		if err != nil {
			return nil, fmt.Errorf("requirement %s: %w", label(rd.thingDump), err)
		}

		values, err := r.values(rd.ParameterValues)
		if err != nil {
			return nil, fmt.Errorf("requirement %s: %w", label(rd.thingDump), err)
		}

		spec.Requirements = append(spec.Requirements, &model.Requirement{
			DefinedThing:    rd.thing(),
			GroupID:         rd.Group,
			IsDeprecated:    rd.IsDeprecated,
			ModifiedOn:      modified,
			ParameterValues: values,
		})
	}

	return spec, nil
}

// groups flattens nested groups into spec.Groups in pre-order.
func (r *resolver) groups(spec *model.RequirementsSpecification, ds []groupDump, parent uuid.UUID, seen map[uuid.UUID]bool) error {
	for _, gd := range ds {
		if gd.ID == uuid.Nil || seen[gd.ID] {
			return fmt.Errorf("group %s: missing or duplicate id", label(gd.thingDump))
		}

		seen[gd.ID] = true

		modified, err := parseTime(gd.ModifiedOn)
		if err != nil {
			return fmt.Errorf("group %s: %w", label(gd.thingDump), err)
		}

		values, err := r.values(gd.ParameterValues)
		if err != nil {
			return fmt.Errorf("group %s: %w", label(gd.thingDump), err)
		}

		spec.Groups = append(spec.Groups, &model.RequirementsGroup{
			DefinedThing:    gd.thing(),
			ParentID:        parent,
			ModifiedOn:      modified,
			ParameterValues: values,
		})

		if err := r.groups(spec, gd.Groups, gd.ID, seen); err != nil {
			return err
		}
	}

	return nil
}

func (r *resolver) values(ds []parameterValueDump) ([]model.ParameterValue, error) {
	out := make([]model.ParameterValue, 0, len(ds))

	for _, vd := range ds {
		pt, ok := r.parameterTypes[vd.ParameterType]
		if !ok {
			return nil, fmt.Errorf("%w: parameter type %s", ErrDanglingReference, vd.ParameterType)
		}

		out = append(out, model.ParameterValue{ParameterType: pt, Value: vd.Value})
	}

	return out, nil
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// parseTime accepts the empty string as the zero time.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// label names a thing in errors by short name, name or id.
func label(t thingDump) string {
	return common.FirstNonEmpty(t.ShortName, t.Name, t.ID.String())
}
