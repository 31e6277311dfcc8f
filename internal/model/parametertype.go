package model

import "reqif-exporter/internal/common"

// ParameterType is the closed union of source parameter types.
type ParameterType interface {
	Kind() ParameterKind
	Thing() *DefinedThing
	isParameterType()
}

type BooleanParameterType struct {
	DefinedThing
}

type DateParameterType struct {
	DefinedThing
}

type DateTimeParameterType struct {
	DefinedThing
}

// EnumerationParameterType lists its literals in display order.
type EnumerationParameterType struct {
	DefinedThing
	AllowMultiSelect bool
	ValueDefinitions []EnumerationValueDefinition
}

// EnumerationValueDefinition is one literal of an enumeration.
type EnumerationValueDefinition struct {
	DefinedThing
}

// QuantityKind is a numeric parameter type measured on its default scale.
type QuantityKind struct {
	DefinedThing
	DefaultScale MeasurementScale
}

// MeasurementScale carries the number set and the permissible bounds as the
// source stores them: free text that may or may not parse.
type MeasurementScale struct {
	DefinedThing
	NumberSet               NumberSetKind
	MinimumPermissibleValue string
	MaximumPermissibleValue string
}

type TextParameterType struct {
	DefinedThing
}

func (*BooleanParameterType) Kind() ParameterKind     { return KindBoolean }
func (*DateParameterType) Kind() ParameterKind        { return KindDate }
func (*DateTimeParameterType) Kind() ParameterKind    { return KindDateTime }
func (*EnumerationParameterType) Kind() ParameterKind { return KindEnumeration }
func (*QuantityKind) Kind() ParameterKind             { return KindQuantity }
func (*TextParameterType) Kind() ParameterKind        { return KindText }

func (*BooleanParameterType) isParameterType()     {}
func (*DateParameterType) isParameterType()        {}
func (*DateTimeParameterType) isParameterType()    {}
func (*EnumerationParameterType) isParameterType() {}
func (*QuantityKind) isParameterType()             {}
func (*TextParameterType) isParameterType()        {}

// ParameterValue assigns a value array to a parameter type. Only the first element
// of Value is meaningful to the exporter; multi-valued arrays are truncated.
type ParameterValue struct {
	ParameterType ParameterType
	Value         []string
}

// First returns the first element of the value array.
func (v ParameterValue) First() (string, bool) {
	return common.First(v.Value)
}
