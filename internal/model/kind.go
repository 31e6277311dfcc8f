package model

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=ParameterKind -linecomment -output=parameterkind_string.go
//go:generate go tool stringer -type=NumberSetKind -linecomment -output=numberset_string.go

// ParameterKind discriminates the ParameterType variants.
type ParameterKind int

const (
	_ ParameterKind = iota // zero value is invalid

	KindBoolean     // boolean
	KindDate        // date
	KindDateTime    // datetime
	KindEnumeration // enumeration
	KindQuantity    // quantity-kind
	KindText        // text
)

// ParameterKinds lists every valid kind in declaration order.
func ParameterKinds() []ParameterKind {
	return []ParameterKind{KindBoolean, KindDate, KindDateTime, KindEnumeration, KindQuantity, KindText}
}

// ParseParameterKind accepts the String() form and the upstream class names
// (e.g. "BooleanParameterType", "SimpleQuantityKind").
func ParseParameterKind(s string) (ParameterKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "boolean", "booleanparametertype":
		return KindBoolean, nil
	case "date", "dateparametertype":
		return KindDate, nil
	case "datetime", "datetimeparametertype":
		return KindDateTime, nil
	case "enumeration", "enumerationparametertype":
		return KindEnumeration, nil
	case "quantity-kind", "quantitykind", "simplequantitykind", "derivedquantitykind", "specializedquantitykind":
		return KindQuantity, nil
	case "text", "textparametertype":
		return KindText, nil
	default:
		return 0, fmt.Errorf("unknown parameter type kind %q", s)
	}
}

// NumberSetKind is the number set of a quantity kind's default scale.
type NumberSetKind int

const (
	_ NumberSetKind = iota // zero value is an unrecognized number set

	NumberSetInteger  // integer
	NumberSetNatural  // natural
	NumberSetRational // rational
	NumberSetReal     // real
)

// IsInteger reports whether values of the set are whole numbers.
func (k NumberSetKind) IsInteger() bool {
	return k == NumberSetInteger || k == NumberSetNatural
}

// IsReal reports whether values of the set are rational or real numbers.
func (k NumberSetKind) IsReal() bool {
	return k == NumberSetRational || k == NumberSetReal
}

// ParseNumberSetKind accepts "integer", "INTEGER_NUMBER_SET" and the like.
// Anything unrecognized yields the zero NumberSetKind and no error; the
// rule that consumes it decides whether that is fatal.
func ParseNumberSetKind(s string) NumberSetKind {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.TrimSuffix(norm, "_number_set")

	switch norm {
	case "integer":
		return NumberSetInteger
	case "natural":
		return NumberSetNatural
	case "rational":
		return NumberSetRational
	case "real":
		return NumberSetReal
	default:
		return 0
	}
}
