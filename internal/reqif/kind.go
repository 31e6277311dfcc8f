package reqif

//go:generate go tool stringer -type=DatatypeKind -linecomment -output=datatypekind_string.go
//go:generate go tool stringer -type=SpecTypeKind -linecomment -output=spectypekind_string.go

// DatatypeKind discriminates datatype definitions, attribute definitions and
// attribute values, which always come in matching triples.
type DatatypeKind int

const (
	_ DatatypeKind = iota // zero value is invalid

	DatatypeBoolean     // boolean
	DatatypeDate        // date
	DatatypeEnumeration // enumeration
	DatatypeInteger     // integer
	DatatypeReal        // real
	DatatypeString      // string
	DatatypeXHTML       // xhtml
)

// DatatypeKinds lists every valid kind in declaration order.
func DatatypeKinds() []DatatypeKind {
	return []DatatypeKind{
		DatatypeBoolean, DatatypeDate, DatatypeEnumeration, DatatypeInteger,
		DatatypeReal, DatatypeString, DatatypeXHTML,
	}
}

// SpecTypeKind discriminates spec types.
type SpecTypeKind int

const (
	_ SpecTypeKind = iota // zero value is invalid

	SpecificationTypeKind // specification-type
	SpecObjectTypeKind    // object-type
	SpecRelationTypeKind  // relation-type
	RelationGroupTypeKind // relation-group-type
)
