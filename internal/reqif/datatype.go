package reqif

// DatatypeDefinition is the closed union of ReqIF datatype definitions.
type DatatypeDefinition interface {
	Kind() DatatypeKind
	Ident() *Identifiable
	isDatatype()
}

type DatatypeDefinitionBoolean struct {
	Identifiable
}

type DatatypeDefinitionDate struct {
	Identifiable
}

// DatatypeDefinitionEnumeration owns its literals.
type DatatypeDefinitionEnumeration struct {
	Identifiable
	SpecifiedValues []*EnumValue
}

// DatatypeDefinitionInteger bounds are nil when unknown.
type DatatypeDefinitionInteger struct {
	Identifiable
	Min *int64
	Max *int64
}

// DatatypeDefinitionReal bounds are nil when unknown.
type DatatypeDefinitionReal struct {
	Identifiable
	Min      *float64
	Max      *float64
	Accuracy *int64
}

type DatatypeDefinitionString struct {
	Identifiable
	MaxLength *int64
}

type DatatypeDefinitionXHTML struct {
	Identifiable
}

// EnumValue is one literal of an enumeration datatype. DatatypeID names the owning
// DatatypeDefinitionEnumeration.
type EnumValue struct {
	Identifiable
	Properties EmbeddedValue
	DatatypeID string
}

// EmbeddedValue is the key/other-content pair ReqIF attaches to enum values.
type EmbeddedValue struct {
	Key          int64
	OtherContent string
}

func (*DatatypeDefinitionBoolean) Kind() DatatypeKind     { return DatatypeBoolean }
func (*DatatypeDefinitionDate) Kind() DatatypeKind        { return DatatypeDate }
func (*DatatypeDefinitionEnumeration) Kind() DatatypeKind { return DatatypeEnumeration }
func (*DatatypeDefinitionInteger) Kind() DatatypeKind     { return DatatypeInteger }
func (*DatatypeDefinitionReal) Kind() DatatypeKind        { return DatatypeReal }
func (*DatatypeDefinitionString) Kind() DatatypeKind      { return DatatypeString }
func (*DatatypeDefinitionXHTML) Kind() DatatypeKind       { return DatatypeXHTML }

func (*DatatypeDefinitionBoolean) isDatatype()     {}
func (*DatatypeDefinitionDate) isDatatype()        {}
func (*DatatypeDefinitionEnumeration) isDatatype() {}
func (*DatatypeDefinitionInteger) isDatatype()     {}
func (*DatatypeDefinitionReal) isDatatype()        {}
func (*DatatypeDefinitionString) isDatatype()      {}
func (*DatatypeDefinitionXHTML) isDatatype()       {}

// EnumValueByName returns the literal whose LongName equals name.
func (d *DatatypeDefinitionEnumeration) EnumValueByName(name string) (*EnumValue, bool) {
	for _, v := range d.SpecifiedValues {
		if v.LongName == name {
			return v, true
		}
	}

	return nil, false
}
