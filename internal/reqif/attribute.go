package reqif

import "time"

// AttributeDefinition is the closed union of attribute definitions. Each variant
// references a datatype of the same kind.
type AttributeDefinition interface {
	Kind() DatatypeKind
	Ident() *Identifiable
	Datatype() DatatypeDefinition
	isAttributeDefinition()
}

type AttributeDefinitionBoolean struct {
	Identifiable
	IsEditable bool
	Type       *DatatypeDefinitionBoolean
}

type AttributeDefinitionDate struct {
	Identifiable
	IsEditable bool
	Type       *DatatypeDefinitionDate
}

type AttributeDefinitionEnumeration struct {
	Identifiable
	IsEditable  bool
	MultiValued bool
	Type        *DatatypeDefinitionEnumeration
}

type AttributeDefinitionInteger struct {
	Identifiable
	IsEditable bool
	Type       *DatatypeDefinitionInteger
}

type AttributeDefinitionReal struct {
	Identifiable
	IsEditable bool
	Type       *DatatypeDefinitionReal
}

type AttributeDefinitionString struct {
	Identifiable
	IsEditable bool
	Type       *DatatypeDefinitionString
}

type AttributeDefinitionXHTML struct {
	Identifiable
	IsEditable bool
	Type       *DatatypeDefinitionXHTML
}

func (*AttributeDefinitionBoolean) Kind() DatatypeKind     { return DatatypeBoolean }
func (*AttributeDefinitionDate) Kind() DatatypeKind        { return DatatypeDate }
func (*AttributeDefinitionEnumeration) Kind() DatatypeKind { return DatatypeEnumeration }
func (*AttributeDefinitionInteger) Kind() DatatypeKind     { return DatatypeInteger }
func (*AttributeDefinitionReal) Kind() DatatypeKind        { return DatatypeReal }
func (*AttributeDefinitionString) Kind() DatatypeKind      { return DatatypeString }
func (*AttributeDefinitionXHTML) Kind() DatatypeKind       { return DatatypeXHTML }

// Datatype returns nil when Type is unset so callers can compare against nil.
func (d *AttributeDefinitionBoolean) Datatype() DatatypeDefinition {
	if d.Type == nil {
		return nil
	}

	return d.Type
}

func (d *AttributeDefinitionDate) Datatype() DatatypeDefinition {
	if d.Type == nil {
		return nil
	}

	return d.Type
}

func (d *AttributeDefinitionEnumeration) Datatype() DatatypeDefinition {
	if d.Type == nil {
		return nil
	}

	return d.Type
}

func (d *AttributeDefinitionInteger) Datatype() DatatypeDefinition {
	if d.Type == nil {
		return nil
	}

	return d.Type
}

func (d *AttributeDefinitionReal) Datatype() DatatypeDefinition {
	if d.Type == nil {
		return nil
	}

	return d.Type
}

func (d *AttributeDefinitionString) Datatype() DatatypeDefinition {
	if d.Type == nil {
		return nil
	}

	return d.Type
}

func (d *AttributeDefinitionXHTML) Datatype() DatatypeDefinition {
	if d.Type == nil {
		return nil
	}

	return d.Type
}

func (*AttributeDefinitionBoolean) isAttributeDefinition()     {}
func (*AttributeDefinitionDate) isAttributeDefinition()        {}
func (*AttributeDefinitionEnumeration) isAttributeDefinition() {}
func (*AttributeDefinitionInteger) isAttributeDefinition()     {}
func (*AttributeDefinitionReal) isAttributeDefinition()        {}
func (*AttributeDefinitionString) isAttributeDefinition()      {}
func (*AttributeDefinitionXHTML) isAttributeDefinition()       {}

// AttributeValue is the closed union of attribute values. A value's kind always
// equals the kind of its definition.
type AttributeValue interface {
	Kind() DatatypeKind
	AttributeDefinition() AttributeDefinition
	isAttributeValue()
}

type AttributeValueBoolean struct {
	Definition *AttributeDefinitionBoolean
	TheValue   bool
}

type AttributeValueDate struct {
	Definition *AttributeDefinitionDate
	TheValue   time.Time
}

type AttributeValueEnumeration struct {
	Definition *AttributeDefinitionEnumeration
	Values     []*EnumValue
}

type AttributeValueInteger struct {
	Definition *AttributeDefinitionInteger
	TheValue   int64
}

type AttributeValueReal struct {
	Definition *AttributeDefinitionReal
	TheValue   float64
}

type AttributeValueString struct {
	Definition *AttributeDefinitionString
	TheValue   string
}

// AttributeValueXHTML holds XHTML markup, or plain text when the exporter was
// configured not to add markup.
type AttributeValueXHTML struct {
	Definition *AttributeDefinitionXHTML
	TheValue   string
}

func (*AttributeValueBoolean) Kind() DatatypeKind     { return DatatypeBoolean }
func (*AttributeValueDate) Kind() DatatypeKind        { return DatatypeDate }
func (*AttributeValueEnumeration) Kind() DatatypeKind { return DatatypeEnumeration }
func (*AttributeValueInteger) Kind() DatatypeKind     { return DatatypeInteger }
func (*AttributeValueReal) Kind() DatatypeKind        { return DatatypeReal }
func (*AttributeValueString) Kind() DatatypeKind      { return DatatypeString }
func (*AttributeValueXHTML) Kind() DatatypeKind       { return DatatypeXHTML }

func (v *AttributeValueBoolean) AttributeDefinition() AttributeDefinition     { return v.Definition }
func (v *AttributeValueDate) AttributeDefinition() AttributeDefinition        { return v.Definition }
func (v *AttributeValueEnumeration) AttributeDefinition() AttributeDefinition { return v.Definition }
func (v *AttributeValueInteger) AttributeDefinition() AttributeDefinition     { return v.Definition }
func (v *AttributeValueReal) AttributeDefinition() AttributeDefinition        { return v.Definition }
func (v *AttributeValueString) AttributeDefinition() AttributeDefinition      { return v.Definition }
func (v *AttributeValueXHTML) AttributeDefinition() AttributeDefinition       { return v.Definition }

func (*AttributeValueBoolean) isAttributeValue()     {}
func (*AttributeValueDate) isAttributeValue()        {}
func (*AttributeValueEnumeration) isAttributeValue() {}
func (*AttributeValueInteger) isAttributeValue()     {}
func (*AttributeValueReal) isAttributeValue()        {}
func (*AttributeValueString) isAttributeValue()      {}
func (*AttributeValueXHTML) isAttributeValue()       {}
