package reqif

// Registry indexes the identifiable elements of a document by identifier.
type Registry struct {
	datatypes      map[string]DatatypeDefinition
	enumValues     map[string]*EnumValue
	specTypes      map[string]SpecType
	attributes     map[string]AttributeDefinition
	attributeOrder []string
	specObjects    map[string]*SpecObject
	specifications map[string]*Specification
	relations      map[string]*SpecRelation
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		datatypes:      make(map[string]DatatypeDefinition),
		enumValues:     make(map[string]*EnumValue),
		specTypes:      make(map[string]SpecType),
		attributes:     make(map[string]AttributeDefinition),
		specObjects:    make(map[string]*SpecObject),
		specifications: make(map[string]*Specification),
		relations:      make(map[string]*SpecRelation),
	}
}

// IndexDocument returns a registry over every element of doc.
func IndexDocument(doc *ReqIF) *Registry {
	r := NewRegistry()
	if doc == nil || doc.CoreContent == nil {
		return r
	}

	c := doc.CoreContent

	for _, dt := range c.DataTypes {
		r.AddDatatype(dt)
	}

	for _, st := range c.SpecTypes {
		r.AddSpecType(st)
	}

	for _, o := range c.SpecObjects {
		r.specObjects[o.Identifier] = o
	}

	for _, rel := range c.SpecRelations {
		r.relations[rel.Identifier] = rel
	}

	for _, s := range c.Specifications {
		r.specifications[s.Identifier] = s
	}

	return r
}

// AddDatatype indexes dt and, for enumerations, its literals.
func (r *Registry) AddDatatype(dt DatatypeDefinition) {
	r.datatypes[dt.Ident().Identifier] = dt

	if enum, ok := dt.(*DatatypeDefinitionEnumeration); ok {
		for _, v := range enum.SpecifiedValues {
			r.enumValues[v.Identifier] = v
		}
	}
}

// AddSpecType indexes st and its attribute definitions.
func (r *Registry) AddSpecType(st SpecType) {
	r.specTypes[st.Ident().Identifier] = st

	for _, def := range st.Attributes() {
		id := def.Ident().Identifier
		if _, seen := r.attributes[id]; !seen {
			r.attributeOrder = append(r.attributeOrder, id)
		}

		r.attributes[id] = def
	}
}

// Datatype looks up a datatype definition.
func (r *Registry) Datatype(id string) (DatatypeDefinition, bool) {
	dt, ok := r.datatypes[id]
	return dt, ok
}

// EnumValue looks up an enumeration literal.
func (r *Registry) EnumValue(id string) (*EnumValue, bool) {
	v, ok := r.enumValues[id]
	return v, ok
}

// EnumerationOf resolves the enumeration that owns v.
func (r *Registry) EnumerationOf(v *EnumValue) (*DatatypeDefinitionEnumeration, bool) {
	dt, ok := r.datatypes[v.DatatypeID]
	if !ok {
		return nil, false
	}

	enum, ok := dt.(*DatatypeDefinitionEnumeration)

	return enum, ok
}

// SpecType looks up a spec type.
func (r *Registry) SpecType(id string) (SpecType, bool) {
	st, ok := r.specTypes[id]
	return st, ok
}

// AttributeDefinition looks up an attribute definition of any spec type.
func (r *Registry) AttributeDefinition(id string) (AttributeDefinition, bool) {
	def, ok := r.attributes[id]
	return def, ok
}

// AttributeDefinitionIDs returns every attribute definition identifier in document order.
func (r *Registry) AttributeDefinitionIDs() []string {
	return append([]string(nil), r.attributeOrder...)
}

// SpecObject looks up a spec object.
func (r *Registry) SpecObject(id string) (*SpecObject, bool) {
	o, ok := r.specObjects[id]
	return o, ok
}

// Specification looks up a specification.
func (r *Registry) Specification(id string) (*Specification, bool) {
	s, ok := r.specifications[id]
	return s, ok
}

// SpecRelation looks up a spec relation.
func (r *Registry) SpecRelation(id string) (*SpecRelation, bool) {
	rel, ok := r.relations[id]
	return rel, ok
}
