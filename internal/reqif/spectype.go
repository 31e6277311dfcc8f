package reqif

// SpecType is the closed union of spec types.
type SpecType interface {
	Kind() SpecTypeKind
	Ident() *Identifiable
	Attributes() []AttributeDefinition
	isSpecType()
}

type SpecificationType struct {
	Identifiable
	SpecAttributes []AttributeDefinition
}

type SpecObjectType struct {
	Identifiable
	SpecAttributes []AttributeDefinition
}

type SpecRelationType struct {
	Identifiable
	SpecAttributes []AttributeDefinition
}

type RelationGroupType struct {
	Identifiable
	SpecAttributes []AttributeDefinition
}

func (*SpecificationType) Kind() SpecTypeKind { return SpecificationTypeKind }
func (*SpecObjectType) Kind() SpecTypeKind    { return SpecObjectTypeKind }
func (*SpecRelationType) Kind() SpecTypeKind  { return SpecRelationTypeKind }
func (*RelationGroupType) Kind() SpecTypeKind { return RelationGroupTypeKind }

func (t *SpecificationType) Attributes() []AttributeDefinition { return t.SpecAttributes }
func (t *SpecObjectType) Attributes() []AttributeDefinition    { return t.SpecAttributes }
func (t *SpecRelationType) Attributes() []AttributeDefinition  { return t.SpecAttributes }
func (t *RelationGroupType) Attributes() []AttributeDefinition { return t.SpecAttributes }

func (*SpecificationType) isSpecType() {}
func (*SpecObjectType) isSpecType()    {}
func (*SpecRelationType) isSpecType()  {}
func (*RelationGroupType) isSpecType() {}

// FindAttributeDefinition returns the attribute definition of t with the given
// identifier. Definitions owned by other spec types are never returned.
func FindAttributeDefinition(t SpecType, identifier string) (AttributeDefinition, bool) {
	if t == nil || identifier == "" {
		return nil, false
	}

	for _, def := range t.Attributes() {
		if def.Ident().Identifier == identifier {
			return def, true
		}
	}

	return nil, false
}

// SpecTypesOf returns the spec types of kind K in document order.
func SpecTypesOf[K SpecType](types []SpecType) []K {
	var out []K

	for _, t := range types {
		if k, ok := t.(K); ok {
			out = append(out, k)
		}
	}

	return out
}
