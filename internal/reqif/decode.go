package reqif

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

var (
	// ErrUnresolvedReference is returned when a reference names no known element.
	ErrUnresolvedReference = errors.New("unresolved reference")
	// ErrUnknownElement is returned for element names outside the ReqIF vocabulary.
	ErrUnknownElement = errors.New("unknown element")
	// ErrKindMismatch is returned when a reference points at an element of the wrong kind.
	ErrKindMismatch = errors.New("kind mismatch")
)

// Decode reads a ReqIF document. Non UTF-8 encodings declared in the XML prolog
// are transcoded. Every reference must resolve to an element declared earlier in
// the document, which the ReqIF content order guarantees for well-formed input.
func Decode(r io.Reader) (*ReqIF, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var w wireReqIF
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("decode reqif: %w", err)
	}

	d := &decoder{reg: NewRegistry()}

	doc, err := d.document(&w)
	if err != nil {
		return nil, fmt.Errorf("decode reqif: %w", err)
	}

	return doc, nil
}

type decoder struct {
	reg *Registry
}

func (d *decoder) document(w *wireReqIF) (*ReqIF, error) {
	header, err := decodeHeader(w.Header.Header)
	if err != nil {
		return nil, err
	}

	doc := &ReqIF{Lang: w.Lang, Header: header, CoreContent: &Content{}}
	c := &w.Content.Content

	if c.DataTypes != nil {
		for _, wd := range c.DataTypes.Items {
			dt, err := d.datatype(wd)
			if err != nil {
				return nil, err
			}

			d.reg.AddDatatype(dt)
			doc.CoreContent.DataTypes = append(doc.CoreContent.DataTypes, dt)
		}
	}

	if c.SpecTypes != nil {
		for _, ws := range c.SpecTypes.Items {
			st, err := d.specType(ws)
			if err != nil {
				return nil, err
			}

			d.reg.AddSpecType(st)
			doc.CoreContent.SpecTypes = append(doc.CoreContent.SpecTypes, st)
		}
	}

	if c.SpecObjects != nil {
		for _, wo := range c.SpecObjects.Items {
			o, err := d.specObject(wo)
			if err != nil {
				return nil, err
			}

			d.reg.specObjects[o.Identifier] = o
			doc.CoreContent.SpecObjects = append(doc.CoreContent.SpecObjects, o)
		}
	}

	if c.SpecRelations != nil {
		for _, wr := range c.SpecRelations.Items {
			rel, err := d.specRelation(wr)
			if err != nil {
				return nil, err
			}

			d.reg.relations[rel.Identifier] = rel
			doc.CoreContent.SpecRelations = append(doc.CoreContent.SpecRelations, rel)
		}
	}

	if c.Specifications != nil {
		for _, ws := range c.Specifications.Items {
			s, err := d.specification(ws)
			if err != nil {
				return nil, err
			}

			d.reg.specifications[s.Identifier] = s
			doc.CoreContent.Specifications = append(doc.CoreContent.Specifications, s)
		}
	}

	if c.SpecRelationGroups != nil {
		for _, wg := range c.SpecRelationGroups.Items {
			g, err := d.relationGroup(wg)
			if err != nil {
				return nil, err
			}

			doc.CoreContent.SpecRelationGroups = append(doc.CoreContent.SpecRelationGroups, g)
		}
	}

	if w.ToolExtensions != nil {
		for _, ext := range w.ToolExtensions.Items {
			doc.ToolExtensions = append(doc.ToolExtensions, &ToolExtension{InnerXML: ext.Inner})
		}
	}

	return doc, nil
}

func decodeHeader(w wireHeader) (*Header, error) {
	created, err := parseTime(w.CreationTime)
	if err != nil {
		return nil, fmt.Errorf("header %s: CREATION-TIME: %w", w.Identifier, err)
	}

	return &Header{
		Identifier:   w.Identifier,
		Comment:      w.Comment,
		CreationTime: created,
		RepositoryID: w.RepositoryID,
		ReqIFToolID:  w.ReqIFToolID,
		ReqIFVersion: w.ReqIFVersion,
		SourceToolID: w.SourceToolID,
		Title:        w.Title,
	}, nil
}

func (w wireIdentifiable) decode() (Identifiable, error) {
	lastChange, err := parseTime(w.LastChange)
	if err != nil {
		return Identifiable{}, fmt.Errorf("%s: LAST-CHANGE: %w", w.Identifier, err)
	}

	ident := Identifiable{
		Identifier:  w.Identifier,
		LongName:    w.LongName,
		Description: w.Desc,
		LastChange:  lastChange,
	}

	if w.AlternativeID != nil && w.AlternativeID.Inner.Identifier != "" {
		ident.AlternativeID = &AlternativeID{Identifier: w.AlternativeID.Inner.Identifier}
	}

	return ident, nil
}

func (d *decoder) datatype(w wireDatatype) (DatatypeDefinition, error) {
	kind, ok := kindOf(w.XMLName.Local, "DATATYPE-DEFINITION-")
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, w.XMLName.Local)
	}

	ident, err := w.decode()
	if err != nil {
		return nil, err
	}

	switch kind {
	case DatatypeBoolean:
		return &DatatypeDefinitionBoolean{Identifiable: ident}, nil
	case DatatypeDate:
		return &DatatypeDefinitionDate{Identifiable: ident}, nil
	case DatatypeEnumeration:
		enum, err := decodeEnumeration(ident, w.SpecifiedValues)
		if err != nil {
			return nil, err
		}

		return enum, nil
	case DatatypeInteger:
		lo, err := optionalInt(w.Min)
		if err != nil {
			return nil, fmt.Errorf("%s: MIN: %w", ident.Identifier, err)
		}

		hi, err := optionalInt(w.Max)
		if err != nil {
			return nil, fmt.Errorf("%s: MAX: %w", ident.Identifier, err)
		}

		return &DatatypeDefinitionInteger{Identifiable: ident, Min: lo, Max: hi}, nil
	case DatatypeReal:
		lo, err := optionalFloat(w.Min)
		if err != nil {
			return nil, fmt.Errorf("%s: MIN: %w", ident.Identifier, err)
		}

		hi, err := optionalFloat(w.Max)
		if err != nil {
			return nil, fmt.Errorf("%s: MAX: %w", ident.Identifier, err)
		}

		accuracy, err := optionalInt(w.Accuracy)
		if err != nil {
			return nil, fmt.Errorf("%s: ACCURACY: %w", ident.Identifier, err)
		}

		return &DatatypeDefinitionReal{Identifiable: ident, Min: lo, Max: hi, Accuracy: accuracy}, nil
	case DatatypeString:
		maxLength, err := optionalInt(w.MaxLength)
		if err != nil {
			return nil, fmt.Errorf("%s: MAX-LENGTH: %w", ident.Identifier, err)
		}

		return &DatatypeDefinitionString{Identifiable: ident, MaxLength: maxLength}, nil
	case DatatypeXHTML:
		return &DatatypeDefinitionXHTML{Identifiable: ident}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, w.XMLName.Local)
	}
}

func decodeEnumeration(ident Identifiable, w *wireSpecifiedValues) (*DatatypeDefinitionEnumeration, error) {
	enum := &DatatypeDefinitionEnumeration{Identifiable: ident}
	if w == nil {
		return enum, nil
	}

	for _, wv := range w.Values {
		vi, err := wv.decode()
		if err != nil {
			return nil, err
		}

		value := &EnumValue{Identifiable: vi, DatatypeID: ident.Identifier}

		if wv.Properties != nil {
			key, err := optionalInt(wv.Properties.Embedded.Key)
			if err != nil {
				return nil, fmt.Errorf("%s: KEY: %w", vi.Identifier, err)
			}

			if key != nil {
				value.Properties.Key = *key
			}

			value.Properties.OtherContent = wv.Properties.Embedded.OtherContent
		}

		enum.SpecifiedValues = append(enum.SpecifiedValues, value)
	}

	return enum, nil
}

func (d *decoder) specType(w wireSpecType) (SpecType, error) {
	ident, err := w.decode()
	if err != nil {
		return nil, err
	}

	var attrs []AttributeDefinition

	if w.SpecAttributes != nil {
		for _, wa := range w.SpecAttributes.Items {
			def, err := d.attributeDefinition(wa)
			if err != nil {
				return nil, fmt.Errorf("spec type %s: %w", ident.Identifier, err)
			}

			attrs = append(attrs, def)
		}
	}

	switch w.XMLName.Local {
	case "SPECIFICATION-TYPE":
		return &SpecificationType{Identifiable: ident, SpecAttributes: attrs}, nil
	case "SPEC-OBJECT-TYPE":
		return &SpecObjectType{Identifiable: ident, SpecAttributes: attrs}, nil
	case "SPEC-RELATION-TYPE":
		return &SpecRelationType{Identifiable: ident, SpecAttributes: attrs}, nil
	case "RELATION-GROUP-TYPE":
		return &RelationGroupType{Identifiable: ident, SpecAttributes: attrs}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, w.XMLName.Local)
	}
}

func (d *decoder) attributeDefinition(w wireAttributeDefinition) (AttributeDefinition, error) {
	kind, ok := kindOf(w.XMLName.Local, "ATTRIBUTE-DEFINITION-")
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, w.XMLName.Local)
	}

	ident, err := w.decode()
	if err != nil {
		return nil, err
	}

	editable, err := parseBoolAttr(w.IsEditable)
	if err != nil {
		return nil, fmt.Errorf("%s: IS-EDITABLE: %w", ident.Identifier, err)
	}

	ref := w.Type.first()

	dt, ok := d.reg.Datatype(ref)
	if !ok {
		return nil, fmt.Errorf("%w: attribute definition %s type %q", ErrUnresolvedReference, ident.Identifier, ref)
	}

	switch kind {
	case DatatypeBoolean:
		t, err := as[*DatatypeDefinitionBoolean](dt, ident.Identifier)
		return &AttributeDefinitionBoolean{Identifiable: ident, IsEditable: editable, Type: t}, err
	case DatatypeDate:
		t, err := as[*DatatypeDefinitionDate](dt, ident.Identifier)
		return &AttributeDefinitionDate{Identifiable: ident, IsEditable: editable, Type: t}, err
	case DatatypeEnumeration:
		multi, err := parseBoolAttr(w.MultiValued)
		if err != nil {
			return nil, fmt.Errorf("%s: MULTI-VALUED: %w", ident.Identifier, err)
		}

		t, err := as[*DatatypeDefinitionEnumeration](dt, ident.Identifier)

		return &AttributeDefinitionEnumeration{Identifiable: ident, IsEditable: editable, MultiValued: multi, Type: t}, err
	case DatatypeInteger:
		t, err := as[*DatatypeDefinitionInteger](dt, ident.Identifier)
		return &AttributeDefinitionInteger{Identifiable: ident, IsEditable: editable, Type: t}, err
	case DatatypeReal:
		t, err := as[*DatatypeDefinitionReal](dt, ident.Identifier)
		return &AttributeDefinitionReal{Identifiable: ident, IsEditable: editable, Type: t}, err
	case DatatypeString:
		t, err := as[*DatatypeDefinitionString](dt, ident.Identifier)
		return &AttributeDefinitionString{Identifiable: ident, IsEditable: editable, Type: t}, err
	case DatatypeXHTML:
		t, err := as[*DatatypeDefinitionXHTML](dt, ident.Identifier)
		return &AttributeDefinitionXHTML{Identifiable: ident, IsEditable: editable, Type: t}, err
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, w.XMLName.Local)
	}
}

// as narrows a resolved reference to the variant the referring element requires.
func as[T any](v any, owner string) (T, error) {
	t, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s references %T", ErrKindMismatch, owner, v)
	}

	return t, nil
}

func (d *decoder) values(w *wireValues, owner string) ([]AttributeValue, error) {
	if w == nil {
		return nil, nil
	}

	out := make([]AttributeValue, 0, len(w.Items))

	for _, wv := range w.Items {
		v, err := d.attributeValue(wv)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", owner, err)
		}

		out = append(out, v)
	}

	return out, nil
}

func (d *decoder) attributeValue(w wireAttributeValue) (AttributeValue, error) {
	kind, ok := kindOf(w.XMLName.Local, "ATTRIBUTE-VALUE-")
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, w.XMLName.Local)
	}

	ref := w.Definition.first()

	def, ok := d.reg.AttributeDefinition(ref)
	if !ok {
		return nil, fmt.Errorf("%w: attribute definition %q", ErrUnresolvedReference, ref)
	}

	raw := strings.TrimSpace(w.TheValue)

	switch kind {
	case DatatypeBoolean:
		def, err := as[*AttributeDefinitionBoolean](def, ref)
		if err != nil {
			return nil, err
		}

		b, err := parseBoolAttr(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: THE-VALUE: %w", ref, err)
		}

		return &AttributeValueBoolean{Definition: def, TheValue: b}, nil
	case DatatypeDate:
		def, err := as[*AttributeDefinitionDate](def, ref)
		if err != nil {
			return nil, err
		}

		t, err := parseTime(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: THE-VALUE: %w", ref, err)
		}

		return &AttributeValueDate{Definition: def, TheValue: t}, nil
	case DatatypeEnumeration:
		def, err := as[*AttributeDefinitionEnumeration](def, ref)
		if err != nil {
			return nil, err
		}

		v := &AttributeValueEnumeration{Definition: def}

		for _, id := range w.Values.all() {
			ev, ok := d.reg.EnumValue(id)
			if !ok {
				return nil, fmt.Errorf("%w: enum value %q", ErrUnresolvedReference, id)
			}

			v.Values = append(v.Values, ev)
		}

		return v, nil
	case DatatypeInteger:
		def, err := as[*AttributeDefinitionInteger](def, ref)
		if err != nil {
			return nil, err
		}

		var n int64
		if raw != "" {
			if n, err = strconv.ParseInt(raw, 10, 64); err != nil {
				return nil, fmt.Errorf("%s: THE-VALUE: %w", ref, err)
			}
		}

		return &AttributeValueInteger{Definition: def, TheValue: n}, nil
	case DatatypeReal:
		def, err := as[*AttributeDefinitionReal](def, ref)
		if err != nil {
			return nil, err
		}

		var f float64
		if raw != "" {
			if f, err = strconv.ParseFloat(raw, 64); err != nil {
				return nil, fmt.Errorf("%s: THE-VALUE: %w", ref, err)
			}
		}

		return &AttributeValueReal{Definition: def, TheValue: f}, nil
	case DatatypeString:
		def, err := as[*AttributeDefinitionString](def, ref)
		if err != nil {
			return nil, err
		}

		return &AttributeValueString{Definition: def, TheValue: w.TheValue}, nil
	case DatatypeXHTML:
		def, err := as[*AttributeDefinitionXHTML](def, ref)
		if err != nil {
			return nil, err
		}

		return &AttributeValueXHTML{Definition: def, TheValue: decodeXHTML(w.XHTML)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, w.XMLName.Local)
	}
}

// decodeXHTML keeps markup verbatim and unescapes plain text.
func decodeXHTML(w *wireInnerXML) string {
	if w == nil {
		return ""
	}

	inner := strings.TrimSpace(w.Inner)
	if strings.HasPrefix(inner, "<") {
		return inner
	}

	return html.UnescapeString(inner)
}

func (d *decoder) specObject(w wireSpecObject) (*SpecObject, error) {
	ident, err := w.decode()
	if err != nil {
		return nil, err
	}

	t, err := d.specTypeRef(w.Type, ident.Identifier)
	if err != nil {
		return nil, err
	}

	ot, err := as[*SpecObjectType](t, ident.Identifier)
	if err != nil {
		return nil, err
	}

	values, err := d.values(w.Values, ident.Identifier)
	if err != nil {
		return nil, err
	}

	return &SpecObject{Identifiable: ident, Type: ot, Values: values}, nil
}

func (d *decoder) specRelation(w wireSpecRelation) (*SpecRelation, error) {
	ident, err := w.decode()
	if err != nil {
		return nil, err
	}

	t, err := d.specTypeRef(w.Type, ident.Identifier)
	if err != nil {
		return nil, err
	}

	rt, err := as[*SpecRelationType](t, ident.Identifier)
	if err != nil {
		return nil, err
	}

	source, ok := d.reg.SpecObject(w.Source.first())
	if !ok {
		return nil, fmt.Errorf("%w: relation %s source %q", ErrUnresolvedReference, ident.Identifier, w.Source.first())
	}

	target, ok := d.reg.SpecObject(w.Target.first())
	if !ok {
		return nil, fmt.Errorf("%w: relation %s target %q", ErrUnresolvedReference, ident.Identifier, w.Target.first())
	}

	values, err := d.values(w.Values, ident.Identifier)
	if err != nil {
		return nil, err
	}

	return &SpecRelation{Identifiable: ident, Type: rt, Source: source, Target: target, Values: values}, nil
}

func (d *decoder) specification(w wireSpecification) (*Specification, error) {
	ident, err := w.decode()
	if err != nil {
		return nil, err
	}

	t, err := d.specTypeRef(w.Type, ident.Identifier)
	if err != nil {
		return nil, err
	}

	st, err := as[*SpecificationType](t, ident.Identifier)
	if err != nil {
		return nil, err
	}

	values, err := d.values(w.Values, ident.Identifier)
	if err != nil {
		return nil, err
	}

	children, err := d.hierarchy(w.Children)
	if err != nil {
		return nil, fmt.Errorf("specification %s: %w", ident.Identifier, err)
	}

	return &Specification{Identifiable: ident, Type: st, Values: values, Children: children}, nil
}

func (d *decoder) hierarchy(w *wireChildren) ([]*SpecHierarchy, error) {
	if w == nil {
		return nil, nil
	}

	out := make([]*SpecHierarchy, 0, len(w.Items))

	for _, wh := range w.Items {
		ident, err := wh.decode()
		if err != nil {
			return nil, err
		}

		object, ok := d.reg.SpecObject(wh.Object.first())
		if !ok {
			return nil, fmt.Errorf("%w: hierarchy %s object %q", ErrUnresolvedReference, ident.Identifier, wh.Object.first())
		}

		tableInternal, err := parseBoolAttr(wh.IsTableInternal)
		if err != nil {
			return nil, fmt.Errorf("%s: IS-TABLE-INTERNAL: %w", ident.Identifier, err)
		}

		children, err := d.hierarchy(wh.Children)
		if err != nil {
			return nil, err
		}

		out = append(out, &SpecHierarchy{
			Identifiable:    ident,
			IsTableInternal: tableInternal,
			Object:          object,
			Children:        children,
		})
	}

	return out, nil
}

func (d *decoder) relationGroup(w wireRelationGroup) (*RelationGroup, error) {
	ident, err := w.decode()
	if err != nil {
		return nil, err
	}

	t, err := d.specTypeRef(w.Type, ident.Identifier)
	if err != nil {
		return nil, err
	}

	gt, err := as[*RelationGroupType](t, ident.Identifier)
	if err != nil {
		return nil, err
	}

	source, ok := d.reg.Specification(w.Source.first())
	if !ok {
		return nil, fmt.Errorf("%w: relation group %s source %q", ErrUnresolvedReference, ident.Identifier, w.Source.first())
	}

	target, ok := d.reg.Specification(w.Target.first())
	if !ok {
		return nil, fmt.Errorf("%w: relation group %s target %q", ErrUnresolvedReference, ident.Identifier, w.Target.first())
	}

	g := &RelationGroup{Identifiable: ident, Type: gt, Source: source, Target: target}

	for _, id := range w.SpecRelations.all() {
		rel, ok := d.reg.SpecRelation(id)
		if !ok {
			return nil, fmt.Errorf("%w: relation group %s relation %q", ErrUnresolvedReference, ident.Identifier, id)
		}

		g.SpecRelations = append(g.SpecRelations, rel)
	}

	return g, nil
}

func (d *decoder) specTypeRef(h wireRefHolder, owner string) (SpecType, error) {
	ref := h.first()

	t, ok := d.reg.SpecType(ref)
	if !ok {
		return nil, fmt.Errorf("%w: %s type %q", ErrUnresolvedReference, owner, ref)
	}

	return t, nil
}
