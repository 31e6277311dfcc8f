package reqif

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNilDocument is returned when encoding a nil document or one without content.
var ErrNilDocument = errors.New("nil document")

// Encode writes doc as indented ReqIF XML with an XML prolog.
func Encode(w io.Writer, doc *ReqIF) error {
	if doc == nil || doc.Header == nil || doc.CoreContent == nil {
		return ErrNilDocument
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("encode reqif: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	if err := enc.Encode(encodeDocument(doc)); err != nil {
		return fmt.Errorf("encode reqif: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode reqif: %w", err)
	}

	_, err := io.WriteString(w, "\n")

	return err
}

// Marshal is Encode into a byte slice.
func Marshal(doc *ReqIF) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func encodeDocument(doc *ReqIF) *wireReqIF {
	h := doc.Header
	c := doc.CoreContent

	w := &wireReqIF{
		XMLNS:      Namespace,
		XMLNSXHTML: XHTMLNamespace,
		Lang:       doc.Lang,
		Header: wireHeaderHolder{Header: wireHeader{
			Identifier:   h.Identifier,
			Comment:      h.Comment,
			CreationTime: formatTime(h.CreationTime),
			RepositoryID: h.RepositoryID,
			ReqIFToolID:  h.ReqIFToolID,
			ReqIFVersion: h.ReqIFVersion,
			SourceToolID: h.SourceToolID,
			Title:        h.Title,
		}},
	}

	content := &w.Content.Content
	content.DataTypes = &wireDatatypes{}
	content.SpecTypes = &wireSpecTypes{}
	content.SpecObjects = &wireSpecObjects{}
	content.SpecRelations = &wireSpecRelations{}
	content.Specifications = &wireSpecifications{}
	content.SpecRelationGroups = &wireRelationGroups{}

	for _, dt := range c.DataTypes {
		content.DataTypes.Items = append(content.DataTypes.Items, encodeDatatype(dt))
	}

	for _, st := range c.SpecTypes {
		content.SpecTypes.Items = append(content.SpecTypes.Items, encodeSpecType(st))
	}

	for _, o := range c.SpecObjects {
		content.SpecObjects.Items = append(content.SpecObjects.Items, wireSpecObject{
			wireIdentifiable: encodeIdentifiable(o.Identifiable),
			Values:           encodeValues(o.Values),
			Type:             refHolder("SPEC-OBJECT-TYPE-REF", identifierOf(o.Type)),
		})
	}

	for _, rel := range c.SpecRelations {
		content.SpecRelations.Items = append(content.SpecRelations.Items, wireSpecRelation{
			wireIdentifiable: encodeIdentifiable(rel.Identifiable),
			Values:           encodeValues(rel.Values),
			Source:           refHolder("SPEC-OBJECT-REF", identifierOf(rel.Source)),
			Target:           refHolder("SPEC-OBJECT-REF", identifierOf(rel.Target)),
			Type:             refHolder("SPEC-RELATION-TYPE-REF", identifierOf(rel.Type)),
		})
	}

	for _, s := range c.Specifications {
		content.Specifications.Items = append(content.Specifications.Items, wireSpecification{
			wireIdentifiable: encodeIdentifiable(s.Identifiable),
			Values:           encodeValues(s.Values),
			Type:             refHolder("SPECIFICATION-TYPE-REF", identifierOf(s.Type)),
			Children:         encodeHierarchy(s.Children),
		})
	}

	for _, g := range c.SpecRelationGroups {
		relations := make([]string, 0, len(g.SpecRelations))
		for _, rel := range g.SpecRelations {
			relations = append(relations, rel.Identifier)
		}

		holder := refHolder("SPEC-RELATION-REF", relations...)

		content.SpecRelationGroups.Items = append(content.SpecRelationGroups.Items, wireRelationGroup{
			wireIdentifiable: encodeIdentifiable(g.Identifiable),
			Source:           refHolder("SPECIFICATION-REF", identifierOf(g.Source)),
			SpecRelations:    &holder,
			Target:           refHolder("SPECIFICATION-REF", identifierOf(g.Target)),
			Type:             refHolder("RELATION-GROUP-TYPE-REF", identifierOf(g.Type)),
		})
	}

	if len(doc.ToolExtensions) > 0 {
		w.ToolExtensions = &wireToolExtensions{}
		for _, ext := range doc.ToolExtensions {
			w.ToolExtensions.Items = append(w.ToolExtensions.Items, wireInnerXML{Inner: ext.InnerXML})
		}
	}

	return w
}

// identifierOf tolerates nil references so a half-built document still encodes.
func identifierOf[T interface {
	comparable
	Ident() *Identifiable
}](v T) string {
	var zero T
	if v == zero {
		return ""
	}

	return v.Ident().Identifier
}

func encodeIdentifiable(i Identifiable) wireIdentifiable {
	w := wireIdentifiable{
		Identifier: i.Identifier,
		LastChange: formatTime(i.LastChange),
		LongName:   i.LongName,
		Desc:       i.Description,
	}

	if i.AlternativeID != nil {
		w.AlternativeID = &wireAlternativeID{}
		w.AlternativeID.Inner.Identifier = i.AlternativeID.Identifier
	}

	return w
}

func encodeDatatype(dt DatatypeDefinition) wireDatatype {
	w := wireDatatype{
		XMLName:          xml.Name{Local: "DATATYPE-DEFINITION-" + kindSuffix(dt.Kind())},
		wireIdentifiable: encodeIdentifiable(*dt.Ident()),
	}

	switch t := dt.(type) {
	case *DatatypeDefinitionEnumeration:
		w.SpecifiedValues = &wireSpecifiedValues{}
		for _, v := range t.SpecifiedValues {
			w.SpecifiedValues.Values = append(w.SpecifiedValues.Values, wireEnumValue{
				wireIdentifiable: encodeIdentifiable(v.Identifiable),
				Properties: &wireProperties{Embedded: wireEmbeddedValue{
					Key:          strconv.FormatInt(v.Properties.Key, 10),
					OtherContent: v.Properties.OtherContent,
				}},
			})
		}
	case *DatatypeDefinitionInteger:
		w.Min = formatOptionalInt(t.Min)
		w.Max = formatOptionalInt(t.Max)
	case *DatatypeDefinitionReal:
		w.Min = formatOptionalFloat(t.Min)
		w.Max = formatOptionalFloat(t.Max)
		w.Accuracy = formatOptionalInt(t.Accuracy)
	case *DatatypeDefinitionString:
		w.MaxLength = formatOptionalInt(t.MaxLength)
	}

	return w
}

func encodeSpecType(st SpecType) wireSpecType {
	var element string

	switch st.Kind() {
	case SpecificationTypeKind:
		element = "SPECIFICATION-TYPE"
	case SpecObjectTypeKind:
		element = "SPEC-OBJECT-TYPE"
	case SpecRelationTypeKind:
		element = "SPEC-RELATION-TYPE"
	case RelationGroupTypeKind:
		element = "RELATION-GROUP-TYPE"
	}

	w := wireSpecType{
		XMLName:          xml.Name{Local: element},
		wireIdentifiable: encodeIdentifiable(*st.Ident()),
	}

	if attrs := st.Attributes(); len(attrs) > 0 {
		w.SpecAttributes = &wireAttributeDefinitions{}
		for _, def := range attrs {
			w.SpecAttributes.Items = append(w.SpecAttributes.Items, encodeAttributeDefinition(def))
		}
	}

	return w
}

func encodeAttributeDefinition(def AttributeDefinition) wireAttributeDefinition {
	suffix := kindSuffix(def.Kind())

	w := wireAttributeDefinition{
		XMLName:          xml.Name{Local: "ATTRIBUTE-DEFINITION-" + suffix},
		wireIdentifiable: encodeIdentifiable(*def.Ident()),
	}

	if dt := def.Datatype(); dt != nil {
		holder := refHolder("DATATYPE-DEFINITION-"+suffix+"-REF", dt.Ident().Identifier)
		w.Type = &holder
	}

	var editable bool

	switch d := def.(type) {
	case *AttributeDefinitionBoolean:
		editable = d.IsEditable
	case *AttributeDefinitionDate:
		editable = d.IsEditable
	case *AttributeDefinitionEnumeration:
		editable = d.IsEditable
		w.MultiValued = strconv.FormatBool(d.MultiValued)
	case *AttributeDefinitionInteger:
		editable = d.IsEditable
	case *AttributeDefinitionReal:
		editable = d.IsEditable
	case *AttributeDefinitionString:
		editable = d.IsEditable
	case *AttributeDefinitionXHTML:
		editable = d.IsEditable
	}

	if editable {
		w.IsEditable = "true"
	}

	return w
}

func encodeValues(values []AttributeValue) *wireValues {
	if len(values) == 0 {
		return nil
	}

	w := &wireValues{Items: make([]wireAttributeValue, 0, len(values))}
	for _, v := range values {
		w.Items = append(w.Items, encodeAttributeValue(v))
	}

	return w
}

func encodeAttributeValue(v AttributeValue) wireAttributeValue {
	suffix := kindSuffix(v.Kind())
	w := wireAttributeValue{XMLName: xml.Name{Local: "ATTRIBUTE-VALUE-" + suffix}}

	var definition string

	switch t := v.(type) {
	case *AttributeValueBoolean:
		definition = identifierOf(t.Definition)
		w.TheValue = strconv.FormatBool(t.TheValue)
	case *AttributeValueDate:
		definition = identifierOf(t.Definition)
		w.TheValue = formatTime(t.TheValue)
	case *AttributeValueEnumeration:
		definition = identifierOf(t.Definition)

		ids := make([]string, 0, len(t.Values))
		for _, ev := range t.Values {
			ids = append(ids, ev.Identifier)
		}

		holder := refHolder("ENUM-VALUE-REF", ids...)
		w.Values = &holder
	case *AttributeValueInteger:
		definition = identifierOf(t.Definition)
		w.TheValue = strconv.FormatInt(t.TheValue, 10)
	case *AttributeValueReal:
		definition = identifierOf(t.Definition)
		w.TheValue = strconv.FormatFloat(t.TheValue, 'g', -1, 64)
	case *AttributeValueString:
		definition = identifierOf(t.Definition)
		w.TheValue = t.TheValue
	case *AttributeValueXHTML:
		definition = identifierOf(t.Definition)
		w.XHTML = &wireInnerXML{Inner: encodeXHTML(t.TheValue)}
	}

	w.Definition = refHolder("ATTRIBUTE-DEFINITION-"+suffix+"-REF", definition)

	return w
}

// encodeXHTML writes markup verbatim and escapes plain text.
func encodeXHTML(s string) string {
	if strings.HasPrefix(strings.TrimSpace(s), "<") {
		return s
	}

	var buf strings.Builder
	_ = xml.EscapeText(&buf, []byte(s))

	return buf.String()
}

func encodeHierarchy(nodes []*SpecHierarchy) *wireChildren {
	if len(nodes) == 0 {
		return nil
	}

	w := &wireChildren{Items: make([]wireSpecHierarchy, 0, len(nodes))}

	for _, n := range nodes {
		wh := wireSpecHierarchy{
			wireIdentifiable: encodeIdentifiable(n.Identifiable),
			Object:           refHolder("SPEC-OBJECT-REF", identifierOf(n.Object)),
			Children:         encodeHierarchy(n.Children),
		}

		if n.IsTableInternal {
			wh.IsTableInternal = "true"
		}

		w.Items = append(w.Items, wh)
	}

	return w
}
