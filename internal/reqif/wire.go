package reqif

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// Namespace is the ReqIF 1.0 schema namespace.
	Namespace = "http://www.omg.org/spec/ReqIF/20110401/reqif.xsd"
	// XHTMLNamespace is bound to the "xhtml" prefix used inside XHTML values.
	XHTMLNamespace = "http://www.w3.org/1999/xhtml"

	timeLayout = "2006-01-02T15:04:05.000-07:00"
)

// The wire types mirror the XML layout one to one; conversion to and from the
// object model happens in decode.go and encode.go.

type wireReqIF struct {
	XMLName        xml.Name            `xml:"REQ-IF"`
	XMLNS          string              `xml:"xmlns,attr,omitempty"`
	XMLNSXHTML     string              `xml:"xmlns:xhtml,attr,omitempty"`
	Lang           string              `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
	Header         wireHeaderHolder    `xml:"THE-HEADER"`
	Content        wireContentHolder   `xml:"CORE-CONTENT"`
	ToolExtensions *wireToolExtensions `xml:"TOOL-EXTENSIONS"`
}

type wireHeaderHolder struct {
	Header wireHeader `xml:"REQ-IF-HEADER"`
}

type wireHeader struct {
	Identifier   string `xml:"IDENTIFIER,attr"`
	Comment      string `xml:"COMMENT,omitempty"`
	CreationTime string `xml:"CREATION-TIME"`
	RepositoryID string `xml:"REPOSITORY-ID,omitempty"`
	ReqIFToolID  string `xml:"REQ-IF-TOOL-ID"`
	ReqIFVersion string `xml:"REQ-IF-VERSION"`
	SourceToolID string `xml:"SOURCE-TOOL-ID"`
	Title        string `xml:"TITLE"`
}

type wireContentHolder struct {
	Content wireContent `xml:"REQ-IF-CONTENT"`
}

type wireContent struct {
	DataTypes          *wireDatatypes      `xml:"DATATYPES"`
	SpecTypes          *wireSpecTypes      `xml:"SPEC-TYPES"`
	SpecObjects        *wireSpecObjects    `xml:"SPEC-OBJECTS"`
	SpecRelations      *wireSpecRelations  `xml:"SPEC-RELATIONS"`
	Specifications     *wireSpecifications `xml:"SPECIFICATIONS"`
	SpecRelationGroups *wireRelationGroups `xml:"SPEC-RELATION-GROUPS"`
}

type wireIdentifiable struct {
	Identifier    string             `xml:"IDENTIFIER,attr"`
	LastChange    string             `xml:"LAST-CHANGE,attr,omitempty"`
	LongName      string             `xml:"LONG-NAME,attr,omitempty"`
	Desc          string             `xml:"DESC,attr,omitempty"`
	AlternativeID *wireAlternativeID `xml:"ALTERNATIVE-ID"`
}

type wireAlternativeID struct {
	Inner struct {
		Identifier string `xml:"IDENTIFIER,attr"`
	} `xml:"ALTERNATIVE-ID"`
}

type wireDatatypes struct {
	Items []wireDatatype `xml:",any"`
}

type wireDatatype struct {
	XMLName xml.Name
	wireIdentifiable
	Accuracy        string               `xml:"ACCURACY,attr,omitempty"`
	Max             string               `xml:"MAX,attr,omitempty"`
	MaxLength       string               `xml:"MAX-LENGTH,attr,omitempty"`
	Min             string               `xml:"MIN,attr,omitempty"`
	SpecifiedValues *wireSpecifiedValues `xml:"SPECIFIED-VALUES"`
}

type wireSpecifiedValues struct {
	Values []wireEnumValue `xml:"ENUM-VALUE"`
}

type wireEnumValue struct {
	wireIdentifiable
	Properties *wireProperties `xml:"PROPERTIES"`
}

type wireProperties struct {
	Embedded wireEmbeddedValue `xml:"EMBEDDED-VALUE"`
}

type wireEmbeddedValue struct {
	Key          string `xml:"KEY,attr"`
	OtherContent string `xml:"OTHER-CONTENT,attr"`
}

type wireSpecTypes struct {
	Items []wireSpecType `xml:",any"`
}

type wireSpecType struct {
	XMLName xml.Name
	wireIdentifiable
	SpecAttributes *wireAttributeDefinitions `xml:"SPEC-ATTRIBUTES"`
}

type wireAttributeDefinitions struct {
	Items []wireAttributeDefinition `xml:",any"`
}

type wireAttributeDefinition struct {
	XMLName xml.Name
	wireIdentifiable
	IsEditable  string         `xml:"IS-EDITABLE,attr,omitempty"`
	MultiValued string         `xml:"MULTI-VALUED,attr,omitempty"`
	Type        *wireRefHolder `xml:"TYPE"`
}

type wireValues struct {
	Items []wireAttributeValue `xml:",any"`
}

type wireAttributeValue struct {
	XMLName    xml.Name
	TheValue   string         `xml:"THE-VALUE,attr,omitempty"`
	Definition wireRefHolder  `xml:"DEFINITION"`
	Values     *wireRefHolder `xml:"VALUES"`
	XHTML      *wireInnerXML  `xml:"THE-VALUE"`
}

type wireInnerXML struct {
	Inner string `xml:",innerxml"`
}

type wireRefHolder struct {
	Refs []wireRef `xml:",any"`
}

type wireRef struct {
	XMLName xml.Name
	Ref     string `xml:",chardata"`
}

type wireSpecObjects struct {
	Items []wireSpecObject `xml:"SPEC-OBJECT"`
}

type wireSpecObject struct {
	wireIdentifiable
	Values *wireValues   `xml:"VALUES"`
	Type   wireRefHolder `xml:"TYPE"`
}

type wireSpecRelations struct {
	Items []wireSpecRelation `xml:"SPEC-RELATION"`
}

type wireSpecRelation struct {
	wireIdentifiable
	Values *wireValues   `xml:"VALUES"`
	Source wireRefHolder `xml:"SOURCE"`
	Target wireRefHolder `xml:"TARGET"`
	Type   wireRefHolder `xml:"TYPE"`
}

type wireSpecifications struct {
	Items []wireSpecification `xml:"SPECIFICATION"`
}

type wireSpecification struct {
	wireIdentifiable
	Values   *wireValues   `xml:"VALUES"`
	Type     wireRefHolder `xml:"TYPE"`
	Children *wireChildren `xml:"CHILDREN"`
}

type wireChildren struct {
	Items []wireSpecHierarchy `xml:"SPEC-HIERARCHY"`
}

type wireSpecHierarchy struct {
	wireIdentifiable
	IsTableInternal string        `xml:"IS-TABLE-INTERNAL,attr,omitempty"`
	Object          wireRefHolder `xml:"OBJECT"`
	Children        *wireChildren `xml:"CHILDREN"`
}

type wireRelationGroups struct {
	Items []wireRelationGroup `xml:"RELATION-GROUP"`
}

type wireRelationGroup struct {
	wireIdentifiable
	Source        wireRefHolder  `xml:"SOURCE-SPECIFICATION"`
	SpecRelations *wireRefHolder `xml:"SPEC-RELATIONS"`
	Target        wireRefHolder  `xml:"TARGET-SPECIFICATION"`
	Type          wireRefHolder  `xml:"TYPE"`
}

type wireToolExtensions struct {
	Items []wireInnerXML `xml:"REQ-IF-TOOL-EXTENSION"`
}

func (h *wireRefHolder) first() string {
	if h == nil || len(h.Refs) == 0 {
		return ""
	}

	return strings.TrimSpace(h.Refs[0].Ref)
}

func (h *wireRefHolder) all() []string {
	if h == nil {
		return nil
	}

	out := make([]string, 0, len(h.Refs))
	for _, r := range h.Refs {
		out = append(out, strings.TrimSpace(r.Ref))
	}

	return out
}

func refHolder(element string, ids ...string) wireRefHolder {
	h := wireRefHolder{Refs: make([]wireRef, 0, len(ids))}
	for _, id := range ids {
		h.Refs = append(h.Refs, wireRef{XMLName: xml.Name{Local: element}, Ref: id})
	}

	return h
}

// kindSuffix is the upper-case element suffix of a datatype kind, e.g. "XHTML".
func kindSuffix(k DatatypeKind) string {
	return strings.ToUpper(k.String())
}

// kindOf parses "<prefix><SUFFIX>" and "<prefix><SUFFIX>-REF" element names.
func kindOf(local, prefix string) (DatatypeKind, bool) {
	rest, ok := strings.CutPrefix(local, prefix)
	if !ok {
		return 0, false
	}

	rest = strings.TrimSuffix(rest, "-REF")

	for _, k := range DatatypeKinds() {
		if kindSuffix(k) == rest {
			return k, true
		}
	}

	return 0, false
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(timeLayout)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

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

	return time.Time{}, fmt.Errorf("invalid xsd:dateTime %q", s)
}

func optionalInt(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func optionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func formatOptionalInt(v *int64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatInt(*v, 10)
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'g', -1, 64)
}

func parseBoolAttr(s string) (bool, error) {
	if s == "" {
		return false, nil
	}

	return strconv.ParseBool(strings.TrimSpace(s))
}
