package reqif

import "time"

// Version is the ReqIF version written into every header.
const Version = "1.0"

// ReqIF is a whole document.
type ReqIF struct {
	Lang           string
	Header         *Header
	CoreContent    *Content
	ToolExtensions []*ToolExtension
}

// Header is the REQ-IF-HEADER block.
type Header struct {
	Identifier   string
	Comment      string
	CreationTime time.Time
	RepositoryID string
	ReqIFToolID  string
	ReqIFVersion string
	SourceToolID string
	Title        string
}

// Content is the REQ-IF-CONTENT block.
type Content struct {
	DataTypes          []DatatypeDefinition
	SpecTypes          []SpecType
	SpecObjects        []*SpecObject
	SpecRelations      []*SpecRelation
	Specifications     []*Specification
	SpecRelationGroups []*RelationGroup
}

// ToolExtension is kept as raw XML; nothing in the exporter interprets it.
type ToolExtension struct {
	InnerXML string
}

// Specification is the root of a hierarchy of spec objects.
type Specification struct {
	Identifiable
	Type     *SpecificationType
	Values   []AttributeValue
	Children []*SpecHierarchy
}

// SpecObject is a requirement-like element.
type SpecObject struct {
	Identifiable
	Type   *SpecObjectType
	Values []AttributeValue
}

// SpecHierarchy places a SpecObject in a Specification tree.
type SpecHierarchy struct {
	Identifiable
	IsTableInternal bool
	Object          *SpecObject
	Children        []*SpecHierarchy
}

// SpecRelation links two spec objects.
type SpecRelation struct {
	Identifiable
	Type   *SpecRelationType
	Source *SpecObject
	Target *SpecObject
	Values []AttributeValue
}

// RelationGroup groups relations between two specifications.
type RelationGroup struct {
	Identifiable
	Type          *RelationGroupType
	Source        *Specification
	Target        *Specification
	SpecRelations []*SpecRelation
}

// Walk calls fn for every hierarchy node below h in depth-first pre-order.
func (h *SpecHierarchy) Walk(fn func(*SpecHierarchy)) {
	fn(h)

	for _, c := range h.Children {
		c.Walk(fn)
	}
}
