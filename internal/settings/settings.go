package settings

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ExportSettings configures one export.
type ExportSettings struct {
	// Title goes into the output header.
	Title string `yaml:"title" json:"title"`
	// RequirementAttributeDefinitions name the object-type attributes filled for
	// requirements and groups.
	RequirementAttributeDefinitions *AttributeDefinitions `yaml:"requirementAttributeDefinitions" json:"requirementAttributeDefinitions,omitempty"`
	// SpecificationAttributeDefinitions name the specification-type attributes.
	SpecificationAttributeDefinitions *AttributeDefinitions `yaml:"specificationAttributeDefinitions" json:"specificationAttributeDefinitions,omitempty"`
	// ExternalIdentifierMap routes parameter values to attribute definitions.
	ExternalIdentifierMap ExternalIdentifierMap `yaml:"externalIdentifierMap" json:"externalIdentifierMap"`
	// AddXhtmlTags wraps text in XHTML markup; when false markup is stripped.
	AddXhtmlTags bool `yaml:"addXhtmlTags" json:"addXhtmlTags"`
}

// AttributeDefinitions holds one attribute definition identifier per role.
// An empty identifier disables the role.
type AttributeDefinitions struct {
	TextAttributeDefinitionID              string `yaml:"textAttributeDefinitionId" json:"textAttributeDefinitionId,omitempty"`
	ForeignDeletedAttributeDefinitionID    string `yaml:"foreignDeletedAttributeDefinitionId" json:"foreignDeletedAttributeDefinitionId,omitempty"`
	ForeignModifiedOnAttributeDefinitionID string `yaml:"foreignModifiedOnAttributeDefinitionId" json:"foreignModifiedOnAttributeDefinitionId,omitempty"`
	NameAttributeDefinitionID              string `yaml:"nameAttributeDefinitionId" json:"nameAttributeDefinitionId,omitempty"`
}

// Role names an attribute definition slot.
type Role string

const (
	RoleText       Role = "text"
	RoleModifiedOn Role = "foreign modified-on"
	RoleName       Role = "name"
	RoleDeleted    Role = "foreign deleted"
)

// RoleID pairs a role with its configured identifier.
type RoleID struct {
	Role Role
	ID   string
	// Field is the settings key the identifier came from.
	Field string
}

// Roles returns the roles in the order the exporter fills them. A nil receiver
// yields no roles.
func (a *AttributeDefinitions) Roles() []RoleID {
	if a == nil {
		return nil
	}

	return []RoleID{
		{Role: RoleText, ID: a.TextAttributeDefinitionID, Field: "textAttributeDefinitionId"},
		{Role: RoleModifiedOn, ID: a.ForeignModifiedOnAttributeDefinitionID, Field: "foreignModifiedOnAttributeDefinitionId"},
		{Role: RoleName, ID: a.NameAttributeDefinitionID, Field: "nameAttributeDefinitionId"},
		{Role: RoleDeleted, ID: a.ForeignDeletedAttributeDefinitionID, Field: "foreignDeletedAttributeDefinitionId"},
	}
}

// IDCorrespondence maps a source parameter type to a template attribute definition.
type IDCorrespondence struct {
	ExternalID    string    `yaml:"externalId" json:"externalId"`
	InternalThing uuid.UUID `yaml:"internalThing" json:"internalThing"`
}

// ExternalIdentifierMap is the ordered list of correspondences.
type ExternalIdentifierMap struct {
	Correspondence []IDCorrespondence `json:"correspondence"`
}

// UnmarshalYAML accepts either a bare list of correspondences or an object with
// a "correspondence" list, the layout reference-data tools write.
func (m *ExternalIdentifierMap) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		return node.Decode(&m.Correspondence)
	case yaml.MappingNode:
		var wrapped struct {
			Correspondence []IDCorrespondence `yaml:"correspondence"`
		}

		if err := node.Decode(&wrapped); err != nil {
			return err
		}

		m.Correspondence = wrapped.Correspondence

		return nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			m.Correspondence = nil
			return nil
		}
	}

	return fmt.Errorf("line %d: externalIdentifierMap must be a list or an object", node.Line)
}

// Lookup returns the external ids mapped to internalThing, in order.
func (m ExternalIdentifierMap) Lookup(internalThing uuid.UUID) []string {
	var out []string

	for _, c := range m.Correspondence {
		if c.InternalThing == internalThing {
			out = append(out, c.ExternalID)
		}
	}

	return out
}

// Add appends a correspondence.
func (m *ExternalIdentifierMap) Add(externalID string, internalThing uuid.UUID) {
	m.Correspondence = append(m.Correspondence, IDCorrespondence{ExternalID: externalID, InternalThing: internalThing})
}
