package settings

import (
	"fmt"

	"github.com/google/uuid"

	"reqif-exporter/internal/diagnostic"
	"reqif-exporter/internal/match"
	"reqif-exporter/internal/reqif"
)

const (
	sectionRequirement   = "requirementAttributeDefinitions"
	sectionSpecification = "specificationAttributeDefinitions"
	sectionMap           = "externalIdentifierMap"

	maxSuggestions = 3
)

// Validate reports problems that make the settings unusable on their own,
// independent of any template.
func (s *ExportSettings) Validate() *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	if s.Title == "" {
		diags.AddInfo("empty-title", "title is empty, the output header will have no title", "", "title")
	}

	if s.RequirementAttributeDefinitions == nil {
		diags.AddWarning("missing-role-block", "no requirement attribute definitions, requirements will only carry parameter values", sectionRequirement, "")
	}

	if s.SpecificationAttributeDefinitions == nil {
		diags.AddWarning("missing-role-block", "no specification attribute definitions, specifications will only carry parameter values", sectionSpecification, "")
	}

	for i, c := range s.ExternalIdentifierMap.Correspondence {
		path := fmt.Sprintf("correspondence[%d]", i)

		if c.ExternalID == "" {
			diags.AddError("empty-external-id", "external id is empty", sectionMap, path)
		}

		if c.InternalThing == uuid.Nil {
			diags.AddError("empty-internal-thing", "internal thing is the nil UUID", sectionMap, path)
		}
	}

	return diags
}

// Check resolves every identifier in s against template the way the exporter will:
// specification roles against the first specification type, requirement roles
// against the first object type, correspondences against either.
func (s *ExportSettings) Check(template *reqif.ReqIF) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	if template == nil || template.CoreContent == nil {
		diags.AddError("missing-template", "template has no content", "", "")
		return diags
	}

	reg := reqif.IndexDocument(template)
	specTypes := reqif.SpecTypesOf[*reqif.SpecificationType](template.CoreContent.SpecTypes)
	objectTypes := reqif.SpecTypesOf[*reqif.SpecObjectType](template.CoreContent.SpecTypes)

	var specType, objectType reqif.SpecType

	if len(specTypes) == 0 {
		diags.AddError("missing-spec-type", "template declares no specification type", "", "")
	} else {
		specType = specTypes[0]
	}

	if len(objectTypes) == 0 {
		diags.AddError("missing-spec-type", "template declares no spec object type", "", "")
	} else {
		objectType = objectTypes[0]
	}

	if specType != nil {
		checkRoles(diags, sectionSpecification, s.SpecificationAttributeDefinitions, specType, reg)
	}

	if objectType != nil {
		checkRoles(diags, sectionRequirement, s.RequirementAttributeDefinitions, objectType, reg)
	}

	for i, c := range s.ExternalIdentifierMap.Correspondence {
		if c.ExternalID == "" {
			continue
		}

		_, onSpec := reqif.FindAttributeDefinition(specType, c.ExternalID)
		_, onObject := reqif.FindAttributeDefinition(objectType, c.ExternalID)

		if !onSpec && !onObject {
			diags.AddWarning("unresolved-correspondence",
				fmt.Sprintf("%q is not an attribute definition of the specification or object type, values of %s are dropped", c.ExternalID, c.InternalThing),
				sectionMap, fmt.Sprintf("correspondence[%d]", i),
				match.Suggest(c.ExternalID, reg.AttributeDefinitionIDs(), maxSuggestions)...)
		}
	}

	return diags
}

func checkRoles(diags *diagnostic.Diagnostics, section string, defs *AttributeDefinitions, owner reqif.SpecType, reg *reqif.Registry) {
	candidates := make([]string, 0, len(owner.Attributes()))
	for _, def := range owner.Attributes() {
		candidates = append(candidates, def.Ident().Identifier)
	}

	for _, role := range defs.Roles() {
		if role.ID == "" {
			continue
		}

		def, ok := reqif.FindAttributeDefinition(owner, role.ID)
		if !ok {
			msg := fmt.Sprintf("%q is not an attribute definition of %s %q", role.ID, owner.Kind(), owner.Ident().LongName)
			if _, elsewhere := reg.AttributeDefinition(role.ID); elsewhere {
				msg += ", it belongs to another spec type"
			}

			diags.AddWarning("unresolved-attribute", msg, section, role.Field, match.Suggest(role.ID, candidates, maxSuggestions)...)

			continue
		}

		if !Accepts(role.Role, def.Kind()) {
			diags.AddWarning("incompatible-attribute",
				fmt.Sprintf("%s role cannot be written to a %s attribute definition", role.Role, def.Kind()),
				section, role.Field)
		}
	}
}

// Accepts reports whether a role can be written to an attribute definition of kind k.
func Accepts(role Role, k reqif.DatatypeKind) bool {
	switch role {
	case RoleText, RoleName:
		return k == reqif.DatatypeXHTML || k == reqif.DatatypeString
	case RoleModifiedOn:
		return k == reqif.DatatypeDate
	case RoleDeleted:
		return k == reqif.DatatypeBoolean
	default:
		return false
	}
}
