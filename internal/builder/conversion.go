package builder

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"reqif-exporter/internal/model"
	"reqif-exporter/internal/reqif"
	"reqif-exporter/internal/settings"
)

// conversion is the state of one Build call. It is created once and passed by
// value through the tree walk; nothing writes to it afterwards.
type conversion struct {
	logger         *slog.Logger
	newID          func() string
	settings       *settings.ExportSettings
	alternativeIDs bool
	specType       *reqif.SpecificationType
	objectType     *reqif.SpecObjectType
}

// entity is the part of a specification, group or requirement the attribute
// population needs.
type entity struct {
	kind       string
	thing      *model.DefinedThing
	text       string
	modifiedOn time.Time
	// deleted is nil for entities that cannot be deprecated.
	deleted []bool
	values  []model.ParameterValue
}

func (c conversion) specification(spec *model.RequirementsSpecification) (*reqif.Specification, []*reqif.SpecObject, error) {
	values, err := c.populate(entity{
		kind:       "specification",
		thing:      &spec.DefinedThing,
		text:       spec.Name,
		modifiedOn: spec.ModifiedOn,
		deleted:    []bool{spec.IsDeprecated},
		values:     spec.ParameterValues,
	}, c.specType, c.settings.SpecificationAttributeDefinitions)
	if err != nil {
		return nil, nil, err
	}

	out := &reqif.Specification{
		Identifiable: c.identifiable(&spec.DefinedThing, spec.ModifiedOn),
		Type:         c.specType,
		Values:       values,
	}

	children, objects, err := c.children(spec, uuid.Nil, map[uuid.UUID]bool{})
	if err != nil {
		return nil, nil, err
	}

	out.Children = children

	return out, objects, nil
}

// children builds the hierarchy below the group groupID: its requirements first,
// then its child groups. Objects are returned in hierarchy pre-order.
func (c conversion) children(spec *model.RequirementsSpecification, groupID uuid.UUID, visited map[uuid.UUID]bool) ([]*reqif.SpecHierarchy, []*reqif.SpecObject, error) {
	var (
		nodes   []*reqif.SpecHierarchy
		objects []*reqif.SpecObject
	)

	for _, r := range spec.RequirementsIn(groupID) {
		node, err := c.requirement(spec, r)
		if err != nil {
			return nil, nil, err
		}

		nodes = append(nodes, node)
		objects = append(objects, node.Object)
	}

	for _, g := range spec.ChildGroups(groupID) {
		if visited[g.ID] {
			c.logger.Warn("group already placed in the hierarchy, skipping", "group", g.Label(), "specification", spec.Label())
			continue
		}

		visited[g.ID] = true

		node, groupObjects, err := c.group(spec, g, visited)
		if err != nil {
			return nil, nil, err
		}

		nodes = append(nodes, node)
		objects = append(objects, groupObjects...)
	}

	return nodes, objects, nil
}

func (c conversion) group(spec *model.RequirementsSpecification, g *model.RequirementsGroup, visited map[uuid.UUID]bool) (*reqif.SpecHierarchy, []*reqif.SpecObject, error) {
	obj, err := c.specObject(entity{
		kind:       "group",
		thing:      &g.DefinedThing,
		text:       g.Name,
		modifiedOn: g.ModifiedOn,
		values:     g.ParameterValues,
	})
	if err != nil {
		return nil, nil, err
	}

	node := c.hierarchy(obj)

	children, objects, err := c.children(spec, g.ID, visited)
	if err != nil {
		return nil, nil, err
	}

	node.Children = children

	return node, append([]*reqif.SpecObject{obj}, objects...), nil
}

func (c conversion) requirement(spec *model.RequirementsSpecification, r *model.Requirement) (*reqif.SpecHierarchy, error) {
	obj, err := c.specObject(entity{
		kind:       "requirement",
		thing:      &r.DefinedThing,
		text:       r.FirstDefinition(),
		modifiedOn: r.ModifiedOn,
		deleted:    []bool{r.IsDeprecated, spec.IsDeprecated},
		values:     r.ParameterValues,
	})
	if err != nil {
		return nil, err
	}

	return c.hierarchy(obj), nil
}

func (c conversion) specObject(e entity) (*reqif.SpecObject, error) {
	values, err := c.populate(e, c.objectType, c.settings.RequirementAttributeDefinitions)
	if err != nil {
		return nil, err
	}

	return &reqif.SpecObject{
		Identifiable: c.identifiable(e.thing, e.modifiedOn),
		Type:         c.objectType,
		Values:       values,
	}, nil
}

func (c conversion) hierarchy(obj *reqif.SpecObject) *reqif.SpecHierarchy {
	return &reqif.SpecHierarchy{
		Identifiable: reqif.Identifiable{
			Identifier: c.newID(),
			LastChange: obj.LastChange,
		},
		Object: obj,
	}
}

func (c conversion) identifiable(thing *model.DefinedThing, lastChange time.Time) reqif.Identifiable {
	ident := reqif.Identifiable{
		Identifier: c.newID(),
		LongName:   thing.Name,
		LastChange: lastChange,
	}

	if c.alternativeIDs {
		ident.AlternativeID = &reqif.AlternativeID{Identifier: thing.ID.String()}
	}

	return ident
}

// populate fills the attributes of one entity. Errors are logged with the entity
// and returned wrapped; they abort the build.
func (c conversion) populate(e entity, owner reqif.SpecType, roles *settings.AttributeDefinitions) ([]reqif.AttributeValue, error) {
	values, err := c.attributes(e, owner, roles)
	if err != nil {
		c.logger.Error("could not populate attributes", "kind", e.kind, "entity", e.thing.Label(), "error", err)
		return nil, fmt.Errorf("populating attributes of %s %s: %w", e.kind, e.thing.Label(), err)
	}

	return values, nil
}
