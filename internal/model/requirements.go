package model

import (
	"time"

	"github.com/google/uuid"
)

// RequirementsSpecification is the root of one exported document tree.
//
// Groups are stored flat; ParentID links each group to its parent group, uuid.Nil
// meaning the group hangs directly below the specification. Requirements point at
// their group the same way.
type RequirementsSpecification struct {
	DefinedThing
	IsDeprecated       bool
	ModifiedOn         time.Time
	IterationID        uuid.UUID
	EngineeringModelID uuid.UUID
	Groups             []*RequirementsGroup
	Requirements       []*Requirement
	ParameterValues    []ParameterValue
}

// RequirementsGroup is a node of the group tree. Groups cannot be deprecated.
type RequirementsGroup struct {
	DefinedThing
	ParentID        uuid.UUID
	ModifiedOn      time.Time
	ParameterValues []ParameterValue
}

// Requirement is a leaf of the tree.
type Requirement struct {
	DefinedThing
	GroupID         uuid.UUID
	IsDeprecated    bool
	ModifiedOn      time.Time
	ParameterValues []ParameterValue
}

// TopLevelGroups returns the groups attached directly to the specification, in order.
func (s *RequirementsSpecification) TopLevelGroups() []*RequirementsGroup {
	return s.ChildGroups(uuid.Nil)
}

// ChildGroups returns the groups whose parent is parentID, in order.
func (s *RequirementsSpecification) ChildGroups(parentID uuid.UUID) []*RequirementsGroup {
	var out []*RequirementsGroup

	for _, g := range s.Groups {
		if g.ParentID == parentID {
			out = append(out, g)
		}
	}

	return out
}

// RequirementsIn returns the requirements whose group is groupID, in order.
// uuid.Nil selects the requirements attached at the specification root.
func (s *RequirementsSpecification) RequirementsIn(groupID uuid.UUID) []*Requirement {
	var out []*Requirement

	for _, r := range s.Requirements {
		if r.GroupID == groupID {
			out = append(out, r)
		}
	}

	return out
}
