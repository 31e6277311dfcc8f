package model

import (
	"github.com/google/uuid"

	"reqif-exporter/internal/common"
)

// Definition is a textual definition of a thing in one language.
type Definition struct {
	Content      string
	LanguageCode string
}

// DefinedThing carries the identity and naming every exported entity has.
type DefinedThing struct {
	ID        uuid.UUID
	Name      string
	ShortName string
	// Definition is ordered; only the first entry is ever exported.
	Definition []Definition
}

// Thing returns the receiver so variants embedding DefinedThing expose it uniformly.
func (t *DefinedThing) Thing() *DefinedThing {
	return t
}

// FirstDefinition returns the content of the first definition, or "".
func (t *DefinedThing) FirstDefinition() string {
	if d, ok := common.First(t.Definition); ok {
		return d.Content
	}

	return ""
}

// Label is the short name when set, the name otherwise. Used in log output.
func (t *DefinedThing) Label() string {
	return common.FirstNonEmpty(t.ShortName, t.Name, t.ID.String())
}
