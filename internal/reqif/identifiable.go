package reqif

import (
	"time"

	"github.com/google/uuid"
)

// Identifiable is the identity block shared by every ReqIF element.
type Identifiable struct {
	Identifier    string
	LongName      string
	Description   string
	LastChange    time.Time
	AlternativeID *AlternativeID
}

// AlternativeID carries the identifier of the thing an element was produced from.
type AlternativeID struct {
	Identifier string
}

// Ident returns the receiver so that embedding types expose it through interfaces.
func (i *Identifiable) Ident() *Identifiable {
	return i
}

// NewIdentifier returns a fresh, XML-ID-safe identifier.
func NewIdentifier() string {
	return "_" + uuid.NewString()
}
