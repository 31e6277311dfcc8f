package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNoActiveIteration is returned when every iteration of a model is deleted.
var ErrNoActiveIteration = errors.New("no active iteration")

// Iteration is one revision of an engineering model.
type Iteration struct {
	ID                         uuid.UUID
	IterationNumber            int
	IsDeleted                  bool
	RequirementsSpecifications []*RequirementsSpecification
}

// EngineeringModel owns a sequence of iterations.
type EngineeringModel struct {
	ID         uuid.UUID
	Name       string
	Iterations []*Iteration
}

// LatestIteration returns the non-deleted iteration with the highest number.
func (m *EngineeringModel) LatestIteration() (*Iteration, error) {
	var latest *Iteration

	for _, it := range m.Iterations {
		if it.IsDeleted {
			continue
		}

		if latest == nil || it.IterationNumber > latest.IterationNumber {
			latest = it
		}
	}

	if latest == nil {
		return nil, fmt.Errorf("engineering model %s: %w", m.ID, ErrNoActiveIteration)
	}

	return latest, nil
}

// ActiveSpecifications returns the specifications that are not deprecated.
func (it *Iteration) ActiveSpecifications() []*RequirementsSpecification {
	var out []*RequirementsSpecification

	for _, s := range it.RequirementsSpecifications {
		if !s.IsDeprecated {
			out = append(out, s)
		}
	}

	return out
}
