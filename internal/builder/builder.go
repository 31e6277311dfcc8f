package builder

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"reqif-exporter/internal/common"
	"reqif-exporter/internal/model"
	"reqif-exporter/internal/reqif"
	"reqif-exporter/internal/settings"
)

const (
	// ToolID is written as REQ-IF-TOOL-ID.
	ToolID = "reqif-exporter"
	// SourceToolID is written as SOURCE-TOOL-ID.
	SourceToolID = "ECSS-E-TM-10-25"
)

var (
	ErrTemplateRequired  = errors.New("template document is required")
	ErrNoSpecifications  = errors.New("no requirements specifications to export")
	ErrSettingsRequired  = errors.New("export settings are required")
	ErrMixedIterations   = errors.New("requirements specifications belong to different iterations")
	ErrNotSupported      = errors.New("not supported")
	ErrMalformedValue    = errors.New("malformed value")
	ErrIncompatibleValue = errors.New("incompatible attribute definition")
)

// Builder builds output documents. It holds configuration only, so one Builder can
// serve concurrent Build calls.
type Builder struct {
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger for advisory warnings and entity failures.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithClock overrides the header creation time source.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// WithIdentifiers overrides the generator of output identifiers.
func WithIdentifiers(newID func() string) Option {
	return func(b *Builder) {
		b.newID = newID
	}
}

// New returns a Builder logging to slog.Default.
func New(opts ...Option) *Builder {
	b := &Builder{
		logger: slog.Default(),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  reqif.NewIdentifier,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build converts specifications into a new document based on template. The template
// itself is never modified; on error no document is returned.
func (b *Builder) Build(
	template *reqif.ReqIF,
	specifications []*model.RequirementsSpecification,
	exportSettings *settings.ExportSettings,
	excludeAlternativeID bool,
) (*reqif.ReqIF, error) {
	if template == nil || template.CoreContent == nil {
		return nil, ErrTemplateRequired
	}

	specs := common.NonNil(specifications)
	if len(specs) == 0 {
		return nil, ErrNoSpecifications
	}

	if exportSettings == nil {
		return nil, ErrSettingsRequired
	}

	repositoryID, err := repositoryID(specs)
	if err != nil {
		return nil, err
	}

	specType, err := resolveSpecType[*reqif.SpecificationType](b.logger, template.CoreContent.SpecTypes, reqif.SpecificationTypeKind)
	if err != nil {
		return nil, err
	}

	objectType, err := resolveSpecType[*reqif.SpecObjectType](b.logger, template.CoreContent.SpecTypes, reqif.SpecObjectTypeKind)
	if err != nil {
		return nil, err
	}

	conv := conversion{
		logger:         b.logger,
		newID:          b.newID,
		settings:       exportSettings,
		alternativeIDs: !excludeAlternativeID,
		specType:       specType,
		objectType:     objectType,
	}

	out := &reqif.ReqIF{
		Lang: template.Lang,
		Header: &reqif.Header{
			Identifier:   b.newID(),
			CreationTime: b.now(),
			RepositoryID: repositoryID,
			ReqIFToolID:  ToolID,
			ReqIFVersion: reqif.Version,
			SourceToolID: SourceToolID,
			Title:        exportSettings.Title,
		},
		CoreContent: &reqif.Content{
			DataTypes: template.CoreContent.DataTypes,
			SpecTypes: template.CoreContent.SpecTypes,
		},
		ToolExtensions: template.ToolExtensions,
	}

	for _, spec := range specs {
		if spec.IsDeprecated {
			continue
		}

		specification, objects, err := conv.specification(spec)
		if err != nil {
			return nil, err
		}

		out.CoreContent.Specifications = append(out.CoreContent.Specifications, specification)
		out.CoreContent.SpecObjects = append(out.CoreContent.SpecObjects, objects...)
	}

	b.logger.Debug("built ReqIF document",
		"specifications", len(out.CoreContent.Specifications),
		"specObjects", len(out.CoreContent.SpecObjects),
		"repository", repositoryID)

	return out, nil
}

// repositoryID names the iteration every specification comes from.
func repositoryID(specs []*model.RequirementsSpecification) (string, error) {
	first := specs[0]

	for _, s := range specs[1:] {
		if s.IterationID != first.IterationID || s.EngineeringModelID != first.EngineeringModelID {
			return "", fmt.Errorf("%w: %s is in iteration %s, %s is in iteration %s",
				ErrMixedIterations, first.Label(), first.IterationID, s.Label(), s.IterationID)
		}
	}

	return RepositoryID(first.EngineeringModelID, first.IterationID), nil
}

// RepositoryID formats the REPOSITORY-ID of an export from one iteration.
func RepositoryID(engineeringModelID, iterationID uuid.UUID) string {
	return fmt.Sprintf("model/%s/iteration/%s", engineeringModelID, iterationID)
}

// resolveSpecType picks the first spec type of kind K. Several candidates are
// tolerated with a warning; none is an error.
func resolveSpecType[K reqif.SpecType](logger *slog.Logger, types []reqif.SpecType, kind reqif.SpecTypeKind) (K, error) {
	candidates := reqif.SpecTypesOf[K](types)

	if len(candidates) == 0 {
		var zero K
		return zero, fmt.Errorf("%w: the template declares no %s", ErrNotSupported, kind)
	}

	used := candidates[0]

	if len(candidates) > 1 {
		logger.Warn("more than one spec type of the same kind in template, using the first",
			"kind", kind.String(),
			"count", len(candidates),
			"identifier", used.Ident().Identifier)
	}

	return used, nil
}
