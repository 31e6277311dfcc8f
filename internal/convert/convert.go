// Package convert runs one export end to end: retrieve the model data, read the
// export settings, load the template, build the document and write it out.
package convert

//go:generate mockgen -source=convert.go -destination=mocks/mocks.go -package=mocks Retriever,SettingsReader,TemplateLoader,DocumentBuilder,Writer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"reqif-exporter/internal/builder"
	"reqif-exporter/internal/model"
	"reqif-exporter/internal/reqif"
	"reqif-exporter/internal/session"
	"reqif-exporter/internal/settings"
)

// ErrInvalidOptions is returned before any work starts when options are incomplete.
var ErrInvalidOptions = errors.New("invalid options")

// Retriever fetches the iteration to export.
type Retriever interface {
	Retrieve(ctx context.Context, credentials session.Credentials, modelID uuid.UUID) (*model.Iteration, error)
}

// SettingsReader reads export settings.
type SettingsReader interface {
	ReadSettings(ctx context.Context, path string) (*settings.ExportSettings, error)
}

// TemplateLoader loads the template document.
type TemplateLoader interface {
	LoadTemplate(ctx context.Context, path string) (*reqif.ReqIF, error)
}

// DocumentBuilder converts specifications into a document shaped by a template.
type DocumentBuilder interface {
	Build(template *reqif.ReqIF, specifications []*model.RequirementsSpecification, exportSettings *settings.ExportSettings, excludeAlternativeID bool) (*reqif.ReqIF, error)
}

// Writer persists the output document and reports where it went.
type Writer interface {
	Write(ctx context.Context, doc *reqif.ReqIF, target string) (reqifPath, archivePath string, err error)
}

// Options are the convert command's flags.
type Options struct {
	Username             string
	Password             string
	DataSource           string
	TemplateSource       string
	TargetReqIF          string
	ExportSettings       string
	EngineeringModelID   string
	ExcludeAlternativeID bool
}

// Validate reports every missing required option at once.
func (o Options) Validate() error {
	var missing []string

	for _, req := range []struct {
		name  string
		value string
	}{
		{"username", o.Username},
		{"secret", o.Password},
		{"datasource", o.DataSource},
		{"source-reqif", o.TemplateSource},
		{"target-reqif", o.TargetReqIF},
		{"engineering-model-id", o.EngineeringModelID},
	} {
		if strings.TrimSpace(req.value) == "" {
			missing = append(missing, req.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidOptions, strings.Join(missing, ", "))
	}

	if _, err := uuid.Parse(o.EngineeringModelID); err != nil {
		return fmt.Errorf("%w: engineering-model-id %q: %w", ErrInvalidOptions, o.EngineeringModelID, err)
	}

	return nil
}

func (o Options) settingsPath() string {
	if o.ExportSettings == "" {
		return settings.DefaultFileName
	}

	return o.ExportSettings
}

// Result describes a finished export.
type Result struct {
	ReqIFPath      string
	ArchivePath    string
	Specifications int
	SpecObjects    int
	Elapsed        time.Duration
}

// Command is one convert run.
type Command struct {
	opts      Options
	logger    *slog.Logger
	retriever Retriever
	settings  SettingsReader
	templates TemplateLoader
	builder   DocumentBuilder
	writer    Writer
}

// Option replaces a collaborator of Command.
type Option func(*Command)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Command) {
		c.logger = logger
	}
}

func WithRetriever(r Retriever) Option {
	return func(c *Command) {
		c.retriever = r
	}
}

func WithSettingsReader(r SettingsReader) Option {
	return func(c *Command) {
		c.settings = r
	}
}

func WithTemplateLoader(l TemplateLoader) Option {
	return func(c *Command) {
		c.templates = l
	}
}

func WithBuilder(b DocumentBuilder) Option {
	return func(c *Command) {
		c.builder = b
	}
}

func WithWriter(w Writer) Option {
	return func(c *Command) {
		c.writer = w
	}
}

// New returns a command working on local files unless options say otherwise.
func New(opts Options, options ...Option) *Command {
	c := &Command{opts: opts, logger: slog.Default()}

	for _, o := range options {
		o(c)
	}

	if c.retriever == nil {
		c.retriever = session.NewFileRetriever(c.logger)
	}

	if c.settings == nil {
		c.settings = SettingsFiles{}
	}

	if c.templates == nil {
		c.templates = TemplateFiles{}
	}

	if c.builder == nil {
		c.builder = builder.New(builder.WithLogger(c.logger))
	}

	if c.writer == nil {
		c.writer = DocumentFiles{}
	}

	return c
}

// Execute runs the export. The three inputs are fetched concurrently; the first
// failure cancels the others.
func (c *Command) Execute(ctx context.Context) (*Result, error) {
	start := time.Now()

	if err := c.opts.Validate(); err != nil {
		return nil, err
	}

	modelID := uuid.MustParse(c.opts.EngineeringModelID)

	var (
		iteration      *model.Iteration
		exportSettings *settings.ExportSettings
		template       *reqif.ReqIF
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.timed("retrieve data", func() (err error) {
			credentials := session.Credentials{Username: c.opts.Username, Password: c.opts.Password, DataSource: c.opts.DataSource}
			iteration, err = c.retriever.Retrieve(gctx, credentials, modelID)

			return err
		})
	})

	g.Go(func() error {
		return c.timed("read export settings", func() (err error) {
			exportSettings, err = c.settings.ReadSettings(gctx, c.opts.settingsPath())
			return err
		})
	})

	g.Go(func() error {
		return c.timed("load template", func() (err error) {
			template, err = c.templates.LoadTemplate(gctx, c.opts.TemplateSource)
			return err
		})
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var doc *reqif.ReqIF

	err := c.timed("build", func() (err error) {
		doc, err = c.builder.Build(template, iteration.RequirementsSpecifications, exportSettings, c.opts.ExcludeAlternativeID)
		return err
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		Specifications: len(doc.CoreContent.Specifications),
		SpecObjects:    len(doc.CoreContent.SpecObjects),
	}

	err = c.timed("write", func() (err error) {
		result.ReqIFPath, result.ArchivePath, err = c.writer.Write(ctx, doc, c.opts.TargetReqIF)
		return err
	})
	if err != nil {
		return nil, err
	}

	result.Elapsed = time.Since(start)

	c.logger.Info("export finished",
		"reqif", result.ReqIFPath,
		"reqifz", result.ArchivePath,
		"specifications", result.Specifications,
		"specObjects", result.SpecObjects,
		"elapsed", result.Elapsed)

	return result, nil
}

// timed runs one phase, logs its duration and prefixes its error with the phase name.
func (c *Command) timed(phase string, fn func() error) error {
	start := time.Now()

	if err := fn(); err != nil {
		c.logger.Error("phase failed", "phase", phase, "elapsed", time.Since(start), "error", err)
		return fmt.Errorf("%s: %w", phase, err)
	}

	c.logger.Info("phase done", "phase", phase, "elapsed", time.Since(start))

	return nil
}
