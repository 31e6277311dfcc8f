package convert

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"reqif-exporter/internal/builder"
	"reqif-exporter/internal/convert/mocks"
	"reqif-exporter/internal/model"
	"reqif-exporter/internal/reqif"
	"reqif-exporter/internal/session"
	"reqif-exporter/internal/settings"
)

const modelID = "9d0c3a1b-77e2-4b8e-8f53-2a6f0c4d1e02"

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validOptions() Options {
	return Options{
		Username:           "admin",
		Password:           "pass",
		DataSource:         "model.json",
		TemplateSource:     "template.reqif",
		TargetReqIF:        "out/export.reqif",
		EngineeringModelID: modelID,
	}
}

type CommandSuite struct {
	suite.Suite

	retriever *mocks.MockRetriever
	settings  *mocks.MockSettingsReader
	templates *mocks.MockTemplateLoader
	builder   *mocks.MockDocumentBuilder
	writer    *mocks.MockWriter
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandSuite))
}

func (s *CommandSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())

	s.retriever = mocks.NewMockRetriever(ctrl)
	s.settings = mocks.NewMockSettingsReader(ctrl)
	s.templates = mocks.NewMockTemplateLoader(ctrl)
	s.builder = mocks.NewMockDocumentBuilder(ctrl)
	s.writer = mocks.NewMockWriter(ctrl)
}

func (s *CommandSuite) command(opts Options) *Command {
	return New(opts,
		WithLogger(quiet()),
		WithRetriever(s.retriever),
		WithSettingsReader(s.settings),
		WithTemplateLoader(s.templates),
		WithBuilder(s.builder),
		WithWriter(s.writer))
}

func (s *CommandSuite) TestExecute() {
	opts := validOptions()
	opts.ExcludeAlternativeID = true

	specs := []*model.RequirementsSpecification{{DefinedThing: model.DefinedThing{ShortName: "REQ"}}}
	iteration := &model.Iteration{RequirementsSpecifications: specs}
	exportSettings := &settings.ExportSettings{}
	template := &reqif.ReqIF{CoreContent: &reqif.Content{}}
	doc := &reqif.ReqIF{CoreContent: &reqif.Content{
		Specifications: []*reqif.Specification{{}},
		SpecObjects:    []*reqif.SpecObject{{}, {}, {}},
	}}

	credentials := session.Credentials{Username: "admin", Password: "pass", DataSource: "model.json"}

	s.retriever.EXPECT().Retrieve(gomock.Any(), credentials, uuid.MustParse(modelID)).Return(iteration, nil)
	s.settings.EXPECT().ReadSettings(gomock.Any(), settings.DefaultFileName).Return(exportSettings, nil)
	s.templates.EXPECT().LoadTemplate(gomock.Any(), "template.reqif").Return(template, nil)
	s.builder.EXPECT().Build(template, specs, exportSettings, true).Return(doc, nil)
	s.writer.EXPECT().Write(gomock.Any(), doc, "out/export.reqif").Return("out/export.reqif", "out/export.reqifz", nil)

	result, err := s.command(opts).Execute(context.Background())
	s.Require().NoError(err)

	s.Equal("out/export.reqif", result.ReqIFPath)
	s.Equal("out/export.reqifz", result.ArchivePath)
	s.Equal(1, result.Specifications)
	s.Equal(3, result.SpecObjects)
	s.Positive(result.Elapsed)
}

func (s *CommandSuite) TestExecute_InvalidOptions() {
	opts := validOptions()
	opts.Password = ""

	_, err := s.command(opts).Execute(context.Background())
	s.Require().ErrorIs(err, ErrInvalidOptions)
	s.Contains(err.Error(), "secret")
}

func (s *CommandSuite) TestExecute_RetrieveFails() {
	boom := errors.New("server unavailable")

	s.retriever.EXPECT().Retrieve(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)
	s.settings.EXPECT().ReadSettings(gomock.Any(), gomock.Any()).Return(&settings.ExportSettings{}, nil).AnyTimes()
	s.templates.EXPECT().LoadTemplate(gomock.Any(), gomock.Any()).Return(&reqif.ReqIF{}, nil).AnyTimes()

	_, err := s.command(validOptions()).Execute(context.Background())
	s.Require().ErrorIs(err, boom)
	s.Contains(err.Error(), "retrieve data")
}

func (s *CommandSuite) TestExecute_FailureCancelsOtherPhases() {
	boom := errors.New("no such file")

	s.retriever.EXPECT().Retrieve(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ session.Credentials, _ uuid.UUID) (*model.Iteration, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	s.settings.EXPECT().ReadSettings(gomock.Any(), gomock.Any()).Return(nil, boom)
	s.templates.EXPECT().LoadTemplate(gomock.Any(), gomock.Any()).Return(&reqif.ReqIF{}, nil).AnyTimes()

	_, err := s.command(validOptions()).Execute(context.Background())
	s.Require().ErrorIs(err, boom)
	s.Contains(err.Error(), "read export settings")
	s.NotErrorIs(err, context.Canceled)
}

func (s *CommandSuite) TestExecute_BuildFails() {
	s.retriever.EXPECT().Retrieve(gomock.Any(), gomock.Any(), gomock.Any()).Return(&model.Iteration{}, nil)
	s.settings.EXPECT().ReadSettings(gomock.Any(), gomock.Any()).Return(&settings.ExportSettings{}, nil)
	s.templates.EXPECT().LoadTemplate(gomock.Any(), gomock.Any()).Return(&reqif.ReqIF{}, nil)
	s.builder.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(nil, builder.ErrNoSpecifications)

	_, err := s.command(validOptions()).Execute(context.Background())
	s.Require().ErrorIs(err, builder.ErrNoSpecifications)
	s.Contains(err.Error(), "build")
}

func (s *CommandSuite) TestExecute_CustomSettingsPath() {
	opts := validOptions()
	opts.ExportSettings = "custom.json"

	s.retriever.EXPECT().Retrieve(gomock.Any(), gomock.Any(), gomock.Any()).Return(&model.Iteration{}, nil).AnyTimes()
	s.settings.EXPECT().ReadSettings(gomock.Any(), "custom.json").Return(nil, os.ErrNotExist)
	s.templates.EXPECT().LoadTemplate(gomock.Any(), gomock.Any()).Return(&reqif.ReqIF{}, nil).AnyTimes()

	_, err := s.command(opts).Execute(context.Background())
	s.ErrorIs(err, os.ErrNotExist)
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		missing []string
	}{
		{name: "valid", mutate: func(*Options) {}},
		{
			name:    "no credentials",
			mutate:  func(o *Options) { o.Username, o.Password = "", " " },
			missing: []string{"username", "secret"},
		},
		{
			name:    "no paths",
			mutate:  func(o *Options) { o.TemplateSource, o.TargetReqIF, o.DataSource = "", "", "" },
			missing: []string{"datasource", "source-reqif", "target-reqif"},
		},
		{
			name:    "no model",
			mutate:  func(o *Options) { o.EngineeringModelID = "" },
			missing: []string{"engineering-model-id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validOptions()
			tt.mutate(&opts)

			err := opts.Validate()
			if len(tt.missing) == 0 {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrInvalidOptions)

			for _, m := range tt.missing {
				assert.Contains(t, err.Error(), m)
			}
		})
	}

	opts := validOptions()
	opts.EngineeringModelID = "not-a-uuid"
	assert.ErrorIs(t, opts.Validate(), ErrInvalidOptions)
}

func TestExecute_Files(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, settings.DefaultFileName)

	exportSettings := &settings.ExportSettings{
		Title: "Satellite export",
		SpecificationAttributeDefinitions: &settings.AttributeDefinitions{
			TextAttributeDefinitionID:              "_spec-text",
			NameAttributeDefinitionID:              "_spec-name",
			ForeignModifiedOnAttributeDefinitionID: "_spec-modified",
			ForeignDeletedAttributeDefinitionID:    "_spec-deleted",
		},
		RequirementAttributeDefinitions: &settings.AttributeDefinitions{
			TextAttributeDefinitionID:              "_req-text",
			NameAttributeDefinitionID:              "_req-name",
			ForeignModifiedOnAttributeDefinitionID: "_req-modified",
			ForeignDeletedAttributeDefinitionID:    "_req-deleted",
		},
		AddXhtmlTags: true,
	}
	exportSettings.ExternalIdentifierMap.Add("_req-priority", uuid.MustParse("5c6f1f57-3f0e-4b41-8d7a-1c2e3f4a5b03"))
	exportSettings.ExternalIdentifierMap.Add("_req-status", uuid.MustParse("7e8f9a0b-1c2d-4e3f-8a4b-5c6d7e8f9a05"))

	require.NoError(t, settings.WriteFile(settingsPath, exportSettings))

	opts := Options{
		Username:           "admin",
		Password:           "pass",
		DataSource:         filepath.Join("..", "session", "testdata", "model.json"),
		TemplateSource:     filepath.Join("..", "reqif", "testdata", "template.reqif"),
		TargetReqIF:        filepath.Join(dir, "export.reqif"),
		ExportSettings:     settingsPath,
		EngineeringModelID: modelID,
	}

	result, err := New(opts, WithLogger(quiet())).Execute(context.Background())
	require.NoError(t, err)

	// REQ only; OLD is deprecated. Two groups and three requirements.
	assert.Equal(t, 1, result.Specifications)
	assert.Equal(t, 5, result.SpecObjects)
	assert.FileExists(t, result.ReqIFPath)
	assert.FileExists(t, result.ArchivePath)

	doc, err := reqif.LoadFile(result.ArchivePath)
	require.NoError(t, err)

	assert.Equal(t, "Satellite export", doc.Header.Title)
	assert.Equal(t, builder.RepositoryID(uuid.MustParse(modelID), uuid.MustParse("0b3a4b4c-1f5e-4f56-9a3e-6c1d7c2b9a01")), doc.Header.RepositoryID)
	require.Len(t, doc.CoreContent.Specifications, 1)
	assert.Equal(t, "Requirements", doc.CoreContent.Specifications[0].LongName)
}

func TestAdapters_HonorCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SettingsFiles{}.ReadSettings(ctx, "missing.yaml")
	assert.ErrorIs(t, err, context.Canceled)

	_, err = TemplateFiles{}.LoadTemplate(ctx, "missing.reqif")
	assert.ErrorIs(t, err, context.Canceled)

	_, _, err = DocumentFiles{}.Write(ctx, &reqif.ReqIF{}, "missing.reqif")
	assert.ErrorIs(t, err, context.Canceled)
}
