package session

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqif-exporter/internal/model"
)

var (
	modelID     = uuid.MustParse("9d0c3a1b-77e2-4b8e-8f53-2a6f0c4d1e02")
	iterationID = uuid.MustParse("0b3a4b4c-1f5e-4f56-9a3e-6c1d7c2b9a01")
	group1ID    = uuid.MustParse("c0ffee00-0000-4000-8000-000000000011")
	group2ID    = uuid.MustParse("c0ffee00-0000-4000-8000-000000000012")
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixturePath(t *testing.T) string {
	t.Helper()

	path, err := filepath.Abs(filepath.Join("testdata", "model.json"))
	require.NoError(t, err)

	return path
}

func TestFileRetriever_Retrieve(t *testing.T) {
	it, err := NewFileRetriever(quiet()).Retrieve(context.Background(), Credentials{Username: "admin", DataSource: fixturePath(t)}, modelID)
	require.NoError(t, err)

	assert.Equal(t, iterationID, it.ID)
	assert.Equal(t, 2, it.IterationNumber)
	require.Len(t, it.RequirementsSpecifications, 2)
	require.Len(t, it.ActiveSpecifications(), 1)

	spec := it.RequirementsSpecifications[0]
	assert.Equal(t, "REQ", spec.ShortName)
	assert.Equal(t, "System requirements", spec.FirstDefinition())
	assert.Equal(t, iterationID, spec.IterationID)
	assert.Equal(t, modelID, spec.EngineeringModelID)
	assert.Equal(t, 2024, spec.ModifiedOn.Year())

	require.Len(t, spec.Groups, 2)
	assert.Equal(t, uuid.Nil, spec.Groups[0].ParentID)
	assert.Equal(t, group1ID, spec.Groups[1].ParentID)
	assert.Len(t, spec.TopLevelGroups(), 1)
	assert.Len(t, spec.ChildGroups(group1ID), 1)

	require.Len(t, spec.Requirements, 3)
	assert.Len(t, spec.RequirementsIn(uuid.Nil), 1)
	assert.Len(t, spec.RequirementsIn(group1ID), 1)
	assert.Len(t, spec.RequirementsIn(group2ID), 1)
	assert.True(t, spec.Requirements[2].IsDeprecated)

	req0 := spec.Requirements[0]
	require.Len(t, req0.ParameterValues, 2)

	priority, ok := req0.ParameterValues[0].ParameterType.(*model.QuantityKind)
	require.True(t, ok)
	assert.Equal(t, model.NumberSetInteger, priority.DefaultScale.NumberSet)
	assert.Equal(t, "-5", priority.DefaultScale.MinimumPermissibleValue)
	assert.Equal(t, []string{"7"}, req0.ParameterValues[0].Value)

	status, ok := req0.ParameterValues[1].ParameterType.(*model.EnumerationParameterType)
	require.True(t, ok)
	require.Len(t, status.ValueDefinitions, 2)
	assert.Equal(t, "closed", status.ValueDefinitions[1].Name)

	// Both references resolve to the same parameter type instance.
	comment := spec.Groups[1].ParameterValues[0].ParameterType
	assert.Equal(t, model.KindText, comment.Kind())
}

func TestFileRetriever_FileURI(t *testing.T) {
	uri := "file://" + filepath.ToSlash(fixturePath(t))

	it, err := NewFileRetriever(quiet()).Retrieve(context.Background(), Credentials{DataSource: uri}, modelID)
	require.NoError(t, err)
	assert.Equal(t, iterationID, it.ID)
}

func TestFileRetriever_Errors(t *testing.T) {
	r := NewFileRetriever(quiet())

	_, err := r.Retrieve(context.Background(), Credentials{DataSource: "https://cdp4.example.com"}, modelID)
	require.ErrorIs(t, err, ErrUnsupportedDataSource)

	_, err = r.Retrieve(context.Background(), Credentials{DataSource: fixturePath(t)}, uuid.New())
	require.ErrorIs(t, err, ErrModelNotFound)

	_, err = r.Retrieve(context.Background(), Credentials{DataSource: filepath.Join(t.TempDir(), "missing.json")}, modelID)
	require.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Retrieve(ctx, Credentials{DataSource: fixturePath(t)}, modelID)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDataSourcePath(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "model.json", want: "model.json"},
		{in: "/data/model.json", want: "/data/model.json"},
		{in: "file:///data/model.json", want: filepath.FromSlash("/data/model.json")},
		{in: "file://localhost/data/model.json", want: filepath.FromSlash("/data/model.json")},
		{in: `C:\data\model.json`, want: `C:\data\model.json`},
		{in: "https://cdp4.example.com", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := DataSourcePath(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedDataSource)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_DanglingReferences(t *testing.T) {
	tests := map[string]string{
		"parameter type": `
engineeringModels:
  - id: 9d0c3a1b-77e2-4b8e-8f53-2a6f0c4d1e02
    iterations:
      - id: 0b3a4b4c-1f5e-4f56-9a3e-6c1d7c2b9a01
        iterationNumber: 1
        requirementsSpecifications:
          - id: c0ffee00-0000-4000-8000-000000000001
            shortName: REQ
            requirements:
              - id: c0ffee00-0000-4000-8000-000000000100
                parameterValues:
                  - parameterType: 5c6f1f57-3f0e-4b41-8d7a-1c2e3f4a5b03
                    value: ["1"]
`,
		"group": `
engineeringModels:
  - id: 9d0c3a1b-77e2-4b8e-8f53-2a6f0c4d1e02
    iterations:
      - id: 0b3a4b4c-1f5e-4f56-9a3e-6c1d7c2b9a01
        requirementsSpecifications:
          - id: c0ffee00-0000-4000-8000-000000000001
            requirements:
              - id: c0ffee00-0000-4000-8000-000000000100
                shortName: REQ0
                group: c0ffee00-0000-4000-8000-000000000011
`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.ErrorIs(t, err, ErrDanglingReference)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("  \n"))
	require.ErrorIs(t, err, ErrEmptyDump)

	_, err = Parse([]byte(`parameterTypes: [{id: 5c6f1f57-3f0e-4b41-8d7a-1c2e3f4a5b03, kind: matrix}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matrix")

	_, err = Parse([]byte(`parameterTypes: [{id: 5c6f1f57-3f0e-4b41-8d7a-1c2e3f4a5b03, kind: text}, {id: 5c6f1f57-3f0e-4b41-8d7a-1c2e3f4a5b03, kind: text}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	_, err = Parse([]byte(`engineeringModels: [{id: 9d0c3a1b-77e2-4b8e-8f53-2a6f0c4d1e02, iterations: [{requirementsSpecifications: [{modifiedOn: yesterday}]}]}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yesterday")
}

func TestLatestIteration_AllDeleted(t *testing.T) {
	models := []*model.EngineeringModel{{ID: modelID, Iterations: []*model.Iteration{{IsDeleted: true}}}}

	_, err := LatestIteration(models, modelID)
	require.ErrorIs(t, err, model.ErrNoActiveIteration)
}

func TestCredentials_String(t *testing.T) {
	c := Credentials{Username: "admin", Password: "secret", DataSource: "model.json"}
	assert.NotContains(t, c.String(), "secret")
}
