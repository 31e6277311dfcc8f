package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqif-exporter/internal/reqif"
)

const massID = "3f2c8f5e-1d1c-4b7a-9a57-0c0d7f8e6a11"

func TestRead_JSON(t *testing.T) {
	data := `{
  "title": "  Exported requirements ",
  "requirementAttributeDefinitions": {
    "textAttributeDefinitionId": "_req-text",
    "foreignDeletedAttributeDefinitionId": "_req-deleted",
    "foreignModifiedOnAttributeDefinitionId": "_req-modified",
    "nameAttributeDefinitionId": "_req-name",
  },
  "specificationAttributeDefinitions": {
    "textAttributeDefinitionId": "_spec-text",
  },
  "externalIdentifierMap": [
    { "externalId": "_req-mass", "internalThing": "` + massID + `" },
  ],
  "addXhtmlTags": true,
}`

	s, err := Read([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "Exported requirements", s.Title)
	assert.True(t, s.AddXhtmlTags)

	require.NotNil(t, s.RequirementAttributeDefinitions)
	assert.Equal(t, "_req-text", s.RequirementAttributeDefinitions.TextAttributeDefinitionID)
	assert.Equal(t, "_req-deleted", s.RequirementAttributeDefinitions.ForeignDeletedAttributeDefinitionID)
	assert.Equal(t, "_req-modified", s.RequirementAttributeDefinitions.ForeignModifiedOnAttributeDefinitionID)
	assert.Equal(t, "_req-name", s.RequirementAttributeDefinitions.NameAttributeDefinitionID)

	require.NotNil(t, s.SpecificationAttributeDefinitions)
	assert.Equal(t, "_spec-text", s.SpecificationAttributeDefinitions.TextAttributeDefinitionID)
	assert.Empty(t, s.SpecificationAttributeDefinitions.NameAttributeDefinitionID)

	require.Len(t, s.ExternalIdentifierMap.Correspondence, 1)
	assert.Equal(t, []string{"_req-mass"}, s.ExternalIdentifierMap.Lookup(uuid.MustParse(massID)))
}

func TestRead_WrappedCorrespondence(t *testing.T) {
	data := `{
  "title": "T",
  "externalIdentifierMap": {
    "name": "map",
    "correspondence": [
      { "externalId": "_a", "internalThing": "` + massID + `" },
      { "externalId": "_b", "internalThing": "` + massID + `" }
    ]
  }
}`

	s, err := Read([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"_a", "_b"}, s.ExternalIdentifierMap.Lookup(uuid.MustParse(massID)))
	assert.Nil(t, s.RequirementAttributeDefinitions)
}

func TestRead_NullCorrespondence(t *testing.T) {
	s, err := Read([]byte(`{"title": "T", "externalIdentifierMap": null}`))
	require.NoError(t, err)
	assert.Empty(t, s.ExternalIdentifierMap.Correspondence)
}

func TestRead_BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"title": "with bom"}`)...)

	s, err := Read(data)
	require.NoError(t, err)
	assert.Equal(t, "with bom", s.Title)
}

func TestRead_YAML(t *testing.T) {
	data := `
title: yaml settings
addXhtmlTags: false
requirementAttributeDefinitions:
  nameAttributeDefinitionId: _req-name
externalIdentifierMap:
  - externalId: _req-mass
    internalThing: ` + massID + `
`

	s, err := Read([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, "yaml settings", s.Title)
	assert.False(t, s.AddXhtmlTags)
	assert.Equal(t, "_req-name", s.RequirementAttributeDefinitions.NameAttributeDefinitionID)
	require.Len(t, s.ExternalIdentifierMap.Correspondence, 1)
}

func TestRead_Errors(t *testing.T) {
	_, err := Read(nil)
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Read([]byte("   \n"))
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Read([]byte(`{"externalIdentifierMap": "nope"}`))
	require.Error(t, err)

	_, err = Read([]byte(`{"externalIdentifierMap": [{"externalId": "_a", "internalThing": "not-a-uuid"}]}`))
	require.Error(t, err)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	s := &ExportSettings{
		Title:                           "round trip",
		RequirementAttributeDefinitions: &AttributeDefinitions{TextAttributeDefinitionID: "_req-text"},
		AddXhtmlTags:                    true,
	}
	s.ExternalIdentifierMap.Add("_req-mass", uuid.MustParse(massID))

	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, WriteFile(path, s))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"correspondence"`)
	assert.Contains(t, string(raw), `"internalThing": "`+massID+`"`)

	again, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestAttributeDefinitions_Roles(t *testing.T) {
	var nilDefs *AttributeDefinitions
	assert.Nil(t, nilDefs.Roles())

	defs := &AttributeDefinitions{
		TextAttributeDefinitionID:              "t",
		ForeignModifiedOnAttributeDefinitionID: "m",
		NameAttributeDefinitionID:              "n",
		ForeignDeletedAttributeDefinitionID:    "d",
	}

	var order []Role
	var ids []string

	for _, r := range defs.Roles() {
		order = append(order, r.Role)
		ids = append(ids, r.ID)
	}

	assert.Equal(t, []Role{RoleText, RoleModifiedOn, RoleName, RoleDeleted}, order)
	assert.Equal(t, []string{"t", "m", "n", "d"}, ids)
}

func TestValidate(t *testing.T) {
	s := &ExportSettings{}
	s.ExternalIdentifierMap.Add("", uuid.MustParse(massID))
	s.ExternalIdentifierMap.Add("_x", uuid.Nil)

	diags := s.Validate()
	require.True(t, diags.HasErrors())
	require.Len(t, diags.Errors, 2)
	assert.Equal(t, "empty-external-id", diags.Errors[0].Code)
	assert.Equal(t, "empty-internal-thing", diags.Errors[1].Code)
	assert.Len(t, diags.Warnings, 2)
	assert.Len(t, diags.Infos, 1)
}

func loadTemplate(t *testing.T) *reqif.ReqIF {
	t.Helper()

	doc, err := reqif.LoadFile(filepath.Join("..", "reqif", "testdata", "template.reqif"))
	require.NoError(t, err)

	return doc
}

func TestCheck_Clean(t *testing.T) {
	s := &ExportSettings{
		Title: "ok",
		RequirementAttributeDefinitions: &AttributeDefinitions{
			TextAttributeDefinitionID:              "_req-text",
			ForeignDeletedAttributeDefinitionID:    "_req-deleted",
			ForeignModifiedOnAttributeDefinitionID: "_req-modified",
			NameAttributeDefinitionID:              "_req-name",
		},
		SpecificationAttributeDefinitions: &AttributeDefinitions{
			TextAttributeDefinitionID: "_spec-text",
			NameAttributeDefinitionID: "_spec-name",
		},
	}
	s.ExternalIdentifierMap.Add("_req-mass", uuid.MustParse(massID))

	diags := s.Check(loadTemplate(t))
	assert.Zero(t, diags.Len(), diags.All())
}

func TestCheck_Unresolved(t *testing.T) {
	s := &ExportSettings{
		RequirementAttributeDefinitions: &AttributeDefinitions{
			NameAttributeDefinitionID: "_req-nmae",
			TextAttributeDefinitionID: "_spec-text",
		},
		SpecificationAttributeDefinitions: &AttributeDefinitions{
			ForeignDeletedAttributeDefinitionID: "_spec-text",
		},
	}
	s.ExternalIdentifierMap.Add("_req-mas", uuid.MustParse(massID))

	diags := s.Check(loadTemplate(t))
	require.False(t, diags.HasErrors())
	require.Len(t, diags.Warnings, 4)

	byPath := map[string]string{}
	for _, w := range diags.Warnings {
		byPath[w.Subject+"/"+w.Path] = w.Code
	}

	assert.Equal(t, "incompatible-attribute", byPath["specificationAttributeDefinitions/foreignDeletedAttributeDefinitionId"])
	assert.Equal(t, "unresolved-attribute", byPath["requirementAttributeDefinitions/textAttributeDefinitionId"])
	assert.Equal(t, "unresolved-attribute", byPath["requirementAttributeDefinitions/nameAttributeDefinitionId"])
	assert.Equal(t, "unresolved-correspondence", byPath["externalIdentifierMap/correspondence[0]"])

	for _, w := range diags.Warnings {
		switch w.Path {
		case "nameAttributeDefinitionId":
			assert.Equal(t, "_req-name", w.Suggestions[0])
		case "textAttributeDefinitionId":
			assert.Contains(t, w.Message, "belongs to another spec type")
		case "correspondence[0]":
			assert.Equal(t, "_req-mass", w.Suggestions[0])
		}
	}
}

func TestCheck_MissingTypes(t *testing.T) {
	s := &ExportSettings{}

	diags := s.Check(&reqif.ReqIF{CoreContent: &reqif.Content{}})
	require.Len(t, diags.Errors, 2)

	diags = s.Check(nil)
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "missing-template", diags.Errors[0].Code)
}

func TestAccepts(t *testing.T) {
	assert.True(t, Accepts(RoleText, reqif.DatatypeXHTML))
	assert.True(t, Accepts(RoleName, reqif.DatatypeString))
	assert.False(t, Accepts(RoleName, reqif.DatatypeInteger))
	assert.True(t, Accepts(RoleModifiedOn, reqif.DatatypeDate))
	assert.True(t, Accepts(RoleDeleted, reqif.DatatypeBoolean))
	assert.False(t, Accepts(RoleDeleted, reqif.DatatypeString))
	assert.False(t, Accepts(Role("other"), reqif.DatatypeString))
}
