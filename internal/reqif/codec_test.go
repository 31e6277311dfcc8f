package reqif

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTemplate(t *testing.T) *ReqIF {
	t.Helper()

	doc, err := LoadFile(filepath.Join("testdata", "template.reqif"))
	require.NoError(t, err)

	return doc
}

func TestDecode_Template(t *testing.T) {
	doc := loadTemplate(t)

	require.NotNil(t, doc.Header)
	assert.Equal(t, "_header", doc.Header.Identifier)
	assert.Equal(t, "Template", doc.Header.Title)
	assert.Equal(t, "1.0", doc.Header.ReqIFVersion)
	assert.Equal(t, 2024, doc.Header.CreationTime.Year())

	c := doc.CoreContent
	require.Len(t, c.DataTypes, 7)
	require.Len(t, c.SpecTypes, 2)
	require.Len(t, c.SpecObjects, 1)
	require.Len(t, c.Specifications, 1)
	assert.Empty(t, c.SpecRelations)
	assert.Empty(t, c.SpecRelationGroups)
	require.Len(t, doc.ToolExtensions, 1)
	assert.Contains(t, doc.ToolExtensions[0].InnerXML, "<VENDOR-DATA>kept</VENDOR-DATA>")

	integer, ok := c.DataTypes[4].(*DatatypeDefinitionInteger)
	require.True(t, ok)
	require.NotNil(t, integer.Min)
	require.NotNil(t, integer.Max)
	assert.Equal(t, int64(-5), *integer.Min)
	assert.Equal(t, int64(10), *integer.Max)

	realType, ok := c.DataTypes[5].(*DatatypeDefinitionReal)
	require.True(t, ok)
	assert.InDelta(t, -5.102032, *realType.Min, 1e-9)
	assert.InDelta(t, 10.234523423, *realType.Max, 1e-9)
	assert.Equal(t, int64(6), *realType.Accuracy)

	enum, ok := c.DataTypes[6].(*DatatypeDefinitionEnumeration)
	require.True(t, ok)
	require.NotNil(t, enum.AlternativeID)
	assert.Equal(t, "status-source", enum.AlternativeID.Identifier)
	require.Len(t, enum.SpecifiedValues, 2)
	assert.Equal(t, "_dt-enum", enum.SpecifiedValues[1].DatatypeID)
	assert.Equal(t, int64(1), enum.SpecifiedValues[1].Properties.Key)

	objectTypes := SpecTypesOf[*SpecObjectType](c.SpecTypes)
	require.Len(t, objectTypes, 1)
	require.Len(t, objectTypes[0].SpecAttributes, 7)

	status, ok := FindAttributeDefinition(objectTypes[0], "_req-status")
	require.True(t, ok)
	assert.Same(t, enum, status.Datatype())

	obj := c.SpecObjects[0]
	assert.Same(t, objectTypes[0], obj.Type)
	require.Len(t, obj.Values, 4)

	xhtml, ok := obj.Values[0].(*AttributeValueXHTML)
	require.True(t, ok)
	assert.Equal(t, "<xhtml:div>The <xhtml:b>sample</xhtml:b> requirement</xhtml:div>", xhtml.TheValue)

	enumValue, ok := obj.Values[2].(*AttributeValueEnumeration)
	require.True(t, ok)
	require.Len(t, enumValue.Values, 1)
	assert.Equal(t, "closed", enumValue.Values[0].LongName)

	spec := c.Specifications[0]
	require.Len(t, spec.Children, 1)
	assert.Same(t, obj, spec.Children[0].Object)
}

func TestDecode_UnresolvedReference(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "template.reqif"))
	require.NoError(t, err)

	broken := strings.Replace(string(data),
		"<SPEC-OBJECT-TYPE-REF>_object-type</SPEC-OBJECT-TYPE-REF>",
		"<SPEC-OBJECT-TYPE-REF>_missing</SPEC-OBJECT-TYPE-REF>", 1)

	_, err = Decode(strings.NewReader(broken))
	require.ErrorIs(t, err, ErrUnresolvedReference)
}

func TestDecode_KindMismatch(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "template.reqif"))
	require.NoError(t, err)

	broken := strings.Replace(string(data),
		"<DATATYPE-DEFINITION-BOOLEAN-REF>_dt-bool</DATATYPE-DEFINITION-BOOLEAN-REF>",
		"<DATATYPE-DEFINITION-BOOLEAN-REF>_dt-int</DATATYPE-DEFINITION-BOOLEAN-REF>", 1)

	_, err = Decode(strings.NewReader(broken))
	require.ErrorIs(t, err, ErrKindMismatch)
}

func TestDecode_Latin1(t *testing.T) {
	doc := `<?xml version="1.0" encoding="ISO-8859-1"?>
<REQ-IF xmlns="http://www.omg.org/spec/ReqIF/20110401/reqif.xsd">
  <THE-HEADER><REQ-IF-HEADER IDENTIFIER="_h"><TITLE>Gr` + "\xfc" + `n</TITLE></REQ-IF-HEADER></THE-HEADER>
  <CORE-CONTENT><REQ-IF-CONTENT/></CORE-CONTENT>
</REQ-IF>`

	got, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "Grün", got.Header.Title)
}

func TestEncode_RoundTrip(t *testing.T) {
	doc := loadTemplate(t)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `xmlns="`+Namespace+`"`)
	assert.Contains(t, out, `xmlns:xhtml="`+XHTMLNamespace+`"`)
	assert.Contains(t, out, "<THE-VALUE><xhtml:div>The <xhtml:b>sample</xhtml:b> requirement</xhtml:div></THE-VALUE>")

	again, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, doc.Header.Identifier, again.Header.Identifier)
	assert.Equal(t, doc.Header.Title, again.Header.Title)
	assert.Equal(t, doc.Header.Comment, again.Header.Comment)
	assert.True(t, doc.Header.CreationTime.Equal(again.Header.CreationTime))
	require.Len(t, again.CoreContent.DataTypes, len(doc.CoreContent.DataTypes))

	for i, dt := range doc.CoreContent.DataTypes {
		assert.Equal(t, dt.Kind(), again.CoreContent.DataTypes[i].Kind())
		assert.Equal(t, dt.Ident().Identifier, again.CoreContent.DataTypes[i].Ident().Identifier)
		assert.True(t, dt.Ident().LastChange.Equal(again.CoreContent.DataTypes[i].Ident().LastChange))
	}

	require.Len(t, again.CoreContent.SpecObjects, 1)
	assert.Len(t, again.CoreContent.SpecObjects[0].Values, 4)
	require.Len(t, again.ToolExtensions, 1)
}

func TestEncode_PlainTextXHTML(t *testing.T) {
	dt := &DatatypeDefinitionXHTML{Identifiable: Identifiable{Identifier: "_dt"}}
	def := &AttributeDefinitionXHTML{Identifiable: Identifiable{Identifier: "_def"}, Type: dt}
	ot := &SpecObjectType{Identifiable: Identifiable{Identifier: "_ot"}, SpecAttributes: []AttributeDefinition{def}}

	doc := &ReqIF{
		Header: &Header{Identifier: "_h"},
		CoreContent: &Content{
			DataTypes: []DatatypeDefinition{dt},
			SpecTypes: []SpecType{ot},
			SpecObjects: []*SpecObject{{
				Identifiable: Identifiable{Identifier: "_o"},
				Type:         ot,
				Values:       []AttributeValue{&AttributeValueXHTML{Definition: def, TheValue: "a < b & c"}},
			}},
		},
	}

	data, err := Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), "a &lt; b &amp; c")

	again, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	v, ok := again.CoreContent.SpecObjects[0].Values[0].(*AttributeValueXHTML)
	require.True(t, ok)
	assert.Equal(t, "a < b & c", v.TheValue)
}

func TestEncode_NilDocument(t *testing.T) {
	require.ErrorIs(t, Encode(&bytes.Buffer{}, nil), ErrNilDocument)
	require.ErrorIs(t, Encode(&bytes.Buffer{}, &ReqIF{}), ErrNilDocument)
}

func TestWriteFiles(t *testing.T) {
	doc := loadTemplate(t)
	dir := t.TempDir()

	stale := filepath.Join(dir, "out.reqifz")
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o600))

	reqifPath, archivePath, err := WriteFiles(doc, filepath.Join(dir, "out.xml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out.reqif"), reqifPath)
	assert.Equal(t, stale, archivePath)

	plain, err := os.ReadFile(reqifPath)
	require.NoError(t, err)

	zr, err := zip.OpenReader(archivePath)
	require.NoError(t, err)

	defer zr.Close()

	require.Len(t, zr.File, 1)
	assert.Equal(t, "out.reqif", zr.File[0].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)

	var zipped bytes.Buffer
	_, err = zipped.ReadFrom(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	assert.Equal(t, plain, zipped.Bytes())

	fromArchive, err := LoadFile(archivePath)
	require.NoError(t, err)
	assert.Equal(t, doc.Header.Identifier, fromArchive.Header.Identifier)
}

func TestLoadFile_EmptyArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.reqifz")

	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	w, err := zw.Create("readme.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("nothing here"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = LoadFile(path)
	require.ErrorIs(t, err, ErrEmptyArchive)
}
