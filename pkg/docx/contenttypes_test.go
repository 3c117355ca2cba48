package docx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentTypes(t *testing.T) {
	ct, err := ParseContentTypes([]byte(contentTypesXML))
	require.NoError(t, err)

	assert.Equal(t, "application/xml", ct.Defaults["xml"])
	assert.Equal(t, MainDocumentContentType, ct.Overrides["word/document.xml"])

	assert.Equal(t, MainDocumentContentType, ct.ContentTypeOf("word/document.xml"))
	assert.Equal(t, MainDocumentContentType, ct.ContentTypeOf("/Word/Document.xml"))
	assert.Equal(t, "application/xml", ct.ContentTypeOf("word/styles.xml"))
	assert.Equal(t, "", ct.ContentTypeOf("word/media/image1.png"))
}

func TestParseContentTypes_Errors(t *testing.T) {
	_, err := ParseContentTypes([]byte("<Types"))
	assert.Error(t, err)

	_, err = ParseContentTypes([]byte(`<Relationships/>`))
	assert.Error(t, err)
}

func TestIsMainDocumentContentType(t *testing.T) {
	assert.True(t, IsMainDocumentContentType(MainDocumentContentType))
	assert.True(t, IsMainDocumentContentType(" "+MainTemplateContentType+" "))
	assert.True(t, IsMainDocumentContentType(MainMacroDocContentType))
	assert.True(t, IsMainDocumentContentType(MainMacroTemplContentType))
	assert.False(t, IsMainDocumentContentType("application/xml"))
	assert.False(t, IsMainDocumentContentType("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"))
}
