package docx

import (
	"bytes"
	"fmt"
	"path"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Main-part content types of the word-processing package variants.
const (
	MainDocumentContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	MainTemplateContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.template.main+xml"
	MainMacroDocContentType   = "application/vnd.ms-word.document.macroEnabled.main+xml"
	MainMacroTemplContentType = "application/vnd.ms-word.template.macroEnabledTemplate.main+xml"
)

var mainContentTypes = map[string]bool{
	MainDocumentContentType:   true,
	MainTemplateContentType:   true,
	MainMacroDocContentType:   true,
	MainMacroTemplContentType: true,
}

// IsMainDocumentContentType reports whether ct is one of the word-processing
// main-part content types.
func IsMainDocumentContentType(ct string) bool {
	return mainContentTypes[strings.TrimSpace(ct)]
}

var (
	typesExpr    = xpath.MustCompile("/*[local-name()='Types']")
	defaultExpr  = xpath.MustCompile("/*[local-name()='Types']/*[local-name()='Default']")
	overrideExpr = xpath.MustCompile("/*[local-name()='Types']/*[local-name()='Override']")
)

// ContentTypes is a parsed [Content_Types].xml.
type ContentTypes struct {
	// Defaults maps a lower-cased extension to its content type.
	Defaults map[string]string
	// Overrides maps a lower-cased part name without the leading slash to its
	// content type.
	Overrides map[string]string
}

// ParseContentTypes parses a content-types manifest.
func ParseContentTypes(data []byte) (*ContentTypes, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing content types: %w", err)
	}
	if xmlquery.QuerySelector(root, typesExpr) == nil {
		return nil, fmt.Errorf("parsing content types: missing Types root element")
	}

	ct := &ContentTypes{
		Defaults:  make(map[string]string),
		Overrides: make(map[string]string),
	}
	for _, n := range xmlquery.QuerySelectorAll(root, defaultExpr) {
		ext := strings.ToLower(strings.TrimPrefix(n.SelectAttr("Extension"), "."))
		if ext == "" {
			continue
		}
		ct.Defaults[ext] = n.SelectAttr("ContentType")
	}
	for _, n := range xmlquery.QuerySelectorAll(root, overrideExpr) {
		name := normalizePartName(n.SelectAttr("PartName"))
		if name == "" {
			continue
		}
		ct.Overrides[name] = n.SelectAttr("ContentType")
	}
	return ct, nil
}

// ContentTypeOf resolves the content type of a part: an Override for the part
// name wins, otherwise the Default for its extension applies. Part names
// compare case-insensitively.
func (c *ContentTypes) ContentTypeOf(partName string) string {
	name := normalizePartName(partName)
	if ct, ok := c.Overrides[name]; ok {
		return ct
	}
	ext := strings.TrimPrefix(path.Ext(name), ".")
	return c.Defaults[ext]
}

func normalizePartName(name string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "/"))
}
