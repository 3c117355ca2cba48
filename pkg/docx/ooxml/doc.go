// Package ooxml classifies WordprocessingML elements by namespace and local name.
//
// A DOCX package is a zip archive of namespaced XML parts. While streaming
// through those parts, template processing only cares about a small set of
// structural elements: paragraphs, runs, text, tables and rows, bookmarks,
// the two encodings of fields, hyperlinks, font declarations and the drawing
// elements that carry images.
//
// # Classification
//
// Classify maps one observed element to an ElementKind:
//
//	kind := ooxml.Classify(ooxml.NamespaceW, "fldSimple", "w:fldSimple")
//	// kind == ooxml.KindSimpleField
//
// Matching is exact on (namespace URI, local name). The qualified name is
// accepted so callers can pass the triple their tokenizer produces, but the
// prefix is never consulted: "w:tbl" and "ns1:tbl" classify the same as long
// as both prefixes are bound to the main namespace.
//
// Elements outside the table classify as KindUnknown. That is not an error;
// unknown elements are passed through untouched by template processing.
//
// # XML Namespaces
//
//   - w:  (NamespaceW)  - main WordprocessingML markup
//   - a:  (NamespaceA)  - DrawingML main
//   - wp: (NamespaceWP) - DrawingML wordprocessing drawing frame
//   - r:  (NamespaceR)  - officeDocument relationships (attributes only)
package ooxml
