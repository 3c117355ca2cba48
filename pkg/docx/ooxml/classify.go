package ooxml

import "encoding/xml"

// elementTable is built once at init and never written afterwards, so lookups
// are safe from any number of goroutines.
var elementTable = map[xml.Name]ElementKind{
	{Space: NamespaceW, Local: ElementTable}:           KindTable,
	{Space: NamespaceW, Local: ElementTableRow}:        KindTableRow,
	{Space: NamespaceW, Local: ElementParagraph}:       KindParagraph,
	{Space: NamespaceW, Local: ElementRun}:             KindRun,
	{Space: NamespaceW, Local: ElementText}:            KindText,
	{Space: NamespaceW, Local: ElementSimpleField}:     KindSimpleField,
	{Space: NamespaceW, Local: ElementFieldChar}:       KindFieldChar,
	{Space: NamespaceW, Local: ElementInstructionText}: KindInstructionText,
	{Space: NamespaceW, Local: ElementBookmarkStart}:   KindBookmarkStart,
	{Space: NamespaceW, Local: ElementBookmarkEnd}:     KindBookmarkEnd,
	{Space: NamespaceW, Local: ElementHyperlink}:       KindHyperlink,
	{Space: NamespaceW, Local: ElementRFonts}:          KindRFonts,
	{Space: NamespaceA, Local: ElementBlip}:            KindBlip,
	{Space: NamespaceA, Local: ElementExt}:             KindExt,
	{Space: NamespaceWP, Local: ElementExtent}:         KindExtent,
}

// Classify returns the kind of the element identified by namespace and localName.
// qualifiedName is ignored; prefix spelling never changes the result.
func Classify(namespace, localName, qualifiedName string) ElementKind {
	return elementTable[xml.Name{Space: namespace, Local: localName}]
}

// ClassifyName classifies a name as produced by encoding/xml's Decoder.Token,
// where Space already holds the resolved namespace URI.
func ClassifyName(name xml.Name) ElementKind {
	return elementTable[name]
}

// IsTable reports whether the element is w:tbl.
func IsTable(namespace, localName, qualifiedName string) bool {
	return Classify(namespace, localName, qualifiedName) == KindTable
}

// IsTableRow reports whether the element is w:tr.
func IsTableRow(namespace, localName, qualifiedName string) bool {
	return Classify(namespace, localName, qualifiedName) == KindTableRow
}

// IsParagraph reports whether the element is w:p.
func IsParagraph(namespace, localName, qualifiedName string) bool {
	return Classify(namespace, localName, qualifiedName) == KindParagraph
}

// IsRun reports whether the element is w:r.
func IsRun(namespace, localName, qualifiedName string) bool {
	return Classify(namespace, localName, qualifiedName) == KindRun
}

// IsText reports whether the element is w:t.
func IsText(namespace, localName, qualifiedName string) bool {
	return Classify(namespace, localName, qualifiedName) == KindText
}

// IsSimpleField reports whether the element is w:fldSimple, the compact
// single-element field encoding:
//
//	<w:fldSimple w:instr=" MERGEFIELD  ${name} ">
//	  <w:r><w:t>«${name}»</w:t></w:r>
//	</w:fldSimple>
func IsSimpleField(namespace, localName, qualifiedName string) bool {
	return Classify(namespace, localName, qualifiedName) == KindSimpleField
}

// IsFieldChar reports whether the element is w:fldChar, the begin, separate
// and end markers of a complex field.
func IsFieldChar(namespace, localName, qualifiedName string) bool {
	return Classify(namespace, localName, qualifiedName) == KindFieldChar
}

// IsInstructionText reports whether the element is w:instrText.
func IsInstructionText(namespace, localName, qualifiedName string) bool {
	return Classify(namespace, localName, qualifiedName) == KindInstructionText
}

// IsBookmarkStart reports whether the element is w:bookmarkStart.
func IsBookmarkStart(namespace, localName, qualifiedName string) bool {
	return Classify(namespace, localName, qualifiedName) == KindBookmarkStart
}

// IsBookmarkEnd reports whether the element is w:bookmarkEnd.
func IsBookmarkEnd(namespace, localName, qualifiedName string) bool {
	return Classify(namespace, localName, qualifiedName) == KindBookmarkEnd
}

// IsHyperlink reports whether the element is w:hyperlink.
func IsHyperlink(namespace, localName, qualifiedName string) bool {
	return Classify(namespace, localName, qualifiedName) == KindHyperlink
}

// IsRFonts reports whether the element is w:rFonts.
func IsRFonts(namespace, localName, qualifiedName string) bool {
	return Classify(namespace, localName, qualifiedName) == KindRFonts
}

// IsBlip reports whether the element is a:blip.
func IsBlip(namespace, localName, qualifiedName string) bool {
	return Classify(namespace, localName, qualifiedName) == KindBlip
}

// IsExtent reports whether the element is wp:extent. An "extent" element in
// any other namespace does not match.
func IsExtent(namespace, localName, qualifiedName string) bool {
	return Classify(namespace, localName, qualifiedName) == KindExtent
}

// IsExt reports whether the element is a:ext.
func IsExt(namespace, localName, qualifiedName string) bool {
	return Classify(namespace, localName, qualifiedName) == KindExt
}

// Predicate is the signature shared by the IsXxx functions.
type Predicate func(namespace, localName, qualifiedName string) bool

var predicates = map[ElementKind]Predicate{
	KindTable:           IsTable,
	KindTableRow:        IsTableRow,
	KindParagraph:       IsParagraph,
	KindRun:             IsRun,
	KindText:            IsText,
	KindSimpleField:     IsSimpleField,
	KindFieldChar:       IsFieldChar,
	KindInstructionText: IsInstructionText,
	KindBookmarkStart:   IsBookmarkStart,
	KindBookmarkEnd:     IsBookmarkEnd,
	KindHyperlink:       IsHyperlink,
	KindRFonts:          IsRFonts,
	KindBlip:            IsBlip,
	KindExtent:          IsExtent,
	KindExt:             IsExt,
}

// PredicateFor returns the predicate of kind k. It returns false for
// KindUnknown and out-of-range values.
func PredicateFor(k ElementKind) (Predicate, bool) {
	p, ok := predicates[k]
	return p, ok
}

// Predicates returns a fresh map from each kind to its predicate.
func Predicates() map[ElementKind]Predicate {
	out := make(map[ElementKind]Predicate, len(predicates))
	for k, p := range predicates {
		out[k] = p
	}
	return out
}
