package ooxml

// Namespace URIs. Comparison against these is exact.
const (
	NamespaceW  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NamespaceA  = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NamespaceWP = "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"
	NamespaceR  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Local element names in NamespaceW.
const (
	ElementTable           = "tbl"
	ElementTableRow        = "tr"
	ElementParagraph       = "p"
	ElementRun             = "r"
	ElementText            = "t"
	ElementSimpleField     = "fldSimple"
	ElementFieldChar       = "fldChar"
	ElementInstructionText = "instrText"
	ElementBookmarkStart   = "bookmarkStart"
	ElementBookmarkEnd     = "bookmarkEnd"
	ElementHyperlink       = "hyperlink"
	ElementRFonts          = "rFonts"
)

// Local element names in the drawing namespaces.
const (
	ElementBlip   = "blip"   // NamespaceA
	ElementExt    = "ext"    // NamespaceA
	ElementExtent = "extent" // NamespaceWP
)

// Attribute local names read by the scanner.
const (
	AttrInstr       = "instr"       // w:fldSimple/@w:instr
	AttrFldCharType = "fldCharType" // w:fldChar/@w:fldCharType
	AttrID          = "id"          // w:bookmarkStart/@w:id, w:hyperlink/@r:id
	AttrName        = "name"        // w:bookmarkStart/@w:name
	AttrEmbed       = "embed"       // a:blip/@r:embed
	AttrCX          = "cx"          // wp:extent/@cx, a:ext/@cx
	AttrCY          = "cy"          // wp:extent/@cy, a:ext/@cy
)

// Values of w:fldChar/@w:fldCharType.
const (
	FieldCharBegin    = "begin"
	FieldCharSeparate = "separate"
	FieldCharEnd      = "end"
)
