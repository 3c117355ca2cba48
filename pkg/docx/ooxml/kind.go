package ooxml

import (
	"encoding/xml"
	"fmt"
)

// ElementKind is the structural role of an element during template processing.
type ElementKind int

const (
	KindUnknown ElementKind = iota
	KindTable
	KindTableRow
	KindParagraph
	KindRun
	KindText
	KindSimpleField
	KindFieldChar
	KindInstructionText
	KindBookmarkStart
	KindBookmarkEnd
	KindHyperlink
	KindRFonts
	KindBlip
	KindExtent
	KindExt
)

var kinds = []ElementKind{
	KindTable,
	KindTableRow,
	KindParagraph,
	KindRun,
	KindText,
	KindSimpleField,
	KindFieldChar,
	KindInstructionText,
	KindBookmarkStart,
	KindBookmarkEnd,
	KindHyperlink,
	KindRFonts,
	KindBlip,
	KindExtent,
	KindExt,
}

// Kinds returns every recognized kind in declaration order. KindUnknown is
// not included. The slice is a copy.
func Kinds() []ElementKind {
	out := make([]ElementKind, len(kinds))
	copy(out, kinds)
	return out
}

var kindNames = [...]string{
	KindUnknown:         "unknown",
	KindTable:           "table",
	KindTableRow:        "table-row",
	KindParagraph:       "paragraph",
	KindRun:             "run",
	KindText:            "text",
	KindSimpleField:     "simple-field",
	KindFieldChar:       "field-char",
	KindInstructionText: "instruction-text",
	KindBookmarkStart:   "bookmark-start",
	KindBookmarkEnd:     "bookmark-end",
	KindHyperlink:       "hyperlink",
	KindRFonts:          "rfonts",
	KindBlip:            "blip",
	KindExtent:          "extent",
	KindExt:             "ext",
}

func (k ElementKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler so kinds render by name in reports.
func (k ElementKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the names
// produced by String, including "unknown".
func (k *ElementKind) UnmarshalText(text []byte) error {
	s := string(text)
	if s == kindNames[KindUnknown] {
		*k = KindUnknown
		return nil
	}
	parsed, ok := ParseKind(s)
	if !ok {
		return fmt.Errorf("unknown element kind %q", s)
	}
	*k = parsed
	return nil
}

// Name returns the expanded name that identifies the kind, or the zero Name for KindUnknown.
func (k ElementKind) Name() xml.Name {
	for name, kind := range elementTable {
		if kind == k {
			return name
		}
	}
	return xml.Name{}
}

// ParseKind returns the kind whose String form is s.
func ParseKind(s string) (ElementKind, bool) {
	for _, k := range kinds {
		if kindNames[k] == s {
			return k, true
		}
	}
	return KindUnknown, false
}
