package docx

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/benjaminschreck/docxkind/pkg/docx/ooxml"
)

// Field is a field found in a part, in either encoding.
type Field struct {
	// Code is the raw instruction text.
	Code        string           `json:"code" yaml:"code"`
	Instruction FieldInstruction `json:"instruction" yaml:"instruction"`
	// Simple is true for w:fldSimple and false for begin/separate/end fields.
	Simple bool `json:"simple" yaml:"simple"`
}

// Bookmark is a w:bookmarkStart.
type Bookmark struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Extent is the size declared by a wp:extent or a:ext, in EMUs.
type Extent struct {
	Kind ooxml.ElementKind `json:"kind" yaml:"kind"`
	CX   int64             `json:"cx" yaml:"cx"`
	CY   int64             `json:"cy" yaml:"cy"`
}

// Summary collects what a template engine needs to know about one part.
type Summary struct {
	// Counts holds start-element counts keyed by ElementKind.String().
	// Unknown elements are not counted.
	Counts            map[string]int `json:"counts" yaml:"counts"`
	Fields            []Field        `json:"fields,omitempty" yaml:"fields,omitempty"`
	Bookmarks         []Bookmark     `json:"bookmarks,omitempty" yaml:"bookmarks,omitempty"`
	UnpairedBookmarks []string       `json:"unpaired_bookmarks,omitempty" yaml:"unpaired_bookmarks,omitempty"`
	ImageRefs         []string       `json:"image_refs,omitempty" yaml:"image_refs,omitempty"`
	HyperlinkRefs     []string       `json:"hyperlink_refs,omitempty" yaml:"hyperlink_refs,omitempty"`
	Extents           []Extent       `json:"extents,omitempty" yaml:"extents,omitempty"`
	// UnterminatedFields counts complex fields still open at end of part.
	UnterminatedFields int `json:"unterminated_fields,omitempty" yaml:"unterminated_fields,omitempty"`
}

// Count returns how many start elements of kind k were seen.
func (s *Summary) Count(k ooxml.ElementKind) int {
	return s.Counts[k.String()]
}

// MergeFields returns the fields whose instruction is a MERGEFIELD.
func (s *Summary) MergeFields() []Field {
	var out []Field
	for _, f := range s.Fields {
		if f.Instruction.IsMergeField() {
			out = append(out, f)
		}
	}
	return out
}

type complexField struct {
	code      strings.Builder
	separated bool
}

// Summarize scans one part and collects its fields, bookmarks, image and
// hyperlink references and extents.
func Summarize(r io.Reader) (*Summary, error) {
	s := &Summary{Counts: make(map[string]int)}
	sc := NewScanner(r)

	var (
		fields []*complexField
		starts = make(map[string]bool)
		ends   = make(map[string]bool)
	)

	for {
		ev, err := sc.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch ev.Type {
		case TextEvent:
			if ev.Kind == ooxml.KindInstructionText && len(fields) > 0 {
				top := fields[len(fields)-1]
				if !top.separated {
					top.code.WriteString(ev.Text)
				}
			}
			continue
		case EndEvent:
			continue
		}

		if ev.Kind == ooxml.KindUnknown {
			continue
		}
		s.Counts[ev.Kind.String()]++

		switch ev.Kind {
		case ooxml.KindSimpleField:
			code, _ := ev.AttrValue(ooxml.NamespaceW, ooxml.AttrInstr)
			s.Fields = append(s.Fields, Field{
				Code:        code,
				Instruction: ParseFieldInstruction(code),
				Simple:      true,
			})

		case ooxml.KindFieldChar:
			typ, _ := ev.AttrValue(ooxml.NamespaceW, ooxml.AttrFldCharType)
			switch typ {
			case ooxml.FieldCharBegin:
				fields = append(fields, &complexField{})
			case ooxml.FieldCharSeparate:
				if len(fields) > 0 {
					fields[len(fields)-1].separated = true
				}
			case ooxml.FieldCharEnd:
				if len(fields) == 0 {
					continue
				}
				top := fields[len(fields)-1]
				fields = fields[:len(fields)-1]
				code := top.code.String()
				s.Fields = append(s.Fields, Field{
					Code:        code,
					Instruction: ParseFieldInstruction(code),
				})
			}

		case ooxml.KindBookmarkStart:
			id, _ := ev.AttrValue(ooxml.NamespaceW, ooxml.AttrID)
			name, _ := ev.AttrValue(ooxml.NamespaceW, ooxml.AttrName)
			s.Bookmarks = append(s.Bookmarks, Bookmark{ID: id, Name: name})
			starts[id] = true

		case ooxml.KindBookmarkEnd:
			id, _ := ev.AttrValue(ooxml.NamespaceW, ooxml.AttrID)
			ends[id] = true

		case ooxml.KindHyperlink:
			if id, ok := ev.AttrValue(ooxml.NamespaceR, ooxml.AttrID); ok {
				s.HyperlinkRefs = append(s.HyperlinkRefs, id)
			}

		case ooxml.KindBlip:
			if id, ok := ev.AttrValue(ooxml.NamespaceR, ooxml.AttrEmbed); ok {
				s.ImageRefs = append(s.ImageRefs, id)
			}

		case ooxml.KindExtent, ooxml.KindExt:
			cx, okX := extentValue(ev, ooxml.AttrCX)
			cy, okY := extentValue(ev, ooxml.AttrCY)
			if okX && okY {
				s.Extents = append(s.Extents, Extent{Kind: ev.Kind, CX: cx, CY: cy})
			}
		}
	}

	s.UnterminatedFields = len(fields)
	s.UnpairedBookmarks = unpaired(starts, ends)
	return s, nil
}

func extentValue(ev Event, attr string) (int64, bool) {
	v, ok := ev.AttrValue("", attr)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func unpaired(starts, ends map[string]bool) []string {
	var ids []string
	for id := range starts {
		if !ends[id] {
			ids = append(ids, id)
		}
	}
	for id := range ends {
		if !starts[id] {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
