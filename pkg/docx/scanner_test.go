package docx

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/docxkind/pkg/docx/ooxml"
)

func collectEvents(t *testing.T, input string) []Event {
	t.Helper()
	sc := NewScanner(strings.NewReader(input))
	var events []Event
	for {
		ev, err := sc.Next()
		if err == io.EOF {
			return events
		}
		require.NoError(t, err)
		events = append(events, ev)
	}
}

func TestScanner_ResolvesPrefixes(t *testing.T) {
	input := `<ns1:document xmlns:ns1="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<ns1:tbl><ns1:tr/></ns1:tbl></ns1:document>`

	var starts []Event
	for _, ev := range collectEvents(t, input) {
		if ev.Type == StartEvent {
			starts = append(starts, ev)
		}
	}
	require.Len(t, starts, 3)

	assert.Equal(t, ooxml.KindUnknown, starts[0].Kind)
	assert.Equal(t, "ns1:tbl", starts[1].QName)
	assert.Equal(t, ooxml.NamespaceW, starts[1].Name.Space)
	assert.Equal(t, ooxml.KindTable, starts[1].Kind)
	assert.Equal(t, 2, starts[1].Depth)
	assert.Equal(t, ooxml.KindTableRow, starts[2].Kind)
	assert.Equal(t, 3, starts[2].Depth)
}

func TestScanner_SelfClosingEmitsEnd(t *testing.T) {
	input := `<w:p xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:bookmarkEnd w:id="0"/></w:p>`
	events := collectEvents(t, input)
	require.Len(t, events, 4)

	assert.Equal(t, StartEvent, events[1].Type)
	assert.Equal(t, EndEvent, events[2].Type)
	assert.Equal(t, ooxml.KindBookmarkEnd, events[2].Kind)
	assert.Equal(t, EndEvent, events[3].Type)
	assert.Equal(t, ooxml.KindParagraph, events[3].Kind)
}

func TestScanner_DefaultNamespaceAndScope(t *testing.T) {
	input := `<root xmlns:w="urn:other">
  <w:p/>
  <body xmlns="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
    <p/><w:p/>
  </body>
  <w:p/>
</root>`

	var kinds []ooxml.ElementKind
	for _, ev := range collectEvents(t, input) {
		if ev.Type == StartEvent {
			kinds = append(kinds, ev.Kind)
		}
	}
	assert.Equal(t, []ooxml.ElementKind{
		ooxml.KindUnknown,   // root
		ooxml.KindUnknown,   // w:p bound to urn:other
		ooxml.KindUnknown,   // body
		ooxml.KindParagraph, // p in default namespace
		ooxml.KindParagraph, // w:p rebound
		ooxml.KindUnknown,   // w:p back in outer scope
	}, kinds)
}

func TestScanner_Attributes(t *testing.T) {
	input := `<w:fldSimple xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" w:instr=" MERGEFIELD name " plain="1"/>`
	events := collectEvents(t, input)
	require.NotEmpty(t, events)

	ev := events[0]
	assert.Equal(t, ooxml.KindSimpleField, ev.Kind)
	instr, ok := ev.AttrValue(ooxml.NamespaceW, "instr")
	assert.True(t, ok)
	assert.Equal(t, " MERGEFIELD name ", instr)

	plain, ok := ev.AttrValue("", "plain")
	assert.True(t, ok)
	assert.Equal(t, "1", plain)

	for _, a := range ev.Attr {
		assert.NotEqual(t, "xmlns", a.Name.Space)
	}
}

func TestScanner_Text(t *testing.T) {
	input := `<w:t xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">a &amp; b</w:t>`
	events := collectEvents(t, input)
	require.Len(t, events, 3)
	assert.Equal(t, TextEvent, events[1].Type)
	assert.Equal(t, ooxml.KindText, events[1].Kind)
	assert.Equal(t, "a & b", events[1].Text)
}

func TestScanner_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"mismatched end", `<a><b></a>`},
		{"unclosed", `<a><b></b>`},
		{"syntax", `<a <b>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := NewScanner(strings.NewReader(tt.input))
			var err error
			for err == nil {
				_, err = sc.Next()
			}
			assert.NotEqual(t, io.EOF, err)
		})
	}
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "start", StartEvent.String())
	assert.Equal(t, "end", EndEvent.String())
	assert.Equal(t, "text", TextEvent.String())
	assert.Equal(t, "unknown", EventType(9).String())
}
