package docx

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/benjaminschreck/docxkind/pkg/docx/ooxml"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// EventType distinguishes the events a Scanner produces.
type EventType int

const (
	StartEvent EventType = iota
	EndEvent
	TextEvent
)

func (t EventType) String() string {
	switch t {
	case StartEvent:
		return "start"
	case EndEvent:
		return "end"
	case TextEvent:
		return "text"
	default:
		return "unknown"
	}
}

// Event is one classified element boundary, or character data inside an
// element. For text events Kind, Name and QName describe the enclosing element.
type Event struct {
	Type EventType
	Kind ooxml.ElementKind
	// Name.Space holds the resolved namespace URI.
	Name xml.Name
	// QName is prefix:local as written in the part.
	QName string
	// Depth is 1 for the root element.
	Depth int
	// Attr holds resolved attributes on start events.
	Attr []xml.Attr
	Text string
}

// AttrValue returns the value of the attribute with the given namespace URI
// and local name.
func (e Event) AttrValue(namespace, local string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name.Space == namespace && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

type openElement struct {
	name  xml.Name
	qname string
	kind  ooxml.ElementKind
	scope map[string]string
}

// Scanner streams a part and classifies every element. It resolves namespace
// prefixes itself so that the written prefix survives in Event.QName.
//
// A Scanner is not safe for concurrent use; use one per part.
type Scanner struct {
	dec   *xml.Decoder
	stack []openElement
}

// NewScanner returns a scanner reading XML from r.
func NewScanner(r io.Reader) *Scanner {
	dec := xml.NewDecoder(r)
	dec.Entity = map[string]string{}
	return &Scanner{dec: dec}
}

// Next returns the next event. It returns io.EOF once the part is exhausted.
// Comments, processing instructions and whitespace-only text outside any
// element are skipped.
func (s *Scanner) Next() (Event, error) {
	for {
		tok, err := s.dec.RawToken()
		if err != nil {
			if err == io.EOF && len(s.stack) > 0 {
				return Event{}, fmt.Errorf("unexpected EOF: element <%s> not closed", s.stack[len(s.stack)-1].qname)
			}
			return Event{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return s.start(t), nil
		case xml.EndElement:
			return s.end(t)
		case xml.CharData:
			if len(s.stack) == 0 {
				continue
			}
			top := s.stack[len(s.stack)-1]
			return Event{
				Type:  TextEvent,
				Kind:  top.kind,
				Name:  top.name,
				QName: top.qname,
				Depth: len(s.stack),
				Text:  string(t),
			}, nil
		}
	}
}

func (s *Scanner) start(t xml.StartElement) Event {
	scope := s.currentScope()
	declares := false
	for _, a := range t.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			declares = true
			break
		}
	}
	if declares {
		child := make(map[string]string, len(scope)+1)
		for k, v := range scope {
			child[k] = v
		}
		for _, a := range t.Attr {
			switch {
			case a.Name.Space == "xmlns":
				child[a.Name.Local] = a.Value
			case a.Name.Space == "" && a.Name.Local == "xmlns":
				child[""] = a.Value
			}
		}
		scope = child
	}

	qname := qualifiedName(t.Name)
	name := xml.Name{Space: resolve(scope, t.Name.Space, true), Local: t.Name.Local}

	attrs := make([]xml.Attr, 0, len(t.Attr))
	for _, a := range t.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		attrs = append(attrs, xml.Attr{
			Name:  xml.Name{Space: resolve(scope, a.Name.Space, false), Local: a.Name.Local},
			Value: a.Value,
		})
	}

	kind := ooxml.Classify(name.Space, name.Local, qname)
	s.stack = append(s.stack, openElement{name: name, qname: qname, kind: kind, scope: scope})

	return Event{
		Type:  StartEvent,
		Kind:  kind,
		Name:  name,
		QName: qname,
		Depth: len(s.stack),
		Attr:  attrs,
	}
}

func (s *Scanner) end(t xml.EndElement) (Event, error) {
	qname := qualifiedName(t.Name)
	if len(s.stack) == 0 {
		return Event{}, fmt.Errorf("unexpected end element </%s>", qname)
	}
	top := s.stack[len(s.stack)-1]
	if top.qname != qname {
		return Event{}, fmt.Errorf("element <%s> closed by </%s>", top.qname, qname)
	}
	depth := len(s.stack)
	s.stack = s.stack[:len(s.stack)-1]

	return Event{
		Type:  EndEvent,
		Kind:  top.kind,
		Name:  top.name,
		QName: top.qname,
		Depth: depth,
	}, nil
}

func (s *Scanner) currentScope() map[string]string {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1].scope
}

// resolve maps a prefix to its namespace URI. Unprefixed attributes have no
// namespace; unknown prefixes are left as written and so never classify.
func resolve(scope map[string]string, prefix string, element bool) string {
	switch {
	case prefix == "xml":
		return xmlNamespace
	case prefix == "" && !element:
		return ""
	}
	if uri, ok := scope[prefix]; ok {
		return uri
	}
	return prefix
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
