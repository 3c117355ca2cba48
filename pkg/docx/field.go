package docx

import (
	"strings"
	"unicode"
)

// MergeFieldType is the field type of a mail-merge placeholder.
const MergeFieldType = "MERGEFIELD"

// FieldSwitch is one switch of a field instruction, e.g. `\* MERGEFORMAT`.
type FieldSwitch struct {
	Flag  string `json:"flag" yaml:"flag"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// FieldInstruction is a parsed field code such as ` MERGEFIELD  name \* MERGEFORMAT `.
type FieldInstruction struct {
	Type     string        `json:"type" yaml:"type"`
	Argument string        `json:"argument,omitempty" yaml:"argument,omitempty"`
	Switches []FieldSwitch `json:"switches,omitempty" yaml:"switches,omitempty"`
}

// IsMergeField reports whether the instruction is a MERGEFIELD.
func (f FieldInstruction) IsMergeField() bool {
	return f.Type == MergeFieldType
}

// switches that consume the following token
var valuedSwitches = map[string]bool{
	`\*`: true,
	`\@`: true,
	`\#`: true,
	`\b`: true,
	`\f`: true,
}

// ParseFieldInstruction splits a field code into its type, first argument and
// switches. Quoted arguments keep their inner spaces. The type is upper-cased.
func ParseFieldInstruction(instr string) FieldInstruction {
	tokens := splitFieldTokens(instr)
	if len(tokens) == 0 {
		return FieldInstruction{}
	}

	fi := FieldInstruction{Type: strings.ToUpper(tokens[0].text)}
	for i := 1; i < len(tokens); i++ {
		tok := tokens[i]
		if !tok.quoted && strings.HasPrefix(tok.text, `\`) {
			sw := FieldSwitch{Flag: tok.text}
			if valuedSwitches[strings.ToLower(tok.text)] && i+1 < len(tokens) {
				sw.Value = tokens[i+1].text
				i++
			}
			fi.Switches = append(fi.Switches, sw)
			continue
		}
		if fi.Argument == "" {
			fi.Argument = tok.text
		}
	}
	return fi
}

type fieldToken struct {
	text   string
	quoted bool
}

func splitFieldTokens(s string) []fieldToken {
	var (
		tokens []fieldToken
		buf    strings.Builder
		inQ    bool
		had    bool
	)
	flush := func(quoted bool) {
		if buf.Len() > 0 || quoted {
			tokens = append(tokens, fieldToken{text: buf.String(), quoted: quoted})
		}
		buf.Reset()
		had = false
	}

	for _, r := range s {
		switch {
		case r == '"':
			if inQ {
				flush(true)
			} else if had {
				flush(false)
			}
			inQ = !inQ
		case inQ:
			buf.WriteRune(r)
		case unicode.IsSpace(r):
			if had {
				flush(false)
			}
		default:
			buf.WriteRune(r)
			had = true
		}
	}
	if inQ {
		flush(true)
	} else if had {
		flush(false)
	}
	return tokens
}
