// Package richtext implements the compose toolbar as pure transforms over
// plain text and a selection, producing markdown.
package richtext

import (
	"errors"
	"strings"
)

var ErrUnknownCommand = errors.New("richtext: unknown command")

// Selection is a range of rune offsets into the text, End exclusive.
type Selection struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

func (s Selection) clamp(n int) Selection {
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > n {
		s.End = n
	}
	if s.Start > n {
		s.Start = n
	}
	if s.End < s.Start {
		s.End = s.Start
	}
	return s
}

// Formatter is the capability set of the compose toolbar. Every method
// returns the new text and the selection to show afterwards.
type Formatter interface {
	Bold(text string, sel Selection) (string, Selection)
	Italic(text string, sel Selection) (string, Selection)
	Code(text string, sel Selection) (string, Selection)
	Heading(text string, sel Selection, level int) (string, Selection)
	Quote(text string, sel Selection) (string, Selection)
	List(text string, sel Selection, ordered bool) (string, Selection)
	Link(text string, sel Selection, url string) (string, Selection)
	Mention(text string, sel Selection) (string, Selection)
	Formula(text string, sel Selection, expr string) (string, Selection)
}

const (
	CmdBold          = "bold"
	CmdItalic        = "italic"
	CmdCode          = "code"
	CmdHeading1      = "heading1"
	CmdHeading2      = "heading2"
	CmdHeading3      = "heading3"
	CmdQuote         = "quote"
	CmdUnorderedList = "unorderedList"
	CmdOrderedList   = "orderedList"
	CmdLink          = "link"
	CmdMention       = "mention"
	CmdFormula       = "formula"
)

// Apply runs a toolbar command by name. arg is the url of a link or the
// expression of a formula and is ignored otherwise.
func Apply(f Formatter, command string, text string, sel Selection, arg string) (string, Selection, error) {
	switch command {
	case CmdBold:
		text, sel = f.Bold(text, sel)
	case CmdItalic:
		text, sel = f.Italic(text, sel)
	case CmdCode:
		text, sel = f.Code(text, sel)
	case CmdHeading1, CmdHeading2, CmdHeading3:
		text, sel = f.Heading(text, sel, int(command[len(command)-1]-'0'))
	case CmdQuote:
		text, sel = f.Quote(text, sel)
	case CmdUnorderedList:
		text, sel = f.List(text, sel, false)
	case CmdOrderedList:
		text, sel = f.List(text, sel, true)
	case CmdLink:
		text, sel = f.Link(text, sel, strings.TrimSpace(arg))
	case CmdMention:
		text, sel = f.Mention(text, sel)
	case CmdFormula:
		text, sel = f.Formula(text, sel, strings.TrimSpace(arg))
	default:
		return text, sel, ErrUnknownCommand
	}
	return text, sel, nil
}
