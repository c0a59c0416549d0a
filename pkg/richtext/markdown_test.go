package richtext

import (
	"errors"
	"testing"
)

func TestInline(t *testing.T) {
	md := Markdown{}
	for _, data := range []struct {
		name   string
		fn     func(string, Selection) (string, Selection)
		text   string
		sel    Selection
		expect string
		expSel Selection
	}{
		{"bold wraps", md.Bold, "Shubho Mahalaya", Selection{0, 6}, "**Shubho** Mahalaya", Selection{2, 8}},
		{"bold unwraps outside", md.Bold, "**Shubho** Mahalaya", Selection{2, 8}, "Shubho Mahalaya", Selection{0, 6}},
		{"bold unwraps inside", md.Bold, "**Shubho** Mahalaya", Selection{0, 10}, "Shubho Mahalaya", Selection{0, 6}},
		{"bold empty", md.Bold, "ab", Selection{1, 1}, "a****b", Selection{3, 3}},
		{"italic", md.Italic, "dhak", Selection{0, 4}, "_dhak_", Selection{1, 5}},
		{"code", md.Code, "run go test", Selection{4, 11}, "run `go test`", Selection{5, 12}},
		{"code empty", md.Code, "text", Selection{2, 2}, "text", Selection{2, 2}},
		{"reversed selection", md.Bold, "abc", Selection{3, 1}, "a**bc**", Selection{3, 5}},
		{"out of range", md.Bold, "abc", Selection{-4, 99}, "**abc**", Selection{2, 5}},
		{"bengali runes", md.Bold, "শুভ পূজা", Selection{0, 3}, "**শুভ** পূজা", Selection{2, 5}},
		{"mention", md.Mention, "hi ", Selection{3, 3}, "hi @", Selection{4, 4}},
		{"mention replaces selection", md.Mention, "hi you", Selection{3, 6}, "hi @", Selection{4, 4}},
	} {
		text, sel := data.fn(data.text, data.sel)
		if text != data.expect || sel != data.expSel {
			t.Errorf("%s: want %q %v but got %q %v", data.name, data.expect, data.expSel, text, sel)
		}
	}
}

func TestBlocks(t *testing.T) {
	md := Markdown{}
	for _, data := range []struct {
		name   string
		fn     func(string, Selection) (string, Selection)
		text   string
		sel    Selection
		expect string
		expSel Selection
	}{
		{"heading", func(s string, sel Selection) (string, Selection) { return md.Heading(s, sel, 1) }, "Title\nbody", Selection{2, 2}, "# Title\nbody", Selection{0, 7}},
		{"heading toggles off", func(s string, sel Selection) (string, Selection) { return md.Heading(s, sel, 2) }, "## Title", Selection{4, 4}, "Title", Selection{0, 5}},
		{"heading changes level", func(s string, sel Selection) (string, Selection) { return md.Heading(s, sel, 3) }, "# Title", Selection{0, 0}, "### Title", Selection{0, 9}},
		{"quote lines", md.Quote, "a\nb\nc", Selection{0, 3}, "> a\n> b\nc", Selection{0, 7}},
		{"quote toggles off", md.Quote, "> a\n> b", Selection{0, 7}, "a\nb", Selection{0, 3}},
		{"unordered", func(s string, sel Selection) (string, Selection) { return md.List(s, sel, false) }, "x\ny", Selection{0, 3}, "- x\n- y", Selection{0, 7}},
		{"ordered", func(s string, sel Selection) (string, Selection) { return md.List(s, sel, true) }, "x\ny", Selection{0, 3}, "1. x\n2. y", Selection{0, 9}},
		{"ordered from unordered", func(s string, sel Selection) (string, Selection) { return md.List(s, sel, true) }, "- x", Selection{0, 3}, "1. x", Selection{0, 4}},
		{"ordered toggles off", func(s string, sel Selection) (string, Selection) { return md.List(s, sel, true) }, "1. x\n2. y", Selection{0, 9}, "x\ny", Selection{0, 3}},
	} {
		text, sel := data.fn(data.text, data.sel)
		if text != data.expect || sel != data.expSel {
			t.Errorf("%s: want %q %v but got %q %v", data.name, data.expect, data.expSel, text, sel)
		}
	}
}

func TestLinkAndFormula(t *testing.T) {
	md := Markdown{}
	text, sel := md.Link("visit pandal", Selection{6, 12}, "https://pujogallery.com")
	if text != "visit [pandal](https://pujogallery.com)" || sel != (Selection{7, 13}) {
		t.Errorf("link: got %q %v", text, sel)
	}
	text, sel = md.Link("see ", Selection{4, 4}, "https://x.in")
	if text != "see [https://x.in](https://x.in)" || sel != (Selection{5, 17}) {
		t.Errorf("bare link: got %q %v", text, sel)
	}
	if text, _ = md.Link("unchanged", Selection{0, 2}, ""); text != "unchanged" {
		t.Errorf("empty url should not change text: %q", text)
	}
	text, sel = md.Formula("area ", Selection{5, 5}, `\pi r^2`)
	if text != `area $\pi r^2$` || sel != (Selection{14, 14}) {
		t.Errorf("formula: got %q %v", text, sel)
	}
}

func TestApply(t *testing.T) {
	text, sel, err := Apply(Markdown{}, CmdHeading2, "Sandhi Puja", Selection{0, 0}, "")
	if err != nil || text != "## Sandhi Puja" || sel != (Selection{0, 14}) {
		t.Errorf("heading2: %q %v %v", text, sel, err)
	}
	text, _, err = Apply(Markdown{}, CmdBold, "ab", Selection{0, 2}, "")
	if err != nil || text != "**ab**" {
		t.Errorf("bold: %q %v", text, err)
	}
	if _, _, err = Apply(Markdown{}, "strike", "ab", Selection{}, ""); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("want ErrUnknownCommand but got %v", err)
	}
}
