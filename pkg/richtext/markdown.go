package richtext

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	_ Formatter = Markdown{}

	headingPrefix   = regexp.MustCompile(`^(#{1,6}) `)
	orderedPrefix   = regexp.MustCompile(`^\d+\. `)
	unorderedPrefix = regexp.MustCompile(`^[-*] `)
)

// Markdown formats with markdown tokens. Inline styles and block styles
// toggle off when applied twice.
type Markdown struct{}

func (Markdown) Bold(text string, sel Selection) (string, Selection) {
	return toggleInline(text, sel, "**", true)
}

func (Markdown) Italic(text string, sel Selection) (string, Selection) {
	return toggleInline(text, sel, "_", true)
}

// Code needs a selection, there is nothing to mark up otherwise.
func (Markdown) Code(text string, sel Selection) (string, Selection) {
	return toggleInline(text, sel, "`", false)
}

func (Markdown) Heading(text string, sel Selection, level int) (string, Selection) {
	if level < 1 {
		level = 1
	} else if level > 6 {
		level = 6
	}
	marker := strings.Repeat("#", level)
	return mapLines(text, sel, func(lines []string) []string {
		for i, line := range lines {
			current := ""
			if m := headingPrefix.FindStringSubmatch(line); m != nil {
				current = m[1]
				line = line[len(m[0]):]
			}
			if current != marker {
				line = marker + " " + line
			}
			lines[i] = line
		}
		return lines
	})
}

func (Markdown) Quote(text string, sel Selection) (string, Selection) {
	return mapLines(text, sel, func(lines []string) []string {
		quoted := true
		for _, line := range lines {
			if !strings.HasPrefix(line, "> ") {
				quoted = false
				break
			}
		}
		for i, line := range lines {
			if quoted {
				lines[i] = strings.TrimPrefix(line, "> ")
			} else if !strings.HasPrefix(line, "> ") {
				lines[i] = "> " + line
			}
		}
		return lines
	})
}

func (Markdown) List(text string, sel Selection, ordered bool) (string, Selection) {
	target := unorderedPrefix
	if ordered {
		target = orderedPrefix
	}
	return mapLines(text, sel, func(lines []string) []string {
		listed := true
		for _, line := range lines {
			if !target.MatchString(line) {
				listed = false
				break
			}
		}
		for i, line := range lines {
			line = orderedPrefix.ReplaceAllString(line, "")
			line = unorderedPrefix.ReplaceAllString(line, "")
			if !listed {
				if ordered {
					line = strconv.Itoa(i+1) + ". " + line
				} else {
					line = "- " + line
				}
			}
			lines[i] = line
		}
		return lines
	})
}

// Link uses the selection as label, or the url itself when nothing is selected.
func (Markdown) Link(text string, sel Selection, url string) (string, Selection) {
	r := []rune(text)
	sel = sel.clamp(len(r))
	if url == "" {
		return text, sel
	}
	label := string(r[sel.Start:sel.End])
	if label == "" {
		label = url
	}
	inserted := "[" + label + "](" + url + ")"
	start := sel.Start + 1
	return replace(r, sel, inserted), Selection{Start: start, End: start + len([]rune(label))}
}

func (Markdown) Mention(text string, sel Selection) (string, Selection) {
	return insert(text, sel, "@")
}

func (Markdown) Formula(text string, sel Selection, expr string) (string, Selection) {
	if expr == "" {
		r := []rune(text)
		return text, sel.clamp(len(r))
	}
	return insert(text, sel, "$"+expr+"$")
}

func toggleInline(text string, sel Selection, marker string, allowEmpty bool) (string, Selection) {
	r := []rune(text)
	sel = sel.clamp(len(r))
	m := []rune(marker)
	n := len(m)

	if sel.IsEmpty() {
		if !allowEmpty {
			return text, sel
		}
		out := string(r[:sel.Start]) + marker + marker + string(r[sel.Start:])
		cursor := sel.Start + n
		return out, Selection{Start: cursor, End: cursor}
	}

	// markers just outside the selection
	if sel.Start >= n && sel.End+n <= len(r) &&
		string(r[sel.Start-n:sel.Start]) == marker && string(r[sel.End:sel.End+n]) == marker {
		out := string(r[:sel.Start-n]) + string(r[sel.Start:sel.End]) + string(r[sel.End+n:])
		return out, Selection{Start: sel.Start - n, End: sel.End - n}
	}
	// markers inside the selection
	if sel.End-sel.Start >= 2*n &&
		string(r[sel.Start:sel.Start+n]) == marker && string(r[sel.End-n:sel.End]) == marker {
		out := string(r[:sel.Start]) + string(r[sel.Start+n:sel.End-n]) + string(r[sel.End:])
		return out, Selection{Start: sel.Start, End: sel.End - 2*n}
	}

	out := string(r[:sel.Start]) + marker + string(r[sel.Start:sel.End]) + marker + string(r[sel.End:])
	return out, Selection{Start: sel.Start + n, End: sel.End + n}
}

// mapLines rewrites every line the selection touches and selects the result.
func mapLines(text string, sel Selection, fn func([]string) []string) (string, Selection) {
	r := []rune(text)
	sel = sel.clamp(len(r))

	start := sel.Start
	for start > 0 && r[start-1] != '\n' {
		start--
	}
	end := sel.End
	if end > sel.Start && r[end-1] == '\n' {
		end--
	}
	for end < len(r) && r[end] != '\n' {
		end++
	}

	block := strings.Join(fn(strings.Split(string(r[start:end]), "\n")), "\n")
	out := string(r[:start]) + block + string(r[end:])
	return out, Selection{Start: start, End: start + len([]rune(block))}
}

func insert(text string, sel Selection, s string) (string, Selection) {
	r := []rune(text)
	sel = sel.clamp(len(r))
	cursor := sel.Start + len([]rune(s))
	return replace(r, sel, s), Selection{Start: cursor, End: cursor}
}

func replace(r []rune, sel Selection, s string) string {
	return string(r[:sel.Start]) + s + string(r[sel.End:])
}
