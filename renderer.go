package argmatch

import (
	"io"
	"strings"
	"unicode/utf8"

	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/napalu/argmatch/internal/util"
	"github.com/napalu/argmatch/types"
)

const (
	defaultUsageTitle     = "USAGE"
	defaultArgumentsTitle = "ARGUMENTS"
	defaultOptionsTitle   = "OPTIONS"
	indent                = "  "
	maxNameWidth          = 30
)

// WriteHelp writes the help text to w. The text consists of the initial text, the usage, the about
// text, the sections listing arguments and options and the final text. Each block can be replaced
// or removed with SetText.
func (p *Parser) WriteHelp(w io.Writer) error {
	_, err := io.WriteString(w, newRenderer(p).help())
	return err
}

func (p *Parser) writeErrorUsage(w io.Writer) error {
	r := newRenderer(p)
	var b strings.Builder
	if text, found := p.texts[types.TextErrorUsage]; found {
		r.paragraph(&b, text, "")
	} else {
		r.usage(&b)
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// helpEntry is one line of a section: the argument name or option flags and the help text
type helpEntry struct {
	name string
	text string
}

type renderer struct {
	parser *Parser
	width  int
}

func newRenderer(p *Parser) *renderer {
	width := p.lineWidth
	if width <= 0 {
		width = util.TerminalWidth()
	}

	return &renderer{parser: p, width: width}
}

func (r *renderer) text(id types.TextID, def string) string {
	if text, found := r.parser.texts[id]; found {
		return text
	}

	return def
}

func (r *renderer) help() string {
	var b strings.Builder
	r.paragraph(&b, r.text(types.TextInitial, ""), "")
	r.usage(&b)
	r.paragraph(&b, r.text(types.TextAbout, ""), "")
	r.sections(&b)
	r.paragraph(&b, r.text(types.TextFinal, ""), "")

	return b.String()
}

func (r *renderer) paragraph(b *strings.Builder, text, prefix string) {
	if text == "" {
		return
	}
	for _, line := range util.Wrap(text, r.width-len(prefix)) {
		b.WriteString(prefix + line + "\n")
	}
}

func (r *renderer) usage(b *strings.Builder) {
	custom, found := r.parser.texts[types.TextUsage]
	if found && custom == "" {
		return
	}

	if title := r.text(types.TextUsageTitle, defaultUsageTitle); title != "" {
		b.WriteString(title + "\n")
	}
	if found {
		r.paragraph(b, custom, indent)
		return
	}

	prog := r.parser.programName
	line := indent + prog
	continuation := strings.Repeat(" ", utf8.RuneCountInString(line)+1)
	for _, item := range r.usageItems() {
		if utf8.RuneCountInString(line)+1+utf8.RuneCountInString(item) > r.width && strings.TrimSpace(line) != "" {
			b.WriteString(line + "\n")
			line = continuation + item
			continue
		}
		if strings.TrimSpace(line) == "" {
			line += item
		} else {
			line += " " + item
		}
	}
	b.WriteString(line + "\n")
}

func (r *renderer) usageItems() []string {
	var items []string
	for _, o := range r.parser.options {
		if !o.visibility.InUsage() {
			continue
		}
		item := o.flags[0]
		if o.TakesValue() {
			item += " " + o.meta
		}
		if !o.mandatory {
			item = "[" + item + "]"
		}
		items = append(items, item)
	}

	for _, a := range r.parser.arguments {
		if !a.visibility.InUsage() {
			continue
		}
		item := a.DisplayName()
		if a.min == 0 {
			item = "[" + item + "]"
		}
		if a.max > 1 {
			item += "..."
		}
		items = append(items, item)
	}

	return items
}

// sections groups the visible definitions by section, in the order sections are first used
func (r *renderer) sections(b *strings.Builder) {
	sections := orderedmap.New()
	add := func(section string, entry helpEntry) {
		entries, _ := sections.Get(section)
		list, _ := entries.([]helpEntry)
		sections.Set(section, append(list, entry))
	}

	argumentsTitle := r.text(types.TextArgumentsTitle, defaultArgumentsTitle)
	for _, a := range r.parser.arguments {
		if !a.visibility.InText() {
			continue
		}
		add(sectionOf(a.section, argumentsTitle), helpEntry{name: a.DisplayName(), text: a.text})
	}

	optionsTitle := r.text(types.TextOptionsTitle, defaultOptionsTitle)
	for _, o := range r.parser.options {
		if !o.visibility.InText() {
			continue
		}
		name := o.DisplayName()
		if o.TakesValue() {
			name += " " + o.meta
		}
		add(sectionOf(o.section, optionsTitle), helpEntry{name: name, text: o.text})
	}

	nameWidth := 0
	for pair := sections.Oldest(); pair != nil; pair = pair.Next() {
		for _, e := range pair.Value.([]helpEntry) {
			if n := utf8.RuneCountInString(e.name); n > nameWidth && n <= maxNameWidth {
				nameWidth = n
			}
		}
	}

	for pair := sections.Oldest(); pair != nil; pair = pair.Next() {
		if title := pair.Key.(string); title != "" {
			b.WriteString(title + "\n")
		}
		for _, e := range pair.Value.([]helpEntry) {
			r.entry(b, e, nameWidth)
		}
	}
}

func sectionOf(section, def string) string {
	if section != "" {
		return section
	}

	return def
}

func (r *renderer) entry(b *strings.Builder, e helpEntry, nameWidth int) {
	name := indent + e.name
	if e.text == "" {
		b.WriteString(name + "\n")
		return
	}

	textIndent := strings.Repeat(" ", len(indent)+nameWidth+len(indent))
	lines := util.Wrap(e.text, r.width-len(textIndent))
	if utf8.RuneCountInString(e.name) > nameWidth {
		b.WriteString(name + "\n")
	} else {
		padding := strings.Repeat(" ", nameWidth-utf8.RuneCountInString(e.name)+len(indent))
		b.WriteString(name + padding + lines[0] + "\n")
		lines = lines[1:]
	}
	for _, line := range lines {
		b.WriteString(textIndent + line + "\n")
	}
}
