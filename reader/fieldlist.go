package reader

import (
	"regexp"
	"strings"

	"github.com/russross/cleanhtml/doctree"
)

// A field marker starts in column 0: ":name:" followed by whitespace and the
// first line of the body, or by the end of the line.
var fieldMarker = regexp.MustCompile(`^:([^:\s](?:[^:]*[^:\s])?):(?: +(.*))?$`)

type field struct {
	name string
	body string
}

// segment is a run of source lines handed to blackfriday, or a field list
// the Markdown dialect has no syntax for.
type segment struct {
	markdown string
	fields   []field
}

// segments splits source lines into Markdown and field list segments. Field
// lists are only recognised after a blank line and outside fenced code.
func segments(ls []string) []segment {
	var (
		segs  []segment
		md    []string
		fence string
	)
	flush := func() {
		if len(md) > 0 {
			segs = append(segs, segment{markdown: strings.Join(md, "\n") + "\n"})
			md = nil
		}
	}

	prevBlank := true
	for i := 0; i < len(ls); {
		line := ls[i]
		if fence == "" && prevBlank && fieldMarker.MatchString(line) {
			var fields []field
			fields, i = readFieldList(ls, i)
			flush()
			segs = append(segs, segment{fields: fields})
			prevBlank = true
			continue
		}
		if f := fenceOf(line); f != "" {
			switch {
			case fence == "":
				fence = f
			case closesFence(line, fence):
				fence = ""
			}
		}
		md = append(md, line)
		prevBlank = isBlank(line)
		i++
	}
	flush()
	return segs
}

// readFieldList consumes consecutive fields starting at ls[i] and returns
// them with the index of the first line after the list.
func readFieldList(ls []string, i int) ([]field, int) {
	var fields []field
	for i < len(ls) {
		m := fieldMarker.FindStringSubmatch(ls[i])
		if m == nil {
			break
		}
		i++

		// body lines are indented; blank lines only count when more
		// indented lines follow
		var rest []string
		for j := i; j < len(ls); j++ {
			if isBlank(ls[j]) {
				continue
			}
			if indentOf(ls[j]) == 0 {
				break
			}
			rest = append(rest, ls[i:j+1]...)
			i = j + 1
		}
		fields = append(fields, field{name: m[1], body: fieldBody(m[2], rest)})

		for i < len(ls) && isBlank(ls[i]) {
			i++
		}
	}
	return fields, i
}

func fieldBody(first string, rest []string) string {
	indent := -1
	for _, line := range rest {
		if isBlank(line) {
			continue
		}
		if n := indentOf(line); indent < 0 || n < indent {
			indent = n
		}
	}

	var body []string
	if strings.TrimSpace(first) != "" {
		body = append(body, strings.TrimSpace(first))
	}
	for _, line := range rest {
		if isBlank(line) {
			if len(body) > 0 {
				body = append(body, "")
			}
			continue
		}
		body = append(body, line[indent:])
	}
	if len(body) == 0 {
		return ""
	}
	return strings.Join(body, "\n") + "\n"
}

func fenceOf(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 || len(trimmed) < 3 {
		return ""
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return ""
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == c {
		n++
	}
	if n < 3 {
		return ""
	}
	return trimmed[:n]
}

func closesFence(line, fence string) bool {
	f := fenceOf(line)
	return f != "" && f[0] == fence[0] && len(f) >= len(fence) &&
		strings.TrimSpace(line) == f
}

// buildFieldList turns parsed fields into a FieldList node, reading every
// body with r.
func (c *converter) buildFieldList(fields []field) (*doctree.Node, error) {
	list := doctree.NewNode(doctree.FieldList)
	for _, f := range fields {
		item := doctree.NewNode(doctree.Field)
		name := doctree.NewNode(doctree.FieldName)
		name.AppendChild(doctree.NewText([]byte(f.name)))
		item.AppendChild(name)

		body := doctree.NewNode(doctree.FieldBody)
		if f.body != "" {
			blocks, err := c.blocks([]byte(f.body))
			if err != nil {
				return nil, err
			}
			for _, b := range blocks {
				body.AppendChild(b)
			}
		}
		item.AppendChild(body)
		list.AppendChild(item)
	}
	return list, nil
}
