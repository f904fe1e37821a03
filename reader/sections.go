package reader

import (
	"fmt"
	"strings"

	"github.com/shurcooL/sanitized_anchor_name"

	"github.com/russross/cleanhtml/doctree"
)

// sectionize appends blocks to doc, opening a section for every heading.
// Sections nest by heading level: a heading closes every open section of the
// same or a deeper level.
func (c *converter) sectionize(doc *doctree.Node, blocks []*doctree.Node) {
	var open []*doctree.Node
	current := func() *doctree.Node {
		if len(open) == 0 {
			return doc
		}
		return open[len(open)-1]
	}

	for _, b := range blocks {
		if b.Type != doctree.Title {
			current().AppendChild(b)
			continue
		}
		for len(open) > 0 && open[len(open)-1].Level >= b.Level {
			open = open[:len(open)-1]
		}

		section := doctree.NewNode(doctree.Section)
		section.Level = b.Level
		title := b.AsText()
		id := ""
		if len(b.IDs) > 0 {
			id = b.IDs[0]
			b.IDs = nil
		} else {
			id = sanitized_anchor_name.Create(title)
		}
		if id == "" {
			id = "section"
		}
		section.IDs = []string{c.ensureUniqueID(id)}
		section.Names = []string{normalizeName(title)}
		section.AppendChild(b)

		current().AppendChild(section)
		open = append(open, section)
	}
}

func (c *converter) ensureUniqueID(id string) string {
	for count, found := c.ids[id]; found; count, found = c.ids[id] {
		tmp := fmt.Sprintf("%s-%d", id, count+1)

		if _, tmpFound := c.ids[tmp]; !tmpFound {
			c.ids[id] = count + 1
			id = tmp
		} else {
			id = id + "-1"
		}
	}

	if _, found := c.ids[id]; !found {
		c.ids[id] = 0
	}

	return id
}

// normalizeName lower-cases name and collapses its whitespace.
func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
