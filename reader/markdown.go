package reader

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	bf "github.com/russross/blackfriday/v2"
	"github.com/sirupsen/logrus"

	"github.com/russross/cleanhtml/doctree"
	"github.com/russross/cleanhtml/settings"
)

// converter turns blackfriday trees into document trees. One converter
// reads one document, so section ids stay unique across all its segments.
type converter struct {
	extensions bf.Extensions
	settings   settings.Settings
	ids        map[string]int
}

func newConverter(s settings.Settings) (*converter, error) {
	ext, err := Extensions(s.Extensions)
	if err != nil {
		return nil, err
	}
	return &converter{
		extensions: ext,
		settings:   s,
		ids:        make(map[string]int),
	}, nil
}

// blocks reads normalized text into a list of body elements. Headings come
// back as Title nodes carrying their level; sectioning is up to the caller.
func (c *converter) blocks(text []byte) ([]*doctree.Node, error) {
	var out []*doctree.Node
	for _, seg := range segments(lines(text)) {
		if seg.fields != nil {
			logrus.Debugf("reader: field list with %d fields", len(seg.fields))
			list, err := c.buildFieldList(seg.fields)
			if err != nil {
				return nil, err
			}
			out = append(out, list)
			continue
		}
		root := bf.New(bf.WithExtensions(c.extensions)).Parse([]byte(seg.markdown))
		for child := root.FirstChild; child != nil; child = child.Next {
			node, err := c.block(child)
			if err != nil {
				return nil, err
			}
			if node != nil {
				out = append(out, node)
			}
		}
	}
	return out, nil
}

func (c *converter) block(n *bf.Node) (*doctree.Node, error) {
	switch n.Type {
	case bf.Paragraph:
		p := doctree.NewNode(doctree.Paragraph)
		c.inlines(p, n)
		trimTrailingNewlines(p)
		return p, nil

	case bf.Heading:
		title := doctree.NewNode(doctree.Title)
		title.Level = n.Level
		c.inlines(title, n)
		trimTrailingNewlines(title)
		if n.HeadingID != "" {
			title.IDs = []string{n.HeadingID}
		}
		return title, nil

	case bf.BlockQuote:
		quote := doctree.NewNode(doctree.BlockQuote)
		if err := c.appendBlocks(quote, n); err != nil {
			return nil, err
		}
		return quote, nil

	case bf.List:
		if n.ListFlags&bf.ListTypeDefinition != 0 {
			return c.definitionList(n)
		}
		list := doctree.NewNode(doctree.BulletList)
		if n.ListFlags&bf.ListTypeOrdered != 0 {
			list = doctree.NewNode(doctree.EnumeratedList)
			list.EnumType = "arabic"
		} else {
			list.Bullet = n.BulletChar
		}
		for item := n.FirstChild; item != nil; item = item.Next {
			li := doctree.NewNode(doctree.ListItem)
			if err := c.appendBlocks(li, item); err != nil {
				return nil, err
			}
			list.AppendChild(li)
		}
		return list, nil

	case bf.HorizontalRule:
		return doctree.NewNode(doctree.Transition), nil

	case bf.CodeBlock:
		block := doctree.NewNode(doctree.LiteralBlock)
		if info := strings.Fields(string(n.Info)); len(info) > 0 {
			block.Language = info[0]
			block.Classes = []string{"code", info[0]}
		}
		code := bytes.TrimRight(n.Literal, "\n")
		block.AppendChild(doctree.NewText(copyBytes(code)))
		return block, nil

	case bf.HTMLBlock:
		if !c.settings.RawEnabled {
			logrus.Debugf("reader: dropping raw HTML block")
			return nil, nil
		}
		raw := doctree.NewNode(doctree.Raw)
		raw.Format = "html"
		raw.Literal = append(copyBytes(bytes.TrimRight(n.Literal, "\n")), '\n')
		return raw, nil

	case bf.Table:
		return c.table(n)
	}
	return nil, errors.Errorf("reader: unexpected %s block", n.Type)
}

func (c *converter) appendBlocks(parent *doctree.Node, n *bf.Node) error {
	for child := n.FirstChild; child != nil; child = child.Next {
		node, err := c.block(child)
		if err != nil {
			return err
		}
		if node != nil {
			parent.AppendChild(node)
		}
	}
	return nil
}

// definitionList pairs every term with the definitions following it. A term
// without a definition still gets an empty one, and a definition without a
// term gets an empty term.
func (c *converter) definitionList(n *bf.Node) (*doctree.Node, error) {
	list := doctree.NewNode(doctree.DefinitionList)
	var definition *doctree.Node
	open := func() *doctree.Node {
		entry := doctree.NewNode(doctree.DefinitionListItem)
		term := doctree.NewNode(doctree.Term)
		definition = doctree.NewNode(doctree.Definition)
		entry.AppendChild(term)
		entry.AppendChild(definition)
		list.AppendChild(entry)
		return term
	}
	for item := n.FirstChild; item != nil; item = item.Next {
		if item.ListFlags&bf.ListTypeTerm != 0 {
			term := open()
			for p := item.FirstChild; p != nil; p = p.Next {
				c.inlines(term, p)
			}
			trimTrailingNewlines(term)
			continue
		}
		if definition == nil {
			logrus.Debugf("reader: definition without a term")
			open()
		}
		if err := c.appendBlocks(definition, item); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (c *converter) table(n *bf.Node) (*doctree.Node, error) {
	table := doctree.NewNode(doctree.Table)
	tgroup := doctree.NewNode(doctree.TGroup)
	table.AppendChild(tgroup)

	var widths []int
	var sections []*doctree.Node
	for part := n.FirstChild; part != nil; part = part.Next {
		var section *doctree.Node
		switch part.Type {
		case bf.TableHead:
			section = doctree.NewNode(doctree.THead)
		case bf.TableBody:
			section = doctree.NewNode(doctree.TBody)
		default:
			return nil, errors.Errorf("reader: unexpected %s in table", part.Type)
		}
		for row := part.FirstChild; row != nil; row = row.Next {
			tr := doctree.NewNode(doctree.Row)
			col := 0
			for cell := row.FirstChild; cell != nil; cell = cell.Next {
				entry := doctree.NewNode(doctree.Entry)
				entry.Align = alignment(cell.Align)
				p := doctree.NewNode(doctree.Paragraph)
				c.inlines(p, cell)
				trimTrailingNewlines(p)
				text := strings.TrimSpace(p.AsText())
				if p.FirstChild != nil && text != "" {
					entry.AppendChild(p)
				}
				if col >= len(widths) {
					widths = append(widths, 1)
				}
				if len(text) > widths[col] {
					widths[col] = len(text)
				}
				tr.AppendChild(entry)
				col++
			}
			section.AppendChild(tr)
		}
		sections = append(sections, section)
	}

	tgroup.Cols = len(widths)
	for _, w := range widths {
		colspec := doctree.NewNode(doctree.ColSpec)
		colspec.ColWidth = w
		tgroup.AppendChild(colspec)
	}
	for _, section := range sections {
		tgroup.AppendChild(section)
	}
	return table, nil
}

func alignment(align bf.CellAlignFlags) string {
	switch align {
	case bf.TableAlignmentLeft:
		return "left"
	case bf.TableAlignmentRight:
		return "right"
	case bf.TableAlignmentCenter:
		return "center"
	}
	return ""
}

// inlines appends the converted inline children of n to parent.
func (c *converter) inlines(parent *doctree.Node, n *bf.Node) {
	for child := n.FirstChild; child != nil; child = child.Next {
		if node := c.inline(parent, child); node != nil {
			parent.AppendChild(node)
		}
	}
}

// inline converts n. Containers without an inline counterpart hand their
// children to parent directly and return nil.
func (c *converter) inline(parent *doctree.Node, n *bf.Node) *doctree.Node {
	var node *doctree.Node
	switch n.Type {
	case bf.Text:
		return doctree.NewText(copyBytes(n.Literal))
	case bf.Softbreak:
		return doctree.NewText([]byte("\n"))
	case bf.Hardbreak:
		return doctree.NewNode(doctree.LineBreak)
	case bf.Code:
		node = doctree.NewNode(doctree.Literal)
		node.AppendChild(doctree.NewText(copyBytes(n.Literal)))
		return node
	case bf.HTMLSpan:
		if !c.settings.RawEnabled {
			return nil
		}
		node = doctree.NewNode(doctree.Raw)
		node.Format = "html"
		node.Literal = copyBytes(n.Literal)
		return node
	case bf.Emph:
		node = doctree.NewNode(doctree.Emphasis)
	case bf.Strong:
		node = doctree.NewNode(doctree.Strong)
	case bf.Del:
		node = doctree.NewNode(doctree.Strikethrough)
	case bf.Link:
		node = doctree.NewNode(doctree.Reference)
		dest := string(n.Destination)
		if strings.HasPrefix(dest, "#") && len(dest) > 1 {
			node.RefID = dest[1:]
		} else {
			node.URI = dest
		}
		node.LinkData.Title = string(n.LinkData.Title)
	case bf.Image:
		node = doctree.NewNode(doctree.Image)
		node.URI = string(n.Destination)
		node.LinkData.Title = string(n.LinkData.Title)
		alt := doctree.NewNode(doctree.Paragraph)
		c.inlines(alt, n)
		node.Alt = alt.AsText()
		return node
	default:
		// block content blackfriday nests inside inline containers, such
		// as the paragraph of a definition term
		logrus.Debugf("reader: flattening %s inside inline content", n.Type)
		c.inlines(parent, n)
		return nil
	}
	c.inlines(node, n)
	return node
}

// trimTrailingNewlines drops the line ends blackfriday leaves at the end of
// a text element.
func trimTrailingNewlines(n *doctree.Node) {
	for last := n.LastChild; last != nil; last = last.LastChild {
		if last.Type == doctree.Text {
			last.Literal = bytes.TrimRight(last.Literal, "\n")
			return
		}
		if last.Type != doctree.Emphasis && last.Type != doctree.Strong &&
			last.Type != doctree.Strikethrough && last.Type != doctree.Reference {
			return
		}
	}
}

func copyBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}
