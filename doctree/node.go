//
// Cleanhtml: minimal HTML output for Blackfriday documents
// Available at http://github.com/russross/cleanhtml
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

package doctree

import (
	"bytes"
	"fmt"
)

type NodeType int

const (
	Document NodeType = iota
	Section
	Title
	Paragraph
	Text
	Emphasis
	Strong
	Strikethrough
	Literal
	Reference
	Image
	Raw
	LineBreak
	BulletList
	EnumeratedList
	ListItem
	DefinitionList
	DefinitionListItem
	Term
	Definition
	BlockQuote
	LiteralBlock
	Transition
	Table
	TGroup
	ColSpec
	THead
	TBody
	Row
	Entry
	FieldList
	Field
	FieldName
	FieldBody
	DocInfo
	DocInfoItem
)

var nodeTypeNames = []string{
	Document:           "Document",
	Section:            "Section",
	Title:              "Title",
	Paragraph:          "Paragraph",
	Text:               "Text",
	Emphasis:           "Emphasis",
	Strong:             "Strong",
	Strikethrough:      "Strikethrough",
	Literal:            "Literal",
	Reference:          "Reference",
	Image:              "Image",
	Raw:                "Raw",
	LineBreak:          "LineBreak",
	BulletList:         "BulletList",
	EnumeratedList:     "EnumeratedList",
	ListItem:           "ListItem",
	DefinitionList:     "DefinitionList",
	DefinitionListItem: "DefinitionListItem",
	Term:               "Term",
	Definition:         "Definition",
	BlockQuote:         "BlockQuote",
	LiteralBlock:       "LiteralBlock",
	Transition:         "Transition",
	Table:              "Table",
	TGroup:             "TGroup",
	ColSpec:            "ColSpec",
	THead:              "THead",
	TBody:              "TBody",
	Row:                "Row",
	Entry:              "Entry",
	FieldList:          "FieldList",
	Field:              "Field",
	FieldName:          "FieldName",
	FieldBody:          "FieldBody",
	DocInfo:            "DocInfo",
	DocInfoItem:        "DocInfoItem",
}

func (t NodeType) String() string {
	if int(t) < 0 || int(t) >= len(nodeTypeNames) {
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
	return nodeTypeNames[t]
}

type SectionData struct {
	Level int // Heading level the section was opened with in the source
}

type ListData struct {
	EnumType string // "arabic" for enumerated lists
	Start    int    // First ordinal of an enumerated list; 0 means 1
	Bullet   byte   // '*', '+' or '-' in bullet lists
}

type LinkData struct {
	URI   string // refuri of a Reference, uri of an Image
	RefID string // Internal target of a Reference
	Title string
	Alt   string // Image alternate text
}

type TableData struct {
	Cols     int    // Number of columns in a TGroup
	ColWidth int    // Relative width of a ColSpec
	Stub     bool   // ColSpec marks a stub column
	MoreRows int    // Entry spans this many extra rows
	MoreCols int    // Entry spans this many extra columns
	Align    string // Entry alignment, "" when unspecified

	// Bookkeeping written by translators while walking the table.
	Stubs  []bool // Stub flag per column, kept on the TGroup
	Column int    // Next column index, kept on the Row
}

type FieldData struct {
	Label string // Bibliographic field name of a DocInfoItem, e.g. "author"
}

type RawData struct {
	Format string // Output format the raw content is meant for
}

type CodeData struct {
	Language string // Info string of a fenced literal block
}

// Node is a single element of a parsed document. It holds connections to
// the structurally neighboring nodes and, for certain types of nodes,
// additional information that translators need.
type Node struct {
	Type       NodeType // Determines the type of the node
	Parent     *Node    // Points to the parent
	FirstChild *Node    // Points to the first child, if any
	LastChild  *Node    // Points to the last child, if any
	Prev       *Node    // Previous sibling; nil if it's the first child
	Next       *Node    // Next sibling; nil if it's the last child

	Literal []byte // Text contents of Text, Literal, LiteralBlock and Raw

	IDs     []string
	Names   []string
	Classes []string

	SectionData // Populated if Type == Section
	ListData    // Populated if Type == BulletList or EnumeratedList
	LinkData    // Populated if Type == Reference or Image
	TableData   // Populated for TGroup, ColSpec, Row and Entry
	FieldData   // Populated if Type == DocInfoItem
	RawData     // Populated if Type == Raw
	CodeData    // Populated if Type == LiteralBlock
}

func NewNode(typ NodeType) *Node {
	return &Node{Type: typ}
}

// NewText returns a Text node holding text.
func NewText(text []byte) *Node {
	n := NewNode(Text)
	n.Literal = text
	return n
}

func (n *Node) Unlink() {
	if n.Prev != nil {
		n.Prev.Next = n.Next
	} else if n.Parent != nil {
		n.Parent.FirstChild = n.Next
	}
	if n.Next != nil {
		n.Next.Prev = n.Prev
	} else if n.Parent != nil {
		n.Parent.LastChild = n.Prev
	}
	n.Parent = nil
	n.Next = nil
	n.Prev = nil
}

func (n *Node) AppendChild(child *Node) {
	child.Unlink()
	child.Parent = n
	if n.LastChild != nil {
		n.LastChild.Next = child
		child.Prev = n.LastChild
		n.LastChild = child
	} else {
		n.FirstChild = child
		n.LastChild = child
	}
}

// InsertBefore puts sibling right in front of n.
func (n *Node) InsertBefore(sibling *Node) {
	sibling.Unlink()
	sibling.Prev = n.Prev
	if sibling.Prev != nil {
		sibling.Prev.Next = sibling
	}
	sibling.Next = n
	n.Prev = sibling
	sibling.Parent = n.Parent
	if sibling.Prev == nil && sibling.Parent != nil {
		sibling.Parent.FirstChild = sibling
	}
}

// Children returns the direct children of n in document order.
func (n *Node) Children() []*Node {
	var children []*Node
	for c := n.FirstChild; c != nil; c = c.Next {
		children = append(children, c)
	}
	return children
}

// Len is the number of direct children.
func (n *Node) Len() int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.Next {
		count++
	}
	return count
}

// AsText concatenates the text of all Text-bearing descendants.
func (n *Node) AsText() string {
	var buf bytes.Buffer
	n.Walk(func(node *Node, entering bool) WalkStatus {
		if entering && node.Literal != nil && node.Type != Raw {
			buf.Write(node.Literal)
		}
		return GoToNext
	})
	return buf.String()
}

// AddClass appends class unless n already carries it.
func (n *Node) AddClass(class string) {
	for _, c := range n.Classes {
		if c == class {
			return
		}
	}
	n.Classes = append(n.Classes, class)
}

// IsTextElement reports whether n holds inline content directly.
func (n *Node) IsTextElement() bool {
	switch n.Type {
	case Title, Paragraph, Term, FieldName, LiteralBlock, DocInfoItem,
		Emphasis, Strong, Strikethrough, Literal, Reference:
		return true
	}
	return false
}

// IsList reports whether n is a bullet or enumerated list.
func (n *Node) IsList() bool {
	return n.Type == BulletList || n.Type == EnumeratedList
}

func (n *Node) String() string {
	return dumpString(n)
}

func dump(ast *Node, depth int) string {
	if ast == nil {
		return ""
	}
	indent := bytes.Repeat([]byte("\t"), depth)
	result := fmt.Sprintf("%s%s(%q)\n", indent, ast.Type, ast.Literal)
	for n := ast.FirstChild; n != nil; n = n.Next {
		result += dump(n, depth+1)
	}
	return result
}

func dumpString(ast *Node) string {
	return dump(ast, 0)
}
