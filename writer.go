//
// Cleanhtml: minimal HTML output for Blackfriday documents
// Available at http://github.com/russross/cleanhtml
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Clean translator: the base HTML translator with its layout scaffolding
// flattened away
//

package cleanhtml

import (
	"github.com/russross/cleanhtml/doctree"
	"github.com/russross/cleanhtml/htmlwriter"
	"github.com/russross/cleanhtml/settings"
)

// Translator writes the clean HTML dialect. It inherits every node handler
// it does not override from htmlwriter.Translator.
type Translator struct {
	*htmlwriter.Translator
}

// NewTranslator creates a clean Translator configured by s.
func NewTranslator(s settings.Settings) *Translator {
	t := &Translator{Translator: htmlwriter.NewTranslator(s)}
	t.SetHooks(t)
	return t
}

// StartTag ignores the node's ids and classes and passes the rest through
// the tag filter.
func (t *Translator) StartTag(node *doctree.Node, tagname, suffix string, empty bool, attrs *htmlwriter.Attributes) string {
	html, err := StartTag(tagname, empty, suffix, attrs)
	if err != nil {
		t.Fail(err)
	}
	return html
}

func (t *Translator) SetClassOnChild(node *doctree.Node, class string, index int) {}

func (t *Translator) SetFirstLast(node *doctree.Node) {}

// FieldListColumns drops the column head: field lists are plain two column
// tables.
func (t *Translator) FieldListColumns(node *doctree.Node) string {
	return ""
}

func (t *Translator) VisitSection(node *doctree.Node) doctree.WalkStatus {
	t.SectionLevel++
	return doctree.GoToNext
}

func (t *Translator) DepartSection(node *doctree.Node) {
	t.SectionLevel--
}

// Block quotes, including the ones nested list indentation produces, lose
// their wrapper.
func (t *Translator) VisitBlockQuote(node *doctree.Node) doctree.WalkStatus {
	return doctree.GoToNext
}

func (t *Translator) DepartBlockQuote(node *doctree.Node) {}

func (t *Translator) VisitTable(node *doctree.Node) doctree.WalkStatus {
	t.Body = append(t.Body, t.StartTag(node, "table", "\n", false, nil))
	return doctree.GoToNext
}

func (t *Translator) VisitTGroup(node *doctree.Node) doctree.WalkStatus {
	node.Stubs = nil
	return doctree.GoToNext
}

func (t *Translator) VisitTHead(node *doctree.Node) doctree.WalkStatus {
	return doctree.GoToNext
}

func (t *Translator) DepartTHead(node *doctree.Node) {}

func (t *Translator) VisitTBody(node *doctree.Node) doctree.WalkStatus {
	return doctree.GoToNext
}

func (t *Translator) DepartTBody(node *doctree.Node) {}

func (t *Translator) DepartFieldList(node *doctree.Node) {
	t.Body = append(t.Body, "</table>\n")
	st := t.PopCompact()
	t.CompactFieldList, t.CompactP = st.FieldList, st.P
}

func (t *Translator) VisitDocInfo(node *doctree.Node) doctree.WalkStatus {
	t.Body = append(t.Body, t.StartTag(node, "table", "\n", false, nil))
	return doctree.GoToNext
}

func (t *Translator) DepartDocInfo(node *doctree.Node) {
	t.Body = append(t.Body, "</table>\n")
}

// DepartDocument assembles only the HTML body, without the document div.
func (t *Translator) DepartDocument(node *doctree.Node) {
	t.HTMLBody = append(t.HTMLBody, t.BodyPrefix[1:]...)
	t.HTMLBody = append(t.HTMLBody, t.BodyPreDocinfo...)
	t.HTMLBody = append(t.HTMLBody, t.Docinfo...)
	t.HTMLBody = append(t.HTMLBody, t.Body...)
	t.HTMLBody = append(t.HTMLBody, t.BodySuffix[:len(t.BodySuffix)-1]...)
	t.CheckContext()
}
