//
// Cleanhtml: minimal HTML output for Blackfriday documents
// Available at http://github.com/russross/cleanhtml
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// HTML translator: the general-purpose, class-decorated rendition of a
// document tree. Writers that want less markup override parts of it.
//

package htmlwriter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/russross/cleanhtml/doctree"
	"github.com/russross/cleanhtml/settings"
)

var (
	// ErrValuelessAttribute is raised when an attribute without a value
	// reaches a start tag.
	ErrValuelessAttribute = errors.New("attribute has no value")
	// ErrUnbalancedContext is raised when the context stack does not match
	// the visit/depart pairing.
	ErrUnbalancedContext = errors.New("unbalanced translator context")
)

var wordsAndSpaces = regexp.MustCompile(`\S+| +|\n`)

// Hooks are the calls a Translator makes back into whatever writer it is
// part of. A writer overriding one of them installs itself with SetHooks.
type Hooks interface {
	// StartTag returns the opening tag text for tagname.
	StartTag(node *doctree.Node, tagname, suffix string, empty bool, attrs *Attributes) string
	// SetClassOnChild adds class to the index-th child of node; negative
	// indexes count from the end.
	SetClassOnChild(node *doctree.Node, class string, index int)
	// SetFirstLast marks the first and last children of node.
	SetFirstLast(node *doctree.Node)
	// FieldListColumns returns the column head written after a field list's
	// table tag.
	FieldListColumns(node *doctree.Node) string
}

// CompactState is what lists and field lists save on the context stack.
type CompactState struct {
	Simple    bool
	FieldList bool
	P         bool
}

type translateError struct {
	err error
}

// Translator is a doctree.Visitor producing HTML fragments.
//
// Do not create this directly, instead use the NewTranslator function.
type Translator struct {
	Settings settings.Settings

	hooks Hooks

	Head           []string
	Meta           []string
	BodyPrefix     []string
	BodyPreDocinfo []string
	Docinfo        []string
	Body           []string
	BodySuffix     []string
	Fragment       []string
	HTMLBody       []string
	HTMLTitle      []string
	Title          []string

	context []interface{}

	SectionLevel     int
	CompactSimple    bool
	CompactP         bool
	CompactFieldList bool

	inDocinfo       bool
	inDocumentTitle int
	colspecs        []*doctree.Node
}

// NewTranslator creates a Translator using s.
func NewTranslator(s settings.Settings) *Translator {
	if s.InitialHeaderLevel == 0 {
		s.InitialHeaderLevel = 1
	}
	t := &Translator{
		Settings:   s,
		BodyPrefix: []string{"</head>\n<body>\n"},
		BodySuffix: []string{"</body>\n</html>\n"},
		CompactP:   true,
	}
	t.hooks = t
	return t
}

// SetHooks installs the writer whose hooks the translator calls.
func (t *Translator) SetHooks(h Hooks) {
	t.hooks = h
}

// Fail aborts the translation with err. Walk turns it into its return value.
func (t *Translator) Fail(err error) {
	panic(translateError{err})
}

// Walk traverses doc with v and reports the first failure of any visit
// method.
func Walk(doc *doctree.Node, v doctree.Visitor) (err error) {
	defer func() {
		if r := recover(); r != nil {
			te, ok := r.(translateError)
			if !ok {
				panic(r)
			}
			err = te.err
		}
	}()
	doctree.WalkAbout(doc, v)
	return nil
}

func (t *Translator) add(fragments ...string) {
	t.Body = append(t.Body, fragments...)
}

func (t *Translator) starttag(node *doctree.Node, tagname, suffix string, attrs *Attributes) string {
	return t.hooks.StartTag(node, tagname, suffix, false, attrs)
}

func (t *Translator) emptytag(node *doctree.Node, tagname, suffix string, attrs *Attributes) string {
	return t.hooks.StartTag(node, tagname, suffix, true, attrs)
}

// PushContext saves v until the matching depart call.
func (t *Translator) PushContext(v interface{}) {
	t.context = append(t.context, v)
}

// PopContext returns the most recently pushed value.
func (t *Translator) PopContext() interface{} {
	if len(t.context) == 0 {
		t.Fail(errors.Wrap(ErrUnbalancedContext, "pop from empty context"))
	}
	v := t.context[len(t.context)-1]
	t.context = t.context[:len(t.context)-1]
	return v
}

// ContextDepth is the number of values waiting on the context stack.
func (t *Translator) ContextDepth() int {
	return len(t.context)
}

// CheckContext fails unless every pushed value has been popped.
func (t *Translator) CheckContext() {
	if len(t.context) != 0 {
		t.Fail(errors.Wrapf(ErrUnbalancedContext, "len(context) = %d", len(t.context)))
	}
}

func (t *Translator) popString() string {
	v := t.PopContext()
	s, ok := v.(string)
	if !ok {
		t.Fail(errors.Wrapf(ErrUnbalancedContext, "expected close tag, found %T", v))
	}
	return s
}

func (t *Translator) popInt() int {
	v := t.PopContext()
	i, ok := v.(int)
	if !ok {
		t.Fail(errors.Wrapf(ErrUnbalancedContext, "expected body offset, found %T", v))
	}
	return i
}

// PopCompact returns the CompactState saved by a list or field list visit.
func (t *Translator) PopCompact() CompactState {
	v := t.PopContext()
	st, ok := v.(CompactState)
	if !ok {
		t.Fail(errors.Wrapf(ErrUnbalancedContext, "expected saved compact flags, found %T", v))
	}
	return st
}

// StartTag builds an opening tag carrying the node's ids and classes plus
// attrs, sorted by attribute name.
func (t *Translator) StartTag(node *doctree.Node, tagname, suffix string, empty bool, attrs *Attributes) string {
	tagname = strings.ToLower(tagname)
	atts := NewAttributes()
	for _, name := range attrs.Names() {
		value, _ := attrs.Get(name)
		atts.Set(name, value)
	}

	var classes []string
	if node != nil {
		classes = append(classes, node.Classes...)
	}
	if value, ok := atts.Get("class"); ok {
		classes = append(classes, value...)
		atts.Remove("class")
	}
	if len(classes) > 0 {
		atts.Set("class", Attr{strings.Join(classes, " ")})
	}

	var prefix strings.Builder
	if node != nil && len(node.IDs) > 0 {
		atts.Set("id", Attr{node.IDs[0]})
		for _, id := range node.IDs[1:] {
			// extra ids get empty spans in front of the tag
			fmt.Fprintf(&prefix, `<span id="%s"></span>`, AttVal(id))
		}
	}

	parts := []string{tagname}
	for _, name := range atts.Sorted() {
		value, _ := atts.Get(name)
		if value == nil {
			t.Fail(errors.Wrapf(ErrValuelessAttribute, "<%s %s>", tagname, name))
		}
		parts = append(parts, fmt.Sprintf(`%s="%s"`, name, AttVal(value.String())))
	}
	infix := ""
	if empty {
		infix = " /"
	}
	return prefix.String() + "<" + strings.Join(parts, " ") + infix + ">" + suffix
}

func (t *Translator) SetClassOnChild(node *doctree.Node, class string, index int) {
	children := node.Children()
	if index < 0 {
		index += len(children)
	}
	if index < 0 || index >= len(children) {
		return
	}
	children[index].AddClass(class)
}

func (t *Translator) SetFirstLast(node *doctree.Node) {
	t.hooks.SetClassOnChild(node, "first", 0)
	t.hooks.SetClassOnChild(node, "last", -1)
}

func (t *Translator) FieldListColumns(node *doctree.Node) string {
	return t.emptytag(nil, "col", "\n", Attrs("class", "field-name")) +
		t.emptytag(nil, "col", "\n", Attrs("class", "field-body")) +
		t.starttag(nil, "tbody", "\n", Attrs("valign", "top"))
}

func hasClass(node *doctree.Node, class string) bool {
	for _, c := range node.Classes {
		if c == class {
			return true
		}
	}
	return false
}

func headingLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}

func (t *Translator) VisitDocument(node *doctree.Node) doctree.WalkStatus {
	title := t.Settings.Title
	if title == "" && node.FirstChild != nil && node.FirstChild.Type == doctree.Title {
		title = node.FirstChild.AsText()
	}
	t.Head = append(t.Head, "<title>"+Encode(title)+"</title>\n")
	return doctree.GoToNext
}

func (t *Translator) DepartDocument(node *doctree.Node) {
	t.BodyPrefix = append(t.BodyPrefix, t.starttag(node, "div", "\n", Attrs("class", "document")))
	t.BodySuffix = append([]string{"</div>\n"}, t.BodySuffix...)
	t.Fragment = append(t.Fragment, t.Body...)
	t.HTMLBody = append(t.HTMLBody, t.BodyPrefix[1:]...)
	t.HTMLBody = append(t.HTMLBody, t.BodyPreDocinfo...)
	t.HTMLBody = append(t.HTMLBody, t.Docinfo...)
	t.HTMLBody = append(t.HTMLBody, t.Body...)
	t.HTMLBody = append(t.HTMLBody, t.BodySuffix[:len(t.BodySuffix)-1]...)
	t.CheckContext()
}

func (t *Translator) VisitSection(node *doctree.Node) doctree.WalkStatus {
	t.SectionLevel++
	t.add(t.starttag(node, "div", "\n", Attrs("class", "section")))
	return doctree.GoToNext
}

func (t *Translator) DepartSection(node *doctree.Node) {
	t.SectionLevel--
	t.add("</div>\n")
}

func (t *Translator) VisitTitle(node *doctree.Node) doctree.WalkStatus {
	var closeTag string
	switch node.Parent.Type {
	case doctree.Table:
		t.add(t.starttag(node, "caption", "", nil))
		closeTag = "</caption>\n"
	case doctree.Document:
		t.add(t.starttag(node, "h1", "", Attrs("class", "title")))
		closeTag = "</h1>\n"
		t.inDocumentTitle = len(t.Body)
	case doctree.Section:
		tagname := "h" + strconv.Itoa(headingLevel(t.SectionLevel+t.Settings.InitialHeaderLevel-1))
		t.add(t.starttag(node, tagname, "", nil))
		closeTag = "</" + tagname + ">\n"
	default:
		t.add(t.starttag(node, "p", "", Attrs("class", "rubric")))
		closeTag = "</p>\n"
	}
	t.PushContext(closeTag)
	return doctree.GoToNext
}

func (t *Translator) DepartTitle(node *doctree.Node) {
	t.add(t.popString())
	if t.inDocumentTitle > 0 {
		t.Title = append(t.Title, t.Body[t.inDocumentTitle:len(t.Body)-1]...)
		t.inDocumentTitle = 0
		t.BodyPreDocinfo = append(t.BodyPreDocinfo, t.Body...)
		t.HTMLTitle = append(t.HTMLTitle, t.Body...)
		t.Body = nil
	}
}

func (t *Translator) shouldBeCompactParagraph(node *doctree.Node) bool {
	if node.Parent.Type == doctree.Document {
		// never compact paragraphs in the document itself
		return false
	}
	if len(node.IDs) > 0 || len(node.Names) > 0 {
		return false
	}
	for _, class := range node.Classes {
		if class != "first" && class != "last" {
			return false
		}
	}
	// only the first paragraph can be compact
	if node.Parent.FirstChild != node {
		return false
	}
	return t.CompactSimple || t.CompactFieldList || (t.CompactP && node.Parent.Len() == 1)
}

func (t *Translator) VisitParagraph(node *doctree.Node) doctree.WalkStatus {
	if t.shouldBeCompactParagraph(node) {
		t.PushContext("")
	} else {
		t.add(t.starttag(node, "p", "", nil))
		t.PushContext("</p>\n")
	}
	return doctree.GoToNext
}

func (t *Translator) DepartParagraph(node *doctree.Node) {
	t.add(t.popString())
}

func (t *Translator) VisitText(node *doctree.Node) doctree.WalkStatus {
	t.add(Encode(string(node.Literal)))
	return doctree.GoToNext
}

func (t *Translator) DepartText(node *doctree.Node) {}

func (t *Translator) VisitEmphasis(node *doctree.Node) doctree.WalkStatus {
	t.add(t.starttag(node, "em", "", nil))
	return doctree.GoToNext
}

func (t *Translator) DepartEmphasis(node *doctree.Node) {
	t.add("</em>")
}

func (t *Translator) VisitStrong(node *doctree.Node) doctree.WalkStatus {
	t.add(t.starttag(node, "strong", "", nil))
	return doctree.GoToNext
}

func (t *Translator) DepartStrong(node *doctree.Node) {
	t.add("</strong>")
}

func (t *Translator) VisitStrikethrough(node *doctree.Node) doctree.WalkStatus {
	t.add(t.starttag(node, "del", "", nil))
	return doctree.GoToNext
}

func (t *Translator) DepartStrikethrough(node *doctree.Node) {
	t.add("</del>")
}

func (t *Translator) VisitLiteral(node *doctree.Node) doctree.WalkStatus {
	t.add(t.starttag(node, "tt", "", Attrs("class", "docutils literal")))
	for _, token := range wordsAndSpaces.FindAllString(node.AsText(), -1) {
		switch {
		case strings.TrimSpace(token) != "":
			t.add(Encode(token))
		case token == "\n" || token == " ":
			t.add(token)
		default:
			// runs of spaces keep their width; the last one may wrap
			t.add(strings.Repeat("&nbsp;", len(token)-1) + " ")
		}
	}
	t.add("</tt>")
	return doctree.SkipChildren
}

func (t *Translator) DepartLiteral(node *doctree.Node) {}

func (t *Translator) VisitReference(node *doctree.Node) doctree.WalkStatus {
	atts := NewAttributes()
	class := "reference"
	if node.RefID != "" {
		atts.Add("href", "#"+node.RefID)
		class += " internal"
	} else {
		atts.Add("href", node.URI)
		class += " external"
	}
	if node.LinkData.Title != "" {
		atts.Add("title", node.LinkData.Title)
	}
	if !node.Parent.IsTextElement() {
		class += " image-reference"
	}
	atts.Add("class", class)
	t.add(t.starttag(node, "a", "", atts))
	return doctree.GoToNext
}

func (t *Translator) DepartReference(node *doctree.Node) {
	t.add("</a>")
	if !node.Parent.IsTextElement() {
		t.add("\n")
	}
}

func (t *Translator) VisitImage(node *doctree.Node) doctree.WalkStatus {
	atts := Attrs("src", node.URI)
	alt := node.Alt
	if alt == "" {
		alt = node.URI
	}
	atts.Add("alt", alt)
	if node.LinkData.Title != "" {
		atts.Add("title", node.LinkData.Title)
	}
	suffix := ""
	if node.Parent.IsTextElement() {
		t.PushContext("")
	} else {
		suffix = "\n"
		open := t.starttag(nil, "div", "", Attrs("class", "image"))
		t.add(open)
		if open == "" {
			t.PushContext("")
		} else {
			t.PushContext("</div>\n")
		}
	}
	t.add(t.emptytag(node, "img", suffix, atts))
	return doctree.GoToNext
}

func (t *Translator) DepartImage(node *doctree.Node) {
	t.add(t.popString())
}

func (t *Translator) VisitRaw(node *doctree.Node) doctree.WalkStatus {
	if !t.Settings.RawEnabled {
		return doctree.SkipChildren
	}
	for _, format := range strings.Fields(node.Format) {
		if format != "html" {
			continue
		}
		tagname := "div"
		if node.Parent.IsTextElement() {
			tagname = "span"
		}
		if len(node.Classes) > 0 {
			t.add(t.starttag(node, tagname, "", nil))
		}
		t.add(string(node.Literal))
		if len(node.Classes) > 0 {
			t.add("</" + tagname + ">")
		}
		break
	}
	// raw content is never walked
	return doctree.SkipChildren
}

func (t *Translator) DepartRaw(node *doctree.Node) {}

func (t *Translator) VisitLineBreak(node *doctree.Node) doctree.WalkStatus {
	t.add(t.emptytag(node, "br", "\n", nil))
	return doctree.GoToNext
}

func (t *Translator) DepartLineBreak(node *doctree.Node) {}

// checkSimpleList reports whether every item of list holds at most one
// paragraph, optionally followed by a nested simple list.
func checkSimpleList(list *doctree.Node) bool {
	simple := true
	list.Walk(func(node *doctree.Node, entering bool) doctree.WalkStatus {
		if !entering {
			return doctree.GoToNext
		}
		switch node.Type {
		case doctree.BulletList, doctree.EnumeratedList:
			return doctree.GoToNext
		case doctree.ListItem:
			children := node.Children()
			if len(children) > 0 && children[0].Type == doctree.Paragraph &&
				children[len(children)-1].IsList() {
				children = children[:len(children)-1]
			}
			if len(children) <= 1 {
				return doctree.GoToNext
			}
		case doctree.Paragraph:
			return doctree.SkipChildren
		}
		simple = false
		return doctree.Terminate
	})
	return simple
}

func (t *Translator) isCompactable(node *doctree.Node) bool {
	if hasClass(node, "compact") {
		return true
	}
	return t.Settings.CompactLists && !hasClass(node, "open") &&
		(t.CompactSimple || checkSimpleList(node))
}

func (t *Translator) visitList(node *doctree.Node, tagname string, atts *Attributes) {
	oldCompactSimple := t.CompactSimple
	t.PushContext(CompactState{Simple: t.CompactSimple, P: t.CompactP})
	t.CompactP = false
	t.CompactSimple = t.isCompactable(node)
	if t.CompactSimple && !oldCompactSimple {
		atts.Add("class", "simple")
	}
	t.add(t.starttag(node, tagname, "\n", atts))
}

func (t *Translator) departList(closeTag string) {
	st := t.PopCompact()
	t.CompactSimple, t.CompactP = st.Simple, st.P
	t.add(closeTag)
}

func (t *Translator) VisitBulletList(node *doctree.Node) doctree.WalkStatus {
	t.visitList(node, "ul", NewAttributes())
	return doctree.GoToNext
}

func (t *Translator) DepartBulletList(node *doctree.Node) {
	t.departList("</ul>\n")
}

func (t *Translator) VisitEnumeratedList(node *doctree.Node) doctree.WalkStatus {
	atts := NewAttributes()
	if node.Start > 1 {
		atts.Add("start", strconv.Itoa(node.Start))
	}
	if node.EnumType != "" {
		atts.Add("class", node.EnumType)
	}
	t.visitList(node, "ol", atts)
	return doctree.GoToNext
}

func (t *Translator) DepartEnumeratedList(node *doctree.Node) {
	t.departList("</ol>\n")
}

func (t *Translator) VisitListItem(node *doctree.Node) doctree.WalkStatus {
	t.add(t.starttag(node, "li", "", nil))
	if node.FirstChild != nil {
		node.FirstChild.AddClass("first")
	}
	return doctree.GoToNext
}

func (t *Translator) DepartListItem(node *doctree.Node) {
	t.add("</li>\n")
}

func (t *Translator) VisitDefinitionList(node *doctree.Node) doctree.WalkStatus {
	t.add(t.starttag(node, "dl", "\n", Attrs("class", "docutils")))
	return doctree.GoToNext
}

func (t *Translator) DepartDefinitionList(node *doctree.Node) {
	t.add("</dl>\n")
}

func (t *Translator) VisitDefinitionListItem(node *doctree.Node) doctree.WalkStatus {
	return doctree.GoToNext
}

func (t *Translator) DepartDefinitionListItem(node *doctree.Node) {}

func (t *Translator) VisitTerm(node *doctree.Node) doctree.WalkStatus {
	t.add(t.starttag(node, "dt", "", nil))
	return doctree.GoToNext
}

// DepartTerm leaves the end tag to VisitDefinition.
func (t *Translator) DepartTerm(node *doctree.Node) {}

func (t *Translator) VisitDefinition(node *doctree.Node) doctree.WalkStatus {
	t.add("</dt>\n")
	t.add(t.starttag(node, "dd", "", nil))
	t.hooks.SetFirstLast(node)
	return doctree.GoToNext
}

func (t *Translator) DepartDefinition(node *doctree.Node) {
	t.add("</dd>\n")
}

func (t *Translator) VisitBlockQuote(node *doctree.Node) doctree.WalkStatus {
	t.add(t.starttag(node, "blockquote", "\n", nil))
	return doctree.GoToNext
}

func (t *Translator) DepartBlockQuote(node *doctree.Node) {
	t.add("</blockquote>\n")
}

func (t *Translator) VisitLiteralBlock(node *doctree.Node) doctree.WalkStatus {
	t.add(t.starttag(node, "pre", "", Attrs("class", "literal-block")))
	return doctree.GoToNext
}

func (t *Translator) DepartLiteralBlock(node *doctree.Node) {
	t.add("\n</pre>\n")
}

func (t *Translator) VisitTransition(node *doctree.Node) doctree.WalkStatus {
	t.add(t.emptytag(node, "hr", "\n", Attrs("class", "docutils")))
	return doctree.GoToNext
}

func (t *Translator) DepartTransition(node *doctree.Node) {}

func (t *Translator) VisitTable(node *doctree.Node) doctree.WalkStatus {
	classes := strings.TrimSpace("docutils " + t.Settings.TableStyle)
	t.add(t.starttag(node, "table", "\n", Attrs("class", classes, "border", "1")))
	return doctree.GoToNext
}

func (t *Translator) DepartTable(node *doctree.Node) {
	t.add("</table>\n")
}

func (t *Translator) VisitTGroup(node *doctree.Node) doctree.WalkStatus {
	t.add(t.starttag(node, "colgroup", "\n", nil))
	// closed by the first thead or tbody
	t.PushContext("</colgroup>\n")
	node.Stubs = nil
	return doctree.GoToNext
}

func (t *Translator) DepartTGroup(node *doctree.Node) {}

func (t *Translator) VisitColSpec(node *doctree.Node) doctree.WalkStatus {
	t.colspecs = append(t.colspecs, node)
	// the stubs list lives on the tgroup
	node.Parent.Stubs = append(node.Parent.Stubs, node.Stub)
	return doctree.GoToNext
}

func (t *Translator) DepartColSpec(node *doctree.Node) {}

func (t *Translator) writeColspecs() {
	width := 0
	for _, node := range t.colspecs {
		width += node.ColWidth
	}
	for _, node := range t.colspecs {
		atts := NewAttributes()
		if width > 0 {
			colwidth := int(float64(node.ColWidth)*100.0/float64(width) + 0.5)
			atts.Add("width", fmt.Sprintf("%d%%", colwidth))
		}
		t.add(t.emptytag(node, "col", "\n", atts))
	}
	t.colspecs = nil
}

func (t *Translator) VisitTHead(node *doctree.Node) doctree.WalkStatus {
	t.writeColspecs()
	t.add(t.popString()) // </colgroup>
	// there may or may not be a thead; this is for tbody to use
	t.PushContext("")
	t.add(t.starttag(node, "thead", "\n", Attrs("valign", "bottom")))
	return doctree.GoToNext
}

func (t *Translator) DepartTHead(node *doctree.Node) {
	t.add("</thead>\n")
}

func (t *Translator) VisitTBody(node *doctree.Node) doctree.WalkStatus {
	t.writeColspecs()
	t.add(t.popString()) // </colgroup> or ""
	t.add(t.starttag(node, "tbody", "\n", Attrs("valign", "top")))
	return doctree.GoToNext
}

func (t *Translator) DepartTBody(node *doctree.Node) {
	t.add("</tbody>\n")
}

func (t *Translator) VisitRow(node *doctree.Node) doctree.WalkStatus {
	t.add(t.starttag(node, "tr", "", nil))
	node.Column = 0
	return doctree.GoToNext
}

func (t *Translator) DepartRow(node *doctree.Node) {
	t.add("</tr>\n")
}

func (t *Translator) VisitEntry(node *doctree.Node) doctree.WalkStatus {
	row := node.Parent
	var classes []string
	if row.Parent.Type == doctree.THead {
		classes = append(classes, "head")
	}
	if tgroup := row.Parent.Parent; tgroup != nil && row.Column < len(tgroup.Stubs) && tgroup.Stubs[row.Column] {
		classes = append(classes, "stub")
	}
	tagname := "td"
	atts := NewAttributes()
	if len(classes) > 0 {
		tagname = "th"
		atts.Add("class", strings.Join(classes, " "))
	}
	row.Column++
	if node.MoreRows > 0 {
		atts.Add("rowspan", strconv.Itoa(node.MoreRows+1))
	}
	if node.MoreCols > 0 {
		atts.Add("colspan", strconv.Itoa(node.MoreCols+1))
		row.Column += node.MoreCols
	}
	if node.Align != "" {
		atts.Add("align", node.Align)
	}
	t.add(t.starttag(node, tagname, "", atts))
	t.PushContext("</" + tagname + ">\n")
	if node.FirstChild == nil {
		// empty cell
		t.add("&nbsp;")
	}
	t.hooks.SetClassOnChild(node, "first", 0)
	return doctree.GoToNext
}

func (t *Translator) DepartEntry(node *doctree.Node) {
	t.add(t.popString())
}

func (t *Translator) VisitFieldList(node *doctree.Node) doctree.WalkStatus {
	t.PushContext(CompactState{FieldList: t.CompactFieldList, P: t.CompactP})
	t.CompactP = false
	t.CompactFieldList = hasClass(node, "compact") ||
		t.Settings.CompactFieldLists && !hasClass(node, "open")
	if t.CompactFieldList {
		for field := node.FirstChild; field != nil; field = field.Next {
			body := field.LastChild
			if body == nil || body.Type != doctree.FieldBody {
				t.Fail(errors.Errorf("field %q has no body", field.AsText()))
			}
			children := body.Children()
			if !(len(children) == 0 || len(children) == 1 && children[0].Type == doctree.Paragraph) {
				t.CompactFieldList = false
				break
			}
		}
	}
	t.add(t.starttag(node, "table", "\n",
		Attrs("frame", "void", "rules", "none", "class", "docutils field-list")))
	if columns := t.hooks.FieldListColumns(node); columns != "" {
		t.add(columns)
	}
	return doctree.GoToNext
}

func (t *Translator) DepartFieldList(node *doctree.Node) {
	t.add("</tbody>\n</table>\n")
	st := t.PopCompact()
	t.CompactFieldList, t.CompactP = st.FieldList, st.P
}

func (t *Translator) VisitField(node *doctree.Node) doctree.WalkStatus {
	t.add(t.starttag(node, "tr", "", Attrs("class", "field")))
	return doctree.GoToNext
}

func (t *Translator) DepartField(node *doctree.Node) {
	t.add("</tr>\n")
}

func (t *Translator) VisitFieldName(node *doctree.Node) doctree.WalkStatus {
	atts := NewAttributes()
	if t.inDocinfo {
		atts.Add("class", "docinfo-name")
	} else {
		atts.Add("class", "field-name")
	}
	limit := t.Settings.FieldNameLimit
	if limit > 0 && utf8.RuneCountInString(node.AsText()) > limit {
		atts.Add("colspan", "2")
		t.PushContext("</tr>\n" + t.starttag(node.Parent, "tr", "", Attrs("class", "field")) + "<td>&nbsp;</td>")
	} else {
		t.PushContext("")
	}
	t.add(t.starttag(node, "th", "", atts))
	return doctree.GoToNext
}

func (t *Translator) DepartFieldName(node *doctree.Node) {
	t.add(":</th>")
	t.add(t.popString())
}

func (t *Translator) VisitFieldBody(node *doctree.Node) doctree.WalkStatus {
	t.add(t.starttag(node, "td", "", Attrs("class", "field-body")))
	t.hooks.SetClassOnChild(node, "first", 0)
	return doctree.GoToNext
}

func (t *Translator) DepartFieldBody(node *doctree.Node) {
	t.add("</td>\n")
}

func (t *Translator) VisitDocInfo(node *doctree.Node) doctree.WalkStatus {
	t.PushContext(len(t.Body))
	t.add(t.starttag(node, "table", "\n",
		Attrs("class", "docinfo", "frame", "void", "rules", "none")))
	t.add(t.emptytag(nil, "col", "\n", Attrs("class", "docinfo-name")) +
		t.emptytag(nil, "col", "\n", Attrs("class", "docinfo-content")) +
		t.starttag(nil, "tbody", "\n", Attrs("valign", "top")))
	t.inDocinfo = true
	return doctree.GoToNext
}

func (t *Translator) DepartDocInfo(node *doctree.Node) {
	t.add("</tbody>\n</table>\n")
	t.inDocinfo = false
	start := t.popInt()
	t.Docinfo = append(t.Docinfo, t.Body[start:]...)
	t.Body = append([]string(nil), t.Body[:start]...)
}

func (t *Translator) VisitDocInfoItem(node *doctree.Node) doctree.WalkStatus {
	label, ok := doctree.Bibliographic[node.Label]
	if !ok {
		label = node.Label
	}
	t.Meta = append(t.Meta, fmt.Sprintf("<meta name=\"%s\" content=\"%s\" />\n",
		AttVal(node.Label), AttVal(node.AsText())))
	t.add(t.starttag(node, "tr", "", nil))
	t.add(t.starttag(nil, "th", "", Attrs("class", "docinfo-name")) + Encode(label) + ":</th>\n" +
		t.starttag(nil, "td", "", nil))
	if node.FirstChild != nil && node.FirstChild.Type != doctree.Text {
		node.FirstChild.AddClass("first")
	}
	if node.LastChild != nil && node.LastChild.Type != doctree.Text {
		node.LastChild.AddClass("last")
	}
	return doctree.GoToNext
}

func (t *Translator) DepartDocInfoItem(node *doctree.Node) {
	t.add("</td></tr>\n")
}
