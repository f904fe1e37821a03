package htmlwriter_test

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/russross/cleanhtml/doctree"
	"github.com/russross/cleanhtml/htmlwriter"
	"github.com/russross/cleanhtml/reader"
	"github.com/russross/cleanhtml/settings"
)

func translate(t *testing.T, input string, s settings.Settings) htmlwriter.Parts {
	t.Helper()
	doc, err := reader.Parse(input, s)
	require.NoError(t, err)
	parts, err := htmlwriter.Translate(doc, s)
	require.NoError(t, err)
	return parts
}

func noTitle() settings.Settings {
	s := settings.Default()
	s.DocTitleXform = false
	return s
}

// doTestsBody compares the body part for input, expected pairs.
func doTestsBody(t *testing.T, tests []string, s settings.Settings) {
	t.Helper()
	for i := 0; i+1 < len(tests); i += 2 {
		input, expected := tests[i], tests[i+1]
		actual := translate(t, input, s).Body
		if actual != expected {
			text, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(expected),
				B:        difflib.SplitLines(actual),
				FromFile: "expected",
				ToFile:   "actual",
				Context:  2,
			})
			t.Errorf("\nInput   [%#v]\nExpected[%#v]\nActual  [%#v]\n%s", input, expected, actual, text)
		}
	}
}

func TestHTMLBody(t *testing.T) {
	parts := translate(t, "- bullet list", noTitle())
	assert.Equal(t, "<div class=\"document\">\n<ul class=\"simple\">\n<li>bullet list</li>\n</ul>\n</div>\n", parts.HTMLBody)
	assert.Equal(t, parts.Body, parts.Fragment)
}

func TestSections(t *testing.T) {
	var tests = []string{
		"# A\n\ntext\n\n# B\n",
		"<div class=\"section\" id=\"a\">\n<h1>A</h1>\n<p>text</p>\n</div>\n" +
			"<div class=\"section\" id=\"b\">\n<h1>B</h1>\n</div>\n",

		"# A\n\n### B\n",
		"<div class=\"section\" id=\"a\">\n<h1>A</h1>\n" +
			"<div class=\"section\" id=\"b\">\n<h2>B</h2>\n</div>\n</div>\n",

		"# Same\n\n# Same\n",
		"<div class=\"section\" id=\"same\">\n<h1>Same</h1>\n</div>\n" +
			"<div class=\"section\" id=\"same-1\">\n<h1>Same</h1>\n</div>\n",

		"# Custom {#mine}\n",
		"<div class=\"section\" id=\"mine\">\n<h1>Custom</h1>\n</div>\n",
	}
	doTestsBody(t, tests, noTitle())
}

func TestInitialHeaderLevel(t *testing.T) {
	s := noTitle()
	s.InitialHeaderLevel = 3
	var tests = []string{
		"# A\n\n## B\n\n### C\n\n#### D\n\n##### E\n",
		"<div class=\"section\" id=\"a\">\n<h3>A</h3>\n" +
			"<div class=\"section\" id=\"b\">\n<h4>B</h4>\n" +
			"<div class=\"section\" id=\"c\">\n<h5>C</h5>\n" +
			"<div class=\"section\" id=\"d\">\n<h6>D</h6>\n" +
			"<div class=\"section\" id=\"e\">\n<h6>E</h6>\n" +
			"</div>\n</div>\n</div>\n</div>\n</div>\n",
	}
	doTestsBody(t, tests, s)
}

func TestDocTitle(t *testing.T) {
	parts := translate(t, "# Only\n\ntext\n", settings.Default())
	assert.Equal(t, "<p>text</p>\n", parts.Body)
	assert.Equal(t, "Only", parts.Title)
	assert.Equal(t, "<h1 class=\"title\">Only</h1>\n", parts.HTMLTitle)
	assert.Equal(t, "<title>Only</title>\n", parts.Head)
	assert.Equal(t, "<div class=\"document\" id=\"only\">\n<h1 class=\"title\">Only</h1>\n<p>text</p>\n</div>\n", parts.HTMLBody)

	// two top-level sections keep their titles
	parts = translate(t, "# One\n\n# Two\n", settings.Default())
	assert.Empty(t, parts.Title)
	assert.Contains(t, parts.Body, "<h1>One</h1>")
}

func TestTable(t *testing.T) {
	var tests = []string{
		"| a | b |\n|---|---|\n| 1 | 2 |\n",
		"<table border=\"1\" class=\"docutils\">\n" +
			"<colgroup>\n<col width=\"50%\" />\n<col width=\"50%\" />\n</colgroup>\n" +
			"<thead valign=\"bottom\">\n<tr><th class=\"head\">a</th>\n<th class=\"head\">b</th>\n</tr>\n</thead>\n" +
			"<tbody valign=\"top\">\n<tr><td>1</td>\n<td>2</td>\n</tr>\n</tbody>\n" +
			"</table>\n",
	}
	doTestsBody(t, tests, noTitle())

	s := noTitle()
	s.TableStyle = "borderless"
	parts := translate(t, tests[0], s)
	assert.Contains(t, parts.Body, "<table border=\"1\" class=\"docutils borderless\">\n")
}

func TestFieldList(t *testing.T) {
	var tests = []string{
		"Intro\n\n:name: value\n",
		"<p>Intro</p>\n" +
			"<table class=\"docutils field-list\" frame=\"void\" rules=\"none\">\n" +
			"<col class=\"field-name\" />\n<col class=\"field-body\" />\n<tbody valign=\"top\">\n" +
			"<tr class=\"field\"><th class=\"field-name\">name:</th><td class=\"field-body\">value</td>\n</tr>\n" +
			"</tbody>\n</table>\n",

		"Intro\n\n:a very long field name: v\n",
		"<p>Intro</p>\n" +
			"<table class=\"docutils field-list\" frame=\"void\" rules=\"none\">\n" +
			"<col class=\"field-name\" />\n<col class=\"field-body\" />\n<tbody valign=\"top\">\n" +
			"<tr class=\"field\"><th class=\"field-name\" colspan=\"2\">a very long field name:</th></tr>\n" +
			"<tr class=\"field\"><td>&nbsp;</td><td class=\"field-body\">v</td>\n</tr>\n" +
			"</tbody>\n</table>\n",
	}
	doTestsBody(t, tests, noTitle())

	s := noTitle()
	s.FieldNameLimit = 0
	parts := translate(t, tests[2], s)
	assert.NotContains(t, parts.Body, "colspan")
}

func TestDocinfo(t *testing.T) {
	parts := translate(t, ":author: Jane\n:license: BSD\n\ntext\n", noTitle())
	assert.Equal(t, "<p>text</p>\n", parts.Body)
	assert.Equal(t, "<table class=\"docinfo\" frame=\"void\" rules=\"none\">\n"+
		"<col class=\"docinfo-name\" />\n<col class=\"docinfo-content\" />\n<tbody valign=\"top\">\n"+
		"<tr><th class=\"docinfo-name\">Author:</th>\n<td>Jane</td></tr>\n"+
		"<tr class=\"license field\"><th class=\"docinfo-name\">license:</th><td class=\"field-body\">BSD</td>\n</tr>\n"+
		"</tbody>\n</table>\n", parts.Docinfo)
	assert.Contains(t, parts.Whole, "<meta name=\"author\" content=\"Jane\" />\n")

	s := noTitle()
	s.DocInfoXform = false
	parts = translate(t, ":author: Jane\n\ntext\n", s)
	assert.Empty(t, parts.Docinfo)
	assert.Contains(t, parts.Body, "field-list")
}

func TestBlocks(t *testing.T) {
	var tests = []string{
		"> quoted\n",
		"<blockquote>\nquoted</blockquote>\n",

		"`x`\n",
		"<p><tt class=\"docutils literal\">x</tt></p>\n",

		"[t](#a)\n",
		"<p><a class=\"reference internal\" href=\"#a\">t</a></p>\n",

		"[t](http://x.org)\n",
		"<p><a class=\"reference external\" href=\"http://x.org\">t</a></p>\n",

		"```go\nx\n```\n",
		"<pre class=\"code go literal-block\">x\n</pre>\n",

		"a\n\n***\n",
		"<p>a</p>\n<hr class=\"docutils\" />\n",

		"- a\n\n    more\n- b\n",
		"<ul>\n<li><p class=\"first\">a</p>\n<p>more</p>\n</li>\n<li><p class=\"first\">b</p>\n</li>\n</ul>\n",
	}
	doTestsBody(t, tests, noTitle())
}

func TestWhole(t *testing.T) {
	s := noTitle()
	s.Title = "Page"
	s.Stylesheet = "style.css"
	whole := translate(t, "text\n", s).Whole
	assert.Contains(t, whole, "<!DOCTYPE html")
	assert.Contains(t, whole, "<title>Page</title>\n")
	assert.Contains(t, whole, "<link rel=\"stylesheet\" href=\"style.css\" type=\"text/css\" />\n")
	assert.Contains(t, whole, "<body>\n<div class=\"document\">\n<p>text</p>\n</div>\n</body>\n</html>\n")
}

func TestParts(t *testing.T) {
	parts := translate(t, "text\n", noTitle())
	for _, name := range []string{"whole", "html_body", "body", "fragment", "docinfo", "title", "html_title", "head"} {
		_, ok := parts.Part(name)
		assert.True(t, ok, name)
	}
	body, _ := parts.Part("body")
	assert.Equal(t, "<p>text</p>\n", body)
	_, ok := parts.Part("nope")
	assert.False(t, ok)
}

func TestStartTag(t *testing.T) {
	tr := htmlwriter.NewTranslator(settings.Default())
	node := doctree.NewNode(doctree.Paragraph)
	node.IDs = []string{"one", "two"}
	node.Classes = []string{"first"}
	got := tr.StartTag(node, "P", "", false, htmlwriter.Attrs("class", "extra", "align", "left"))
	assert.Equal(t, `<span id="two"></span><p align="left" class="first extra" id="one">`, got)
	assert.Equal(t, "<br />\n", tr.StartTag(nil, "br", "\n", true, nil))
}

func TestWalkErrors(t *testing.T) {
	tr := htmlwriter.NewTranslator(settings.Default())
	doc := doctree.NewNode(doctree.Document)
	p := doctree.NewNode(doctree.Paragraph)
	p.AppendChild(doctree.NewText([]byte("x")))
	doc.AppendChild(p)
	tr.PushContext(htmlwriter.CompactState{})
	err := htmlwriter.Walk(doc, tr)
	assert.ErrorIs(t, err, htmlwriter.ErrUnbalancedContext)
	assert.Contains(t, err.Error(), "len(context) = 1")
	assert.Equal(t, 1, tr.ContextDepth())

	// panics that are not translation failures pass through
	assert.Panics(t, func() {
		htmlwriter.Walk(doc, panicVisitor{htmlwriter.NewTranslator(settings.Default())})
	})
}

type panicVisitor struct {
	*htmlwriter.Translator
}

func (panicVisitor) VisitParagraph(node *doctree.Node) doctree.WalkStatus {
	panic("boom")
}
