//
// Cleanhtml: minimal HTML output for Blackfriday documents
// Available at http://github.com/russross/cleanhtml
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Unit tests for the clean writer
//

package cleanhtml

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/russross/cleanhtml/settings"
)

func TestBulletList(t *testing.T) {
	var tests = []string{
		"- bullet list",
		"<ul>\n<li>bullet list</li>\n</ul>\n",

		"- one\n- two\n",
		"<ul>\n<li>one</li>\n<li>two</li>\n</ul>\n",

		"* *emphasis* and **strong**\n",
		"<ul>\n<li><em>emphasis</em> and <strong>strong</strong></li>\n</ul>\n",
	}
	doTestsClean(t, tests)
}

func TestEnumeratedList(t *testing.T) {
	var tests = []string{
		"1. one\n2. *two*\n",
		"<ol>\n<li>one</li>\n<li><em>two</em></li>\n</ol>\n",
	}
	doTestsClean(t, tests)
}

func TestParagraphs(t *testing.T) {
	var tests = []string{
		"Hello, world.\n",
		"<p>Hello, world.</p>\n",

		"one\n\ntwo\n",
		"<p>one</p>\n<p>two</p>\n",

		"a < b & c\n",
		"<p>a &lt; b &amp; c</p>\n",

		"write to me@example.org\n",
		"<p>write to me&#64;example.org</p>\n",

		"a\n\n***\n\nb\n",
		"<p>a</p>\n<hr />\n<p>b</p>\n",
	}
	doTestsClean(t, tests)
}

func TestSections(t *testing.T) {
	var tests = []string{
		"# A\n\n### B\n",
		"<h1>A</h1>\n<h2>B</h2>\n",

		"# Title\n\nSome text.\n\n## Sub\n\nMore.\n",
		"<h1>Title</h1>\n<p>Some text.</p>\n<h2>Sub</h2>\n<p>More.</p>\n",

		"# One\n\n# Two\n",
		"<h1>One</h1>\n<h1>Two</h1>\n",

		"# 1\n## 2\n### 3\n#### 4\n##### 5\n###### 6\n",
		"<h1>1</h1>\n<h2>2</h2>\n<h3>3</h3>\n<h4>4</h4>\n<h5>5</h5>\n<h6>6</h6>\n",
	}
	doTestsClean(t, tests)
}

func TestTable(t *testing.T) {
	var tests = []string{
		"| Headline 1 | Headline 2 |\n|------------|------------|\n| cell one   | cell two   |\n",
		"<table>\n" +
			"<tr><th>Headline 1</th>\n<th>Headline 2</th>\n</tr>\n" +
			"<tr><td>cell one</td>\n<td>cell two</td>\n</tr>\n" +
			"</table>\n",

		"| a | b |\n|---:|:---:|\n| 1 | 2 |\n",
		"<table>\n" +
			"<tr><th align=\"right\">a</th>\n<th align=\"center\">b</th>\n</tr>\n" +
			"<tr><td align=\"right\">1</td>\n<td align=\"center\">2</td>\n</tr>\n" +
			"</table>\n",

		"| a | b |\n|---|---|\n|   | x |\n",
		"<table>\n" +
			"<tr><th>a</th>\n<th>b</th>\n</tr>\n" +
			"<tr><td>&nbsp;</td>\n<td>x</td>\n</tr>\n" +
			"</table>\n",
	}
	doTestsClean(t, tests)
}

func TestBlockQuote(t *testing.T) {
	var tests = []string{
		"> quoted text\n",
		"quoted text",

		"> quoted\n>\n> second paragraph\n",
		"<p>quoted</p>\n<p>second paragraph</p>\n",
	}
	doTestsClean(t, tests)
}

func TestFieldList(t *testing.T) {
	var tests = []string{
		"Intro\n\n:name: value\n:other: thing\n",
		"<p>Intro</p>\n<table>\n" +
			"<tr><th>name:</th><td>value</td>\n</tr>\n" +
			"<tr><th>other:</th><td>thing</td>\n</tr>\n" +
			"</table>\n",

		"Intro\n\n:homepage:\n  some page\n\n:sourcecode:\n  some code\n",
		"<p>Intro</p>\n<table>\n" +
			"<tr><th>homepage:</th><td>some page</td>\n</tr>\n" +
			"<tr><th>sourcecode:</th><td>some code</td>\n</tr>\n" +
			"</table>\n",

		"Intro\n\n:a very long field name: value\n",
		"<p>Intro</p>\n<table>\n" +
			"<tr><th colspan=\"2\">a very long field name:</th></tr>\n" +
			"<tr><td>&nbsp;</td><td>value</td>\n</tr>\n" +
			"</table>\n",

		"Intro\n\n:name: first\n\n  second\n",
		"<p>Intro</p>\n<table>\n" +
			"<tr><th>name:</th><td><p>first</p>\n<p>second</p>\n</td>\n</tr>\n" +
			"</table>\n",
	}
	doTestsClean(t, tests)
}

func TestDocinfo(t *testing.T) {
	var tests = []string{
		":author: Jane Doe\n:version: 1.0\n:license: BSD\n",
		"<table>\n" +
			"<tr><th>Author:</th>\n<td>Jane Doe</td></tr>\n" +
			"<tr><th>Version:</th>\n<td>1.0</td></tr>\n" +
			"<tr><th>license:</th><td>BSD</td>\n</tr>\n" +
			"</table>\n",
	}
	doTestsClean(t, tests)
}

func TestInline(t *testing.T) {
	var tests = []string{
		"Use `a  b` here\n",
		"<p>Use <tt>a&nbsp; b</tt> here</p>\n",

		"[text](http://example.com \"T\")\n",
		"<p><a href=\"http://example.com\" title=\"T\">text</a></p>\n",

		"![alt](img.png)\n",
		"<p><img alt=\"alt\" src=\"img.png\" /></p>\n",

		"~~gone~~\n",
		"<p><del>gone</del></p>\n",
	}
	doTestsClean(t, tests)
}

func TestLiteralBlock(t *testing.T) {
	var tests = []string{
		"```go\nx := 1\n```\n",
		"<pre>x := 1\n</pre>\n",

		"```\na < b\n```\n",
		"<pre>a &lt; b\n</pre>\n",
	}
	doTestsClean(t, tests)
}

func TestDefinitionList(t *testing.T) {
	out, err := Convert("Term\n: Definition\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<dl>\n")
	assert.Contains(t, out, "<dt>Term</dt>\n")
	assert.Contains(t, out, "<dd>")
	assert.Contains(t, out, "Definition")
	assert.NotContains(t, out, "class=")

	// a definition with no term before it still converts
	for _, input := range []string{": value\n", ": ```[a](b)"} {
		out, err = Convert(input)
		require.NoError(t, err, "input %q", input)
		assert.Contains(t, out, "<dl>\n", "input %q", input)
	}
	out, err = Convert(": value\n")
	require.NoError(t, err)
	assert.Contains(t, out, "value")
}

func TestRawDisabled(t *testing.T) {
	s := settings.Default()
	s.RawEnabled = false
	out, err := New(WithSettings(s)).Convert("<div>x</div>\n\ntext\n")
	require.NoError(t, err)
	assert.Equal(t, "<p>text</p>\n", out)
}

func TestRawHTML(t *testing.T) {
	const input = "x <div class=\"q\">y</div>\n\n<div>\nblock\n</div>\n"
	out, err := Convert(input)
	require.NoError(t, err)
	assert.NotContains(t, out, "<div")
	assert.NotContains(t, out, "class=")
	assert.Equal(t, "<p>x y</p>\n", out)

	// settings alone cannot switch passthrough on
	s := settings.Default()
	s.RawEnabled = true
	out, err = New(WithSettings(s)).Convert(input)
	require.NoError(t, err)
	assert.NotContains(t, out, "<div")

	out, err = New(WithRawHTML(true)).Convert(input)
	require.NoError(t, err)
	assert.Contains(t, out, "<p>x <div class=\"q\">y</div></p>\n")
	assert.Contains(t, out, "<div>\nblock\n</div>\n")
}

func TestFirstHeadingStaysInBody(t *testing.T) {
	s := settings.Default()
	s.DocTitleXform = true
	out, err := New(WithSettings(s)).Convert("# Only\n\ntext\n")
	require.NoError(t, err)
	assert.Equal(t, "<h1>Only</h1>\n<p>text</p>\n", out)
}

var invariantInputs = []string{
	"- bullet list",
	"# A\n\n## B\n\n> quote\n\n- x\n  - y\n",
	"| a | b |\n|---|---|\n| 1 | 2 |\n",
	":author: me\n:date: today\n\n# Title\n\ntext\n",
	"text\n\n:field: body\n:other: *emph*\n",
	"1. a\n2. b\n\n```\ncode\n```\n\n[link](#target) and ![img](i.png)\n",
	"Term\n: Definition\n\n***\n",
}

func TestOutputInvariants(t *testing.T) {
	denied := map[string]bool{
		"div": true, "thead": true, "tbody": true, "colgroup": true,
		"col": true, "blockquote": true, "html": true, "body": true,
	}
	for _, input := range invariantInputs {
		out, err := Convert(input)
		require.NoError(t, err, "input %q", input)

		z := html.NewTokenizer(strings.NewReader(out))
		for {
			tt := z.Next()
			if tt == html.ErrorToken {
				break
			}
			if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
				continue
			}
			tok := z.Token()
			assert.False(t, denied[tok.Data], "input %q: unexpected <%s> in %q", input, tok.Data, out)
			var names []string
			for _, attr := range tok.Attr {
				assert.False(t, IgnoredAttr(attr.Key), "input %q: attribute %s on <%s>", input, attr.Key, tok.Data)
				names = append(names, attr.Key)
			}
			assert.IsIncreasing(t, names, "input %q: unsorted attributes on <%s>", input, tok.Data)
		}
	}
}

func TestConcurrentConvert(t *testing.T) {
	conv := New()
	inputs := make([]string, 32)
	expected := make([]string, len(inputs))
	for i := range inputs {
		inputs[i] = fmt.Sprintf("# Doc %d\n\n%s\n\n## Part %d\n\n- item %d\n", i, strings.Repeat("> ", i%3), i, i)
		out, err := conv.Convert(inputs[i])
		require.NoError(t, err)
		expected[i] = out
	}

	results := make([]string, len(inputs))
	var g errgroup.Group
	for i := range inputs {
		i := i
		g.Go(func() error {
			out, err := conv.Convert(inputs[i])
			results[i] = out
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, expected, results)
}

func TestUnavailableDialect(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.WarnLevel)

	// warnings are per dialect and process, so every run needs a new name
	dialect := fmt.Sprintf("restructuredtext-%d", time.Now().UnixNano())
	conv := New(WithDialect(dialect), WithLogger(log))
	assert.False(t, conv.Available())
	_, err := conv.Convert("- bullet list")
	assert.ErrorIs(t, err, ErrUnavailable)

	// the warning is only logged once per dialect
	New(WithDialect(dialect), WithLogger(log))
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, dialect)
	assert.Contains(t, hook.LastEntry().Message, "markdown")
}
