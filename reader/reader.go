// Package reader parses Markdown, extended with field lists, into document
// trees.
//
// Block and inline syntax is parsed by blackfriday. On top of that the
// reader recognises field lists (":name: body" lines with indented
// continuation lines), nests headings into sections, and optionally applies
// the document title and docinfo transforms.
package reader

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/russross/cleanhtml/doctree"
	"github.com/russross/cleanhtml/settings"
)

// Markdown is the dialect name the Markdown reader registers under.
const Markdown = "markdown"

func init() {
	Register(Markdown, ReaderFunc(Parse))
}

// Parse reads src into a document tree.
func Parse(src string, s settings.Settings) (*doctree.Node, error) {
	c, err := newConverter(s)
	if err != nil {
		return nil, errors.Wrap(err, "configuring markdown reader")
	}
	blocks, err := c.blocks(normalize([]byte(src)))
	if err != nil {
		return nil, errors.Wrap(err, "parsing markdown")
	}

	doc := doctree.NewNode(doctree.Document)
	c.sectionize(doc, blocks)
	if s.DocTitleXform {
		promoteTitle(doc)
	}
	if s.DocInfoXform {
		buildDocinfo(doc)
	}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("reader: document tree\n%s", doc)
	}
	return doc, nil
}
