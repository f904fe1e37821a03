//
// Cleanhtml: minimal HTML output for Blackfriday documents
// Available at http://github.com/russross/cleanhtml
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

package htmlwriter

import (
	"fmt"
	"strings"

	"github.com/russross/cleanhtml/doctree"
	"github.com/russross/cleanhtml/settings"
)

const (
	doctype = `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN"` + "\n" +
		`"http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">` + "\n"
	headPrefix  = `<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="en" lang="en">` + "\n<head>\n"
	contentType = `<meta http-equiv="Content-Type" content="text/html; charset=utf-8" />` + "\n"
	generator   = `<meta name="generator" content="cleanhtml" />` + "\n"
)

// Parts are the named pieces of a translated document.
type Parts struct {
	Whole     string // Complete XHTML page
	HTMLBody  string // Everything between <body> and </body>
	Body      string // Document content without title and docinfo
	Fragment  string // Same as Body, collected at the end of the walk
	Docinfo   string
	Title     string // Document title text, when promoted
	HTMLTitle string // Document title markup, when promoted
	Head      string
}

// Part returns the part named name, using the lower-case, underscore
// separated names of the command line ("html_body", "whole", ...).
func (p Parts) Part(name string) (string, bool) {
	switch name {
	case "whole":
		return p.Whole, true
	case "html_body":
		return p.HTMLBody, true
	case "body":
		return p.Body, true
	case "fragment":
		return p.Fragment, true
	case "docinfo":
		return p.Docinfo, true
	case "title":
		return p.Title, true
	case "html_title":
		return p.HTMLTitle, true
	case "head":
		return p.Head, true
	}
	return "", false
}

// Parts collects the fragments of a finished walk.
func (t *Translator) Parts() Parts {
	join := func(fragments []string) string {
		return strings.Join(fragments, "")
	}
	var whole strings.Builder
	whole.WriteString(doctype)
	whole.WriteString(headPrefix)
	whole.WriteString(contentType)
	whole.WriteString(generator)
	whole.WriteString(join(t.Meta))
	whole.WriteString(join(t.Head))
	if t.Settings.Stylesheet != "" {
		fmt.Fprintf(&whole, "<link rel=\"stylesheet\" href=\"%s\" type=\"text/css\" />\n", AttVal(t.Settings.Stylesheet))
	}
	whole.WriteString(join(t.BodyPrefix))
	whole.WriteString(join(t.BodyPreDocinfo))
	whole.WriteString(join(t.Docinfo))
	whole.WriteString(join(t.Body))
	whole.WriteString(join(t.BodySuffix))

	return Parts{
		Whole:     whole.String(),
		HTMLBody:  join(t.HTMLBody),
		Body:      join(t.Body),
		Fragment:  join(t.Fragment),
		Docinfo:   join(t.Docinfo),
		Title:     join(t.Title),
		HTMLTitle: join(t.HTMLTitle),
		Head:      join(t.Head),
	}
}

// Translate renders doc with a fresh Translator configured by s.
func Translate(doc *doctree.Node, s settings.Settings) (Parts, error) {
	t := NewTranslator(s)
	if err := Walk(doc, t); err != nil {
		return Parts{}, err
	}
	return t.Parts(), nil
}
