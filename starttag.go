//
// Cleanhtml: minimal HTML output for Blackfriday documents
// Available at http://github.com/russross/cleanhtml
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Opening tag filter
//

package cleanhtml

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/russross/cleanhtml/htmlwriter"
)

// Tags that are never written. Their content still is.
var ignoreTags = map[string]bool{
	"div": true,
}

// Attributes that are never written, on any tag.
var ignoreAttrs = map[string]bool{
	"class": true,
	"frame": true,
	"rules": true,
}

// IgnoredTag reports whether StartTag suppresses tagname entirely.
func IgnoredTag(tagname string) bool {
	return ignoreTags[tagname]
}

// IgnoredAttr reports whether StartTag drops the attribute name.
func IgnoredAttr(name string) bool {
	return ignoreAttrs[strings.ToLower(name)]
}

// StartTag returns the opening tag for tagname with attrs, or "" when the
// tag is suppressed. Attributes are written in alphabetical order, minus the
// suppressed ones. An attribute without a value is an error; empty tags get
// the XHTML " /" before the closing bracket.
func StartTag(tagname string, empty bool, suffix string, attrs *htmlwriter.Attributes) (string, error) {
	if IgnoredTag(tagname) {
		logrus.Debugf("cleanhtml: ignore tag %q", tagname)
		return "", nil
	}

	parts := []string{tagname}
	for _, name := range attrs.Sorted() {
		value, _ := attrs.Get(name)
		if value == nil {
			return "", errors.Wrapf(htmlwriter.ErrValuelessAttribute, "<%s %s>", tagname, name)
		}
		if IgnoredAttr(name) {
			continue
		}
		parts = append(parts, name+`="`+htmlwriter.AttVal(value.String())+`"`)
	}

	infix := ""
	if empty {
		infix = " /"
	}
	html := "<" + strings.Join(parts, " ") + infix + ">" + suffix
	logrus.Debugf("cleanhtml: tag %q attributes %s: %q", tagname, attrs, html)
	return html, nil
}
