//
// Cleanhtml: minimal HTML output for Blackfriday documents
// Available at http://github.com/russross/cleanhtml
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

package cleanhtml

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/russross/cleanhtml/htmlwriter"
	"github.com/russross/cleanhtml/reader"
	"github.com/russross/cleanhtml/settings"
)

var (
	// ErrUnavailable is returned by Convert when the converter's markup
	// reader is not installed.
	ErrUnavailable = errors.New("markup reader not installed")

	// ErrValuelessAttribute and ErrUnbalancedContext report translator bugs.
	ErrValuelessAttribute = htmlwriter.ErrValuelessAttribute
	ErrUnbalancedContext  = htmlwriter.ErrUnbalancedContext
)

// Converter turns markup text into clean HTML.
//
// Do not create this directly, instead use the New function.
type Converter struct {
	settings settings.Settings
	dialect  string
	raw      bool
	reader   reader.Reader
	log      *logrus.Logger
}

// Option customizes a Converter.
type Option func(*Converter)

// WithSettings replaces the default settings. The document title
// transform is switched off regardless, so the first heading stays in the
// body, and raw HTML is governed by WithRawHTML instead of RawEnabled.
func WithSettings(s settings.Settings) Option {
	return func(c *Converter) {
		c.settings = s
	}
}

// WithDialect selects the registered reader to parse input with.
func WithDialect(name string) Option {
	return func(c *Converter) {
		c.dialect = name
	}
}

// WithRawHTML lets raw HTML in the input through unchanged. It is off by
// default: raw blocks are dropped and inline tags are removed, so the output
// holds only markup the clean translator wrote.
func WithRawHTML(enabled bool) Option {
	return func(c *Converter) {
		c.raw = enabled
	}
}

// WithLogger sets the logger warnings go to.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Converter) {
		c.log = log
	}
}

var missing sync.Map // dialect name -> *sync.Once

// New creates a Converter. A Converter whose dialect has no registered reader
// is still returned, but disabled: the first such Converter for a dialect
// logs a warning and Convert fails with ErrUnavailable.
func New(opts ...Option) *Converter {
	c := &Converter{
		settings: settings.Default(),
		dialect:  reader.Markdown,
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.settings.DocTitleXform = false
	c.settings.RawEnabled = c.raw

	r, err := reader.Lookup(c.dialect)
	if err != nil {
		once, _ := missing.LoadOrStore(c.dialect, new(sync.Once))
		once.(*sync.Once).Do(func() {
			c.log.Warnf("Markup error: the %q reader isn't installed, can't convert it to clean HTML. "+
				"Register one with reader.Register; installed readers: %s",
				c.dialect, strings.Join(reader.Dialects(), ", "))
		})
		return c
	}
	c.reader = r
	return c
}

// Available reports whether c has a reader to convert with.
func (c *Converter) Available() bool {
	return c.reader != nil
}

// Convert returns src as an HTML fragment: no document wrapper, no div
// elements and no class, frame or rules attributes.
func (c *Converter) Convert(src string) (string, error) {
	if c.reader == nil {
		return "", errors.Wrapf(ErrUnavailable, "dialect %q", c.dialect)
	}
	doc, err := c.reader.Read(src, c.settings)
	if err != nil {
		return "", err
	}
	t := NewTranslator(c.settings)
	if err := htmlwriter.Walk(doc, t); err != nil {
		return "", err
	}
	return strings.Join(t.HTMLBody, ""), nil
}

// Convert converts Markdown src to clean HTML with the default settings.
//
//	Convert("- bullet list") == "<ul>\n<li>bullet list</li>\n</ul>\n"
func Convert(src string) (string, error) {
	return New().Convert(src)
}
