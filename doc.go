// Package cleanhtml converts Markdown into a minimal HTML fragment.
//
// The general purpose translator in package htmlwriter decorates its output
// with class attributes, wrapper divs and table scaffolding for style sheets
// to hook into. This package walks the same document trees with a
// translator that drops all of that: no div elements, no class, frame or
// rules attributes, no thead, tbody or colgroup, no block quote wrapper and
// no document wrapper. What is left is meant to be embedded into a larger
// page. Raw HTML in the input is dropped unless the Converter is built with
// WithRawHTML, in which case it is copied through as written, div elements
// included.
//
// The simplest way to use it is Convert:
//
//	html, err := cleanhtml.Convert("- bullet list")
//	// html == "<ul>\n<li>bullet list</li>\n</ul>\n"
//
// New builds a Converter with other settings or another registered markup
// reader. Every conversion uses its own translator, so a Converter can be
// shared between goroutines.
//
// If you're interested in calling cleanhtml from the command line, see
// cmd/cleanhtml.
package cleanhtml
