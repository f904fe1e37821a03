//
// Cleanhtml: minimal HTML output for Blackfriday documents
// Available at http://github.com/russross/cleanhtml
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Front-end for command-line use
//

package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/russross/cleanhtml"
	"github.com/russross/cleanhtml/htmlwriter"
	"github.com/russross/cleanhtml/reader"
	"github.com/russross/cleanhtml/settings"
)

// CLI defines the command-line interface using Kong
var CLI struct {
	Config   string `name:"config" short:"c" help:"TOML settings file" type:"existingfile"`
	Dialect  string `name:"dialect" default:"markdown" help:"Markup dialect of the input"`
	Writer   string `name:"writer" short:"w" default:"clean" enum:"clean,html4" help:"Output writer: clean fragment or class-decorated html4 (${enum})"`
	Part     string `name:"part" short:"p" default:"html_body" enum:"whole,html_body,body,fragment,docinfo,title,html_title,head" help:"Document part the html4 writer outputs"`
	DocTitle bool   `name:"doctitle" help:"Promote a lone top-level section title to the document title (html4 writer)"`
	Raw      bool   `name:"raw" help:"Copy raw HTML in the input through (clean writer)"`
	Debug    bool   `name:"debug" short:"d" help:"Log tag filter and reader decisions"`

	Input  string `arg:"" optional:"" help:"Input file (default: stdin)" type:"path"`
	Output string `arg:"" optional:"" help:"Output file (default: stdout)" type:"path"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("cleanhtml"),
		kong.Description("Convert Markdown to minimal HTML: no divs, classes or table scaffolding"),
		kong.UsageOnError(),
	)
	if CLI.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := run(); err != nil {
		logrus.Error(err)
		ctx.Exit(1)
	}
}

func run() error {
	s := settings.Default()
	if CLI.Config != "" {
		var err error
		if s, err = settings.Load(CLI.Config); err != nil {
			return err
		}
	}

	input, err := readInput(CLI.Input)
	if err != nil {
		return err
	}

	var output string
	switch CLI.Writer {
	case "clean":
		conv := cleanhtml.New(
			cleanhtml.WithSettings(s),
			cleanhtml.WithDialect(CLI.Dialect),
			cleanhtml.WithRawHTML(CLI.Raw),
		)
		if output, err = conv.Convert(string(input)); err != nil {
			return errors.Wrap(err, "converting input")
		}
	case "html4":
		s.DocTitleXform = CLI.DocTitle
		r, err := reader.Lookup(CLI.Dialect)
		if err != nil {
			return err
		}
		doc, err := r.Read(string(input), s)
		if err != nil {
			return errors.Wrap(err, "reading input")
		}
		parts, err := htmlwriter.Translate(doc, s)
		if err != nil {
			return errors.Wrap(err, "translating input")
		}
		output, _ = parts.Part(CLI.Part)
	}

	return writeOutput(CLI.Output, output)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		input, err := io.ReadAll(os.Stdin)
		return input, errors.Wrap(err, "reading from stdin")
	}
	input, err := os.ReadFile(path)
	return input, errors.Wrapf(err, "reading from %s", path)
}

func writeOutput(path, output string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, output)
		return errors.Wrap(err, "writing to stdout")
	}
	return errors.Wrapf(os.WriteFile(path, []byte(output), 0644), "writing to %s", path)
}
