// Package settings holds the document settings shared by the reader and the
// HTML translators, and loads them from TOML files.
package settings

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Settings tweak how a document is read and translated.
type Settings struct {
	// Promote a lone top-level section title to the document title.
	DocTitleXform bool `toml:"doctitle_xform"`
	// Turn a leading field list into a docinfo block.
	DocInfoXform bool `toml:"docinfo_xform"`

	// Heading level used for the outermost section.
	InitialHeaderLevel int `toml:"initial_header_level"`
	// Drop <p> in lists of simple items.
	CompactLists bool `toml:"compact_lists"`
	// Drop <p> in field lists whose bodies hold a single paragraph.
	CompactFieldLists bool `toml:"compact_field_lists"`
	// Field names longer than this span both table columns; 0 disables.
	FieldNameLimit int `toml:"field_name_limit"`
	// Pass raw HTML through.
	RawEnabled bool `toml:"raw_enabled"`
	// Extra class for tables.
	TableStyle string `toml:"table_style"`

	Title      string `toml:"title"`      // Document title (used for complete pages)
	Stylesheet string `toml:"stylesheet"` // Optional CSS file URL (used for complete pages)

	// Markdown extensions by name; empty means the reader's defaults.
	Extensions []string `toml:"extensions"`
}

// Default returns the settings a plain conversion starts from.
func Default() Settings {
	return Settings{
		DocTitleXform:      true,
		DocInfoXform:       true,
		InitialHeaderLevel: 1,
		CompactLists:       true,
		CompactFieldLists:  true,
		FieldNameLimit:     14,
		RawEnabled:         true,
	}
}

// Decode overlays the TOML document text on the defaults.
func Decode(text string) (Settings, error) {
	s := Default()
	md, err := toml.Decode(text, &s)
	if err != nil {
		return s, errors.Wrap(err, "decoding settings")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return s, errors.Errorf("unknown setting %q", undecoded[0].String())
	}
	return s, s.Validate()
}

// Load overlays the TOML file at path on the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return s, errors.Wrapf(err, "loading settings from %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return s, errors.Errorf("%s: unknown setting %q", path, undecoded[0].String())
	}
	return s, s.Validate()
}

// Validate reports settings no translator can honour.
func (s Settings) Validate() error {
	if s.InitialHeaderLevel < 1 || s.InitialHeaderLevel > 6 {
		return errors.Errorf("initial_header_level must be between 1 and 6, got %d", s.InitialHeaderLevel)
	}
	if s.FieldNameLimit < 0 {
		return errors.Errorf("field_name_limit must not be negative, got %d", s.FieldNameLimit)
	}
	return nil
}
