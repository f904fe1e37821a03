package reader

import (
	"github.com/pkg/errors"
	bf "github.com/russross/blackfriday/v2"
)

// DefaultExtensions are the Markdown extensions used when the settings name
// none.
const DefaultExtensions = bf.NoIntraEmphasis | bf.Tables | bf.FencedCode |
	bf.Autolink | bf.Strikethrough | bf.SpaceHeadings | bf.HeadingIDs |
	bf.DefinitionLists | bf.BackslashLineBreak

var extensionNames = map[string]bf.Extensions{
	"no_intra_emphasis":          bf.NoIntraEmphasis,
	"tables":                     bf.Tables,
	"fenced_code":                bf.FencedCode,
	"autolink":                   bf.Autolink,
	"strikethrough":              bf.Strikethrough,
	"lax_html_blocks":            bf.LaxHTMLBlocks,
	"space_headings":             bf.SpaceHeadings,
	"hard_line_break":            bf.HardLineBreak,
	"tab_size_eight":             bf.TabSizeEight,
	"no_empty_line_before_block": bf.NoEmptyLineBeforeBlock,
	"heading_ids":                bf.HeadingIDs,
	"auto_heading_ids":           bf.AutoHeadingIDs,
	"backslash_line_break":       bf.BackslashLineBreak,
	"definition_lists":           bf.DefinitionLists,
}

// Extensions maps extension names, as written in settings files, to
// blackfriday flags. An empty list selects DefaultExtensions.
func Extensions(names []string) (bf.Extensions, error) {
	if len(names) == 0 {
		return DefaultExtensions, nil
	}
	var ext bf.Extensions
	for _, name := range names {
		flag, ok := extensionNames[name]
		if !ok {
			return 0, errors.Errorf("unknown markdown extension %q", name)
		}
		ext |= flag
	}
	return ext, nil
}
