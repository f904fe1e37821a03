package htmlwriter

import (
	"io"
	"regexp"
	"strings"
)

type escMap struct {
	char byte
	seq  []byte
}

var htmlEscaper = []escMap{
	{'&', []byte("&amp;")},
	{'<', []byte("&lt;")},
	{'>', []byte("&gt;")},
	{'"', []byte("&quot;")},
	{'@', []byte("&#64;")},
}

var whitespace = regexp.MustCompile(`[ \t\n\r\f\v]+`)

func escapeHTML(w io.Writer, s []byte) {
	var start, end int
	var sEnd byte
	for end < len(s) {
		sEnd = s[end]
		if sEnd == '&' || sEnd == '<' || sEnd == '>' || sEnd == '"' || sEnd == '@' {
			for i := 0; i < len(htmlEscaper); i++ {
				if sEnd == htmlEscaper[i].char {
					w.Write(s[start:end])
					w.Write(htmlEscaper[i].seq)
					start = end + 1
					break
				}
			}
		}
		end++
	}
	if start < len(s) && end <= len(s) {
		w.Write(s[start:end])
	}
}

// Encode escapes the HTML special characters of text, and "@".
func Encode(text string) string {
	var b strings.Builder
	escapeHTML(&b, []byte(text))
	return b.String()
}

// AttVal prepares text for use inside a double-quoted attribute value:
// whitespace runs collapse to a single space, then text is encoded.
func AttVal(text string) string {
	return Encode(whitespace.ReplaceAllString(text, " "))
}
