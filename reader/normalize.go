package reader

import "bytes"

const tabSize = 4

// normalize rewrites input so that every line ends in exactly one '\n',
// tabs are expanded and the text ends in a newline.
func normalize(input []byte) []byte {
	text := bytes.NewBuffer(nil)
	beg, end := 0, 0
	for beg < len(input) { // iterate over lines
		end = beg
		for end < len(input) && input[end] != '\n' && input[end] != '\r' {
			end++
		}

		// add the line body if present
		if end > beg {
			expandTabs(text, input[beg:end])
		}

		for end < len(input) && (input[end] == '\n' || input[end] == '\r') {
			// add one \n per newline
			if input[end] == '\n' || (end+1 < len(input) && input[end+1] != '\n') {
				text.WriteByte('\n')
			}
			end++
		}

		beg = end
	}

	if text.Len() > 0 {
		// add a final newline if not already present
		if text.Bytes()[text.Len()-1] != '\n' {
			text.WriteByte('\n')
		}
	}
	return text.Bytes()
}

func expandTabs(out *bytes.Buffer, line []byte) {
	i, tab := 0, 0

	for i < len(line) {
		org := i
		for i < len(line) && line[i] != '\t' {
			i++
			tab++
		}

		if i > org {
			out.Write(line[org:i])
		}

		if i >= len(line) {
			break
		}

		for {
			out.WriteByte(' ')
			tab++
			if tab%tabSize == 0 {
				break
			}
		}

		i++
	}
}

// linespan implements a minimal line iterator over '\n' delimited content
type linespan struct{ begin, end int }

// next updates begin and end to point to the next line
func (sc *linespan) next(content []byte) bool {
	sc.begin = sc.end
	if sc.begin >= len(content) {
		return false
	}

	off := bytes.IndexByte(content[sc.begin:], '\n')
	if off >= 0 {
		sc.end = sc.begin + off + 1
		return true
	}

	sc.end = len(content)
	return true
}

// lines splits normalized text into lines without their newlines.
func lines(text []byte) []string {
	var out []string
	var sc linespan
	for sc.next(text) {
		out = append(out, string(bytes.TrimRight(text[sc.begin:sc.end], "\n")))
	}
	return out
}

func isBlank(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' {
			return false
		}
	}
	return true
}

func indentOf(line string) int {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return i
}
