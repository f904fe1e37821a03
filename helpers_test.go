//
// Cleanhtml: minimal HTML output for Blackfriday documents
// Available at http://github.com/russross/cleanhtml
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Helper functions for unit testing
//

package cleanhtml

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

func runClean(input string) (string, error) {
	return Convert(input)
}

func diff(expected, actual string) string {
	text, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	return text
}

// doTestsClean runs input, expected pairs through Convert.
func doTestsClean(t *testing.T, tests []string) {
	t.Helper()
	// catch and report panics
	var candidate string
	defer func() {
		if err := recover(); err != nil {
			t.Errorf("\npanic while processing [%#v]: %s\n", candidate, err)
		}
	}()

	for i := 0; i+1 < len(tests); i += 2 {
		input := tests[i]
		candidate = input
		expected := tests[i+1]
		actual, err := runClean(candidate)
		if err != nil {
			t.Errorf("\nInput   [%#v]\nError   %v", candidate, err)
			continue
		}
		if actual != expected {
			t.Errorf("\nInput   [%#v]\nExpected[%#v]\nActual  [%#v]\n%s",
				candidate, expected, actual, diff(expected, actual))
		}

		// now test every substring to stress test bounds checking
		if !testing.Short() {
			for start := 0; start < len(input); start++ {
				for end := start + 1; end <= len(input); end++ {
					candidate = input[start:end]
					if _, err := runClean(candidate); err != nil {
						t.Errorf("\nInput   [%#v]\nError   %v", candidate, err)
					}
				}
			}
		}
	}
}
