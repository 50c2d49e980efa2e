package git

import (
	"regexp"
	"strings"
)

// conflictPattern matches one three-way conflict region: a `<<<<<<<` start
// line, the "ours" body, a `=======` separator line, the "theirs" body, and a
// `>>>>>>>` end line. Regions span multiple lines and a file may contain any
// number of them.
var conflictPattern = regexp.MustCompile(`(?ms)^<{7}[^\n]*\n(.*?)^={7}[^\n]*\n(.*?)^>{7}[^\n]*`)

// ParseConflicts extracts every conflict-marker region from file content.
// Content without markers yields an empty slice, not an error.
func ParseConflicts(content string) []ConflictSection {
	matches := conflictPattern.FindAllStringSubmatchIndex(content, -1)
	sections := make([]ConflictSection, 0, len(matches))
	for _, m := range matches {
		// m holds pairs: whole match, ours group, theirs group.
		sections = append(sections, ConflictSection{
			Ours:   strings.TrimSpace(content[m[2]:m[3]]),
			Theirs: strings.TrimSpace(content[m[4]:m[5]]),
			Offset: m[0],
			Length: m[1] - m[0],
		})
	}
	return sections
}

// HasConflictMarkers reports whether content contains at least one complete
// conflict region.
func HasConflictMarkers(content string) bool {
	return conflictPattern.MatchString(content)
}
