package git

import (
	"regexp"
	"strings"
)

// stashlinePattern matches one `git stash list` line, e.g.
//
//	stash@{0}: On feature: wip message
//	stash@{1}: WIP on main: 1a2b3c4 last commit subject
var stashLinePattern = regexp.MustCompile(`^(stash@\{\d+\}): (?:WIP on|On) ([^:]+): (.*)$`)

// ParseStashList parses `git stash list` output. Lines that do not match the
// stash pattern are skipped.
func ParseStashList(out string) []StashEntry {
	entries := []StashEntry{}
	if out == "" {
		return entries
	}
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		m := stashLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entries = append(entries, StashEntry{
			Ref:     m[1],
			Branch:  strings.TrimSpace(m[2]),
			Message: strings.TrimSpace(m[3]),
		})
	}
	return entries
}
