package git

import (
	"regexp"
	"strings"
)

// remoteLinePattern matches one `git remote -v` line:
//
//	origin  git@github.com:acme/widgets.git (fetch)
var remoteLinePattern = regexp.MustCompile(`^(\S+)\s+(\S+)\s+\((fetch|push)\)$`)

// ParseRemotes parses `git remote -v` output into RemoteEntry records.
// Duplicate (name, direction) pairs are collapsed, keeping the first URL.
func ParseRemotes(out string) []RemoteEntry {
	entries := []RemoteEntry{}
	if out == "" {
		return entries
	}
	seen := map[string]bool{}
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		m := remoteLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		key := m[1] + "\x00" + m[3]
		if seen[key] {
			continue
		}
		seen[key] = true
		entries = append(entries, RemoteEntry{
			Name:      m[1],
			URL:       m[2],
			Direction: RemoteDirection(m[3]),
		})
	}
	return entries
}
