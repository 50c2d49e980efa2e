package git

import (
	"context"
	"fmt"
	"strings"
)

// statusArgs is the porcelain v2 status invocation the parser understands.
var statusArgs = []string{"status", "--porcelain=v2", "--branch", "--untracked-files=normal"}

// Status runs git status and parses it into a RepositoryStatus.
func (r *Runner) Status(ctx context.Context, dir string) (*RepositoryStatus, error) {
	out, err := r.MustRun(ctx, dir, statusArgs...)
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}
	return ParseStatus(out), nil
}

// ParseStatus parses `git status --porcelain=v2 --branch` output.
//
// The format is a de facto wire protocol: `# branch.*` metadata lines, `1`
// and `2` change lines, `? ` untracked and `u ` unmerged lines. Unknown line
// types are skipped, not rejected, because the format gains fields across
// git versions.
func ParseStatus(out string) *RepositoryStatus {
	status := &RepositoryStatus{
		Staged:     []FileChange{},
		Unstaged:   []FileChange{},
		Untracked:  []string{},
		Conflicted: []string{},
		RawStatus:  out,
	}
	if out == "" {
		return status
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "# branch.head "):
			status.Branch = strings.TrimPrefix(line, "# branch.head ")
		case strings.HasPrefix(line, "# branch.upstream "):
			status.Upstream = strings.TrimPrefix(line, "# branch.upstream ")
		case strings.HasPrefix(line, "# branch.ab "):
			// Format: "# branch.ab +N -M"
			_, _ = fmt.Sscanf(strings.TrimPrefix(line, "# branch.ab "), "+%d -%d",
				&status.Ahead, &status.Behind)
		case strings.HasPrefix(line, "1 "), strings.HasPrefix(line, "2 "):
			parseChangeLine(line, status)
		case strings.HasPrefix(line, "? "):
			status.Untracked = append(status.Untracked, strings.TrimPrefix(line, "? "))
		case strings.HasPrefix(line, "u "):
			fields := strings.Fields(line)
			if len(fields) >= 2 {
				status.Conflicted = append(status.Conflicted, fields[len(fields)-1])
			}
		}
		// "!" (ignored) and any future line types fall through.
	}
	return status
}

// parseChangeLine handles the ordinary change lines:
//
//	1 XY sub mH mI mW hH hI path
//	2 XY sub mH mI mW hH hI Xscore path<TAB>origPath
//
// The first code character is the index (staged) half, the second the
// worktree (unstaged) half. A path can appear in both when partially staged.
func parseChangeLine(line string, status *RepositoryStatus) {
	fields := strings.Fields(line)
	if len(fields) < 3 || len(fields[1]) != 2 {
		return
	}
	code := fields[1]

	path := fields[len(fields)-1]
	origPath := ""
	if fields[0] == "2" {
		// Rename/copy lines carry "path<TAB>origPath" in the final column;
		// Fields split them apart because tab counts as whitespace.
		if len(fields) >= 4 {
			origPath = fields[len(fields)-1]
			path = fields[len(fields)-2]
		}
	} else if tab := strings.IndexByte(path, '\t'); tab >= 0 {
		path = path[:tab]
	}

	if kind, ok := decodeStatusLetter(code[0]); ok {
		status.Staged = append(status.Staged, FileChange{Path: path, Kind: kind, OrigPath: origPath})
	}
	if kind, ok := decodeStatusLetter(code[1]); ok {
		status.Unstaged = append(status.Unstaged, FileChange{Path: path, Kind: kind, OrigPath: origPath})
	}
}

// decodeStatusLetter maps one porcelain code character to a ChangeKind.
// '.' means no change in that half; unrecognized letters map to
// ChangeUnknown rather than failing the parse.
func decodeStatusLetter(c byte) (ChangeKind, bool) {
	switch c {
	case '.':
		return "", false
	case 'M':
		return ChangeModified, true
	case 'A':
		return ChangeAdded, true
	case 'D':
		return ChangeDeleted, true
	case 'R':
		return ChangeRenamed, true
	case 'C':
		return ChangeCopied, true
	case 'U':
		return ChangeUnmerged, true
	default:
		return ChangeUnknown, true
	}
}
