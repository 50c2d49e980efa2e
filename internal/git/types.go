package git

import "time"

// ChangeKind is the decoded meaning of one half of a two-character porcelain
// status code.
type ChangeKind string

// Change kinds produced by the status parser
const (
	ChangeAdded    ChangeKind = "Added"
	ChangeModified ChangeKind = "Modified"
	ChangeDeleted  ChangeKind = "Deleted"
	ChangeRenamed  ChangeKind = "Renamed"
	ChangeCopied   ChangeKind = "Copied"
	ChangeUnmerged ChangeKind = "Unmerged"
	ChangeUnknown  ChangeKind = "Unknown"
)

// FileChange is one changed path in the working tree or index.
type FileChange struct {
	Path string     `json:"path"`
	Kind ChangeKind `json:"kind"`
	// OrigPath is set for renames and copies.
	OrigPath string `json:"origPath,omitempty"`
}

// RepositoryStatus is a parsed snapshot of the working tree, built from one
// porcelain status invocation. All slices are non-nil.
type RepositoryStatus struct {
	Branch     string       `json:"branch"`
	Upstream   string       `json:"upstream,omitempty"`
	Ahead      int          `json:"ahead"`
	Behind     int          `json:"behind"`
	Staged     []FileChange `json:"staged"`
	Unstaged   []FileChange `json:"unstaged"`
	Untracked  []string     `json:"untracked"`
	Conflicted []string     `json:"conflicted"`
	RawStatus  string       `json:"rawStatus,omitempty"`
}

// IsClean reports whether nothing is staged, modified, untracked, or
// conflicted.
func (s *RepositoryStatus) IsClean() bool {
	return len(s.Staged) == 0 && len(s.Unstaged) == 0 &&
		len(s.Untracked) == 0 && len(s.Conflicted) == 0
}

// ConflictSection is one marker-delimited region within a conflicted file.
type ConflictSection struct {
	Ours   string `json:"ours"`
	Theirs string `json:"theirs"`
	// Offset and Length locate the whole region, markers included, within
	// the file content the section was parsed from.
	Offset int `json:"offset"`
	Length int `json:"length"`
}

// StashEntry is one record from `git stash list`. Ref is positional
// (stash@{N}) and only identifies the entry until the stash is next mutated.
type StashEntry struct {
	Ref     string `json:"ref"`
	Branch  string `json:"branch,omitempty"`
	Message string `json:"message"`
}

// RemoteDirection distinguishes the fetch and push URL of a remote.
type RemoteDirection string

// Remote directions as printed by `git remote -v`
const (
	RemoteFetch RemoteDirection = "fetch"
	RemotePush  RemoteDirection = "push"
)

// RemoteEntry is one configured remote URL.
type RemoteEntry struct {
	Name      string          `json:"name"`
	URL       string          `json:"url"`
	Direction RemoteDirection `json:"direction"`
}

// Commit is one parsed log entry.
type Commit struct {
	Hash        string    `json:"hash"`
	ShortHash   string    `json:"shortHash"`
	Author      string    `json:"author"`
	AuthorEmail string    `json:"authorEmail"`
	Date        time.Time `json:"date"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body,omitempty"`
}
