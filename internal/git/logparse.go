package git

import (
	"strconv"
	"strings"
	"time"
)

// Log format: NUL-separated fields, one commit per \x01 record. NUL cannot
// appear in commit metadata, which makes parsing immune to subjects that
// contain newlines or field separators.
const (
	logFormat          = "%H%x00%h%x00%an%x00%ae%x00%at%x00%s%x00%b%x01"
	logFieldCount      = 7
	logRecordSeparator = "\x01"
)

// LogFormatFlag returns the --format flag for structured log parsing.
func LogFormatFlag() string {
	return "--format=" + logFormat
}

// ParseLog parses git log output produced with LogFormatFlag.
func ParseLog(out string) []Commit {
	commits := []Commit{}
	for _, record := range strings.Split(out, logRecordSeparator) {
		record = strings.TrimSpace(record)
		if record == "" {
			continue
		}
		parts := strings.SplitN(record, "\x00", logFieldCount)
		if len(parts) < 6 {
			continue
		}
		ts, _ := strconv.ParseInt(strings.TrimSpace(parts[4]), 10, 64)
		c := Commit{
			Hash:        strings.TrimSpace(parts[0]),
			ShortHash:   strings.TrimSpace(parts[1]),
			Author:      strings.TrimSpace(parts[2]),
			AuthorEmail: strings.TrimSpace(parts[3]),
			Date:        time.Unix(ts, 0),
			Subject:     strings.TrimSpace(parts[5]),
		}
		if len(parts) == logFieldCount {
			c.Body = strings.TrimSpace(parts[6])
		}
		commits = append(commits, c)
	}
	return commits
}
