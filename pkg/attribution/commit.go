package attribution

import (
	"strings"
	"time"
)

// shortHashLen is the number of hex characters in an abbreviated commit hash.
const shortHashLen = 7

// CommitAttribution is the immutable attribution record for one commit.
// Identity is defined solely by CommitHash.
type CommitAttribution struct {
	CommitHash   string
	ShortHash    string
	Author       string
	AuthorEmail  string
	CommitTime   time.Time
	Message      string
	AIAssisted   bool
	AITool       Tool
	AIConfidence string
	FilesChanged []string
}

// CommitSpec carries the fields for constructing a CommitAttribution.
// Unset Tool defaults to ToolNone and unset Files to an empty list.
type CommitSpec struct {
	Hash        string
	Author      string
	AuthorEmail string
	When        time.Time
	Message     string
	Assisted    bool
	Tool        Tool
	Confidence  string
	Files       []string
}

// NewCommitAttribution builds an attribution record from the spec. The short
// hash is derived once here: the first seven characters, or the full hash
// when shorter. The file list is copied so the record stays immutable, and a
// nil list becomes an empty one.
func NewCommitAttribution(spec CommitSpec) CommitAttribution {
	short := spec.Hash
	if len(short) > shortHashLen {
		short = short[:shortHashLen]
	}

	files := make([]string, len(spec.Files))
	copy(files, spec.Files)

	return CommitAttribution{
		CommitHash:   spec.Hash,
		ShortHash:    short,
		Author:       spec.Author,
		AuthorEmail:  spec.AuthorEmail,
		CommitTime:   spec.When,
		Message:      firstLine(spec.Message),
		AIAssisted:   spec.Assisted,
		AITool:       spec.Tool,
		AIConfidence: spec.Confidence,
		FilesChanged: files,
	}
}

// FromMessage builds a commit spec's attribution fields from a full commit
// message: trailer extraction, assistance determination and tool
// classification in one step.
func FromMessage(message string) (assisted bool, tool Tool, confidence string) {
	trailers := ExtractTrailers(message)

	return IsAssisted(trailers), ClassifyTool(trailers), Confidence(trailers)
}

// FileCount returns the number of changed files.
func (c CommitAttribution) FileCount() int {
	return len(c.FilesChanged)
}

// Equal reports whether two records denote the same commit. Equality is
// defined by the full commit hash alone.
func (c CommitAttribution) Equal(other CommitAttribution) bool {
	return c.CommitHash == other.CommitHash
}

// firstLine returns the subject line of a commit message.
func firstLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		message = message[:idx]
	}

	return strings.TrimSpace(message)
}
