// Package walker iterates repository history and produces one attribution
// record per visited commit. The pipeline is strictly sequential: one
// repository handle is opened, walked to completion and closed before the
// records are aggregated.
package walker

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Sumatoshi-tech/gitattrib/pkg/attribution"
	"github.com/Sumatoshi-tech/gitattrib/pkg/gitlib"
)

// DefaultMaxCommits bounds the walk when the caller does not.
const DefaultMaxCommits = 100

// defaultUntil is the symbolic revision the walk starts from.
const defaultUntil = "HEAD"

// Options bound the history traversal.
type Options struct {
	// MaxCommits caps the number of visited commits, most recent first.
	// Values <= 0 fall back to DefaultMaxCommits.
	MaxCommits int
	// Since excludes a revision and everything it reaches (exclusive range
	// start). An unresolvable value is ignored.
	Since string
	// Until is the revision traversal starts from (inclusive range end).
	// Empty means HEAD; an unresolvable value degrades to walking all refs.
	Until string
	// FirstParent restricts the walk to first-parent history.
	FirstParent bool
}

// Walker walks one repository's history. It owns the repository handle for
// the duration of the walk plus the branch and head queries; Close releases
// it. A Walker is not safe for concurrent use.
type Walker struct {
	repo *gitlib.Repository
	opts Options
	log  zerolog.Logger
}

// Open opens the repository at path for walking. A failure here is fatal to
// the whole pipeline; no partial report is ever produced from it.
func Open(path string, opts Options, log zerolog.Logger) (*Walker, error) {
	repo, err := gitlib.OpenRepository(path)
	if err != nil {
		return nil, err
	}

	if opts.MaxCommits <= 0 {
		opts.MaxCommits = DefaultMaxCommits
	}

	return &Walker{repo: repo, opts: opts, log: log}, nil
}

// Close releases the repository handle. Safe to call more than once.
func (w *Walker) Close() {
	w.repo.Free()
}

// Branch returns the current branch name. Fails when HEAD is detached or
// unreadable; the caller decides how to report that.
func (w *Walker) Branch() (string, error) {
	return w.repo.Branch()
}

// Head returns the HEAD commit hash, or false when HEAD does not resolve.
func (w *Walker) Head() (string, bool) {
	hash, err := w.repo.Head()
	if err != nil {
		return "", false
	}

	return hash.String(), true
}

// AnalyzedRange describes the traversed range for report headers.
func (w *Walker) AnalyzedRange() string {
	until := w.opts.Until
	if until == "" {
		until = defaultUntil
	}

	if w.opts.Since != "" {
		return w.opts.Since + ".." + until
	}

	return fmt.Sprintf("last %d commits up to %s", w.opts.MaxCommits, until)
}

// Walk traverses history within the configured bounds and returns one
// attribution record per visited commit, most recent first. Per-commit diff
// failures degrade to an empty file list and a warning; only repository-level
// read failures abort the walk.
func (w *Walker) Walk() ([]attribution.CommitAttribution, error) {
	walk, err := w.repo.Walk()
	if err != nil {
		return nil, err
	}
	defer walk.Free()

	walk.SortRecentFirst()

	if w.opts.FirstParent {
		walk.SimplifyFirstParent()
	}

	err = w.pushRange(walk)
	if err != nil {
		return nil, err
	}

	records := make([]attribution.CommitAttribution, 0, w.opts.MaxCommits)

	iterErr := walk.Iterate(func(commit *gitlib.Commit) bool {
		records = append(records, w.buildAttribution(commit))

		return len(records) < w.opts.MaxCommits
	})
	if iterErr != nil {
		return nil, fmt.Errorf("walk history: %w", iterErr)
	}

	assisted := 0

	for _, record := range records {
		if record.AIAssisted {
			assisted++
		}
	}

	w.log.Info().
		Int("commits", len(records)).
		Int("ai_assisted", assisted).
		Msgf("parsed %d commits, %d with AI attribution", len(records), assisted)

	return records, nil
}

// pushRange seeds the walk with the until revision and hides the since
// revision. Resolution failures are never fatal: an unresolvable until falls
// back to all refs, an unresolvable since widens the range.
func (w *Walker) pushRange(walk *gitlib.RevWalk) error {
	until := w.opts.Until
	if until == "" {
		until = defaultUntil
	}

	untilHash, err := w.repo.RevParse(until)
	if err == nil {
		err = walk.Push(untilHash)
	} else {
		w.log.Debug().Str("until", until).Msg("until revision did not resolve, walking all refs")

		err = walk.PushAllRefs()
	}

	if err != nil {
		return err
	}

	if w.opts.Since != "" {
		sinceHash, sinceErr := w.repo.RevParse(w.opts.Since)
		if sinceErr != nil {
			w.log.Debug().Str("since", w.opts.Since).Msg("since revision did not resolve, ignoring")
		} else {
			hideErr := walk.Hide(sinceHash)
			if hideErr != nil {
				return hideErr
			}
		}
	}

	return nil
}

// buildAttribution assembles the attribution record for one commit.
func (w *Walker) buildAttribution(commit *gitlib.Commit) attribution.CommitAttribution {
	hash := commit.Hash().String()
	author := commit.Author()
	message := commit.Message()

	files, err := commit.ChangedFiles()
	if err != nil {
		w.log.Warn().Err(err).Str("commit", hash).Msg("failed to extract changed files")

		files = []string{}
	}

	assisted, tool, confidence := attribution.FromMessage(message)

	return attribution.NewCommitAttribution(attribution.CommitSpec{
		Hash:        hash,
		Author:      author.Name,
		AuthorEmail: author.Email,
		When:        commit.Committer().When,
		Message:     message,
		Assisted:    assisted,
		Tool:        tool,
		Confidence:  confidence,
		Files:       files,
	})
}
