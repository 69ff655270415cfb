package gitlib

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// allRefsGlob matches every reference for the widest possible traversal.
const allRefsGlob = "refs/*"

// RevWalk wraps a libgit2 revision walker. Commits are visited most recent
// first, sorted by time with topological ordering so a commit is never
// visited before its descendants.
type RevWalk struct {
	walk *git2go.RevWalk
	repo *Repository
}

// Push adds a commit the walk starts from.
func (w *RevWalk) Push(hash Hash) error {
	err := w.walk.Push(hash.ToOid())
	if err != nil {
		return fmt.Errorf("push %s to revwalk: %w", hash, err)
	}

	return nil
}

// PushAllRefs starts the walk from every reference in the repository. Used
// as the fallback when the requested starting revision does not resolve.
func (w *RevWalk) PushAllRefs() error {
	err := w.walk.PushGlob(allRefsGlob)
	if err != nil {
		return fmt.Errorf("push all refs to revwalk: %w", err)
	}

	return nil
}

// Hide excludes a commit and everything it reaches, giving the standard
// since..until range semantics.
func (w *RevWalk) Hide(hash Hash) error {
	err := w.walk.Hide(hash.ToOid())
	if err != nil {
		return fmt.Errorf("hide %s from revwalk: %w", hash, err)
	}

	return nil
}

// SortRecentFirst orders the walk by commit time, topologically constrained.
func (w *RevWalk) SortRecentFirst() {
	w.walk.Sorting(git2go.SortTime | git2go.SortTopological)
}

// SimplifyFirstParent restricts the walk to first-parent history.
func (w *RevWalk) SimplifyFirstParent() {
	w.walk.SimplifyFirstParent()
}

// Iterate visits each commit in walk order until the callback returns false.
// The commit passed to the callback is freed by the walker afterwards.
func (w *RevWalk) Iterate(cb func(*Commit) bool) error {
	err := w.walk.Iterate(func(commit *git2go.Commit) bool {
		wrapped := &Commit{commit: commit, repo: w.repo}
		keepGoing := cb(wrapped)
		wrapped.Free()

		return keepGoing
	})
	if err != nil {
		return fmt.Errorf("revwalk iterate: %w", err)
	}

	return nil
}

// Free releases the walker. Safe to call more than once.
func (w *RevWalk) Free() {
	if w.walk != nil {
		w.walk.Free()
		w.walk = nil
	}
}
