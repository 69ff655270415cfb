package gitlib

import (
	"errors"
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// ErrDetachedHead is returned by Branch when HEAD does not point at a branch.
var ErrDetachedHead = errors.New("repository HEAD is detached")

// Repository wraps a libgit2 repository handle. It is a scoped resource:
// open once, use for one walk plus metadata queries, then Free. A Repository
// must not be shared between concurrent walks.
type Repository struct {
	repo *git2go.Repository
	path string
}

// OpenRepository opens the git repository at path. Failure here is the only
// fatal error class of the pipeline; everything downstream degrades locally.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git2go.OpenRepository(path)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}

	return &Repository{repo: repo, path: path}, nil
}

// Path returns the path the repository was opened from.
func (r *Repository) Path() string {
	return r.path
}

// Free releases the repository handle. Safe to call more than once.
func (r *Repository) Free() {
	if r.repo != nil {
		r.repo.Free()
		r.repo = nil
	}
}

// Head resolves HEAD to a commit id.
func (r *Repository) Head() (Hash, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return Hash{}, fmt.Errorf("resolve HEAD: %w", err)
	}
	defer ref.Free()

	return HashFromOid(ref.Target()), nil
}

// Branch returns the name of the branch HEAD points at. A detached HEAD is
// an error; the caller decides how to report it.
func (r *Repository) Branch() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	defer ref.Free()

	if !ref.IsBranch() {
		return "", ErrDetachedHead
	}

	return ref.Shorthand(), nil
}

// RevParse resolves a revision spec (commit hash, tag or branch name) to a
// commit id, peeling annotated tags.
func (r *Repository) RevParse(spec string) (Hash, error) {
	obj, err := r.repo.RevparseSingle(spec)
	if err != nil {
		return Hash{}, fmt.Errorf("resolve %q: %w", spec, err)
	}
	defer obj.Free()

	peeled, err := obj.Peel(git2go.ObjectCommit)
	if err != nil {
		return Hash{}, fmt.Errorf("peel %q to commit: %w", spec, err)
	}
	defer peeled.Free()

	return HashFromOid(peeled.Id()), nil
}

// LookupCommit returns the commit with the given id.
func (r *Repository) LookupCommit(hash Hash) (*Commit, error) {
	commit, err := r.repo.LookupCommit(hash.ToOid())
	if err != nil {
		return nil, fmt.Errorf("lookup commit %s: %w", hash, err)
	}

	return &Commit{commit: commit, repo: r}, nil
}

// Walk creates a revision walker. The caller owns the returned walker and
// must Free it.
func (r *Repository) Walk() (*RevWalk, error) {
	walk, err := r.repo.Walk()
	if err != nil {
		return nil, fmt.Errorf("create revwalk: %w", err)
	}

	return &RevWalk{walk: walk, repo: r}, nil
}
