package gitlib

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// ChangedFiles diffs the commit against its first parent and returns the
// repository-relative paths of every changed entry, in the diff engine's
// natural traversal order. For deletions the old path is reported, otherwise
// the new path. A root commit (no parents) yields an empty list.
func (c *Commit) ChangedFiles() ([]string, error) {
	if c.NumParents() == 0 {
		return []string{}, nil
	}

	parent, err := c.Parent(0)
	if err != nil {
		return nil, err
	}
	defer parent.Free()

	parentTree, err := parent.Tree()
	if err != nil {
		return nil, err
	}
	defer parentTree.Free()

	tree, err := c.Tree()
	if err != nil {
		return nil, err
	}
	defer tree.Free()

	return c.repo.diffTreeFiles(parentTree, tree)
}

// diffTreeFiles runs a tree-to-tree diff and collects changed paths.
func (r *Repository) diffTreeFiles(oldTree, newTree *Tree) ([]string, error) {
	opts, err := git2go.DefaultDiffOptions()
	if err != nil {
		return nil, fmt.Errorf("get diff options: %w", err)
	}

	diff, err := r.repo.DiffTreeToTree(oldTree.tree, newTree.tree, &opts)
	if err != nil {
		return nil, fmt.Errorf("diff trees: %w", err)
	}

	defer func() {
		// Free() errors are non-actionable in cleanup.
		_ = diff.Free()
	}()

	numDeltas, err := diff.NumDeltas()
	if err != nil {
		return nil, fmt.Errorf("get num deltas: %w", err)
	}

	files := make([]string, 0, numDeltas)

	for i := range numDeltas {
		delta, deltaErr := diff.Delta(i)
		if deltaErr != nil {
			return nil, fmt.Errorf("get delta %d: %w", i, deltaErr)
		}

		path := delta.NewFile.Path
		if path == "" || delta.Status == git2go.DeltaDeleted {
			path = delta.OldFile.Path
		}

		files = append(files, path)
	}

	return files, nil
}
