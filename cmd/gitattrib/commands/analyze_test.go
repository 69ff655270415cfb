package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	git2go "github.com/libgit2/git2go/v34"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gitattrib/internal/config"
	"github.com/Sumatoshi-tech/gitattrib/pkg/attribution"
)

// initFixtureRepo creates a repository with one plain and one assisted commit.
func initFixtureRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	repo, err := git2go.InitRepository(dir, false)
	require.NoError(t, err)

	t.Cleanup(repo.Free)

	commitFile(t, repo, dir, "plain.txt", "x", "plain commit")
	commitFile(t, repo, dir, "assisted.txt", "y",
		"assisted commit\n\nAI-Assisted: true\nAI-Tool: claude\nAI-Confidence: high\n")

	return dir
}

func commitFile(t *testing.T, repo *git2go.Repository, dir, name, content, message string) {
	t.Helper()

	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644)
	require.NoError(t, err)

	index, err := repo.Index()
	require.NoError(t, err)

	defer index.Free()

	err = index.AddAll([]string{"*"}, git2go.IndexAddDefault, nil)
	require.NoError(t, err)

	err = index.Write()
	require.NoError(t, err)

	treeID, err := index.WriteTree()
	require.NoError(t, err)

	tree, err := repo.LookupTree(treeID)
	require.NoError(t, err)

	defer tree.Free()

	sig := &git2go.Signature{Name: "Test User", Email: "test@example.com", When: time.Now()}

	var parents []*git2go.Commit

	head, err := repo.Head()
	if err == nil {
		headCommit, lookupErr := repo.LookupCommit(head.Target())
		require.NoError(t, lookupErr)

		parents = append(parents, headCommit)

		head.Free()
	}

	_, err = repo.CreateCommit("HEAD", sig, sig, message, tree, parents...)
	require.NoError(t, err)

	for _, parent := range parents {
		parent.Free()
	}
}

// writeConfig writes an explicit config file so test runs never pick up a
// developer's own .gitattrib.yaml.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gitattrib.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestAnalyzeWritesReports(t *testing.T) {
	repoPath := initFixtureRepo(t)
	outDir := filepath.Join(t.TempDir(), "out")
	cfgPath := writeConfig(t, "project_name: fixture\n")

	cmd := NewAnalyzeCommand()
	cmd.SetArgs([]string{
		repoPath,
		"--config", cfgPath,
		"--format", "json,markdown",
		"--output-dir", outDir,
		"--quiet",
	})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(outDir, "ai-attribution-report.json"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	metadata, ok := doc["metadata"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "fixture", metadata["projectName"])

	summary, ok := doc["summary"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 2.0, summary["totalCommits"], 0.001)
	assert.InDelta(t, 1.0, summary["aiAssistedCommits"], 0.001)

	_, err = os.Stat(filepath.Join(outDir, "ai-attribution-report.md"))
	assert.NoError(t, err)
}

func TestAnalyzeMissingRepository(t *testing.T) {
	cfgPath := writeConfig(t, "")

	cmd := NewAnalyzeCommand()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "empty"), "--config", cfgPath, "--quiet"})

	assert.Error(t, cmd.Execute())
}

func TestAnalyzeEnforcement(t *testing.T) {
	repoPath := initFixtureRepo(t)
	outDir := filepath.Join(t.TempDir(), "out")
	cfgPath := writeConfig(t, "")

	cmd := NewAnalyzeCommand()
	cmd.SetArgs([]string{
		repoPath,
		"--config", cfgPath,
		"--output-dir", outDir,
		"--enforce",
		"--min-ai-percentage", "90",
		"--quiet",
	})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBelowThreshold)

	// The report is still written before enforcement fails the run.
	_, statErr := os.Stat(filepath.Join(outDir, "ai-attribution-report.json"))
	assert.NoError(t, statErr)
}

func TestCheckThreshold(t *testing.T) {
	analyze := &AnalyzeCommand{}
	report := &attribution.Report{AIAssistedPercentage: 50}

	assert.NoError(t, analyze.checkThreshold(report, &config.Config{Enforce: false, MinAIPercentage: 90}))
	assert.NoError(t, analyze.checkThreshold(report, &config.Config{Enforce: true, MinAIPercentage: 50}))
	assert.ErrorIs(t,
		analyze.checkThreshold(report, &config.Config{Enforce: true, MinAIPercentage: 50.1}),
		ErrBelowThreshold)
}

func TestResolveRepoPath(t *testing.T) {
	path, err := resolveRepoPath(nil)
	require.NoError(t, err)
	assert.Equal(t, ".", path)

	path, err = resolveRepoPath([]string{"/some/repo"})
	require.NoError(t, err)
	assert.Equal(t, "/some/repo", path)

	home, homeErr := os.UserHomeDir()
	require.NoError(t, homeErr)

	path, err = resolveRepoPath([]string{"~/work/repo"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "work", "repo"), path)
}
