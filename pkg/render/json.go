package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/Sumatoshi-tech/gitattrib/pkg/attribution"
)

// JSONRenderer writes the structured-data form of the report. The document
// layout (metadata / summary / toolBreakdown / moduleBreakdown / commits) is
// stable; downstream consumers depend on these field names.
type JSONRenderer struct{}

// reportDoc is the serialized report document, shared with the YAML renderer.
type reportDoc struct {
	Metadata        metadataDoc    `json:"metadata"        yaml:"metadata"`
	Summary         summaryDoc     `json:"summary"         yaml:"summary"`
	ToolBreakdown   map[string]int `json:"toolBreakdown"   yaml:"toolBreakdown"`
	ModuleBreakdown []moduleDoc    `json:"moduleBreakdown" yaml:"moduleBreakdown"`
	Commits         []commitDoc    `json:"commits"         yaml:"commits"`
}

type metadataDoc struct {
	ProjectName    string `json:"projectName"    yaml:"projectName"`
	ProjectVersion string `json:"projectVersion" yaml:"projectVersion"`
	Branch         string `json:"branch"         yaml:"branch"`
	HeadCommit     string `json:"headCommit"     yaml:"headCommit"`
	GeneratedAt    string `json:"generatedAt"    yaml:"generatedAt"`
	AnalyzedRange  string `json:"analyzedRange"  yaml:"analyzedRange"`
}

type summaryDoc struct {
	TotalCommits           int     `json:"totalCommits"           yaml:"totalCommits"`
	AIAssistedCommits      int     `json:"aiAssistedCommits"      yaml:"aiAssistedCommits"`
	AIAssistedPercentage   float64 `json:"aiAssistedPercentage"   yaml:"aiAssistedPercentage"`
	TotalFilesChanged      int     `json:"totalFilesChanged"      yaml:"totalFilesChanged"`
	AIAssistedFilesChanged int     `json:"aiAssistedFilesChanged" yaml:"aiAssistedFilesChanged"`
}

type moduleDoc struct {
	Name                 string  `json:"name"                 yaml:"name"`
	TotalFiles           int     `json:"totalFiles"           yaml:"totalFiles"`
	AIAssistedFiles      int     `json:"aiAssistedFiles"      yaml:"aiAssistedFiles"`
	AIAssistedPercentage float64 `json:"aiAssistedPercentage" yaml:"aiAssistedPercentage"`
}

type commitDoc struct {
	Hash         string   `json:"hash"                   yaml:"hash"`
	FullHash     string   `json:"fullHash"               yaml:"fullHash"`
	Author       string   `json:"author"                 yaml:"author"`
	AuthorEmail  string   `json:"authorEmail"            yaml:"authorEmail"`
	CommitTime   string   `json:"commitTime"             yaml:"commitTime"`
	Message      string   `json:"message"                yaml:"message"`
	AIAssisted   bool     `json:"aiAssisted"             yaml:"aiAssisted"`
	AITool       string   `json:"aiTool,omitempty"       yaml:"aiTool,omitempty"`
	AIConfidence string   `json:"aiConfidence,omitempty" yaml:"aiConfidence,omitempty"`
	FilesChanged []string `json:"filesChanged"           yaml:"filesChanged"`
	FileCount    int      `json:"fileCount"              yaml:"fileCount"`
}

// Render writes the pretty-printed JSON document.
func (r *JSONRenderer) Render(report *attribution.Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(buildReportDoc(report))
	if err != nil {
		return fmt.Errorf("json encode: %w", err)
	}

	return nil
}

// Extension returns "json".
func (r *JSONRenderer) Extension() string {
	return FormatJSON
}

// buildReportDoc flattens the report into its serialized document form.
func buildReportDoc(report *attribution.Report) reportDoc {
	tools := make(map[string]int, len(report.CommitsByTool))
	for _, tool := range report.Tools() {
		tools[tool.DisplayName()] = report.CommitsByTool[tool]
	}

	modules := make([]moduleDoc, 0, len(report.ModuleBreakdown))

	for _, name := range report.Modules() {
		stats := report.ModuleBreakdown[name]
		modules = append(modules, moduleDoc{
			Name:                 name,
			TotalFiles:           stats.TotalFiles,
			AIAssistedFiles:      stats.AIAssistedFiles,
			AIAssistedPercentage: round2(stats.AIAssistedPercentage),
		})
	}

	commits := make([]commitDoc, 0, len(report.Commits))
	for _, commit := range report.Commits {
		commits = append(commits, buildCommitDoc(commit))
	}

	return reportDoc{
		Metadata: metadataDoc{
			ProjectName:    report.ProjectName,
			ProjectVersion: report.ProjectVersion,
			Branch:         report.Branch,
			HeadCommit:     report.HeadCommit,
			GeneratedAt:    report.GeneratedAt.UTC().Format(time.RFC3339),
			AnalyzedRange:  report.AnalyzedRange,
		},
		Summary: summaryDoc{
			TotalCommits:           report.TotalCommits,
			AIAssistedCommits:      report.AIAssistedCommits,
			AIAssistedPercentage:   round2(report.AIAssistedPercentage),
			TotalFilesChanged:      report.TotalFilesChanged,
			AIAssistedFilesChanged: report.AIAssistedFilesChanged,
		},
		ToolBreakdown:   tools,
		ModuleBreakdown: modules,
		Commits:         commits,
	}
}

func buildCommitDoc(commit attribution.CommitAttribution) commitDoc {
	doc := commitDoc{
		Hash:         commit.ShortHash,
		FullHash:     commit.CommitHash,
		Author:       commit.Author,
		AuthorEmail:  commit.AuthorEmail,
		CommitTime:   commit.CommitTime.UTC().Format(time.RFC3339),
		Message:      commit.Message,
		AIAssisted:   commit.AIAssisted,
		FilesChanged: commit.FilesChanged,
		FileCount:    commit.FileCount(),
	}

	// Tool identity only accompanies assisted commits in the document.
	if commit.AIAssisted {
		doc.AITool = commit.AITool.DisplayName()
		doc.AIConfidence = commit.AIConfidence
	}

	return doc
}

// round2 rounds a percentage to two decimal places for output.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
