package attribution

import (
	"sort"
	"strings"
	"time"
)

// DefaultSourceRoot is the path marker used to derive module keys when the
// report context does not override it.
const DefaultSourceRoot = "src/main/java/"

// rootModule is the module key for files at the repository root.
const rootModule = "root"

// percentFactor converts a ratio to a percentage.
const percentFactor = 100.0

// ModuleStats holds file-level statistics for one module.
type ModuleStats struct {
	ModuleName           string
	TotalFiles           int
	AIAssistedFiles      int
	AIAssistedPercentage float64
}

// ReportContext carries the caller-supplied identity fields of a report.
type ReportContext struct {
	ProjectName    string
	ProjectVersion string
	Branch         string
	HeadCommit     string
	AnalyzedRange  string
	// SourceRoot overrides DefaultSourceRoot for module key derivation.
	SourceRoot string
}

// Report is the immutable aggregate produced by one analysis run. All
// derived fields are computed once in BuildReport and never recomputed;
// GeneratedAt is captured at build time.
type Report struct {
	ProjectName    string
	ProjectVersion string
	Branch         string
	HeadCommit     string
	GeneratedAt    time.Time
	AnalyzedRange  string

	Commits []CommitAttribution

	TotalCommits           int
	AIAssistedCommits      int
	AIAssistedPercentage   float64
	TotalFilesChanged      int
	AIAssistedFilesChanged int
	CommitsByTool          map[Tool]int
	ModuleBreakdown        map[string]ModuleStats
}

// moduleAccumulator tracks per-module state during aggregation.
type moduleAccumulator struct {
	seen     map[string]bool
	total    int
	assisted int
}

// BuildReport folds the attribution records into one report. The commit
// slice is taken in walk order (most recent first) and that order is
// significant: module file classification is fixed by the first commit that
// touches a file (see moduleBreakdown).
func BuildReport(ctx ReportContext, commits []CommitAttribution) *Report {
	report := &Report{
		ProjectName:    ctx.ProjectName,
		ProjectVersion: ctx.ProjectVersion,
		Branch:         ctx.Branch,
		HeadCommit:     ctx.HeadCommit,
		GeneratedAt:    time.Now(),
		AnalyzedRange:  ctx.AnalyzedRange,
		Commits:        append([]CommitAttribution(nil), commits...),
		CommitsByTool:  map[Tool]int{},
	}

	for _, commit := range commits {
		report.TotalCommits++
		report.TotalFilesChanged += commit.FileCount()

		if commit.AIAssisted {
			report.AIAssistedCommits++
			report.AIAssistedFilesChanged += commit.FileCount()
			report.CommitsByTool[commit.AITool]++
		}
	}

	if report.TotalCommits > 0 {
		report.AIAssistedPercentage = percentFactor * float64(report.AIAssistedCommits) / float64(report.TotalCommits)
	}

	sourceRoot := ctx.SourceRoot
	if sourceRoot == "" {
		sourceRoot = DefaultSourceRoot
	}

	report.ModuleBreakdown = moduleBreakdown(commits, sourceRoot)

	return report
}

// moduleBreakdown aggregates per-module file statistics over every
// (commit, file) pair in walk order. Each module keeps a seen-set, so a file
// touched by several commits counts once, and its assisted classification
// is permanently fixed by the first commit that touches it in iteration
// order. A file first seen in a non-assisted commit is never reclassified
// when a later-visited assisted commit touches it.
func moduleBreakdown(commits []CommitAttribution, sourceRoot string) map[string]ModuleStats {
	accumulators := map[string]*moduleAccumulator{}

	for _, commit := range commits {
		for _, file := range commit.FilesChanged {
			module := moduleKey(file, sourceRoot)

			acc := accumulators[module]
			if acc == nil {
				acc = &moduleAccumulator{seen: map[string]bool{}}
				accumulators[module] = acc
			}

			if acc.seen[file] {
				continue
			}

			acc.seen[file] = true
			acc.total++

			if commit.AIAssisted {
				acc.assisted++
			}
		}
	}

	breakdown := make(map[string]ModuleStats, len(accumulators))

	for module, acc := range accumulators {
		stats := ModuleStats{
			ModuleName:      module,
			TotalFiles:      acc.total,
			AIAssistedFiles: acc.assisted,
		}
		if acc.total > 0 {
			stats.AIAssistedPercentage = percentFactor * float64(acc.assisted) / float64(acc.total)
		}

		breakdown[module] = stats
	}

	return breakdown
}

// moduleKey derives the module grouping key for a file path. Paths under the
// source-root marker map to the dotted directory chain below the marker,
// e.g. "src/main/java/com/bank/payments/Service.java" -> "com.bank.payments".
// Other paths map to their parent directory, and files at the repository
// root map to "root".
func moduleKey(filePath, sourceRoot string) string {
	if idx := strings.Index(filePath, sourceRoot); idx >= 0 {
		packagePath := filePath[idx+len(sourceRoot):]
		if lastSlash := strings.LastIndexByte(packagePath, '/'); lastSlash > 0 {
			return strings.ReplaceAll(packagePath[:lastSlash], "/", ".")
		}
	}

	if lastSlash := strings.LastIndexByte(filePath, '/'); lastSlash > 0 {
		return filePath[:lastSlash]
	}

	return rootModule
}

// AIAssistedCommitsList returns the assisted records, preserving walk order.
func (r *Report) AIAssistedCommitsList() []CommitAttribution {
	assisted := make([]CommitAttribution, 0, r.AIAssistedCommits)

	for _, commit := range r.Commits {
		if commit.AIAssisted {
			assisted = append(assisted, commit)
		}
	}

	return assisted
}

// Tools returns the tools with at least one assisted commit, in the
// canonical declaration order of the tool enumeration.
func (r *Report) Tools() []Tool {
	tools := make([]Tool, 0, len(r.CommitsByTool))

	for _, tool := range AllTools() {
		if r.CommitsByTool[tool] > 0 {
			tools = append(tools, tool)
		}
	}

	return tools
}

// Modules returns the module keys sorted by AI-assisted percentage
// descending, ties broken by name, for deterministic rendering.
func (r *Report) Modules() []string {
	modules := make([]string, 0, len(r.ModuleBreakdown))
	for module := range r.ModuleBreakdown {
		modules = append(modules, module)
	}

	sort.Slice(modules, func(i, j int) bool {
		si, sj := r.ModuleBreakdown[modules[i]], r.ModuleBreakdown[modules[j]]
		if si.AIAssistedPercentage != sj.AIAssistedPercentage {
			return si.AIAssistedPercentage > sj.AIAssistedPercentage
		}

		return modules[i] < modules[j]
	})

	return modules
}
