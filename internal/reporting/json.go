package reporting

import (
	"encoding/json"
	"fmt"
	"time"
)

// JSONReport is a script-friendly output format
type JSONReport struct {
	GeneratedAt string             `json:"generated_at"`
	Duration    float64            `json:"duration_seconds"`
	Summary     JSONSummary        `json:"summary"`
	Planned     []JSONPlannedEntry `json:"planned"`
	Failed      []JSONFailedEntry  `json:"failed"`
	Skipped     []JSONSkippedEntry `json:"skipped"`
}

type JSONSummary struct {
	TotalFiles   int `json:"total_files"`
	PlannedCount int `json:"planned_count"`
	FailedCount  int `json:"failed_count"`
	SkippedCount int `json:"skipped_count"`
}

type JSONPlannedEntry struct {
	SourcePath  string `json:"source_path"`
	FileName    string `json:"file_name"`
	Destination string `json:"destination"`
	Subfolder   string `json:"subfolder"`
	TargetPath  string `json:"target_path"`
}

type JSONFailedEntry struct {
	SourcePath string `json:"source_path"`
	Kind       string `json:"kind"`
	Reason     string `json:"reason"`
}

type JSONSkippedEntry struct {
	SourcePath string `json:"source_path"`
	Reason     string `json:"reason"`
}

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (jf *JSONFormatter) Format(report *PlanReport) ([]byte, error) {
	out := JSONReport{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Duration:    report.Summary.Duration.Seconds(),
		Summary: JSONSummary{
			TotalFiles:   report.Summary.TotalFiles,
			PlannedCount: report.Summary.PlannedCount,
			FailedCount:  report.Summary.FailedCount,
			SkippedCount: report.Summary.SkippedCount,
		},
		Planned: make([]JSONPlannedEntry, 0, len(report.Planned)),
		Failed:  make([]JSONFailedEntry, 0, len(report.Failed)),
		Skipped: make([]JSONSkippedEntry, 0, len(report.Skipped)),
	}

	for _, p := range report.Planned {
		out.Planned = append(out.Planned, JSONPlannedEntry{
			SourcePath:  p.SourcePath,
			FileName:    p.FileName,
			Destination: p.Destination.Name,
			Subfolder:   p.Subfolder,
			TargetPath:  p.TargetPath(),
		})
	}

	for _, f := range report.Failed {
		out.Failed = append(out.Failed, JSONFailedEntry{
			SourcePath: f.SourcePath,
			Kind:       f.Kind,
			Reason:     f.Reason,
		})
	}

	for _, s := range report.Skipped {
		out.Skipped = append(out.Skipped, JSONSkippedEntry{
			SourcePath: s.Path,
			Reason:     s.Reason,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}
