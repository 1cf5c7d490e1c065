package model

// FileStatus is the outcome of rewriting one file.
type FileStatus string

const (
	// StatusRewritten means the output was produced without warnings.
	StatusRewritten FileStatus = "rewritten"
	// StatusWarned means the output was produced but a warning was raised.
	StatusWarned FileStatus = "warned"
	// StatusFailed means no output was produced for the file.
	StatusFailed FileStatus = "failed"
	// StatusPlanned is used by dry runs, where nothing is written.
	StatusPlanned FileStatus = "planned"
)

// LineStats counts classifier decisions for one file.
type LineStats struct {
	In          int `yaml:"in"`
	Kept        int `yaml:"kept"`
	Substituted int `yaml:"substituted"`
	Dropped     int `yaml:"dropped"`
}

// Out is the number of lines that survive into the output.
func (s LineStats) Out() int {
	return s.Kept + s.Substituted
}

// FileReport describes what happened to a single input file.
type FileReport struct {
	Source      Source
	Destination Path
	PackageKey  string
	Status      FileStatus
	Stats       LineStats
	Warnings    []string
	Err         error
}

// Failed reports whether the file produced no output.
func (r FileReport) Failed() bool {
	return r.Status == StatusFailed
}

// RunSummary aggregates the reports of a whole tree walk.
type RunSummary struct {
	Files  int
	Failed int
	Warned int
	Stats  LineStats
}

// Summarize folds reports into a RunSummary.
func Summarize(reports []FileReport) RunSummary {
	var s RunSummary

	for _, r := range reports {
		s.Files++

		switch r.Status {
		case StatusFailed:
			s.Failed++
		case StatusWarned:
			s.Warned++
		}

		s.Stats.In += r.Stats.In
		s.Stats.Kept += r.Stats.Kept
		s.Stats.Substituted += r.Stats.Substituted
		s.Stats.Dropped += r.Stats.Dropped
	}

	return s
}
