package main

import (
	"encoding/json"
	"os"

	"github.com/gonum/floats"

	"github.com/orthologr/gestimator/pairwise"
	"github.com/orthologr/gestimator/pipeline"
)

// RunSummary is storing gestimator run summary information.
type RunSummary struct {
	// RunID is a random identifier of the run.
	RunID string `json:"runId"`
	// Version stores gestimator version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// NThreads is the number of processes used.
	NThreads int `json:"nThreads"`
	// Input is the alignment file.
	Input string `json:"input"`
	// Output is the results file.
	Output string `json:"output"`
	// Format is the results file format.
	Format string `json:"format"`
	// State is the final pipeline state.
	State string `json:"state"`
	// NSequences is the number of sequences in the alignment.
	NSequences int `json:"nSequences"`
	// NCodons is the number of codon positions compared.
	NCodons int `json:"nCodons"`
	// Removed is the number of gapped codon positions removed.
	Removed int `json:"removed,omitempty"`
	// NResults is the number of output rows.
	NResults int `json:"nResults"`
	// PDistance summarizes p-distances of all output rows.
	PDistance *DistanceSummary `json:"pDistance,omitempty"`
	// Error is set if the run failed.
	Error string `json:"error,omitempty"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}

// DistanceSummary stores distance statistics.
type DistanceSummary struct {
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// summarizeDistances returns p-distance statistics, or nil if there are
// no results.
func summarizeDistances(rs []pairwise.Result) *DistanceSummary {
	if len(rs) == 0 {
		return nil
	}
	d := make([]float64, len(rs))
	for i, r := range rs {
		d[i] = r.PDistance()
	}
	return &DistanceSummary{
		Mean: floats.Sum(d) / float64(len(d)),
		Min:  floats.Min(d),
		Max:  floats.Max(d),
	}
}

// fill copies the estimator information to the summary.
func (s *RunSummary) fill(e *pipeline.Estimator) {
	cfg := e.Config()
	s.Input = cfg.Input
	s.Output = cfg.Output
	s.Format = cfg.Format
	s.State = e.State().String()
	s.NSequences = len(e.Alignment())
	s.NCodons = e.Alignment().Length()
	s.Removed = e.Removed()
	s.NResults = len(e.Results())
	s.PDistance = summarizeDistances(e.Results())
}

// WriteFile writes the summary in json format.
func (s *RunSummary) WriteFile(fileName string) error {
	j, err := json.Marshal(s)
	if err != nil {
		return err
	}
	log.Debug(string(j))
	return os.WriteFile(fileName, j, 0644)
}
